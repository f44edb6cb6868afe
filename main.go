package main

import (
	"codeberg.org/miketth/ezoverlay/cmd"
	"golang.design/x/hotkey/mainthread"
	"log"
)

func main() {
	// global hotkeys on macOS must be registered from the main thread
	mainthread.Init(func() {
		if err := cmd.Execute(); err != nil {
			log.Fatalf("error: %+v", err)
		}
	})
}

// Package keycodes turns QMK firmware key codes, as found in Oryx exports,
// into the short labels printed on a rendered key cap.
package keycodes

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"strings"
	"unicode/utf8"
)

// MaxLabelLen is the longest label, in runes, produced for codes that no
// table or rule recognises.
const MaxLabelLen = 6

const placeholder = "?"

// a matcher reports the label for code, or false to pass it down the chain
type matcher func(code string) (string, bool)

var chain []matcher

func init() {
	chain = []matcher{
		exact,
		layerFamily("TO(", "→L"),
		layerFamily("MO(", "L"),
		layerFamily("TG(", "⇄L"),
		shifted("LSFT("),
		shifted("RSFT("),
		stripPrefix,
	}
}

// DisplayText returns the key-cap label for a firmware key code. It never
// fails and never returns an empty string.
func DisplayText(code string) string {
	code = strings.TrimSpace(code)

	for _, match := range chain {
		if text, ok := match(code); ok {
			return text
		}
	}

	return fallback(code)
}

func exact(code string) (string, bool) {
	text, ok := keyTable[code]
	return text, ok
}

func layerFamily(prefix, label string) matcher {
	return func(code string) (string, bool) {
		if !strings.HasPrefix(code, prefix) {
			return "", false
		}
		layer := strings.TrimSuffix(strings.TrimPrefix(code, prefix), ")")
		return label + layer, true
	}
}

func shifted(prefix string) matcher {
	return func(code string) (string, bool) {
		if !strings.HasPrefix(code, prefix) {
			return "", false
		}
		inner := strings.TrimSuffix(strings.TrimPrefix(code, prefix), ")")
		if symbol, ok := shiftedTable[inner]; ok {
			return symbol, true
		}
		return strings.ToUpper(DisplayText(inner)), true
	}
}

// stripPrefix only claims remainders that fit on a key cap; anything longer
// is left to the truncating fallback.
func stripPrefix(code string) (string, bool) {
	if !strings.HasPrefix(code, Prefix) {
		return "", false
	}
	rest := strings.TrimPrefix(code, Prefix)
	n := utf8.RuneCountInString(rest)
	if n == 0 || n > MaxLabelLen {
		return "", false
	}
	return cases.Title(language.Und).String(rest), true
}

func fallback(code string) string {
	if code == "" {
		return placeholder
	}
	return truncate(code, MaxLabelLen)
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}

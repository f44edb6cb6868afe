package control

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"go.uber.org/zap"
	"net"
	"os"
	"strings"
	"sync"
)

// Handler applies one event line.
type Handler func(line string) error

type Server struct {
	listener net.Listener
	path     string
	log      *zap.SugaredLogger
}

// Listen opens the control socket at socketPath. A stale socket left by a
// crashed process is removed; a live one makes Listen fail.
func Listen(socketPath string, log *zap.SugaredLogger) (*Server, error) {
	if client, err := Connect(socketPath); err == nil {
		client.Close()
		return nil, fmt.Errorf("control socket %s is already in use", socketPath)
	}

	if err := os.Remove(socketPath); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("remove stale socket: %w", err)
	}

	listener, err := net.Listen("unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("listen: %w", err)
	}

	return &Server{listener: listener, path: socketPath, log: log}, nil
}

func (s *Server) Path() string {
	return s.path
}

// Serve accepts connections until ctx is done. Each line received is passed
// to handle and answered with "ok" or "error: <reason>".
func (s *Server) Serve(ctx context.Context, handle Handler) error {
	var wg sync.WaitGroup
	defer wg.Wait()

	go func() {
		<-ctx.Done()
		s.listener.Close()
	}()

	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			return fmt.Errorf("accept: %w", err)
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			s.serveConn(ctx, conn, handle)
		}()
	}
}

func (s *Server) serveConn(ctx context.Context, conn net.Conn, handle Handler) {
	defer conn.Close()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	reader := bufio.NewReader(conn)
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		line = strings.TrimSuffix(line, "\n")

		reply := replyOK
		if err := handle(line); err != nil {
			s.log.Warnw("control event failed", "line", line, "error", err)
			reply = replyPrefix + strings.ReplaceAll(err.Error(), "\n", " ")
		}

		if _, err := fmt.Fprintf(conn, "%s\n", reply); err != nil {
			s.log.Debugw("write control reply", "error", err)
			return
		}
	}
}

func (s *Server) Close() error {
	err := s.listener.Close()
	if errors.Is(err, net.ErrClosed) {
		err = nil
	}
	_ = os.Remove(s.path)
	return err
}

package control

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"strings"
	"syscall"
)

type Client struct {
	conn   net.Conn
	reader *bufio.Reader
}

func Connect(socketPath string) (*Client, error) {
	conn, err := net.Dial("unix", socketPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ECONNREFUSED) {
			return nil, fmt.Errorf("dial %s: %w", socketPath, ErrNotRunning)
		}
		return nil, fmt.Errorf("dial: %w", err)
	}

	return &Client{conn: conn, reader: bufio.NewReader(conn)}, nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}

func (c *Client) ReadLine() (string, error) {
	str, err := c.reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read from control socket: %w", err)
	}
	return strings.TrimSuffix(str, "\n"), nil
}

// Send writes one event line and waits for the overlay's answer.
func (c *Client) Send(line string) error {
	if _, err := fmt.Fprintf(c.conn, "%s\n", line); err != nil {
		return fmt.Errorf("write to control socket: %w", err)
	}

	reply, err := c.ReadLine()
	if err != nil {
		return err
	}

	if reply == replyOK {
		return nil
	}

	return fmt.Errorf("%w: %s", ErrRejected, strings.TrimPrefix(reply, replyPrefix))
}

// Send delivers a single event to the overlay listening on socketPath.
func Send(socketPath, line string) error {
	client, err := Connect(socketPath)
	if err != nil {
		return err
	}
	defer client.Close()

	return client.Send(line)
}

//go:build !windows && !((darwin || linux) && cgo)

package hotkeys

import (
	"context"
	"go.uber.org/zap"
	"io"
)

type Source struct{}

func NewSource(Binding, bool, *zap.SugaredLogger) *Source {
	return &Source{}
}

func (s *Source) Run(context.Context) error {
	return ErrUnsupported
}

func (s *Source) ReadLine() (string, error) {
	return "", io.EOF
}

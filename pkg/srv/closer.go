package srv

import (
	"context"
	"io"
)

// closer turns an io.Closer into a Service that releases it on shutdown.
type closer struct {
	c io.Closer
}

func (closer) Start(context.Context) error { return nil }

func (s closer) Shutdown(context.Context) error {
	if s.c == nil {
		return nil
	}
	return s.c.Close()
}

func CloseOnShutdown(c io.Closer) Service {
	return closer{c: c}
}

package xio

import (
	"io"
)

// NewResponseWriteCloser adapts w for encoders that close their output when
// done. Close only reaches w if w is an io.Closer itself, so an
// http.ResponseWriter stays usable by the server.
func NewResponseWriteCloser(w io.Writer) *ResponseWriteCloser {
	return &ResponseWriteCloser{
		w: w,
	}
}

type ResponseWriteCloser struct {
	w       io.Writer
	written int64
	closed  bool
}

func (rwc *ResponseWriteCloser) Write(p []byte) (int, error) {
	if rwc.closed {
		return 0, io.ErrClosedPipe
	}
	n, err := rwc.w.Write(p)
	rwc.written += int64(n)
	return n, err
}

// Written is the number of bytes passed through so far.
func (rwc *ResponseWriteCloser) Written() int64 {
	return rwc.written
}

func (rwc *ResponseWriteCloser) Close() error {
	if rwc.closed {
		return nil
	}
	rwc.closed = true
	if closer, ok := rwc.w.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

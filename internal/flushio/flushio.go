// Package flushio models output sinks that buffer and need a final Flush,
// and lets several of them stand in for one.
package flushio

import (
	"bufio"
	"io"
	"io/ioutil"
)

// WriteFlusher is a flush-able io.Writer.
type WriteFlusher interface {
	io.Writer
	Flush() error
}

var discard WriteFlusher = nopFlusher{ioutil.Discard}

// NewWriteFlusher adapts w into a WriteFlusher: writers that already are
// one come back as-is; in-memory buffers (which never need flushing) and
// ioutil.Discard get a no-op Flush; anything else gets wrapped in a
// bufio.Writer.
func NewWriteFlusher(w io.Writer) WriteFlusher {
	if w == ioutil.Discard {
		return discard
	}
	if wf, is := w.(WriteFlusher); is {
		return wf
	}
	type buffer interface {
		io.Writer
		Cap() int
		Len() int
		Grow(n int)
		Reset()
	}
	if _, isBuffer := w.(buffer); isBuffer {
		return nopFlusher{w}
	}
	return bufio.NewWriter(w)
}

type nopFlusher struct{ io.Writer }

func (nf nopFlusher) Flush() error { return nil }

// WriteFlushers combines any number of WriteFlusher-s into a single one
// that writes into and flushes all of them.
func WriteFlushers(wfs ...WriteFlusher) WriteFlusher {
	switch wfs := flatten(nil, wfs...); len(wfs) {
	case 0:
		return nil
	case 1:
		return wfs[0]
	default:
		return wfs
	}
}

type multi []WriteFlusher

func (wfs multi) Write(p []byte) (n int, err error) {
	for _, wf := range wfs {
		n, err = wf.Write(p)
		if err != nil {
			return n, err
		}
		if n != len(p) {
			return n, io.ErrShortWrite
		}
	}
	return len(p), nil
}

func (wfs multi) Flush() (err error) {
	for _, wf := range wfs {
		if ferr := wf.Flush(); err == nil {
			err = ferr
		}
	}
	return err
}

func flatten(all multi, some ...WriteFlusher) multi {
	for _, one := range some {
		if many, ok := one.(multi); ok {
			all = append(all, many...)
		} else if one != nil {
			all = append(all, one)
		}
	}
	return all
}

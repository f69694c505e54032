package xapi

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// frameReader splits a byte stream into terminator-delimited frames.
// Bytes received after a terminator are kept for the next frame.
type frameReader struct {
	r         io.Reader
	chunkSize int
	maxSize   int
	pending   []byte
	chunk     []byte
}

func newFrameReader(r io.Reader, chunkSize, maxSize int) *frameReader {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if maxSize <= 0 {
		maxSize = DefaultMaxFrameSize
	}
	return &frameReader{
		r:         r,
		chunkSize: chunkSize,
		maxSize:   maxSize,
		chunk:     make([]byte, chunkSize),
	}
}

// ReadFrame blocks until a full frame is available and returns it without the terminator.
func (f *frameReader) ReadFrame() ([]byte, error) {
	scanFrom := 0
	for {
		if idx := bytes.Index(f.pending[scanFrom:], terminator); idx >= 0 {
			end := scanFrom + idx
			frame := make([]byte, end)
			copy(frame, f.pending[:end])
			f.pending = append(f.pending[:0], f.pending[end+len(terminator):]...)
			return frame, nil
		}

		if len(f.pending) > f.maxSize {
			return nil, fmt.Errorf("%w: %d bytes without terminator", ErrFrameTooLarge, len(f.pending))
		}

		// the terminator may straddle two chunks
		scanFrom = len(f.pending) - len(terminator) + 1
		if scanFrom < 0 {
			scanFrom = 0
		}

		n, err := f.r.Read(f.chunk)
		f.pending = append(f.pending, f.chunk[:n]...)
		if err == nil {
			continue
		}
		if n > 0 && bytes.Contains(f.pending[scanFrom:], terminator) {
			// a complete frame arrived together with the error, serve it first
			continue
		}

		if errors.Is(err, io.EOF) {
			if len(bytes.TrimSpace(f.pending)) == 0 {
				return nil, fmt.Errorf("%w: %w", ErrConnectionClosed, io.EOF)
			}
			return nil, fmt.Errorf("%w: %w", ErrConnectionClosed, io.ErrUnexpectedEOF)
		}
		return nil, fmt.Errorf("read frame: %w", err)
	}
}

// Buffered returns the number of bytes received but not yet returned in a frame.
func (f *frameReader) Buffered() int {
	return len(f.pending)
}

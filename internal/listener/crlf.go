package listener

import (
	"bytes"
	"io"
)

// crlfWriter translates line endings between the console, which reads and
// writes \n, and network terminals, which send \r\n or a bare \r and need
// \r\n to return the cursor.
type crlfWriter struct {
	rw io.ReadWriter

	// afterCR is set when the last byte read was \r, so a \n opening the
	// next read belongs to the same line ending.
	afterCR bool
}

// newCRLFReadWriter wraps every telnet and ssh connection before it reaches
// a player session.
func newCRLFReadWriter(rw io.ReadWriter) io.ReadWriter {
	return &crlfWriter{rw: rw}
}

func (c *crlfWriter) Read(p []byte) (int, error) {
	n, err := c.rw.Read(p)

	// Output never outgrows input, so the translation happens in place.
	out := p[:0]
	for _, b := range p[:n] {
		switch {
		case b == '\n' && c.afterCR:
			c.afterCR = false
		case b == '\r':
			c.afterCR = true
			out = append(out, '\n')
		default:
			c.afterCR = false
			out = append(out, b)
		}
	}

	return len(out), err
}

func (c *crlfWriter) Write(p []byte) (int, error) {
	_, err := c.rw.Write(bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n")))
	// Callers see the length they asked to write.
	return len(p), err
}

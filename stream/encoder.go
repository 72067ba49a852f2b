package stream

import (
	"io"

	"github.com/numlab/bigint"
)

// Encoder writes decimal values to a stream, one per separator.
type Encoder struct {
	w   io.Writer
	sep []byte
}

// NewEncoder returns a new encoder writing to w with a newline
// separator.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{
		w:   w,
		sep: []byte("\n"),
	}
}

// SetSeparator changes the separator written after each value. The
// separator must contain whitespace for the output to remain decodable.
func (e *Encoder) SetSeparator(sep string) {
	e.sep = []byte(sep)
}

// Encode writes the canonical decimal form of x followed by the
// separator.
func (e *Encoder) Encode(x bigint.BigInt) (err error) {
	defer Error.WrapP(&err)

	buf := x.Append(nil)
	buf = append(buf, e.sep...)

	_, err = e.w.Write(buf)
	return err
}

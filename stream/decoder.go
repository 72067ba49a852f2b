package stream

import (
	"bufio"
	"io"

	"github.com/numlab/bigint"
)

// maxToken bounds a single decimal token. A million digits per value is
// far beyond anything the calculator surface needs while still keeping a
// runaway stream from exhausting memory.
const maxToken = 1 << 20

// Decoder reads whitespace-delimited decimal values from a stream.
type Decoder struct {
	s *bufio.Scanner
}

// NewDecoder returns a new decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)
	s.Buffer(make([]byte, 0, 64*1024), maxToken)

	return &Decoder{
		s: s,
	}
}

// Decode reads the next value from the stream into x. It returns io.EOF
// once the stream is exhausted.
func (d *Decoder) Decode(x *bigint.BigInt) (err error) {
	if !d.s.Scan() {
		if err := d.s.Err(); err != nil {
			return Error.Wrap(err)
		}
		return io.EOF
	}

	*x = bigint.Parse(d.s.Text())

	return nil
}

package stream_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/numlab/bigint"
	"github.com/numlab/bigint/stream"
)

func TestEncoder(t *testing.T) {
	buf := bytes.NewBuffer(nil)

	enc := stream.NewEncoder(buf)
	require.NoError(t, enc.Encode(bigint.Parse("123")))
	require.NoError(t, enc.Encode(bigint.Parse("-456")))

	require.Equal(t, "123\n-456\n", buf.String())
}

func TestEncoderSeparator(t *testing.T) {
	buf := bytes.NewBuffer(nil)

	enc := stream.NewEncoder(buf)
	enc.SetSeparator(" ")
	require.NoError(t, enc.Encode(bigint.Parse("1")))
	require.NoError(t, enc.Encode(bigint.Parse("2")))
	require.NoError(t, enc.Encode(bigint.Parse("3")))

	require.Equal(t, "1 2 3 ", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, bytes.ErrTooLarge
}

func TestEncoderWriteError(t *testing.T) {
	enc := stream.NewEncoder(failingWriter{})

	err := enc.Encode(bigint.Parse("1"))
	require.Error(t, err)
	require.ErrorIs(t, err, bytes.ErrTooLarge)
}

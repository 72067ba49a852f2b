package main

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/numlab/bigint"
)

func TestApply(t *testing.T) {
	type TC struct {
		name string
		x    string
		op   string
		y    string
		want string
		ok   bool
	}

	tcs := []TC{
		{"add", "123", "+", "456", "579", true},
		{"sub", "123", "-", "456", "-333", true},
		{"mul", "-25", "*", "4", "-100", true},
		{"div floors", "-7", "/", "2", "-4", true},
		{"mod follows divisor", "-7", "%", "2", "1", true},
		{"div by zero", "1", "/", "0", "", false},
		{"unknown operator", "1", "^", "2", "", false},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			r, err := apply(bigint.Parse(tc.x), tc.op, bigint.Parse(tc.y))
			if !tc.ok {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.want, r.String())
		})
	}
}

func TestRunArgs(t *testing.T) {
	out := bytes.NewBuffer(nil)

	rootCmd.SetOut(out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs([]string{"999999999999999999", "*", "999999999999999999"})

	require.NoError(t, rootCmd.Execute())
	require.Equal(t, "999999999999999998000000000000000001\n", out.String())
}

func TestRunStdin(t *testing.T) {
	out := bytes.NewBuffer(nil)

	rootCmd.SetOut(out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetIn(strings.NewReader("-7 2"))
	rootCmd.SetArgs([]string{"/"})

	require.NoError(t, rootCmd.Execute())
	require.Equal(t, "-4\n", out.String())
}

// Command bigcalc evaluates a single arbitrary-precision integer
// operation and prints the result.
//
// With three arguments the operands come from the command line:
//
//	bigcalc 123 + 456
//
// With only an operator the two operands are read from stdin:
//
//	echo "-7 2" | bigcalc /
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/numlab/bigint"
	"github.com/numlab/bigint/stream"
)

var rootCmd = &cobra.Command{
	Use:          "bigcalc [<lhs>] <op> [<rhs>]",
	Short:        "arbitrary-precision integer calculator",
	Long:         "bigcalc applies one of + - * / % to two arbitrary-precision integers.\nOperands are given on the command line or, with a lone operator, read\nfrom stdin.",
	Args:         cobra.RangeArgs(1, 3),
	SilenceUsage: true,
	RunE:         run,
}

func run(cmd *cobra.Command, args []string) error {
	var lhs, rhs bigint.BigInt
	var op string

	switch len(args) {
	case 3:
		lhs = bigint.Parse(args[0])
		op = args[1]
		rhs = bigint.Parse(args[2])
	case 1:
		op = args[0]

		dec := stream.NewDecoder(cmd.InOrStdin())
		if err := dec.Decode(&lhs); err != nil {
			return err
		}
		if err := dec.Decode(&rhs); err != nil {
			return err
		}
	default:
		return Error.New("expected <lhs> <op> <rhs> or a lone <op>")
	}

	result, err := apply(lhs, op, rhs)
	if err != nil {
		return err
	}

	return stream.NewEncoder(cmd.OutOrStdout()).Encode(result)
}

func apply(x bigint.BigInt, op string, y bigint.BigInt) (bigint.BigInt, error) {
	switch op {
	case "+":
		return x.Add(y), nil
	case "-":
		return x.Sub(y), nil
	case "*":
		return x.Mul(y), nil
	case "/":
		return x.Div(y)
	case "%":
		return x.Mod(y)
	}

	return bigint.BigInt{}, Error.New("unknown operator %q", op)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

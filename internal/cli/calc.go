package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/avdva/widefix"
)

type operation struct {
	arity int
	fn    func(a, b widefix.Fixed) (widefix.Fixed, error)
}

var operations = map[string]operation{
	"add":   {2, func(a, b widefix.Fixed) (widefix.Fixed, error) { return a.Add(b), nil }},
	"sub":   {2, func(a, b widefix.Fixed) (widefix.Fixed, error) { return a.Sub(b), nil }},
	"mul":   {2, func(a, b widefix.Fixed) (widefix.Fixed, error) { return a.Mul(b), nil }},
	"div":   {2, func(a, b widefix.Fixed) (widefix.Fixed, error) { return a.TryDiv(b) }},
	"rem":   {2, func(a, b widefix.Fixed) (widefix.Fixed, error) { return a.TryRem(b) }},
	"inv":   {1, func(a, _ widefix.Fixed) (widefix.Fixed, error) { return a.TryInv() }},
	"sqrt":  {1, func(a, _ widefix.Fixed) (widefix.Fixed, error) { return a.TrySqrt() }},
	"neg":   {1, func(a, _ widefix.Fixed) (widefix.Fixed, error) { return a.Neg(), nil }},
	"abs":   {1, func(a, _ widefix.Fixed) (widefix.Fixed, error) { return a.Abs(), nil }},
	"floor": {1, func(a, _ widefix.Fixed) (widefix.Fixed, error) { return a.Floor(), nil }},
}

func operationNames() string {
	names := make([]string, 0, len(operations))
	for name := range operations {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func newCalcCommand() *cobra.Command {
	var base int
	cmd := &cobra.Command{
		Use:   "calc OP A [B]",
		Short: "Evaluate a single operation",
		Long: `Evaluate a single operation and print the exact result, its float64
approximation and its raw words, the least significant first.
Operations: ` + operationNames() + `.
Put negative operands after --, like: widefix calc sub -- 3 -5.3`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, found := operations[args[0]]
			if !found {
				return fmt.Errorf("unknown operation %q, want one of: %s", args[0], operationNames())
			}
			if len(args)-1 != op.arity {
				return fmt.Errorf("%s takes %d operand(s), got %d", args[0], op.arity, len(args)-1)
			}
			var operands [2]widefix.Fixed
			for i, arg := range args[1:] {
				v, err := parseOperand(arg, base)
				if err != nil {
					return err
				}
				operands[i] = v
			}
			res, err := op.fn(operands[0], operands[1])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "value:   %s\n", res)
			fmt.Fprintf(out, "float64: %v\n", res.Float64())
			fmt.Fprintf(out, "words:   %08x\n", res.Words())
			return nil
		},
	}
	cmd.Flags().IntVar(&base, "base", 10, "radix of the operands, only integers are accepted for bases other than 10")
	return cmd
}

func parseOperand(s string, base int) (widefix.Fixed, error) {
	if base == 10 {
		return widefix.FromString(s)
	}
	return widefix.Parse(s, base)
}

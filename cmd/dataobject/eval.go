package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dataobject/eval"
	"dataobject/props"
	"dataobject/types"
)

func newEvalCmd() *cobra.Command {
	var sets []string

	cmd := &cobra.Command{
		Use:   "eval [--set key=value]... EXPR",
		Short: "Evaluate a program against a property bag",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bag, err := parseSets(sets)
			if err != nil {
				return err
			}

			source := strings.Join(args, " ")
			zap.S().Debugw("evaluating", "source", source, "props", bag.Len())

			before := bag.Fingerprint()
			val, err := eval.NewEvaluator(bag).Run(source)
			if err != nil {
				return err
			}
			zap.S().Debugw("evaluated", "result", val.GoString(), "bag_changed", bag.Fingerprint() != before)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", val.String(), val.TypeName())
			if bag.Len() > 0 {
				fmt.Fprintln(out, bag.String())
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&sets, "set", nil, "seed a property, parsed like a string value (repeatable)")
	return cmd
}

// parseSets builds a bag from key=value pairs. Values are tagged the way
// any string value is, so --set Id=256 holds an Int32-tagged string.
func parseSets(sets []string) (*props.Bag, error) {
	bag := props.New()
	for _, kv := range sets {
		key, val, ok := strings.Cut(kv, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --set %q: expected key=value", kv)
		}
		if err := bag.Set(strings.TrimSpace(key), types.FromString(val)); err != nil {
			return nil, fmt.Errorf("invalid --set %q: %w", kv, err)
		}
	}
	return bag, nil
}

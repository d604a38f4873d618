package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"dataobject/types"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect VALUE...",
		Short: "Show how string values are tagged and coerced",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TEXT\tTYPE\tHAS VALUE\tNUMERIC\tBOOL\tINT32\tDOUBLE\tHASH")
			for _, arg := range args {
				inspect(w, types.FromString(arg))
			}
			return w.Flush()
		},
	}
}

func inspect(w io.Writer, v types.Value) {
	var i string
	if n, err := v.AsInt32(); err == nil {
		i = fmt.Sprint(n)
	} else {
		i = types.CodeOf(err).String()
	}

	var d string
	if x, err := v.AsFloat64(); err == nil {
		d = types.FromFloat64(x).String()
	} else {
		d = types.CodeOf(err).String()
	}

	fmt.Fprintf(w, "%q\t%s\t%t\t%t\t%t\t%s\t%s\t%016x\n",
		v.Boxed(), v.TypeName(), v.HasValue(), v.IsNumeric(), v.AsBool(), i, d, v.Hash())
}

// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/hwyblas/hwy/contrib/blas"
	"github.com/ajroetker/hwyblas/internal/bench"
)

type options struct {
	ops      []string
	backends []string
	min      int
	max      int
	mult     int
	format   string
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "blasbench",
		Short:         "Benchmark the dense float64 kernels compiled into this build",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCmd(), newListCmd())
	return root
}

func (o *options) addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&o.ops, "op", nil, "operations to include (dot, gemm, gemv, axpy); default all")
	cmd.Flags().StringSliceVar(&o.backends, "backend", nil, "variants or providers to include (scalar, simd, accelerated, gonum, ...); default all")
}

func (o *options) table() ([]bench.Entry, error) {
	ops := make([]blas.Op, 0, len(o.ops))
	for _, s := range o.ops {
		op, err := blas.ParseOp(s)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	table := bench.Filter(bench.DefaultTable(), ops, o.backends)
	if len(table) == 0 {
		return nil, fmt.Errorf("no implementation matches --op=%v --backend=%v", o.ops, o.backends)
	}
	return table, nil
}

func newRunCmd() *cobra.Command {
	o := &options{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the benchmark table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.run(cmd)
		},
	}
	o.addFilterFlags(cmd)
	cmd.Flags().IntVar(&o.min, "min", 0, "smallest size; default per operation")
	cmd.Flags().IntVar(&o.max, "max", 0, "largest size; default per operation")
	cmd.Flags().IntVar(&o.mult, "mult", 0, "size multiplier between steps; default per operation")
	cmd.Flags().StringVar(&o.format, "format", "text", "output format: text or json")
	return cmd
}

func (o *options) run(cmd *cobra.Command) error {
	if o.format != "text" && o.format != "json" {
		return fmt.Errorf("unknown --format %q", o.format)
	}
	table, err := o.table()
	if err != nil {
		return err
	}
	if o.min != 0 || o.max != 0 || o.mult != 0 {
		table, err = o.overrideRanges(table)
		if err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if o.format == "json" {
		var results []bench.Result
		if err := bench.Run(cmd.Context(), table, func(r bench.Result) {
			results = append(results, r)
			fmt.Fprintf(cmd.ErrOrStderr(), "%s\n", r.Name)
		}); err != nil {
			return err
		}
		exe, _ := os.Executable()
		return bench.WriteJSON(out, bench.Report{Context: bench.NewContext(exe), Benchmarks: results})
	}

	tw := bench.NewTextWriter(out)
	err = bench.Run(cmd.Context(), table, func(r bench.Result) {
		tw.Write(r)
	})
	if ferr := tw.Flush(); err == nil {
		err = ferr
	}
	return err
}

// overrideRanges applies the flags that were set on top of each entry's
// default range.
func (o *options) overrideRanges(table []bench.Entry) ([]bench.Entry, error) {
	out := make([]bench.Entry, len(table))
	for i, e := range table {
		if o.min != 0 {
			e.Range.Min = o.min
		}
		if o.max != 0 {
			e.Range.Max = o.max
		}
		if o.mult != 0 {
			e.Range.Mult = o.mult
		}
		if err := e.Range.Validate(); err != nil {
			return nil, fmt.Errorf("%v: %w", e.Desc, err)
		}
		out[i] = e
	}
	return out, nil
}

func newListCmd() *cobra.Command {
	o := &options{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the benchmark table and the implementation each operation dispatches to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			table, err := o.table()
			if err != nil {
				return err
			}
			return list(cmd.OutOrStdout(), table)
		},
	}
	o.addFilterFlags(cmd)
	return cmd
}

func list(w io.Writer, table []bench.Entry) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tDESCRIPTOR\tSIZES\tSELECTED")
	for _, e := range table {
		selected := lo.Ternary(blas.Selected(e.Desc.Op) == e.Desc, "*", "")
		fmt.Fprintf(tw, "%s\t%v\t%d..%d (x%d, %d steps)\t%s\n",
			e.Family(), e.Desc, e.Range.Min, e.Range.Max, e.Range.Mult, len(e.Range.Sizes()), selected)
	}
	return tw.Flush()
}

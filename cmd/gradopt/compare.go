package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/born-ml/gradopt/internal/optim"
	"github.com/born-ml/gradopt/internal/parallel"
	"github.com/born-ml/gradopt/internal/tensor"
	"github.com/born-ml/gradopt/internal/testfunc"
)

type compareOptions struct {
	objective string
	stepsize  float64
	steps     int
	dim       int
	workers   int
}

type compareResult struct {
	kind  optim.Kind
	value float64
	x     *tensor.Array
}

func newCompareCommand() *cobra.Command {
	o := &compareOptions{}

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run every optimizer on the same objective and report the final values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.run(cmd.Context(), cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&o.objective, "objective", "rosenbrock", "objective function")
	flags.Float64Var(&o.stepsize, "stepsize", 0.001, "base learning rate for every optimizer")
	flags.IntVar(&o.steps, "steps", 1000, "number of steps")
	flags.IntVar(&o.dim, "dim", 2, "number of parameters")
	flags.IntVar(&o.workers, "workers", 0, "concurrent runs (0: one per CPU)")

	return cmd
}

func (o *compareOptions) run(ctx context.Context, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	fn, err := testfunc.Lookup(o.objective)
	if err != nil {
		return err
	}
	if err := fn.CheckDim(o.dim); err != nil {
		return err
	}

	cfg := parallel.DefaultConfig()
	if o.workers > 0 {
		cfg.NumWorkers = o.workers
		cfg.Enabled = o.workers > 1
	}

	kinds := optim.Kinds()
	results := make([]compareResult, len(kinds))

	// Each job owns its optimizer; nothing is shared between goroutines.
	err = parallel.For(ctx, len(kinds), func(ctx context.Context, i int) error {
		config := optim.DefaultConfig()
		config.Stepsize = o.stepsize
		opt, err := optim.New(kinds[i], config)
		if err != nil {
			return err
		}

		x := fn.Start(o.dim)
		for s := 0; s < o.steps; s++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			if x, err = opt.Step(fn.F, x, fn.Grad); err != nil {
				return errors.Wrapf(err, "%s step %d", kinds[i], s+1)
			}
		}
		results[i] = compareResult{kind: kinds[i], value: fn.F(x), x: x}
		return nil
	}, cfg)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "OPTIMIZER\tF(X)\tX\n")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%.6g\t%v\n", r.kind, r.value, r.x)
	}
	return w.Flush()
}

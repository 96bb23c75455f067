package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/born-ml/gradopt/internal/diff"
	"github.com/born-ml/gradopt/internal/optim"
	"github.com/born-ml/gradopt/internal/tensor"
	"github.com/born-ml/gradopt/internal/testfunc"
)

type runOptions struct {
	optimizer string
	objective string
	config    optim.Config
	beta1     float64
	beta2     float64
	steps     int
	dim       int
	x0        []float64
	every     int
	numeric   bool
}

func newRunCommand() *cobra.Command {
	o := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Minimize a benchmark objective and print the trajectory",
		Example: `  gradopt run --optimizer adam --stepsize 0.05 --objective rosenbrock --steps 500
  gradopt run --optimizer nesterov --objective sphere --x0 1,-2 --numeric`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			o.config.Betas = [2]float64{o.beta1, o.beta2}
			return o.run(cmd.OutOrStdout())
		},
	}

	defaults := optim.DefaultConfig()
	flags := cmd.Flags()
	flags.StringVar(&o.optimizer, "optimizer", string(optim.GradientDescent),
		"optimizer variant: "+strings.Join(kindNames(), ", "))
	flags.StringVar(&o.objective, "objective", "sphere",
		"objective: "+strings.Join(testfunc.Names(), ", "))
	flags.Float64Var(&o.config.Stepsize, "stepsize", defaults.Stepsize, "base learning rate")
	flags.Float64Var(&o.config.Momentum, "momentum", defaults.Momentum, "momentum factor (momentum, nesterov)")
	flags.Float64Var(&o.config.Decay, "decay", defaults.Decay, "decay of the squared-gradient average (rmsprop)")
	flags.Float64Var(&o.beta1, "beta1", defaults.Betas[0], "first moment coefficient (adam)")
	flags.Float64Var(&o.beta2, "beta2", defaults.Betas[1], "second moment coefficient (adam)")
	flags.IntVar(&o.steps, "steps", 100, "number of steps")
	flags.IntVar(&o.dim, "dim", 2, "number of parameters when --x0 is not set")
	flags.Float64SliceVar(&o.x0, "x0", nil, "starting point (default: the objective's customary start)")
	flags.IntVar(&o.every, "every", 10, "print every N steps")
	flags.BoolVar(&o.numeric, "numeric", false, "use finite differences instead of the analytic gradient")

	return cmd
}

func (o *runOptions) run(out io.Writer) error {
	fn, err := testfunc.Lookup(o.objective)
	if err != nil {
		return err
	}

	dim := o.dim
	if len(o.x0) > 0 {
		dim = len(o.x0)
	}
	if err := fn.CheckDim(dim); err != nil {
		return err
	}
	x := fn.Start(dim)
	if len(o.x0) > 0 {
		x = tensor.Vector(o.x0...)
	}
	if o.steps < 0 || o.every <= 0 {
		return errors.Errorf("invalid --steps %d / --every %d", o.steps, o.every)
	}

	o.config.Engine = diff.FiniteDifference{}
	opt, err := optim.New(optim.Kind(o.optimizer), o.config)
	if err != nil {
		return err
	}

	grad := fn.Grad
	if o.numeric {
		grad = nil
	}

	fmt.Fprintf(out, "optimizer=%s objective=%s stepsize=%g\n", opt.Kind(), fn.Name, opt.Stepsize())
	fmt.Fprintf(out, "%6d  f=%-14.8g x=%v\n", 0, fn.F(x), x)
	for i := 1; i <= o.steps; i++ {
		x, err = opt.Step(fn.F, x, grad)
		if err != nil {
			return errors.Wrapf(err, "step %d", i)
		}
		if i%o.every == 0 || i == o.steps {
			fmt.Fprintf(out, "%6d  f=%-14.8g x=%v\n", i, fn.F(x), x)
		}
	}
	return nil
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List optimizers and objectives",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Optimizers: %s\n", strings.Join(kindNames(), ", "))
			fmt.Fprintf(out, "Objectives: %s\n", strings.Join(testfunc.Names(), ", "))
		},
	}
}

func kindNames() []string {
	kinds := optim.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return names
}

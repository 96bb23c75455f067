package optim_test

import (
	"fmt"

	"github.com/born-ml/gradopt/optim"
	"github.com/born-ml/gradopt/tensor"
)

func Example() {
	cost := func(x *tensor.Array) float64 { return x.Item() * x.Item() }
	grad := func(x *tensor.Array) (*tensor.Array, error) { return x.Scale(2), nil }

	opt, err := optim.NewGradientDescent(optim.Config{Stepsize: 0.1})
	if err != nil {
		panic(err)
	}

	x := tensor.Scalar(1)
	for i := 0; i < 3; i++ {
		x, err = opt.Step(cost, x, grad)
		if err != nil {
			panic(err)
		}
		fmt.Printf("%.4f\n", x.Item())
	}
	// Output:
	// 0.8000
	// 0.6400
	// 0.5120
}

func ExampleOptimizer_Reset() {
	grad := func(x *tensor.Array) (*tensor.Array, error) { return x.Scale(2), nil }

	config := optim.DefaultConfig()
	config.Stepsize = 0.1
	opt, _ := optim.NewAdam(config)
	x := tensor.Vector(1)
	x, _ = opt.Step(nil, x, grad)
	x, _ = opt.Step(nil, x, grad)
	fmt.Println(opt.Timestep(), opt.State())

	opt.Reset()
	fmt.Println(opt.Timestep(), opt.State())
	// Output:
	// 2 active
	// 0 uninitialized
}

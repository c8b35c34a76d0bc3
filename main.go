package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/km-arc/go-calculator/app"
	"github.com/km-arc/go-calculator/app/calculator"
	"github.com/km-arc/go-calculator/framework/container"
)

func main() {
	application, err := app.Bootstrap() // loads .env automatically
	if err != nil {
		fmt.Fprintf(os.Stderr, "bootstrap: %v\n", err)
		os.Exit(1)
	}
	defer application.Shutdown()

	if err := application.Boot(); err != nil {
		application.Logger.Error("boot failed", zap.Error(err))
		application.Shutdown()
		os.Exit(1)
	}

	if err := run(application.Container, os.Stdout); err != nil {
		application.Logger.Error("demo failed", zap.Error(err))
		application.Shutdown()
		os.Exit(1)
	}
}

// run pulls each component out of the container and prints one result per
// component.
func run(c *container.Container, w io.Writer) error {
	adder, err := container.Resolve[*calculator.Adder](c, calculator.AdderKey)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Got the adder bean. it says the result of 2+2=%v\n", adder.Add(2, 2))

	multiplier, err := container.Resolve[*calculator.Multiplier](c, calculator.MultiplierKey)
	if err != nil {
		return err
	}
	product, err := multiplier.Multiply(3, 4)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Got the multiplier bean. it says the result of 3*4=%v\n", product)

	fmt.Fprintln(w, "Now, if the squarer bean was properly set up, this should work ...")
	squarer, err := container.Resolve[*calculator.Squarer](c, calculator.SquarerKey)
	if err != nil {
		return err
	}
	square, err := squarer.Square(4)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Got the squarer bean. it says the result of 4^2=%v\n", square)
	return nil
}

package container_test

import (
	"errors"
	"fmt"

	"github.com/km-arc/go-calculator/framework/container"
)

type greeter struct{ name string }

func (g *greeter) Greet() string { return "hello, " + g.name }

func Example() {
	c := container.New()
	_ = c.Instance("name", "gopher")
	_ = c.Singleton("greeter", []string{"name"}, container.Factory1(func(name string) *greeter {
		return &greeter{name: name}
	}))

	if err := c.Build(); err != nil {
		fmt.Println(err)
		return
	}

	g, _ := container.Resolve[*greeter](c, "greeter")
	fmt.Println(g.Greet())
	// Output: hello, gopher
}

func ExampleContainer_Build_cycle() {
	c := container.New()
	_ = c.Singleton("a", []string{"b"}, func(...any) (any, error) { return nil, nil })
	_ = c.Singleton("b", []string{"a"}, func(...any) (any, error) { return nil, nil })

	err := c.Build()
	fmt.Println(errors.Is(err, container.ErrCyclicDependency))
	fmt.Println(err)
	// Output:
	// true
	// container: cyclic dependency [a -> b -> a]
}

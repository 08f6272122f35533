package probing

import "fmt"

// Strategy produces the error patterns a sweep injects into every codeword.
type Strategy interface {
	Name() string
	Patterns() []Pattern
}

// FromName returns the strategy registered under name.
func FromName(name string) (Strategy, error) {
	switch name {
	case "single":
		return NewSingleProbing(), nil
	case "double":
		return NewDoubleProbing(), nil
	default:
		return nil, fmt.Errorf("probing: unknown strategy %q", name)
	}
}

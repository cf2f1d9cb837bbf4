// Package simple provides a deterministic counter-backed id generator,
// useful in tests and local runs where reproducible ids matter.
package simple

import (
	"context"
	"fmt"
	"sync"
)

type Generator struct {
	mu      sync.Mutex
	counter int
}

func New() *Generator {
	//nolint:exhaustruct
	return &Generator{}
}

func (g *Generator) NextID(_ context.Context, prefix string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.counter++

	return fmt.Sprintf("%s%08d", prefix, g.counter), nil
}

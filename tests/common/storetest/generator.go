//go:build unit || e2e

package storetest

import (
	"sync"

	"promo-code-service/internal/domain/promocode"
)

// SequenceGenerator returns the given codes in order and then repeats the
// last one forever, which makes collisions easy to force.
type SequenceGenerator struct {
	mu    sync.Mutex
	codes []promocode.Code
	next  int
	calls int
}

func NewSequenceGenerator(codes ...promocode.Code) *SequenceGenerator {
	return &SequenceGenerator{codes: codes}
}

func (g *SequenceGenerator) Generate() (promocode.Code, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls++
	code := g.codes[g.next]
	if g.next < len(g.codes)-1 {
		g.next++
	}
	return code, nil
}

func (g *SequenceGenerator) Calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

package distance

import (
	"context"
	"fmt"
	"sync"

	"wastewise-admin-service/internal/ports"
)

// MockPair is one directed leg known to a MockDistanceProvider.
type MockPair struct {
	From, To string
	Meters   int
	Seconds  int
}

// MockDistanceProvider serves fixed legs from memory.
type MockDistanceProvider struct {
	mu    sync.Mutex
	m     map[string]ports.DistanceResult
	calls int
	err   error
}

func NewMockDistanceProvider(pairs []MockPair) *MockDistanceProvider {
	m := make(map[string]ports.DistanceResult, len(pairs))
	for _, p := range pairs {
		m[normalize(p.From)+"|"+normalize(p.To)] = ports.DistanceResult{DistanceMeters: p.Meters, DurationSeconds: p.Seconds}
	}
	return &MockDistanceProvider{m: m}
}

// FailWith makes every later lookup return err.
func (p *MockDistanceProvider) FailWith(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.err = err
}

// Calls reports how many legs have been looked up.
func (p *MockDistanceProvider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func (p *MockDistanceProvider) GetDistance(ctx context.Context, origin, destination string) (ports.DistanceResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++

	if p.err != nil {
		return ports.DistanceResult{}, p.err
	}
	o, d := normalize(origin), normalize(destination)
	if o == d {
		return ports.DistanceResult{}, nil
	}
	r, ok := p.m[o+"|"+d]
	if !ok {
		return ports.DistanceResult{}, fmt.Errorf("missing pair %q -> %q", origin, destination)
	}
	return r, nil
}

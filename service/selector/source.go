package selector

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Source yields an unbiased index in [0, n). Production wiring uses the
// crypto source; tests substitute a scripted one.
type Source interface {
	PickUniform(n int) (int, error)
}

type cryptoSource struct{}

// NewCryptoSource returns a Source backed by the platform entropy source.
func NewCryptoSource() Source {
	return cryptoSource{}
}

func (cryptoSource) PickUniform(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("pick-uniform requires n > 0, got %d", n)
	}
	value, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("failed to draw random index: %w", err)
	}
	return int(value.Int64()), nil
}

// Scripted replays a fixed sequence of indices; test use only.
type Scripted struct {
	indices []int
	next    int
}

// NewScripted builds a Source that returns the supplied indices in order.
func NewScripted(indices ...int) *Scripted {
	return &Scripted{indices: indices}
}

func (s *Scripted) PickUniform(n int) (int, error) {
	if s.next >= len(s.indices) {
		return 0, fmt.Errorf("scripted source exhausted after %d draws", len(s.indices))
	}
	index := s.indices[s.next]
	s.next++
	if index < 0 || index >= n {
		return 0, fmt.Errorf("scripted index %d out of range [0, %d)", index, n)
	}
	return index, nil
}

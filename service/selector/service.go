package selector

import (
	"github.com/viant/roomplan/model"
	"github.com/viant/roomplan/model/types"
)

// Service removes and returns one pending reservation chosen uniformly at
// random; every pool member has equal probability regardless of position.
type Service struct {
	source Source
}

// New creates a selection service; a nil source falls back to the crypto
// source.
func New(source Source) *Service {
	if source == nil {
		source = NewCryptoSource()
	}
	return &Service{source: source}
}

// Pick draws one reservation from a non-empty pool and removes it. An empty
// pool violates the precondition and surfaces types.ErrEmptyPool.
func (s *Service) Pick(pool *model.Pool) (*model.Reservation, error) {
	if pool.IsEmpty() {
		return nil, types.ErrEmptyPool
	}
	index, err := s.source.PickUniform(pool.Size())
	if err != nil {
		return nil, err
	}
	return pool.Remove(index), nil
}

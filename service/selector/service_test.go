package selector

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/viant/roomplan/model"
	"github.com/viant/roomplan/model/calendar"
	"github.com/viant/roomplan/model/types"
)

func TestService_Pick(t *testing.T) {
	a := reservation(t, "Alice")
	b := reservation(t, "Bob")
	c := reservation(t, "Carol")

	svc := New(NewScripted(1, 0, 0))
	pool := model.NewPool(a, b, c)

	picked, err := svc.Pick(pool)
	assert.NoError(t, err)
	assert.Same(t, b, picked)
	assert.Equal(t, 2, pool.Size())

	picked, err = svc.Pick(pool)
	assert.NoError(t, err)
	assert.Same(t, a, picked)

	picked, err = svc.Pick(pool)
	assert.NoError(t, err)
	assert.Same(t, c, picked)
	assert.True(t, pool.IsEmpty())
}

func TestService_PickEmptyPool(t *testing.T) {
	svc := New(NewScripted(0))
	_, err := svc.Pick(model.NewPool())
	assert.ErrorIs(t, err, types.ErrEmptyPool)
}

func TestCryptoSource(t *testing.T) {
	source := NewCryptoSource()
	for i := 0; i < 100; i++ {
		index, err := source.PickUniform(5)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, index, 0)
		assert.Less(t, index, 5)
	}

	index, err := source.PickUniform(1)
	assert.NoError(t, err)
	assert.Equal(t, 0, index)

	_, err = source.PickUniform(0)
	assert.Error(t, err)
}

func TestScripted(t *testing.T) {
	source := NewScripted(0, 2)

	index, err := source.PickUniform(3)
	assert.NoError(t, err)
	assert.Equal(t, 0, index)

	// scripted index outside [0, n) is rejected
	_, err = source.PickUniform(2)
	assert.Error(t, err)

	// exhausted script
	_, err = source.PickUniform(3)
	assert.Error(t, err)
}

func reservation(t *testing.T, name string) *model.Reservation {
	t.Helper()
	result, err := model.NewReservation(name,
		calendar.Day(2024, time.January, 1),
		calendar.Day(2024, time.January, 2))
	assert.NoError(t, err)
	return result
}

package policy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolicy_Admits(t *testing.T) {
	testCases := []struct {
		description string
		policy      *Policy
		name        string
		expect      bool
	}{
		{
			description: "nil policy admits everything",
			policy:      nil,
			name:        "Alice",
			expect:      true,
		},
		{
			description: "empty policy admits everything",
			policy:      &Policy{},
			name:        "Alice",
			expect:      true,
		},
		{
			description: "allow list admits member",
			policy:      &Policy{AllowList: []string{"Alice", "Bob"}},
			name:        "Bob",
			expect:      true,
		},
		{
			description: "allow list rejects stranger",
			policy:      &Policy{AllowList: []string{"Alice"}},
			name:        "Mallory",
			expect:      false,
		},
		{
			description: "block list rejects member",
			policy:      &Policy{BlockList: []string{"Mallory"}},
			name:        "Mallory",
			expect:      false,
		},
		{
			description: "block wins over allow",
			policy:      &Policy{AllowList: []string{"Alice"}, BlockList: []string{"Alice"}},
			name:        "Alice",
			expect:      false,
		},
		{
			description: "matching is case-insensitive",
			policy:      &Policy{AllowList: []string{"alice"}},
			name:        "ALICE",
			expect:      true,
		},
	}

	for _, testCase := range testCases {
		assert.Equalf(t, testCase.expect, testCase.policy.Admits(testCase.name), testCase.description)
	}
}

func TestContextRoundTrip(t *testing.T) {
	assert.Nil(t, FromContext(context.Background()))

	p := &Policy{AllowList: []string{"Alice"}}
	ctx := WithPolicy(context.Background(), p)
	assert.Same(t, p, FromContext(ctx))
}

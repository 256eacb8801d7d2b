// Package policy provides a simple, optional admission layer applied to
// reservation requests before resolution starts. It is deliberately
// decoupled from the resolver – engines that do not embed a Policy in their
// context admit every request.

package policy

import (
	"context"
	"strings"
)

// Policy filters incoming requests by requester name.
//
//   - BlockList entries are rejected regardless of AllowList.
//   - An empty AllowList admits everything; otherwise only listed names.
//
// A nil *Policy means "admit everything" and is therefore the zero-cost
// default.
type Policy struct {
	AllowList []string `json:"allow,omitempty" yaml:"allow,omitempty"`
	BlockList []string `json:"block,omitempty" yaml:"block,omitempty"`
}

// Admits evaluates AllowList / BlockList. Both lists match by exact,
// case-insensitive comparison of the requester name.
func (p *Policy) Admits(name string) bool {
	if p == nil {
		return true
	}
	normalized := strings.ToLower(name)
	for _, blocked := range p.BlockList {
		if normalized == strings.ToLower(blocked) {
			return false
		}
	}
	if len(p.AllowList) == 0 {
		return true
	}
	for _, allowed := range p.AllowList {
		if normalized == strings.ToLower(allowed) {
			return true
		}
	}
	return false
}

type ctxKeyT struct{}

var ctxKey ctxKeyT

// WithPolicy embeds policy in ctx.
func WithPolicy(ctx context.Context, p *Policy) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxKey, p)
}

// FromContext extracts the policy or nil.
func FromContext(ctx context.Context) *Policy {
	if ctx == nil {
		return nil
	}
	if v, ok := ctx.Value(ctxKey).(*Policy); ok {
		return v
	}
	return nil
}

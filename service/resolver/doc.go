// Package resolver implements the randomized greedy resolution loop: pick a
// pending reservation uniformly at random, commit it against per-day
// availability, prune pending reservations that can no longer fit, and
// append the pick to the granted sequence until the pool drains.
package resolver

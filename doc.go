// Package roomplan resolves a set of competing reservation requests against
// a fixed pool of interchangeable rooms over a calendar horizon, using
// randomized greedy selection with capacity-based conflict pruning.
//
// The engine answers: which subset of requests can be simultaneously honored
// without exceeding per-day capacity, and in what order were they granted?
// It comes with pluggable service layers:
//
//   - resolver – the pick/commit/prune resolution loop
//   - selector – injectable uniform random selection
//   - pruner   – capacity-based conflict pruning
//   - loader   – request-file loading and admission
//   - exporter – granted-sequence rendering
//
// roomplan is designed to be embedded in host applications. End-users
// typically interact with the engine via the high-level Service façade
// exposed by the root package:
//
//	srv, err := roomplan.New(roomplan.WithRooms(2))
//	if err != nil { ... }
//	rt := srv.Runtime()
//	requests, _ := rt.LoadRequests(ctx, "requests.csv")
//	session, _ := rt.Resolve(ctx, requests)
//
// For more details see the individual sub-packages.
package roomplan

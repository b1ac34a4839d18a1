// Package compute provides the data-parallel execution backend for gate
// application.
//
// A backend partitions an index range into chunks and runs a unit of work
// over each chunk, joining before it returns:
//
//	compute.GetBackend().Run(len(amps), func(lo, hi int) { ... })
//
// The CPU backend fans chunks out across runtime.NumCPU() goroutines for
// large ranges and degenerates to a single serial call for small ones,
// where goroutine overhead would dominate.
package compute

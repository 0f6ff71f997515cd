// Package probe triggers address resolution for candidate hosts.
// - Each probe runs a single one-shot ping with a short timeout
// - Probe results are discarded; the point is the OS-level side effect
//   of populating the neighbor table
// - Sweeps run with bounded parallelism so a /24 scan cannot exhaust
//   process or thread limits
package probe

// Package neigh reads the OS neighbor/ARP table.
// - The table is dumped with one external command per read: `arp -a`
//   on macOS, `ip neigh show` elsewhere (no root required)
// - Output is parsed line-by-line through a Parser strategy selected
//   once at startup by OS detection
// - Lines that do not describe a fully resolved entry are skipped
//   silently
package neigh

package easel

import "strconv"

// IDGenerator hands out shape ids of the form "<kind>-<n>". The counter is
// shared across kinds, starts at zero and only grows. Each Store owns its own
// generator; generators are not safe for concurrent use.
type IDGenerator struct {
	n uint64
}

// Next returns a fresh id for a shape of the given kind.
func (g *IDGenerator) Next(kind Kind) string {
	g.n++
	return kind.String() + "-" + strconv.FormatUint(g.n, 10)
}

// Issued returns how many ids have been handed out.
func (g *IDGenerator) Issued() uint64 {
	return g.n
}

package analytics

// xorshift32 is a tiny seeded generator. Rival tables must look the same on
// every render, so nothing in this package touches math/rand.
type xorshift32 struct {
	state uint32
}

func newXorshift32(seed uint32) *xorshift32 {
	if seed == 0 {
		seed = 0x9e3779b9
	}
	r := &xorshift32{state: seed}
	// the first outputs of small seeds are small too
	for range 4 {
		r.next()
	}
	return r
}

func (r *xorshift32) next() uint32 {
	r.state ^= r.state << 13
	r.state ^= r.state >> 17
	r.state ^= r.state << 5
	return r.state
}

func (r *xorshift32) Float64() float64 {
	return float64(r.next()) / 4294967296.0
}

// SeededFloat is the rival performance noise for one team in one campaign.
func SeededFloat(campaignNumber, teamIndex int) float64 {
	seed := uint32(campaignNumber)*2654435761 ^ uint32(teamIndex+1)*40503
	return newXorshift32(seed).Float64()
}

package core

import "math"

// CircularDistance returns the shorter angular separation between a and b
// Inputs are expected within one turn of each other, which hand angles always are
func CircularDistance(a, b float64) float64 {
	d := math.Abs(a - b)
	return math.Min(d, 2*math.Pi-d)
}

// Score is the worst squared pairwise circular distance between the hands
// All three hands must be close for the score to be low; 0 means full coincidence, π² is the bound
func Score(h HandAngles) float64 {
	hm := CircularDistance(h.Hour, h.Minute)
	hs := CircularDistance(h.Hour, h.Second)
	ms := CircularDistance(h.Minute, h.Second)
	return math.Max(hm*hm, math.Max(hs*hs, ms*ms))
}

package shaft

// PointLoad is a transverse force applied at a position along the shaft.
// Gear loads carry the tangential mesh force; pulley loads carry the net
// belt force T1−T2.
type PointLoad struct {
	Position float64 // m
	Force    float64 // N, signed
}

// MomentContribution is the bending moment one element contributes
// about the left reference end.
type MomentContribution struct {
	Position float64 // m
	Moment   float64 // N·m, signed
}

// CombineBendingMoments sums signed moment contributions by plain
// superposition. All contributions share the planar sign convention and
// reduction point, so the sum is order independent up to floating-point
// rounding; summation runs in slice order for stable accumulation.
func CombineBendingMoments(moments []MomentContribution) float64 {
	var total float64
	for _, m := range moments {
		total += m.Moment
	}
	return total
}

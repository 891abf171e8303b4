package shaft

import (
	"github.com/tanishapritha/shaft-designer/internal/catalog"
	"github.com/tanishapritha/shaft-designer/internal/mech"
)

// Result bundles the outputs of one design evaluation.
type Result struct {
	// Totals
	Torque  float64 // N·m, transmitted plus extra torsional moment
	FtTotal float64 // N, total gear tangential force
	FrTotal float64 // N, total gear radial force
	T1Total float64 // N, total tight-side belt tension
	T2Total float64 // N, total slack-side belt tension
	Moment  float64 // N·m, combined bending moment

	// Candidate minimum diameters (m)
	DiameterTorsion  float64
	DiameterBending  float64
	DiameterCombined float64

	// Resolved stock size
	StandardSize float64 // mm
	Undersized   bool    // catalog tops out below the combined requirement

	// Rendering sequences
	PointLoads  []PointLoad          // transverse loads for layout and SFD
	Moments     []MomentContribution // per-element bending moments
	TorqueSteps []Sample             // torque segments for the torque diagram
}

// Design runs the sizing pipeline: transmitted torque, per-element
// forces and moments, moment superposition, the three candidate
// diameters, and the standard stock size. It is a pure function of its
// inputs and may be called repeatedly with different cases.
func Design(spec Spec, sizesMM []float64) (*Result, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	res := &Result{}
	torque := mech.TorqueFromPower(spec.PowerKW, spec.SpeedRPM)

	for _, g := range spec.Gears {
		ft, fr := g.Forces(torque)
		res.FtTotal += ft
		res.FrTotal += fr
		m := mech.PointLoadMoment(ft, g.Position)
		res.PointLoads = append(res.PointLoads, PointLoad{Position: g.Position, Force: ft})
		res.Moments = append(res.Moments, MomentContribution{Position: g.Position, Moment: m})
	}

	for _, p := range spec.Pulleys {
		t1, t2, err := p.Tensions(torque)
		if err != nil {
			return nil, err
		}
		res.T1Total += t1
		res.T2Total += t2
		net := t1 - t2
		m := mech.PointLoadMoment(net, p.Position)
		res.PointLoads = append(res.PointLoads, PointLoad{Position: p.Position, Force: net})
		res.Moments = append(res.Moments, MomentContribution{Position: p.Position, Moment: m})
	}

	// The manually supplied moment joins the superposition but not the
	// rendering sequence: it has no position on the shaft.
	contribs := make([]MomentContribution, 0, len(res.Moments)+1)
	contribs = append(contribs, res.Moments...)
	contribs = append(contribs, MomentContribution{Moment: spec.ExtraMoment})
	res.Moment = CombineBendingMoments(contribs)
	res.Torque = torque + spec.ExtraTorque
	res.TorqueSteps = []Sample{{Position: 0, Value: res.Torque}}

	sy := spec.Material.YieldStrength
	fos := spec.FactorOfSafety

	var err error
	if res.DiameterTorsion, err = mech.DiameterFromTorsion(res.Torque, sy, fos); err != nil {
		return nil, err
	}
	if res.DiameterBending, err = mech.DiameterFromBending(res.Moment, sy, fos); err != nil {
		return nil, err
	}
	if res.DiameterCombined, err = mech.DiameterFromCombined(res.Moment, res.Torque, sy, fos, 1, 1); err != nil {
		return nil, err
	}

	res.StandardSize, res.Undersized, err = catalog.RoundToStandard(res.DiameterCombined, sizesMM)
	if err != nil {
		return nil, err
	}

	return res, nil
}

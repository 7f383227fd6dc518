package amplifier

import (
	"github.com/OCAP2/milsymbol/internal/color"
	"github.com/OCAP2/milsymbol/internal/draw"
	"github.com/OCAP2/milsymbol/pkg/core"
)

// Headquarters draws the staff down from the frame. Its tip becomes the
// symbol anchor.
func Headquarters(_ core.Box, in Input) Contribution {
	if !in.Symbol.Headquarters {
		return None()
	}

	f := in.Frame
	dim := in.dimension()
	aff := in.frameAffiliation()
	friendOrNeutral := aff == core.FrameFriend || aff == core.FrameNeutral

	// start at the bottom left corner where the frame has one
	y := core.CanvasCenter.Y
	switch {
	case (dim == core.DimensionAir || dim == core.DimensionLand) && friendOrNeutral:
		y = f.Y2
	case (dim == core.DimensionSea || dim == core.DimensionSubsurface) && aff == core.FrameNeutral:
		y = f.Y2
	case dim == core.DimensionSubsurface && aff == core.FrameFriend:
		y = f.Y1
	}

	tip := core.Pt(f.X1, f.Y2+in.Style.HQStaffLength)
	d := draw.NewPath().MoveTo(f.X1, y).LineTo(tip.X, tip.Y).String()
	box := core.NewBox(f.X1, y, tip.X, tip.Y)

	return Contribution{
		Nodes:  []draw.Node{draw.Path(d, box).WithStrokeWidth(in.Style.FrameStrokeWidth)},
		Box:    box,
		Anchor: &tip,
	}
}

// TaskForceHalfWidth returns half the width of the task force bracket.
func TaskForceHalfWidth(e core.Echelon) float64 {
	switch e {
	case core.EchelonCorps:
		return 55
	case core.EchelonArmy:
		return 72.5
	case core.EchelonArmyGroup:
		return 90
	case core.EchelonRegion:
		return 107.5
	default:
		return 45
	}
}

// TaskForce draws the open bracket above the frame.
func TaskForce(_ core.Box, in Input) Contribution {
	if !in.Symbol.TaskForce {
		return None()
	}

	hw := TaskForceHalfWidth(in.Symbol.Echelon)
	top := in.Frame.Y1
	x1, x2 := 100-hw, 100+hw

	d := draw.NewPath().
		MoveTo(x1, top).
		LineTo(x1, top-40).
		LineTo(x2, top-40).
		LineTo(x2, top).
		String()
	box := core.NewBox(x1, top-40, x2, top)

	return Contribution{
		Nodes: []draw.Node{draw.Path(d, box).WithStrokeWidth(in.Style.FrameStrokeWidth)},
		Box:   box,
	}
}

// installationGap lifts the notch base into the frame stroke on frames
// whose top edge is not flat.
func installationGap(aff core.FrameAffiliation, dim core.Dimension) float64 {
	airLandSea := dim == core.DimensionAir || dim == core.DimensionLand || dim == core.DimensionSea
	switch {
	case aff == core.FrameHostile && airLandSea:
		return 14
	case aff == core.FrameUnknown && airLandSea:
		return 2
	case aff == core.FrameFriend && (dim == core.DimensionAir || dim == core.DimensionSea):
		return 2
	default:
		return 0
	}
}

// Installation draws the filled notch on top of installation frames.
func Installation(_ core.Box, in Input) Contribution {
	if !in.Symbol.IsInstallation() {
		return None()
	}

	top := in.Frame.Y1
	sw := in.Style.FrameStrokeWidth
	gap := installationGap(in.frameAffiliation(), in.dimension())
	base := top + gap - sw/2

	d := draw.NewPath().
		MoveTo(85, base).
		LineTo(85, top-10).
		LineTo(115, top-10).
		LineTo(115, base).
		LineTo(100, top-sw).
		Close().
		String()
	box := in.Frame.WithY1(top - 10)

	return Contribution{
		Nodes: []draw.Node{draw.Path(d, box).WithFill(color.RoleIcon)},
		Box:   box,
	}
}

// FeintDummy draws the dashed chevron whose apex sits half the frame width
// above the frame.
func FeintDummy(_ core.Box, in Input) Contribution {
	if !in.Symbol.FeintDummy {
		return None()
	}

	f := in.Frame
	apex := f.Y1 - f.Width()/2

	d := draw.NewPath().
		MoveTo(100, apex).
		LineTo(f.X1, f.Y1).
		MoveTo(100, apex).
		LineTo(f.X2, f.Y1).
		String()
	box := core.NewBox(f.X1, apex, f.X2, f.Y1)

	return Contribution{
		Nodes: []draw.Node{draw.Path(d, box).WithStrokeStyle(draw.StrokeDashed)},
		Box:   box,
	}
}

// Leadership returns the dismounted leadership step. It draws nothing
// unless enabled.
func Leadership(enabled bool) Step {
	return func(_ core.Box, in Input) Contribution {
		if !enabled {
			return None()
		}

		var d string
		switch in.frameAffiliation() {
		case core.FrameFriend, core.FrameNeutral:
			d = "m 45,60 55,-25 55,25"
		case core.FrameHostile:
			d = "m 42,71 57.8,-43.3 58.2,42.8"
		default:
			d = "m 50,60 10,-20 80,0 10,20"
		}
		box := in.Frame.WithY1(in.Frame.Y1 - 20)

		return Contribution{
			Nodes: []draw.Node{draw.Path(d, box)},
			Box:   box,
		}
	}
}

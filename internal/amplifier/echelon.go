package amplifier

import (
	"github.com/OCAP2/milsymbol/internal/color"
	"github.com/OCAP2/milsymbol/internal/draw"
	"github.com/OCAP2/milsymbol/pkg/core"
)

const (
	// echelonHeight is the band above the frame reserved for echelon marks.
	echelonHeight = 40
	// installationClearance lifts echelon marks over the installation
	// notch.
	installationClearance = 15

	dotRadius = 7.5
)

// xMarkStarts holds the left x of every X mark.
var xMarkStarts = map[core.Echelon][]float64{
	core.EchelonBrigade:   {87.5},
	core.EchelonDivision:  {70, 105},
	core.EchelonCorps:     {52.5, 87.5, 122.5},
	core.EchelonArmy:      {35, 70, 105, 140},
	core.EchelonArmyGroup: {17.5, 52.5, 87.5, 122.5, 157.5},
	core.EchelonRegion:    {0, 35, 70, 105, 140, 175},
}

var (
	dotCenters = map[core.Echelon][]float64{
		core.EchelonSquad:   {100},
		core.EchelonSection: {85, 115},
		core.EchelonPlatoon: {70, 100, 130},
	}
	barPositions = map[core.Echelon][]float64{
		core.EchelonCompany:   {100},
		core.EchelonBattalion: {90, 110},
		core.EchelonRegiment:  {80, 100, 120},
	}
)

// Echelon draws the size indicator above the frame as one translated
// group.
func Echelon(_ core.Box, in Input) Contribution {
	e := in.Symbol.Echelon
	if e == core.EchelonUndefined {
		return None()
	}

	top := in.Frame.Y1
	nodes, x1, x2 := echelonGlyph(e, top)
	if len(nodes) == 0 {
		return None()
	}

	var delta core.Point
	if in.Symbol.IsInstallation() {
		delta = core.Pt(0, -installationClearance)
	}

	return Contribution{
		Nodes: []draw.Node{draw.Translate(delta, nodes...)},
		Box:   core.NewBox(x1, top-echelonHeight, x2, top).Translate(delta),
	}
}

// echelonGlyph returns the marks of an echelon placed on a frame whose
// top edge is at top, together with their horizontal extent.
func echelonGlyph(e core.Echelon, top float64) ([]draw.Node, float64, float64) {
	band := func(x1, x2 float64) core.Box {
		return core.NewBox(x1, top-echelonHeight, x2, top)
	}

	if e == core.EchelonTeam {
		d := draw.NewPath().MoveTo(80, top-10).LineTo(120, top-30).String()
		return []draw.Node{
			draw.Circle(core.Pt(100, top-20), 15),
			draw.Path(d, band(80, 120)),
		}, 80, 120
	}

	if xs, ok := dotCenters[e]; ok {
		nodes := make([]draw.Node, 0, len(xs))
		for _, x := range xs {
			nodes = append(nodes, draw.Circle(core.Pt(x, top-20), dotRadius).WithFill(color.RoleIcon))
		}
		return nodes, xs[0] - dotRadius, xs[len(xs)-1] + dotRadius
	}

	if xs, ok := barPositions[e]; ok {
		nodes := make([]draw.Node, 0, len(xs))
		for _, x := range xs {
			d := draw.NewPath().MoveTo(x, top-10).LineTo(x, top-35).String()
			nodes = append(nodes, draw.Path(d, band(x, x)))
		}
		return nodes, xs[0], xs[len(xs)-1]
	}

	if xs, ok := xMarkStarts[e]; ok {
		p := draw.NewPath()
		for _, x := range xs {
			p.MoveTo(x, top-10).LineBy(25, -25).MoveBy(0, 25).LineBy(-25, -25)
		}
		x1, x2 := xs[0], xs[len(xs)-1]+25
		return []draw.Node{draw.Path(p.String(), band(x1, x2))}, x1, x2
	}

	if e == core.EchelonCommand {
		p := draw.NewPath()
		for _, x := range []float64{70, 105} {
			p.MoveTo(x, top-22.5).LineBy(25, 0).MoveBy(-12.5, 12.5).LineBy(0, -25)
		}
		return []draw.Node{draw.Path(p.String(), band(70, 130))}, 70, 130
	}

	return nil, 0, 0
}

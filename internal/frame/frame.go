// Package frame holds the frame outlines of every rendering domain and the
// accents drawn inside space and activity frames.
package frame

import (
	"github.com/OCAP2/milsymbol/internal/color"
	"github.com/OCAP2/milsymbol/internal/draw"
	"github.com/OCAP2/milsymbol/pkg/core"
)

type outline struct {
	d      string
	box    core.Box
	circle bool
}

func (o outline) node() draw.Node {
	if o.circle {
		return draw.Circle(o.box.Center(), o.box.Width()/2).WithFill(color.RoleIconFill)
	}
	return draw.Path(o.d, o.box).WithFill(color.RoleIconFill)
}

var (
	landHostile = outline{d: "M 100,28 L172,100 100,172 28,100 100,28 Z", box: core.NewBox(28, 28, 172, 172)}
	landNeutral = outline{d: "M45,45 l110,0 0,110 -110,0 z", box: core.NewBox(45, 45, 155, 155)}
	landUnknown = outline{
		d:   "M63,63 C63,20 137,20 137,63 C180,63 180,137 137,137 C137,180 63,180 63,137 C20,137 20,63 63,63 Z",
		box: core.NewBox(30.75, 30.75, 169.25, 169.25),
	}
)

// outlines is indexed by base dimension, then frame affiliation in the
// order hostile, friend, neutral, unknown.
var outlines = map[core.Dimension][4]outline{
	core.DimensionAir: {
		{d: "M 45,150 L45,70 100,20 155,70 155,150", box: core.NewBox(45, 20, 155, 150)},
		{d: "M 155,150 C 155,50 115,30 100,30 85,30 45,50 45,150", box: core.NewBox(45, 30, 155, 150)},
		{d: "M 45,150 L 45,30,155,30,155,150", box: core.NewBox(45, 30, 155, 150)},
		{d: "M 65,150 c -55,0 -50,-90 0,-90 0,-50 70,-50 70,0 50,0 55,90 0,90", box: core.NewBox(25, 20, 175, 150)},
	},
	core.DimensionLand: {
		landHostile,
		{d: "M25,50 l150,0 0,100 -150,0 z", box: core.NewBox(25, 50, 175, 150)},
		landNeutral,
		landUnknown,
	},
	core.DimensionLandDismounted: {
		landHostile,
		{d: "m 100,45 55,25 0,60 -55,25 -55,-25 0,-60 z", box: core.NewBox(45, 45, 155, 155)},
		landNeutral,
		landUnknown,
	},
	core.DimensionSea: {
		landHostile,
		{circle: true, box: core.BoxAround(core.CanvasCenter, 60)},
		landNeutral,
		landUnknown,
	},
	core.DimensionSubsurface: {
		{d: "M45,50 L45,130 100,180 155,130 155,50", box: core.NewBox(45, 50, 155, 180)},
		{d: "m 45,50 c 0,100 40,120 55,120 15,0 55,-20 55,-120", box: core.NewBox(45, 50, 155, 170)},
		{d: "M45,50 L45,170 155,170 155,50", box: core.NewBox(45, 50, 155, 170)},
		{d: "m 65,50 c -55,0 -50,90 0,90 0,50 70,50 70,0 50,0 55,-90 0,-90", box: core.NewBox(25, 50, 175, 180)},
	},
}

// PositionMarkerRadius is the radius of the marker drawn when neither frame
// nor icon is shown.
const PositionMarkerRadius = 15

// Base returns the frame outline for a domain and frame affiliation, or the
// position marker when positionOnly is set. The result is empty for
// affiliations outside the four frame shapes.
func Base(dim core.Dimension, f core.FrameAffiliation, positionOnly bool) draw.Node {
	if f < core.FrameHostile || f > core.FrameUnknown {
		return draw.Node{}
	}
	if positionOnly {
		return draw.Circle(core.CanvasCenter, PositionMarkerRadius).WithFill(color.RoleIconFill)
	}
	row, ok := outlines[dim.Base()]
	if !ok {
		return draw.Node{}
	}
	return row[f].node()
}

func accent(d string, box core.Box) draw.Node {
	return draw.Path(d, box).WithFill(color.RoleIcon).WithStroke(color.RoleNone)
}

var spaceModifiers = [4]draw.Node{
	accent("M67,50 L100,20 133,50 z", core.NewBox(67, 20, 133, 50)),
	accent("M 100,30 C 90,30 80,35 68.65625,50 l 62.6875,0 C 120,35 110,30 100,30", core.NewBox(68.65625, 30, 131.34375, 50)),
	accent("M45,50 l0,-20 110,0 0,20 z", core.NewBox(45, 30, 155, 50)),
	accent("M 100 22.5 C 85 22.5 70 31.669211 66 50 L 134 50 C 130 31.669204 115 22.5 100 22.5 z", core.NewBox(66, 22.5, 134, 50)),
}

// SpaceModifier returns the solid cap drawn at the top of space frames.
func SpaceModifier(f core.FrameAffiliation) draw.Node {
	if f < core.FrameHostile || f > core.FrameUnknown {
		return draw.Node{}
	}
	return spaceModifiers[f]
}

var activityModifiers = [4]draw.Node{
	accent("M 100 28 L 89.40625 38.59375 L 100 49.21875 L 110.59375 38.59375 L 100 28 z "+
		"M 38.6875 89.3125 L 28.0625 99.9375 L 38.6875 110.53125 L 49.28125 99.9375 L 38.6875 89.3125 z "+
		"M 161.40625 89.40625 L 150.78125 100 L 161.40625 110.59375 L 172 100 L 161.40625 89.40625 z "+
		"M 99.9375 150.71875 L 89.3125 161.3125 L 99.9375 171.9375 L 110.53125 161.3125 L 99.9375 150.71875",
		core.NewBox(28.0625, 28, 172, 171.9375)),
	accent("m 160,135 0,15 15,0 0,-15 z m -135,0 15,0 0,15 -15,0 z m 135,-85 0,15 15,0 0,-15 z m -135,0 15,0 0,15 -15,0 z",
		core.NewBox(25, 50, 175, 150)),
	accent("m 140,140 15,0 0,15 -15,0 z m -80,0 0,15 -15,0 0,-15 z m 80,-80 0,-15 15,0 0,15 z m -80,0 -15,0 0,-15 15,0 z",
		core.NewBox(45, 45, 155, 155)),
	accent("M 107.96875 31.46875 L 92.03125 31.71875 L 92.03125 46.4375 L 107.71875 46.4375 L 107.96875 31.46875 z "+
		"M 47.03125 92.5 L 31.09375 92.75 L 31.09375 107.5 L 46.78125 107.5 L 47.03125 92.5 z "+
		"M 168.4375 92.5 L 152.5 92.75 L 152.5 107.5 L 168.1875 107.5 L 168.4375 92.5 z "+
		"M 107.96875 153.5625 L 92.03125 153.8125 L 92.03125 168.53125 L 107.71875 168.53125 L 107.96875 153.5625 z",
		core.NewBox(31.09375, 31.46875, 168.4375, 168.53125)),
}

// ActivityModifier returns the corner marks drawn inside activity frames.
func ActivityModifier(f core.FrameAffiliation) draw.Node {
	if f < core.FrameHostile || f > core.FrameUnknown {
		return draw.Node{}
	}
	return activityModifiers[f]
}

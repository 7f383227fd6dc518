package amplifier

import (
	"github.com/OCAP2/milsymbol/internal/color"
	"github.com/OCAP2/milsymbol/internal/draw"
	"github.com/OCAP2/milsymbol/pkg/core"
)

const wheelRadius = 8

func wheel(x, y float64) draw.Node {
	return draw.Circle(core.Pt(x, y), wheelRadius)
}

// mobilityGlyphs are drawn relative to the bottom edge of the frame.
var mobilityGlyphs = map[core.Mobility]func() []draw.Node{
	core.MobilityWheeledLimitedCrossCountry: func() []draw.Node {
		return []draw.Node{
			draw.Path("M 53,1 l 94,0", core.NewBox(53, 1, 147, 1)),
			wheel(58, 8),
			wheel(142, 8),
		}
	},
	core.MobilityWheeledCrossCountry: func() []draw.Node {
		return []draw.Node{
			draw.Path("M 53,1 l 94,0", core.NewBox(53, 1, 147, 1)),
			wheel(58, 8),
			wheel(142, 8),
			wheel(100, 8),
		}
	},
	core.MobilityTracked: func() []draw.Node {
		return []draw.Node{
			draw.Path("M 53,1 l 100,0 c15,0 15,15 0,15 l -100,0 c-15,0 -15,-15 0,-15", core.NewBox(42, 0, 168, 18)),
		}
	},
	core.MobilityWheeledAndTracked: func() []draw.Node {
		return []draw.Node{
			wheel(58, 8),
			draw.Path("M 83,1 l 70,0 c15,0 15,15 0,15 l -70,0 c-15,0 -15,-15 0,-15", core.NewBox(42, 0, 168, 18)),
		}
	},
	core.MobilityTowed: func() []draw.Node {
		return []draw.Node{
			draw.Path("M 63,1 l 74,0", core.NewBox(55, 0, 145, 10)),
			wheel(58, 3),
			wheel(142, 3),
		}
	},
	core.MobilityRail: func() []draw.Node {
		return []draw.Node{
			draw.Path("M 53,1 l 96,0", core.NewBox(53, 1, 149, 1)),
			wheel(58, 8),
			wheel(73, 8),
			wheel(127, 8),
			wheel(142, 8),
		}
	},
	core.MobilityOverSnow: func() []draw.Node {
		return []draw.Node{
			draw.Path("M 50,-9 l10,10 90,0", core.NewBox(50, -9, 150, 1)),
		}
	},
	core.MobilitySled: func() []draw.Node {
		return []draw.Node{
			draw.Path("M 145,-12 c15,0 15,15 0,15 l -90,0 c-15,0 -15,-15 0,-15", core.NewBox(42, -12, 168, 3)),
		}
	},
	core.MobilityPackAnimals: func() []draw.Node {
		return []draw.Node{
			draw.Path("M 80,20 l 10,-20 10,20 10,-20 10,20", core.NewBox(80, 0, 120, 20)),
		}
	},
	core.MobilityBarge: func() []draw.Node {
		return []draw.Node{
			draw.Path("M 50,1 l 100,0 c0,10 -100,10 -100,0", core.NewBox(50, 0, 150, 10)),
		}
	},
	core.MobilityAmphibious: func() []draw.Node {
		return []draw.Node{
			draw.Path("M 65,10 c 0,-10 10,-10 10,0 0,10 10,10 10,0 0,-10 10,-10 10,0 0,10 10,10 10,0 "+
				"0,-10 10,-10 10,0 0,10 10,10 10,0 0,-10 10,-10 10,0", core.NewBox(65, 0, 135, 20)),
		}
	},
	core.MobilityShortTowedArray: func() []draw.Node {
		return []draw.Node{
			draw.Path("M 50,5 l 100,0 M50,0 l10,0 0,10 -10,0 z M150,0 l-10,0 0,10 10,0 z M100,0 l5,5 -5,5 -5,-5 z",
				core.NewBox(50, 0, 150, 10)).WithFill(color.RoleIcon),
		}
	},
	core.MobilityLongTowedArray: func() []draw.Node {
		return []draw.Node{
			draw.Path("M 50,5 l 100,0 M50,0 l10,0 0,10 -10,0 z M150,0 l-10,0 0,10 10,0 z M105,0 l-10,0 0,10 10,0 z "+
				"M75,0 l5,5 -5,5 -5,-5 z M125,0 l5,5 -5,5 -5,-5 z",
				core.NewBox(50, 0, 150, 10)).WithFill(color.RoleIcon),
		}
	},
}

// neutralClearance is the extra drop below a neutral frame, whose square
// bottom edge sits lower than the other frames'.
func neutralClearance(m core.Mobility) float64 {
	switch m {
	case core.MobilityTowed, core.MobilityShortTowedArray, core.MobilityLongTowedArray:
		return 8
	case core.MobilityOverSnow, core.MobilitySled:
		return 13
	default:
		return 0
	}
}

// Mobility draws the mobility indicator below the frame.
func Mobility(_ core.Box, in Input) Contribution {
	glyph, ok := mobilityGlyphs[in.Symbol.Mobility]
	if !ok {
		return None()
	}

	y := in.Frame.Y2
	if in.frameAffiliation() == core.FrameNeutral {
		y += neutralClearance(in.Symbol.Mobility)
	}

	g := draw.Translate(core.Pt(0, y), glyph()...)
	return Contribution{
		Nodes: []draw.Node{g},
		Box:   g.Box(),
	}
}

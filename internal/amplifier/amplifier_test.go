package amplifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OCAP2/milsymbol/internal/color"
	"github.com/OCAP2/milsymbol/internal/draw"
	"github.com/OCAP2/milsymbol/pkg/core"
)

var (
	landFriendFrame  = core.NewBox(25, 50, 175, 150)
	landHostileFrame = core.NewBox(28, 28, 172, 172)
	landNeutralFrame = core.NewBox(45, 45, 155, 155)
)

func landUnit(aff core.Affiliation) core.Symbol {
	return core.NewSymbol(aff, core.SymbolSetLandUnit)
}

func input(sym core.Symbol, frame core.Box) Input {
	return Input{Symbol: sym, Style: core.DefaultStyle(), Frame: frame}
}

func TestApplyThreadsRunningBox(t *testing.T) {
	var seen []core.Box
	grow := func(b core.Box) Step {
		return func(running core.Box, _ Input) Contribution {
			seen = append(seen, running)
			return Contribution{Box: b}
		}
	}

	frame := core.NewBox(50, 50, 150, 150)
	res := Apply(Input{Frame: frame},
		grow(core.NewBox(40, 60, 60, 70)),
		grow(core.NewBox(100, 0, 110, 10)),
		grow(core.EmptyBox()),
	)

	require.Len(t, seen, 3)
	assert.Equal(t, frame, seen[0])
	assert.Equal(t, core.NewBox(40, 50, 150, 150), seen[1])
	assert.Equal(t, core.NewBox(40, 0, 150, 150), seen[2])
	assert.Equal(t, core.NewBox(40, 0, 150, 150), res.Box)
	assert.Equal(t, core.CanvasCenter, res.Anchor)
	assert.False(t, res.Anchored)
	assert.Empty(t, res.Nodes)
}

func TestApplyNoSteps(t *testing.T) {
	res := Apply(input(landUnit(core.AffiliationFriend), landFriendFrame))
	assert.Equal(t, landFriendFrame, res.Box)
	assert.Equal(t, core.CanvasCenter, res.Anchor)
}

func TestDefaultDrawsNothingForPlainSymbol(t *testing.T) {
	res := Apply(input(landUnit(core.AffiliationFriend), landFriendFrame), Default()...)
	assert.Empty(t, res.Nodes)
	assert.Equal(t, landFriendFrame, res.Box)
}

func TestDefaultOrder(t *testing.T) {
	sym := landUnit(core.AffiliationFriend).
		WithHeadquarters(true).
		WithTaskForce(true).
		WithFeintDummy(true).
		WithEchelon(core.EchelonBattalion)

	res := Apply(input(sym, landFriendFrame), Default()...)
	require.Len(t, res.Nodes, 4)
	assert.Equal(t, "M 25,150 L 25,200", res.Nodes[0].PathData())
	assert.Equal(t, "M 55,50 L 55,10 L 145,10 L 145,50", res.Nodes[1].PathData())
	assert.Equal(t, draw.StrokeDashed, res.Nodes[2].StrokeStyle())
	assert.Equal(t, draw.KindTranslate, res.Nodes[3].Kind())

	assert.True(t, res.Anchored)
	assert.Equal(t, core.Pt(25, 200), res.Anchor)
	assert.Equal(t, core.NewBox(25, -25, 175, 200), res.Box)
}

func TestHeadquarters(t *testing.T) {
	tests := []struct {
		name   string
		sym    core.Symbol
		frame  core.Box
		path   string
		box    core.Box
		anchor core.Point
	}{
		{
			name:   "land friend starts at bottom",
			sym:    landUnit(core.AffiliationFriend),
			frame:  landFriendFrame,
			path:   "M 25,150 L 25,200",
			box:    core.NewBox(25, 150, 25, 200),
			anchor: core.Pt(25, 200),
		},
		{
			name:   "land hostile starts at center",
			sym:    landUnit(core.AffiliationHostile),
			frame:  landHostileFrame,
			path:   "M 28,100 L 28,222",
			box:    core.NewBox(28, 100, 28, 222),
			anchor: core.Pt(28, 222),
		},
		{
			name:   "subsurface friend starts at top",
			sym:    core.NewSymbol(core.AffiliationFriend, core.SymbolSetSeaSubsurface),
			frame:  core.NewBox(45, 50, 155, 170),
			path:   "M 45,50 L 45,220",
			box:    core.NewBox(45, 50, 45, 220),
			anchor: core.Pt(45, 220),
		},
		{
			name:   "sea neutral starts at bottom",
			sym:    core.NewSymbol(core.AffiliationNeutral, core.SymbolSetSeaSurface),
			frame:  landNeutralFrame,
			path:   "M 45,155 L 45,205",
			box:    core.NewBox(45, 155, 45, 205),
			anchor: core.Pt(45, 205),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Headquarters(tt.frame, input(tt.sym.WithHeadquarters(true), tt.frame))
			require.Len(t, c.Nodes, 1)
			assert.Equal(t, tt.path, c.Nodes[0].PathData())
			assert.Equal(t, core.DefaultFrameStrokeWidth, c.Nodes[0].StrokeWidth())
			assert.Equal(t, tt.box, c.Box)
			require.NotNil(t, c.Anchor)
			assert.Equal(t, tt.anchor, *c.Anchor)
		})
	}
}

func TestHeadquartersStaffLength(t *testing.T) {
	in := input(landUnit(core.AffiliationFriend).WithHeadquarters(true), landFriendFrame)
	in.Style.HQStaffLength = 80

	c := Headquarters(landFriendFrame, in)
	require.NotNil(t, c.Anchor)
	assert.Equal(t, core.Pt(25, 230), *c.Anchor)
	assert.NotEqual(t, core.CanvasCenter, *c.Anchor)
}

func TestHeadquartersDisabled(t *testing.T) {
	c := Headquarters(landFriendFrame, input(landUnit(core.AffiliationFriend), landFriendFrame))
	assert.Empty(t, c.Nodes)
	assert.Nil(t, c.Anchor)
	assert.True(t, c.Box.Empty)
}

func TestTaskForceHalfWidth(t *testing.T) {
	tests := []struct {
		echelon core.Echelon
		want    float64
	}{
		{core.EchelonCorps, 55},
		{core.EchelonArmy, 72.5},
		{core.EchelonArmyGroup, 90},
		{core.EchelonRegion, 107.5},
		{core.EchelonBattalion, 45},
		{core.EchelonUndefined, 45},
	}
	for _, tt := range tests {
		t.Run(tt.echelon.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, TaskForceHalfWidth(tt.echelon))
		})
	}
}

func TestTaskForce(t *testing.T) {
	sym := landUnit(core.AffiliationFriend).WithTaskForce(true).WithEchelon(core.EchelonCorps)
	c := TaskForce(landFriendFrame, input(sym, landFriendFrame))
	require.Len(t, c.Nodes, 1)
	assert.Equal(t, "M 45,50 L 45,10 L 155,10 L 155,50", c.Nodes[0].PathData())
	assert.Equal(t, core.NewBox(45, 10, 155, 50), c.Box)
	assert.Equal(t, color.RoleNone, c.Nodes[0].Fill())

	none := TaskForce(landFriendFrame, input(landUnit(core.AffiliationFriend), landFriendFrame))
	assert.Empty(t, none.Nodes)
}

func TestInstallation(t *testing.T) {
	tests := []struct {
		name  string
		aff   core.Affiliation
		frame core.Box
		path  string
	}{
		{"friend", core.AffiliationFriend, landFriendFrame, "M 85,48 L 85,40 L 115,40 L 115,48 L 100,46 Z"},
		{"hostile", core.AffiliationHostile, landHostileFrame, "M 85,40 L 85,18 L 115,18 L 115,40 L 100,24 Z"},
		{"neutral", core.AffiliationNeutral, landNeutralFrame, "M 85,43 L 85,35 L 115,35 L 115,43 L 100,41 Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sym := core.NewSymbol(tt.aff, core.SymbolSetLandInstallation)
			c := Installation(tt.frame, input(sym, tt.frame))
			require.Len(t, c.Nodes, 1)
			assert.Equal(t, tt.path, c.Nodes[0].PathData())
			assert.Equal(t, color.RoleIcon, c.Nodes[0].Fill())
			assert.Equal(t, tt.frame.WithY1(tt.frame.Y1-10), c.Box)
		})
	}

	none := Installation(landFriendFrame, input(landUnit(core.AffiliationFriend), landFriendFrame))
	assert.Empty(t, none.Nodes)
}

func TestInstallationGap(t *testing.T) {
	assert.Equal(t, 14.0, installationGap(core.FrameHostile, core.DimensionSea))
	assert.Equal(t, 2.0, installationGap(core.FrameUnknown, core.DimensionLand))
	assert.Equal(t, 2.0, installationGap(core.FrameFriend, core.DimensionAir))
	assert.Equal(t, 0.0, installationGap(core.FrameFriend, core.DimensionLand))
	assert.Equal(t, 0.0, installationGap(core.FrameHostile, core.DimensionSubsurface))
}

func TestInstallationGapFollowsFrame(t *testing.T) {
	tests := []struct {
		name string
		sym  core.Symbol
		want float64
	}{
		{"suspect uses hostile frame", core.NewSymbol(core.AffiliationSuspect, core.SymbolSetLandInstallation), 14},
		{"pending uses unknown frame", core.NewSymbol(core.AffiliationPending, core.SymbolSetLandInstallation), 2},
		{"simulated hostile uses friend frame", core.NewSymbol(core.AffiliationHostile, core.SymbolSetLandInstallation).WithContext(core.ContextSimulation), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, installationGap(tt.sym.FrameAffiliation(), tt.sym.Dimension()))
		})
	}
}

func TestFeintDummy(t *testing.T) {
	sym := landUnit(core.AffiliationFriend).WithFeintDummy(true)
	c := FeintDummy(landFriendFrame, input(sym, landFriendFrame))
	require.Len(t, c.Nodes, 1)
	assert.Equal(t, "M 100,-25 L 25,50 M 100,-25 L 175,50", c.Nodes[0].PathData())
	assert.Equal(t, draw.StrokeDashed, c.Nodes[0].StrokeStyle())
	assert.Equal(t, core.NewBox(25, -25, 175, 50), c.Box)
}

func TestEchelonBattalion(t *testing.T) {
	sym := landUnit(core.AffiliationFriend).WithEchelon(core.EchelonBattalion)
	res := Apply(input(sym, landFriendFrame), Default()...)

	require.Len(t, res.Nodes, 1)
	group := res.Nodes[0]
	assert.Equal(t, draw.KindTranslate, group.Kind())
	assert.Equal(t, core.Pt(0, 0), group.Delta())

	bars := group.Children()
	require.Len(t, bars, 2)
	assert.Equal(t, "M 90,40 L 90,15", bars[0].PathData())
	assert.Equal(t, "M 110,40 L 110,15", bars[1].PathData())

	assert.LessOrEqual(t, group.Box().Y2, landFriendFrame.Y1)
	assert.GreaterOrEqual(t, res.Box.Height(), landFriendFrame.Height()+40)
}

func TestEchelonGlyphs(t *testing.T) {
	tests := []struct {
		echelon core.Echelon
		nodes   int
		x1, x2  float64
		path    string
	}{
		{core.EchelonTeam, 2, 80, 120, ""},
		{core.EchelonSquad, 1, 92.5, 107.5, ""},
		{core.EchelonSection, 2, 77.5, 122.5, ""},
		{core.EchelonPlatoon, 3, 62.5, 137.5, ""},
		{core.EchelonCompany, 1, 100, 100, "M 100,40 L 100,15"},
		{core.EchelonRegiment, 3, 80, 120, ""},
		{core.EchelonBrigade, 1, 87.5, 112.5, "M 87.5,40 l 25,-25 m 0,25 l -25,-25"},
		{core.EchelonDivision, 1, 70, 130, "M 70,40 l 25,-25 m 0,25 l -25,-25 M 105,40 l 25,-25 m 0,25 l -25,-25"},
		{core.EchelonCorps, 1, 52.5, 147.5, ""},
		{core.EchelonArmy, 1, 35, 165, ""},
		{core.EchelonArmyGroup, 1, 17.5, 182.5, ""},
		{core.EchelonRegion, 1, 0, 200, ""},
		{core.EchelonCommand, 1, 70, 130, "M 70,27.5 l 25,0 m -12.5,12.5 l 0,-25 M 105,27.5 l 25,0 m -12.5,12.5 l 0,-25"},
	}

	for _, tt := range tests {
		t.Run(tt.echelon.String(), func(t *testing.T) {
			sym := landUnit(core.AffiliationFriend).WithEchelon(tt.echelon)
			c := Echelon(landFriendFrame, input(sym, landFriendFrame))
			require.Len(t, c.Nodes, 1)

			children := c.Nodes[0].Children()
			assert.Len(t, children, tt.nodes)
			if tt.path != "" {
				assert.Equal(t, tt.path, children[0].PathData())
			}
			assert.Equal(t, core.NewBox(tt.x1, 10, tt.x2, 50), c.Box)
		})
	}
}

func TestEchelonDots(t *testing.T) {
	sym := landUnit(core.AffiliationFriend).WithEchelon(core.EchelonPlatoon)
	c := Echelon(landFriendFrame, input(sym, landFriendFrame))
	require.Len(t, c.Nodes, 1)
	for _, dot := range c.Nodes[0].Children() {
		assert.Equal(t, draw.KindCircle, dot.Kind())
		assert.Equal(t, 7.5, dot.Radius())
		assert.Equal(t, 30.0, dot.Center().Y)
		assert.Equal(t, color.RoleIcon, dot.Fill())
	}
}

func TestEchelonInstallationClearance(t *testing.T) {
	sym := core.NewSymbol(core.AffiliationFriend, core.SymbolSetLandInstallation).WithEchelon(core.EchelonBattalion)
	c := Echelon(landFriendFrame, input(sym, landFriendFrame))
	require.Len(t, c.Nodes, 1)
	assert.Equal(t, core.Pt(0, -15), c.Nodes[0].Delta())
	assert.Equal(t, core.NewBox(90, -5, 110, 35), c.Box)
}

func TestEchelonUndefined(t *testing.T) {
	c := Echelon(landFriendFrame, input(landUnit(core.AffiliationFriend), landFriendFrame))
	assert.Empty(t, c.Nodes)
	assert.True(t, c.Box.Empty)
}

func TestMobility(t *testing.T) {
	tests := []struct {
		name     string
		aff      core.Affiliation
		mobility core.Mobility
		frame    core.Box
		dy       float64
		box      core.Box
	}{
		{"tracked friend", core.AffiliationFriend, core.MobilityTracked, landFriendFrame, 150, core.NewBox(42, 150, 168, 168)},
		{"wheeled friend", core.AffiliationFriend, core.MobilityWheeledLimitedCrossCountry, landFriendFrame, 150, core.NewBox(50, 150, 150, 166)},
		{"towed neutral", core.AffiliationNeutral, core.MobilityTowed, landNeutralFrame, 163, core.NewBox(50, 158, 150, 174)},
		{"sled neutral", core.AffiliationNeutral, core.MobilitySled, landNeutralFrame, 168, core.NewBox(42, 156, 168, 171)},
		{"towed hostile", core.AffiliationHostile, core.MobilityTowed, landHostileFrame, 172, core.NewBox(50, 167, 150, 183)},
		{"amphibious friend", core.AffiliationFriend, core.MobilityAmphibious, landFriendFrame, 150, core.NewBox(65, 150, 135, 170)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sym := core.NewSymbol(tt.aff, core.SymbolSetLandEquipment).WithMobility(tt.mobility)
			c := Mobility(tt.frame, input(sym, tt.frame))
			require.Len(t, c.Nodes, 1)
			assert.Equal(t, core.Pt(0, tt.dy), c.Nodes[0].Delta())
			assert.Equal(t, tt.box, c.Box)
		})
	}
}

func TestMobilityGlyphsComplete(t *testing.T) {
	for m := core.MobilityWheeledLimitedCrossCountry; m <= core.MobilityLongTowedArray; m++ {
		glyph, ok := mobilityGlyphs[m]
		require.True(t, ok, m.String())
		assert.NotEmpty(t, glyph(), m.String())
	}

	c := Mobility(landFriendFrame, input(landUnit(core.AffiliationFriend), landFriendFrame))
	assert.Empty(t, c.Nodes)
}

func TestLeadership(t *testing.T) {
	sym := landUnit(core.AffiliationFriend)

	off := Leadership(false)(landFriendFrame, input(sym, landFriendFrame))
	assert.Empty(t, off.Nodes)

	on := Leadership(true)(landFriendFrame, input(sym, landFriendFrame))
	require.Len(t, on.Nodes, 1)
	assert.Equal(t, "m 45,60 55,-25 55,25", on.Nodes[0].PathData())
	assert.Equal(t, core.NewBox(25, 30, 175, 150), on.Box)

	hostile := Leadership(true)(landHostileFrame, input(landUnit(core.AffiliationHostile), landHostileFrame))
	require.Len(t, hostile.Nodes, 1)
	assert.Equal(t, "m 42,71 57.8,-43.3 58.2,42.8", hostile.Nodes[0].PathData())
}

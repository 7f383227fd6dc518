package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OCAP2/milsymbol/internal/color"
	"github.com/OCAP2/milsymbol/internal/compose"
	"github.com/OCAP2/milsymbol/internal/draw"
	"github.com/OCAP2/milsymbol/pkg/core"
)

func infantryBattalion() core.Symbol {
	return core.NewSymbol(core.AffiliationFriend, core.SymbolSetLandUnit).
		WithEntity(121100).
		WithEchelon(core.EchelonBattalion)
}

func renderSymbol(sym core.Symbol, style core.Style) core.Output {
	return Render(compose.NewComposer(nil, nil).Compose(sym, style), style)
}

// sceneOf wraps loose nodes in a friend land scene.
func sceneOf(nodes ...draw.Node) compose.Scene {
	sym := core.NewSymbol(core.AffiliationFriend, core.SymbolSetLandUnit)
	return compose.Scene{
		Symbol:           sym,
		FrameAffiliation: core.FrameFriend,
		Nodes:            nodes,
		Box:              draw.BoxOf(core.FrameFriend, nodes...),
		FrameBox:         core.NewBox(25, 50, 175, 150),
		Anchor:           core.CanvasCenter,
	}
}

func TestRenderInfantryBattalion(t *testing.T) {
	out := renderSymbol(infantryBattalion(), core.DefaultStyle())

	assert.Equal(t, core.NewBox(21, 6, 179, 154), out.SVGBox)
	assert.Equal(t, core.NewBox(4, 44, 154, 144), out.FrameBox)
	assert.Equal(t, core.Pt(79, 94), out.Anchor)

	lines := strings.Split(out.SVG, "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, `<svg xmlns="http://www.w3.org/2000/svg" width="158" height="148" viewBox="21 6 158 148">`, lines[0])
	assert.Equal(t, `<path fill="rgb(128,224,255)" stroke="rgb(0,0,0)" d="M25,50 l150,0 0,100 -150,0 z" stroke-width="4"/>`, lines[1])
	assert.Equal(t, `<g transform="translate(0 0)">`+
		`<path fill="none" stroke="rgb(0,0,0)" d="M 90,40 L 90,15" stroke-width="4"/>`+
		`<path fill="none" stroke="rgb(0,0,0)" d="M 110,40 L 110,15" stroke-width="4"/>`+
		`</g>`, lines[2])
	assert.Equal(t, `<path fill="none" stroke="rgb(0,0,0)" d="M 25,50 L 175,150 M 25,150 L 175,50" stroke-width="4"/>`, lines[3])
	assert.Equal(t, "</svg>", lines[4])
}

func TestRenderCanvasTallerThanFrame(t *testing.T) {
	out := renderSymbol(infantryBattalion(), core.DefaultStyle())
	assert.GreaterOrEqual(t, out.SVGBox.Height(), out.FrameBox.Height()+40)
	assert.Equal(t, 1, strings.Count(out.SVG, "<g "))
}

func TestRenderDoubleSize(t *testing.T) {
	nominal := renderSymbol(infantryBattalion(), core.DefaultStyle())
	double := renderSymbol(infantryBattalion(), core.DefaultStyle().WithIconSize(200))

	assert.InDelta(t, 2*nominal.SVGBox.Width(), double.SVGBox.Width(), 1e-9)
	assert.InDelta(t, 2*nominal.SVGBox.Height(), double.SVGBox.Height(), 1e-9)
	assert.InDelta(t, 2*nominal.Anchor.X, double.Anchor.X, 1e-9)
	assert.InDelta(t, 2*nominal.Anchor.Y, double.Anchor.Y, 1e-9)
	assert.InDelta(t, 2*nominal.FrameBox.X1, double.FrameBox.X1, 1e-9)
	assert.InDelta(t, 2*nominal.FrameBox.Y2, double.FrameBox.Y2, 1e-9)

	assert.Equal(t, core.NewBox(-58, -88, 258, 208), double.SVGBox)
	assert.Contains(t, double.SVG, `<g transform="translate(-100 -100) scale(2)">`)
	assert.Contains(t, double.SVG, `viewBox="-58 -88 316 296"`)
}

func TestRenderHeadquartersAnchor(t *testing.T) {
	sym := core.NewSymbol(core.AffiliationFriend, core.SymbolSetLandUnit).WithHeadquarters(true)
	plain := renderSymbol(sym.WithHeadquarters(false), core.DefaultStyle())
	out := renderSymbol(sym, core.DefaultStyle())

	center := out.FrameBox.Center()
	assert.NotEqual(t, center, out.Anchor)
	assert.Equal(t, plain.FrameBox.Center(), plain.Anchor)

	// the tip sits below the frame bottom by the staff length
	assert.Equal(t, out.FrameBox.Y2+core.DefaultHQStaffLength, out.Anchor.Y)
	assert.Equal(t, out.FrameBox.X1, out.Anchor.X)
}

func TestRenderUnfilledNeverPaintsIconFill(t *testing.T) {
	affiliations := []core.Affiliation{
		core.AffiliationPending, core.AffiliationUnknown, core.AffiliationAssumedFriend,
		core.AffiliationFriend, core.AffiliationNeutral, core.AffiliationSuspect, core.AffiliationHostile,
	}
	style := core.DefaultStyle().WithColorMode(core.ColorModeUnfilled)

	for _, aff := range affiliations {
		t.Run(aff.String(), func(t *testing.T) {
			scene := sceneOf(
				draw.Circle(core.CanvasCenter, 10).WithFill(color.RoleIconFill),
				draw.Path("M 0,0 L 10,10", core.NewBox(0, 0, 10, 10)).WithFill(color.RoleIconFill).WithShade(color.ShadeDark),
			)
			scene.Symbol = scene.Symbol.WithAffiliation(aff)

			out := Render(scene, style)
			assert.Equal(t, 2, strings.Count(out.SVG, `fill="none"`))
			assert.NotContains(t, out.SVG, `fill="rgb(`)

			full := renderSymbol(infantryBattalion().WithAffiliation(aff), style)
			assert.NotContains(t, full.SVG, `fill="rgb(`)
		})
	}
}

func TestRenderUnfilledIconStrokeUsesFrameColor(t *testing.T) {
	sym := core.NewSymbol(core.AffiliationHostile, core.SymbolSetLandUnit)
	out := renderSymbol(sym, core.DefaultStyle().WithColorMode(core.ColorModeUnfilled))
	assert.Contains(t, out.SVG, `<path fill="none" stroke="rgb(255,0,0)"`)
}

func TestRenderDashedFrame(t *testing.T) {
	sym := core.NewSymbol(core.AffiliationAssumedFriend, core.SymbolSetLandUnit)
	out := renderSymbol(sym, core.DefaultStyle())

	assert.Contains(t, out.SVG, `stroke="rgb(255,255,255)"`)
	assert.Equal(t, 1, strings.Count(out.SVG, `stroke-dasharray="8 8"`))
}

func TestRenderNoDashWithoutStroke(t *testing.T) {
	n := draw.Path("M 0,0 L 10,10", core.NewBox(0, 0, 10, 10)).
		WithStroke(color.RoleNone).
		WithStrokeStyle(draw.StrokeDashed)
	out := Render(sceneOf(n), core.DefaultStyle())
	assert.NotContains(t, out.SVG, "stroke-dasharray")
}

func TestRenderContextText(t *testing.T) {
	sym := core.NewSymbol(core.AffiliationFriend, core.SymbolSetLandUnit).WithContext(core.ContextExercise)
	out := renderSymbol(sym, core.DefaultStyle())
	assert.Contains(t, out.SVG,
		`<text x="185" y="60" fill="rgb(0,0,0)" stroke="none" font-size="35" font-family="Arial" font-weight="bold" text-anchor="start">X</text>`)
}

func TestRenderEscapesText(t *testing.T) {
	n := draw.Text(`<A&"B">`, core.CanvasCenter, 20, draw.FontNormal, draw.AlignMiddle)
	out := Render(sceneOf(n), core.DefaultStyle())
	assert.Contains(t, out.SVG, `>&lt;A&amp;&#34;B&#34;&gt;</text>`)
}

func TestRenderOverrides(t *testing.T) {
	style := core.DefaultStyle().
		WithColorOverride(core.RGB(1, 2, 3)).
		WithStrokeWidthOverride(2)

	out := renderSymbol(infantryBattalion(), style)
	assert.Contains(t, out.SVG, `<path fill="rgb(1,2,3)" stroke="rgb(0,0,0)"`)
	assert.NotContains(t, out.SVG, `stroke-width="4"`)
	assert.Equal(t, 4, strings.Count(out.SVG, `stroke-width="2"`))
}

func TestRenderPadding(t *testing.T) {
	style := core.DefaultStyle()
	style.Padding = 10
	style.FrameStrokeWidth = 6

	sym := core.NewSymbol(core.AffiliationFriend, core.SymbolSetLandUnit)
	out := renderSymbol(sym, style)
	assert.Equal(t, core.NewBox(9, 34, 191, 166), out.SVGBox)
	assert.Equal(t, core.NewBox(16, 16, 166, 116), out.FrameBox)
}

func TestRenderCivilianAndShade(t *testing.T) {
	fill := draw.Circle(core.CanvasCenter, 10).WithFill(color.RoleIconFill)

	scene := sceneOf(fill)
	scene.Civilian = true
	assert.Contains(t, Render(scene, core.DefaultStyle()).SVG, `fill="rgb(255,161,255)"`)

	dark := sceneOf(fill.WithShade(color.ShadeDark))
	assert.Contains(t, Render(dark, core.DefaultStyle()).SVG, `fill="rgb(0,107,140)"`)
}

func TestRenderVariantSelectsFrameAffiliation(t *testing.T) {
	v := draw.Variant(
		draw.Text("H", core.CanvasCenter, 20, draw.FontNormal, draw.AlignMiddle),
		draw.Text("F", core.CanvasCenter, 20, draw.FontNormal, draw.AlignMiddle),
		draw.Node{},
		draw.Node{},
	)
	out := Render(sceneOf(v), core.DefaultStyle())
	assert.Contains(t, out.SVG, ">F</text>")
	assert.NotContains(t, out.SVG, ">H</text>")
}

func TestRenderEmptyScene(t *testing.T) {
	out := Render(compose.Scene{Box: core.EmptyBox(), FrameBox: core.EmptyBox(), Anchor: core.CanvasCenter}, core.DefaultStyle())
	assert.Equal(t, core.NewBox(96, 96, 104, 104), out.SVGBox)
	assert.Equal(t, core.Pt(4, 4), out.Anchor)
	assert.True(t, strings.HasSuffix(out.SVG, "</svg>"))
}

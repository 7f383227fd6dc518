// Package compose assembles the scene of a symbol: frame, context marker,
// accents, amplifiers and catalog icons, in drawing order.
package compose

import (
	"log/slog"

	"github.com/OCAP2/milsymbol/internal/amplifier"
	"github.com/OCAP2/milsymbol/internal/catalog"
	"github.com/OCAP2/milsymbol/internal/color"
	"github.com/OCAP2/milsymbol/internal/draw"
	"github.com/OCAP2/milsymbol/internal/frame"
	"github.com/OCAP2/milsymbol/pkg/core"
)

// Scene is a composed symbol, ready to serialize.
type Scene struct {
	Symbol           core.Symbol
	FrameAffiliation core.FrameAffiliation
	// Civilian selects the civilian palette slot.
	Civilian bool

	Nodes []draw.Node
	// Box bounds everything drawn plus the frame geometry.
	Box core.Box
	// FrameBox is the frame geometry box, drawn or not.
	FrameBox core.Box
	Anchor   core.Point

	// Misses lists the catalog slots whose non-zero code had no entry.
	Misses []catalog.Kind
}

// Composer builds scenes. It is safe for concurrent use.
type Composer struct {
	catalog catalog.Catalog
	steps   []amplifier.Step
	logger  *slog.Logger
}

// NewComposer creates a composer drawing icons from cat. A nil cat uses the
// built-in catalog.
func NewComposer(cat catalog.Catalog, logger *slog.Logger) *Composer {
	if cat == nil {
		cat = catalog.Builtin()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Composer{
		catalog: cat,
		steps:   amplifier.Default(),
		logger:  logger,
	}
}

// WithAmplifiers returns a copy of the composer that applies steps instead
// of the default amplifier order.
func (c *Composer) WithAmplifiers(steps ...amplifier.Step) *Composer {
	cp := *c
	cp.steps = steps
	return &cp
}

// Compose builds the scene of sym under style.
func (c *Composer) Compose(sym core.Symbol, style core.Style) Scene {
	style = style.Normalized()
	fa := sym.FrameAffiliation()
	dim := sym.Dimension().Base()
	positionOnly := style.PositionOnly()

	base := frame.Base(dim, fa, positionOnly)
	if base.IsEmpty() {
		c.logger.Debug("No frame geometry", "dimension", dim, "affiliation", fa)
	}
	frameBox := base.BoxFor(fa)

	scene := Scene{
		Symbol:           sym,
		FrameAffiliation: fa,
		FrameBox:         frameBox,
		Anchor:           core.CanvasCenter,
	}

	if style.ShowFrame || positionOnly {
		scene.Nodes = append(scene.Nodes, frameNodes(base, sym, style)...)
	}

	if !positionOnly {
		if style.ShowAmplifiers {
			if m := contextMarker(sym, dim, frameBox); !m.IsEmpty() {
				scene.Nodes = append(scene.Nodes, m)
			}
		}

		switch sym.SymbolSet {
		case core.SymbolSetSpace, core.SymbolSetSpaceMissile:
			scene.Nodes = append(scene.Nodes, frame.SpaceModifier(fa))
		case core.SymbolSetActivities:
			scene.Nodes = append(scene.Nodes, frame.ActivityModifier(fa))
		}
	}

	scene.Box = frameBox.Merge(draw.BoxOf(fa, scene.Nodes...))

	if !positionOnly && style.ShowAmplifiers {
		res := amplifier.Apply(amplifier.Input{Symbol: sym, Style: style, Frame: frameBox}, c.steps...)
		scene.Nodes = append(scene.Nodes, res.Nodes...)
		scene.Box = scene.Box.Merge(res.Box)
		scene.Anchor = res.Anchor
	}

	entity := c.lookup(&scene, sym.Entity, catalog.KindEntity)
	mod1 := c.lookup(&scene, sym.Modifier1, catalog.KindModifier1)
	mod2 := c.lookup(&scene, sym.Modifier2, catalog.KindModifier2)
	scene.Civilian = style.UseCivilianColor && (entity.Civilian || mod1.Civilian || mod2.Civilian)

	var icons []draw.Node
	if style.ShowEntityIcon {
		icons = append(icons, entity.Nodes...)
		if !positionOnly && style.ShowModifiers {
			icons = append(icons, mod1.Nodes...)
			icons = append(icons, mod2.Nodes...)
		}
	}
	scene.Nodes = append(scene.Nodes, icons...)
	scene.Box = scene.Box.Merge(draw.BoxOf(fa, icons...))

	return scene
}

func (c *Composer) lookup(scene *Scene, code int, kind catalog.Kind) catalog.Layer {
	if code == 0 {
		return catalog.Layer{}
	}
	l := c.catalog.Lookup(scene.Symbol.SymbolSet, code, kind)
	if l.Empty() {
		c.logger.Debug("Catalog miss", "symbolSet", scene.Symbol.SymbolSet, "code", code, "kind", kind)
		scene.Misses = append(scene.Misses, kind)
	}
	return l
}

// dashedFrame reports whether the frame outline is drawn dashed.
func dashedFrame(sym core.Symbol) bool {
	switch sym.Affiliation {
	case core.AffiliationAssumedFriend, core.AffiliationPending, core.AffiliationSuspect:
		return true
	}
	return sym.Presence == core.PresencePlanned
}

func frameNodes(base draw.Node, sym core.Symbol, style core.Style) []draw.Node {
	if base.IsEmpty() {
		return nil
	}

	n := base.WithStrokeWidth(style.FrameStrokeWidth)
	if style.ColorMode == core.ColorModeUnfilled {
		n = n.WithFill(color.RoleNone)
	}
	if !dashedFrame(sym) {
		return []draw.Node{n}
	}

	// white outline under a dashed one
	return []draw.Node{
		n.WithStroke(color.RoleWhite),
		n.WithStroke(color.RoleIcon).WithStrokeStyle(draw.StrokeDashed).WithFill(color.RoleNone),
	}
}

const (
	contextMarkerY    = 60
	contextMarkerSize = 35
	contextSpacing    = 10
)

// contextLetter returns the letter marking non-real symbols.
func contextLetter(sym core.Symbol) string {
	switch sym.Context {
	case core.ContextExercise:
		switch sym.Affiliation {
		case core.AffiliationSuspect:
			return "J"
		case core.AffiliationAssumedFriend:
			return "K"
		}
		return "X"
	case core.ContextSimulation:
		return "S"
	}
	return ""
}

func contextMarker(sym core.Symbol, dim core.Dimension, frameBox core.Box) draw.Node {
	letter := contextLetter(sym)
	if letter == "" {
		return draw.Node{}
	}

	spacing := float64(contextSpacing)
	if sym.Affiliation == core.AffiliationUnknown ||
		(sym.Affiliation == core.AffiliationHostile && dim == core.DimensionSubsurface) {
		spacing = -contextSpacing
	}

	pos := core.Pt(frameBox.X2+spacing, contextMarkerY)
	return draw.Text(letter, pos, contextMarkerSize, draw.FontBold, draw.AlignStart)
}

// Package amplifier builds the graphical annotations drawn around a symbol
// frame. Each annotation is a Step; Apply folds the steps in order over a
// running bounding box that starts as the frame box.
package amplifier

import (
	"github.com/OCAP2/milsymbol/internal/draw"
	"github.com/OCAP2/milsymbol/pkg/core"
)

// Input is what every step sees.
type Input struct {
	Symbol core.Symbol
	Style  core.Style
	// Frame is the frame geometry box. Steps place their marks relative to
	// it, never relative to the running box.
	Frame core.Box
}

func (in Input) frameAffiliation() core.FrameAffiliation {
	return in.Symbol.FrameAffiliation()
}

func (in Input) dimension() core.Dimension {
	return in.Symbol.Dimension().Base()
}

// Contribution is the output of one step. Box is merged into the running
// box. A non-nil Anchor replaces the symbol anchor.
type Contribution struct {
	Nodes  []draw.Node
	Box    core.Box
	Anchor *core.Point
}

// None is the contribution of a step that draws nothing.
func None() Contribution {
	return Contribution{Box: core.EmptyBox()}
}

// Step computes one amplifier from the running box and the input.
type Step func(running core.Box, in Input) Contribution

// Result is the folded output of all steps.
type Result struct {
	Nodes []draw.Node
	// Box is the frame box merged with every step's box.
	Box    core.Box
	Anchor core.Point
	// Anchored is set when a step moved the anchor off the canvas center.
	Anchored bool
}

// Apply runs steps in order. Every step sees the box accumulated by the
// steps before it.
func Apply(in Input, steps ...Step) Result {
	res := Result{
		Box:    in.Frame,
		Anchor: core.CanvasCenter,
	}
	for _, step := range steps {
		c := step(res.Box, in)
		res.Nodes = append(res.Nodes, c.Nodes...)
		res.Box = res.Box.Merge(c.Box)
		if c.Anchor != nil {
			res.Anchor = *c.Anchor
			res.Anchored = true
		}
	}
	return res
}

// Default returns the standard step order.
func Default() []Step {
	return []Step{
		Headquarters,
		TaskForce,
		Installation,
		FeintDummy,
		Echelon,
		Mobility,
		Leadership(false),
	}
}

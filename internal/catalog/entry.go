package catalog

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/OCAP2/milsymbol/internal/color"
	"github.com/OCAP2/milsymbol/internal/draw"
	"github.com/OCAP2/milsymbol/pkg/core"
)

// File is the document layout of a catalog file.
type File struct {
	Entries []Entry `yaml:"entries" json:"entries"`
}

// Entry describes the icon of one code. Code is the raw code without its
// symbol set.
type Entry struct {
	Set      int    `yaml:"set" json:"set"`
	Kind     string `yaml:"kind" json:"kind"`
	Code     int    `yaml:"code" json:"code"`
	Name     string `yaml:"name" json:"name"`
	Civilian bool   `yaml:"civilian,omitempty" json:"civilian,omitempty"`
	Items    []Item `yaml:"items" json:"items"`
}

// Item is one draw command of an entry. Exactly one of Path, Circle, Text,
// Group or Variant is set.
type Item struct {
	Path string    `yaml:"path,omitempty" json:"path,omitempty"`
	Box  []float64 `yaml:"box,omitempty" json:"box,omitempty"`

	// Circle is cx, cy, r.
	Circle []float64 `yaml:"circle,omitempty" json:"circle,omitempty"`

	Text string `yaml:"text,omitempty" json:"text,omitempty"`
	// Layout is auto, m1, m2 or free. Free text uses At, Size and Align.
	Layout string    `yaml:"layout,omitempty" json:"layout,omitempty"`
	At     []float64 `yaml:"at,omitempty" json:"at,omitempty"`
	Size   float64   `yaml:"size,omitempty" json:"size,omitempty"`
	Bold   bool      `yaml:"bold,omitempty" json:"bold,omitempty"`
	Align  string    `yaml:"align,omitempty" json:"align,omitempty"`
	Font   string    `yaml:"font,omitempty" json:"font,omitempty"`

	Group     []Item    `yaml:"group,omitempty" json:"group,omitempty"`
	Translate []float64 `yaml:"translate,omitempty" json:"translate,omitempty"`

	Variant *Variant `yaml:"variant,omitempty" json:"variant,omitempty"`

	Fill        string   `yaml:"fill,omitempty" json:"fill,omitempty"`
	Stroke      string   `yaml:"stroke,omitempty" json:"stroke,omitempty"`
	StrokeWidth *float64 `yaml:"strokeWidth,omitempty" json:"strokeWidth,omitempty"`
	Dashed      bool     `yaml:"dashed,omitempty" json:"dashed,omitempty"`
}

// Variant holds per-affiliation alternatives of an item.
type Variant struct {
	Hostile []Item `yaml:"hostile" json:"hostile"`
	Friend  []Item `yaml:"friend" json:"friend"`
	Neutral []Item `yaml:"neutral" json:"neutral"`
	Unknown []Item `yaml:"unknown" json:"unknown"`
}

var errEmptyItem = errors.New("item has no drawable content")

// errWrapperPaint is returned for paint set on a group or variant item.
// Paint belongs on the shapes inside it.
var errWrapperPaint = errors.New("group and variant items take no fill, stroke, strokeWidth or dashed")

// ParseYAML decodes a catalog file.
func ParseYAML(data []byte) (File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("parsing catalog YAML: %w", err)
	}
	return f, nil
}

// MarshalYAML encodes entries as a catalog file.
func MarshalYAML(entries []Entry) ([]byte, error) {
	data, err := yaml.Marshal(File{Entries: entries})
	if err != nil {
		return nil, fmt.Errorf("encoding catalog YAML: %w", err)
	}
	return data, nil
}

// Key returns the symbol set, kind and packed code the entry is indexed by.
func (e Entry) Key() (core.SymbolSet, Kind, int, error) {
	set := core.SymbolSet(e.Set)
	if !set.Valid() {
		return 0, 0, 0, fmt.Errorf("entry %q: unknown symbol set %d", e.Name, e.Set)
	}
	kind, ok := ParseKind(e.Kind)
	if !ok {
		return 0, 0, 0, fmt.Errorf("entry %q: unknown kind %q", e.Name, e.Kind)
	}
	if e.Code <= 0 {
		return 0, 0, 0, fmt.Errorf("entry %q: code must be positive", e.Name)
	}
	if kind != KindEntity && e.Code >= core.ModifierOffset {
		return 0, 0, 0, fmt.Errorf("entry %q: modifier code %d out of range", e.Name, e.Code)
	}
	if e.Code >= core.EntityOffset {
		return 0, 0, 0, fmt.Errorf("entry %q: entity code %d out of range", e.Name, e.Code)
	}
	return set, kind, kind.Pack(set, e.Code), nil
}

// Nodes builds the draw nodes of the entry.
func (e Entry) Nodes() ([]draw.Node, error) {
	nodes := make([]draw.Node, 0, len(e.Items))
	for i, it := range e.Items {
		n, err := it.Node()
		if err != nil {
			return nil, fmt.Errorf("entry %q item %d: %w", e.Name, i, err)
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

// Node builds the draw node of the item.
func (it Item) Node() (draw.Node, error) {
	n, err := it.shape()
	if err != nil {
		return draw.Node{}, err
	}
	return it.paint(n)
}

func (it Item) shape() (draw.Node, error) {
	switch {
	case it.Path != "":
		if len(it.Box) != 4 {
			return draw.Node{}, fmt.Errorf("path %q needs a box of 4 numbers", it.Path)
		}
		return draw.Path(it.Path, core.NewBox(it.Box[0], it.Box[1], it.Box[2], it.Box[3])), nil

	case it.Circle != nil:
		if len(it.Circle) != 3 {
			return draw.Node{}, errors.New("circle needs cx, cy and r")
		}
		return draw.Circle(core.Pt(it.Circle[0], it.Circle[1]), it.Circle[2]), nil

	case it.Text != "":
		return it.text()

	case it.Group != nil:
		children, err := buildItems(it.Group)
		if err != nil {
			return draw.Node{}, err
		}
		var delta core.Point
		if len(it.Translate) == 2 {
			delta = core.Pt(it.Translate[0], it.Translate[1])
		} else if it.Translate != nil {
			return draw.Node{}, errors.New("translate needs dx and dy")
		}
		return draw.Translate(delta, children...), nil

	case it.Variant != nil:
		var sub [4]draw.Node
		for i, items := range [][]Item{it.Variant.Hostile, it.Variant.Friend, it.Variant.Neutral, it.Variant.Unknown} {
			children, err := buildItems(items)
			if err != nil {
				return draw.Node{}, err
			}
			switch len(children) {
			case 0:
			case 1:
				sub[i] = children[0]
			default:
				sub[i] = draw.Group(children...)
			}
		}
		return draw.Variant(sub[0], sub[1], sub[2], sub[3]), nil
	}
	return draw.Node{}, errEmptyItem
}

func (it Item) text() (draw.Node, error) {
	weight := draw.FontNormal
	if it.Bold {
		weight = draw.FontBold
	}

	var n draw.Node
	switch it.Layout {
	case "", "auto":
		n = draw.AutoText(it.Text, weight)
	case "m1":
		n = draw.ModifierText1(it.Text)
	case "m2":
		n = draw.ModifierText2(it.Text)
	case "free":
		if len(it.At) != 2 || it.Size <= 0 {
			return draw.Node{}, fmt.Errorf("free text %q needs at and size", it.Text)
		}
		align := draw.AlignMiddle
		switch it.Align {
		case "start":
			align = draw.AlignStart
		case "end":
			align = draw.AlignEnd
		}
		n = draw.Text(it.Text, core.Pt(it.At[0], it.At[1]), it.Size, weight, align)
	default:
		return draw.Node{}, fmt.Errorf("unknown text layout %q", it.Layout)
	}
	if it.Font != "" {
		n = n.WithFontFamily(it.Font)
	}
	return n, nil
}

func (it Item) hasPaint() bool {
	return it.Fill != "" || it.Stroke != "" || it.StrokeWidth != nil || it.Dashed
}

func (it Item) paint(n draw.Node) (draw.Node, error) {
	if !it.hasPaint() {
		return n, nil
	}
	if k := n.Kind(); k == draw.KindTranslate || k == draw.KindVariant {
		return draw.Node{}, errWrapperPaint
	}
	if it.Fill != "" {
		r, ok := color.ParseRole(it.Fill)
		if !ok {
			return draw.Node{}, fmt.Errorf("unknown fill role %q", it.Fill)
		}
		n = n.WithFill(r)
	}
	if it.Stroke != "" {
		r, ok := color.ParseRole(it.Stroke)
		if !ok {
			return draw.Node{}, fmt.Errorf("unknown stroke role %q", it.Stroke)
		}
		n = n.WithStroke(r)
	}
	if it.StrokeWidth != nil {
		n = n.WithStrokeWidth(*it.StrokeWidth)
	}
	if it.Dashed {
		n = n.WithStrokeStyle(draw.StrokeDashed)
	}
	return n, nil
}

func buildItems(items []Item) ([]draw.Node, error) {
	out := make([]draw.Node, 0, len(items))
	for _, it := range items {
		n, err := it.Node()
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

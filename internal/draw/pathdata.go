package draw

import (
	"strconv"
	"strings"
)

// PathBuilder assembles SVG path data from absolute and relative
// commands.
type PathBuilder struct {
	sb strings.Builder
}

// NewPath starts an empty path.
func NewPath() *PathBuilder {
	return &PathBuilder{}
}

func (p *PathBuilder) cmd(c byte, coords ...float64) *PathBuilder {
	if p.sb.Len() > 0 {
		p.sb.WriteByte(' ')
	}
	p.sb.WriteByte(c)
	for i, v := range coords {
		if i == 0 {
			p.sb.WriteByte(' ')
		} else if i%2 == 1 {
			p.sb.WriteByte(',')
		} else {
			p.sb.WriteByte(' ')
		}
		p.sb.WriteString(FormatFloat(v))
	}
	return p
}

// MoveTo starts a new subpath at (x, y).
func (p *PathBuilder) MoveTo(x, y float64) *PathBuilder { return p.cmd('M', x, y) }

// LineTo draws a line to (x, y).
func (p *PathBuilder) LineTo(x, y float64) *PathBuilder { return p.cmd('L', x, y) }

// MoveBy moves the pen by (dx, dy).
func (p *PathBuilder) MoveBy(dx, dy float64) *PathBuilder { return p.cmd('m', dx, dy) }

// LineBy draws a line by (dx, dy).
func (p *PathBuilder) LineBy(dx, dy float64) *PathBuilder { return p.cmd('l', dx, dy) }

// Close closes the current subpath.
func (p *PathBuilder) Close() *PathBuilder { return p.cmd('Z') }

// String returns the path data.
func (p *PathBuilder) String() string {
	return p.sb.String()
}

// FormatFloat prints a coordinate with the fewest digits that round-trip.
func FormatFloat(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

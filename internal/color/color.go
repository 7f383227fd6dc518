// Package color resolves the color roles of scene nodes into concrete
// paints for a given affiliation and style.
package color

import "github.com/OCAP2/milsymbol/pkg/core"

// Role is the color role a node paints its fill or stroke with.
type Role int

const (
	RoleNone Role = iota
	RoleIcon
	RoleIconFill
	RoleWhite
	RoleYellow
)

func (r Role) String() string {
	switch r {
	case RoleIcon:
		return "icon"
	case RoleIconFill:
		return "icon_fill"
	case RoleWhite:
		return "white"
	case RoleYellow:
		return "yellow"
	default:
		return "none"
	}
}

// ParseRole parses the lower case role name used in catalog files.
func ParseRole(s string) (Role, bool) {
	switch s {
	case "icon":
		return RoleIcon, true
	case "icon_fill":
		return RoleIconFill, true
	case "white":
		return RoleWhite, true
	case "yellow":
		return RoleYellow, true
	case "none":
		return RoleNone, true
	}
	return RoleNone, false
}

// Shade is a row of the palette.
type Shade int

const (
	ShadeBlack Shade = iota
	ShadeFrame
	ShadeLight
	ShadeMedium
	ShadeDark
	ShadeWhite
)

// Slot is a column of the palette.
type Slot int

const (
	SlotHostile Slot = iota
	SlotFriend
	SlotNeutral
	SlotUnknown
	SlotSuspect
	SlotCivilian
)

var palette = [6][6]core.Color{
	ShadeBlack: {
		core.RGB(0, 0, 0), core.RGB(0, 0, 0), core.RGB(0, 0, 0),
		core.RGB(0, 0, 0), core.RGB(0, 0, 0), core.RGB(0, 0, 0),
	},
	ShadeFrame: {
		SlotHostile:  core.RGB(255, 0, 0),
		SlotFriend:   core.RGB(0, 255, 255),
		SlotNeutral:  core.RGB(0, 255, 0),
		SlotUnknown:  core.RGB(255, 255, 0),
		SlotSuspect:  core.RGB(255, 188, 1),
		SlotCivilian: core.RGB(255, 0, 255),
	},
	ShadeLight: {
		SlotHostile:  core.RGB(255, 128, 128),
		SlotFriend:   core.RGB(128, 224, 255),
		SlotNeutral:  core.RGB(170, 255, 170),
		SlotUnknown:  core.RGB(255, 255, 128),
		SlotSuspect:  core.RGB(255, 229, 153),
		SlotCivilian: core.RGB(255, 161, 255),
	},
	ShadeMedium: {
		SlotHostile:  core.RGB(255, 48, 49),
		SlotFriend:   core.RGB(0, 168, 220),
		SlotNeutral:  core.RGB(0, 226, 110),
		SlotUnknown:  core.RGB(255, 255, 0),
		SlotSuspect:  core.RGB(255, 188, 1),
		SlotCivilian: core.RGB(128, 0, 128),
	},
	ShadeDark: {
		SlotHostile:  core.RGB(200, 0, 0),
		SlotFriend:   core.RGB(0, 107, 140),
		SlotNeutral:  core.RGB(0, 160, 0),
		SlotUnknown:  core.RGB(225, 220, 0),
		SlotSuspect:  core.RGB(200, 100, 0),
		SlotCivilian: core.RGB(80, 0, 80),
	},
	ShadeWhite: {
		core.RGB(255, 255, 255), core.RGB(255, 255, 255), core.RGB(255, 255, 255),
		core.RGB(255, 255, 255), core.RGB(255, 255, 255), core.RGB(255, 255, 255),
	},
}

// Palette returns the palette entry at the given shade and slot.
func Palette(shade Shade, slot Slot) core.Color {
	return palette[shade][slot]
}

// SlotFor returns the palette column of an affiliation.
func SlotFor(a core.Affiliation) Slot {
	switch a {
	case core.AffiliationHostile:
		return SlotHostile
	case core.AffiliationSuspect:
		return SlotSuspect
	case core.AffiliationFriend, core.AffiliationAssumedFriend:
		return SlotFriend
	case core.AffiliationNeutral:
		return SlotNeutral
	default:
		return SlotUnknown
	}
}

func shadeFor(m core.ColorMode) Shade {
	switch m {
	case core.ColorModeMedium:
		return ShadeMedium
	case core.ColorModeDark:
		return ShadeDark
	case core.ColorModeUnfilled:
		return ShadeFrame
	default:
		return ShadeLight
	}
}

// Params are the inputs of Resolve besides the role itself.
type Params struct {
	Affiliation core.Affiliation
	Civilian    bool
	Mode        core.ColorMode
	// Override replaces colors according to the style override rules.
	Override *core.Color
	// Shade is a per-node palette row used for Icon and IconFill outside
	// unfilled mode.
	Shade *Shade
}

// Resolve returns the paint of role, and false when the role paints
// nothing.
func Resolve(role Role, p Params) (core.Color, bool) {
	civilian := p.Civilian
	if p.Affiliation == core.AffiliationHostile || p.Affiliation == core.AffiliationSuspect {
		civilian = false
	}

	unfilled := p.Mode == core.ColorModeUnfilled
	if p.Override != nil && role != RoleNone {
		if role == RoleIconFill || unfilled {
			return *p.Override, true
		}
	}

	slot := SlotFor(p.Affiliation)
	if civilian {
		slot = SlotCivilian
	}

	if p.Shade != nil && !unfilled && (role == RoleIcon || role == RoleIconFill) {
		return palette[*p.Shade][slot], true
	}

	switch role {
	case RoleIconFill:
		return palette[shadeFor(p.Mode)][slot], true
	case RoleIcon:
		if unfilled {
			return palette[ShadeFrame][slot], true
		}
		return palette[ShadeBlack][slot], true
	case RoleWhite:
		if unfilled {
			return core.Color{}, false
		}
		return palette[ShadeWhite][slot], true
	case RoleYellow:
		if unfilled {
			return core.Color{}, false
		}
		return palette[ShadeLight][SlotUnknown], true
	default:
		return core.Color{}, false
	}
}

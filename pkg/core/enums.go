// pkg/core/enums.go
package core

// Affiliation is the standard identity of a symbol.
type Affiliation int

const (
	AffiliationPending Affiliation = iota
	AffiliationUnknown
	AffiliationAssumedFriend
	AffiliationFriend
	AffiliationNeutral
	AffiliationSuspect
	AffiliationHostile
)

var affiliationNames = [...]string{"pending", "unknown", "assumed_friend", "friend", "neutral", "suspect", "hostile"}

func (a Affiliation) String() string {
	if a < 0 || int(a) >= len(affiliationNames) {
		return "undefined"
	}
	return affiliationNames[a]
}

// FrameAffiliation selects one of the four frame shapes.
type FrameAffiliation int

const (
	FrameHostile FrameAffiliation = iota
	FrameFriend
	FrameNeutral
	FrameUnknown
)

func (f FrameAffiliation) String() string {
	switch f {
	case FrameHostile:
		return "hostile"
	case FrameFriend:
		return "friend"
	case FrameNeutral:
		return "neutral"
	case FrameUnknown:
		return "unknown"
	}
	return "undefined"
}

// Frame maps an affiliation to its frame shape in the given context.
// Simulated hostiles are friendly units playing the enemy and keep the
// friend frame.
func (a Affiliation) Frame(ctx Context) FrameAffiliation {
	switch a {
	case AffiliationHostile, AffiliationSuspect:
		if ctx == ContextSimulation {
			return FrameFriend
		}
		return FrameHostile
	case AffiliationFriend, AffiliationAssumedFriend:
		return FrameFriend
	case AffiliationNeutral:
		return FrameNeutral
	default:
		return FrameUnknown
	}
}

// Context is the operational context of a symbol.
type Context int

const (
	ContextReality Context = iota
	ContextExercise
	ContextSimulation
)

func (c Context) String() string {
	switch c {
	case ContextExercise:
		return "exercise"
	case ContextSimulation:
		return "simulation"
	default:
		return "reality"
	}
}

// Presence distinguishes present units from planned or anticipated ones.
type Presence int

const (
	PresencePresent Presence = iota
	PresencePlanned
)

func (p Presence) String() string {
	if p == PresencePlanned {
		return "planned"
	}
	return "present"
}

// Status is the operational condition of a present unit.
type Status int

const (
	StatusUndefined Status = iota
	StatusFullyCapable
	StatusDamaged
	StatusDestroyed
	StatusFullToCapacity
)

func (s Status) String() string {
	switch s {
	case StatusFullyCapable:
		return "fully_capable"
	case StatusDamaged:
		return "damaged"
	case StatusDestroyed:
		return "destroyed"
	case StatusFullToCapacity:
		return "full_to_capacity"
	default:
		return "undefined"
	}
}

// Echelon is the organizational size drawn above the frame.
type Echelon int

const (
	EchelonUndefined Echelon = iota
	EchelonTeam
	EchelonSquad
	EchelonSection
	EchelonPlatoon
	EchelonCompany
	EchelonBattalion
	EchelonRegiment
	EchelonBrigade
	EchelonDivision
	EchelonCorps
	EchelonArmy
	EchelonArmyGroup
	EchelonRegion
	EchelonCommand
)

var echelonNames = [...]string{
	"undefined", "team", "squad", "section", "platoon", "company", "battalion", "regiment",
	"brigade", "division", "corps", "army", "army_group", "region", "command",
}

func (e Echelon) String() string {
	if e < 0 || int(e) >= len(echelonNames) {
		return "undefined"
	}
	return echelonNames[e]
}

// Mobility is the equipment mobility indicator drawn below the frame.
type Mobility int

const (
	MobilityUndefined Mobility = iota
	MobilityWheeledLimitedCrossCountry
	MobilityWheeledCrossCountry
	MobilityTracked
	MobilityWheeledAndTracked
	MobilityTowed
	MobilityRail
	MobilityPackAnimals
	MobilityOverSnow
	MobilitySled
	MobilityBarge
	MobilityAmphibious
	MobilityShortTowedArray
	MobilityLongTowedArray
)

var mobilityNames = [...]string{
	"undefined", "wheeled_limited_cross_country", "wheeled_cross_country", "tracked",
	"wheeled_and_tracked", "towed", "rail", "pack_animals", "over_snow", "sled", "barge",
	"amphibious", "short_towed_array", "long_towed_array",
}

func (m Mobility) String() string {
	if m < 0 || int(m) >= len(mobilityNames) {
		return "undefined"
	}
	return mobilityNames[m]
}

// SymbolSet is the two-digit symbol set of a code. Values equal their
// encoded digits.
type SymbolSet int

const (
	SymbolSetUndefined        SymbolSet = 0
	SymbolSetAir              SymbolSet = 1
	SymbolSetAirMissile       SymbolSet = 2
	SymbolSetSpace            SymbolSet = 5
	SymbolSetSpaceMissile     SymbolSet = 6
	SymbolSetLandUnit         SymbolSet = 10
	SymbolSetLandCivilian     SymbolSet = 11
	SymbolSetLandEquipment    SymbolSet = 15
	SymbolSetLandInstallation SymbolSet = 20
	SymbolSetSeaSurface       SymbolSet = 30
	SymbolSetSeaSubsurface    SymbolSet = 35
	SymbolSetActivities       SymbolSet = 40
)

// SymbolSets lists every defined symbol set in code order.
var SymbolSets = []SymbolSet{
	SymbolSetAir, SymbolSetAirMissile, SymbolSetSpace, SymbolSetSpaceMissile,
	SymbolSetLandUnit, SymbolSetLandCivilian, SymbolSetLandEquipment, SymbolSetLandInstallation,
	SymbolSetSeaSurface, SymbolSetSeaSubsurface, SymbolSetActivities,
}

// Valid reports whether s is one of the defined symbol sets.
func (s SymbolSet) Valid() bool {
	for _, v := range SymbolSets {
		if v == s {
			return true
		}
	}
	return false
}

func (s SymbolSet) String() string {
	switch s {
	case SymbolSetAir:
		return "air"
	case SymbolSetAirMissile:
		return "air_missile"
	case SymbolSetSpace:
		return "space"
	case SymbolSetSpaceMissile:
		return "space_missile"
	case SymbolSetLandUnit:
		return "land_unit"
	case SymbolSetLandCivilian:
		return "land_civilian"
	case SymbolSetLandEquipment:
		return "land_equipment"
	case SymbolSetLandInstallation:
		return "land_installation"
	case SymbolSetSeaSurface:
		return "sea_surface"
	case SymbolSetSeaSubsurface:
		return "sea_subsurface"
	case SymbolSetActivities:
		return "activities"
	default:
		return "undefined"
	}
}

// Dimension is the rendering domain that selects the frame shape.
type Dimension int

const (
	DimensionUndefined Dimension = iota
	DimensionAir
	DimensionSpace
	DimensionLand
	DimensionLandDismounted
	DimensionSea
	DimensionSubsurface
)

func (d Dimension) String() string {
	switch d {
	case DimensionAir:
		return "air"
	case DimensionSpace:
		return "space"
	case DimensionLand:
		return "land"
	case DimensionLandDismounted:
		return "land_dismounted"
	case DimensionSea:
		return "sea"
	case DimensionSubsurface:
		return "subsurface"
	default:
		return "undefined"
	}
}

// Dimension returns the rendering domain of the symbol set.
func (s SymbolSet) Dimension() Dimension {
	switch s {
	case SymbolSetAir, SymbolSetAirMissile:
		return DimensionAir
	case SymbolSetSpace, SymbolSetSpaceMissile:
		return DimensionSpace
	case SymbolSetLandUnit, SymbolSetLandCivilian, SymbolSetLandInstallation, SymbolSetActivities:
		return DimensionLand
	case SymbolSetLandEquipment, SymbolSetSeaSurface:
		return DimensionSea
	case SymbolSetSeaSubsurface:
		return DimensionSubsurface
	default:
		return DimensionUndefined
	}
}

// Base folds the dimensions that share a frame table: undefined symbols
// are drawn as land and space symbols reuse the air frame.
func (d Dimension) Base() Dimension {
	switch d {
	case DimensionUndefined:
		return DimensionLand
	case DimensionSpace:
		return DimensionAir
	default:
		return d
	}
}

// ColorMode selects the fill shade of the frame.
type ColorMode int

const (
	ColorModeLight ColorMode = iota
	ColorModeMedium
	ColorModeDark
	ColorModeUnfilled
)

func (m ColorMode) String() string {
	switch m {
	case ColorModeMedium:
		return "medium"
	case ColorModeDark:
		return "dark"
	case ColorModeUnfilled:
		return "unfilled"
	default:
		return "light"
	}
}

// ParseColorMode parses the lower case name of a color mode.
func ParseColorMode(s string) (ColorMode, bool) {
	switch s {
	case "light":
		return ColorModeLight, true
	case "medium":
		return ColorModeMedium, true
	case "dark":
		return ColorModeDark, true
	case "unfilled":
		return ColorModeUnfilled, true
	}
	return ColorModeLight, false
}

// pkg/core/symbol.go
package core

import (
	"fmt"
	"log/slog"
)

const (
	// EntityOffset separates the symbol set from the raw entity code in a
	// packed entity.
	EntityOffset = 1_000_000
	// ModifierOffset separates the symbol set from the raw modifier code in
	// a packed modifier.
	ModifierOffset = 100
)

// PackEntity packs a raw six-digit entity code with its symbol set. A raw
// code of 0 means no entity and stays 0.
func PackEntity(set SymbolSet, raw int) int {
	if raw == 0 {
		return 0
	}
	return int(set)*EntityOffset + raw
}

// PackModifier packs a raw two-digit modifier code with its symbol set.
// A raw code of 0 means no modifier and stays 0.
func PackModifier(set SymbolSet, raw int) int {
	if raw == 0 {
		return 0
	}
	return int(set)*ModifierOffset + raw
}

// Symbol is a decoded symbol descriptor. It is a value: the With* builders
// return modified copies.
type Symbol struct {
	Version     int         `json:"version"`
	Context     Context     `json:"context"`
	Affiliation Affiliation `json:"affiliation"`
	SymbolSet   SymbolSet   `json:"symbolSet"`
	Status      Status      `json:"status"`
	Presence    Presence    `json:"presence"`

	Headquarters bool `json:"headquarters"`
	TaskForce    bool `json:"taskForce"`
	FeintDummy   bool `json:"feintDummy"`

	// Echelon and Mobility share one field of the code; at most one is set.
	Echelon  Echelon  `json:"echelon"`
	Mobility Mobility `json:"mobility"`

	// Entity, Modifier1 and Modifier2 are packed codes, see PackEntity and
	// PackModifier.
	Entity    int `json:"entity"`
	Modifier1 int `json:"modifier1"`
	Modifier2 int `json:"modifier2"`
}

// NewSymbol returns a present, real-world symbol of the given affiliation
// and symbol set.
func NewSymbol(aff Affiliation, set SymbolSet) Symbol {
	return Symbol{Version: MinVersion, Affiliation: aff, SymbolSet: set}
}

// Dimension returns the rendering domain of the symbol.
func (s Symbol) Dimension() Dimension {
	return s.SymbolSet.Dimension()
}

// FrameAffiliation returns the affiliation used to pick the frame shape.
func (s Symbol) FrameAffiliation() FrameAffiliation {
	return s.Affiliation.Frame(s.Context)
}

// IsInstallation reports whether the symbol is drawn with the
// installation notch.
func (s Symbol) IsInstallation() bool {
	return s.SymbolSet == SymbolSetLandInstallation
}

// Modifier returns the packed modifier in slot 1 or 2. Any other index is
// logged and yields 0.
func (s Symbol) Modifier(i int) int {
	switch i {
	case 1:
		return s.Modifier1
	case 2:
		return s.Modifier2
	}
	slog.Warn("invalid modifier index", "index", i)
	return 0
}

// RawEntity returns the six-digit entity code without its symbol set.
func (s Symbol) RawEntity() int {
	return s.Entity % EntityOffset
}

// RawModifier returns the two-digit code of modifier slot i without its
// symbol set.
func (s Symbol) RawModifier(i int) int {
	return s.Modifier(i) % ModifierOffset
}

func (s Symbol) WithAffiliation(a Affiliation) Symbol {
	s.Affiliation = a
	return s
}

func (s Symbol) WithContext(c Context) Symbol {
	s.Context = c
	return s
}

func (s Symbol) WithPresence(p Presence) Symbol {
	s.Presence = p
	return s
}

func (s Symbol) WithStatus(st Status) Symbol {
	s.Status = st
	return s
}

// WithEchelon sets the echelon and clears any mobility.
func (s Symbol) WithEchelon(e Echelon) Symbol {
	s.Echelon = e
	s.Mobility = MobilityUndefined
	return s
}

// WithMobility sets the mobility and clears any echelon.
func (s Symbol) WithMobility(m Mobility) Symbol {
	s.Mobility = m
	s.Echelon = EchelonUndefined
	return s
}

func (s Symbol) WithHeadquarters(v bool) Symbol {
	s.Headquarters = v
	return s
}

func (s Symbol) WithTaskForce(v bool) Symbol {
	s.TaskForce = v
	return s
}

func (s Symbol) WithFeintDummy(v bool) Symbol {
	s.FeintDummy = v
	return s
}

// WithEntity sets the raw entity code, packed with the symbol's set.
func (s Symbol) WithEntity(raw int) Symbol {
	s.Entity = PackEntity(s.SymbolSet, raw)
	return s
}

// WithModifiers sets both raw modifier codes, packed with the symbol's set.
func (s Symbol) WithModifiers(raw1, raw2 int) Symbol {
	s.Modifier1 = PackModifier(s.SymbolSet, raw1)
	s.Modifier2 = PackModifier(s.SymbolSet, raw2)
	return s
}

// String encodes the symbol back into its 20-digit code.
func (s Symbol) String() string {
	return fmt.Sprintf("%02d%d%d%02d%d%d%02d%06d%02d%02d",
		s.Version%100,
		contextDigit(s.Context),
		int(s.Affiliation),
		int(s.SymbolSet),
		statusDigit(s.Presence, s.Status),
		amplifierDigit(s.Headquarters, s.TaskForce, s.FeintDummy),
		echelonMobilityDigits(s.Echelon, s.Mobility),
		s.RawEntity(),
		s.Modifier1%ModifierOffset,
		s.Modifier2%ModifierOffset,
	)
}

func contextDigit(c Context) int {
	switch c {
	case ContextExercise:
		return 1
	case ContextSimulation:
		return 2
	}
	return 0
}

func statusDigit(p Presence, st Status) int {
	switch {
	case p == PresencePlanned:
		return 1
	case st == StatusFullyCapable:
		return 2
	case st == StatusDamaged:
		return 3
	case st == StatusDestroyed:
		return 4
	case st == StatusFullToCapacity:
		return 5
	}
	return 0
}

func amplifierDigit(hq, tf, fd bool) int {
	switch {
	case hq && tf && fd:
		return 7
	case hq && tf:
		return 6
	case tf && fd:
		return 5
	case tf:
		return 4
	case hq && fd:
		return 3
	case hq:
		return 2
	case fd:
		return 1
	}
	return 0
}

func echelonMobilityDigits(e Echelon, m Mobility) int {
	switch {
	case e >= EchelonTeam && e <= EchelonBrigade:
		return 10 + int(e-EchelonTeam) + 1
	case e >= EchelonDivision && e <= EchelonCommand:
		return 20 + int(e-EchelonDivision) + 1
	case m >= MobilityWheeledLimitedCrossCountry && m <= MobilityPackAnimals:
		return 30 + int(m-MobilityWheeledLimitedCrossCountry) + 1
	case m == MobilityOverSnow || m == MobilitySled:
		return 40 + int(m-MobilityOverSnow) + 1
	case m == MobilityBarge || m == MobilityAmphibious:
		return 50 + int(m-MobilityBarge) + 1
	case m == MobilityShortTowedArray || m == MobilityLongTowedArray:
		return 60 + int(m-MobilityShortTowedArray) + 1
	}
	return 0
}

const (
	// MinVersion and MaxVersion bound the standard versions a decoded code
	// is clamped to.
	MinVersion = 10
	MaxVersion = 13
)

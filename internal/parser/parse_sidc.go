package parser

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/OCAP2/milsymbol/internal/util"
	"github.com/OCAP2/milsymbol/pkg/core"
)

// SIDCLength is the number of digits a symbol identification code needs.
const SIDCLength = 20

// ErrMalformedCode is returned for codes that are too short to decode.
var ErrMalformedCode = errors.New("malformed symbol code")

var (
	echelonsLow  = []core.Echelon{core.EchelonTeam, core.EchelonSquad, core.EchelonSection, core.EchelonPlatoon, core.EchelonCompany, core.EchelonBattalion, core.EchelonRegiment, core.EchelonBrigade}
	echelonsHigh = []core.Echelon{core.EchelonDivision, core.EchelonCorps, core.EchelonArmy, core.EchelonArmyGroup, core.EchelonRegion, core.EchelonCommand}

	mobilityTables = map[int][]core.Mobility{
		3: {core.MobilityWheeledLimitedCrossCountry, core.MobilityWheeledCrossCountry, core.MobilityTracked, core.MobilityWheeledAndTracked, core.MobilityTowed, core.MobilityRail, core.MobilityPackAnimals},
		4: {core.MobilityOverSnow, core.MobilitySled},
		5: {core.MobilityBarge, core.MobilityAmphibious},
		6: {core.MobilityShortTowedArray, core.MobilityLongTowedArray},
	}
)

// ParseSIDC decodes a 20-digit symbol identification code. Surrounding
// quotes and digit group separators are ignored. A code shorter than SIDCLength yields
// the default symbol together with ErrMalformedCode; otherwise every field
// falls back to its default when its digits are not recognized.
func (p *Parser) ParseSIDC(code string) (core.Symbol, error) {
	var sym core.Symbol
	sym.Version = core.MinVersion

	// fix received data
	code = util.StripSeparators(util.TrimQuotes(strings.TrimSpace(code)))

	if n := utf8.RuneCountInString(code); n < SIDCLength {
		p.logger.Warn("Symbol code too short, using default symbol",
			"code", code,
			"length", n,
			"required", SIDCLength)
		return sym, fmt.Errorf("%w: %q has %d characters, need %d", ErrMalformedCode, code, n, SIDCLength)
	}
	code = asciiFields(code)

	// version
	sym.Version = clampVersion(parseDigits(code[0:2]))

	// context
	switch code[2] {
	case '1':
		sym.Context = core.ContextExercise
	case '2':
		sym.Context = core.ContextSimulation
	default:
		sym.Context = core.ContextReality
	}

	// affiliation, unknown digits keep pending
	if d := digit(code[3]); d >= int(core.AffiliationPending) && d <= int(core.AffiliationHostile) {
		sym.Affiliation = core.Affiliation(d)
	}

	// symbol set
	set := core.SymbolSet(parseDigits(code[4:6]))
	if !set.Valid() {
		p.logger.Debug("Unknown symbol set", "code", code, "symbolSet", code[4:6])
		set = core.SymbolSetUndefined
	}
	sym.SymbolSet = set

	// status
	sym.Presence, sym.Status = parseStatus(code[6])

	// headquarters / task force / feint-dummy
	sym.Headquarters, sym.TaskForce, sym.FeintDummy = parseAmplifiers(code[7])

	// echelon or mobility
	sym.Echelon, sym.Mobility = parseEchelonMobility(code[8], code[9])

	// entity and modifiers
	sym.Entity = core.PackEntity(set, parseDigits(code[10:16]))
	sym.Modifier1 = core.PackModifier(set, parseDigits(code[16:18]))
	sym.Modifier2 = core.PackModifier(set, parseDigits(code[18:20]))

	if len(code) > SIDCLength {
		p.logger.Debug("Ignoring trailing characters of symbol code", "code", code, "extra", code[SIDCLength:])
	}

	return sym, nil
}

func clampVersion(v int) int {
	switch {
	case v < core.MinVersion:
		return core.MinVersion
	case v > core.MaxVersion:
		return core.MaxVersion
	}
	return v
}

func parseStatus(c byte) (core.Presence, core.Status) {
	switch c {
	case '1':
		return core.PresencePlanned, core.StatusUndefined
	case '2':
		return core.PresencePresent, core.StatusFullyCapable
	case '3':
		return core.PresencePresent, core.StatusDamaged
	case '4':
		return core.PresencePresent, core.StatusDestroyed
	case '5':
		return core.PresencePresent, core.StatusFullToCapacity
	}
	return core.PresencePresent, core.StatusUndefined
}

func parseAmplifiers(c byte) (hq, tf, fd bool) {
	switch c {
	case '1':
		return false, false, true
	case '2':
		return true, false, false
	case '3':
		return true, false, true
	case '4':
		return false, true, false
	case '5':
		return false, true, true
	case '6':
		return true, true, false
	case '7':
		return true, true, true
	}
	return false, false, false
}

func parseEchelonMobility(table, index byte) (core.Echelon, core.Mobility) {
	t, i := digit(table), digit(index)-1
	if t < 0 || i < 0 {
		return core.EchelonUndefined, core.MobilityUndefined
	}

	switch t {
	case 1:
		if i < len(echelonsLow) {
			return echelonsLow[i], core.MobilityUndefined
		}
	case 2:
		if i < len(echelonsHigh) {
			return echelonsHigh[i], core.MobilityUndefined
		}
	default:
		if row, ok := mobilityTables[t]; ok && i < len(row) {
			return core.EchelonUndefined, row[i]
		}
	}
	return core.EchelonUndefined, core.MobilityUndefined
}

// asciiFields replaces every non-ASCII rune with '?' so that byte offsets
// match character positions. The replaced characters decode as non-digits.
func asciiFields(code string) string {
	for i := 0; i < len(code); i++ {
		if code[i] >= utf8.RuneSelf {
			return strings.Map(func(r rune) rune {
				if r >= utf8.RuneSelf {
					return '?'
				}
				return r
			}, code)
		}
	}
	return code
}

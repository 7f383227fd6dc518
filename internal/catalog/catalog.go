// Package catalog supplies the icon fragments drawn inside symbol frames,
// keyed by symbol set and code.
package catalog

import (
	"github.com/OCAP2/milsymbol/internal/draw"
	"github.com/OCAP2/milsymbol/pkg/core"
)

// Kind selects the icon slot an entry fills.
type Kind int

const (
	KindEntity Kind = iota
	KindModifier1
	KindModifier2
)

func (k Kind) String() string {
	switch k {
	case KindModifier1:
		return "modifier1"
	case KindModifier2:
		return "modifier2"
	default:
		return "entity"
	}
}

// ParseKind parses the kind names used in catalog files.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "entity":
		return KindEntity, true
	case "modifier1":
		return KindModifier1, true
	case "modifier2":
		return KindModifier2, true
	}
	return KindEntity, false
}

// Pack packs a raw code for the given slot.
func (k Kind) Pack(set core.SymbolSet, raw int) int {
	if k == KindEntity {
		return core.PackEntity(set, raw)
	}
	return core.PackModifier(set, raw)
}

// Layer is the set of nodes one catalog entry contributes.
type Layer struct {
	Nodes []draw.Node
	// Civilian forces the civilian color slot for the whole symbol.
	Civilian bool
}

// Empty reports whether the layer draws nothing.
func (l Layer) Empty() bool {
	return len(l.Nodes) == 0
}

// Catalog looks up icon layers. Implementations must be safe for
// concurrent use and return an empty layer for unknown codes.
type Catalog interface {
	Lookup(set core.SymbolSet, code int, kind Kind) Layer
}

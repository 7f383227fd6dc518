package catalog

import (
	"fmt"
	"slices"

	"github.com/OCAP2/milsymbol/pkg/core"
)

type key struct {
	set  core.SymbolSet
	kind Kind
	code int
}

type record struct {
	entry Entry
	layer Layer
}

// Index is an immutable in-memory catalog. It is safe for concurrent use.
type Index struct {
	records map[key]record
}

// NewIndex validates entries and builds their nodes. A later entry with
// the same key replaces an earlier one.
func NewIndex(entries []Entry) (*Index, error) {
	idx := &Index{records: make(map[key]record, len(entries))}
	for _, e := range entries {
		set, kind, code, err := e.Key()
		if err != nil {
			return nil, err
		}
		nodes, err := e.Nodes()
		if err != nil {
			return nil, err
		}
		idx.records[key{set, kind, code}] = record{
			entry: e,
			layer: Layer{Nodes: nodes, Civilian: e.Civilian},
		}
	}
	return idx, nil
}

// LoadYAML builds an index from a catalog file.
func LoadYAML(data []byte) (*Index, error) {
	f, err := ParseYAML(data)
	if err != nil {
		return nil, err
	}
	idx, err := NewIndex(f.Entries)
	if err != nil {
		return nil, fmt.Errorf("building catalog index: %w", err)
	}
	return idx, nil
}

// Lookup returns the layer of a packed code, or an empty layer.
func (idx *Index) Lookup(set core.SymbolSet, code int, kind Kind) Layer {
	if idx == nil || code == 0 {
		return Layer{}
	}
	r, ok := idx.records[key{set, kind, code}]
	if !ok {
		return Layer{}
	}
	return Layer{Nodes: slices.Clone(r.layer.Nodes), Civilian: r.layer.Civilian}
}

// Len returns the number of entries.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.records)
}

// Sets returns the symbol sets that have at least one entry, in code order.
func (idx *Index) Sets() []core.SymbolSet {
	var out []core.SymbolSet
	for _, set := range core.SymbolSets {
		for k := range idx.records {
			if k.set == set {
				out = append(out, set)
				break
			}
		}
	}
	return out
}

// Codes returns the raw codes of one symbol set and kind in ascending
// order.
func (idx *Index) Codes(set core.SymbolSet, kind Kind) []int {
	var out []int
	for k, r := range idx.records {
		if k.set == set && k.kind == kind {
			out = append(out, r.entry.Code)
		}
	}
	slices.Sort(out)
	return out
}

// Entry returns the source entry of a raw code.
func (idx *Index) Entry(set core.SymbolSet, kind Kind, raw int) (Entry, bool) {
	r, ok := idx.records[key{set, kind, kind.Pack(set, raw)}]
	return r.entry, ok
}

// Entries returns every entry ordered by symbol set, kind and code.
func (idx *Index) Entries() []Entry {
	out := make([]Entry, 0, len(idx.records))
	for _, r := range idx.records {
		out = append(out, r.entry)
	}
	slices.SortFunc(out, func(a, b Entry) int {
		if a.Set != b.Set {
			return a.Set - b.Set
		}
		if a.Kind != b.Kind {
			ka, _ := ParseKind(a.Kind)
			kb, _ := ParseKind(b.Kind)
			return int(ka) - int(kb)
		}
		return a.Code - b.Code
	})
	return out
}

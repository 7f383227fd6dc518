package catalog

import (
	_ "embed"
	"log/slog"
	"sync"
)

//go:embed builtin.yaml
var builtinYAML []byte

var loadBuiltin = sync.OnceValues(func() (*Index, error) {
	return LoadYAML(builtinYAML)
})

// Builtin returns the catalog compiled into the binary. It is parsed once
// on first use.
func Builtin() *Index {
	idx, err := loadBuiltin()
	if err != nil {
		slog.Error("Failed to load built-in catalog", "error", err)
		return &Index{records: map[key]record{}}
	}
	return idx
}

// BuiltinYAML returns the source of the built-in catalog.
func BuiltinYAML() []byte {
	return append([]byte(nil), builtinYAML...)
}

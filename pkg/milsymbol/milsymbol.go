// Package milsymbol renders military symbols from symbol identification
// codes or symbol descriptors.
//
// Rendering is pure apart from logging and counters. A Renderer is safe
// for concurrent use; the package level functions share one built on
// first use with the built-in catalog.
package milsymbol

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/OCAP2/milsymbol/internal/catalog"
	"github.com/OCAP2/milsymbol/internal/compose"
	"github.com/OCAP2/milsymbol/internal/parser"
	"github.com/OCAP2/milsymbol/internal/render"
	"github.com/OCAP2/milsymbol/pkg/core"
)

type config struct {
	logger  *slog.Logger
	catalog catalog.Catalog
	meter   metric.Meter
}

// Option configures a Renderer.
type Option func(*config)

// WithLogger sets the logger. The default is slog.Default.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithCatalog sets the icon catalog. The default is the built-in one.
func WithCatalog(cat catalog.Catalog) Option {
	return func(c *config) {
		c.catalog = cat
	}
}

// WithMeter sets the meter counters are created on. The default is the
// global OTel meter, which is a no-op until a meter provider is set.
func WithMeter(m metric.Meter) Option {
	return func(c *config) {
		c.meter = m
	}
}

// Renderer decodes and renders symbols.
type Renderer struct {
	parser   *parser.Parser
	composer *compose.Composer
	logger   *slog.Logger

	rendered  metric.Int64Counter
	malformed metric.Int64Counter
	misses    metric.Int64Counter
}

// New creates a Renderer.
func New(opts ...Option) (*Renderer, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	if cfg.meter == nil {
		cfg.meter = meter()
	}

	r := &Renderer{
		parser:   parser.NewParser(cfg.logger),
		composer: compose.NewComposer(cfg.catalog, cfg.logger),
		logger:   cfg.logger,
	}

	var err error
	m := cfg.meter

	r.rendered, err = m.Int64Counter(
		"milsymbol.symbols.rendered",
		metric.WithDescription("Total symbols rendered"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating rendered counter: %w", err)
	}

	r.malformed, err = m.Int64Counter(
		"milsymbol.codes.malformed",
		metric.WithDescription("Total symbol codes too short to decode"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating malformed counter: %w", err)
	}

	r.misses, err = m.Int64Counter(
		"milsymbol.catalog.misses",
		metric.WithDescription("Total icon codes missing from the catalog"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating catalog miss counter: %w", err)
	}

	return r, nil
}

// Parse decodes a symbol identification code. A malformed code yields
// the default symbol together with an error wrapping
// parser.ErrMalformedCode.
func (r *Renderer) Parse(code string) (core.Symbol, error) {
	sym, err := r.parser.ParseSIDC(code)
	if err != nil {
		r.malformed.Add(context.Background(), 1)
	}
	return sym, err
}

// Decode decodes a symbol identification code. It never fails: malformed
// codes are logged and decode to the default symbol.
func (r *Renderer) Decode(code string) core.Symbol {
	sym, _ := r.Parse(code)
	return sym
}

// Render renders sym under style.
func (r *Renderer) Render(sym core.Symbol, style core.Style) core.Output {
	scene := r.composer.Compose(sym, style)

	ctx := context.Background()
	r.rendered.Add(ctx, 1, metric.WithAttributes(
		attribute.String("symbol_set", sym.SymbolSet.String()),
		attribute.String("affiliation", sym.Affiliation.String()),
	))
	for _, kind := range scene.Misses {
		r.misses.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind.String())))
	}

	return render.Render(scene, style)
}

// RenderCode decodes code and renders the result.
func (r *Renderer) RenderCode(code string, style core.Style) core.Output {
	return r.Render(r.Decode(code), style)
}

var defaultRenderer = sync.OnceValue(func() *Renderer {
	r, err := New()
	if err != nil {
		slog.Error("Failed to create renderer, metrics disabled", "error", err)
		r, _ = New(WithMeter(noop.Meter{}))
	}
	return r
})

// Decode decodes code with the default renderer.
func Decode(code string) core.Symbol {
	return defaultRenderer().Decode(code)
}

// Render renders sym under style with the default renderer.
func Render(sym core.Symbol, style core.Style) core.Output {
	return defaultRenderer().Render(sym, style)
}

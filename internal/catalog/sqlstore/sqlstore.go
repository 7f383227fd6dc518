// Package sqlstore persists catalog entries in a SQL database through gorm
// and loads them back as an immutable catalog index.
package sqlstore

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/OCAP2/milsymbol/internal/catalog"
)

// Entry is the database row of one catalog entry. Items holds the draw
// items as JSON.
type Entry struct {
	ID        uint           `json:"id" gorm:"primarykey"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	SymbolSet int            `json:"symbolSet" gorm:"uniqueIndex:idx_catalog_key;not null"`
	Kind      string         `json:"kind" gorm:"uniqueIndex:idx_catalog_key;size:16;not null"`
	Code      int            `json:"code" gorm:"uniqueIndex:idx_catalog_key;not null"`
	Name      string         `json:"name" gorm:"size:128"`
	Civilian  bool           `json:"civilian"`
	Items     datatypes.JSON `json:"items"`
}

func (*Entry) TableName() string {
	return "catalog_entries"
}

// Store reads and writes catalog entries.
type Store struct {
	db     *gorm.DB
	logger *slog.Logger
}

// New creates a store on an open database.
func New(db *gorm.DB, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{db: db, logger: logger}
}

// Migrate creates or updates the catalog table.
func (s *Store) Migrate() error {
	if err := s.db.AutoMigrate(&Entry{}); err != nil {
		return fmt.Errorf("failed to migrate catalog schema: %w", err)
	}
	return nil
}

func toRow(e catalog.Entry) (Entry, error) {
	items, err := json.Marshal(e.Items)
	if err != nil {
		return Entry{}, fmt.Errorf("encoding items of %q: %w", e.Name, err)
	}
	return Entry{
		SymbolSet: e.Set,
		Kind:      e.Kind,
		Code:      e.Code,
		Name:      e.Name,
		Civilian:  e.Civilian,
		Items:     datatypes.JSON(items),
	}, nil
}

func fromRow(r Entry) (catalog.Entry, error) {
	e := catalog.Entry{
		Set:      r.SymbolSet,
		Kind:     r.Kind,
		Code:     r.Code,
		Name:     r.Name,
		Civilian: r.Civilian,
	}
	if len(r.Items) > 0 {
		if err := json.Unmarshal(r.Items, &e.Items); err != nil {
			return catalog.Entry{}, fmt.Errorf("decoding items of %q: %w", r.Name, err)
		}
	}
	return e, nil
}

// Import validates entries and upserts them by symbol set, kind and code.
// Nothing is written when any entry is invalid.
func (s *Store) Import(ctx context.Context, entries []catalog.Entry) (int, error) {
	if _, err := catalog.NewIndex(entries); err != nil {
		return 0, fmt.Errorf("invalid catalog: %w", err)
	}

	rows := make([]Entry, 0, len(entries))
	for _, e := range entries {
		r, err := toRow(e)
		if err != nil {
			return 0, err
		}
		rows = append(rows, r)
	}
	if len(rows) == 0 {
		return 0, nil
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "symbol_set"}, {Name: "kind"}, {Name: "code"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "civilian", "items", "updated_at"}),
	}).Create(&rows).Error
	if err != nil {
		return 0, fmt.Errorf("failed to import catalog entries: %w", err)
	}

	s.logger.Info("Imported catalog entries", "count", len(rows))
	return len(rows), nil
}

// Entries returns every stored entry ordered by symbol set, kind and code.
func (s *Store) Entries(ctx context.Context) ([]catalog.Entry, error) {
	var rows []Entry
	err := s.db.WithContext(ctx).
		Order("symbol_set").Order("kind").Order("code").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog entries: %w", err)
	}

	out := make([]catalog.Entry, 0, len(rows))
	for _, r := range rows {
		e, err := fromRow(r)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// Load reads all entries into an index. The index is a snapshot; later
// writes to the store do not affect it.
func (s *Store) Load(ctx context.Context) (*catalog.Index, error) {
	entries, err := s.Entries(ctx)
	if err != nil {
		return nil, err
	}
	idx, err := catalog.NewIndex(entries)
	if err != nil {
		return nil, fmt.Errorf("building catalog index: %w", err)
	}
	s.logger.Debug("Loaded catalog from database", "entries", idx.Len())
	return idx, nil
}

// Delete removes one entry. Deleting a missing entry is not an error.
func (s *Store) Delete(ctx context.Context, set int, kind catalog.Kind, code int) error {
	err := s.db.WithContext(ctx).
		Where("symbol_set = ? AND kind = ? AND code = ?", set, kind.String(), code).
		Delete(&Entry{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete catalog entry: %w", err)
	}
	return nil
}

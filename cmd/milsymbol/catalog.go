package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/OCAP2/milsymbol/internal/catalog"
	"github.com/OCAP2/milsymbol/internal/catalog/sqlstore"
	"github.com/OCAP2/milsymbol/internal/config"
	"github.com/OCAP2/milsymbol/internal/database"
	"github.com/OCAP2/milsymbol/pkg/core"
)

func nopClose() {}

// openCatalog builds the catalog index named by cfg. The returned func
// releases any database connection.
func openCatalog(ctx context.Context, cfg config.CatalogConfig, logger *slog.Logger) (*catalog.Index, func(), error) {
	switch cfg.Type {
	case "yaml":
		data, err := os.ReadFile(cfg.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("reading catalog file: %w", err)
		}
		idx, err := catalog.LoadYAML(data)
		if err != nil {
			return nil, nil, fmt.Errorf("loading catalog %s: %w", cfg.Path, err)
		}
		logger.Info("YAML catalog loaded", "path", cfg.Path, "entries", idx.Len())
		return idx, nopClose, nil

	case "sqlite", "postgres":
		store, closeDB, err := openStore(cfg, logger)
		if err != nil {
			return nil, nil, err
		}
		idx, err := store.Load(ctx)
		if err != nil {
			closeDB()
			return nil, nil, err
		}
		logger.Info("Database catalog loaded", "type", cfg.Type, "entries", idx.Len())
		return idx, closeDB, nil

	default:
		return catalog.Builtin(), nopClose, nil
	}
}

// openStore connects to the catalog database and migrates its schema.
func openStore(cfg config.CatalogConfig, logger *slog.Logger) (*sqlstore.Store, func(), error) {
	var (
		db  *gorm.DB
		err error
	)
	switch cfg.Type {
	case "sqlite":
		db, err = database.GetSqliteDB(cfg.Path)
	case "postgres":
		db, err = database.GetPostgresDB(config.GetDBConfig())
	default:
		return nil, nil, fmt.Errorf("catalog type %q has no database", cfg.Type)
	}
	if err != nil {
		return nil, nil, err
	}

	closeDB := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}

	store := sqlstore.New(db, logger)
	if err := store.Migrate(); err != nil {
		closeDB()
		return nil, nil, err
	}
	return store, closeDB, nil
}

func (a *app) catalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect and manage the icon catalog",
	}
	cmd.AddCommand(a.catalogListCmd())
	cmd.AddCommand(a.catalogExportCmd())
	cmd.AddCommand(a.catalogImportCmd())
	return cmd
}

func (a *app) catalogListCmd() *cobra.Command {
	var set int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the entries of the configured catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			idx, closeCat, err := a.configuredCatalog(cmd.Context())
			if err != nil {
				return err
			}
			defer closeCat()

			return writeEntries(cmd.OutOrStdout(), idx.Entries(), set)
		},
	}

	cmd.Flags().IntVar(&set, "set", 0, "only list this symbol set")
	return cmd
}

func writeEntries(w io.Writer, entries []catalog.Entry, set int) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SET\tKIND\tCODE\tNAME")
	for _, e := range entries {
		if set != 0 && e.Set != set {
			continue
		}
		name := e.Name
		if e.Civilian {
			name += " (civilian)"
		}
		fmt.Fprintf(tw, "%02d %s\t%s\t%s\t%s\n",
			e.Set, core.SymbolSet(e.Set), e.Kind, formatCode(e), name)
	}
	return tw.Flush()
}

func formatCode(e catalog.Entry) string {
	if e.Kind == catalog.KindEntity.String() {
		return fmt.Sprintf("%06d", e.Code)
	}
	return fmt.Sprintf("%02d", e.Code)
}

func (a *app) catalogExportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the configured catalog as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			idx, closeCat, err := a.configuredCatalog(cmd.Context())
			if err != nil {
				return err
			}
			defer closeCat()

			data, err := catalog.MarshalYAML(idx.Entries())
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), output, data)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout")
	return cmd
}

func (a *app) catalogImportCmd() *cobra.Command {
	var builtin bool

	cmd := &cobra.Command{
		Use:   "import [file.yaml]",
		Short: "Import catalog entries into the configured database",
		Args: func(cmd *cobra.Command, args []string) error {
			if builtin {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			data := catalog.BuiltinYAML()
			if !builtin {
				var err error
				if data, err = os.ReadFile(args[0]); err != nil {
					return fmt.Errorf("reading catalog file: %w", err)
				}
			}
			f, err := catalog.ParseYAML(data)
			if err != nil {
				return err
			}

			cfg, err := config.GetCatalogConfig()
			if err != nil {
				return err
			}
			store, closeDB, err := openStore(cfg, a.logger)
			if err != nil {
				return err
			}
			defer closeDB()

			n, err := store.Import(cmd.Context(), f.Entries)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d entries\n", n)
			return nil
		},
	}

	cmd.Flags().BoolVar(&builtin, "builtin", false, "import the built-in catalog")
	return cmd
}

func (a *app) configuredCatalog(ctx context.Context) (*catalog.Index, func(), error) {
	cfg, err := config.GetCatalogConfig()
	if err != nil {
		return nil, nil, err
	}
	return openCatalog(ctx, cfg, a.logger)
}

// writeOutput writes data to path, or to w when path is empty.
func writeOutput(w io.Writer, path string, data []byte) error {
	if path == "" {
		_, err := w.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/OCAP2/milsymbol/internal/worker"
)

// readCodes reads one code per line. Blank lines and lines starting with
// '#' are skipped.
func readCodes(r io.Reader) ([]string, error) {
	var codes []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		codes = append(codes, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading codes: %w", err)
	}
	return codes, nil
}

func (a *app) batchCmd() *cobra.Command {
	var (
		dir     string
		workers int
		sf      styleFlags
	)

	cmd := &cobra.Command{
		Use:   "batch [codes-file]",
		Short: "Render every code in a file (or stdin) to <dir>/<sidc>.svg",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			style, err := sf.style(cmd)
			if err != nil {
				return err
			}

			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("opening codes file: %w", err)
				}
				defer f.Close()
				in = f
			}
			codes, err := readCodes(in)
			if err != nil {
				return err
			}

			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("creating output dir: %w", err)
			}

			r, closeCat, err := a.renderer(cmd.Context())
			if err != nil {
				return err
			}
			defer closeCat()

			m := worker.NewManager(worker.Dependencies{
				Renderer: r,
				Logger:   a.logger,
				Workers:  workers,
			})
			results := m.Run(cmd.Context(), codes, style)

			out := cmd.OutOrStdout()
			written := make(map[string]string, len(results))
			for _, res := range results {
				if res.Err != nil {
					a.logger.Warn("Skipping code", "code", res.Code, "codeIndex", res.Index, "error", res.Err)
					fmt.Fprintf(out, "failed %s: %v\n", res.Code, res.Err)
					continue
				}
				// codes that normalize to the same symbol render the same SVG
				name := res.Symbol.String()
				if first, ok := written[name]; ok {
					a.logger.Warn("Code duplicates an earlier symbol", "code", res.Code, "codeIndex", res.Index, "first", first, "file", name+".svg")
					fmt.Fprintf(out, "duplicate %s: same symbol as %s\n", res.Code, first)
					continue
				}
				written[name] = res.Code

				path := filepath.Join(dir, name+".svg")
				if err := writeOutput(nil, path, []byte(res.Output.SVG+"\n")); err != nil {
					return err
				}
			}

			failed := len(worker.Failed(results))
			fmt.Fprintf(out, "rendered %d of %d codes\n", len(results)-failed, len(results))
			if failed > 0 {
				return fmt.Errorf("%d of %d codes failed", failed, len(results))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "output directory")
	cmd.Flags().IntVar(&workers, "workers", 0, "render goroutines (0 means one per CPU)")
	sf.register(cmd)
	return cmd
}

package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OCAP2/milsymbol/internal/config"
	"github.com/OCAP2/milsymbol/pkg/core"
)

// styleFlags override the configured style for one invocation.
type styleFlags struct {
	size      float64
	colorMode string
	padding   float64
	noFrame   bool
	noIcon    bool
	noAmps    bool
}

func (f *styleFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.size, "size", core.NominalIconSize, "icon size")
	cmd.Flags().StringVar(&f.colorMode, "color-mode", "", "light, medium, dark or unfilled")
	cmd.Flags().Float64Var(&f.padding, "padding", 0, "extra space around the symbol")
	cmd.Flags().BoolVar(&f.noFrame, "no-frame", false, "hide the frame")
	cmd.Flags().BoolVar(&f.noIcon, "no-icon", false, "hide the entity icon")
	cmd.Flags().BoolVar(&f.noAmps, "no-amplifiers", false, "hide the amplifiers")
}

func (f *styleFlags) style(cmd *cobra.Command) (core.Style, error) {
	style, err := config.GetStyle()
	if err != nil {
		return style, err
	}

	flags := cmd.Flags()
	if flags.Changed("size") {
		style.IconSize = f.size
	}
	if flags.Changed("color-mode") {
		m, ok := core.ParseColorMode(f.colorMode)
		if !ok {
			return style, fmt.Errorf("unknown color mode %q", f.colorMode)
		}
		style.ColorMode = m
	}
	if flags.Changed("padding") {
		style.Padding = f.padding
	}
	if f.noFrame {
		style.ShowFrame = false
	}
	if f.noIcon {
		style.ShowEntityIcon = false
	}
	if f.noAmps {
		style.ShowAmplifiers = false
	}
	return style.Normalized(), nil
}

func (a *app) renderCmd() *cobra.Command {
	var (
		output string
		meta   bool
		sf     styleFlags
	)

	cmd := &cobra.Command{
		Use:   "render [sidc]",
		Short: "Render a symbol identification code as SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			style, err := sf.style(cmd)
			if err != nil {
				return err
			}

			r, closeCat, err := a.renderer(cmd.Context())
			if err != nil {
				return err
			}
			defer closeCat()

			sym, err := r.Parse(args[0])
			if err != nil {
				return err
			}
			out := r.Render(sym, style)

			data := []byte(out.SVG + "\n")
			if meta {
				if data, err = json.MarshalIndent(out, "", "  "); err != nil {
					return fmt.Errorf("encoding output: %w", err)
				}
				data = append(data, '\n')
			}
			return writeOutput(cmd.OutOrStdout(), output, data)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout")
	cmd.Flags().BoolVar(&meta, "meta", false, "print the SVG with its boxes and anchor as JSON")
	sf.register(cmd)
	return cmd
}

// decoded is the printable form of a symbol.
type decoded struct {
	Code             string `json:"code"`
	Version          int    `json:"version"`
	Context          string `json:"context"`
	Affiliation      string `json:"affiliation"`
	FrameAffiliation string `json:"frameAffiliation"`
	SymbolSet        string `json:"symbolSet"`
	Dimension        string `json:"dimension"`
	Presence         string `json:"presence"`
	Status           string `json:"status"`
	Headquarters     bool   `json:"headquarters"`
	TaskForce        bool   `json:"taskForce"`
	FeintDummy       bool   `json:"feintDummy"`
	Echelon          string `json:"echelon,omitempty"`
	Mobility         string `json:"mobility,omitempty"`
	Entity           int    `json:"entity"`
	Modifier1        int    `json:"modifier1"`
	Modifier2        int    `json:"modifier2"`
}

func describe(sym core.Symbol) decoded {
	d := decoded{
		Code:             sym.String(),
		Version:          sym.Version,
		Context:          sym.Context.String(),
		Affiliation:      sym.Affiliation.String(),
		FrameAffiliation: sym.FrameAffiliation().String(),
		SymbolSet:        sym.SymbolSet.String(),
		Dimension:        sym.Dimension().String(),
		Presence:         sym.Presence.String(),
		Status:           sym.Status.String(),
		Headquarters:     sym.Headquarters,
		TaskForce:        sym.TaskForce,
		FeintDummy:       sym.FeintDummy,
		Entity:           sym.RawEntity(),
		Modifier1:        sym.RawModifier(1),
		Modifier2:        sym.RawModifier(2),
	}
	if sym.Echelon != core.EchelonUndefined {
		d.Echelon = sym.Echelon.String()
	}
	if sym.Mobility != core.MobilityUndefined {
		d.Mobility = sym.Mobility.String()
	}
	return d
}

func (a *app) decodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode [sidc]",
		Short: "Print the fields of a symbol identification code as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.decoder()
			if err != nil {
				return err
			}

			sym, err := r.Parse(args[0])
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(describe(sym))
		},
	}
}

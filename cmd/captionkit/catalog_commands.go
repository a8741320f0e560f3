package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"captionkit/internal/captions"
)

type zoneRow struct {
	Name          string `json:"name"`
	Alignment     int    `json:"alignment"`
	MarginV       int    `json:"margin_v"`
	CanvasMarginV int    `json:"canvas_margin_v"`
}

func newZonesCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool
	cmd := &cobra.Command{
		Use:   "zones",
		Short: "List caption position zones",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			canvas := captions.Canvas{Width: cfg.Canvas.Width, Height: cfg.Canvas.Height}

			zones := captions.Zones()
			entries := make([]zoneRow, 0, len(zones))
			for _, zone := range zones {
				geometry, err := captions.ResolveGeometry(zone.Name, canvas, captions.Layout{})
				if err != nil {
					return err
				}
				entries = append(entries, zoneRow{
					Name:          zone.Name,
					Alignment:     zone.Alignment,
					MarginV:       zone.MarginV,
					CanvasMarginV: geometry.MarginV,
				})
			}
			if jsonOut {
				return writeJSON(cmd, entries)
			}

			rows := make([][]string, 0, len(entries))
			for _, entry := range entries {
				rows = append(rows, []string{
					entry.Name,
					strconv.Itoa(entry.Alignment),
					strconv.Itoa(entry.MarginV),
					strconv.Itoa(entry.CanvasMarginV),
				})
			}
			headers := []string{
				"Zone",
				"Alignment",
				fmt.Sprintf("Margin V @%dx%d", captions.ReferenceWidth, captions.ReferenceHeight),
				fmt.Sprintf("Margin V @%dx%d", canvas.Width, canvas.Height),
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable("", headers, rows, []columnAlignment{alignLeft, alignRight, alignRight, alignRight}))
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print zones as JSON")
	return cmd
}

func newPresetsCommand() *cobra.Command {
	var jsonOut bool
	cmd := &cobra.Command{
		Use:         "presets",
		Short:       "List caption style presets",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := captions.Presets()
			if jsonOut {
				return writeJSON(cmd, presets)
			}
			rows := make([][]string, 0, len(presets))
			for _, preset := range presets {
				rows = append(rows, []string{
					preset.Name,
					preset.FontName,
					strconv.Itoa(preset.FontSize),
					yesNo(preset.Bold),
					yesNo(preset.Uppercase),
					preset.ActiveColor,
					preset.InactiveColor,
					strconv.Itoa(preset.BounceScale) + "%",
				})
			}
			headers := []string{"Preset", "Font", "Size", "Bold", "Uppercase", "Active", "Inactive", "Bounce"}
			aligns := []columnAlignment{alignLeft, alignLeft, alignRight, alignLeft, alignLeft, alignLeft, alignLeft, alignRight}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable("", headers, rows, aligns))
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print presets as JSON")
	return cmd
}

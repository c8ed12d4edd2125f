package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/artgrid/vivid"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List styles, palettes, and resolution presets",
	Run: func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, "Styles:")
		for _, s := range vivid.Styles() {
			layers := []string{vivid.LayerBackdrop.String()}
			for _, l := range s.Sequence() {
				layers = append(layers, l.String())
			}
			fmt.Fprintf(out, "  %-20s %s\n", s.Name(), strings.Join(layers, " → "))
		}

		fmt.Fprintln(out, "\nPalettes:")
		for _, p := range vivid.Palettes() {
			fmt.Fprintf(out, "  %-20s %s %s %s\n", p.Name, p.Colors[0], p.Colors[1], p.Colors[2])
		}

		fmt.Fprintln(out, "\nResolutions:")
		for _, r := range vivid.Resolutions() {
			fmt.Fprintf(out, "  %s\n", r.Name)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

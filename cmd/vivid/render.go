package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/artgrid/vivid"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a single artwork to a file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		prompt, _ := cmd.Flags().GetString("prompt")
		style, _ := cmd.Flags().GetString("style")
		palette, _ := cmd.Flags().GetString("palette")
		resolution, _ := cmd.Flags().GetString("resolution")
		seed, _ := cmd.Flags().GetString("seed")
		out, _ := cmd.Flags().GetString("out")
		format, _ := cmd.Flags().GetString("format")
		strict, _ := cmd.Flags().GetBool("strict")

		var opts []vivid.GeneratorOption
		if strict {
			opts = append(opts, vivid.WithStrictStyle())
		}
		gen := vivid.NewGenerator(opts...)

		req := vivid.Request{
			Prompt:     prompt,
			Style:      style,
			Palette:    palette,
			Resolution: resolution,
		}

		var (
			art *vivid.Artwork
			err error
		)
		if cmd.Flags().Changed("seed") {
			art, err = gen.GenerateWithSeed(req, seed)
		} else {
			art, err = gen.Generate(req)
		}
		if err != nil {
			return err
		}

		var data []byte
		switch format {
		case "png":
			data, err = art.EncodePNG()
		case "bmp":
			data, err = art.EncodeBMP()
		default:
			return fmt.Errorf("unknown format %q (want png or bmp)", format)
		}
		if err != nil {
			return err
		}

		if out == "" {
			out = art.FileName()
			if format == "bmp" {
				out = strings.TrimSuffix(out, ".png") + ".bmp"
			}
		}
		if err := os.WriteFile(out, data, 0o644); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().String("prompt", "", "prompt text (contributes only to seed entropy)")
	renderCmd.Flags().String("style", "Polygon Nebula", "style name")
	renderCmd.Flags().String("palette", "Aurora", "palette name")
	renderCmd.Flags().String("resolution", "1024x1024", "resolution preset (WxH)")
	renderCmd.Flags().String("seed", "", "explicit seed component for reproducible output")
	renderCmd.Flags().String("out", "", "output file (default: derived from style and artwork id)")
	renderCmd.Flags().String("format", "png", "output format (png or bmp)")
	renderCmd.Flags().Bool("strict", false, "reject unknown style names instead of falling back")
}

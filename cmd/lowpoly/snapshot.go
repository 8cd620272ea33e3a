package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSnapshotCmd(cfg *sceneConfig) *cobra.Command {
	var (
		output  string
		frames  int
		upscale int
	)

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render one frame to a PNG file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := newScene(*cfg, cfg.width, cfg.height)
			if err != nil {
				return err
			}

			// Advance the spin so snapshots can show a later pose.
			for range frames {
				sc.step()
			}
			stats := sc.render()

			if err := sc.fb.SavePNG(output, sc.palette, upscale); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s, %d faces drawn, %d pixels\n",
				output, sc.kind, stats.FacesDrawn, stats.PixelsWritten)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "lowpoly.png", "output PNG path")
	cmd.Flags().IntVar(&frames, "frames", 0, "animation frames to advance before capturing")
	cmd.Flags().IntVar(&upscale, "upscale", 4, "integer pixel enlargement of the PNG")
	return cmd
}

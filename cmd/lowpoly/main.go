// lowpoly - software 3D renderer demo
// Spins a procedural or glTF mesh through one of five software renderers and
// shows it in the terminal, in a desktop window, or as a PNG snapshot.
//
// Controls (view and window):
//
//	Arrows/WASD - Spin the mesh (pitch/yaw), decaying like a spring
//	1-5         - Switch renderer (wireframe, hiddenline, gouraud, zgouraud, phong)
//	R           - Reset rotation
//	Q/Esc       - Quit
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/taigrr/lowpoly/pkg/render"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := fang.Execute(ctx, newRootCmd()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := defaultSceneConfig()

	root := &cobra.Command{
		Use:   "lowpoly",
		Short: "Software 3D rendering in the terminal",
		Long: `lowpoly renders a mesh entirely on the CPU: camera transform, frustum
clipping, then one of five renderers writing palette-indexed pixels.

Run without a subcommand to view in the terminal.

Controls:
  Arrows/WASD  spin the mesh
  1-5          switch renderer
  r            reset rotation
  q, Esc       quit`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if cfg.verbose {
				render.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd.Context(), cfg)
		},
	}

	cfg.addFlags(root.PersistentFlags())
	root.AddCommand(
		newViewCmd(&cfg),
		newWindowCmd(&cfg),
		newSnapshotCmd(&cfg),
	)
	return root
}

package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newViewCmd(cfg *sceneConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Animate the mesh in the terminal",
		Long:  "Animate the mesh in the terminal with half-block cells: every cell shows two pixels.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd.Context(), *cfg)
		},
	}
}

func runView(ctx context.Context, cfg sceneConfig) error {
	term := uv.DefaultTerminal()

	cols, rows, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	// Half-block cells: a terminal row holds two framebuffer rows.
	sc, err := newScene(cfg, cols, rows*2)
	if err != nil {
		return err
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}
	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(cols, rows)

	defer func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}()

	ctl := new(controls)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return pumpEvents(ctx, term, ctl) })
	g.Go(func() error { return frameLoop(ctx, term, sc, ctl, cols, rows) })

	if err := g.Wait(); err != nil && !errors.Is(err, errQuit) {
		return err
	}
	return nil
}

// errQuit ends the view when the user quits or the terminal closes its
// event stream.
var errQuit = errors.New("quit")

// pumpEvents feeds terminal events into ctl until ctx ends or the user quits.
func pumpEvents(ctx context.Context, term *uv.Terminal, ctl *controls) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-term.Events():
			if !ok {
				return errQuit
			}
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				ctl.resize(ev.Width, ev.Height)
			case uv.KeyPressEvent:
				for _, name := range keyNames {
					if ev.MatchString(name) {
						if ctl.press(name) {
							return errQuit
						}
						break
					}
				}
			}
		}
	}
}

// frameLoop renders and displays one frame per tick.
func frameLoop(ctx context.Context, term *uv.Terminal, sc *scene, ctl *controls, cols, rows int) error {
	ticker := time.NewTicker(time.Second / time.Duration(max(sc.cfg.fps, 1)))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		if w, h, ok := ctl.takeResize(); ok {
			cols, rows = w, h
			term.Erase()
			term.Resize(cols, rows)
			sc.resize(cols, rows*2)
		}

		if err := sc.apply(ctl.take()); err != nil {
			return err
		}
		sc.step()
		sc.render()

		sc.fb.Draw(term, uv.Rect(0, 0, cols, rows), sc.palette)
		if err := term.Display(); err != nil {
			return fmt.Errorf("display: %w", err)
		}
	}
}

package main

import (
	"context"
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/spf13/cobra"
)

// windowZoom is the initial window size as a multiple of the framebuffer.
const windowZoom = 4

func newWindowCmd(cfg *sceneConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "window",
		Short: "Animate the mesh in a desktop window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWindow(cmd.Context(), *cfg)
		},
	}
}

func runWindow(ctx context.Context, cfg sceneConfig) error {
	sc, err := newScene(cfg, cfg.width, cfg.height)
	if err != nil {
		return err
	}

	g := &windowGame{ctx: ctx, sc: sc}
	ebiten.SetWindowTitle("lowpoly")
	ebiten.SetWindowSize(cfg.width*windowZoom, cfg.height*windowZoom)
	ebiten.SetTPS(max(cfg.fps, 1))

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// windowKeys maps window keys to the names controls understands. Held keys
// repeat every frame; the rest fire once per press.
var windowKeys = []struct {
	key  ebiten.Key
	name string
	held bool
}{
	{ebiten.KeyArrowUp, "up", true},
	{ebiten.KeyArrowDown, "down", true},
	{ebiten.KeyArrowLeft, "left", true},
	{ebiten.KeyArrowRight, "right", true},
	{ebiten.KeyW, "w", true},
	{ebiten.KeyS, "s", true},
	{ebiten.KeyA, "a", true},
	{ebiten.KeyD, "d", true},
	{ebiten.KeyR, "r", false},
	{ebiten.KeyDigit1, "1", false},
	{ebiten.KeyDigit2, "2", false},
	{ebiten.KeyDigit3, "3", false},
	{ebiten.KeyDigit4, "4", false},
	{ebiten.KeyDigit5, "5", false},
	{ebiten.KeyQ, "q", false},
	{ebiten.KeyEscape, "escape", false},
}

type windowGame struct {
	ctx context.Context
	sc  *scene
	ctl controls

	img *ebiten.Image
	pix []byte
}

func (g *windowGame) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}

	for _, k := range windowKeys {
		pressed := inpututil.IsKeyJustPressed(k.key)
		if k.held {
			pressed = ebiten.IsKeyPressed(k.key)
		}
		if pressed && g.ctl.press(k.name) {
			return ebiten.Termination
		}
	}

	if err := g.sc.apply(g.ctl.take()); err != nil {
		return err
	}
	g.sc.step()
	g.sc.render()
	return nil
}

func (g *windowGame) Draw(screen *ebiten.Image) {
	fb := g.sc.fb
	if g.img == nil || g.img.Bounds().Dx() != fb.Width || g.img.Bounds().Dy() != fb.Height {
		if g.img != nil {
			g.img.Deallocate()
		}
		g.img = ebiten.NewImage(fb.Width, fb.Height)
	}

	g.pix = fb.RGBA(g.sc.palette, g.pix)
	g.img.WritePixels(g.pix)
	screen.DrawImage(g.img, nil)
}

func (g *windowGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.sc.fb.Width, g.sc.fb.Height
}

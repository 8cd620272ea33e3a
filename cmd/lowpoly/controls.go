package main

import (
	"sync"

	"github.com/taigrr/lowpoly/pkg/render"
)

// impulseStep is the spin velocity one key press adds, in degrees per frame.
const impulseStep = 1.5

// keyNames lists the key names the presenters translate input into.
var keyNames = []string{
	"up", "down", "left", "right",
	"w", "a", "s", "d",
	"r", "1", "2", "3", "4", "5",
	"q", "escape", "ctrl+c",
}

// controls collects input from the presenter's event goroutine until the
// frame loop takes it.
type controls struct {
	mu sync.Mutex

	pitch, yaw float64
	reset      bool
	kind       render.Kind
	kindSet    bool

	width, height int
	resized       bool
}

// frameInput is what the frame loop consumes once per frame.
type frameInput struct {
	pitch, yaw float64
	reset      bool
	kind       render.Kind
	kindSet    bool
}

// press records a key by name and reports whether it asks to quit.
func (c *controls) press(name string) (quit bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch name {
	case "up", "w":
		c.pitch -= impulseStep
	case "down", "s":
		c.pitch += impulseStep
	case "left", "a":
		c.yaw -= impulseStep
	case "right", "d":
		c.yaw += impulseStep
	case "r":
		c.reset = true
	case "1", "2", "3", "4", "5":
		c.kind = render.Kinds()[name[0]-'1']
		c.kindSet = true
	case "q", "escape", "ctrl+c":
		return true
	}
	return false
}

// resize records a new presenter size.
func (c *controls) resize(width, height int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.width, c.height, c.resized = width, height, true
}

// takeResize returns the latest size once per change.
func (c *controls) takeResize() (width, height int, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	ok, c.resized = c.resized, false
	return c.width, c.height, ok
}

// take returns and clears the pending input.
func (c *controls) take() frameInput {
	c.mu.Lock()
	defer c.mu.Unlock()

	in := frameInput{
		pitch:   c.pitch,
		yaw:     c.yaw,
		reset:   c.reset,
		kind:    c.kind,
		kindSet: c.kindSet,
	}
	c.pitch, c.yaw, c.reset, c.kindSet = 0, 0, false, false
	return in
}

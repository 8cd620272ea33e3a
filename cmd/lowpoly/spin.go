package main

import "github.com/charmbracelet/harmonica"

// spinAxis tracks an angle and its velocity. A critically damped spring
// pulls the velocity back to zero, so impulses coast to a stop.
type spinAxis struct {
	Angle    float64 // degrees
	Velocity float64 // degrees per frame

	spring harmonica.Spring
	accel  float64 // spring-internal velocity of Velocity
}

func newSpinAxis(fps int) spinAxis {
	return spinAxis{spring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0)}
}

func (a *spinAxis) update() {
	a.Angle += a.Velocity
	a.Velocity, a.accel = a.spring.Update(a.Velocity, a.accel, 0)
}

// spinState is the mesh orientation driven by user impulses plus a constant
// yaw rate.
type spinState struct {
	Pitch, Yaw spinAxis
	rate       float64
	fps        int
}

func newSpinState(fps int, rate float64) *spinState {
	s := &spinState{rate: rate, fps: max(fps, 1)}
	s.reset()
	return s
}

func (s *spinState) reset() {
	s.Pitch = newSpinAxis(s.fps)
	s.Yaw = newSpinAxis(s.fps)
}

func (s *spinState) impulse(pitch, yaw float64) {
	s.Pitch.Velocity += pitch
	s.Yaw.Velocity += yaw
}

func (s *spinState) update() {
	s.Pitch.update()
	s.Yaw.update()
	s.Yaw.Angle += s.rate
}

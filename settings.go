package ezgame

import "image"

// Size is a display resolution in pixels.
type Size = image.Point

// Settings describes the effective display configuration of an
// Application: the window caption, the window resolution and the
// target main loop rate in iterations per second.
type Settings struct {
	Title      string
	Resolution Size
	UpdateRate int
}

// Overrides is a partial settings change. Nil fields are left
// untouched. It doubles as the declared settings of a scene: a scene
// sets only the fields it cares about and inherits the rest from
// whatever was in effect when it was entered.
type Overrides struct {
	Title      *string
	Resolution *Size
	UpdateRate *int
}

// String returns a pointer to s, for use in Overrides literals.
func String(s string) *string {
	return &s
}

// Int returns a pointer to i, for use in Overrides literals.
func Int(i int) *int {
	return &i
}

// Res returns a pointer to a w by h Size, for use in Overrides literals.
func Res(w, h int) *Size {
	return &Size{X: w, Y: h}
}

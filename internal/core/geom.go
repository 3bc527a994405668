// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// World dimensions shared by every game. Positions are centred on the origin,
// so the visible field spans [-WorldHalf, WorldHalf) on both axes.
const (
	WorldSize = 128.0
	WorldHalf = WorldSize / 2
)

// Vec2 is a position or velocity in world units.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum of two vectors.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Dist returns the euclidean distance between two points.
func (v Vec2) Dist(o Vec2) float64 {
	return math.Hypot(o.X-v.X, o.Y-v.Y)
}

// Span is a closed one-dimensional interval [Lo, Hi] used for lateral footprints.
type Span struct {
	Lo, Hi float64
}

// SpanAround returns the interval of the given half-width centred on c.
func SpanAround(c, half float64) Span {
	return Span{Lo: c - half, Hi: c + half}
}

// Contains reports whether x lies inside the span, both edges inclusive.
func (s Span) Contains(x float64) bool {
	return x >= s.Lo && x <= s.Hi
}

// Rect represents an axis-aligned box of screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Wrap keeps a coordinate inside the world by teleporting it to the opposite
// edge once it reaches ±limit.
func Wrap(val, limit float64) float64 {
	if val >= limit {
		return -(limit - 1)
	}
	if val <= -limit {
		return limit - 1
	}
	return val
}

package froggy

import (
	"testing"

	"github.com/vovakirdan/pocket-arcade/internal/config"
)

func TestEntityPlacedOnce(t *testing.T) {
	tests := []struct {
		name      string
		direction int
		first     float64
	}{
		{"rightward starts at left edge", 1, -63},
		{"leftward starts at right edge", -1, 63},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &Entity{X: 12}
			e.Advance(tt.direction, 1, 64)
			if e.X != tt.first {
				t.Fatalf("after first advance X = %v, expected %v", e.X, tt.first)
			}
			for i := 0; i < 50; i++ {
				e.Advance(tt.direction, 1, 64)
			}
			expected := tt.first + 50*float64(tt.direction)
			if e.X != expected {
				t.Errorf("after 51 advances X = %v, expected %v", e.X, expected)
			}
		})
	}
}

func TestEntityOffscreen(t *testing.T) {
	tests := []struct {
		x        float64
		expected bool
	}{
		{0, false},
		{64, false},
		{-64, false},
		{64.1, true},
		{-70, true},
	}
	for _, tt := range tests {
		e := &Entity{X: tt.x}
		if got := e.Offscreen(64); got != tt.expected {
			t.Errorf("Offscreen() at %v = %v, expected %v", tt.x, got, tt.expected)
		}
	}
}

func TestActorWidths(t *testing.T) {
	actors := config.DefaultFroggyConfig().Actors
	tests := []struct {
		actor    Actor
		expected float64
	}{
		{ActorCar, 10},
		{ActorLog, 25},
		{ActorLily, 10},
	}
	for _, tt := range tests {
		if got := tt.actor.Width(actors); got != tt.expected {
			t.Errorf("%s width = %v, expected %v", tt.actor, got, tt.expected)
		}
	}
}

package main

import (
	"testing"

	"github.com/vovakirdan/gifteroids/internal/core"
)

func TestModeArg(t *testing.T) {
	tests := []struct {
		args     []string
		expected string
	}{
		{nil, defaultMode},
		{[]string{"gifteroids_endless"}, "gifteroids_endless"},
	}

	for _, tt := range tests {
		if got := modeArg(tt.args); got != tt.expected {
			t.Errorf("modeArg(%v) = %q, expected %q", tt.args, got, tt.expected)
		}
	}
}

func TestAutopilot(t *testing.T) {
	tests := []struct {
		name   string
		tick   int
		action core.Action
		held   bool
	}{
		{"turns early", 10, core.ActionRotateLeft, true},
		{"no thrust while turning", 10, core.ActionThrust, false},
		{"thrusts after turning", 45, core.ActionThrust, true},
		{"coasts", 80, core.ActionThrust, false},
		{"fires on schedule", 30, core.ActionFire, true},
		{"holds fire between shots", 31, core.ActionFire, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := autopilot(tt.tick)
			if got := in.Has(tt.action); got != tt.held {
				t.Errorf("autopilot(%d).Has(%v) = %v, expected %v", tt.tick, tt.action, got, tt.held)
			}
		})
	}
}

package core

import (
	"testing"
	"time"
)

func TestFrameDuration(t *testing.T) {
	tests := []struct {
		rate int
		want time.Duration
	}{
		{60, time.Second / 60},
		{30, time.Second / 30},
		{1, time.Second},
		{0, time.Second / 60},
		{-5, time.Second / 60},
	}

	for _, tt := range tests {
		rt := RuntimeConfig{TickRate: tt.rate}
		if got := rt.FrameDuration(); got != tt.want {
			t.Errorf("FrameDuration() with TickRate %d = %v, expected %v", tt.rate, got, tt.want)
		}
	}
}

package chat

import (
	"testing"
	"time"
)

func TestReplyDelayBounds(t *testing.T) {
	cases := []struct {
		name     string
		min, max time.Duration
	}{
		{"default window", time.Second, 2 * time.Second},
		{"narrow window", 10 * time.Millisecond, 11 * time.Millisecond},
		{"from zero", 0, 3 * time.Nanosecond},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewService(Config{MinReplyDelay: tc.min, MaxReplyDelay: tc.max})
			for i := 0; i < 500; i++ {
				if d := svc.replyDelay(); d < tc.min || d >= tc.max {
					t.Fatalf("delay %s outside [%s, %s)", d, tc.min, tc.max)
				}
			}
		})
	}
}

func TestReplyDelayFixed(t *testing.T) {
	cases := []struct {
		name     string
		min, max time.Duration
		want     time.Duration
	}{
		{"min equals max", 1500 * time.Millisecond, 1500 * time.Millisecond, 1500 * time.Millisecond},
		{"max below min is raised", time.Second, 0, time.Second},
		{"both zero", 0, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewService(Config{MinReplyDelay: tc.min, MaxReplyDelay: tc.max})
			for i := 0; i < 20; i++ {
				if d := svc.replyDelay(); d != tc.want {
					t.Fatalf("expected %s, got %s", tc.want, d)
				}
			}
		})
	}
}

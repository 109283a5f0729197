package input

import (
	"testing"
	"testing/fstest"
)

func TestIdle(t *testing.T) {
	var src Source = Idle{}
	if got := src.Next(42); got != (Intent{}) {
		t.Errorf("expected empty intent, got %+v", got)
	}
}

func TestClamped(t *testing.T) {
	got := Intent{Forward: 3, Right: -2, Yaw: 5}.Clamped()
	if got.Forward != 1 || got.Right != -1 {
		t.Errorf("expected move clamped to ±1, got %+v", got)
	}
	if got.Yaw != 5 {
		t.Errorf("look should not be clamped, got %f", got.Yaw)
	}
}

func TestLatestOneShots(t *testing.T) {
	var l Latest
	l.Set(Intent{Forward: 1, Jump: true, Shoot: true, Yaw: 0.5})

	first := l.Next(0)
	if !first.Jump || !first.Shoot || first.Yaw != 0.5 {
		t.Errorf("expected one-shot fields on first read, got %+v", first)
	}

	second := l.Next(1)
	if second.Jump || second.Shoot || second.Yaw != 0 {
		t.Errorf("one-shot fields should clear, got %+v", second)
	}
	if second.Forward != 1 {
		t.Errorf("movement should persist, got %+v", second)
	}
}

const walkScript = `
loop: false
segments:
  - ticks: 3
    forward: 1
  - ticks: 2
    right: -1
    sprint: true
  - ticks: 1
    jump: true
    shoot: true
`

func TestScriptSegments(t *testing.T) {
	s, err := LoadScript(fstest.MapFS{"walk.yaml": {Data: []byte(walkScript)}}, "walk.yaml")
	if err != nil {
		t.Fatalf("LoadScript failed: %v", err)
	}
	if s.Len() != 6 {
		t.Fatalf("expected 6 ticks, got %d", s.Len())
	}

	tests := []struct {
		tick int
		want Intent
	}{
		{0, Intent{Forward: 1}},
		{2, Intent{Forward: 1}},
		{3, Intent{Right: -1, Sprint: true}},
		{4, Intent{Right: -1, Sprint: true}},
		{5, Intent{Jump: true, Shoot: true}},
		{6, Intent{}},
		{100, Intent{}},
		{-1, Intent{}},
	}
	for _, tt := range tests {
		if got := s.Next(tt.tick); got != tt.want {
			t.Errorf("tick %d: expected %+v, got %+v", tt.tick, tt.want, got)
		}
	}
}

func TestScriptLoops(t *testing.T) {
	s, err := NewScript(true,
		Segment{Ticks: 2, Intent: Intent{Forward: 1}},
		Segment{Ticks: 1, Intent: Intent{Forward: -1}},
	)
	if err != nil {
		t.Fatalf("NewScript failed: %v", err)
	}

	for tick, want := range []float32{1, 1, -1, 1, 1, -1, 1} {
		if got := s.Next(tick).Forward; got != want {
			t.Errorf("tick %d: expected forward %f, got %f", tick, want, got)
		}
	}
}

func TestScriptClampsSegments(t *testing.T) {
	s, err := ParseScript([]byte("segments:\n  - {ticks: 1, forward: 4}\n"))
	if err != nil {
		t.Fatalf("ParseScript failed: %v", err)
	}
	if got := s.Next(0).Forward; got != 1 {
		t.Errorf("expected clamped forward 1, got %f", got)
	}
}

func TestScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty", "segments: []\n"},
		{"zero ticks", "segments:\n  - {ticks: 0, forward: 1}\n"},
		{"bad yaml", "segments: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseScript([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

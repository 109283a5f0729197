// Package input supplies per-tick player intents. Intents are abstract:
// sources are scripts, remote viewers or nothing at all.
package input

import "sync"

// Intent is what the player wants to do this tick.
type Intent struct {
	Forward float32 `yaml:"forward,omitempty" json:"forward,omitempty"` // -1..1, camera relative
	Right   float32 `yaml:"right,omitempty" json:"right,omitempty"`     // -1..1, camera relative
	Sprint  bool    `yaml:"sprint,omitempty" json:"sprint,omitempty"`
	Jump    bool    `yaml:"jump,omitempty" json:"jump,omitempty"`
	Shoot   bool    `yaml:"shoot,omitempty" json:"shoot,omitempty"`
	Yaw     float32 `yaml:"yaw,omitempty" json:"yaw,omitempty"`     // look right
	Pitch   float32 `yaml:"pitch,omitempty" json:"pitch,omitempty"` // look up
	Zoom    float32 `yaml:"zoom,omitempty" json:"zoom,omitempty"`
}

// Clamped returns the intent with move axes limited to [-1, 1].
func (i Intent) Clamped() Intent {
	i.Forward = clamp(i.Forward)
	i.Right = clamp(i.Right)
	return i
}

// Moving reports whether the intent asks for horizontal movement.
func (i Intent) Moving() bool {
	return i.Forward != 0 || i.Right != 0
}

func clamp(v float32) float32 {
	switch {
	case v > 1:
		return 1
	case v < -1:
		return -1
	}
	return v
}

// Source yields one intent per simulation tick.
type Source interface {
	Next(tick int) Intent
}

// Idle is a source that never does anything.
type Idle struct{}

// Next implements Source.
func (Idle) Next(int) Intent { return Intent{} }

// Latest holds the most recent intent pushed from elsewhere, for example a
// remote viewer. Movement and look persist until replaced; Jump and Shoot
// fire once.
type Latest struct {
	mu      sync.Mutex
	current Intent
}

// Set replaces the held intent.
func (l *Latest) Set(i Intent) {
	l.mu.Lock()
	l.current = i.Clamped()
	l.mu.Unlock()
}

// Next implements Source.
func (l *Latest) Next(int) Intent {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := l.current
	l.current.Jump = false
	l.current.Shoot = false
	l.current.Yaw = 0
	l.current.Pitch = 0
	l.current.Zoom = 0
	return out
}

package input

import (
	"errors"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// Segment holds one intent for a number of ticks.
type Segment struct {
	Ticks  int `yaml:"ticks"`
	Intent `yaml:",inline"`
}

// Script replays a fixed sequence of segments. After the last segment it
// either loops or goes idle.
type Script struct {
	Loop     bool      `yaml:"loop"`
	Segments []Segment `yaml:"segments"`

	total int
}

// ParseScript decodes a YAML script.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if err := s.init(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadScript reads a YAML script from fsys.
func LoadScript(fsys fs.FS, name string) (*Script, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read script %s: %w", name, err)
	}
	s, err := ParseScript(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return s, nil
}

// NewScript builds a script from segments.
func NewScript(loop bool, segments ...Segment) (*Script, error) {
	s := &Script{Loop: loop, Segments: segments}
	if err := s.init(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Script) init() error {
	if len(s.Segments) == 0 {
		return errors.New("script has no segments")
	}
	s.total = 0
	for i := range s.Segments {
		if s.Segments[i].Ticks <= 0 {
			return fmt.Errorf("segment %d: ticks must be positive, got %d", i, s.Segments[i].Ticks)
		}
		s.Segments[i].Intent = s.Segments[i].Intent.Clamped()
		s.total += s.Segments[i].Ticks
	}
	return nil
}

// Len returns the number of ticks one pass of the script covers.
func (s *Script) Len() int {
	return s.total
}

// Next implements Source.
func (s *Script) Next(tick int) Intent {
	if tick < 0 {
		return Intent{}
	}
	if tick >= s.total {
		if !s.Loop {
			return Intent{}
		}
		tick %= s.total
	}
	for _, seg := range s.Segments {
		if tick < seg.Ticks {
			return seg.Intent
		}
		tick -= seg.Ticks
	}
	return Intent{}
}

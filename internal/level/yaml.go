package level

import (
	"fmt"
	"io"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// LoadYAML reads a level stored as a YAML box list.
func LoadYAML(fsys fs.FS, name string) (*Level, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read level %s: %w", name, err)
	}

	var l Level
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("parse level %s: %w", name, err)
	}
	if err := l.validate(); err != nil {
		return nil, fmt.Errorf("level %s: %w", name, err)
	}
	return &l, nil
}

// WriteYAML encodes l in the format LoadYAML reads.
func WriteYAML(w io.Writer, l *Level) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(l); err != nil {
		return err
	}
	return enc.Close()
}

package adapter

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/visualize/internal/model"
)

// StyleStore loads renderer styles.
type StyleStore interface {
	// Load returns the default style overridden by the YAML file at path.
	// An empty path yields the default style.
	Load(path m.Path) (m.Style, error)
}

type styleStore struct {
	fs SourceFSAdapter
}

// NewStyleStore constructs a StyleStore reading through fs.
func NewStyleStore(fs SourceFSAdapter) StyleStore {
	return &styleStore{fs: fs}
}

func (s *styleStore) Load(path m.Path) (m.Style, error) {
	style := m.DefaultStyle()
	if path == "" {
		return style, nil
	}

	src, err := s.fs.ReadSource(path)
	if err != nil {
		return m.Style{}, fmt.Errorf("load style: %w", err)
	}

	if err := DecodeStyle(bytes.NewReader(src.Data), &style); err != nil {
		return m.Style{}, fmt.Errorf("load style %s: %w", path, err)
	}

	return style, nil
}

// DecodeStyle overlays YAML keys onto style. Keys absent from the document
// keep their current value. Unknown keys are rejected.
func DecodeStyle(r io.Reader, style *m.Style) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(style); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	if style.Width <= 0 || style.Height <= 0 {
		return fmt.Errorf("figure size must be positive, got %dx%d", style.Width, style.Height)
	}

	return nil
}

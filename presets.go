package notus

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"

	"gopkg.in/yaml.v3"
)

// Presets are named partial configurations.
//
//	snackbar-undo:
//	  notusType: snackbar
//	  notusPosition: bottom
//	  actionable: true
//	  primaryAction:
//	    text: UNDO
//	    actionHandler: undo
type Presets map[string]Partial

// LoadPresets decodes a YAML document of presets. Unknown keys are rejected.
func LoadPresets(r io.Reader) (Presets, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	presets := make(Presets)
	if err := dec.Decode(&presets); err != nil {
		if errors.Is(err, io.EOF) {
			return presets, nil
		}
		return nil, fmt.Errorf("notus: decode presets: %w", err)
	}
	return presets, nil
}

// Names returns the preset names in sorted order.
func (p Presets) Names() []string {
	return slices.Sorted(maps.Keys(p))
}

// Options returns the options of the named preset, with over applied on top.
func (p Presets) Options(name string, h Handlers, over Partial) ([]Option, error) {
	preset, ok := p[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPresetNotFound, name)
	}
	return preset.Merge(over).Options(h)
}

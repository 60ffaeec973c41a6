// Package preset loads named line definitions from JSON, built in or from a user's file,
// and turns them into formulas for the custom entry of the menu.
//
// A preset names a method (one of the line kinds) and fixes any of its parameters
// as extra keys, e.g.
//
//	{"id": "throughOrigin", "method": "pointSlope", "x0": 0, "y0": 0}
//
// Parameters that are not fixed are asked for when the preset is used.
package preset

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/perimeterx/marshmallow"

	"github.com/pdok/planeline/line"
)

var (
	//go:embed presets/*.json
	embeddedPresetsJSONFS embed.FS
)

const builtinPath = "presets/builtin.json"

type Preset struct {
	// Preset identifier, the name in the custom menu
	ID string `validate:"required" json:"id"`
	// Title of this preset, normally used for display to a human
	Title string `validate:"max=80" json:"title,omitempty"`
	// Brief narrative description of this preset
	Description string `json:"description,omitempty"`
	// Name of the line kind, in any case style
	Method string `default:"general" validate:"required" json:"method"`

	Kind line.Kind `json:"-"`
	// Params fixed by this preset, from the keys not listed above
	Params line.Params `json:"-"`
}

func (p *Preset) UnmarshalJSON(data []byte) error {
	err := defaults.Set(p)
	if err != nil {
		return err
	}

	specials, err := marshmallow.Unmarshal(data, p, marshmallow.WithExcludeKnownFieldsFromMap(true))
	if err != nil {
		return err
	}

	p.Kind, err = line.ParseKind(p.Method)
	if err != nil {
		return fmt.Errorf("preset %q: %w", p.ID, err)
	}
	if p.Kind == line.Custom {
		return fmt.Errorf(`preset %q: method "custom" cannot define a preset`, p.ID)
	}

	p.Params = make(line.Params, len(specials))
	for key, raw := range specials {
		value, ok := raw.(float64)
		if !ok {
			return fmt.Errorf(`preset %q: parameter %q is not a number but a %T`, p.ID, key, raw)
		}
		p.Params[key] = value
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	return validate.Struct(p)
}

// Formula turns the preset into a formula for a line.Registry.
func (p *Preset) Formula() (line.Formula, error) {
	description := p.Title
	if description == "" {
		description = p.ID
	}
	if p.Description != "" {
		description += ": " + p.Description
	}
	return line.FormulaFromKind(p.ID, description, p.Kind, p.Params)
}

func LoadEmbeddedPresets() ([]Preset, error) {
	presetsJSON, err := embeddedPresetsJSONFS.ReadFile(builtinPath)
	if err != nil {
		return nil, err
	}
	return unmarshalPresets(presetsJSON)
}

// LoadJSONPresets reads a JSON array of presets from a file.
func LoadJSONPresets(path string) ([]Preset, error) {
	presetsJSON, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	presets, err := unmarshalPresets(presetsJSON)
	if err != nil {
		return nil, fmt.Errorf("could not load presets from %s: %w", path, err)
	}
	return presets, nil
}

func unmarshalPresets(data []byte) ([]Preset, error) {
	var presets []Preset
	err := json.Unmarshal(data, &presets)
	if err != nil {
		return nil, err
	}
	return presets, nil
}

// Register adds the presets to the registry in order.
func Register(registry *line.Registry, presets []Preset) error {
	for i := range presets {
		formula, err := presets[i].Formula()
		if err != nil {
			return err
		}
		err = registry.Register(formula)
		if err != nil {
			return err
		}
	}
	return nil
}

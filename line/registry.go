package line

import (
	"errors"
	"fmt"

	"github.com/go-spatial/geom"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/pdok/planeline/mapslicehelp"
)

var (
	ErrUnnamedFormula   = errors.New("formula needs a name")
	ErrDuplicateFormula = errors.New("formula already registered")
	ErrUnknownFormula   = errors.New("unknown formula")
)

// FormulaFunc builds a line from the params a Formula asks for.
type FormulaFunc func(params Params) (Line, error)

// Formula is a named, user defined way to build a line. It backs the Custom kind.
type Formula struct {
	Name        string
	Description string
	// Params are asked for before Func is called
	Params []Param
	Func   FormulaFunc
	// Markers optionally returns points to mark on the plot
	Markers func(params Params, l Line) []geom.Point
}

// Registry keeps formulas in registration order.
type Registry struct {
	formulas *orderedmap.OrderedMap[string, Formula]
}

func NewRegistry() *Registry {
	return &Registry{formulas: orderedmap.New[string, Formula]()}
}

func (r *Registry) Register(f Formula) error {
	if f.Name == "" {
		return ErrUnnamedFormula
	}
	if f.Func == nil {
		return fmt.Errorf("formula %q has no func", f.Name)
	}
	if _, exists := r.formulas.Get(f.Name); exists {
		return fmt.Errorf("%w: %q", ErrDuplicateFormula, f.Name)
	}
	r.formulas.Set(f.Name, f)
	return nil
}

func (r *Registry) Lookup(name string) (Formula, error) {
	f, ok := r.formulas.Get(name)
	if !ok {
		return f, fmt.Errorf("%w: %q", ErrUnknownFormula, name)
	}
	return f, nil
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	return mapslicehelp.OrderedMapKeys(r.formulas)
}

func (r *Registry) Formulas() []Formula {
	return mapslicehelp.OrderedMapValues(r.formulas)
}

// At returns the formula at (zero based) position i in registration order.
func (r *Registry) At(i int) (Formula, bool) {
	_, f, ok := mapslicehelp.Nth(r.formulas, i)
	return f, ok
}

func (r *Registry) Len() int {
	return r.formulas.Len()
}

// Build calls the named formula, checking that every param it asks for is given.
func (r *Registry) Build(name string, params Params) (Line, error) {
	f, err := r.Lookup(name)
	if err != nil {
		return Line{}, err
	}
	for _, p := range f.Params {
		if _, ok := params[p.Name]; !ok {
			return Line{}, fmt.Errorf("%s: %w %q", name, ErrMissingParam, p.Name)
		}
	}
	l, err := f.Func(params)
	if err != nil {
		return Line{}, fmt.Errorf("%s: %w", name, err)
	}
	return l, nil
}

// FormulaFromKind wraps a built-in kind as a formula. Fixed params are not asked for.
func FormulaFromKind(name, description string, k Kind, fixed Params) (Formula, error) {
	if _, ok := constructors[k]; !ok {
		return Formula{}, fmt.Errorf("%w: %v cannot back a formula", ErrUnknownKind, k)
	}
	known := make(map[string]struct{}, len(k.Params()))
	var open []Param
	for _, p := range k.Params() {
		known[p.Name] = struct{}{}
		if _, ok := fixed[p.Name]; !ok {
			open = append(open, p)
		}
	}
	for n := range fixed {
		if _, ok := known[n]; !ok {
			return Formula{}, fmt.Errorf("%v has no parameter %q", k, n)
		}
	}
	merge := func(params Params) Params {
		merged := make(Params, len(fixed)+len(params))
		for n, v := range params {
			merged[n] = v
		}
		for n, v := range fixed {
			merged[n] = v
		}
		return merged
	}
	return Formula{
		Name:        name,
		Description: description,
		Params:      open,
		Func: func(params Params) (Line, error) {
			return Build(k, merge(params))
		},
		Markers: func(params Params, l Line) []geom.Point {
			return Markers(k, merge(params), l)
		},
	}, nil
}

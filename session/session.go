// Package session runs the interactive menu: pick a way to define a line,
// answer its prompts, and get the layers to plot.
package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-spatial/geom"
	"github.com/ttacon/chalk"

	"github.com/pdok/planeline/line"
	"github.com/pdok/planeline/plotting"
)

var (
	ErrNoInput    = errors.New("no input")
	ErrNoFormulas = errors.New("no custom formulas registered")
)

// Session reads answers from in and writes prompts to out.
type Session struct {
	in       *bufio.Scanner
	out      io.Writer
	registry *line.Registry
}

func New(in io.Reader, out io.Writer, registry *line.Registry) *Session {
	if registry == nil {
		registry = line.NewRegistry()
	}
	return &Session{
		in:       bufio.NewScanner(in),
		out:      out,
		registry: registry,
	}
}

// Run asks for one line and returns it as the first layer. A perpendicular,
// when asked for, is the second layer.
func (s *Session) Run() ([]plotting.Layer, error) {
	s.banner()

	k, err := s.chooseKind()
	if err != nil {
		return nil, err
	}

	var layer plotting.Layer
	if k == line.Custom {
		layer, err = s.custom()
	} else {
		layer, err = s.builtin(k)
	}
	if err != nil {
		if !errors.Is(err, ErrNoInput) {
			s.failure(err)
		}
		return nil, err
	}
	layers := []plotting.Layer{layer}
	s.success("Line: " + layer.Line.String())

	perpendicular, err := s.confirm("Also draw perpendicular? [y/N] ")
	if err != nil {
		return nil, err
	}
	if perpendicular {
		through := layer.Line.Anchor()
		if len(layer.Markers) > 0 {
			through = layer.Markers[0]
		}
		perp := layer.Line.Perpendicular(through)
		layers = append(layers, plotting.Layer{
			Line:    perp,
			Label:   "Perpendicular through " + line.FormatPoint(through),
			Markers: []geom.Point{through},
		})
		s.success("Perpendicular: " + perp.String())
	}
	return layers, nil
}

func (s *Session) banner() {
	fmt.Fprintln(s.out, chalk.Bold.TextStyle("STRAIGHT LINE ON THE PLANE"))
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "Choose how to define your line:")
	for _, k := range line.Kinds {
		fmt.Fprintf(s.out, " %2d. %s\n", int(k), k.Title())
	}
}

// chooseKind re-prompts until a valid menu entry is given.
func (s *Session) chooseKind() (line.Kind, error) {
	last := len(line.Kinds)
	for {
		answer, err := s.ask(fmt.Sprintf("\nEnter 1–%d: ", last))
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(answer)
		if err == nil && n >= 1 && n <= last {
			return line.Kinds[n-1], nil
		}
		s.warning(fmt.Sprintf("Invalid choice %q", answer))
	}
}

func (s *Session) builtin(k line.Kind) (plotting.Layer, error) {
	params, err := s.askParams(k.Params())
	if err != nil {
		return plotting.Layer{}, err
	}
	l, err := line.Build(k, params)
	if err != nil {
		return plotting.Layer{}, err
	}
	return plotting.Layer{
		Line:    l,
		Label:   line.Describe(k, params),
		Markers: line.Markers(k, params, l),
	}, nil
}

func (s *Session) custom() (plotting.Layer, error) {
	if s.registry.Len() == 0 {
		return plotting.Layer{}, ErrNoFormulas
	}
	fmt.Fprintln(s.out, "\nCustom line definitions:")
	for i, f := range s.registry.Formulas() {
		fmt.Fprintf(s.out, " %2d. %s\n", i+1, f.Description)
	}

	var formula line.Formula
	for {
		answer, err := s.ask(fmt.Sprintf("Enter 1–%d: ", s.registry.Len()))
		if err != nil {
			return plotting.Layer{}, err
		}
		n, err := strconv.Atoi(answer)
		if err == nil {
			if f, ok := s.registry.At(n - 1); ok {
				formula = f
				break
			}
		}
		s.warning(fmt.Sprintf("Invalid choice %q", answer))
	}

	params, err := s.askParams(formula.Params)
	if err != nil {
		return plotting.Layer{}, err
	}
	l, err := s.registry.Build(formula.Name, params)
	if err != nil {
		return plotting.Layer{}, err
	}
	layer := plotting.Layer{Line: l, Label: formula.Description}
	if formula.Markers != nil {
		layer.Markers = formula.Markers(params, l)
	}
	return layer, nil
}

// askParams prompts every param once. An answer that is not a number ends the session.
func (s *Session) askParams(params []line.Param) (line.Params, error) {
	values := make(line.Params, len(params))
	for _, p := range params {
		answer, err := s.ask(p.Prompt())
		if err != nil {
			return nil, err
		}
		v, err := strconv.ParseFloat(answer, 64)
		if err != nil {
			return nil, fmt.Errorf("input error for %s: %q is not a number", p.Name, answer)
		}
		values[p.Name] = v
	}
	return values, nil
}

// confirm is false unless the answer starts with y. No answer at all is a no.
func (s *Session) confirm(prompt string) (bool, error) {
	answer, err := s.ask(prompt)
	if errors.Is(err, ErrNoInput) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return strings.HasPrefix(strings.ToLower(answer), "y"), nil
}

func (s *Session) ask(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", ErrNoInput
	}
	return strings.TrimSpace(s.in.Text()), nil
}

func (s *Session) success(msg string) {
	fmt.Fprintln(s.out, chalk.Green.Color(msg))
}

func (s *Session) warning(msg string) {
	fmt.Fprintln(s.out, chalk.Yellow.Color(msg))
}

func (s *Session) failure(err error) {
	fmt.Fprintln(s.out, chalk.Red.Color("Input error: "+err.Error()))
}

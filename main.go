package main

import (
	"log"
	"os"
	"strings"

	"github.com/carlmjohnson/versioninfo"
	"github.com/iancoleman/strcase"
	"github.com/skratchdot/open-golang/open"
	"github.com/urfave/cli/v2"

	"github.com/pdok/planeline/line"
	"github.com/pdok/planeline/plotting"
	"github.com/pdok/planeline/preset"
	"github.com/pdok/planeline/report"
	"github.com/pdok/planeline/session"
)

const OUTPUT string = `output`
const TITLE string = `title`
const XMIN string = `xMin`
const XMAX string = `xMax`
const YMIN string = `yMin`
const YMAX string = `yMax`
const WIDTH string = `width`
const HEIGHT string = `height`
const SAMPLES string = `samples`
const PRESETS string = `presets`
const OPEN string = `open`

//nolint:funlen
func main() {
	app := cli.NewApp()
	app.Name = "planeline"
	app.Usage = "Define a straight line on the plane and plot it"
	app.Version = versioninfo.Short()

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:     OUTPUT,
			Aliases:  []string{"o"},
			Usage:    "Image to write the plot to, the format follows from the extension. E.g. line.png or line.svg",
			Value:    "screenshot.png",
			Required: false,
			EnvVars:  []string{strcase.ToScreamingSnake(OUTPUT)},
		},
		&cli.StringFlag{
			Name:     TITLE,
			Usage:    "Title of the plot",
			Required: false,
			EnvVars:  []string{strcase.ToScreamingSnake(TITLE)},
		},
		&cli.Float64Flag{
			Name:     XMIN,
			Usage:    "Left edge of the plotted area",
			Value:    -8,
			Required: false,
			EnvVars:  []string{strcase.ToScreamingSnake(XMIN)},
		},
		&cli.Float64Flag{
			Name:     XMAX,
			Usage:    "Right edge of the plotted area",
			Value:    8,
			Required: false,
			EnvVars:  []string{strcase.ToScreamingSnake(XMAX)},
		},
		&cli.Float64Flag{
			Name:     YMIN,
			Usage:    "Bottom edge of the plotted area",
			Value:    -8,
			Required: false,
			EnvVars:  []string{strcase.ToScreamingSnake(YMIN)},
		},
		&cli.Float64Flag{
			Name:     YMAX,
			Usage:    "Top edge of the plotted area",
			Value:    8,
			Required: false,
			EnvVars:  []string{strcase.ToScreamingSnake(YMAX)},
		},
		&cli.Float64Flag{
			Name:     WIDTH,
			Usage:    "Width of the image in centimeters",
			Value:    16,
			Required: false,
			EnvVars:  []string{strcase.ToScreamingSnake(WIDTH)},
		},
		&cli.Float64Flag{
			Name:     HEIGHT,
			Usage:    "Height of the image in centimeters",
			Value:    16,
			Required: false,
			EnvVars:  []string{strcase.ToScreamingSnake(HEIGHT)},
		},
		&cli.IntFlag{
			Name:     SAMPLES,
			Usage:    "Number of points drawn per line",
			Value:    2,
			Required: false,
			EnvVars:  []string{strcase.ToScreamingSnake(SAMPLES)},
		},
		&cli.StringFlag{
			Name:     PRESETS,
			Aliases:  []string{"p"},
			Usage:    "JSON file with extra custom line definitions, added after the built-in ones",
			Required: false,
			EnvVars:  []string{strcase.ToScreamingSnake(PRESETS)},
		},
		&cli.BoolFlag{
			Name:     OPEN,
			Usage:    "Open the plot with the default viewer when done",
			Required: false,
			EnvVars:  []string{strcase.ToScreamingSnake(OPEN)},
		},
	}

	app.Action = func(c *cli.Context) error {
		fig, err := figureFromFlags(c)
		if err != nil {
			return err
		}
		registry, err := loadRegistry(c.String(PRESETS))
		if err != nil {
			return err
		}

		layers, err := session.New(os.Stdin, os.Stdout, registry).Run()
		if err != nil {
			return err
		}

		for _, layer := range layers {
			report.Write(os.Stdout, layer, fig.Extent())
		}

		log.Println("=== start plotting ===")
		err = plotting.Render(fig, layers)
		if err != nil {
			return err
		}
		log.Printf("  plot written to %s", fig.Output)
		log.Println("=== done plotting ===")

		if c.Bool(OPEN) {
			return open.Run(fig.Output)
		}
		return nil
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}

// figureFromFlags starts from the figure defaults, only flags that are set override them.
func figureFromFlags(c *cli.Context) (plotting.Figure, error) {
	fig, err := plotting.NewFigure()
	if err != nil {
		return fig, err
	}
	if c.IsSet(OUTPUT) {
		fig.Output = c.String(OUTPUT)
	}
	if c.IsSet(TITLE) {
		fig.Title = c.String(TITLE)
	}
	if c.IsSet(XMIN) {
		fig.XMin = c.Float64(XMIN)
	}
	if c.IsSet(XMAX) {
		fig.XMax = c.Float64(XMAX)
	}
	if c.IsSet(YMIN) {
		fig.YMin = c.Float64(YMIN)
	}
	if c.IsSet(YMAX) {
		fig.YMax = c.Float64(YMAX)
	}
	if c.IsSet(WIDTH) {
		fig.Width = c.Float64(WIDTH)
	}
	if c.IsSet(HEIGHT) {
		fig.Height = c.Float64(HEIGHT)
	}
	if c.IsSet(SAMPLES) {
		fig.Samples = c.Int(SAMPLES)
	}
	return fig, fig.Validate()
}

// loadRegistry registers the built-in presets, followed by those in presetsPath if given.
func loadRegistry(presetsPath string) (*line.Registry, error) {
	registry := line.NewRegistry()
	presets, err := preset.LoadEmbeddedPresets()
	if err != nil {
		return nil, err
	}
	if presetsPath != "" {
		extra, err := preset.LoadJSONPresets(presetsPath)
		if err != nil {
			return nil, err
		}
		presets = append(presets, extra...)
	}
	err = preset.Register(registry, presets)
	if err != nil {
		return nil, err
	}
	log.Printf("  %d custom line definitions available: %s", registry.Len(), strings.Join(registry.Names(), ", "))
	return registry, nil
}

package main

import (
	"errors"
	"fmt"
	"io/ioutil"
	"log"
	"math"
	"os"

	"github.com/bodgit/gradient"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func openCatalog(c *cli.Context) (*gradient.Catalog, error) {
	if c.String("db") == "" {
		return nil, nil
	}
	return gradient.NewCatalog(c.String("db"))
}

// progress rewrites a single console line with the rounded percentage.
func progress(percent float64) {
	fmt.Printf("\rProgress %.0f%%", math.Round(percent))
}

func generate(c *cli.Context) error {
	width, height := c.Int("width"), c.Int("height")
	if width <= 0 || height <= 0 {
		return cli.NewExitError(errors.New("width and height must be positive"), 1)
	}

	catalog, err := openCatalog(c)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	if catalog != nil {
		defer catalog.Close()
	}

	o := gradient.Options{
		Width:    width,
		Height:   height,
		Progress: progress,
	}
	if c.Bool("bottom-up") {
		o.Order = gradient.BottomUp
	}

	g := gradient.New(catalog, newLogger(c))
	_, err = g.Generate(c.String("output"), o)
	fmt.Println()
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	return nil
}

func list(c *cli.Context) error {
	if c.String("db") == "" {
		return cli.NewExitError(errors.New("no catalog database given"), 1)
	}

	catalog, err := openCatalog(c)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer catalog.Close()

	entries, err := catalog.Images()
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	for _, e := range entries {
		order := "top-down"
		if e.BottomUp {
			order = "bottom-up"
		}
		fmt.Printf("%s\t%dx%d\t%s\t%d\t%s\t%s\n", e.Path, e.Width, e.Height, order, e.Size, e.CRC, e.SHA1)
	}

	return nil
}

func main() {
	app := cli.NewApp()

	app.Name = "gradient"
	app.Usage = "Gradient test bitmap generator"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"GRADIENT_DB"},
			Usage:   "path to catalog database",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	generateFlags := []cli.Flag{
		&cli.IntFlag{
			Name:    "width",
			EnvVars: []string{"GRADIENT_WIDTH"},
			Value:   gradient.DefaultWidth,
			Usage:   "image width in pixels",
		},
		&cli.IntFlag{
			Name:    "height",
			EnvVars: []string{"GRADIENT_HEIGHT"},
			Value:   gradient.DefaultHeight,
			Usage:   "image height in pixels",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			EnvVars: []string{"GRADIENT_OUTPUT"},
			Value:   gradient.DefaultPath,
			Usage:   "path to output bitmap",
		},
		&cli.BoolFlag{
			Name:  "bottom-up",
			Usage: "write rows bottom to top",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "generate",
			Usage:       "Generate a gradient bitmap",
			Description: "",
			Flags:       generateFlags,
			Action:      generate,
		},
		{
			Name:        "list",
			Usage:       "List catalogued images",
			Description: "",
			Action:      list,
		},
	}

	// Running with no command generates with the defaults
	app.Flags = append(app.Flags, generateFlags...)
	app.Action = generate

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

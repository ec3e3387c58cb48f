package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/kr/pretty"
	"github.com/logrusorgru/aurora"
	"github.com/osuushi/cubicmvc"
	"github.com/osuushi/cubicmvc/advanced"
	"github.com/osuushi/cubicmvc/dbg"
	"github.com/osuushi/cubicmvc/polyio"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Prints the cubic mean value coordinates of one or more query points. The
// boundary is read from stdin as newline separated points in the form "x y",
// with loops separated by an extra newline, or from an SVG file's <polygon>
// elements. The first loop is the outer boundary and any further loops are
// holes; orientation is fixed up automatically.
var (
	app      = kingpin.New("cubicmvc", "Compute cubic mean value coordinates.")
	svgPath  = app.Flag("svg", "Read loops from the polygons of an SVG file instead of stdin.").ExistingFile()
	queries  = app.Flag("query", "Query point as \"x,y\". Repeatable.").Short('q').Required().Strings()
	workers  = app.Flag("workers", "Goroutines used when there are several query points.").Default("4").Int()
	pngPath  = app.Flag("png", "Draw the boundary and the first query's weights to this PNG file.").String()
	showPNG  = app.Flag("imgcat", "Also print the drawing to the terminal (iTerm only).").Bool()
	scale    = app.Flag("scale", "Drawing scale in pixels per unit.").Default("50").Float64()
	dump     = app.Flag("dump", "Dump the full coordinate structures.").Bool()
	verbose  = app.Flag("verbose", "Log debug output to stderr.").Short('v').Bool()
	noColor  = app.Flag("no-color", "Disable colored output.").Bool()
	colorize aurora.Aurora
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))
	colorize = aurora.NewAurora(!*noColor)
	if *verbose {
		cubicmvc.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if err := run(os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, colorize.Red(fmt.Sprintf("error: %v", err)))
		os.Exit(1)
	}
}

func run(out io.Writer) error {
	loops, err := readLoops()
	if err != nil {
		return err
	}
	vertices, edges := advanced.Loops(loops[0], loops[1:]...)
	fmt.Fprintf(out, "Read %d loops, %d vertices\n", len(loops), len(vertices))

	points := make([]cubicmvc.Point, 0, len(*queries))
	for _, q := range *queries {
		p, err := polyio.ParsePoint(q)
		if err != nil {
			return err
		}
		if !advanced.Contains(vertices, advanced.EdgeList(edges), p) {
			fmt.Fprintln(out, colorize.Yellow(fmt.Sprintf("warning: (%g, %g) is outside the boundary", p.X, p.Y)))
		}
		points = append(points, p)
	}

	field, err := advanced.NewField(vertices, advanced.EdgeList(edges), advanced.WithWorkers(*workers))
	if err != nil {
		return err
	}
	results, err := field.Evaluate(context.Background(), points)
	if err != nil {
		return err
	}

	for i, c := range results {
		printCoordinates(out, points[i], edges, c)
	}

	if *pngPath != "" {
		ctx := dbg.Draw(vertices, advanced.EdgeList(edges), points[0], results[0], *scale)
		if *showPNG {
			return dbg.Show(ctx, *pngPath)
		}
		return ctx.SavePNG(*pngPath)
	}
	return nil
}

func readLoops() ([][]cubicmvc.Point, error) {
	var loops [][]cubicmvc.Point
	var err error
	if *svgPath != "" {
		file, openErr := os.Open(*svgPath)
		if openErr != nil {
			return nil, openErr
		}
		defer file.Close()
		loops, err = polyio.ReadSVG(file)
	} else {
		loops, err = polyio.ReadText(os.Stdin)
	}
	if err != nil {
		return nil, err
	}
	if len(loops) == 0 {
		return nil, errors.New("no loops in input")
	}
	return loops, nil
}

func printCoordinates(out io.Writer, query cubicmvc.Point, edges []cubicmvc.Edge, c *cubicmvc.Coordinates) {
	header := fmt.Sprintf("query (%g, %g)", query.X, query.Y)
	if c.OnBoundary {
		e := edges[c.BoundaryEdge]
		header += colorize.Cyan(fmt.Sprintf(" on edge %d (%d -> %d)", c.BoundaryEdge, e.I, e.J)).String()
	}
	fmt.Fprintln(out, colorize.Bold(header))
	if *dump {
		pretty.Fprintf(out, "%# v\n", c)
		return
	}

	var sum float64
	for i, v := range c.Value {
		sum += v
		fmt.Fprintf(out, "  value[%d] = %.10f\n", i, v)
	}
	for k, e := range edges {
		fmt.Fprintf(out, "  edge %d (%d -> %d): normal [%.10f %.10f] tangent [%.10f %.10f]\n",
			k, e.I, e.J, c.NormalGrad[2*k], c.NormalGrad[2*k+1], c.TangentGrad[2*k], c.TangentGrad[2*k+1])
	}
	fmt.Fprintf(out, "  sum of values = %.12f\n", sum)
}

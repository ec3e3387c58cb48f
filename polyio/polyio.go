// Package polyio reads polygon loops from text and SVG.
//
// The text format has one point per line, "x y", with loops separated by a
// blank line. SVG input contributes every <polygon> element, in document order,
// as one loop. Neither reader checks orientation; see advanced.Loops.
package polyio

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/cubicmvc/internal"
	"github.com/pkg/errors"
)

type Point = internal.Point

func ReadText(in io.Reader) ([][]Point, error) {
	var loops [][]Point
	var points []Point
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())

		// A blank line ends the current loop, if we collected any points
		if line == "" {
			if len(points) > 0 {
				loops = append(loops, points)
				points = nil
			}
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, errors.Errorf("line %d: expected \"x y\", got %q", lineNumber, line)
		}
		point, err := parsePoint(fields[0], fields[1])
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading polygon text")
	}

	// Handle trailing loop if any
	if len(points) > 0 {
		loops = append(loops, points)
	}
	return loops, nil
}

func ReadSVG(in io.Reader) ([][]Point, error) {
	rootEl, err := svgparser.Parse(in, true)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		return nil, errors.New("no polygon elements in svg")
	}
	loops := make([][]Point, 0, len(polygons))
	for i, polygonEl := range polygons {
		loop, err := parsePointList(polygonEl.Attributes["points"])
		if err != nil {
			return nil, errors.Wrapf(err, "polygon %d", i)
		}
		loops = append(loops, loop)
	}
	return loops, nil
}

// SVG point lists separate coordinates with commas and/or whitespace.
func parsePointList(attribute string) ([]Point, error) {
	fields := strings.FieldsFunc(attribute, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in %q", attribute)
	}
	points := make([]Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		point, err := parsePoint(fields[i], fields[i+1])
		if err != nil {
			return nil, err
		}
		points = append(points, point)
	}
	return points, nil
}

func parsePoint(xs, ys string) (Point, error) {
	x, err := strconv.ParseFloat(xs, 64)
	if err != nil {
		return Point{}, errors.Wrapf(err, "invalid x value %q", xs)
	}
	y, err := strconv.ParseFloat(ys, 64)
	if err != nil {
		return Point{}, errors.Wrapf(err, "invalid y value %q", ys)
	}
	return Point{X: x, Y: y}, nil
}

// ParsePoint reads a point written as "x,y" or "x y".
func ParsePoint(s string) (Point, error) {
	points, err := parsePointList(s)
	if err != nil {
		return Point{}, err
	}
	if len(points) != 1 {
		return Point{}, errors.Errorf("expected one point, got %q", s)
	}
	return points[0], nil
}

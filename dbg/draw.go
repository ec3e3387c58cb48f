// Package dbg draws a boundary, a query point and its value coordinates, for
// looking at coordinates while debugging.
package dbg

import (
	"fmt"
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/cubicmvc/internal"
)

// Padding around the shape so labels near the boundary stay on the canvas
const drawPadding = 60

// Draw renders the edges of the boundary, the query point, and each vertex
// labelled with its value coordinate. Vertices with positive weight are drawn
// green and negative weight red, with radius growing with the magnitude.
// Scale is in pixels per unit.
func Draw(vertices []internal.Point, edges internal.EdgeSource, query internal.Point, c *internal.Coordinates, scale float64) *gg.Context {
	minX, minY := query.X, query.Y
	maxX, maxY := query.X, query.Y
	for _, p := range vertices {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	ctx := gg.NewContext(width, height)
	ctx.SetRGB(0, 0, 0)
	ctx.DrawRectangle(0, 0, float64(width), float64(height))
	ctx.Fill()

	// Flip so the origin is at the bottom left, then pad, scale, and move the
	// bounding box to the origin
	ctx.Translate(0, float64(height))
	ctx.Scale(1, -1)
	ctx.Translate(drawPadding, drawPadding)
	ctx.Scale(scale, scale)
	ctx.Translate(-minX, -minY)

	ctx.SetLineWidth(2)
	for k := 0; k < edges.Len(); k++ {
		e := edges.Edge(k)
		a, b := vertices[e.I], vertices[e.J]
		if c != nil && c.OnBoundary && c.BoundaryEdge == k {
			ctx.SetRGB(1, 1, 0)
		} else {
			ctx.SetRGB(0.3, 0.5, 1)
		}
		ctx.MoveTo(a.X, a.Y)
		ctx.LineTo(b.X, b.Y)
		ctx.Stroke()
	}

	ctx.SetRGB(1, 1, 1)
	ctx.DrawCircle(query.X, query.Y, 4/scale)
	ctx.Fill()

	if c == nil {
		return ctx
	}
	for i, p := range vertices {
		weight := c.Value[i]
		if weight >= 0 {
			ctx.SetRGBA(0.2, 1, 0.3, 0.8)
		} else {
			ctx.SetRGBA(1, 0.2, 0.2, 0.8)
		}
		radius := (3 + 12*math.Min(math.Abs(weight), 1)) / scale
		ctx.DrawCircle(p.X, p.Y, radius)
		ctx.Fill()

		// Text has to be drawn in device space or it comes out mirrored
		x, y := ctx.TransformPoint(p.X, p.Y)
		ctx.Push()
		ctx.Identity()
		ctx.SetRGB(1, 1, 1)
		ctx.DrawStringAnchored(fmt.Sprintf("%d: %.4f", i, weight), x, y-18, 0.5, 0.5)
		ctx.Pop()
	}
	return ctx
}

// Show saves the drawing to path and prints it to the terminal (iTerm only).
func Show(ctx *gg.Context, path string) error {
	if err := ctx.SavePNG(path); err != nil {
		return err
	}
	imgcat.CatFile(path, os.Stdout)
	return nil
}

package internal

import (
	"math"
	"testing"

	"github.com/kr/pretty"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type domain struct {
	name     string
	vertices []Point
	edges    EdgeSource
	queries  []Point
}

func testDomains() []domain {
	holeVertices, holeEdges := SquareWithHole()
	pentagon := LoadFixture("pentagon")
	lshape := LoadFixture("lshape")
	comb := LoadFixture("comb")
	star := SimpleStar()
	return []domain{
		{"square", []Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}}, Cycle(4), []Point{{2, 2}, {1, 3}, {3.5, 0.25}}},
		{"pentagon", pentagon, Cycle(len(pentagon)), []Point{{2, 2}, {4.5, 1}, {1, 3}}},
		{"l-shape", lshape, Cycle(len(lshape)), []Point{{1, 1}, {3, 1}, {1, 3}, {1, 2}}},
		{"comb", comb, Cycle(len(comb)), []Point{{2, 2}, {5.5, 3}, {4.5, 0.5}}},
		{"star", star, Cycle(len(star)), []Point{{0.3, 0.2}, {1.2, 0.5}, {3, 0.1}}},
		{"square with hole", holeVertices, holeEdges, []Point{{1.5, 2}, {6.5, 6.2}, {4, 1.5}, {4, 6.9}}},
	}
}

func evaluate(t *testing.T, vertices []Point, edges EdgeSource, query Point) *Coordinates {
	t.Helper()
	var w Workspace
	var c Coordinates
	require.NoError(t, w.Evaluate(vertices, edges, query, &c))
	return &c
}

func reproduce(t *testing.T, vertices []Point, edges EdgeSource, c *Coordinates, fn sampled) float64 {
	t.Helper()
	values, gradients := fn.data(vertices)
	got, err := Interpolate(vertices, edges, c, values, gradients)
	require.NoError(t, err)
	return got
}

func sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}

func TestBoundaryQuery(t *testing.T) {
	square := []Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}}
	c := evaluate(t, square, Cycle(4), Point{2, 0})

	assert.True(t, c.OnBoundary)
	assert.Equal(t, 0, c.BoundaryEdge)
	assert.Equal(t, []float64{0.5, 0.5, 0, 0}, c.Value)
	assert.Equal(t, make([]float64, 8), c.NormalGrad)
	assert.Equal(t, []float64{0.5, 0.5, 0, 0, 0, 0, 0, 0}, c.TangentGrad)

	t.Run("off center", func(t *testing.T) {
		// s = 1/4 along the edge from (4,0) to (4,4)
		c := evaluate(t, square, Cycle(4), Point{4, 1})
		require.True(t, c.OnBoundary, pretty.Sprint(c))
		assert.Equal(t, 1, c.BoundaryEdge)
		assert.InDelta(t, 27.0/32, c.Value[1], 1e-15)
		assert.InDelta(t, 5.0/32, c.Value[2], 1e-15)
		assert.InDelta(t, 4*9.0/64, c.TangentGrad[2], 1e-15)
		assert.InDelta(t, 4*3.0/64, c.TangentGrad[3], 1e-15)
	})

	t.Run("reproduces the edge cubic", func(t *testing.T) {
		rectangle := []Point{{0, 0}, {3, 0}, {3, 2}, {0, 2}}
		for _, q := range []Point{{1.3, 0}, {3, 0.4}, {0.2, 2}} {
			c := evaluate(t, rectangle, Cycle(4), q)
			require.True(t, c.OnBoundary)
			assert.InDelta(t, separableCubic.f(q), reproduce(t, rectangle, Cycle(4), c, separableCubic), 1e-12)
		}
	})

	t.Run("on a hole edge", func(t *testing.T) {
		vertices, edges := SquareWithHole()
		c := evaluate(t, vertices, edges, Point{3, 4})
		assert.True(t, c.OnBoundary)
		assert.Equal(t, 4, c.BoundaryEdge)
		assert.InDelta(t, 0.5, c.Value[4], 1e-15)
		assert.InDelta(t, 0.5, c.Value[5], 1e-15)
	})
}

func TestPartitionOfUnity(t *testing.T) {
	for _, d := range testDomains() {
		t.Run(d.name, func(t *testing.T) {
			for _, q := range d.queries {
				c := evaluate(t, d.vertices, d.edges, q)
				assert.False(t, c.OnBoundary)
				assert.InDelta(t, 1, sum(c.Value), 1e-9, "query %v: %# v", q, pretty.Formatter(c))
				assert.Len(t, c.NormalGrad, 2*d.edges.Len())
				assert.Len(t, c.TangentGrad, 2*d.edges.Len())
			}
		})
	}
}

func TestReproducesQuadratics(t *testing.T) {
	for _, d := range testDomains() {
		t.Run(d.name, func(t *testing.T) {
			for _, q := range d.queries {
				c := evaluate(t, d.vertices, d.edges, q)
				assert.InDelta(t, affine.f(q), reproduce(t, d.vertices, d.edges, c, affine), 1e-8, "affine at %v", q)
				assert.InDelta(t, quadratic.f(q), reproduce(t, d.vertices, d.edges, c, quadratic), 1e-8, "quadratic at %v", q)
			}
		})
	}
}

// On axis-aligned edges the normal derivative of x³ and y³ is linear, so
// their boundary data are exact and the cubic term is reproduced too.
func TestReproducesSeparableCubic(t *testing.T) {
	rectangle := []Point{{0, 0}, {3, 0}, {3, 2}, {0, 2}}
	lshape := LoadFixture("lshape")
	for _, q := range []Point{{1, 1}, {2.5, 0.3}, {0.1, 1.9}} {
		c := evaluate(t, rectangle, Cycle(4), q)
		assert.InDelta(t, separableCubic.f(q), reproduce(t, rectangle, Cycle(4), c, separableCubic), 1e-8, "rectangle at %v", q)
	}
	for _, q := range []Point{{1, 1}, {3, 1}, {1, 3}} {
		c := evaluate(t, lshape, Cycle(len(lshape)), q)
		assert.InDelta(t, separableCubic.f(q), reproduce(t, lshape, Cycle(len(lshape)), c, separableCubic), 1e-8, "l-shape at %v", q)
	}
}

func TestApproachesBoundaryData(t *testing.T) {
	square := []Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}}

	t.Run("vertex", func(t *testing.T) {
		c := evaluate(t, square, Cycle(4), Point{1e-4, 1e-4})
		assert.InDelta(t, 1, c.Value[0], 1e-2)
		assert.InDelta(t, 0, c.Value[2], 1e-2)
	})

	t.Run("edge", func(t *testing.T) {
		c := evaluate(t, square, Cycle(4), Point{2, 1e-3})
		assert.False(t, c.OnBoundary)
		assert.InDelta(t, 0.5, c.Value[0], 1e-2)
		assert.InDelta(t, 0.5, c.Value[1], 1e-2)
		assert.InDelta(t, 0, c.Value[2], 1e-2)
		assert.InDelta(t, 0, c.Value[3], 1e-2)
	})
}

// In the l-shape, the query (1, 2) lies on the line of the edge from (4,2) to
// (2,2) but not on the edge itself. That edge sweeps no angle and is skipped.
func TestRadialEdgeIsSkipped(t *testing.T) {
	lshape := LoadFixture("lshape")
	query := Point{1, 2}
	c := evaluate(t, lshape, Cycle(len(lshape)), query)
	assert.False(t, c.OnBoundary)
	assert.Equal(t, -1, c.BoundaryEdge)
	assert.InDelta(t, 1, sum(c.Value), 1e-9)
	for i, v := range c.Value {
		assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), "value %d is %v", i, v)
		assert.Less(t, math.Abs(v), 10.0, "value %d", i)
	}
	assert.InDelta(t, quadratic.f(query), reproduce(t, lshape, Cycle(len(lshape)), c, quadratic), 1e-8)
}

func TestEvaluateErrors(t *testing.T) {
	square := []Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}}

	t.Run("coincident query", func(t *testing.T) {
		var w Workspace
		var c Coordinates
		err := w.Evaluate(square, Cycle(4), Point{4, 4}, &c)
		assert.True(t, errors.Is(err, ErrCoincidentQuery), "got %v", err)
	})

	t.Run("collapsed polygon", func(t *testing.T) {
		var w Workspace
		var c Coordinates
		err := w.Evaluate([]Point{{0, 0}, {2, 0}, {4, 0}}, Cycle(3), Point{1, 1}, &c)
		assert.True(t, errors.Is(err, ErrSingularSystem), "got %v", err)
	})
}

func TestWorkspaceReuse(t *testing.T) {
	var w Workspace
	var c Coordinates
	domains := testDomains()
	// Alternate between large and small boundaries so the tables shrink and
	// grow, and check nothing leaks from one evaluation into the next.
	for _, d := range append(domains, domains...) {
		q := d.queries[0]
		require.NoError(t, w.Evaluate(d.vertices, d.edges, q, &c))
		fresh := evaluate(t, d.vertices, d.edges, q)
		assert.Equal(t, fresh, &c, d.name)
	}
}

func TestInterpolateChecksLengths(t *testing.T) {
	square := []Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}}
	c := evaluate(t, square, Cycle(4), Point{1, 1})

	_, err := Interpolate(square, Cycle(4), c, []float64{1, 2, 3}, make([]Point, 4))
	assert.Error(t, err)

	triangle := square[:3]
	_, err = Interpolate(triangle, Cycle(3), c, make([]float64, 3), make([]Point, 3))
	assert.Error(t, err)
}

package maprelief

import (
	"math"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/model3d/model3d"

	"github.com/voidshard/maprelief/internal/encoding"
	"github.com/voidshard/maprelief/internal/grid"
)

const (
	layerTop  uint32 = 0
	layerBase uint32 = 1
)

// degenerateArea is the triangle area (mm^2) below which we drop a face
const degenerateArea = 1e-9

// Mesh is an indexed triangle mesh in mm; one vertex list & triangles as
// index triples. Built once by the pipeline & never mutated afterwards.
type Mesh struct {
	Vertices  []model3d.Coord3D
	Triangles [][3]int
}

// meshBuilder accumulates indexed vertices. Vertices are keyed by
// (layer, row, col) so coincident corners share an index - the shell
// closes by construction, no seam merging required.
type meshBuilder struct {
	g   *grid.Grid
	cfg *Settings

	// pixel pitch; the outermost vertices land exactly on the plate edge
	px float64
	py float64

	index map[uint64]int
	mesh  *Mesh
}

// buildMesh converts the final heightmap into a closed top+base+walls mesh.
// The heightmap is read only here.
func buildMesh(g *grid.Grid, cfg *Settings) *Mesh {
	b := &meshBuilder{
		g:     g,
		cfg:   cfg,
		px:    cfg.WidthMM / float64(g.Cols()-1),
		py:    cfg.HeightMM / float64(g.Rows()-1),
		index: map[uint64]int{},
		mesh:  &Mesh{Vertices: []model3d.Coord3D{}, Triangles: [][3]int{}},
	}

	b.top()
	b.base()
	b.walls()
	b.dropDegenerate()

	return b.mesh
}

// vertex returns the index for (layer, row, col), adding it if new
func (b *meshBuilder) vertex(layer uint32, row, col int) int {
	key := encoding.VertexKey(layer, uint16(row), uint16(col))
	i, ok := b.index[key]
	if ok {
		return i
	}

	z := 0.0
	if layer == layerTop {
		h := b.g.At(row, col)
		if b.cfg.Invert {
			z = b.cfg.BaseThicknessMM - h*b.cfg.MaxReliefHeightMM
		} else {
			z = b.cfg.BaseThicknessMM + h*b.cfg.MaxReliefHeightMM
		}
	}

	i = len(b.mesh.Vertices)
	b.mesh.Vertices = append(b.mesh.Vertices, model3d.XYZ(float64(col)*b.px, float64(row)*b.py, z))
	b.index[key] = i
	return i
}

// add appends a triangle by vertex index
func (b *meshBuilder) add(v0, v1, v2 int) {
	b.mesh.Triangles = append(b.mesh.Triangles, [3]int{v0, v1, v2})
}

// top builds the relief surface, two triangles per cell quad
func (b *meshBuilder) top() {
	for row := 0; row < b.g.Rows()-1; row++ {
		for col := 0; col < b.g.Cols()-1; col++ {
			v0 := b.vertex(layerTop, row, col)
			v1 := b.vertex(layerTop, row, col+1)
			v2 := b.vertex(layerTop, row+1, col)
			v3 := b.vertex(layerTop, row+1, col+1)
			b.add(v0, v1, v2)
			b.add(v1, v3, v2)
		}
	}
}

// base builds the flat underside at z=0, winding reversed so the
// normals face down
func (b *meshBuilder) base() {
	for row := 0; row < b.g.Rows()-1; row++ {
		for col := 0; col < b.g.Cols()-1; col++ {
			v0 := b.vertex(layerBase, row, col)
			v1 := b.vertex(layerBase, row, col+1)
			v2 := b.vertex(layerBase, row+1, col)
			v3 := b.vertex(layerBase, row+1, col+1)
			b.add(v0, v2, v1)
			b.add(v1, v2, v3)
		}
	}
}

// walls connects the four top boundary strips to their base counterparts.
// Each quad is wound so its top edge runs opposite the matching boundary
// edge of the relief surface, closing the shell.
func (b *meshBuilder) walls() {
	rows, cols := b.g.Rows(), b.g.Cols()

	for col := 0; col < cols-1; col++ {
		// front wall (row 0), reversed
		b.wall(
			b.vertex(layerTop, 0, col+1), b.vertex(layerTop, 0, col),
			b.vertex(layerBase, 0, col+1), b.vertex(layerBase, 0, col),
		)
		// back wall (row rows-1)
		b.wall(
			b.vertex(layerTop, rows-1, col), b.vertex(layerTop, rows-1, col+1),
			b.vertex(layerBase, rows-1, col), b.vertex(layerBase, rows-1, col+1),
		)
	}

	for row := 0; row < rows-1; row++ {
		// left wall (col 0)
		b.wall(
			b.vertex(layerTop, row, 0), b.vertex(layerTop, row+1, 0),
			b.vertex(layerBase, row, 0), b.vertex(layerBase, row+1, 0),
		)
		// right wall (col cols-1), reversed
		b.wall(
			b.vertex(layerTop, row+1, cols-1), b.vertex(layerTop, row, cols-1),
			b.vertex(layerBase, row+1, cols-1), b.vertex(layerBase, row, cols-1),
		)
	}
}

// wall adds one wall quad; t0->t1 is the outward-consistent top direction
func (b *meshBuilder) wall(t0, t1, b0, b1 int) {
	b.add(t0, t1, b0)
	b.add(t1, b1, b0)
}

// dropDegenerate removes zero-area faces
func (b *meshBuilder) dropDegenerate() {
	for i := 0; i < len(b.mesh.Triangles); i++ {
		t := b.mesh.Triangles[i]
		if t[0] == t[1] || t[1] == t[2] || t[0] == t[2] || b.mesh.triangle3d(i).Area() < degenerateArea {
			essentials.UnorderedDelete(&b.mesh.Triangles, i)
			i--
		}
	}
}

// triangle3d materialises triangle i as a model3d.Triangle
func (m *Mesh) triangle3d(i int) *model3d.Triangle {
	t := m.Triangles[i]
	return &model3d.Triangle{m.Vertices[t[0]], m.Vertices[t[1]], m.Vertices[t[2]]}
}

// Watertight reports whether the mesh forms a single closed 2-manifold
// shell: every directed edge must be matched by exactly one edge in the
// opposite direction. We report, we don't repair - slicers can often fix
// minor defects themselves.
func (m *Mesh) Watertight() bool {
	count := map[[2]int]int{}
	for _, t := range m.Triangles {
		for i := 0; i < 3; i++ {
			count[[2]int{t[i], t[(i+1)%3]}]++
		}
	}

	for e, n := range count {
		if n != 1 {
			return false
		}
		if count[[2]int{e[1], e[0]}] != 1 {
			return false
		}
	}
	return len(count) > 0
}

// Volume returns the enclosed volume in mm^3, summing signed tetrahedra
// against the origin
func (m *Mesh) Volume() float64 {
	total := 0.0
	for _, t := range m.Triangles {
		a := m.Vertices[t[0]]
		b := m.Vertices[t[1]]
		c := m.Vertices[t[2]]
		total += a.Dot(b.Cross(c)) / 6
	}
	return math.Abs(total)
}

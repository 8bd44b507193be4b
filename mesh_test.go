package maprelief

import (
	"math"
	"testing"

	"github.com/voidshard/maprelief/internal/grid"
)

// bumpyGrid returns a deterministic non-flat heightmap in [0, 1]
func bumpyGrid(rows, cols int) *grid.Grid {
	g := grid.New(rows, cols)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			g.Set(row, col, 0.5+0.5*math.Sin(float64(row*cols+col)))
		}
	}
	return g
}

func meshSettings() *Settings {
	cfg := DefaultSettings()
	cfg.WidthMM = 100
	cfg.HeightMM = 50
	cfg.BaseThicknessMM = 2.0
	cfg.MaxReliefHeightMM = 1.5
	return cfg
}

func TestMeshTriangleAndVertexCounts(t *testing.T) {
	rows, cols := 4, 5
	m := buildMesh(bumpyGrid(rows, cols), meshSettings())

	// two layers of rows*cols corner vertices
	if len(m.Vertices) != 2*rows*cols {
		t.Errorf("expected %d vertices, got %d", 2*rows*cols, len(m.Vertices))
	}
	// 2 triangles per cell for top & base plus 2 per boundary edge
	want := 4*(rows-1)*(cols-1) + 4*(rows-1) + 4*(cols-1)
	if len(m.Triangles) != want {
		t.Errorf("expected %d triangles, got %d", want, len(m.Triangles))
	}
}

func TestMeshWatertight(t *testing.T) {
	m := buildMesh(bumpyGrid(12, 9), meshSettings())
	if !m.Watertight() {
		t.Error("relief mesh is not a closed shell")
	}

	m.Triangles = m.Triangles[1:]
	if m.Watertight() {
		t.Error("mesh with a missing face reported watertight")
	}
}

func TestEmptyMeshNotWatertight(t *testing.T) {
	m := &Mesh{}
	if m.Watertight() {
		t.Error("empty mesh reported watertight")
	}
}

func TestFlatPlateVolume(t *testing.T) {
	cfg := meshSettings()
	m := buildMesh(grid.New(20, 30), cfg)

	want := cfg.WidthMM * cfg.HeightMM * cfg.BaseThicknessMM
	if got := m.Volume(); math.Abs(got-want) > 1e-6 {
		t.Errorf("expected plate volume %v, got %v", want, got)
	}
}

func TestReliefAddsVolume(t *testing.T) {
	cfg := meshSettings()
	flat := buildMesh(grid.New(10, 10), cfg).Volume()
	bumpy := buildMesh(bumpyGrid(10, 10), cfg).Volume()
	if bumpy <= flat {
		t.Errorf("relief should add volume: flat %v, bumpy %v", flat, bumpy)
	}
}

func TestInvertMirrorsTopSurface(t *testing.T) {
	cfg := meshSettings()
	normal := buildMesh(bumpyGrid(6, 6), cfg)

	cfg.Invert = true
	inverted := buildMesh(bumpyGrid(6, 6), cfg)

	// vertices are emitted in the same order either way; top vertices
	// mirror about the plate surface, base vertices stay at z=0
	for i := range normal.Vertices {
		zn, zi := normal.Vertices[i].Z, inverted.Vertices[i].Z
		if zn == 0 && zi == 0 {
			continue
		}
		if math.Abs(zn+zi-2*cfg.BaseThicknessMM) > 1e-9 {
			t.Fatalf("vertex %d: %v and %v do not mirror about the plate", i, zn, zi)
		}
	}

	if !inverted.Watertight() {
		t.Error("inverted mesh is not a closed shell")
	}
}

func TestMeshDropsDegenerateFaces(t *testing.T) {
	m := buildMesh(bumpyGrid(5, 5), meshSettings())
	for i := range m.Triangles {
		if m.triangle3d(i).Area() < degenerateArea {
			t.Errorf("triangle %d is degenerate", i)
		}
	}
}

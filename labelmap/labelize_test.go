// File: labelmap/labelize_test.go
package labelmap

import (
	"testing"

	"github.com/morpho-go/morpho/raster"
)

// fromRows builds a uint8 raster from 2D rows (rows[y][x], 255 = foreground).
func fromRows(t *testing.T, rows [][]uint8) *raster.Raster[uint8] {
	t.Helper()
	ny, nx := len(rows), len(rows[0])
	pix := make([]uint8, 0, nx*ny)
	for _, row := range rows {
		pix = append(pix, row...)
	}
	g, err := raster.Geom2D(nx, ny)
	if err != nil {
		t.Fatalf("Geom2D failed: %v", err)
	}
	r, err := raster.FromSlice(g, pix)
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	return r
}

// TestLabelize_SimpleFace labels a 4×3 grid under face connectivity.
//
// Grid (255 = foreground, 0 = background):
//
//	0 255 255   0
//	255 255   0   0
//	0   0 255 255
//
// Expected: 2 components of sizes 4 and 2, labeled in scan order.
func TestLabelize_SimpleFace(t *testing.T) {
	r := fromRows(t, [][]uint8{
		{0, 255, 255, 0},
		{255, 255, 0, 0},
		{0, 0, 255, 255},
	})
	m, err := Labelize[uint8, bool](r, 255, raster.Face)
	if err != nil {
		t.Fatalf("Labelize failed: %v", err)
	}
	if m.Len() != 2 {
		t.Fatalf("got %d components; want 2", m.Len())
	}
	objs := m.Objects()
	if objs[0].Label != 1 || objs[1].Label != 2 {
		t.Errorf("labels = %d,%d; want 1,2", objs[0].Label, objs[1].Label)
	}
	if objs[0].Size() != 4 || objs[1].Size() != 2 {
		t.Errorf("sizes = %d,%d; want 4,2", objs[0].Size(), objs[1].Size())
	}
	if objs[0].Attribute || objs[1].Attribute {
		t.Error("attributes must initialize to the zero value")
	}
}

// TestLabelize_DiagonalConnectivity checks the face/full split on a
// checkerboard diagonal: one component under Full, nine singletons
// under Face.
//
// Grid:
//
//	255   0   0   0 255
//	0 255   0 255   0
//	0   0 255   0   0
//	0 255   0 255   0
//	255   0   0   0 255
func TestLabelize_DiagonalConnectivity(t *testing.T) {
	rows := [][]uint8{
		{255, 0, 0, 0, 255},
		{0, 255, 0, 255, 0},
		{0, 0, 255, 0, 0},
		{0, 255, 0, 255, 0},
		{255, 0, 0, 0, 255},
	}
	full, err := Labelize[uint8, bool](fromRows(t, rows), 255, raster.Full)
	if err != nil {
		t.Fatalf("Labelize(Full) failed: %v", err)
	}
	if full.Len() != 1 {
		t.Fatalf("Full: got %d components; want 1", full.Len())
	}
	if full.Objects()[0].Size() != 9 {
		t.Errorf("Full: component size = %d; want 9", full.Objects()[0].Size())
	}

	face, err := Labelize[uint8, bool](fromRows(t, rows), 255, raster.Face)
	if err != nil {
		t.Fatalf("Labelize(Face) failed: %v", err)
	}
	if face.Len() != 9 {
		t.Errorf("Face: got %d components; want 9", face.Len())
	}
}

// TestLabelize_UnionCollision exercises provisional-label merging: the
// two prongs of a U acquire distinct provisional labels that meet in
// the bottom row and must reconcile into one component.
func TestLabelize_UnionCollision(t *testing.T) {
	r := fromRows(t, [][]uint8{
		{255, 0, 255},
		{255, 0, 255},
		{255, 255, 255},
	})
	m, err := Labelize[uint8, bool](r, 255, raster.Face)
	if err != nil {
		t.Fatalf("Labelize failed: %v", err)
	}
	if m.Len() != 1 {
		t.Fatalf("got %d components; want 1", m.Len())
	}
	if got := m.Objects()[0].Size(); got != 7 {
		t.Errorf("component size = %d; want 7", got)
	}
}

// TestLabelize_EmptyForeground covers the zero-foreground-pixel case:
// an empty map, no error.
func TestLabelize_EmptyForeground(t *testing.T) {
	r := fromRows(t, [][]uint8{
		{0, 0},
		{0, 0},
	})
	m, err := Labelize[uint8, bool](r, 255, raster.Face)
	if err != nil {
		t.Fatalf("Labelize failed: %v", err)
	}
	if m.Len() != 0 {
		t.Errorf("got %d components; want 0", m.Len())
	}
}

// TestLabelize_NilRaster covers the nil guard.
func TestLabelize_NilRaster(t *testing.T) {
	if _, err := Labelize[uint8, bool](nil, 255, raster.Face); err != ErrNilRaster {
		t.Errorf("got %v; want ErrNilRaster", err)
	}
}

// TestLabelize_RunsStayInRow verifies runs never cross an axis-0 row
// boundary even when foreground spans whole rows.
func TestLabelize_RunsStayInRow(t *testing.T) {
	r := fromRows(t, [][]uint8{
		{255, 255, 255},
		{255, 255, 255},
	})
	m, err := Labelize[uint8, bool](r, 255, raster.Face)
	if err != nil {
		t.Fatalf("Labelize failed: %v", err)
	}
	if m.Len() != 1 {
		t.Fatalf("got %d components; want 1", m.Len())
	}
	obj := m.Objects()[0]
	if len(obj.Runs) != 2 {
		t.Fatalf("got %d runs; want 2 (one per row)", len(obj.Runs))
	}
	for _, run := range obj.Runs {
		row := run.Start / 3
		if (run.Start+run.Length-1)/3 != row {
			t.Errorf("run %+v crosses a row boundary", run)
		}
	}
}

// TestLabelize_3DFaceVsFull labels a 2×2×2 volume holding two voxels
// that touch only through a shared vertex: separate under Face, one
// component under Full.
func TestLabelize_3DFaceVsFull(t *testing.T) {
	g, err := raster.Geom3D(2, 2, 2)
	if err != nil {
		t.Fatalf("Geom3D failed: %v", err)
	}
	pix := make([]uint8, 8)
	pix[g.Offset([]int{0, 0, 0})] = 255
	pix[g.Offset([]int{1, 1, 1})] = 255
	r, err := raster.FromSlice(g, pix)
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	face, err := Labelize[uint8, bool](r, 255, raster.Face)
	if err != nil {
		t.Fatalf("Labelize(Face) failed: %v", err)
	}
	if face.Len() != 2 {
		t.Errorf("Face: got %d components; want 2", face.Len())
	}

	full, err := Labelize[uint8, bool](r, 255, raster.Full)
	if err != nil {
		t.Fatalf("Labelize(Full) failed: %v", err)
	}
	if full.Len() != 1 {
		t.Errorf("Full: got %d components; want 1", full.Len())
	}
}

// TestLabelize_CoversForegroundExactly round-trips through Rasterize:
// labeling then rasterizing with the same value pair must reproduce
// the original binary raster.
func TestLabelize_CoversForegroundExactly(t *testing.T) {
	r := fromRows(t, [][]uint8{
		{255, 0, 0, 255},
		{255, 255, 0, 0},
		{0, 0, 0, 255},
	})
	m, err := Labelize[uint8, bool](r, 255, raster.Face)
	if err != nil {
		t.Fatalf("Labelize failed: %v", err)
	}
	back, err := Rasterize(m, uint8(255), uint8(0))
	if err != nil {
		t.Fatalf("Rasterize failed: %v", err)
	}
	if !r.EqualPixels(back) {
		t.Error("Rasterize(Labelize(r)) must reproduce r")
	}
}

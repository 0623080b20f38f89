package analysis

import (
	"math"
	"testing"

	"github.com/mcanet/stlvolume/pkg/geometry"
	"github.com/mcanet/stlvolume/pkg/stl"
	"gonum.org/v1/gonum/spatial/r3"
)

// cubeModel builds an axis-aligned cube of the given side with outward
// winding, with its minimum corner at offset.
func cubeModel(side float64, offset r3.Vec) *stl.Model {
	p := func(x, y, z float64) r3.Vec {
		return r3.Add(offset, r3.Scale(side, r3.Vec{X: x, Y: y, Z: z}))
	}

	quads := [][4]r3.Vec{
		{p(0, 0, 0), p(0, 1, 0), p(1, 1, 0), p(1, 0, 0)}, // bottom, -Z
		{p(0, 0, 1), p(1, 0, 1), p(1, 1, 1), p(0, 1, 1)}, // top, +Z
		{p(0, 0, 0), p(1, 0, 0), p(1, 0, 1), p(0, 0, 1)}, // front, -Y
		{p(0, 1, 0), p(0, 1, 1), p(1, 1, 1), p(1, 1, 0)}, // back, +Y
		{p(0, 0, 0), p(0, 0, 1), p(0, 1, 1), p(0, 1, 0)}, // left, -X
		{p(1, 0, 0), p(1, 1, 0), p(1, 1, 1), p(1, 0, 1)}, // right, +X
	}

	model := stl.NewModel("cube")
	for _, q := range quads {
		model.AddTriangle(geometry.NewTriangle(r3.Vec{}, q[0], q[1], q[2]))
		model.AddTriangle(geometry.NewTriangle(r3.Vec{}, q[0], q[2], q[3]))
	}
	return model
}

// sphereModel builds a UV sphere of radius r centered at the origin. The
// pole rows produce degenerate triangles, which contribute nothing to
// either sum.
func sphereModel(r float64, stacks, slices int) *stl.Model {
	point := func(i, j int) r3.Vec {
		phi := math.Pi * float64(i) / float64(stacks)
		theta := 2 * math.Pi * float64(j) / float64(slices)
		return r3.Vec{
			X: r * math.Sin(phi) * math.Cos(theta),
			Y: r * math.Sin(phi) * math.Sin(theta),
			Z: r * math.Cos(phi),
		}
	}

	model := stl.NewModel("sphere")
	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			p1 := point(i, j)
			p2 := point(i+1, j)
			p3 := point(i+1, j+1)
			p4 := point(i, j+1)
			model.AddTriangle(geometry.NewTriangle(r3.Vec{}, p1, p2, p3))
			model.AddTriangle(geometry.NewTriangle(r3.Vec{}, p1, p3, p4))
		}
	}
	return model
}

func TestUnitCube(t *testing.T) {
	model := cubeModel(1, r3.Vec{})

	if v := Volume(model); math.Abs(v-1.0) > 1e-10 {
		t.Errorf("Volume failed: expected 1.0, got %v", v)
	}
	if a := SurfaceArea(model); math.Abs(a-6.0) > 1e-10 {
		t.Errorf("SurfaceArea failed: expected 6.0, got %v", a)
	}
}

func TestVolumeTranslationInvariance(t *testing.T) {
	// The origin terms of the signed tetrahedra cancel for a closed mesh,
	// so translating the mesh must not change the volume.
	centered := Volume(cubeModel(2, r3.Vec{}))
	shifted := Volume(cubeModel(2, r3.Vec{X: 137.5, Y: -42.25, Z: 89}))

	if math.Abs(centered-shifted) > 1e-9 {
		t.Errorf("volume changed under translation: %v vs %v", centered, shifted)
	}
}

func TestVolumeAndAreaScaling(t *testing.T) {
	base := cubeModel(1, r3.Vec{})
	scaled := cubeModel(3, r3.Vec{})

	if v := Volume(scaled); math.Abs(v-27*Volume(base)) > 1e-9 {
		t.Errorf("volume should scale by s^3: expected %v, got %v", 27*Volume(base), v)
	}
	if a := SurfaceArea(scaled); math.Abs(a-9*SurfaceArea(base)) > 1e-9 {
		t.Errorf("area should scale by s^2: expected %v, got %v", 9*SurfaceArea(base), a)
	}
}

func TestWindingReversalNegatesSignedVolume(t *testing.T) {
	model := cubeModel(1, r3.Vec{X: 5, Y: 5, Z: 5})

	reversed := stl.NewModel("reversed")
	for _, tri := range model.Triangles {
		reversed.AddTriangle(tri.Reversed())
	}

	forward := SignedVolume(model)
	backward := SignedVolume(reversed)

	if math.Abs(forward+backward) > 1e-9 {
		t.Errorf("reversed winding should negate signed volume: %v vs %v", forward, backward)
	}
	if math.Abs(Volume(model)-Volume(reversed)) > 1e-9 {
		t.Errorf("reported volume must be winding independent: %v vs %v", Volume(model), Volume(reversed))
	}
}

func TestEmptyMesh(t *testing.T) {
	model := stl.NewModel("empty")

	if v := Volume(model); v != 0 {
		t.Errorf("Volume of empty mesh: expected 0, got %v", v)
	}
	if a := SurfaceArea(model); a != 0 {
		t.Errorf("SurfaceArea of empty mesh: expected 0, got %v", a)
	}
	if _, ok := BoundingBox(model); ok {
		t.Error("BoundingBox of empty mesh should be absent")
	}
}

func TestDegenerateTrianglesContributeNothing(t *testing.T) {
	model := cubeModel(1, r3.Vec{})
	model.AddTriangle(geometry.NewTriangle(
		r3.Vec{},
		r3.Vec{X: 1, Y: 2, Z: 3},
		r3.Vec{X: 1, Y: 2, Z: 3},
		r3.Vec{X: 1, Y: 2, Z: 3},
	))

	if v := Volume(model); math.Abs(v-1.0) > 1e-10 {
		t.Errorf("Volume failed: expected 1.0, got %v", v)
	}
	if a := SurfaceArea(model); math.Abs(a-6.0) > 1e-10 {
		t.Errorf("SurfaceArea failed: expected 6.0, got %v", a)
	}
}

func TestBoundingBox(t *testing.T) {
	model := cubeModel(2, r3.Vec{X: -1, Y: -1, Z: -1})

	bbox, ok := BoundingBox(model)
	if !ok {
		t.Fatal("BoundingBox should be defined for a non-empty mesh")
	}

	expectedMin := r3.Vec{X: -1, Y: -1, Z: -1}
	expectedMax := r3.Vec{X: 1, Y: 1, Z: 1}
	if bbox.Min != expectedMin {
		t.Errorf("Min failed: expected %v, got %v", expectedMin, bbox.Min)
	}
	if bbox.Max != expectedMax {
		t.Errorf("Max failed: expected %v, got %v", expectedMax, bbox.Max)
	}
}

func TestSphereConvergence(t *testing.T) {
	const radius = 10.0
	wantVolume := 4.0 / 3.0 * math.Pi * radius * radius * radius
	wantArea := 4.0 * math.Pi * radius * radius

	coarse := sphereModel(radius, 24, 48)
	fine := sphereModel(radius, 96, 192)

	coarseVolErr := math.Abs(Volume(coarse)-wantVolume) / wantVolume
	fineVolErr := math.Abs(Volume(fine)-wantVolume) / wantVolume
	if fineVolErr > 1e-3 {
		t.Errorf("fine sphere volume error too large: %v", fineVolErr)
	}
	if fineVolErr >= coarseVolErr {
		t.Errorf("volume error should shrink with refinement: coarse %v, fine %v", coarseVolErr, fineVolErr)
	}

	coarseAreaErr := math.Abs(SurfaceArea(coarse)-wantArea) / wantArea
	fineAreaErr := math.Abs(SurfaceArea(fine)-wantArea) / wantArea
	if fineAreaErr > 1e-3 {
		t.Errorf("fine sphere area error too large: %v", fineAreaErr)
	}
	if fineAreaErr >= coarseAreaErr {
		t.Errorf("area error should shrink with refinement: coarse %v, fine %v", coarseAreaErr, fineAreaErr)
	}
}

func TestAnalyzeReport(t *testing.T) {
	// A 10 mm cube: 1 cm³ volume, 6 cm² area, 1 cm sides.
	model := cubeModel(10, r3.Vec{})
	report := Analyze(model, Centimeter)

	if report.TriangleCount != 12 {
		t.Errorf("TriangleCount: expected 12, got %d", report.TriangleCount)
	}
	if math.Abs(report.Volume-1.0) > 1e-10 {
		t.Errorf("Volume: expected 1.0 cm³, got %v", report.Volume)
	}
	if math.Abs(report.SurfaceArea-6.0) > 1e-10 {
		t.Errorf("SurfaceArea: expected 6.0 cm², got %v", report.SurfaceArea)
	}
	if report.BoundingBox == nil {
		t.Fatal("BoundingBox should be present")
	}
	if math.Abs(report.BoundingBox.Width-1.0) > 1e-10 {
		t.Errorf("Width: expected 1.0 cm, got %v", report.BoundingBox.Width)
	}
}

func TestAnalyzeEmptyMesh(t *testing.T) {
	report := Analyze(stl.NewModel("empty"), Centimeter)

	if report.Volume != 0 || report.SurfaceArea != 0 {
		t.Errorf("empty mesh: expected zero volume and area, got %v and %v", report.Volume, report.SurfaceArea)
	}
	if report.BoundingBox != nil {
		t.Error("empty mesh: bounding box should be absent, not zero")
	}
}

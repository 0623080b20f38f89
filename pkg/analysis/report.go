package analysis

import (
	"github.com/mcanet/stlvolume/pkg/mass"
	"github.com/mcanet/stlvolume/pkg/stl"
)

// BoxReport is the bounding box of a model converted to the report unit.
type BoxReport struct {
	Min    [3]float64 `json:"min"`
	Max    [3]float64 `json:"max"`
	Width  float64    `json:"width"`
	Depth  float64    `json:"depth"`
	Height float64    `json:"height"`
}

// Report is the complete result of analyzing one model. It is created once
// per invocation, fully populated, and never mutated afterwards. A nil
// BoundingBox means the mesh was empty and no box is defined; zero volume
// and area on an empty mesh are valid results, not failures.
type Report struct {
	File          string          `json:"file,omitempty"`
	FileSizeBytes int64           `json:"file_size_bytes,omitempty"`
	TriangleCount int             `json:"triangle_count"`
	Unit          Unit            `json:"unit"`
	BoundingBox   *BoxReport      `json:"bounding_box,omitempty"`
	SurfaceArea   float64         `json:"surface_area"`
	Volume        float64         `json:"volume"`
	MassEstimates []mass.Estimate `json:"mass_estimates,omitempty"`
	Warnings      []string        `json:"warnings,omitempty"`
}

// Analyze computes the geometric part of the report for a model, with
// volume, area and box dimensions converted to the requested unit. Mass
// estimates and file metadata are filled in by the caller.
func Analyze(m *stl.Model, unit Unit) *Report {
	report := &Report{
		TriangleCount: m.TriangleCount(),
		Unit:          unit,
		SurfaceArea:   unit.AreaFromMM2(SurfaceArea(m)),
		Volume:        unit.VolumeFromMM3(Volume(m)),
	}

	if bbox, ok := BoundingBox(m); ok {
		size := bbox.Size()
		report.BoundingBox = &BoxReport{
			Min: [3]float64{
				unit.LengthFromMM(bbox.Min.X),
				unit.LengthFromMM(bbox.Min.Y),
				unit.LengthFromMM(bbox.Min.Z),
			},
			Max: [3]float64{
				unit.LengthFromMM(bbox.Max.X),
				unit.LengthFromMM(bbox.Max.Y),
				unit.LengthFromMM(bbox.Max.Z),
			},
			Width:  unit.LengthFromMM(size.X),
			Depth:  unit.LengthFromMM(size.Y),
			Height: unit.LengthFromMM(size.Z),
		}
	}

	return report
}

// Package mass estimates the printed mass of a model from its volume, a
// material density and an infill fraction.
//
// The infill model is deliberately simple: the solid-equivalent volume at
// infill fraction f is volume × f. This ignores shell and wall geometry
// entirely, so real prints with thick perimeters weigh more than estimated
// at low infill.
package mass

import (
	"fmt"

	"github.com/mcanet/stlvolume/pkg/materials"
)

// Estimate is one mass figure for a material at an infill fraction.
type Estimate struct {
	Material       materials.Material `json:"material"`
	InfillFraction float64            `json:"infill_fraction"`
	MassGrams      float64            `json:"mass_g"`
}

// InvalidInfillError reports an infill fraction outside (0, 1].
type InvalidInfillError struct {
	Fraction float64
}

func (e *InvalidInfillError) Error() string {
	return fmt.Sprintf("invalid infill fraction %g: must be greater than 0 and at most 1", e.Fraction)
}

// Estimator computes mass estimates against an explicitly injected material
// catalog. There is no package-level catalog state.
type Estimator struct {
	catalog *materials.Catalog
}

// NewEstimator creates an estimator over the given catalog.
func NewEstimator(catalog *materials.Catalog) *Estimator {
	return &Estimator{catalog: catalog}
}

// Estimate returns the mass in grams for a volume in cubic centimeters,
// a material (by ID or name) and an infill fraction in (0, 1]. The infill
// is validated before any lookup or computation.
func (e *Estimator) Estimate(volumeCM3 float64, idOrName string, infill float64) (Estimate, error) {
	if infill <= 0 || infill > 1 {
		return Estimate{}, &InvalidInfillError{Fraction: infill}
	}
	material, err := e.catalog.Lookup(idOrName)
	if err != nil {
		return Estimate{}, err
	}
	return Estimate{
		Material:       material,
		InfillFraction: infill,
		MassGrams:      volumeCM3 * infill * material.Density,
	}, nil
}

// EstimateWithSolid returns the estimate at the requested infill together
// with an independent estimate at 100% infill for comparison. The two are
// separate pure computations over the same volume.
func (e *Estimator) EstimateWithSolid(volumeCM3 float64, idOrName string, infill float64) (atInfill, solid Estimate, err error) {
	atInfill, err = e.Estimate(volumeCM3, idOrName, infill)
	if err != nil {
		return Estimate{}, Estimate{}, err
	}
	solid, err = e.Estimate(volumeCM3, idOrName, 1.0)
	if err != nil {
		return Estimate{}, Estimate{}, err
	}
	return atInfill, solid, nil
}

// EstimateAll returns one estimate per catalog material at the given infill,
// in catalog order.
func (e *Estimator) EstimateAll(volumeCM3 float64, infill float64) ([]Estimate, error) {
	if infill <= 0 || infill > 1 {
		return nil, &InvalidInfillError{Fraction: infill}
	}
	all := e.catalog.All()
	estimates := make([]Estimate, 0, len(all))
	for _, m := range all {
		estimates = append(estimates, Estimate{
			Material:       m,
			InfillFraction: infill,
			MassGrams:      volumeCM3 * infill * m.Density,
		})
	}
	return estimates, nil
}

package mass

import (
	"errors"
	"math"
	"testing"

	"github.com/mcanet/stlvolume/pkg/materials"
)

func TestEstimate(t *testing.T) {
	estimator := NewEstimator(materials.Default())

	// 10 cm³ of PLA (1.25 g/cm³) at 20% infill weighs 2.5 g.
	estimate, err := estimator.Estimate(10, "PLA", 0.2)
	if err != nil {
		t.Fatalf("Estimate failed: %v", err)
	}
	if math.Abs(estimate.MassGrams-2.5) > 1e-10 {
		t.Errorf("MassGrams: expected 2.5, got %v", estimate.MassGrams)
	}
	if estimate.Material.Name != "PLA" {
		t.Errorf("Material: expected PLA, got %s", estimate.Material.Name)
	}
	if estimate.InfillFraction != 0.2 {
		t.Errorf("InfillFraction: expected 0.2, got %v", estimate.InfillFraction)
	}
}

func TestEstimateWithSolid(t *testing.T) {
	estimator := NewEstimator(materials.Default())

	atInfill, solid, err := estimator.EstimateWithSolid(10, "PLA", 0.2)
	if err != nil {
		t.Fatalf("EstimateWithSolid failed: %v", err)
	}
	if math.Abs(atInfill.MassGrams-2.5) > 1e-10 {
		t.Errorf("infill mass: expected 2.5, got %v", atInfill.MassGrams)
	}
	if math.Abs(solid.MassGrams-12.5) > 1e-10 {
		t.Errorf("solid mass: expected 12.5, got %v", solid.MassGrams)
	}
	if solid.InfillFraction != 1.0 {
		t.Errorf("solid InfillFraction: expected 1.0, got %v", solid.InfillFraction)
	}
}

func TestEstimateInvalidInfill(t *testing.T) {
	estimator := NewEstimator(materials.Default())

	for _, infill := range []float64{0, -0.5, 1.2} {
		_, err := estimator.Estimate(10, "PLA", infill)
		var invalid *InvalidInfillError
		if !errors.As(err, &invalid) {
			t.Errorf("infill %v: expected *InvalidInfillError, got %v", infill, err)
			continue
		}
		if invalid.Fraction != infill {
			t.Errorf("Fraction: expected %v, got %v", infill, invalid.Fraction)
		}
	}

	// Exactly 1.0 is valid.
	if _, err := estimator.Estimate(10, "PLA", 1.0); err != nil {
		t.Errorf("infill 1.0 should be valid: %v", err)
	}
}

func TestEstimateUnknownMaterial(t *testing.T) {
	estimator := NewEstimator(materials.Default())

	_, err := estimator.Estimate(10, "unobtainium", 0.5)
	var unknown *materials.UnknownMaterialError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected *UnknownMaterialError, got %v", err)
	}
}

func TestEstimateAll(t *testing.T) {
	estimator := NewEstimator(materials.Default())

	estimates, err := estimator.EstimateAll(10, 1.0)
	if err != nil {
		t.Fatalf("EstimateAll failed: %v", err)
	}
	if len(estimates) != 21 {
		t.Fatalf("expected 21 estimates, got %d", len(estimates))
	}
	if math.Abs(estimates[0].MassGrams-12.5) > 1e-10 {
		t.Errorf("PLA mass: expected 12.5, got %v", estimates[0].MassGrams)
	}

	if _, err := estimator.EstimateAll(10, 0); err == nil {
		t.Error("EstimateAll with zero infill should fail")
	}
}

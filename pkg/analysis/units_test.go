package analysis

import (
	"math"
	"testing"
)

func TestUnitConversions(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"mm3 to cm3", Centimeter.VolumeFromMM3(1000), 1.0},
		{"mm3 to inch3", Inch.VolumeFromMM3(1000), 0.0610237441},
		{"mm2 to cm2", Centimeter.AreaFromMM2(100), 1.0},
		{"mm2 to inch2", Inch.AreaFromMM2(100), 0.1550031},
		{"mm to cm", Centimeter.LengthFromMM(10), 1.0},
		{"mm to inch", Inch.LengthFromMM(25.4), 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if math.Abs(tt.got-tt.want) > 1e-9 {
				t.Errorf("expected %v, got %v", tt.want, tt.got)
			}
		})
	}
}

func TestParseUnit(t *testing.T) {
	if u, err := ParseUnit("cm"); err != nil || u != Centimeter {
		t.Errorf("ParseUnit(cm) failed: %v, %v", u, err)
	}
	if u, err := ParseUnit("inch"); err != nil || u != Inch {
		t.Errorf("ParseUnit(inch) failed: %v, %v", u, err)
	}
	if _, err := ParseUnit("furlong"); err == nil {
		t.Error("ParseUnit(furlong) should fail")
	}
}

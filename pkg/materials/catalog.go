// Package materials provides the built-in table of 3D printing materials
// and their densities.
package materials

import (
	"fmt"
	"strconv"
	"strings"
)

// Material describes one printable material.
type Material struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Density float64 `json:"density_g_cm3"` // grams per cubic centimeter
}

// Catalog is an immutable material lookup table. It is constructed once per
// invocation and never mutated, so it is safe to share without locking.
type Catalog struct {
	materials []Material
}

// Default returns the built-in catalog, ordered from more to less common.
func Default() *Catalog {
	return &Catalog{materials: []Material{
		{1, "PLA", 1.25},
		{2, "PETG", 1.27},
		{3, "ABS", 1.02},
		{4, "Resin", 1.2},
		{5, "TPU (Rubber-like)", 1.2},
		{6, "Polyamide_SLS", 0.95},
		{7, "Polyamide_MJF", 1.01},
		{8, "Plexiglass", 1.18},
		{9, "Alumide", 1.36},
		{10, "Carbon Steel", 7.80},
		{11, "Steel", 7.86},
		{12, "Aluminum", 2.698},
		{13, "Titanium", 4.41},
		{14, "Brass", 8.6},
		{15, "Bronze", 9.0},
		{16, "Copper", 9.0},
		{17, "Silver", 10.26},
		{18, "Gold_14K", 13.6},
		{19, "Gold_18K", 15.6},
		{20, "3k CFRP", 1.79},
		{21, "Red Oak", 5.70},
	}}
}

// All returns the materials in catalog order. The returned slice is a copy.
func (c *Catalog) All() []Material {
	out := make([]Material, len(c.materials))
	copy(out, c.materials)
	return out
}

// Lookup resolves a material by numeric ID or by case-insensitive name.
// The key is normalized once; resolution failure is a typed error, never a
// panic or a sentinel value.
func (c *Catalog) Lookup(idOrName string) (Material, error) {
	key := strings.TrimSpace(idOrName)

	if id, err := strconv.Atoi(key); err == nil {
		for _, m := range c.materials {
			if m.ID == id {
				return m, nil
			}
		}
		return Material{}, &UnknownMaterialError{Key: key, Valid: c.names()}
	}

	for _, m := range c.materials {
		if strings.EqualFold(m.Name, key) {
			return m, nil
		}
	}
	return Material{}, &UnknownMaterialError{Key: key, Valid: c.names()}
}

func (c *Catalog) names() []string {
	names := make([]string, len(c.materials))
	for i, m := range c.materials {
		names[i] = m.Name
	}
	return names
}

// UnknownMaterialError reports a lookup key that matched no material.
type UnknownMaterialError struct {
	Key   string
	Valid []string
}

func (e *UnknownMaterialError) Error() string {
	return fmt.Sprintf("unknown material %q: valid materials are %s",
		e.Key, strings.Join(e.Valid, ", "))
}

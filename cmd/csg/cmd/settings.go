package cmd

import (
	csg "github.com/arl/go-csg"
)

// Settings controls how the csg tool loads meshes and where it cuts them.
type Settings struct {
	// Scale factor applied to every mesh at load time.
	Scale float64 `yaml:"scale"`

	// Cutting plane used by the clip command: normal (x, y, z), normalized
	// on use, and signed distance w of the plane from the origin.
	Plane PlaneSettings `yaml:"plane"`

	// Cap the clip cross-section with polygons tagged FillMaterial.
	Fill         bool   `yaml:"fill"`
	FillMaterial string `yaml:"fillMaterial"`
}

// PlaneSettings is the YAML form of a cutting plane.
type PlaneSettings struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
	W float64 `yaml:"w"`
}

// DefaultSettings returns a Settings struct filled with default values:
// unit scale and a filled cut along the xy-plane through the origin.
func DefaultSettings() Settings {
	return Settings{
		Scale: 1.0,
		Plane: PlaneSettings{
			Z: 1.0,
		},
		Fill:         true,
		FillMaterial: "cut",
	}
}

// plane converts the YAML form into a csg cutting plane.
func (s Settings) plane() csg.Plane {
	return csg.NewPlane(csg.NewVector(s.Plane.X, s.Plane.Y, s.Plane.Z), s.Plane.W)
}

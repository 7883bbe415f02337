// Package resort provides the static catalog of candidate ski areas and
// their physical attributes used by the scoring engine.
package resort

import "errors"

// Registry errors.
var (
	ErrResortNotFound = errors.New("resort not found")
	ErrDuplicateID    = errors.New("duplicate resort id")
	ErrInvalidResort  = errors.New("invalid resort definition")
)

// Aspect is the dominant slope orientation of a resort.
type Aspect string

const (
	AspectSouth Aspect = "south"
	AspectNorth Aspect = "north"
)

// Resort describes one ski area. All fields are fixed at registration time
// and never mutated.
type Resort struct {
	// ID is the short, stable identifier ("Corviglia", "Parsenn").
	ID string `yaml:"id"`

	// Name is the full display name.
	Name string `yaml:"name"`

	// Emoji is the display glyph used in reports.
	Emoji string `yaml:"emoji"`

	// Region groups resorts for per-region picks ("Engadin", "Davos").
	Region string `yaml:"region"`

	// Lat/Lon are the forecast query coordinates.
	Lat float64 `yaml:"lat"`
	Lon float64 `yaml:"lon"`

	// ElevationM is the reference elevation in meters, compared against
	// the freezing-level altitude during scoring.
	ElevationM float64 `yaml:"elevation_m"`

	// Aspect is the dominant slope orientation.
	Aspect Aspect `yaml:"aspect"`

	// WindExposure is a terrain amplification multiplier applied to raw
	// wind and gust readings. 1.0 = baseline, >1 = more exposed.
	WindExposure float64 `yaml:"wind_exposure"`
}

// EffectiveGust returns the gust speed adjusted for local terrain exposure.
func (r Resort) EffectiveGust(rawGust float64) float64 {
	return rawGust * r.WindExposure
}

// EffectiveWind returns the sustained wind adjusted for local terrain exposure.
func (r Resort) EffectiveWind(rawWind float64) float64 {
	return rawWind * r.WindExposure
}

// validate checks a single resort definition.
func (r Resort) validate() error {
	if r.ID == "" || r.Region == "" {
		return ErrInvalidResort
	}
	if r.Aspect != AspectSouth && r.Aspect != AspectNorth {
		return ErrInvalidResort
	}
	if r.WindExposure < 0 {
		return ErrInvalidResort
	}
	return nil
}

// Registry is a read-only, ordered catalog of resorts. Iteration order is
// registration order, which also defines ranking tie-break order.
type Registry struct {
	resorts []Resort
	byID    map[string]int
}

// NewRegistry builds a registry from the given resorts, preserving order.
func NewRegistry(resorts []Resort) (*Registry, error) {
	reg := &Registry{
		resorts: make([]Resort, 0, len(resorts)),
		byID:    make(map[string]int, len(resorts)),
	}
	for _, r := range resorts {
		if err := r.validate(); err != nil {
			return nil, err
		}
		if _, exists := reg.byID[r.ID]; exists {
			return nil, ErrDuplicateID
		}
		reg.byID[r.ID] = len(reg.resorts)
		reg.resorts = append(reg.resorts, r)
	}
	return reg, nil
}

// All returns the resorts in registration order. The returned slice is a
// copy; mutating it does not affect the registry.
func (g *Registry) All() []Resort {
	out := make([]Resort, len(g.resorts))
	copy(out, g.resorts)
	return out
}

// Get returns the resort with the given ID.
func (g *Registry) Get(id string) (Resort, error) {
	i, ok := g.byID[id]
	if !ok {
		return Resort{}, ErrResortNotFound
	}
	return g.resorts[i], nil
}

// Len returns the number of registered resorts.
func (g *Registry) Len() int {
	return len(g.resorts)
}

// Regions returns the distinct region tags in first-seen order.
func (g *Registry) Regions() []string {
	seen := make(map[string]bool)
	var regions []string
	for _, r := range g.resorts {
		if !seen[r.Region] {
			seen[r.Region] = true
			regions = append(regions, r.Region)
		}
	}
	return regions
}

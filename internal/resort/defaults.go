package resort

// DefaultResorts returns the built-in Graubünden catalog: the Engadin /
// St. Moritz area and the Davos / Klosters area, in registration order.
// Aspect and wind exposure are approximations; tweak if picks feel off.
func DefaultResorts() []Resort {
	return []Resort{
		{
			ID:           "Corviglia",
			Name:         "Corviglia (St. Moritz)",
			Emoji:        "⛷️",
			Region:       "Engadin",
			Lat:          46.5079,
			Lon:          9.8192,
			ElevationM:   2486,
			Aspect:       AspectSouth,
			WindExposure: 0.85,
		},
		{
			ID:           "Corvatsch",
			Name:         "Corvatsch 3303",
			Emoji:        "🏔️",
			Region:       "Engadin",
			Lat:          46.4179,
			Lon:          9.8212,
			ElevationM:   3303,
			Aspect:       AspectNorth,
			WindExposure: 1.25,
		},
		{
			ID:           "Diavolezza",
			Name:         "Diavolezza",
			Emoji:        "🧊",
			Region:       "Engadin",
			Lat:          46.4073,
			Lon:          9.9593,
			ElevationM:   2978,
			Aspect:       AspectNorth,
			WindExposure: 1.30,
		},
		{
			ID:           "Zuoz",
			Name:         "Zuoz (Pizzet/Albanas)",
			Emoji:        "🌞",
			Region:       "Engadin",
			Lat:          46.6029,
			Lon:          9.9600,
			ElevationM:   2465,
			Aspect:       AspectSouth,
			WindExposure: 0.90,
		},
		{
			ID:           "Parsenn",
			Name:         "Parsenn (Davos/Klosters)",
			Emoji:        "🚠",
			Region:       "Davos",
			Lat:          46.8400,
			Lon:          9.8100,
			ElevationM:   2817,
			Aspect:       AspectNorth,
			WindExposure: 1.10,
		},
		{
			ID:           "Jakobshorn",
			Name:         "Jakobshorn (Davos Platz)",
			Emoji:        "🏂",
			Region:       "Davos",
			Lat:          46.7724,
			Lon:          9.8494,
			ElevationM:   2590,
			Aspect:       AspectSouth,
			WindExposure: 1.05,
		},
		{
			ID:           "Rinerhorn",
			Name:         "Rinerhorn",
			Emoji:        "👨‍👩‍👧‍👦",
			Region:       "Davos",
			Lat:          46.7394,
			Lon:          9.8141,
			ElevationM:   2528,
			Aspect:       AspectSouth,
			WindExposure: 1.00,
		},
		{
			ID:           "Pischa",
			Name:         "Pischa",
			Emoji:        "🌄",
			Region:       "Davos",
			Lat:          46.8096,
			Lon:          9.9192,
			ElevationM:   2483,
			Aspect:       AspectSouth,
			WindExposure: 1.15,
		},
		{
			ID:           "Madrisa",
			Name:         "Madrisa (Klosters)",
			Emoji:        "🌲",
			Region:       "Davos",
			Lat:          46.9253,
			Lon:          9.8699,
			ElevationM:   2600,
			Aspect:       AspectNorth,
			WindExposure: 1.05,
		},
		{
			ID:           "Schatzalp",
			Name:         "Schatzalp (Strela)",
			Emoji:        "🐢",
			Region:       "Davos",
			Lat:          46.7971,
			Lon:          9.8215,
			ElevationM:   1861,
			Aspect:       AspectSouth,
			WindExposure: 0.80,
		},
	}
}

// DefaultRegistry returns a registry loaded with the built-in catalog.
func DefaultRegistry() *Registry {
	reg, err := NewRegistry(DefaultResorts())
	if err != nil {
		// The built-in catalog is validated by tests; this cannot happen.
		panic(err)
	}
	return reg
}

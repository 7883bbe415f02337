package forecast

// Readings is a fully resolved view of one hourly record: every field has a
// concrete value, with documented fallbacks applied for absent readings.
// Scoring rules read only from Readings, never from the raw record, so the
// fallback policy lives in exactly one place.
type Readings struct {
	Temperature   float64 // °C
	ApparentTemp  float64 // °C, defaults to Temperature
	Precipitation float64 // mm/h
	Snowfall      float64 // mm/h (water equivalent)
	SnowDepth     float64 // m
	CloudCover    float64 // %
	CloudLow      float64 // %
	CloudMid      float64 // %
	Visibility    float64 // m, defaults to 20000
	WindSpeed     float64 // km/h
	WindGusts     float64 // km/h
	FreezingLevel float64 // m AMSL
	Sunshine      float64 // seconds of the hour
	WeatherCode   int     // WMO weather interpretation code
}

// DefaultVisibility is the fallback visibility, in meters, when the reading
// is absent. Treats missing data as clear rather than fogged in.
const DefaultVisibility = 20000

// Resolve applies the per-field fallback policy to a record. Every field
// falls back to 0 except visibility (20000 m) and apparent temperature
// (the record's own temperature).
func Resolve(r Record) Readings {
	temp := r.Value(VarTemperature, 0)
	return Readings{
		Temperature:   temp,
		ApparentTemp:  r.Value(VarApparentTemp, temp),
		Precipitation: r.Value(VarPrecipitation, 0),
		Snowfall:      r.Value(VarSnowfall, 0),
		SnowDepth:     r.Value(VarSnowDepth, 0),
		CloudCover:    r.Value(VarCloudCover, 0),
		CloudLow:      r.Value(VarCloudLow, 0),
		CloudMid:      r.Value(VarCloudMid, 0),
		Visibility:    r.Value(VarVisibility, DefaultVisibility),
		WindSpeed:     r.Value(VarWindSpeed, 0),
		WindGusts:     r.Value(VarWindGusts, 0),
		FreezingLevel: r.Value(VarFreezingLevel, 0),
		Sunshine:      r.Value(VarSunshine, 0),
		WeatherCode:   int(r.Value(VarWeatherCode, 0)),
	}
}

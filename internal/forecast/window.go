package forecast

import "strconv"

// Window is the daily local-time hour range during which conditions are
// evaluated. The interval is half-open: [StartHour, EndHour).
type Window struct {
	StartHour int
	EndHour   int
}

// DefaultWindow covers late morning through mid afternoon skiing.
var DefaultWindow = Window{StartHour: 9, EndHour: 16}

// Contains reports whether an hour-of-day falls inside the window.
func (w Window) Contains(hour int) bool {
	return hour >= w.StartHour && hour < w.EndHour
}

// ExtractWindow returns the records on the target date whose hour falls in
// the window, preserving timestamp order. dateISO is a "2006-01-02" local
// date; timestamps are assumed to already be in the target local time, so no
// timezone conversion happens here. An empty result is a valid state (the
// date may be beyond the forecast horizon), not an error.
func ExtractWindow(ds *HourlyDataset, dateISO string, w Window) []Record {
	var records []Record
	for i, ts := range ds.Times {
		if len(ts) < 13 || ts[:10] != dateISO {
			continue
		}
		hour, err := strconv.Atoi(ts[11:13])
		if err != nil || !w.Contains(hour) {
			continue
		}

		values := make(map[string]float64, len(ds.Columns))
		for key, col := range ds.Columns {
			if i < len(col) {
				values[key] = col[i]
			}
		}
		records = append(records, NewRecord(ts, hour, values))
	}
	return records
}

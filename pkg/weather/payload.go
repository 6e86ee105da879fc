package weather

import "encoding/json"

// Provider payload schemas. Optional fields are pointers; rain is modelled
// explicitly because the provider serves it either as an object keyed by
// window ("1h"/"3h") or as a bare number.

type currentPayload struct {
	Name string `json:"name"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Weather       []conditionPayload `json:"weather"`
	Rain          rainPayload        `json:"rain"`
	Precipitation *float64           `json:"precipitation"`
}

type forecastPayload struct {
	City struct {
		Name string `json:"name"`
	} `json:"city"`
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp     float64 `json:"temp"`
			Humidity float64 `json:"humidity"`
		} `json:"main"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
		Weather []conditionPayload `json:"weather"`
		Rain    rainPayload        `json:"rain"`
	} `json:"list"`
}

type conditionPayload struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type rainPayload struct {
	OneHour   *float64
	ThreeHour *float64
	Raw       *float64
}

func (r *rainPayload) UnmarshalJSON(b []byte) error {
	var windows struct {
		OneHour   *float64 `json:"1h"`
		ThreeHour *float64 `json:"3h"`
	}
	if err := json.Unmarshal(b, &windows); err == nil {
		r.OneHour, r.ThreeHour = windows.OneHour, windows.ThreeHour
		return nil
	}
	var n float64
	if err := json.Unmarshal(b, &n); err == nil {
		r.Raw = &n
		return nil
	}
	// Unrecognized shapes count as "no rain data", not as a failure.
	return nil
}

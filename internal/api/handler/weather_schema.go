package handler

// Response-only types owned by the transport layer.
// These are intentionally separate from ports/domain types so the JSON
// contract is not coupled to internal service changes.

type weatherConditions struct {
	Description string  `json:"description"`
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feels_like"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
}

type weatherData struct {
	Location string            `json:"location"`
	Country  string            `json:"country"`
	Weather  weatherConditions `json:"weather"`
}

// weatherResponse is the envelope clients of the reference deployment
// already parse: the payload sits under "data" with a "success" flag.
type weatherResponse struct {
	Success bool        `json:"success"`
	Data    weatherData `json:"data"`
}

package domain

// WeatherReport is the normalized view of a provider's current-conditions
// response. Temperatures are metric (°C), wind speed in m/s.
type WeatherReport struct {
	Location    string
	Country     string
	Description string
	Temperature float64
	FeelsLike   float64
	Humidity    int
	WindSpeed   float64
}

package seed

// Color is one entry of the colors corpus.
type Color struct {
	Color string `json:"color"`
	Hex   string `json:"hex"`
}

// State is one entry of the us_cities corpus: city name to its zip codes.
type State struct {
	Cities map[string][]string `json:"cities"`
}

// CityGeo is one entry of the us_cities_geo corpus.
type CityGeo struct {
	City      string  `json:"city"`
	State     string  `json:"state"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Colors loads the colors corpus.
func (p *Provider) Colors() ([]Color, error) {
	return Load[[]Color](p, Colors)
}

// States loads the state to cities to zips table.
func (p *Provider) States() (map[string]State, error) {
	return Load[map[string]State](p, Cities)
}

// ZipGeo loads the zip to [latitude, longitude] table.
func (p *Provider) ZipGeo() (map[string][2]float64, error) {
	return Load[map[string][2]float64](p, ZipGeo)
}

// CitiesGeo loads the secondary city geography table.
func (p *Provider) CitiesGeo() ([]CityGeo, error) {
	return Load[[]CityGeo](p, CitiesGeo)
}

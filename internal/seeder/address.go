package seeder

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Lumos-Labs-HQ/sampleset/internal/dataset"
	apperrors "github.com/Lumos-Labs-HQ/sampleset/internal/errors"
	"github.com/Lumos-Labs-HQ/sampleset/internal/models"
	"github.com/Lumos-Labs-HQ/sampleset/internal/random"
	"github.com/Lumos-Labs-HQ/sampleset/internal/schema"
	"github.com/Lumos-Labs-HQ/sampleset/internal/seed"
)

const country = "United States of America"

var (
	streetTypes = []string{"Rd.", "Road", "St.", "Street", "Ct.", "Court", "Sq.", "Square", "Ave.", "Avenue", "Ln.", "Lane"}
	unitLabels  = []string{"Suite #", "Ste. #", "#", "Apt. #", "Unit #"}
	unitWeights = []float64{0.2, 0.1, 0.1, 0.4, 0.2}
)

// geography is the seed geography with map keys sorted for stable draws.
type geography struct {
	states    []string
	cities    map[string][]string
	zips      map[string]map[string][]string
	zipGeo    map[string][2]float64
	citiesGeo []seed.CityGeo
}

func loadGeography(p *seed.Provider) (*geography, error) {
	states, err := p.States()
	if err != nil {
		return nil, err
	}
	zipGeo, err := p.ZipGeo()
	if err != nil {
		return nil, err
	}
	citiesGeo, err := p.CitiesGeo()
	if err != nil {
		return nil, err
	}

	g := &geography{
		cities:    make(map[string][]string, len(states)),
		zips:      make(map[string]map[string][]string, len(states)),
		zipGeo:    zipGeo,
		citiesGeo: citiesGeo,
	}
	for state, st := range states {
		if len(st.Cities) == 0 {
			continue
		}
		var cities []string
		for city, zips := range st.Cities {
			if len(zips) == 0 {
				return nil, apperrors.New(apperrors.CodeResourceUnavailable,
					"seed %s: %s, %s has no zip codes", seed.Cities, city, state)
			}
			cities = append(cities, city)
		}
		sort.Strings(cities)
		g.states = append(g.states, state)
		g.cities[state] = cities
		g.zips[state] = st.Cities
	}
	sort.Strings(g.states)

	if len(g.states) == 0 {
		return nil, emptyCorpus(seed.Cities)
	}
	return g, nil
}

// locate resolves coordinates by exact zip, then by state and city name.
func (g *geography) locate(state, city, zip string) (lat, lon *float64) {
	if ll, ok := g.zipGeo[zip]; ok {
		return &ll[0], &ll[1]
	}

	state, city = strings.ToLower(state), strings.ToLower(city)
	for _, c := range g.citiesGeo {
		if strings.Contains(strings.ToLower(c.State), state) && strings.Contains(strings.ToLower(c.City), city) {
			la, lo := c.Latitude, c.Longitude
			return &la, &lo
		}
	}
	return nil, nil
}

func generateAddresses(env Env, ds *dataset.Dataset) error {
	count, err := prepare(env, ds, schema.Address)
	if err != nil {
		return err
	}

	geo, err := loadGeography(env.Seeds)
	if err != nil {
		return err
	}
	streets, err := env.Seeds.Strings(seed.Streets)
	if err != nil {
		return err
	}

	src := env.Rand
	addresses := make([]models.Address, 0, count)
	for i := 0; i < count; i++ {
		a := models.Address{ID: i + 1, Country: models.Ptr(country)}

		a.Line1 = fmt.Sprintf("%d %s %s", src.Int(100, 9999), random.Pick(src, streets), random.Pick(src, streetTypes))
		if src.Chance(0.3) {
			line2 := unitLabels[src.Weighted(unitWeights...)] + fmt.Sprint(src.Int(100, 999))
			a.Line2 = &line2
		}

		state := random.Pick(src, geo.states)
		city := random.Pick(src, geo.cities[state])
		zip := random.Pick(src, geo.zips[state][city])
		a.StateProvince = models.Ptr(state)
		a.City = models.Ptr(city)
		a.PostalCode = models.Ptr(zip)
		a.Latitude, a.Longitude = geo.locate(state, city, zip)

		addresses = append(addresses, a)
	}

	ds.Addresses = addresses
	return nil
}

func emptyCorpus(id string) error {
	return apperrors.New(apperrors.CodeResourceUnavailable, "seed %s is empty", id)
}

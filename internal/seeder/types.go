package seeder

import (
	"time"

	"github.com/Lumos-Labs-HQ/sampleset/internal/config"
	"github.com/Lumos-Labs-HQ/sampleset/internal/dataset"
	"github.com/Lumos-Labs-HQ/sampleset/internal/random"
	"github.com/Lumos-Labs-HQ/sampleset/internal/schema"
	"github.com/Lumos-Labs-HQ/sampleset/internal/seed"
)

// Env is everything a generator may read. It is passed by value and never retained.
type Env struct {
	Config config.Config
	Rand   random.Source
	Seeds  *seed.Provider
	Now    time.Time
}

// GenerateFunc replaces one entity type's record sequence in ds.
type GenerateFunc func(env Env, ds *dataset.Dataset) error

// Registration binds an entity descriptor to its generator.
type Registration struct {
	Schema   schema.Descriptor
	Generate GenerateFunc
}

var generators = map[schema.EntityType]GenerateFunc{
	schema.Product:   generateProducts,
	schema.Address:   generateAddresses,
	schema.Customer:  generateCustomers,
	schema.Order:     generateOrders,
	schema.OrderLine: generateOrderLines,
	schema.Role:      generateRoles,
	schema.User:      generateUsers,
	schema.Theme:     generateThemes,
}

// Registry returns every registration in canonical order.
func Registry() []Registration {
	var out []Registration
	for _, d := range schema.Entities() {
		out = append(out, Registration{Schema: d, Generate: generators[d.Type]})
	}
	return out
}

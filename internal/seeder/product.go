package seeder

import (
	"fmt"

	"github.com/Lumos-Labs-HQ/sampleset/internal/dataset"
	"github.com/Lumos-Labs-HQ/sampleset/internal/models"
	"github.com/Lumos-Labs-HQ/sampleset/internal/random"
	"github.com/Lumos-Labs-HQ/sampleset/internal/schema"
	"github.com/Lumos-Labs-HQ/sampleset/internal/seed"
)

var productSizes = []string{"large", "small", "huge", "x2", "x3", "extra"}

func generateProducts(env Env, ds *dataset.Dataset) error {
	count, err := prepare(env, ds, schema.Product)
	if err != nil {
		return err
	}

	colors, err := env.Seeds.Colors()
	if err != nil {
		return err
	}
	things, err := env.Seeds.Strings(seed.Things)
	if err != nil {
		return err
	}
	if len(colors) == 0 {
		return emptyCorpus(seed.Colors)
	}

	src := env.Rand
	products := make([]models.Product, 0, count)
	for i := 0; i < count; i++ {
		p := models.Product{ID: i + 1}

		name := random.Pick(src, things)
		scanCode := hexUpper(src, src.Int(16, 48))
		p.ScanCode = &scanCode

		costCents := src.Int(100, 10000)
		p.Cost = float64(costCents) / 100
		p.DateCreated = src.Date(env.Now.Add(-3*year), env.Now.Add(-2*year))

		if src.Chance(0.3) {
			name = random.Pick(src, colors).Color + " " + name
		} else if src.Chance(0.5) {
			name += ", " + random.Pick(src, colors).Color
		}
		if src.Chance(0.2) {
			name += " (" + random.Pick(src, productSizes) + ")"
		} else if src.Chance(0.2) {
			name = random.Pick(src, productSizes) + " " + name
		}
		p.Name = titleCase(name)

		if src.Chance(0.4) {
			url := fmt.Sprintf("http://placekitten.com/200/200?scanCode=%s", scanCode)
			p.ImageURL = &url
		}
		p.Price = charmPrice(src, costCents)
		p.DateUpdated, p.DateDeleted = dateChain(src, p.DateCreated, env.Now)

		products = append(products, p)
	}

	ds.Products = products
	return nil
}

package seeder

import (
	"encoding/base64"

	"github.com/Lumos-Labs-HQ/sampleset/internal/dataset"
	"github.com/Lumos-Labs-HQ/sampleset/internal/models"
	"github.com/Lumos-Labs-HQ/sampleset/internal/random"
	"github.com/Lumos-Labs-HQ/sampleset/internal/schema"
	"github.com/Lumos-Labs-HQ/sampleset/internal/seed"
)

func generateCustomers(env Env, ds *dataset.Dataset) error {
	count, err := prepare(env, ds, schema.Customer)
	if err != nil {
		return err
	}

	corpora := make(map[string][]string)
	for _, id := range []string{seed.FirstNames, seed.LastNames, seed.Suffixes, seed.Occupation, seed.Companies, seed.Notes} {
		list, err := env.Seeds.Strings(id)
		if err != nil {
			return err
		}
		corpora[id] = list
	}
	photos, err := env.Seeds.Assets(seed.PhotoDir, ".jpeg")
	if err != nil {
		return err
	}

	src := env.Rand
	pick := func(id string) *string {
		return models.Ptr(random.Pick(src, corpora[id]))
	}

	customers := make([]models.Customer, 0, count)
	for i := 0; i < count; i++ {
		c := models.Customer{
			ID:          i + 1,
			FirstName:   *pick(seed.FirstNames),
			LastName:    *pick(seed.LastNames),
			DateCreated: src.Date(env.Now.Add(-2*year), env.Now),
		}

		if src.Chance(0.2) {
			c.Suffix = pick(seed.Suffixes)
		}
		if src.Chance(0.6) {
			c.CompanyName = pick(seed.Companies)
			c.Title = pick(seed.Occupation)
		} else if src.Chance(0.5) {
			c.CompanyName = pick(seed.Companies)
		}
		if src.Chance(0.8) {
			c.AccountNumber = models.Ptr(src.Int64(1_000_000_000_000, 100_000_000_000_000_000))
		}
		if src.Chance(0.2) {
			c.Notes = pick(seed.Notes)
		}
		if src.Chance(0.3) {
			if len(photos) == 0 {
				return emptyCorpus(seed.PhotoDir)
			}
			data, err := env.Seeds.Asset(random.Pick(src, photos))
			if err != nil {
				return err
			}
			c.Photo = models.Ptr(base64.StdEncoding.EncodeToString(data))
		}
		c.DateUpdated, c.DateDeleted = dateChain(src, c.DateCreated, env.Now)

		customers = append(customers, c)
	}

	ds.Customers = customers
	return nil
}

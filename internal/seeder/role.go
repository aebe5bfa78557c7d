package seeder

import (
	"github.com/Lumos-Labs-HQ/sampleset/internal/dataset"
	"github.com/Lumos-Labs-HQ/sampleset/internal/models"
	"github.com/Lumos-Labs-HQ/sampleset/internal/random"
	"github.com/Lumos-Labs-HQ/sampleset/internal/schema"
	"github.com/Lumos-Labs-HQ/sampleset/internal/seed"
)

var fixedRoles = []string{"Administrator", "User", "Visitor"}

func generateRoles(env Env, ds *dataset.Dataset) error {
	count, err := prepare(env, ds, schema.Role)
	if err != nil {
		return err
	}

	var occupations []string
	if count > len(fixedRoles) {
		if occupations, err = env.Seeds.Strings(seed.Occupation); err != nil {
			return err
		}
	}

	taken := make(map[string]bool, count)
	roles := make([]models.Role, 0, count)
	for i := 0; i < count; i++ {
		var name string
		if i < len(fixedRoles) {
			name = fixedRoles[i]
			taken[name] = true
		} else {
			name = uniqueName(env.Rand, titleCase(random.Pick(env.Rand, occupations)), taken)
		}
		roles = append(roles, models.Role{ID: i + 1, Name: name})
	}

	ds.Roles = roles
	return nil
}

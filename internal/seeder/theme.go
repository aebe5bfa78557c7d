package seeder

import (
	"fmt"

	"github.com/Lumos-Labs-HQ/sampleset/internal/dataset"
	"github.com/Lumos-Labs-HQ/sampleset/internal/models"
	"github.com/Lumos-Labs-HQ/sampleset/internal/random"
	"github.com/Lumos-Labs-HQ/sampleset/internal/schema"
	"github.com/Lumos-Labs-HQ/sampleset/internal/seed"
)

var themeQualities = []string{"Amazing", "Ultra", "Better", "Super", "Elite", "Professional"}

func generateThemes(env Env, ds *dataset.Dataset) error {
	count, err := prepare(env, ds, schema.Theme)
	if err != nil {
		return err
	}

	colors, err := env.Seeds.Colors()
	if err != nil {
		return err
	}
	if count > 0 && len(colors) == 0 {
		return emptyCorpus(seed.Colors)
	}

	src := env.Rand
	taken := make(map[string]bool, count)
	themes := make([]models.Theme, 0, count)
	for i := 0; i < count; i++ {
		color := colors[src.Int(0, len(colors))]

		name := color.Color
		if src.Chance(0.2) {
			name += " " + random.Pick(src, themeQualities)
		} else if src.Chance(0.2) {
			name += fmt.Sprintf(" X%d", src.Int(1, 9))
		}

		themes = append(themes, models.Theme{
			ID:      i + 1,
			Name:    uniqueName(src, name, taken),
			HexCode: color.Hex,
		})
	}

	ds.Themes = themes
	return nil
}

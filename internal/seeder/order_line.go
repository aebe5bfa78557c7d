package seeder

import (
	"github.com/Lumos-Labs-HQ/sampleset/internal/dataset"
	"github.com/Lumos-Labs-HQ/sampleset/internal/models"
	"github.com/Lumos-Labs-HQ/sampleset/internal/schema"
)

func generateOrderLines(env Env, ds *dataset.Dataset) error {
	count, err := prepare(env, ds, schema.OrderLine)
	if err != nil {
		return err
	}

	src := env.Rand
	lines := make([]models.OrderLine, 0, count)
	for i := 0; i < count; i++ {
		l := models.OrderLine{
			OrderID:   pickID(src, len(ds.Orders)),
			ProductID: pickID(src, len(ds.Products)),
			Quantity:  src.Int(1, 16),
		}

		product := ds.Products[l.ProductID-1]
		l.UnitCost = product.Cost
		if src.Chance(0.8) {
			l.UnitPrice = product.Price
		} else {
			l.UnitPrice = round2(product.Price * (1 + src.Float()))
		}
		l.TotalCost = round2(l.UnitCost * float64(l.Quantity))
		l.TotalPrice = round2(l.UnitPrice * float64(l.Quantity))

		lines = append(lines, l)
	}

	ds.OrderLines = lines
	return nil
}

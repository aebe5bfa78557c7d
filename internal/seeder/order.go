package seeder

import (
	"fmt"

	"github.com/Lumos-Labs-HQ/sampleset/internal/dataset"
	"github.com/Lumos-Labs-HQ/sampleset/internal/models"
	"github.com/Lumos-Labs-HQ/sampleset/internal/random"
	"github.com/Lumos-Labs-HQ/sampleset/internal/schema"
)

var (
	baseStatuses   = []string{models.StatusPending, models.StatusOpen, models.StatusShipping, models.StatusComplete}
	paymentMethods = []string{models.PaymentCheck, models.PaymentCash, models.PaymentCreditCard, models.PaymentGiftCard}
)

func orderStatus(src random.Source) string {
	i := src.Int(0, len(baseStatuses)+1)
	if i < len(baseStatuses) {
		return baseStatuses[i]
	}
	if src.Chance(0.5) {
		return models.StatusCancelled
	}
	return models.StatusReturned
}

func generateOrders(env Env, ds *dataset.Dataset) error {
	count, err := prepare(env, ds, schema.Order)
	if err != nil {
		return err
	}

	src := env.Rand
	orders := make([]models.Order, 0, count)
	for i := 0; i < count; i++ {
		o := models.Order{
			ID:         i + 1,
			CustomerID: pickID(src, len(ds.Customers)),
			AddressID:  pickID(src, len(ds.Addresses)),
			Status:     orderStatus(src),
			Shipped:    models.Ptr(false),
		}

		// A quarter of orders carry no payment method.
		if src.Chance(0.75) {
			o.PaymentMethod = models.Ptr(random.Pick(src, paymentMethods))
		}

		switch o.Status {
		case models.StatusPending, models.StatusCancelled:
		case models.StatusOpen:
			if src.Chance(0.7) {
				o.Weight = models.Ptr(float64(src.Int(100, 10000)) / 100)
			}
		default:
			o.Weight = models.Ptr(float64(src.Int(100, 10000)) / 100)
		}

		if o.Status == models.StatusComplete || o.Status == models.StatusReturned {
			o.Shipped = models.Ptr(true)
			if src.Chance(0.95) {
				o.TrackingNumber = models.Ptr(fmt.Sprintf("%d%s", src.Int(10000, 99999), hexUpper(src, src.Int(16, 32))))
			}
			customer := ds.Customers[o.CustomerID-1]
			shipped := src.Date(customer.DateCreated, env.Now)
			o.DateShipped = models.Ptr(shipped.Format(models.DateLayout))
			o.TimeShipped = models.Ptr(shipped.Format(models.TimeLayout))
		}

		orders = append(orders, o)
	}

	ds.Orders = orders
	return nil
}

// Package dataset holds the generated record sequences of every entity type.
package dataset

import (
	"github.com/Lumos-Labs-HQ/sampleset/internal/models"
	"github.com/Lumos-Labs-HQ/sampleset/internal/schema"
)

// Dataset owns one record sequence per entity type. Generators replace a
// sequence wholesale; writers only read.
type Dataset struct {
	Products   []models.Product
	Addresses  []models.Address
	Customers  []models.Customer
	Orders     []models.Order
	OrderLines []models.OrderLine
	Roles      []models.Role
	Users      []models.User
	Themes     []models.Theme

	generated map[schema.EntityType]bool
}

func New() *Dataset {
	return &Dataset{generated: make(map[schema.EntityType]bool)}
}

// Schemas returns the entity descriptors in canonical order.
func (d *Dataset) Schemas() []schema.Descriptor {
	return schema.Entities()
}

// MarkGenerated records that t's sequence has been produced.
func (d *Dataset) MarkGenerated(t schema.EntityType) {
	if d.generated == nil {
		d.generated = make(map[schema.EntityType]bool)
	}
	d.generated[t] = true
}

// Generated reports whether t's sequence has been produced.
func (d *Dataset) Generated(t schema.EntityType) bool {
	return d.generated[t]
}

// Len returns the number of records held for t.
func (d *Dataset) Len(t schema.EntityType) int {
	switch t {
	case schema.Product:
		return len(d.Products)
	case schema.Address:
		return len(d.Addresses)
	case schema.Customer:
		return len(d.Customers)
	case schema.Order:
		return len(d.Orders)
	case schema.OrderLine:
		return len(d.OrderLines)
	case schema.Role:
		return len(d.Roles)
	case schema.User:
		return len(d.Users)
	case schema.Theme:
		return len(d.Themes)
	}
	return 0
}

// Records returns t's typed slice, suitable for structural encoders.
func (d *Dataset) Records(t schema.EntityType) any {
	switch t {
	case schema.Product:
		return d.Products
	case schema.Address:
		return d.Addresses
	case schema.Customer:
		return d.Customers
	case schema.Order:
		return d.Orders
	case schema.OrderLine:
		return d.OrderLines
	case schema.Role:
		return d.Roles
	case schema.User:
		return d.Users
	case schema.Theme:
		return d.Themes
	}
	return nil
}

// Rows returns t's records as column-ordered rows.
func (d *Dataset) Rows(t schema.EntityType) []models.Record {
	switch t {
	case schema.Product:
		return rows(d.Products)
	case schema.Address:
		return rows(d.Addresses)
	case schema.Customer:
		return rows(d.Customers)
	case schema.Order:
		return rows(d.Orders)
	case schema.OrderLine:
		return rows(d.OrderLines)
	case schema.Role:
		return rows(d.Roles)
	case schema.User:
		return rows(d.Users)
	case schema.Theme:
		return rows(d.Themes)
	}
	return nil
}

func rows[T models.Record](records []T) []models.Record {
	out := make([]models.Record, len(records))
	for i, r := range records {
		out[i] = r
	}
	return out
}

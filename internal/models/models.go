// Package models holds the record types of the generated dataset.
//
// Optional columns are pointers; a nil pointer is an unset value and is
// serialized as null (or omitted where the format has no null).
package models

import "time"

// Record exposes column values in schema field order.
type Record interface {
	Values() []any
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T { return &v }

func deref[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

type Product struct {
	ID          int        `json:"ID" yaml:"ID" toml:"ID"`
	Name        string     `json:"Name" yaml:"Name" toml:"Name"`
	ScanCode    *string    `json:"ScanCode" yaml:"ScanCode" toml:"ScanCode,omitempty"`
	Cost        float64    `json:"Cost" yaml:"Cost" toml:"Cost"`
	Price       float64    `json:"Price" yaml:"Price" toml:"Price"`
	ImageURL    *string    `json:"ImageURL" yaml:"ImageURL" toml:"ImageURL,omitempty"`
	DateCreated time.Time  `json:"DateCreated" yaml:"DateCreated" toml:"DateCreated"`
	DateUpdated *time.Time `json:"DateUpdated" yaml:"DateUpdated" toml:"DateUpdated,omitempty"`
	DateDeleted *time.Time `json:"DateDeleted" yaml:"DateDeleted" toml:"DateDeleted,omitempty"`
}

func (p Product) Values() []any {
	return []any{p.ID, p.Name, deref(p.ScanCode), p.Cost, p.Price, deref(p.ImageURL),
		p.DateCreated, deref(p.DateUpdated), deref(p.DateDeleted)}
}

type Address struct {
	ID            int      `json:"ID" yaml:"ID" toml:"ID"`
	Line1         string   `json:"Line1" yaml:"Line1" toml:"Line1"`
	Line2         *string  `json:"Line2" yaml:"Line2" toml:"Line2,omitempty"`
	City          *string  `json:"City" yaml:"City" toml:"City,omitempty"`
	PostalCode    *string  `json:"PostalCode" yaml:"PostalCode" toml:"PostalCode,omitempty"`
	StateProvince *string  `json:"StateProvince" yaml:"StateProvince" toml:"StateProvince,omitempty"`
	Country       *string  `json:"Country" yaml:"Country" toml:"Country,omitempty"`
	Latitude      *float64 `json:"Latitude" yaml:"Latitude" toml:"Latitude,omitempty"`
	Longitude     *float64 `json:"Longitude" yaml:"Longitude" toml:"Longitude,omitempty"`
}

func (a Address) Values() []any {
	return []any{a.ID, a.Line1, deref(a.Line2), deref(a.City), deref(a.PostalCode),
		deref(a.StateProvince), deref(a.Country), deref(a.Latitude), deref(a.Longitude)}
}

type Customer struct {
	ID            int        `json:"ID" yaml:"ID" toml:"ID"`
	FirstName     string     `json:"FirstName" yaml:"FirstName" toml:"FirstName"`
	LastName      string     `json:"LastName" yaml:"LastName" toml:"LastName"`
	Suffix        *string    `json:"Suffix" yaml:"Suffix" toml:"Suffix,omitempty"`
	CompanyName   *string    `json:"CompanyName" yaml:"CompanyName" toml:"CompanyName,omitempty"`
	Title         *string    `json:"Title" yaml:"Title" toml:"Title,omitempty"`
	Notes         *string    `json:"Notes" yaml:"Notes" toml:"Notes,omitempty"`
	AccountNumber *int64     `json:"AccountNumber" yaml:"AccountNumber" toml:"AccountNumber,omitempty"`
	Photo         *string    `json:"Photo" yaml:"Photo" toml:"Photo,omitempty"` // base64
	DateCreated   time.Time  `json:"DateCreated" yaml:"DateCreated" toml:"DateCreated"`
	DateUpdated   *time.Time `json:"DateUpdated" yaml:"DateUpdated" toml:"DateUpdated,omitempty"`
	DateDeleted   *time.Time `json:"DateDeleted" yaml:"DateDeleted" toml:"DateDeleted,omitempty"`
}

func (c Customer) Values() []any {
	return []any{c.ID, c.FirstName, c.LastName, deref(c.Suffix), deref(c.CompanyName),
		deref(c.Title), deref(c.Notes), deref(c.AccountNumber), deref(c.Photo),
		c.DateCreated, deref(c.DateUpdated), deref(c.DateDeleted)}
}

// Order statuses.
const (
	StatusPending   = "PENDING"
	StatusOpen      = "OPEN"
	StatusShipping  = "SHIPPING"
	StatusComplete  = "COMPLETE"
	StatusCancelled = "CANCELLED"
	StatusReturned  = "RETURNED"
)

// Payment methods.
const (
	PaymentCheck      = "CHECK"
	PaymentCash       = "CASH"
	PaymentCreditCard = "CREDITCARD"
	PaymentGiftCard   = "GIFTCARD"
)

// DateLayout and TimeLayout format Order.DateShipped and Order.TimeShipped.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05.000"
)

type Order struct {
	ID             int      `json:"ID" yaml:"ID" toml:"ID"`
	CustomerID     int      `json:"CustomerID" yaml:"CustomerID" toml:"CustomerID"`
	AddressID      int      `json:"AddressID" yaml:"AddressID" toml:"AddressID"`
	Status         string   `json:"Status" yaml:"Status" toml:"Status"`
	PaymentMethod  *string  `json:"PaymentMethod" yaml:"PaymentMethod" toml:"PaymentMethod,omitempty"`
	Weight         *float64 `json:"Weight" yaml:"Weight" toml:"Weight,omitempty"`
	Shipped        *bool    `json:"Shipped" yaml:"Shipped" toml:"Shipped,omitempty"`
	TrackingNumber *string  `json:"TrackingNumber" yaml:"TrackingNumber" toml:"TrackingNumber,omitempty"`
	DateShipped    *string  `json:"DateShipped" yaml:"DateShipped" toml:"DateShipped,omitempty"`
	TimeShipped    *string  `json:"TimeShipped" yaml:"TimeShipped" toml:"TimeShipped,omitempty"`
}

func (o Order) Values() []any {
	return []any{o.ID, o.CustomerID, o.AddressID, o.Status, deref(o.PaymentMethod),
		deref(o.Weight), deref(o.Shipped), deref(o.TrackingNumber),
		deref(o.DateShipped), deref(o.TimeShipped)}
}

// OrderLine joins an order to a product. (OrderID, ProductID) is not unique.
type OrderLine struct {
	OrderID    int     `json:"OrderID" yaml:"OrderID" toml:"OrderID"`
	ProductID  int     `json:"ProductID" yaml:"ProductID" toml:"ProductID"`
	Quantity   int     `json:"Quantity" yaml:"Quantity" toml:"Quantity"`
	UnitCost   float64 `json:"UnitCost" yaml:"UnitCost" toml:"UnitCost"`
	UnitPrice  float64 `json:"UnitPrice" yaml:"UnitPrice" toml:"UnitPrice"`
	TotalCost  float64 `json:"TotalCost" yaml:"TotalCost" toml:"TotalCost"`
	TotalPrice float64 `json:"TotalPrice" yaml:"TotalPrice" toml:"TotalPrice"`
}

func (l OrderLine) Values() []any {
	return []any{l.OrderID, l.ProductID, l.Quantity, l.UnitCost, l.UnitPrice, l.TotalCost, l.TotalPrice}
}

type Role struct {
	ID   int    `json:"ID" yaml:"ID" toml:"ID"`
	Name string `json:"Name" yaml:"Name" toml:"Name"`
}

func (r Role) Values() []any { return []any{r.ID, r.Name} }

type User struct {
	ID          int        `json:"ID" yaml:"ID" toml:"ID"`
	RoleID      int        `json:"RoleID" yaml:"RoleID" toml:"RoleID"`
	UserName    string     `json:"UserName" yaml:"UserName" toml:"UserName"`
	Password    string     `json:"Password" yaml:"Password" toml:"Password"`
	DateCreated time.Time  `json:"DateCreated" yaml:"DateCreated" toml:"DateCreated"`
	DateUpdated *time.Time `json:"DateUpdated" yaml:"DateUpdated" toml:"DateUpdated,omitempty"`
	DateDeleted *time.Time `json:"DateDeleted" yaml:"DateDeleted" toml:"DateDeleted,omitempty"`
}

func (u User) Values() []any {
	return []any{u.ID, u.RoleID, u.UserName, u.Password, u.DateCreated,
		deref(u.DateUpdated), deref(u.DateDeleted)}
}

type Theme struct {
	ID      int    `json:"ID" yaml:"ID" toml:"ID"`
	Name    string `json:"Name" yaml:"Name" toml:"Name"`
	HexCode string `json:"HexCode" yaml:"HexCode" toml:"HexCode"`
}

func (t Theme) Values() []any { return []any{t.ID, t.Name, t.HexCode} }

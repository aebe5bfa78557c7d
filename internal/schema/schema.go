// Package schema declares the logical shape of every entity type and the
// canonical order in which they are generated and serialized.
package schema

// DataType is a dialect-neutral column type.
type DataType string

const (
	Integer  DataType = "INTEGER"
	Text     DataType = "TEXT"
	Float    DataType = "FLOAT"
	Boolean  DataType = "BOOLEAN"
	Date     DataType = "DATE"
	DateTime DataType = "DATETIME"
	Time     DataType = "TIME"
	Binary   DataType = "BINARY"
)

// Field describes one column of an entity.
type Field struct {
	Name    string
	Type    DataType
	Key     bool
	NotNull bool
}

// EntityType identifies one of the fixed record kinds.
type EntityType string

const (
	Product   EntityType = "Product"
	Address   EntityType = "Address"
	Customer  EntityType = "Customer"
	Order     EntityType = "Order"
	OrderLine EntityType = "OrderLine"
	Role      EntityType = "Role"
	User      EntityType = "User"
	Theme     EntityType = "Theme"
)

// Descriptor is the static metadata of an entity type.
type Descriptor struct {
	Type       EntityType
	Collection string       // record sequence name, e.g. "products"
	Fields     []Field      // ordered columns
	Depends    []EntityType // entity types referenced by foreign keys
}

// Name returns the entity type name used for files and tables.
func (d Descriptor) Name() string { return string(d.Type) }

// Keys returns the key fields in declaration order.
func (d Descriptor) Keys() []Field {
	var keys []Field
	for _, f := range d.Fields {
		if f.Key {
			keys = append(keys, f)
		}
	}
	return keys
}

// Field looks up a field by name.
func (d Descriptor) Field(name string) (Field, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

func key(name string) Field { return Field{Name: name, Type: Integer, Key: true, NotNull: true} }
func required(name string, t DataType) Field { return Field{Name: name, Type: t, NotNull: true} }
func optional(name string, t DataType) Field { return Field{Name: name, Type: t} }

var entities = []Descriptor{
	{
		Type:       Product,
		Collection: "products",
		Fields: []Field{
			key("ID"),
			required("Name", Text),
			optional("ScanCode", Text),
			required("Cost", Float),
			required("Price", Float),
			optional("ImageURL", Text),
			required("DateCreated", DateTime),
			optional("DateUpdated", DateTime),
			optional("DateDeleted", DateTime),
		},
	},
	{
		Type:       Address,
		Collection: "addresses",
		Fields: []Field{
			key("ID"),
			required("Line1", Text),
			optional("Line2", Text),
			optional("City", Text),
			optional("PostalCode", Text),
			optional("StateProvince", Text),
			optional("Country", Text),
			optional("Latitude", Float),
			optional("Longitude", Float),
		},
	},
	{
		Type:       Customer,
		Collection: "customers",
		Fields: []Field{
			key("ID"),
			required("FirstName", Text),
			required("LastName", Text),
			optional("Suffix", Text),
			optional("CompanyName", Text),
			optional("Title", Text),
			optional("Notes", Text),
			optional("AccountNumber", Float),
			optional("Photo", Binary),
			required("DateCreated", DateTime),
			optional("DateUpdated", DateTime),
			optional("DateDeleted", DateTime),
		},
	},
	{
		Type:       Order,
		Collection: "orders",
		Fields: []Field{
			key("ID"),
			required("CustomerID", Integer),
			required("AddressID", Integer),
			required("Status", Text),
			optional("PaymentMethod", Text),
			optional("Weight", Float),
			optional("Shipped", Boolean),
			optional("TrackingNumber", Text),
			optional("DateShipped", Date),
			optional("TimeShipped", Time),
		},
		Depends: []EntityType{Customer, Address},
	},
	{
		Type:       OrderLine,
		Collection: "orderLines",
		Fields: []Field{
			key("OrderID"),
			key("ProductID"),
			required("Quantity", Integer),
			required("UnitCost", Float),
			required("UnitPrice", Float),
			required("TotalCost", Float),
			required("TotalPrice", Float),
		},
		Depends: []EntityType{Order, Product},
	},
	{
		Type:       Role,
		Collection: "roles",
		Fields: []Field{
			key("ID"),
			required("Name", Text),
		},
	},
	{
		Type:       User,
		Collection: "users",
		Fields: []Field{
			key("ID"),
			required("RoleID", Integer),
			required("UserName", Text),
			required("Password", Text),
			required("DateCreated", DateTime),
			optional("DateUpdated", DateTime),
			optional("DateDeleted", DateTime),
		},
		Depends: []EntityType{Role},
	},
	{
		Type:       Theme,
		Collection: "themes",
		Fields: []Field{
			key("ID"),
			required("Name", Text),
			required("HexCode", Text),
		},
	},
}

// Entities returns the descriptors in canonical order. The slice is a copy.
func Entities() []Descriptor {
	out := make([]Descriptor, len(entities))
	copy(out, entities)
	return out
}

// Lookup returns the descriptor for t.
func Lookup(t EntityType) (Descriptor, bool) {
	for _, d := range entities {
		if d.Type == t {
			return d, true
		}
	}
	return Descriptor{}, false
}

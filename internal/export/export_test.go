package export

import (
	"context"
	"database/sql"
	"encoding/json"
	"encoding/xml"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Lumos-Labs-HQ/sampleset/internal/config"
	"github.com/Lumos-Labs-HQ/sampleset/internal/dataset"
	apperrors "github.com/Lumos-Labs-HQ/sampleset/internal/errors"
	"github.com/Lumos-Labs-HQ/sampleset/internal/models"
	"github.com/Lumos-Labs-HQ/sampleset/internal/random"
	"github.com/Lumos-Labs-HQ/sampleset/internal/schema"
	"github.com/Lumos-Labs-HQ/sampleset/internal/seeder"
	"github.com/fatih/color"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestMain(m *testing.M) {
	color.Output = io.Discard
	os.Exit(m.Run())
}

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Counts = config.Counts{
		Product: 12, Address: 15, Customer: 20, Order: 30,
		OrderLine: 45, Role: 5, User: 9, Theme: 7,
	}
	return cfg
}

func generated(t *testing.T) (*dataset.Dataset, config.Config) {
	t.Helper()
	cfg := testConfig()
	s, err := seeder.NewSeeder(cfg,
		seeder.WithRand(random.New(99)),
		seeder.WithClock(func() time.Time { return time.Date(2024, 3, 1, 8, 30, 0, 0, time.UTC) }),
	)
	require.NoError(t, err)
	ds, err := s.Generate(context.Background())
	require.NoError(t, err)
	return ds, cfg
}

// fixture is a tiny hand-built dataset with known literal values.
func fixture() *dataset.Dataset {
	created := time.Date(2023, 5, 6, 7, 8, 9, 123_000_000, time.UTC)
	ds := dataset.New()
	ds.Products = []models.Product{{ID: 1, Name: `O'Brien\Widget`, Cost: 2.5, Price: 4.99, DateCreated: created}}
	ds.Customers = []models.Customer{{
		ID: 1, FirstName: "Ann", LastName: "Lee",
		Photo:         models.Ptr("AQL/"),
		AccountNumber: models.Ptr(int64(1234567890123)),
		DateCreated:   created,
	}}
	ds.Addresses = []models.Address{{ID: 1, Line1: "1 Main St."}}
	ds.Orders = []models.Order{{
		ID: 1, CustomerID: 1, AddressID: 1, Status: models.StatusComplete,
		Shipped: models.Ptr(true), DateShipped: models.Ptr("2023-06-01"), TimeShipped: models.Ptr("10:11:12.013"),
	}}
	ds.OrderLines = []models.OrderLine{{OrderID: 1, ProductID: 1, Quantity: 2, UnitCost: 2.5, UnitPrice: 4.99, TotalCost: 5, TotalPrice: 9.98}}
	ds.Roles = []models.Role{{ID: 1, Name: "Administrator"}}
	ds.Users = []models.User{}
	ds.Themes = []models.Theme{{ID: 1, Name: "Red", HexCode: "#FF0000"}}
	for _, d := range schema.Entities() {
		ds.MarkGenerated(d.Type)
	}
	return ds
}

func TestNewHonorsToggles(t *testing.T) {
	cfg := testConfig()
	cfg.Writers.Target = t.TempDir()
	cfg.Writers.YAML = false
	cfg.Writers.Dialects = []string{"postgresql", "sqlite"}
	cfg.Writers.SQLiteDB = true

	writers, err := New(cfg)
	require.NoError(t, err)

	var names []string
	for _, w := range writers {
		names = append(names, w.Name())
	}
	assert.Equal(t, []string{"JSON", "TOML", "CSV", "XML", "Postgres", "SQLite", "SQLite database"}, names)

	cfg.Writers.Dialects = []string{"oracle"}
	_, err = New(cfg)
	assert.ErrorIs(t, err, apperrors.ErrInvalidConfiguration)
}

func TestReleaseSubdirectory(t *testing.T) {
	cfg := testConfig()
	cfg.Writers.Target = t.TempDir()
	cfg.Release = "v2"
	cfg.Writers.SQL = false

	writers, err := New(cfg)
	require.NoError(t, err)
	require.NotEmpty(t, writers)
	assert.Equal(t, filepath.Join(cfg.Writers.Target, "v2", "JSON"), writers[0].(*fileWriter).Dir())
}

func TestStructuralWritersOneFilePerEntity(t *testing.T) {
	ds, _ := generated(t)
	root := t.TempDir()

	cases := []struct {
		writer Writer
		dir    string
		ext    string
	}{
		{NewJSONWriter(filepath.Join(root, "JSON")), "JSON", ".json"},
		{NewYAMLWriter(filepath.Join(root, "YAML")), "YAML", ".yml"},
		{NewTOMLWriter(filepath.Join(root, "TOML")), "TOML", ".toml"},
		{NewCSVWriter(filepath.Join(root, "CSV")), "CSV", ".csv"},
		{NewXMLWriter(filepath.Join(root, "XML")), "XML", ".xml"},
	}
	for _, tc := range cases {
		t.Run(tc.dir, func(t *testing.T) {
			require.NoError(t, tc.writer.Write(ds))
			for _, d := range schema.Entities() {
				assert.FileExists(t, filepath.Join(root, tc.dir, d.Name()+tc.ext))
			}
		})
	}
}

func TestJSONRoundTrip(t *testing.T) {
	ds, _ := generated(t)
	dir := t.TempDir()
	require.NoError(t, NewJSONWriter(dir).Write(ds))

	read := func(name string, into any) {
		data, err := os.ReadFile(filepath.Join(dir, name+".json"))
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(data, into))
	}

	var products []models.Product
	read("Product", &products)
	assert.Equal(t, ds.Products, products)

	var customers []models.Customer
	read("Customer", &customers)
	assert.Equal(t, ds.Customers, customers)

	var orders []models.Order
	read("Order", &orders)
	assert.Equal(t, ds.Orders, orders)

	var lines []models.OrderLine
	read("OrderLine", &lines)
	assert.Equal(t, ds.OrderLines, lines)
}

func TestJSONIndent(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, NewJSONWriter(dir).Write(fixture()))
	data, err := os.ReadFile(filepath.Join(dir, "Role.json"))
	require.NoError(t, err)
	assert.Equal(t, "[\n    {\n        \"ID\": 1,\n        \"Name\": \"Administrator\"\n    }\n]", string(data))
}

func TestYAMLRoundTrip(t *testing.T) {
	ds, _ := generated(t)
	dir := t.TempDir()
	require.NoError(t, NewYAMLWriter(dir).Write(ds))

	data, err := os.ReadFile(filepath.Join(dir, "Theme.yml"))
	require.NoError(t, err)
	var themes []models.Theme
	require.NoError(t, yaml.Unmarshal(data, &themes))
	assert.Equal(t, ds.Themes, themes)
}

func TestTOMLWrapsRecords(t *testing.T) {
	ds, _ := generated(t)
	dir := t.TempDir()
	require.NoError(t, NewTOMLWriter(dir).Write(ds))

	data, err := os.ReadFile(filepath.Join(dir, "Role.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "[[Role]]")

	var doc struct {
		Role []models.Role `toml:"Role"`
	}
	require.NoError(t, toml.Unmarshal(data, &doc))
	assert.Equal(t, ds.Roles, doc.Role)
}

func TestCSVLayout(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, NewCSVWriter(dir).Write(fixture()))

	data, err := os.ReadFile(filepath.Join(dir, "Order.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "ID,CustomerID,AddressID,Status,PaymentMethod,Weight,Shipped,TrackingNumber,DateShipped,TimeShipped", lines[0])
	assert.Equal(t, "1,1,1,COMPLETE,,,true,,2023-06-01,10:11:12.013", lines[1])

	data, err = os.ReadFile(filepath.Join(dir, "Product.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "2023-05-06T07:08:09.123Z")
}

func TestXMLDocument(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, NewXMLWriter(dir).Write(fixture()))

	data, err := os.ReadFile(filepath.Join(dir, "Address.xml"))
	require.NoError(t, err)
	doc := string(data)
	assert.True(t, strings.HasPrefix(doc, xmlHeader))
	assert.Contains(t, doc, "<Addresses>")
	assert.Contains(t, doc, "    <Address>")
	assert.Contains(t, doc, "<Line1>1 Main St.</Line1>")
	assert.NotContains(t, doc, "<Line2>", "unset fields are omitted")

	var parsed struct {
		XMLName xml.Name `xml:"OrderLines"`
		Lines   []struct {
			Quantity   int     `xml:"Quantity"`
			TotalPrice float64 `xml:"TotalPrice"`
		} `xml:"OrderLine"`
	}
	data, err = os.ReadFile(filepath.Join(dir, "OrderLine.xml"))
	require.NoError(t, err)
	require.NoError(t, xml.Unmarshal(data, &parsed))
	require.Len(t, parsed.Lines, 1)
	assert.Equal(t, 2, parsed.Lines[0].Quantity)
	assert.Equal(t, 9.98, parsed.Lines[0].TotalPrice)
}

func TestWriteFailure(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	d, err := LookupDialect("mysql")
	require.NoError(t, err)
	for _, w := range []Writer{
		NewJSONWriter(filepath.Join(blocker, "JSON")),
		NewSQLWriter(d, filepath.Join(blocker, "MySQL")),
		NewSQLiteDBWriter(filepath.Join(blocker, "SQLite")),
	} {
		err := w.Write(fixture())
		assert.ErrorIs(t, err, apperrors.ErrWriteFailure, w.Name())
	}
}

func TestNilDataset(t *testing.T) {
	d, _ := LookupDialect("sqlite")
	for _, w := range []Writer{NewCSVWriter(t.TempDir()), NewSQLWriter(d, t.TempDir()), NewSQLiteDBWriter(t.TempDir())} {
		assert.ErrorIs(t, w.Write(nil), apperrors.ErrInvalidArgument, w.Name())
	}
}

func TestSQLiteDatabaseFile(t *testing.T) {
	ds, _ := generated(t)
	w := NewSQLiteDBWriter(t.TempDir())
	require.NoError(t, w.Write(ds))
	// A second run replaces the file instead of failing on existing tables.
	require.NoError(t, w.Write(ds))

	db, err := sql.Open("sqlite3", w.Path())
	require.NoError(t, err)
	defer db.Close()

	for _, d := range schema.Entities() {
		var n int
		require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM "`+d.Name()+`"`).Scan(&n))
		assert.Equal(t, ds.Len(d.Type), n, d.Name())
	}

	var cost float64
	require.NoError(t, db.QueryRow(`SELECT "Cost" FROM "Product" WHERE "ID" = 1`).Scan(&cost))
	assert.Equal(t, ds.Products[0].Cost, cost)
}

func TestSQLiteDatabaseBinary(t *testing.T) {
	w := NewSQLiteDBWriter(t.TempDir())
	require.NoError(t, w.Write(fixture()))

	db, err := sql.Open("sqlite3", w.Path())
	require.NoError(t, err)
	defer db.Close()

	var photo []byte
	var shipped int
	require.NoError(t, db.QueryRow(`SELECT "Photo" FROM "Customer"`).Scan(&photo))
	require.NoError(t, db.QueryRow(`SELECT "Shipped" FROM "Order"`).Scan(&shipped))
	assert.Equal(t, []byte{0x01, 0x02, 0xFF}, photo)
	assert.Equal(t, 1, shipped)
}

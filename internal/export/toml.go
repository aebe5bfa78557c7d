package export

import (
	"github.com/Lumos-Labs-HQ/sampleset/internal/dataset"
	"github.com/Lumos-Labs-HQ/sampleset/internal/schema"
	"github.com/pelletier/go-toml/v2"
)

// NewTOMLWriter writes records as an array of tables named after the entity
// type, since a TOML document cannot be a bare array.
func NewTOMLWriter(dir string) Writer {
	return &fileWriter{
		name: "TOML",
		dir:  dir,
		ext:  "toml",
		encode: func(d schema.Descriptor, ds *dataset.Dataset) ([]byte, error) {
			return toml.Marshal(map[string]any{d.Name(): ds.Records(d.Type)})
		},
	}
}

package export

import (
	"encoding/json"

	"github.com/Lumos-Labs-HQ/sampleset/internal/dataset"
	"github.com/Lumos-Labs-HQ/sampleset/internal/schema"
)

// NewJSONWriter writes each entity type as a JSON array of records.
func NewJSONWriter(dir string) Writer {
	return &fileWriter{
		name: "JSON",
		dir:  dir,
		ext:  "json",
		encode: func(d schema.Descriptor, ds *dataset.Dataset) ([]byte, error) {
			return json.MarshalIndent(ds.Records(d.Type), "", "    ")
		},
	}
}

package export

import (
	"bytes"

	"github.com/Lumos-Labs-HQ/sampleset/internal/dataset"
	"github.com/Lumos-Labs-HQ/sampleset/internal/schema"
	"gopkg.in/yaml.v3"
)

func NewYAMLWriter(dir string) Writer {
	return &fileWriter{
		name: "YAML",
		dir:  dir,
		ext:  "yml",
		encode: func(d schema.Descriptor, ds *dataset.Dataset) ([]byte, error) {
			var buf bytes.Buffer
			enc := yaml.NewEncoder(&buf)
			enc.SetIndent(2)
			if err := enc.Encode(ds.Records(d.Type)); err != nil {
				return nil, err
			}
			if err := enc.Close(); err != nil {
				return nil, err
			}
			return buf.Bytes(), nil
		},
	}
}

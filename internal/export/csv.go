package export

import (
	"bytes"
	"encoding/csv"

	"github.com/Lumos-Labs-HQ/sampleset/internal/dataset"
	"github.com/Lumos-Labs-HQ/sampleset/internal/schema"
)

// NewCSVWriter writes a header row of field names followed by one row per
// record. Unset values are empty cells.
func NewCSVWriter(dir string) Writer {
	return &fileWriter{
		name:   "CSV",
		dir:    dir,
		ext:    "csv",
		encode: encodeCSV,
	}
}

func encodeCSV(d schema.Descriptor, ds *dataset.Dataset) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := make([]string, len(d.Fields))
	for i, f := range d.Fields {
		headers[i] = f.Name
	}
	if err := writer.Write(headers); err != nil {
		return nil, err
	}

	for _, row := range ds.Rows(d.Type) {
		values := row.Values()
		cells := make([]string, len(values))
		for i, v := range values {
			cells[i], _ = formatValue(v)
		}
		if err := writer.Write(cells); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	return buf.Bytes(), writer.Error()
}

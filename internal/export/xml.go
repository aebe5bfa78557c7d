package export

import (
	"bytes"
	"encoding/xml"

	"github.com/Lumos-Labs-HQ/sampleset/internal/dataset"
	"github.com/Lumos-Labs-HQ/sampleset/internal/schema"
	"github.com/jinzhu/inflection"
)

const xmlHeader = `<?xml version="1.0" encoding="utf-8"?>` + "\n"

// NewXMLWriter writes <Products><Product>...</Product></Products> documents.
// Unset fields are left out of their record element.
func NewXMLWriter(dir string) Writer {
	return &fileWriter{
		name:   "XML",
		dir:    dir,
		ext:    "xml",
		encode: encodeXML,
	}
}

func encodeXML(d schema.Descriptor, ds *dataset.Dataset) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xmlHeader)

	enc := xml.NewEncoder(&buf)
	enc.Indent("", "    ")

	container := xml.StartElement{Name: xml.Name{Local: inflection.Plural(d.Name())}}
	record := xml.StartElement{Name: xml.Name{Local: d.Name()}}

	if err := enc.EncodeToken(container); err != nil {
		return nil, err
	}
	for _, row := range ds.Rows(d.Type) {
		if err := enc.EncodeToken(record); err != nil {
			return nil, err
		}
		for i, v := range row.Values() {
			s, ok := formatValue(v)
			if !ok {
				continue
			}
			field := xml.StartElement{Name: xml.Name{Local: d.Fields[i].Name}}
			if err := enc.EncodeElement(s, field); err != nil {
				return nil, err
			}
		}
		if err := enc.EncodeToken(record.End()); err != nil {
			return nil, err
		}
	}
	if err := enc.EncodeToken(container.End()); err != nil {
		return nil, err
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}

	buf.WriteString("\n")
	return buf.Bytes(), nil
}

// Package export renders a generated dataset into files, one directory per
// format or SQL dialect under the configured output root.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/Lumos-Labs-HQ/sampleset/internal/config"
	"github.com/Lumos-Labs-HQ/sampleset/internal/dataset"
	apperrors "github.com/Lumos-Labs-HQ/sampleset/internal/errors"
	"github.com/Lumos-Labs-HQ/sampleset/internal/schema"
)

// TimestampLayout is how DATETIME values appear in text formats.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

type Writer interface {
	Name() string
	Write(ds *dataset.Dataset) error
}

// New returns the writers enabled in cfg, in output order.
func New(cfg config.Config) ([]Writer, error) {
	root := cfg.OutputDir()
	w := cfg.Writers

	var out []Writer
	if w.JSON {
		out = append(out, NewJSONWriter(filepath.Join(root, "JSON")))
	}
	if w.YAML {
		out = append(out, NewYAMLWriter(filepath.Join(root, "YAML")))
	}
	if w.TOML {
		out = append(out, NewTOMLWriter(filepath.Join(root, "TOML")))
	}
	if w.CSV {
		out = append(out, NewCSVWriter(filepath.Join(root, "CSV")))
	}
	if w.XML {
		out = append(out, NewXMLWriter(filepath.Join(root, "XML")))
	}
	if w.SQL {
		for _, name := range w.Dialects {
			d, err := LookupDialect(name)
			if err != nil {
				return nil, err
			}
			out = append(out, NewSQLWriter(d, filepath.Join(root, d.Name)))
		}
	}
	if w.SQLiteDB {
		out = append(out, NewSQLiteDBWriter(filepath.Join(root, config.DialectSQLite)))
	}
	return out, nil
}

// fileWriter writes one <Type>.<ext> file per entity type.
type fileWriter struct {
	name   string
	dir    string
	ext    string
	encode func(d schema.Descriptor, ds *dataset.Dataset) ([]byte, error)
}

func (w *fileWriter) Name() string { return w.name }

// Dir is the directory the writer writes into.
func (w *fileWriter) Dir() string { return w.dir }

func (w *fileWriter) Write(ds *dataset.Dataset) error {
	if ds == nil {
		return apperrors.New(apperrors.CodeInvalidArgument, "the dataset argument is required to write %s", w.name)
	}
	if err := createDir(w.dir); err != nil {
		return err
	}

	for _, d := range ds.Schemas() {
		data, err := w.encode(d, ds)
		if err != nil {
			return apperrors.Wrap(apperrors.CodeWriteFailure, fmt.Sprintf("failed to encode %s as %s", d.Name(), w.name), err)
		}
		if err := writeFile(filepath.Join(w.dir, d.Name()+"."+w.ext), data); err != nil {
			return err
		}
	}
	return nil
}

func createDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return apperrors.Wrap(apperrors.CodeWriteFailure, "failed to create output directory", err)
	}
	return nil
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return apperrors.Wrap(apperrors.CodeWriteFailure, "failed to write file", err)
	}
	return nil
}

// formatValue renders a column value as text. ok is false for unset values.
func formatValue(val any) (s string, ok bool) {
	switch v := val.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case time.Time:
		return v.UTC().Format(TimestampLayout), true
	default:
		return fmt.Sprint(v), true
	}
}

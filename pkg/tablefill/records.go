package tablefill

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadRecords reads table records from a file. CSV files yield one record per
// line. JSON and YAML files must hold a sequence of sequences of scalars; numbers
// are kept as written, so 1.50 stays "1.50", and null becomes "". Records may
// differ in length.
func LoadRecords(path string) ([][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return parseCSVRecords(data)
	case ".json":
		return parseJSONRecords(data)
	case ".yaml", ".yml":
		return parseYAMLRecords(data)
	default:
		return nil, fmt.Errorf("unsupported records format %q", filepath.Ext(path))
	}
}

func parseCSVRecords(data []byte) ([][]string, error) {
	r := csv.NewReader(strings.NewReader(string(data)))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV records: %w", err)
	}
	if records == nil {
		records = [][]string{}
	}
	return records, nil
}

func parseJSONRecords(data []byte) ([][]string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw []json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return [][]string{}, nil
		}
		return nil, fmt.Errorf("failed to parse records: %w", err)
	}

	records := make([][]string, 0, len(raw))
	for i, item := range raw {
		var fields []interface{}
		itemDec := json.NewDecoder(bytes.NewReader(item))
		itemDec.UseNumber()
		if err := itemDec.Decode(&fields); err != nil {
			return nil, fmt.Errorf("record %d must be an array: %w", i, err)
		}
		if fields == nil {
			return nil, fmt.Errorf("record %d must be an array", i)
		}
		record := make([]string, 0, len(fields))
		for j, field := range fields {
			switch v := field.(type) {
			case nil:
				record = append(record, "")
			case string:
				record = append(record, v)
			case json.Number:
				record = append(record, v.String())
			case bool:
				record = append(record, fmt.Sprint(v))
			default:
				return nil, fmt.Errorf("field %d of record %d must be a scalar", j, i)
			}
		}
		records = append(records, record)
	}
	return records, nil
}

func parseYAMLRecords(data []byte) ([][]string, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse records: %w", err)
	}

	records := [][]string{}
	if len(doc.Content) == 0 {
		return records, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("records must be a sequence, line %d", root.Line)
	}
	for _, item := range root.Content {
		if item.Kind != yaml.SequenceNode {
			return nil, fmt.Errorf("record at line %d must be a sequence", item.Line)
		}
		record := make([]string, 0, len(item.Content))
		for _, field := range item.Content {
			if field.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("field at line %d must be a scalar", field.Line)
			}
			if field.Tag == "!!null" {
				record = append(record, "")
				continue
			}
			record = append(record, field.Value)
		}
		records = append(records, record)
	}
	return records, nil
}

package roster

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jonathan/consent-generator/internal/types"
)

// Column names expected in the header row (spreadsheets) or as object keys (JSON)
const (
	FieldRole       = "role"
	FieldFullName   = "full_name"
	FieldBirthDate  = "birth_date"
	FieldTutorName  = "tutor_name"
	FieldTutorPhone = "tutor_phone"
)

// Format identifies how a roster file is encoded
type Format string

const (
	FormatJSON Format = "json"
	FormatXLSX Format = "xlsx"
	FormatXLS  Format = "xls"
)

// DetectFormat picks the decoder from the file extension. Anything that is
// not .json or .xls is handed to the xlsx reader.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".xls":
		return FormatXLS
	default:
		return FormatXLSX
	}
}

// LoadFile reads a roster file and returns its raw rows in file order
func LoadFile(path string) ([]types.RawRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &LoadError{Path: path, Message: "roster file not found", Cause: err}
		}
		return nil, &LoadError{Path: path, Message: "failed to read roster file", Cause: err}
	}

	records, err := Decode(data, DetectFormat(path))
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = path
		}
		return nil, err
	}
	return records, nil
}

// Decode parses roster bytes in the given format
func Decode(data []byte, format Format) ([]types.RawRecord, error) {
	switch format {
	case FormatJSON:
		return LoadJSON(bytes.NewReader(data))
	case FormatXLS:
		return LoadXLS(bytes.NewReader(data))
	case FormatXLSX:
		return LoadXLSX(bytes.NewReader(data))
	default:
		return nil, &LoadError{Message: fmt.Sprintf("unsupported roster format %q", format)}
	}
}

// LoadJSON decodes a JSON array of row objects. A document whose top level is
// not an array yields zero rows; a document that is not valid JSON is an error
// wrapping ErrMalformedJSON.
func LoadJSON(r io.Reader) ([]types.RawRecord, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, &LoadError{Message: "failed to parse roster JSON", Cause: fmt.Errorf("%w: %v", ErrMalformedJSON, err)}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, &LoadError{Message: "unexpected data after roster JSON", Cause: ErrMalformedJSON}
	}

	items, ok := doc.([]any)
	if !ok {
		return []types.RawRecord{}, nil
	}

	records := make([]types.RawRecord, 0, len(items))
	for _, item := range items {
		obj, _ := item.(map[string]any)
		records = append(records, types.RawRecord{
			Role:       jsonText(obj[FieldRole]),
			FullName:   jsonText(obj[FieldFullName]),
			BirthDate:  jsonDate(obj[FieldBirthDate]),
			TutorName:  jsonText(obj[FieldTutorName]),
			TutorPhone: jsonText(obj[FieldTutorPhone]),
		})
	}
	return records, nil
}

// jsonText stringifies a scalar JSON value; null and missing keys become ""
func jsonText(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		return val.String()
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprint(val)
	}
}

func jsonDate(v any) types.RawDateField {
	switch val := v.(type) {
	case string:
		if strings.TrimSpace(val) == "" {
			return types.AbsentDate{}
		}
		return types.TextDate{Value: val}
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return types.TextDate{Value: val.String()}
		}
		return types.NumericDate{Serial: f}
	default:
		return types.AbsentDate{}
	}
}

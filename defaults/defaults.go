// Package defaults loads default values of command-line arguments from YAML, TOML or JSON files.
// A file contains a flat mapping of argument names (short names or long aliases) to scalar values:
//
//	o: short
//	threshold: 10
//	debug: true
package defaults

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported defaults format")
	ErrUnsupportedValue  = errors.New("unsupported default value")
)

type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatOf detects the format by the file extension
func FormatOf(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf(`%w: "%s"`, ErrUnsupportedFormat, ext)
	}
}

// Load reads the defaults file at `path`. The format is detected by FormatOf.
func Load(path string) (map[string]string, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	res, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return res, nil
}

// Decode decodes a flat mapping of `format` and converts its values to tokens
func Decode(data []byte, format Format) (map[string]string, error) {
	raw := make(map[string]any)
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &raw)
	case FormatTOML:
		err = toml.Unmarshal(data, &raw)
	case FormatJSON:
		if len(bytes.TrimSpace(data)) == 0 {
			break
		}
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber()
		err = decoder.Decode(&raw)
	default:
		return nil, fmt.Errorf(`%w: "%s"`, ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}

	res := make(map[string]string, len(raw))
	for key, value := range raw {
		token, err := toToken(value)
		if err != nil {
			return nil, fmt.Errorf(`key "%s": %w`, key, err)
		}
		res[key] = token
	}
	return res, nil
}

func toToken(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	case json.Number:
		return v.String(), nil
	case time.Time:
		return v.Format(time.RFC3339Nano), nil
	case fmt.Stringer:
		// toml local date and time types
		return v.String(), nil
	default:
		return "", fmt.Errorf("%w of type %T", ErrUnsupportedValue, value)
	}
}

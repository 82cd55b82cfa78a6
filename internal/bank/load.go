package bank

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads a bank file, normalizes it, and validates it. JSON is the
// native format; YAML is accepted for hand-written banks.
func Load(path string) (Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Bank{}, fmt.Errorf("read bank: %w", err)
	}

	b, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return Bank{}, fmt.Errorf("parse bank %s: %w", path, err)
	}

	b = Normalize(b)
	if err := Validate(b); err != nil {
		return Bank{}, fmt.Errorf("bank %s: %w", path, err)
	}
	return b, nil
}

// Parse decodes bank bytes according to the file extension. Unknown
// fields are rejected so typos surface instead of silently dropping
// data.
func Parse(data []byte, ext string) (Bank, error) {
	switch strings.ToLower(ext) {
	case ".json":
		return parseJSON(data)
	case ".yaml", ".yml":
		return parseYAML(data)
	default:
		return Bank{}, fmt.Errorf("unsupported bank format %q", ext)
	}
}

func parseJSON(data []byte) (Bank, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var b Bank
	if err := dec.Decode(&b); err != nil {
		return Bank{}, err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return Bank{}, errors.New("bank must contain a single JSON document")
	}
	return b, nil
}

func parseYAML(data []byte) (Bank, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var b Bank
	if err := dec.Decode(&b); err != nil {
		return Bank{}, err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return Bank{}, errors.New("bank must contain a single YAML document")
	}
	return b, nil
}

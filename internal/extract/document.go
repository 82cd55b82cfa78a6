package extract

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"stooda/internal/question"
)

// Document is a textified exam: page text plus embedded images, with
// the exam metadata the question records need. It is produced by an
// external PDF-to-text step and consumed by the Extractor.
type Document struct {
	Exam  ExamInfo `json:"exam" yaml:"exam"`
	Pages []Page   `json:"pages" yaml:"pages"`
}

// ExamInfo carries the metadata shared by every question in the
// document. Type and Difficulty fall back to the config defaults when
// empty; Date is required.
type ExamInfo struct {
	Name       string        `json:"name,omitempty" yaml:"name,omitempty"`
	Type       string        `json:"type,omitempty" yaml:"type,omitempty"`
	Date       question.Date `json:"date" yaml:"date"`
	Difficulty string        `json:"difficulty,omitempty" yaml:"difficulty,omitempty"`
}

// Page is one exam page in reading order.
type Page struct {
	// Number is the 1-based page number from the source exam.
	Number int `json:"number" yaml:"number"`

	Text string `json:"text" yaml:"text"`

	// Images are the figures embedded on this page, in layout order.
	Images []Image `json:"images,omitempty" yaml:"images,omitempty"`
}

// Image is an embedded figure. Data travels base64-encoded in JSON;
// it may be empty when the document only describes the figure.
type Image struct {
	Format string `json:"format" yaml:"format"`
	Data   []byte `json:"data,omitempty" yaml:"data,omitempty"`
}

// LoadDocument reads, parses, and validates an exam document file.
func LoadDocument(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read document: %w", err)
	}
	doc, err := ParseDocument(data, filepath.Ext(path))
	if err != nil {
		return Document{}, err
	}
	normalized, err := NormalizeDocument(doc)
	if err != nil {
		return Document{}, err
	}
	return normalized, nil
}

// ParseDocument decodes document bytes according to the file
// extension. Anything that is not .json is read as YAML.
func ParseDocument(data []byte, ext string) (Document, error) {
	if strings.ToLower(ext) == ".json" {
		return parseJSONDocument(data)
	}
	return parseYAMLDocument(data)
}

func parseJSONDocument(data []byte) (Document, error) {
	var doc Document
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("parse json: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Document{}, fmt.Errorf("parse json: multiple documents are not supported")
		}
		return Document{}, fmt.Errorf("parse json: %w", err)
	}
	return doc, nil
}

func parseYAMLDocument(data []byte) (Document, error) {
	var doc Document
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("parse yaml: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Document{}, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return Document{}, fmt.Errorf("parse yaml: %w", err)
	}
	return doc, nil
}

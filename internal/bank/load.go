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

// ErrEmptyBank is returned when a bank file contains no questions.
var ErrEmptyBank = errors.New("question bank contains no questions")

// Load reads and parses the bank file at path. Files ending in .json are
// decoded as JSON, everything else as YAML.
func Load(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question bank: %w", err)
	}
	return Parse(data, path)
}

// Parse decodes bank data. The path is only used to pick the format.
func Parse(data []byte, path string) (*Bank, error) {
	var (
		b   Bank
		err error
	)
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		err = parseJSON(data, &b)
	} else {
		err = parseYAML(data, &b)
	}
	if err != nil {
		return nil, err
	}

	if len(b.Questions) == 0 {
		return nil, ErrEmptyBank
	}
	return &b, nil
}

func parseJSON(data []byte, b *Bank) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(b); err != nil {
		return fmt.Errorf("parse json: %w", err)
	}
	var extra json.RawMessage
	if err := decoder.Decode(&extra); err != io.EOF {
		if err == nil {
			return errors.New("parse json: multiple documents are not supported")
		}
		return fmt.Errorf("parse json: %w", err)
	}
	return nil
}

func parseYAML(data []byte, b *Bank) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(b); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("parse yaml: %w", err)
	}
	var extra yaml.Node
	if err := decoder.Decode(&extra); err != io.EOF {
		if err == nil {
			return errors.New("parse yaml: multiple documents are not supported")
		}
		return fmt.Errorf("parse yaml: %w", err)
	}
	return nil
}

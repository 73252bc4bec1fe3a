// Where: internal/infra/store/store.go
// What: Registry document persistence.
// Why: Let separate CLI invocations append to the same registry file.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/renameio/v2"
	"sigs.k8s.io/yaml"

	"github.com/poruru-code/hostenv/internal/domain/registry"
)

// Format is the on-disk encoding of a registry file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFor picks the encoding from the file extension. JSON is the default.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load reads the registry at path. A missing or empty file yields an empty registry.
func Load(path string) (*registry.Registry, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return registry.New(), nil
		}
		return nil, fmt.Errorf("read registry: %w", err)
	}
	doc, err := Decode(payload, FormatFor(path))
	if err != nil {
		return nil, fmt.Errorf("decode registry %s: %w", path, err)
	}
	return registry.FromDocument(doc), nil
}

// Decode parses a registry document in the given format.
func Decode(payload []byte, format Format) (map[string]any, error) {
	if len(bytes.TrimSpace(payload)) == 0 {
		return map[string]any{}, nil
	}
	var doc map[string]any
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(payload, &doc)
	default:
		err = json.Unmarshal(payload, &doc)
	}
	if err != nil {
		return nil, err
	}
	if doc == nil {
		doc = map[string]any{}
	}
	return doc, nil
}

// Encode serializes a registry document in the given format.
func Encode(doc map[string]any, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(doc)
	default:
		payload, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(payload, '\n'), nil
	}
}

// Save writes reg to path atomically, creating parent directories.
func Save(path string, reg *registry.Registry) error {
	payload, err := Encode(reg.Document(), FormatFor(path))
	if err != nil {
		return fmt.Errorf("encode registry: %w", err)
	}
	return WriteFile(path, payload)
}

// WriteFile writes payload to path atomically, creating parent directories.
func WriteFile(path string, payload []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := renameio.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

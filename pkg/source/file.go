package source

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/marshallshelly/catalog/pkg/catalog"
)

//go:embed data/catalog.yaml
var builtinData []byte

// Builtin serves the dataset bundled with the binary.
type Builtin struct{}

// NewBuiltin returns the bundled source.
func NewBuiltin() *Builtin { return &Builtin{} }

func (*Builtin) Kind() Kind   { return KindBuiltin }
func (*Builtin) Close() error { return nil }

// Load decodes the bundled dataset.
func (*Builtin) Load(_ context.Context) (catalog.Dataset, error) {
	ds, err := decodeDataset(builtinData)
	if err != nil {
		return catalog.Dataset{}, &LoadError{Source: string(KindBuiltin), Err: err}
	}
	return ds, nil
}

// File reads a dataset from a YAML or JSON document with top-level
// users, categories and products keys.
type File struct {
	path string
}

// NewFile returns a source reading path.
func NewFile(path string) *File { return &File{path: path} }

func (*File) Kind() Kind   { return KindFile }
func (*File) Close() error { return nil }

// Load reads and decodes the file.
func (f *File) Load(_ context.Context) (catalog.Dataset, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return catalog.Dataset{}, &LoadError{Source: f.path, Err: fmt.Errorf("failed to read file: %w", err)}
	}

	ds, err := decodeDataset(data)
	if err != nil {
		return catalog.Dataset{}, &LoadError{Source: f.path, Err: err}
	}
	return ds, nil
}

// decodeDataset parses YAML. JSON documents are accepted as YAML.
func decodeDataset(data []byte) (catalog.Dataset, error) {
	var ds catalog.Dataset

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&ds); err != nil {
		return catalog.Dataset{}, fmt.Errorf("failed to decode dataset: %w", err)
	}

	return ds, nil
}

// EncodeDataset writes ds as YAML.
func EncodeDataset(ds catalog.Dataset) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(ds); err != nil {
		return nil, fmt.Errorf("failed to encode dataset: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode dataset: %w", err)
	}
	return buf.Bytes(), nil
}

package content

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/nfrund/salon/internal/domain"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// DefaultFS returns a read-only filesystem containing the shipped catalog.
func DefaultFS() afero.Fs {
	return afero.FromIOFS{FS: defaultsFS}
}

// Default loads the shipped catalog.
func Default() (*domain.Catalog, error) {
	return Load(DefaultFS(), DefaultPath)
}

// Load reads, decodes and validates a catalog. The format is chosen by file
// extension: .yaml/.yml or .toml.
func Load(fs afero.Fs, path string) (*domain.Catalog, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	cat, err := Decode(formatOf(path), data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode catalog %s: %w", path, err)
	}
	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return cat, nil
}

// Format is a supported catalog encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

func formatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	default:
		return FormatYAML
	}
}

// Decode parses a catalog without validating it. Unknown keys are rejected so
// that typos in hand-edited files surface early.
func Decode(format Format, data []byte) (*domain.Catalog, error) {
	var cat domain.Catalog
	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cat); err != nil {
			return nil, err
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cat); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", format)
	}
	return &cat, nil
}

// Package content provides functionality to load and normalize portfolio repository files.
package content

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/portfolio-cv/internal/schemas"
	"github.com/jonathan/portfolio-cv/internal/types"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a repository file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

//go:embed data/portfolio.json
var defaultRepository []byte

// FormatFromPath picks the format from a file extension. Unknown extensions are read as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load reads, schema-checks and normalizes a repository file.
func Load(path string) (*types.Repository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	repo, err := Parse(data, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return repo, nil
}

// LoadOrDefault loads path, or the embedded repository when path is empty.
func LoadOrDefault(path string) (*types.Repository, error) {
	if path == "" {
		return Default()
	}
	return Load(path)
}

// Default returns a fresh copy of the embedded repository.
func Default() (*types.Repository, error) {
	return Parse(defaultRepository, FormatJSON)
}

// Parse decodes repository content, validates it against the portfolio schema
// and normalizes it. Numeric dates (an unquoted YAML year) are read as strings.
func Parse(data []byte, format Format) (*types.Repository, error) {
	var repo types.Repository

	switch format {
	case FormatYAML:
		var document interface{}
		if err := yaml.Unmarshal(data, &document); err != nil {
			return nil, &LoadError{Message: "failed to unmarshal YAML", Cause: err}
		}
		CoerceDates(document)
		if err := schemas.ValidateRepositoryValue(document); err != nil {
			return nil, &LoadError{Message: "repository does not match schema", Cause: err}
		}
		if err := yaml.Unmarshal(data, &repo); err != nil {
			return nil, &LoadError{Message: "failed to unmarshal YAML", Cause: err}
		}
	case FormatJSON:
		var document interface{}
		if err := json.Unmarshal(data, &document); err != nil {
			return nil, &LoadError{Message: "failed to unmarshal JSON: malformed document", Cause: err}
		}
		CoerceDates(document)
		if err := schemas.ValidateRepositoryValue(document); err != nil {
			return nil, &LoadError{Message: "repository does not match schema", Cause: err}
		}
		coerced, err := json.Marshal(document)
		if err != nil {
			return nil, &LoadError{Message: "failed to re-encode JSON", Cause: err}
		}
		if err := json.Unmarshal(coerced, &repo); err != nil {
			return nil, &LoadError{Message: "failed to unmarshal JSON", Cause: err}
		}
	default:
		return nil, &LoadError{Message: fmt.Sprintf("unsupported format %q", format)}
	}

	if err := Normalize(&repo); err != nil {
		return nil, err
	}
	return &repo, nil
}

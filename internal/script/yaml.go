package script

import (
	"fmt"
	"os"

	"github.com/acrowfliedover/eGainAssignment/pkg/domain"
	"gopkg.in/yaml.v3"
)

// scriptFile is the on-disk YAML shape of a script.
type scriptFile struct {
	InitialStep string        `yaml:"initial_step"`
	Steps       []domain.Step `yaml:"steps"`
}

// LoadFile reads a YAML script and returns a validated repository.
func LoadFile(path string) (*Repository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script file: %w", err)
	}
	return Parse(data)
}

// Parse builds a validated repository from raw YAML.
func Parse(data []byte) (*Repository, error) {
	var f scriptFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse script yaml: %w", err)
	}

	repo, err := New(f.InitialStep, f.Steps)
	if err != nil {
		return nil, fmt.Errorf("script failed validation: %w", err)
	}
	return repo, nil
}

// Load returns the repository for path, or the embedded default when path is
// empty.
func Load(path string) (*Repository, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

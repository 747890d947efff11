package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/colloc/pkg/colloc/internalerr"
)

// DefaultCorpus is the corpus file read when none is configured
const DefaultCorpus = "Collocations"

// File represents the YAML configuration file
type File struct {
	Corpus  string `yaml:"corpus"`
	Measure string `yaml:"measure"`
	Top     int    `yaml:"top"`
	Format  string `yaml:"format"`
}

// LoadFile loads configuration from a YAML file
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w: %v", path, internalerr.ErrInvalidConfig, err)
	}

	return &f, nil
}

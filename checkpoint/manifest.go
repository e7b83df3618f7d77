package checkpoint

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Manifest is the human-readable summary stored next to a snapshot.
type Manifest struct {
	RunID          string     `yaml:"run_id"`
	Created        time.Time  `yaml:"created"`
	Updated        time.Time  `yaml:"updated"`
	Action         ActionSpec `yaml:"action"`
	Generator      string     `yaml:"generator"`
	Seed           uint64     `yaml:"seed"`
	Parallelism    int        `yaml:"parallelism"`
	Stride         int        `yaml:"stride,omitempty"`
	Configurations int        `yaml:"configurations"`
	Snapshot       string     `yaml:"snapshot"`
	Report         string     `yaml:"report,omitempty"`
}

// WriteManifest stores m as YAML at path.
func WriteManifest(path string, m Manifest) error {
	raw, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("checkpoint: manifest: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}

// ReadManifest loads a manifest written by WriteManifest.
func ReadManifest(path string) (Manifest, error) {
	var m Manifest
	raw, err := os.ReadFile(path)
	if err != nil {
		return m, err
	}
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return m, fmt.Errorf("checkpoint: %s: %w", filepath.Base(path), err)
	}
	return m, nil
}

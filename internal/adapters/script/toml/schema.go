package toml

import "fmt"

const currentSchemaVersion = 1

type scriptSchema struct {
	Version  int      `toml:"version"`
	Seed     int64    `toml:"seed,omitempty"`
	Commands []string `toml:"commands"`
}

func (s *scriptSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s scriptSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported script schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

// Package toml reads and writes command scripts as TOML files.
package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/tstack/internal/application"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	scriptFileMode  = 0o644
	scriptDirMode   = 0o755
	tempFilePattern = ".script-*.toml.tmp"
)

var ErrScriptNotFound = errors.New("script not found")

type Store struct{}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Load(ctx context.Context, path string) (application.Script, error) {
	if err := ctx.Err(); err != nil {
		return application.Script{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return application.Script{}, fmt.Errorf("%w: %s", ErrScriptNotFound, path)
		}
		return application.Script{}, fmt.Errorf("read script file: %w", err)
	}

	return Decode(data)
}

// Decode parses a TOML script document.
func Decode(data []byte) (application.Script, error) {
	var file scriptSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return application.Script{}, fmt.Errorf("decode script file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return application.Script{}, err
	}
	file.applyDefaults()

	commands := make([]application.Command, 0, len(file.Commands))
	for i, raw := range file.Commands {
		cmd, err := application.ParseCommand(raw)
		if err != nil {
			return application.Script{}, fmt.Errorf("script command %d: %w", i+1, err)
		}
		commands = append(commands, cmd)
	}

	return application.Script{Seed: file.Seed, Commands: commands}, nil
}

// Save writes script to path atomically through a temp file in the same
// directory.
func (s *Store) Save(ctx context.Context, path string, script application.Script) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	file := scriptSchema{Seed: script.Seed, Commands: make([]string, 0, len(script.Commands))}
	file.applyDefaults()
	for _, cmd := range script.Commands {
		file.Commands = append(file.Commands, cmd.Name())
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode script file: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, scriptDirMode); err != nil {
		return fmt.Errorf("create script directory: %w", err)
	}

	tempFile, err := os.CreateTemp(dir, tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp script file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp script file: %w", err)
	}

	if err := tempFile.Chmod(scriptFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp script file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp script file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace script file: %w", err)
	}

	cleanup = false
	return nil
}

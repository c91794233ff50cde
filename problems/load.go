package problems

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	default:
		return "", fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
}

// Load reads and validates a problem set from path. Environment variables
// in path are expanded.
func Load(path string) (Set, error) {
	path = os.ExpandEnv(path)

	format, err := FormatOf(path)
	if err != nil {
		return Set{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return Set{}, fmt.Errorf("open problem file: %w", err)
	}
	defer f.Close()

	set, err := Decode(f, format)
	if err != nil {
		return Set{}, fmt.Errorf("%s: %w", path, err)
	}

	return set, nil
}

// Decode reads a problem set in the given format and validates it.
// Unknown keys are rejected.
func Decode(r io.Reader, format Format) (Set, error) {
	var set Set

	switch format {
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&set); err != nil && !errors.Is(err, io.EOF) {
			return Set{}, fmt.Errorf("decode yaml: %w", err)
		}
	case TOML:
		md, err := toml.NewDecoder(r).Decode(&set)
		if err != nil {
			return Set{}, fmt.Errorf("decode toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Set{}, fmt.Errorf("decode toml: unknown key %q: %w", undecoded[0].String(), ErrInvalidProblem)
		}
	default:
		return Set{}, fmt.Errorf("%q: %w", format, ErrUnsupportedFormat)
	}

	if err := set.Validate(); err != nil {
		return Set{}, err
	}

	return set, nil
}

// Encode writes s in the given format.
func Encode(w io.Writer, s Set, format Format) error {
	switch format {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}

		return enc.Close()
	case TOML:
		if err := toml.NewEncoder(w).Encode(s); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}

		return nil
	default:
		return fmt.Errorf("%q: %w", format, ErrUnsupportedFormat)
	}
}

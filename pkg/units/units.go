// Package units resolves the operator mode for compilation units. The mode is
// declared in the project manifest (solis.yml) rather than inferred at run
// time: the host resolves it once per unit and threads it explicitly through
// every engine call.
package units

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"solis/runtime-go/pkg/operators"
)

// Manifest models the solis.yml project file.
type Manifest struct {
	Name            string       `yaml:"name"`
	StrictOperators StrictConfig `yaml:"strict_operators"`
}

// StrictConfig selects which units evaluate operators strictly. Exclude
// patterns win over include patterns; units matching neither use the default.
type StrictConfig struct {
	Default bool     `yaml:"default"`
	Include []string `yaml:"include"`
	Exclude []string `yaml:"exclude"`
}

// LoadManifest parses solis.yml from disk.
func LoadManifest(manifestPath string) (*Manifest, error) {
	if manifestPath == "" {
		return nil, fmt.Errorf("manifest: empty path")
	}
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, err
	}
	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("manifest %s: %w", manifestPath, err)
	}
	for _, pattern := range append(append([]string{}, manifest.StrictOperators.Include...), manifest.StrictOperators.Exclude...) {
		if strings.TrimSpace(pattern) == "" {
			return nil, fmt.Errorf("manifest %s: empty strict_operators pattern", manifestPath)
		}
	}
	return &manifest, nil
}

// ModeFor answers the operator mode for a unit path relative to the manifest.
func (m *Manifest) ModeFor(unit string) operators.Mode {
	if m == nil {
		return operators.Weak
	}
	normalized := filepath.ToSlash(strings.TrimPrefix(unit, "./"))
	for _, pattern := range m.StrictOperators.Exclude {
		if matchUnitPattern(pattern, normalized) {
			return operators.Weak
		}
	}
	for _, pattern := range m.StrictOperators.Include {
		if matchUnitPattern(pattern, normalized) {
			return operators.Strict
		}
	}
	if m.StrictOperators.Default {
		return operators.Strict
	}
	return operators.Weak
}

// matchUnitPattern matches slash-separated glob patterns where ** spans any
// number of path segments and the remaining wildcards follow path.Match.
func matchUnitPattern(pattern string, unit string) bool {
	return matchSegments(strings.Split(pattern, "/"), strings.Split(unit, "/"))
}

func matchSegments(pattern []string, segments []string) bool {
	if len(pattern) == 0 {
		return len(segments) == 0
	}
	if pattern[0] == "**" {
		for skip := 0; skip <= len(segments); skip++ {
			if matchSegments(pattern[1:], segments[skip:]) {
				return true
			}
		}
		return false
	}
	if len(segments) == 0 {
		return false
	}
	if ok, err := path.Match(pattern[0], segments[0]); err != nil || !ok {
		return false
	}
	return matchSegments(pattern[1:], segments[1:])
}

// Resolver caches per-unit mode lookups for a loaded manifest. It is safe for
// concurrent use by a multi-threaded host.
type Resolver struct {
	manifest *Manifest

	mu    sync.Mutex
	cache map[string]operators.Mode
}

// NewResolver wraps a manifest. A nil manifest resolves every unit to weak
// mode, which is the behaviour of a project with no solis.yml.
func NewResolver(manifest *Manifest) *Resolver {
	return &Resolver{manifest: manifest, cache: make(map[string]operators.Mode)}
}

// ModeFor resolves and caches the mode for a unit path.
func (r *Resolver) ModeFor(unit string) operators.Mode {
	r.mu.Lock()
	defer r.mu.Unlock()
	if mode, ok := r.cache[unit]; ok {
		return mode
	}
	mode := r.manifest.ModeFor(unit)
	r.cache[unit] = mode
	return mode
}

package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// optionsFileName is the per-project options file looked up next to the
// entry source file, mirroring the teacher's funxy.yaml convention
// (internal/ext.Config) but scoped to compiler-behavior knobs instead of Go
// dependency bindings.
const optionsFileName = ".lainc.yaml"

// CompileOptions are the per-project knobs spec.md's ambient design leaves
// to "implementations choose" (§4.5, §4.6): a strict-contracts flag, and
// whether loop-body widening (§4.5) can be disabled for debugging.
type CompileOptions struct {
	// StrictContracts is read from the options file, but neither the CLI
	// nor internal/sema consults it: post-conditions that are merely
	// "possibly true" are accepted without any warning whatever its value.
	StrictContracts bool `yaml:"strictContracts"`

	// DisableWidening turns off the loop pre/post-body widening spec.md
	// §4.5 requires for soundness. It exists purely as a diagnostic
	// escape hatch for comparing widened vs. unwidened output; turning it
	// off makes range analysis unsound and every such run should be
	// treated as exploratory, not as a correctness signal.
	DisableWidening bool `yaml:"disableWidening"`
}

// DefaultOptions returns the sound, conservative defaults.
func DefaultOptions() CompileOptions {
	return CompileOptions{}
}

// LoadOptions reads optionsFileName from the directory containing
// entryPath, if present, layering it over DefaultOptions. A missing file is
// not an error — most projects never need one.
func LoadOptions(entryPath string) (CompileOptions, error) {
	opts := DefaultOptions()

	dir := filepath.Dir(entryPath)
	data, err := os.ReadFile(filepath.Join(dir, optionsFileName))
	if os.IsNotExist(err) {
		return opts, nil
	}
	if err != nil {
		return opts, err
	}

	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, err
	}
	return opts, nil
}

// Package cli holds flag plumbing shared by the command: version
// reporting and YAML config-file defaults.
package cli

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Version is set via the Go linker.
var Version = "unknown"

// ConfigEnv names the environment variable consulted for a default
// config file path.
const ConfigEnv = "DFGREP_CONFIG"

// ApplyConfig loads a YAML mapping of flag names to values and applies
// each entry to fs unless that flag was set explicitly on the command
// line.  A missing path is not an error when it came from the
// environment default.
func ApplyConfig(fs *flag.FlagSet, path string, fromEnv bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if fromEnv && os.IsNotExist(err) {
			return nil
		}
		return err
	}
	var conf map[string]string
	if err := yaml.Unmarshal(data, &conf); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	explicit := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
	for name, value := range conf {
		if explicit[name] {
			continue
		}
		if err := fs.Set(name, value); err != nil {
			return fmt.Errorf("%s: flag %q: %w", path, name, err)
		}
	}
	return nil
}

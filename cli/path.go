package cli

import (
	"path/filepath"

	"github.com/justDeeevin/juicy-main/pkg"
)

// baseConfig is the base name of the user configuration files.
const baseConfig = "config"

// localConfig is the configuration file read from the working directory.
const localConfig = "." + pkg.Name + ".yaml"

// configPath returns the path formed by joining the user configuration
// directory with elem.
func configPath(elem ...string) string {
	return filepath.Join(append([]string{pkg.ConfigDir()}, elem...)...)
}

// configFiles returns the YAML configuration files in the order they are
// read. Missing files are skipped.
func configFiles() []string {
	return []string{
		configPath(baseConfig + ".yaml"),
		configPath(baseConfig + ".yml"),
		localConfig,
	}
}

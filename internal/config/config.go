// Package config loads optional run defaults from a YAML file via
// cleanenv, used as pure defaults for the CLI's positional arguments,
// never as a substitute for them. There are no environment variables
// in this system's external interface; the only override path is
// flag > file > built-in default.
package config

import (
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Defaults holds fallback values used when the corresponding
// positional CLI argument is omitted.
type Defaults struct {
	Env               string `yaml:"env" env-default:"local"`
	SolutionsDestPath string `yaml:"solutions_dest_path" env-default:""`
	NumWorkers        int    `yaml:"num_workers" env-default:"1"`
}

// Load reads Defaults from a YAML file at path. A missing path is not
// an error: callers get the built-in Defaults (env "local", no
// destination file, one worker).
func Load(path string) (*Defaults, error) {
	d := &Defaults{Env: "local", NumWorkers: 1}
	if path == "" {
		return d, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return d, nil
	}

	if err := cleanenv.ReadConfig(path, d); err != nil {
		return nil, err
	}
	return d, nil
}

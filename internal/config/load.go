package config

import (
	"os"

	"github.com/goccy/go-yaml"
)

// Load reads a project configuration file (conventionally "transpile.yaml")
// and overlays it onto Default(). It is the one piece of "driving" the
// core accepts as an input record rather than leaving entirely to an
// external orchestrator; every field the file sets still only feeds the
// same fields Config already declares.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

package glint

import (
	"io/ioutil"
	"os"

	"gopkg.in/yaml.v2"
)

// Config holds the small set of knobs an embedder may want to override
// from a glint.yaml file, rather than from Go code or environment
// variables alone. Its absence is not an error: a zero Config has sane
// defaults, the way the teacher's best-effort os.Executable probing in
// system.go degrades gracefully when it can't determine a path.
type Config struct {
	// SearchPath supplements GLAS_PATH with additional directories, tried
	// after it.
	SearchPath []string `yaml:"search_path"`
	// LogLevel is one of "info", "warn", "error"; lines below it are
	// suppressed. Empty means "info".
	LogLevel string `yaml:"log_level"`
	// TimeFormat is the strftime format passed to Logger.
	TimeFormat string `yaml:"time_format"`
}

// LoadConfig reads path (conventionally "glint.yaml") if it exists. A
// missing file yields a zero Config and a nil error; any other read or
// parse error is returned.
func LoadConfig(path string) (Config, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, NewHostError("read config", path, err)
	}
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, NewHostError("parse config", path, err)
	}
	return c, nil
}

package devops

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

type Config struct {
	DSN           string   `yaml:"dsn"`
	Port          string   `yaml:"port"`
	CorsOrigins   []string `yaml:"corsOrigins"`
	MaxConnection int      `yaml:"maxConnection"`
}

var (
	once    sync.Once
	cfg     *Config
	loadErr error
)

// LoadConfig reads config.yaml (if present) and applies environment
// overrides: DSN, PORT, CORS_ORIGINS. Subsequent calls return the
// cached result.
func LoadConfig(path string) (*Config, error) {
	once.Do(func() {
		parsed := &Config{
			Port:          "8090",
			MaxConnection: 10,
		}

		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, parsed); err != nil {
				loadErr = fmt.Errorf("unmarshal yaml: %w", err)
				return
			}
		} else if !os.IsNotExist(err) {
			loadErr = fmt.Errorf("read config: %w", err)
			return
		}

		if dsn := os.Getenv("DSN"); dsn != "" {
			parsed.DSN = dsn
		}
		if port := os.Getenv("PORT"); port != "" {
			parsed.Port = port
		}
		if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
			parsed.CorsOrigins = strings.Split(origins, ",")
		}

		cfg = parsed
	})

	return cfg, loadErr
}

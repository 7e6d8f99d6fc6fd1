package config

import (
	"os"
	"path/filepath"
	"strings"

	"fjacquet/ah-csv/internal/logging"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// LoadEnv loads environment variables from a .env file in the current or
// parent directory. Variables already set in the environment win.
// It returns the file that was loaded, or "" when none was found.
func LoadEnv() (string, error) {
	for _, envFile := range []string{".env", filepath.Join("..", ".env")} {
		if _, err := os.Stat(envFile); err != nil {
			continue
		}
		if err := godotenv.Load(envFile); err != nil {
			return envFile, err
		}
		return envFile, nil
	}
	return "", nil
}

// ConfigureLoggingFromConfig builds the application logger from the log
// section and installs it as the package default.
func ConfigureLoggingFromConfig(config *Config) logging.Logger {
	level, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		level = logrus.InfoLevel
	}

	base := logrus.New()
	base.SetLevel(level)
	if strings.ToLower(config.Log.Format) == "json" {
		base.SetFormatter(&logrus.JSONFormatter{})
	} else {
		base.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	adapter := logging.NewLogrusAdapterFromLogger(base)
	logging.SetDefault(adapter)
	return adapter
}

// ResolvePath anchors a relative path at data.directory. Absolute paths and
// an empty data directory leave p unchanged.
func (c *Config) ResolvePath(p string) string {
	if p == "" || filepath.IsAbs(p) || c.Data.Directory == "" {
		return p
	}
	return filepath.Join(c.Data.Directory, p)
}

// DatabasePath is database.path resolved against data.directory.
func (c *Config) DatabasePath() string {
	return c.ResolvePath(c.Database.Path)
}

// TaxonomyPath is taxonomy.file resolved against data.directory.
func (c *Config) TaxonomyPath() string {
	return c.ResolvePath(c.Taxonomy.File)
}

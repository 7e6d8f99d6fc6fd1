// Package store persists the category taxonomy as a YAML file so that
// keyword and abbreviation changes survive restarts.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/ah-csv/internal/fileutils"
	"fjacquet/ah-csv/internal/logging"
	"fjacquet/ah-csv/internal/models"
	"fjacquet/ah-csv/internal/parsererror"
	"fjacquet/ah-csv/internal/taxonomy"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the taxonomy file name used when none is configured.
const DefaultFile = "taxonomy.yaml"

// Repository loads and saves taxonomy snapshots.
type Repository interface {
	Load() (taxonomy.Snapshot, error)
	Save(snapshot taxonomy.Snapshot) error
}

// TaxonomyStore reads and writes the taxonomy YAML file.
type TaxonomyStore struct {
	File   string
	logger logging.Logger
}

var _ Repository = (*TaxonomyStore)(nil)

// NewTaxonomyStore creates a store for file. An empty name selects DefaultFile.
func NewTaxonomyStore(file string, logger logging.Logger) *TaxonomyStore {
	if file == "" {
		file = DefaultFile
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &TaxonomyStore{File: file, logger: logger}
}

// FindConfigFile looks for a configuration file in standard locations
func (s *TaxonomyStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(homeDir, ".config", "ah-csv", filename))
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}
	return "", os.ErrNotExist
}

// Load returns the stored taxonomy. A missing file yields the built-in
// defaults, and sections absent from the file keep their defaults.
func (s *TaxonomyStore) Load() (taxonomy.Snapshot, error) {
	path, err := s.FindConfigFile(s.File)
	if errors.Is(err, os.ErrNotExist) {
		s.logger.Debug("Taxonomy file not found, using built-in defaults",
			logging.F(logging.FieldFile, s.File))
		return taxonomy.Default(), nil
	}
	if err != nil {
		return taxonomy.Snapshot{}, fmt.Errorf("error resolving taxonomy file: %w", err)
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path comes from configuration
	if err != nil {
		return taxonomy.Snapshot{}, fmt.Errorf("error reading taxonomy file: %w", err)
	}

	var snapshot taxonomy.Snapshot
	if err := yaml.Unmarshal(data, &snapshot); err != nil {
		return taxonomy.Snapshot{}, fmt.Errorf("error parsing taxonomy file %s: %w", path, err)
	}
	fillDefaults(&snapshot)
	if err := validate(snapshot); err != nil {
		return taxonomy.Snapshot{}, err
	}

	s.logger.Debug("Loaded taxonomy",
		logging.F(logging.FieldFile, path),
		logging.F(logging.FieldVersion, snapshot.Version),
		logging.F(logging.FieldCount, len(snapshot.Categories)))
	return snapshot, nil
}

// Save writes snapshot to the file found by FindConfigFile, or to File when
// it does not exist yet. The write replaces the file atomically.
func (s *TaxonomyStore) Save(snapshot taxonomy.Snapshot) error {
	path, err := s.FindConfigFile(s.File)
	if err != nil {
		path = s.File
	}

	data, err := yaml.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("error marshaling taxonomy: %w", err)
	}
	if err := fileutils.WriteFileAtomic(path, data, models.PermissionConfigFile); err != nil {
		return fmt.Errorf("error writing taxonomy: %w", err)
	}

	s.logger.Debug("Saved taxonomy",
		logging.F(logging.FieldFile, path),
		logging.F(logging.FieldVersion, snapshot.Version))
	return nil
}

func fillDefaults(snapshot *taxonomy.Snapshot) {
	defaults := taxonomy.Default()
	if snapshot.PriorityRules == nil {
		snapshot.PriorityRules = defaults.PriorityRules
	}
	if snapshot.Categories == nil {
		snapshot.Categories = defaults.Categories
	}
	if snapshot.Subcategories == nil {
		snapshot.Subcategories = defaults.Subcategories
	}
	if snapshot.Abbreviations == nil {
		snapshot.Abbreviations = defaults.Abbreviations
	}
}

func validate(snapshot taxonomy.Snapshot) error {
	for i, c := range snapshot.Categories {
		if c.Name == "" {
			return &parsererror.ValidationError{
				Subject: fmt.Sprintf("categories[%d]", i),
				Reason:  "category name is empty",
			}
		}
	}
	for i, r := range snapshot.PriorityRules {
		if r.Category == "" {
			return &parsererror.ValidationError{
				Subject: fmt.Sprintf("priority_rules[%d]", i),
				Reason:  "rule has no category",
			}
		}
	}
	for i, a := range snapshot.Abbreviations {
		if a.Short == "" || a.Full == "" {
			return &parsererror.ValidationError{
				Subject: fmt.Sprintf("abbreviations[%d]", i),
				Reason:  "abbreviation needs both short and full names",
			}
		}
	}
	return nil
}

package store

import "fjacquet/ah-csv/internal/taxonomy"

// MockRepository is an in-memory Repository for testing.
type MockRepository struct {
	Snapshot  *taxonomy.Snapshot
	Saved     []taxonomy.Snapshot
	LoadError error
	SaveError error
}

// Load returns the mock snapshot, or the defaults when none is set.
func (m *MockRepository) Load() (taxonomy.Snapshot, error) {
	if m.LoadError != nil {
		return taxonomy.Snapshot{}, m.LoadError
	}
	if m.Snapshot == nil {
		return taxonomy.Default(), nil
	}
	return m.Snapshot.Clone(), nil
}

// Save records snapshot.
func (m *MockRepository) Save(snapshot taxonomy.Snapshot) error {
	if m.SaveError != nil {
		return m.SaveError
	}
	m.Saved = append(m.Saved, snapshot.Clone())
	return nil
}

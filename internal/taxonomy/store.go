package taxonomy

import (
	"strings"
	"sync"

	"fjacquet/ah-csv/internal/logging"
	"fjacquet/ah-csv/internal/parsererror"
)

// Store owns the process-wide taxonomy. Readers take snapshots; writers go
// through the mutation methods, each of which bumps the version. Snapshots
// handed out earlier never observe later mutations.
type Store struct {
	mu      sync.RWMutex
	current Snapshot
	logger  logging.Logger
}

// NewStore creates a store seeded with a copy of initial.
func NewStore(initial Snapshot, logger logging.Logger) *Store {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Store{current: initial.Clone(), logger: logger}
}

// Snapshot returns a deep copy of the current taxonomy.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Clone()
}

// Version returns the current version number.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Version
}

// Keywords returns each category's keywords in declared order.
func (s *Store) Keywords() []CategoryKeywords {
	return s.Snapshot().Categories
}

// AddKeyword appends keyword to the category's list.
func (s *Store) AddKeyword(category, keyword string) error {
	kw, err := cleanKeyword(keyword)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.current.categoryIndex(category)
	if idx < 0 {
		return &parsererror.NotFoundError{Kind: "category", Name: category}
	}
	for _, existing := range s.current.Categories[idx].Keywords {
		if existing == kw {
			return &parsererror.ConflictError{Kind: "keyword", Name: kw, In: category}
		}
	}

	next := s.current.Clone()
	next.Categories[idx].Keywords = append(next.Categories[idx].Keywords, kw)
	s.commit(next, "add_keyword", logging.F(logging.FieldCategory, category), logging.F(logging.FieldKeyword, kw))
	return nil
}

// RemoveKeyword deletes keyword from the category's list.
func (s *Store) RemoveKeyword(category, keyword string) error {
	kw, err := cleanKeyword(keyword)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.current.categoryIndex(category)
	if idx < 0 {
		return &parsererror.NotFoundError{Kind: "category", Name: category}
	}
	pos := -1
	for i, existing := range s.current.Categories[idx].Keywords {
		if existing == kw {
			pos = i
			break
		}
	}
	if pos < 0 {
		return &parsererror.NotFoundError{Kind: "keyword", Name: kw, In: category}
	}

	next := s.current.Clone()
	kws := next.Categories[idx].Keywords
	next.Categories[idx].Keywords = append(kws[:pos], kws[pos+1:]...)
	s.commit(next, "remove_keyword", logging.F(logging.FieldCategory, category), logging.F(logging.FieldKeyword, kw))
	return nil
}

// LearnAbbreviation maps short (upper-cased) to full. An existing mapping is
// replaced in place; a new one is appended after all others.
func (s *Store) LearnAbbreviation(short, full string) error {
	key := strings.ToUpper(strings.TrimSpace(short))
	full = strings.TrimSpace(full)
	if key == "" {
		return &parsererror.ValidationError{Subject: "abbreviation", Reason: "short form must not be empty"}
	}
	if full == "" {
		return &parsererror.ValidationError{Subject: "abbreviation", Reason: "full name must not be empty"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.current.Clone()
	replaced := false
	for i, a := range next.Abbreviations {
		if a.Short == key {
			next.Abbreviations[i].Full = full
			replaced = true
			break
		}
	}
	if !replaced {
		next.Abbreviations = append(next.Abbreviations, Abbreviation{Short: key, Full: full})
	}
	s.commit(next, "learn_abbreviation", logging.F("abbreviation", key), logging.F(logging.FieldProduct, full))
	return nil
}

// Replace swaps in a whole new taxonomy, for example one loaded from disk.
func (s *Store) Replace(snapshot Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commit(snapshot.Clone(), "replace")
}

// commit must be called with the write lock held.
func (s *Store) commit(next Snapshot, op string, fields ...logging.Field) {
	next.Version = s.current.Version + 1
	s.current = next
	fields = append(fields,
		logging.F(logging.FieldOperation, op),
		logging.F(logging.FieldVersion, next.Version))
	s.logger.WithFields(fields...).Debug("Taxonomy updated")
}

func cleanKeyword(keyword string) (string, error) {
	kw := strings.ToLower(strings.TrimSpace(keyword))
	if kw == "" {
		return "", &parsererror.ValidationError{Subject: "keyword", Reason: "keyword must not be empty"}
	}
	return kw, nil
}

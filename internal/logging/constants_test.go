package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstants(t *testing.T) {
	names := []string{
		FieldFile, FieldParser, FieldDocumentKind, FieldDocumentHash, FieldLine,
		FieldGrammar, FieldProduct, FieldCategory, FieldSubcategory, FieldKeyword,
		FieldStrategy, FieldReason, FieldOperation, FieldStatus, FieldError,
		FieldDuration, FieldCount, FieldRunID, FieldVersion, FieldDelimiter,
		FieldInputFile, FieldOutputFile,
	}

	seen := make(map[string]bool, len(names))
	for _, name := range names {
		assert.NotEmpty(t, name)
		assert.False(t, seen[name], "duplicate field name %q", name)
		seen[name] = true
	}
}

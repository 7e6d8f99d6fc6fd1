package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fjacquet/ah-csv/internal/logging"
	"fjacquet/ah-csv/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBaseParser(t *testing.T) {
	t.Run("with provided logger", func(t *testing.T) {
		mockLog := logging.NewMockLogger()
		baseParser := NewBaseParser(mockLog)
		assert.Equal(t, mockLog, baseParser.GetLogger())
	})

	t.Run("with nil logger", func(t *testing.T) {
		baseParser := NewBaseParser(nil)
		assert.NotNil(t, baseParser.GetLogger())
	})
}

func TestBaseParser_SetLogger(t *testing.T) {
	baseParser := NewBaseParser(logging.NewMockLogger())
	replacement := logging.NewMockLogger()

	baseParser.SetLogger(replacement)
	assert.Equal(t, replacement, baseParser.GetLogger())

	baseParser.SetLogger(nil)
	assert.Equal(t, replacement, baseParser.GetLogger(), "nil must not replace the logger")
}

func TestBaseParser_WriteToCSV(t *testing.T) {
	mockLog := logging.NewMockLogger()
	baseParser := NewBaseParser(mockLog)
	doc := &models.Document{
		Items: []models.ClassifiedItem{
			{DisplayName: "AH Bananen", Quantity: 1, Price: decimal.RequireFromString("1.89"), TaxRate: models.TaxRateLow, Category: models.CategoryProduce},
		},
	}

	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, baseParser.WriteToCSV(doc, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "AH Bananen"))
	assert.True(t, mockLog.HasEntry("INFO", "Writing items to CSV"))
}

func TestSnippet(t *testing.T) {
	assert.Equal(t, "short", Snippet("short"))
	long := strings.Repeat("é", 100)
	assert.Equal(t, strings.Repeat("é", 80), Snippet(long))
}

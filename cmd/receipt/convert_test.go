package receipt_test

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/ah-csv/cmd/receipt"
	"fjacquet/ah-csv/cmd/root"
	"fjacquet/ah-csv/internal/common"
	"fjacquet/ah-csv/internal/config"
	"fjacquet/ah-csv/internal/container"
	"fjacquet/ah-csv/internal/logging"
	"fjacquet/ah-csv/internal/models"
	"fjacquet/ah-csv/internal/pdfparser"
	"fjacquet/ah-csv/internal/store"

	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const receiptText = `1177
OMSCHRIJVING PRIJS BEDRAG
0.962KG TROSTOMAAT 2,38 2,29
1 AH HV MELK 1,19
SUBTOTAAL 3,48
14:26 20-12-2025
`

func TestReceiptCommand_Converts(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Database.Path = filepath.Join(dir, "ledger.db")
	cfg.CSV.Delimiter = ";"

	c, err := container.NewContainer(cfg,
		container.WithLogger(logging.NewMockLogger()),
		container.WithExtractor(pdfparser.NewMockPDFExtractor(receiptText, nil)),
		container.WithRepository(&store.MockRepository{}))
	require.NoError(t, err)
	root.SetContainer(c)
	t.Cleanup(func() {
		_ = c.Close()
		root.SetContainer(nil)
		root.SharedFlags = root.CommonFlags{}
		common.SetDelimiter(',')
	})

	input := filepath.Join(dir, "bon.pdf")
	require.NoError(t, os.WriteFile(input, []byte("%PDF"), 0600))
	root.SharedFlags.Input = input
	root.SharedFlags.Validate = true

	require.NoError(t, receipt.Cmd.RunE(receipt.Cmd, nil))

	output := filepath.Join(dir, "bon.csv")
	raw, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(raw), ";")

	rows := readRows(t, output, ';')
	require.Len(t, rows, 2)
	assert.Equal(t, "AH Trostomaten (0.962kg)", rows[0].Name)
	assert.Equal(t, "TROSTOMAAT", rows[0].OriginalRaw)
	assert.Equal(t, models.CategoryProduce, rows[0].Category)
	assert.Equal(t, "AH Halfvolle melk", rows[1].Name)
	assert.Equal(t, "BON-1177", rows[1].Document)
}

func TestReceiptCommand_Metadata(t *testing.T) {
	assert.Equal(t, "receipt", receipt.Cmd.Use)
	assert.Contains(t, receipt.Cmd.Aliases, "kassabon")
	assert.NotNil(t, receipt.Cmd.RunE)
}

func readRows(t *testing.T, path string, comma rune) []models.ItemRow {
	t.Helper()
	file, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = file.Close() }()

	reader := csv.NewReader(file)
	reader.Comma = comma
	var rows []models.ItemRow
	require.NoError(t, gocsv.UnmarshalCSV(reader, &rows))
	return rows
}

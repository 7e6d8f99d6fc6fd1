package pdfparser

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// PdftotextExtractor shells out to poppler's pdftotext in layout mode.
type PdftotextExtractor struct {
	// Binary is the pdftotext executable, "pdftotext" by default.
	Binary string
}

// NewPdftotextExtractor creates an extractor that uses pdftotext from PATH.
func NewPdftotextExtractor() *PdftotextExtractor {
	return &PdftotextExtractor{Binary: "pdftotext"}
}

// ExtractText runs pdftotext -layout and returns its output. pdftotext
// separates pages with form feeds, which are turned into newlines.
func (e *PdftotextExtractor) ExtractText(pdfPath string) (string, error) {
	outDir, err := os.MkdirTemp("", "ah-csv-pdftotext-")
	if err != nil {
		return "", fmt.Errorf("error creating temp dir: %w", err)
	}
	defer func() { _ = os.RemoveAll(outDir) }()

	outFile := filepath.Join(outDir, "out.txt")
	cmd := exec.Command(e.Binary, "-layout", "-enc", "UTF-8", pdfPath, outFile) // #nosec G204 -- fixed binary, user-provided file path
	if output, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("error running pdftotext: %w: %s", err, string(output))
	}

	data, err := os.ReadFile(outFile) // #nosec G304 -- file created above
	if err != nil {
		return "", fmt.Errorf("error reading extracted text: %w", err)
	}
	return normalizePageBreaks(string(data)), nil
}

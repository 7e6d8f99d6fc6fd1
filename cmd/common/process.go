// Package common contains shared functionality for command handlers
package common

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"fjacquet/ah-csv/internal/logging"
	"fjacquet/ah-csv/internal/parser"
	"fjacquet/ah-csv/internal/validation"
)

// ErrInvalidFormat is returned when validation is requested and the input
// does not look like the parser's document kind.
var ErrInvalidFormat = errors.New("the file is not in a valid format")

// ProcessFile converts inputFile with p and writes the items to outputFile.
// An empty outputFile is derived from inputFile.
func ProcessFile(p parser.FullParser, inputFile, outputFile string, validate bool, log logging.Logger) error {
	if inputFile == "" {
		return fmt.Errorf("input file must be specified with --input")
	}
	if err := validation.IsValidPath(inputFile); err != nil {
		return err
	}
	if outputFile == "" {
		outputFile = DefaultOutput(inputFile)
	}

	p.SetLogger(log)

	if validate {
		log.Info("Validating format...", logging.F(logging.FieldFile, inputFile))
		valid, err := p.ValidateFormat(inputFile)
		if err != nil {
			return fmt.Errorf("error validating file: %w", err)
		}
		if !valid {
			return ErrInvalidFormat
		}
		log.Info("Validation successful.")
	}

	if err := p.ConvertToCSV(inputFile, outputFile); err != nil {
		return fmt.Errorf("error converting to CSV: %w", err)
	}
	log.Info("Conversion completed successfully!",
		logging.F(logging.FieldInputFile, inputFile),
		logging.F(logging.FieldOutputFile, outputFile))
	return nil
}

// DefaultOutput replaces the extension of input with .csv.
func DefaultOutput(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".csv"
}

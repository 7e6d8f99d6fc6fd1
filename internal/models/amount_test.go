package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "CommaSeparator", input: "2,38", expected: "2.38"},
		{name: "DotSeparator", input: "2.29", expected: "2.29"},
		{name: "Whitespace", input: "  12,50 ", expected: "12.50"},
		{name: "EuroSign", input: "€ 3,99", expected: "3.99"},
		{name: "Integer", input: "7", expected: "7.00"},
		{name: "Garbage", input: "abc", expected: "0.00"},
		{name: "Empty", input: "", expected: "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseAmount(tt.input).StringFixed(2))
		})
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "1.10", FormatAmount(decimal.RequireFromString("1.1")))
	assert.Equal(t, "0.00", FormatAmount(decimal.Zero))
}

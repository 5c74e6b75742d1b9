package coerce

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func today() string {
	return time.Now().Format("2006-01-02")
}

func TestText(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"nil", nil, ""},
		{"trims whitespace", "  Ivanov I.I.  ", "Ivanov I.I."},
		{"number", 42, "42"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Text(tt.value))
		})
	}
}

func TestDate(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"iso", "2024-03-01", "2024-03-01"},
		{"dotted dmy", "01.03.2024", "2024-03-01"},
		{"slashed mdy", "03/15/2024", "2024-03-15"},
		{"dashed dmy", "15-03-2024", "2024-03-15"},
		{"slashed ymd", "2024/03/01", "2024-03-01"},
		{"garbage falls back to today", "not a date", today()},
		{"missing falls back to today", nil, today()},
		{"blank falls back to today", "   ", today()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Date(tt.value))
		})
	}
}

func TestDateAcceptsTimeValue(t *testing.T) {
	v := time.Date(2024, 9, 26, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "2024-09-26", Date(v))
}

func TestDateInExcelFormats(t *testing.T) {
	// DD/MM/YYYY and YYYY.MM.DD only parse with the Excel layout list.
	assert.Equal(t, "2024-12-25", DateIn("25/12/2024", ExcelFormats))
	assert.Equal(t, "2024-03-01", DateIn("2024.03.01", ExcelFormats))

	// The CSV list rejects them and falls back to today.
	assert.Equal(t, today(), DateIn("25/12/2024", Formats))
}

func TestInt(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  int
	}{
		{"plain", "5", 5},
		{"through float intermediate", "3.0", 3},
		{"missing defaults to one", nil, 1},
		{"blank defaults to one", "", 1},
		{"garbage defaults to one", "many", 1},
		{"native int", 7, 7},
		{"native float", 2.9, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Int(tt.value))
		})
	}
}

func TestFloat(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  float64
	}{
		{"plain", "12.5", 12.5},
		{"integer text", "100", 100.0},
		{"missing defaults to zero", nil, 0.0},
		{"blank defaults to zero", "", 0.0},
		{"garbage defaults to zero", "free", 0.0},
		{"native float", 4.5, 4.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Float(tt.value))
		})
	}
}

package parallax

import (
	"errors"
	"testing"
)

func TestDefaultTable_Valid(t *testing.T) {
	table := DefaultTable()
	if err := table.Validate(); err != nil {
		t.Fatalf("default table invalid: %v", err)
	}
	if table.Bands() != 7 {
		t.Errorf("expected 7 visible bands, got %d", table.Bands())
	}
	wantLines := []uint8{0, 35, 47, 63, 83, 92, 103, 255}
	for i, d := range table {
		if d.Line != wantLines[i] {
			t.Errorf("band %d: expected line %d, got %d", i, wantLines[i], d.Line)
		}
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name  string
		table Table
		want  error
	}{
		{"empty", Table{}, ErrEmptyTable},
		{"terminator only", Table{{Line: TerminatorLine}}, ErrEmptyTable},
		{"first line", Table{{Line: 4}, {Line: TerminatorLine}}, ErrFirstLine},
		{"descending", Table{{Line: 0}, {Line: 50}, {Line: 40}, {Line: TerminatorLine}}, ErrNotAscending},
		{"duplicate", Table{{Line: 0}, {Line: 50}, {Line: 50}, {Line: TerminatorLine}}, ErrNotAscending},
		{"no terminator", Table{{Line: 0}, {Line: 50}}, ErrMissingTerminator},
		{"moving terminator", Table{{Line: 0}, {Line: TerminatorLine, Speed: 1}}, ErrMissingTerminator},
	}
	for _, tc := range tests {
		err := tc.table.Validate()
		if !errors.Is(err, tc.want) {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestValidate_MinimalTable(t *testing.T) {
	table := Table{{Line: 0, Speed: 3}, {Line: TerminatorLine, TimerMax: 9}}
	if err := table.Validate(); err != nil {
		t.Errorf("expected minimal table to be valid, got %v", err)
	}
}

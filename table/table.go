// Package table holds a minimal tabular structure of named text columns and
// the batch column normalizer.
package table

import (
	"fmt"

	"github.com/revelaction/textnorm/norm"
	"github.com/revelaction/textnorm/token"
)

// Default column names for batch normalization.
const (
	DefaultReadField  = "text"
	DefaultWriteField = "token_clean"
)

// Column is an ordered sequence of rows, each holding one text unit. A row
// may hold the invalid zero Unit; batch normalization degrades it to an empty
// result instead of failing.
type Column []token.Unit

// TokenColumn is a derived column of normalized token sequences, one row per
// source row.
type TokenColumn [][]string

// Table maps column names to columns. All columns have the same length.
type Table struct {
	cols map[string]Column
	rows int
}

// New creates an empty Table.
func New() *Table {
	return &Table{cols: map[string]Column{}}
}

// Set adds or replaces a column. The first column fixes the row count; later
// columns must match it.
func (t *Table) Set(name string, col Column) error {
	if len(t.cols) > 0 && len(col) != t.rows {
		return fmt.Errorf("column %s has %d rows, table has %d", name, len(col), t.rows)
	}

	t.rows = len(col)
	t.cols[name] = col
	return nil
}

// Column returns the named column.
func (t *Table) Column(name string) (Column, error) {
	col, ok := t.cols[name]
	if !ok {
		return nil, fmt.Errorf("no such column: %s", name)
	}

	return col, nil
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return t.rows
}

// NormalizeColumn normalizes every row of a column. A row holding the invalid
// zero Unit yields an empty token slice instead of an error; any other error
// (a failing annotation pipeline, malformed entity spans) aborts the batch.
//
// Each row is normalized independently with no shared state, so disjoint row
// ranges may be processed concurrently by the caller.
func NormalizeColumn(col Column, stops token.Set, opts norm.Options) (TokenColumn, error) {
	out := make(TokenColumn, len(col))
	for i, u := range col {
		if !u.Valid() {
			out[i] = []string{}
			continue
		}

		toks, err := norm.Normalize(u, stops, opts)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}

		out[i] = toks
	}

	return out, nil
}

// Normalize reads the readField column of t, normalizes it and returns a new
// single-column table holding the result under writeField. The source table
// is left untouched. Empty field names fall back to the defaults "text" and
// "token_clean".
func Normalize(t *Table, stops token.Set, opts norm.Options, readField, writeField string) (*Table, error) {
	if readField == "" {
		readField = DefaultReadField
	}
	if writeField == "" {
		writeField = DefaultWriteField
	}

	col, err := t.Column(readField)
	if err != nil {
		return nil, err
	}

	normalized, err := NormalizeColumn(col, stops, opts)
	if err != nil {
		return nil, err
	}

	// re-wrap as token units to keep the result a regular column
	derived := make(Column, len(normalized))
	for i, toks := range normalized {
		derived[i] = token.Tokens(toks)
	}

	out := New()
	if err := out.Set(writeField, derived); err != nil {
		return nil, err
	}

	return out, nil
}

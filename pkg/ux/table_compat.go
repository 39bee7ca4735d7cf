// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ux

import (
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// TableCompatWrapper keeps the v0.0.5 style SetHeader/Append API on top of
// tablewriter v1
type TableCompatWrapper struct {
	*tablewriter.Table
}

// NewCompatTable creates a left aligned table writing to w
func NewCompatTable(w io.Writer) *TableCompatWrapper {
	t := &TableCompatWrapper{Table: tablewriter.NewTable(w)}
	t.Table.Configure(func(config *tablewriter.Config) {
		config.Row.Alignment.Global = tw.AlignLeft
	})
	return t
}

// SetHeader sets the headers using the old API
func (t *TableCompatWrapper) SetHeader(headers []string) {
	anyHeaders := make([]any, len(headers))
	for i, h := range headers {
		anyHeaders[i] = h
	}
	t.Table.Header(anyHeaders...)
}

// AppendCompat adds a row using string slice (old API)
func (t *TableCompatWrapper) AppendCompat(row []string) {
	_ = t.Table.Append(row)
}

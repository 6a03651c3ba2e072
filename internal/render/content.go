// Package render defines the abstract rendered-content model produced by the
// table pipeline: fragments, cells, rows, and the table structure handed to
// document assembly. Nothing here performs I/O; downstream writers decide how
// fragments become HTML, console text, or JSON.
package render

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Fragment is one renderable unit inside a cell. ContentType identifies the
// fragment kind for document assembly.
type Fragment interface {
	ContentType() string
}

// Cell is an ordered list of fragments occupying one table cell.
type Cell []Fragment

// Row is an ordered list of cells.
type Row []Cell

// Text is a plain string fragment.
type Text string

func (Text) ContentType() string { return "string" }

// StringTemplate is a parameterized string fragment. Templates reference
// params as $name; Styling carries presentation hints for the params.
type StringTemplate struct {
	Template string         `json:"template"`
	Params   map[string]any `json:"params,omitempty"`
	Styling  *Styling       `json:"styling,omitempty"`
}

func (*StringTemplate) ContentType() string { return "string_template" }

// String substitutes params into the template. Longer param names are
// substituted first so $value_set does not collide with $value.
func (t *StringTemplate) String() string {
	out := t.Template
	names := make([]string, 0, len(t.Params))
	for name := range t.Params {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return len(names[i]) > len(names[j]) })
	for _, name := range names {
		out = strings.ReplaceAll(out, "$"+name, fmt.Sprintf("%v", t.Params[name]))
	}
	return out
}

// SubTable is a nested table fragment, used for unexpected-value samples and
// for composite description cells.
type SubTable struct {
	Header []string `json:"header,omitempty"`
	Rows   []Row    `json:"rows"`
}

func (*SubTable) ContentType() string { return "table" }

// CollapseContent is a fragment whose children are hidden behind a toggle.
type CollapseContent struct {
	Toggle     Fragment   `json:"toggle,omitempty"`
	Collapse   []Fragment `json:"collapse"`
	InlineLink bool       `json:"inline_link,omitempty"`
}

func (*CollapseContent) ContentType() string { return "collapse" }

// ColumnOptions holds per-header-column display options.
type ColumnOptions struct {
	Sortable bool `json:"sortable,omitempty"`
}

// Styling carries presentation hints (CSS classes and attributes) that pass
// through to document assembly untouched.
type Styling struct {
	Classes    []string          `json:"classes,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// TableOptions holds table-wide display options.
type TableOptions struct {
	Search   bool   `json:"search,omitempty"`
	IconSize string `json:"icon-size,omitempty"`
}

// Table is the produced artifact: a header row, per-column header options,
// body rows, and table-level styling hints.
type Table struct {
	Header        []string                 `json:"header"`
	HeaderOptions map[string]ColumnOptions `json:"header_row_options,omitempty"`
	Rows          []Row                    `json:"rows"`
	Options       TableOptions             `json:"table_options"`
	Styling       Styling                  `json:"styling"`
}

// TextCell wraps a single plain value into a one-fragment cell.
func TextCell(v any) Cell {
	if f, ok := v.(Fragment); ok {
		return Cell{f}
	}
	return Cell{Text(fmt.Sprintf("%v", v))}
}

// typedFragment is the serialized form of a fragment: the content type
// discriminator plus the fragment body.
type typedFragment struct {
	ContentType string `json:"content_block_type"`
	Body        any    `json:"body"`
}

// MarshalJSON emits fragments with an explicit content type discriminator so
// downstream consumers can reconstruct the fragment kind.
func (c Cell) MarshalJSON() ([]byte, error) {
	out := make([]typedFragment, len(c))
	for i, f := range c {
		out[i] = typedFragment{ContentType: f.ContentType(), Body: f}
	}
	return json.Marshal(out)
}

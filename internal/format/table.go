// Package format renders notification lists for terminal output, as plain
// tables or as lipgloss-styled day sections.
package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/cristianoliveira/pushtray/internal/colors"
	"github.com/cristianoliveira/pushtray/internal/inbox"
)

// Table layouts selectable via the table_format setting.
const (
	LayoutDefault = "default"
	LayoutMinimal = "minimal"
)

// TableConfig holds configuration for table formatting.
type TableConfig struct {
	// ShowHeaders determines whether to show column headers.
	ShowHeaders bool

	// HeaderColor is the ANSI color sequence used for headers.
	HeaderColor string

	// DateFormat is the layout used to render timestamps.
	DateFormat string
}

// DefaultTableConfig returns a default table configuration.
func DefaultTableConfig() *TableConfig {
	return &TableConfig{
		ShowHeaders: true,
		HeaderColor: colors.Blue,
		DateFormat:  "2006-01-02 15:04:05",
	}
}

// TableColumn represents a column in a table.
type TableColumn struct {
	// Name is the column name displayed in the header.
	Name string

	// Width is the column width in characters.
	Width int

	// Alignment is the text alignment (left, right, center).
	Alignment string

	// Extractor extracts the value from a notification.
	Extractor func(inbox.Notification) string
}

// TableFormatter renders notifications as an aligned text table.
type TableFormatter struct {
	config  *TableConfig
	columns []TableColumn
}

// NewTableFormatter creates a table formatter for the given layout. Unknown
// layouts fall back to the default column set.
func NewTableFormatter(layout string, config *TableConfig) *TableFormatter {
	if config == nil {
		config = DefaultTableConfig()
	}
	f := &TableFormatter{config: config}
	switch layout {
	case LayoutMinimal:
		f.columns = minimalColumns(config)
	default:
		f.columns = defaultColumns(config)
	}
	return f
}

func defaultColumns(config *TableConfig) []TableColumn {
	return []TableColumn{
		{
			Name:  "ID",
			Width: 12,
			Extractor: func(n inbox.Notification) string {
				return truncateString(n.ID, 12)
			},
		},
		{
			Name:  "Date",
			Width: len(config.DateFormat),
			Extractor: func(n inbox.Notification) string {
				return formatString(n.ReceivedAt.Local().Format(config.DateFormat), len(config.DateFormat), "left")
			},
		},
		{
			Name:      "Status",
			Width:     6,
			Alignment: "left",
			Extractor: func(n inbox.Notification) string {
				return formatString(statusLabel(n), 6, "left")
			},
		},
		{
			Name:  "Title",
			Width: 24,
			Extractor: func(n inbox.Notification) string {
				return truncateString(n.Title, 24)
			},
		},
		{
			Name:  "Body",
			Width: 40,
			Extractor: func(n inbox.Notification) string {
				return truncateString(n.Body, 40)
			},
		},
	}
}

func minimalColumns(config *TableConfig) []TableColumn {
	return []TableColumn{
		{
			Name:      "Status",
			Width:     6,
			Alignment: "left",
			Extractor: func(n inbox.Notification) string {
				return formatString(statusLabel(n), 6, "left")
			},
		},
		{
			Name:  "Title",
			Width: 32,
			Extractor: func(n inbox.Notification) string {
				return truncateString(n.Title, 32)
			},
		},
		{
			Name:  "Body",
			Width: 48,
			Extractor: func(n inbox.Notification) string {
				return truncateString(n.Body, 48)
			},
		},
	}
}

func statusLabel(n inbox.Notification) string {
	if n.Read {
		return "read"
	}
	return "unread"
}

// WithColumns adds custom columns to the formatter.
func (f *TableFormatter) WithColumns(columns ...TableColumn) *TableFormatter {
	f.columns = append(f.columns, columns...)
	return f
}

// FormatNotifications formats notifications as a table, newest first.
func (f *TableFormatter) FormatNotifications(notifications []inbox.Notification, writer io.Writer) error {
	if len(notifications) == 0 {
		return nil
	}

	if f.config.ShowHeaders {
		err := f.writeHeader(writer)
		if err != nil {
			return err
		}
		err = f.writeSeparator(writer)
		if err != nil {
			return err
		}
	}

	for _, n := range notifications {
		err := f.writeRow(n, writer)
		if err != nil {
			return err
		}
	}

	return nil
}

// writeHeader writes the table header.
func (f *TableFormatter) writeHeader(writer io.Writer) error {
	for i, col := range f.columns {
		header := formatString(col.Name, col.Width, "left")
		if i == 0 {
			_, err := fmt.Fprintf(writer, "%s%s%s", f.config.HeaderColor, header, colors.Reset)
			if err != nil {
				return err
			}
		} else {
			_, err := fmt.Fprintf(writer, "  %s", header)
			if err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintln(writer)
	return err
}

// writeSeparator writes the table separator.
func (f *TableFormatter) writeSeparator(writer io.Writer) error {
	for i, col := range f.columns {
		separator := makeSeparator(col.Width)
		if i == 0 {
			_, err := fmt.Fprintf(writer, "%s%s%s", f.config.HeaderColor, separator, colors.Reset)
			if err != nil {
				return err
			}
		} else {
			_, err := fmt.Fprintf(writer, "  %s", separator)
			if err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintln(writer)
	return err
}

// writeRow writes a single table row.
func (f *TableFormatter) writeRow(notification inbox.Notification, writer io.Writer) error {
	for i, col := range f.columns {
		value := col.Extractor(notification)
		if i > 0 {
			_, err := fmt.Fprintf(writer, "  %s", value)
			if err != nil {
				return err
			}
		} else {
			_, err := fmt.Fprintf(writer, "%s", value)
			if err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintln(writer)
	return err
}

// Helper functions

// formatString formats a string with the specified width and alignment.
func formatString(s string, width int, alignment string) string {
	if len(s) >= width {
		return s[:width]
	}

	switch alignment {
	case "right":
		return strings.Repeat(" ", width-len(s)) + s
	case "center":
		left := (width - len(s)) / 2
		right := width - len(s) - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default: // left
		return s + strings.Repeat(" ", width-len(s))
	}
}

// truncateString truncates a string to the specified width, adding "..." if truncated.
func truncateString(s string, width int) string {
	if len(s) <= width {
		return s + strings.Repeat(" ", width-len(s))
	}
	if width < 3 {
		return s[:width]
	}
	return s[:width-3] + "..."
}

// makeSeparator creates a separator line of the specified width.
func makeSeparator(width int) string {
	return strings.Repeat("-", width)
}

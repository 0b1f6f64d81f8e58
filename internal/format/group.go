package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cristianoliveira/pushtray/internal/colors"
	"github.com/cristianoliveira/pushtray/internal/inbox"
)

const (
	groupSymbol      = "▾"
	unreadMarker     = "●"
	readMarker       = " "
	groupTimeFormat  = "15:04"
	groupIndent      = "  "
	groupBodyMaxCols = 60
)

// GroupStyles defines styles for day-section headers.
type GroupStyles struct {
	Header lipgloss.Style
	Unread lipgloss.Style
}

// DefaultGroupStyles returns the default day-section styles.
func DefaultGroupStyles() GroupStyles {
	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ansiColorNumber(colors.Blue)))
	unread := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ansiColorNumber(colors.Yellow)))
	return GroupStyles{
		Header: header,
		Unread: unread,
	}
}

// GroupFormatter renders notifications under date-section headers.
type GroupFormatter struct {
	styles GroupStyles
}

// NewGroupFormatter creates a formatter with the default styles.
func NewGroupFormatter() *GroupFormatter {
	return &GroupFormatter{styles: DefaultGroupStyles()}
}

// FormatSections writes each day section as a styled header followed by its
// notification rows. Sections and rows keep their incoming order.
func (f *GroupFormatter) FormatSections(sections []inbox.DaySection, writer io.Writer) error {
	for i, section := range sections {
		if i > 0 {
			_, err := fmt.Fprintln(writer)
			if err != nil {
				return err
			}
		}
		_, err := fmt.Fprintln(writer, f.renderHeader(section))
		if err != nil {
			return err
		}
		for _, n := range section.Notifications {
			_, err := fmt.Fprintln(writer, renderNotificationRow(n))
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// renderHeader renders a section header like "▾ Today (3/2)". The count shows
// total/unread when anything is unread, total alone otherwise.
func (f *GroupFormatter) renderHeader(section inbox.DaySection) string {
	label := fmt.Sprintf("%s %s (%s)", groupSymbol, section.Label,
		formatSectionCount(len(section.Notifications), section.UnreadCount))
	if section.UnreadCount > 0 {
		return f.styles.Unread.Render(label)
	}
	return f.styles.Header.Render(label)
}

func formatSectionCount(total, unread int) string {
	if unread > 0 {
		return fmt.Sprintf("%d/%d", total, unread)
	}
	return fmt.Sprintf("%d", total)
}

func renderNotificationRow(n inbox.Notification) string {
	marker := readMarker
	if !n.Read {
		marker = unreadMarker
	}
	line := fmt.Sprintf("%s%s %s  %s", groupIndent, marker,
		n.ReceivedAt.Local().Format(groupTimeFormat), n.Title)
	if n.Body != "" {
		body := n.Body
		if len(body) > groupBodyMaxCols {
			body = body[:groupBodyMaxCols-3] + "..."
		}
		line = fmt.Sprintf("%s - %s", line, body)
	}
	return line
}

// ansiColorNumber extracts the color number from an ANSI escape sequence.
// Example: "\033[0;34m" -> "34"
func ansiColorNumber(ansi string) string {
	if len(ansi) < 2 {
		return ""
	}
	lastSemicolon := strings.LastIndex(ansi, ";")
	if lastSemicolon == -1 {
		return ""
	}
	return ansi[lastSemicolon+1 : len(ansi)-1]
}

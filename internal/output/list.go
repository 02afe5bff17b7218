// Package output renders styled terminal listings.
package output

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/cc-cleanup/internal/shared"
)

// ListRenderer formats titled key/value tables.
type ListRenderer struct {
	titleStyle lipgloss.Style
	itemStyle  lipgloss.Style
	keyStyle   lipgloss.Style
	indent     string
}

// NewListRenderer creates a new list renderer with default styling.
func NewListRenderer() *ListRenderer {
	return &ListRenderer{
		titleStyle: shared.HeaderStyle,
		itemStyle:  lipgloss.NewStyle().Foreground(shared.Text),
		keyStyle:   lipgloss.NewStyle().Foreground(shared.Blue),
		indent:     "  ",
	}
}

// RenderMap formats a title and map of key-value pairs, sorted by key.
func (l *ListRenderer) RenderMap(title string, items map[string]string) string {
	var sb strings.Builder

	l.writeTitle(&sb, title)

	keys := make([]string, 0, len(items))
	maxKeyLen := 0
	for key := range items {
		keys = append(keys, key)
		if len(key) > maxKeyLen {
			maxKeyLen = len(key)
		}
	}
	sort.Strings(keys)

	for _, key := range keys {
		sb.WriteString(l.indent)
		sb.WriteString(l.keyStyle.Render(fmt.Sprintf("%-*s", maxKeyLen, key)))
		sb.WriteString(": ")
		sb.WriteString(l.itemStyle.Render(items[key]))
		sb.WriteString("\n")
	}

	return sb.String()
}

func (l *ListRenderer) writeTitle(sb *strings.Builder, title string) {
	if title == "" {
		return
	}
	sb.WriteString(l.titleStyle.Render(title))
	sb.WriteString("\n")
}

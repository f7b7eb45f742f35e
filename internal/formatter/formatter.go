// package formatter renders a song list to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/desertthunder/favsongs/internal/shared"
	"github.com/mattn/go-runewidth"
)

// Supported output formats for [Export].
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatCSV      = "csv"
	FormatJSON     = "json"
)

// Row is one rendered song row.
type Row struct {
	Index int    `json:"index"`
	Title string `json:"title"`
}

// SongList is a named, ordered set of rows ready to be rendered.
type SongList struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
	Rows  []Row  `json:"rows"`
}

// NewSongList builds a [SongList] from titles in display order.
func NewSongList(name string, titles []string) *SongList {
	rows := make([]Row, len(titles))
	for i, title := range titles {
		rows[i] = Row{Index: i, Title: title}
	}
	return &SongList{Name: name, Count: len(rows), Rows: rows}
}

// Export renders list in the named format. JSON is handled by the caller's encoder.
func Export(list *SongList, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "", FormatText, "txt":
		return ExportToText(list)
	case FormatMarkdown, "md":
		return ExportToMarkdown(list)
	case FormatCSV:
		return ExportToCSV(list)
	default:
		return nil, fmt.Errorf("%w: unknown format %q", shared.ErrInvalidFlag, format)
	}
}

// ExportToCSV converts a SongList to CSV format with columns: Index, Title
func ExportToCSV(list *SongList) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"Index", "Title"}); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, row := range list.Rows {
		if err := writer.Write([]string{strconv.Itoa(row.Index), row.Title}); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts a SongList to a Markdown document with an aligned table.
func ExportToMarkdown(list *SongList) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", list.Name))
	buf.WriteString(fmt.Sprintf("**Songs**: %d\n\n", list.Count))

	numWidth := max(len(strconv.Itoa(len(list.Rows))), 1)
	titleWidth := runewidth.StringWidth("Title")
	for _, row := range list.Rows {
		titleWidth = max(titleWidth, runewidth.StringWidth(escapeMarkdownCell(row.Title)))
	}

	buf.WriteString(fmt.Sprintf("| %s | %s |\n", runewidth.FillRight("#", numWidth), runewidth.FillRight("Title", titleWidth)))
	buf.WriteString(fmt.Sprintf("| %s | %s |\n", strings.Repeat("-", numWidth), strings.Repeat("-", titleWidth)))
	for _, row := range list.Rows {
		num := runewidth.FillLeft(strconv.Itoa(row.Index+1), numWidth)
		title := runewidth.FillRight(escapeMarkdownCell(row.Title), titleWidth)
		buf.WriteString(fmt.Sprintf("| %s | %s |\n", num, title))
	}

	return buf.Bytes(), nil
}

// ExportToText converts a SongList to plain text format
func ExportToText(list *SongList) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("%s\n", list.Name))
	buf.WriteString(fmt.Sprintf("Songs: %d\n\n", list.Count))

	for _, row := range list.Rows {
		buf.WriteString(fmt.Sprintf("%d. %s\n", row.Index+1, row.Title))
	}

	return buf.Bytes(), nil
}

func escapeMarkdownCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

package formatter

import (
	"encoding/csv"
	"errors"
	"strings"
	"testing"

	"github.com/desertthunder/favsongs/internal/shared"
	"github.com/desertthunder/favsongs/internal/songs"
)

func favorites() *SongList {
	return NewSongList("Favorite Songs", songs.FavoriteSongs())
}

func TestNewSongList(t *testing.T) {
	list := NewSongList("Mix", []string{"One", "Jolene"})

	if list.Count != 2 {
		t.Errorf("expected count 2, got %d", list.Count)
	}
	if list.Rows[1].Index != 1 || list.Rows[1].Title != "Jolene" {
		t.Errorf("unexpected second row: %+v", list.Rows[1])
	}
}

func TestExporters(t *testing.T) {
	t.Run("ExportToCSV", func(t *testing.T) {
		data, err := ExportToCSV(favorites())
		if err != nil {
			t.Fatalf("ExportToCSV failed: %v", err)
		}

		records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
		if err != nil {
			t.Fatalf("CSV output did not parse: %v", err)
		}

		if len(records) != 12 {
			t.Fatalf("expected header + 11 records, got %d", len(records))
		}
		if records[0][0] != "Index" || records[0][1] != "Title" {
			t.Errorf("CSV missing headers, got: %v", records[0])
		}
		if records[1][0] != "0" || records[1][1] != "Thriller" {
			t.Errorf("unexpected first record: %v", records[1])
		}
		if records[11][0] != "10" || records[11][1] != "Life On Mars?" {
			t.Errorf("unexpected last record: %v", records[11])
		}
	})

	t.Run("ExportToMarkdown", func(t *testing.T) {
		data, err := ExportToMarkdown(favorites())
		if err != nil {
			t.Fatalf("ExportToMarkdown failed: %v", err)
		}

		output := string(data)

		if !strings.HasPrefix(output, "# Favorite Songs\n") {
			t.Errorf("Markdown missing heading, got: %s", output)
		}
		if !strings.Contains(output, "**Songs**: 11") {
			t.Errorf("Markdown missing song count")
		}
		if !strings.Contains(output, "|  1 | Thriller ") {
			t.Errorf("Markdown missing first row, got: %s", output)
		}
		if !strings.Contains(output, "| 11 | Life On Mars? ") {
			t.Errorf("Markdown missing last row, got: %s", output)
		}

		var widths []int
		for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
			if strings.HasPrefix(line, "|") {
				widths = append(widths, len(line))
			}
		}
		for _, w := range widths {
			if w != widths[0] {
				t.Errorf("table rows are not aligned: %v", widths)
				break
			}
		}
	})

	t.Run("ExportToMarkdown escapes pipes", func(t *testing.T) {
		data, err := ExportToMarkdown(NewSongList("Mix", []string{"A|B"}))
		if err != nil {
			t.Fatalf("ExportToMarkdown failed: %v", err)
		}
		if !strings.Contains(string(data), `A\|B`) {
			t.Errorf("expected escaped pipe, got: %s", string(data))
		}
	})

	t.Run("ExportToText", func(t *testing.T) {
		data, err := ExportToText(favorites())
		if err != nil {
			t.Fatalf("ExportToText failed: %v", err)
		}

		output := string(data)

		if !strings.Contains(output, "Favorite Songs\n") {
			t.Errorf("Text missing name")
		}
		if !strings.Contains(output, "Songs: 11") {
			t.Errorf("Text missing song count")
		}
		if !strings.Contains(output, "1. Thriller\n") {
			t.Errorf("Text missing first song")
		}
		if !strings.Contains(output, "11. Life On Mars?\n") {
			t.Errorf("Text missing last song")
		}
	})

	t.Run("ExportToText empty list", func(t *testing.T) {
		data, err := ExportToText(NewSongList("Empty", nil))
		if err != nil {
			t.Fatalf("ExportToText failed: %v", err)
		}
		if !strings.Contains(string(data), "Songs: 0") {
			t.Errorf("expected zero count, got: %s", string(data))
		}
	})
}

func TestExport(t *testing.T) {
	tc := []struct {
		name   string
		format string
		want   string
	}{
		{name: "default is text", format: "", want: "1. Thriller"},
		{name: "text", format: "text", want: "1. Thriller"},
		{name: "markdown alias", format: "md", want: "# Favorite Songs"},
		{name: "markdown upper", format: "MARKDOWN", want: "# Favorite Songs"},
		{name: "csv", format: "csv", want: "0,Thriller"},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Export(favorites(), tt.format)
			if err != nil {
				t.Fatalf("Export(%q) failed: %v", tt.format, err)
			}
			if !strings.Contains(string(data), tt.want) {
				t.Errorf("Export(%q) missing %q, got: %s", tt.format, tt.want, string(data))
			}
		})
	}

	t.Run("unknown format", func(t *testing.T) {
		_, err := Export(favorites(), "xml")
		if !errors.Is(err, shared.ErrInvalidFlag) {
			t.Errorf("expected ErrInvalidFlag, got %v", err)
		}
	})
}

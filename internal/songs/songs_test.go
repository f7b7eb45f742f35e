package songs

import (
	"errors"
	"testing"

	"github.com/desertthunder/favsongs/internal/shared"
)

var expectedTitles = []string{
	"Thriller",
	"Never Gonna Give You Up",
	"Safety Dance",
	"Space Oddity",
	"Smells Like Teen Spirit",
	"Jealous Guy",
	"Jolene",
	"Moondance",
	"Stairway To Heaven",
	"One",
	"Life On Mars?",
}

func TestProvider(t *testing.T) {
	t.Run("before Initialize", func(t *testing.T) {
		p := NewProvider()

		if got := p.SectionCount(); got != 1 {
			t.Errorf("SectionCount() = %d, want 1", got)
		}
		if got := p.RowCount(0); got != 0 {
			t.Errorf("RowCount(0) = %d, want 0", got)
		}
		for _, i := range []int{-1, 0, 1, 10} {
			if _, err := p.Title(i); !errors.Is(err, shared.ErrIndexOutOfRange) {
				t.Errorf("Title(%d) error = %v, want ErrIndexOutOfRange", i, err)
			}
		}
	})

	t.Run("after Initialize", func(t *testing.T) {
		p := NewProvider()
		p.Initialize()

		if got := p.SectionCount(); got != 1 {
			t.Errorf("SectionCount() = %d, want 1", got)
		}
		if got := p.RowCount(0); got != 11 {
			t.Errorf("RowCount(0) = %d, want 11", got)
		}

		first, err := p.Title(0)
		if err != nil || first != "Thriller" {
			t.Errorf("Title(0) = %q, %v; want Thriller", first, err)
		}
		last, err := p.Title(10)
		if err != nil || last != "Life On Mars?" {
			t.Errorf("Title(10) = %q, %v; want Life On Mars?", last, err)
		}
	})

	t.Run("every title in order", func(t *testing.T) {
		p := NewProvider()
		p.Initialize()

		for i, want := range expectedTitles {
			got, err := p.Title(i)
			if err != nil {
				t.Fatalf("Title(%d) unexpected error: %v", i, err)
			}
			if got != want {
				t.Errorf("Title(%d) = %q, want %q", i, got, want)
			}
		}
	})

	t.Run("out of range indices", func(t *testing.T) {
		p := NewProvider()
		p.Initialize()

		for _, i := range []int{-1, 11, 100} {
			title, err := p.Title(i)
			if !errors.Is(err, shared.ErrIndexOutOfRange) {
				t.Errorf("Title(%d) error = %v, want ErrIndexOutOfRange", i, err)
			}
			if title != "" {
				t.Errorf("Title(%d) = %q, want empty title with error", i, title)
			}
		}
	})

	t.Run("other sections are empty", func(t *testing.T) {
		p := NewProvider()
		p.Initialize()

		for _, s := range []int{-1, 1, 2} {
			if got := p.RowCount(s); got != 0 {
				t.Errorf("RowCount(%d) = %d, want 0", s, got)
			}
		}
	})

	t.Run("Initialize is idempotent", func(t *testing.T) {
		p := NewProvider()
		p.Initialize()
		p.Initialize()

		if got := p.RowCount(0); got != 11 {
			t.Fatalf("RowCount(0) = %d, want 11", got)
		}
		titles, err := Titles(p)
		if err != nil {
			t.Fatalf("Titles() unexpected error: %v", err)
		}
		for i := range expectedTitles {
			if titles[i] != expectedTitles[i] {
				t.Errorf("titles[%d] = %q, want %q", i, titles[i], expectedTitles[i])
			}
		}
	})

	t.Run("repeated lookups are stable", func(t *testing.T) {
		p := NewProvider()
		p.Initialize()

		for range 3 {
			for i, want := range expectedTitles {
				if got, _ := p.Title(i); got != want {
					t.Errorf("Title(%d) = %q, want %q", i, got, want)
				}
			}
		}
	})
}

func TestFavoriteSongs(t *testing.T) {
	t.Run("returns a copy", func(t *testing.T) {
		songs := FavoriteSongs()
		songs[0] = "changed"

		p := NewProvider()
		p.Initialize()
		if got, _ := p.Title(0); got != "Thriller" {
			t.Errorf("mutating FavoriteSongs() leaked into provider: %q", got)
		}
	})

	t.Run("length", func(t *testing.T) {
		if got := len(FavoriteSongs()); got != len(expectedTitles) {
			t.Errorf("len(FavoriteSongs()) = %d, want %d", got, len(expectedTitles))
		}
	})
}

type brokenSource struct{ failAt int }

func (b brokenSource) SectionCount() int { return 1 }
func (b brokenSource) RowCount(int) int  { return 3 }
func (b brokenSource) Title(i int) (string, error) {
	if i == b.failAt {
		return "", shared.ErrIndexOutOfRange
	}
	return "row", nil
}

func TestTitles(t *testing.T) {
	t.Run("empty provider", func(t *testing.T) {
		titles, err := Titles(NewProvider())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(titles) != 0 {
			t.Errorf("expected no titles, got %v", titles)
		}
	})

	t.Run("propagates Title errors", func(t *testing.T) {
		titles, err := Titles(brokenSource{failAt: 1})
		if !errors.Is(err, shared.ErrIndexOutOfRange) {
			t.Errorf("expected ErrIndexOutOfRange, got %v", err)
		}
		if titles != nil {
			t.Errorf("expected nil titles on error, got %v", titles)
		}
	})
}

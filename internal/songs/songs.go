package songs

import (
	"fmt"

	"github.com/desertthunder/favsongs/internal/shared"
)

var favoriteSongs = [...]string{
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

// DataSource is the query contract consumed by a list view.
type DataSource interface {
	SectionCount() int               // SectionCount returns the number of sections
	RowCount(section int) int        // RowCount returns the number of rows in section
	Title(index int) (string, error) // Title returns the display text of the row at index
}

var _ DataSource = (*Provider)(nil)

// Provider holds the ordered song titles for one screen.
type Provider struct {
	titles []string
}

// NewProvider returns an empty [Provider]. Call [Provider.Initialize] before rendering.
func NewProvider() *Provider {
	return &Provider{}
}

// FavoriteSongs returns a copy of the fixed song list in display order.
func FavoriteSongs() []string {
	return append([]string(nil), favoriteSongs[:]...)
}

// Initialize replaces the provider's contents with the favorite songs.
func (p *Provider) Initialize() {
	p.titles = FavoriteSongs()
}

// SectionCount always reports a single section.
func (p *Provider) SectionCount() int {
	return 1
}

// RowCount returns the number of titles in section 0 and zero for any other section.
func (p *Provider) RowCount(section int) int {
	if section != 0 {
		return 0
	}
	return len(p.titles)
}

// Title returns the title at index.
func (p *Provider) Title(index int) (string, error) {
	if index < 0 || index >= len(p.titles) {
		return "", fmt.Errorf("%w: index %d not in [0, %d)", shared.ErrIndexOutOfRange, index, len(p.titles))
	}
	return p.titles[index], nil
}

// Titles pulls every row of every section from source in display order.
//
// It stops at the first failing [DataSource.Title] call and returns that error.
func Titles(source DataSource) ([]string, error) {
	var titles []string
	for section := range source.SectionCount() {
		for row := range source.RowCount(section) {
			title, err := source.Title(row)
			if err != nil {
				return nil, fmt.Errorf("section %d: %w", section, err)
			}
			titles = append(titles, title)
		}
	}
	return titles, nil
}

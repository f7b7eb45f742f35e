package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
)

var _ list.DefaultItem = songItem{}

// songItem is one row pulled from the data source, implementing [list.DefaultItem].
type songItem struct {
	index    int
	title    string
	numbered bool
}

func (i songItem) FilterValue() string { return i.title }
func (i songItem) Description() string { return "" }
func (i songItem) Title() string {
	if i.numbered {
		return fmt.Sprintf("%2d. %s", i.index+1, i.title)
	}
	return i.title
}

// newSongDelegate returns a single-line [list.DefaultDelegate] styled with p.
func newSongDelegate(p *Palette) list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	d.SetSpacing(0)
	d.Styles.SelectedTitle = d.Styles.SelectedTitle.
		Foreground(p.selected.GetForeground()).
		BorderForeground(p.selected.GetForeground())
	return d
}

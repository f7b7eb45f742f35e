// Package ui implements the favorite-songs screen using bubbletea's Elm architecture.
//
// The screen is a single scrollable list built on charmbracelet/bubbles/list. It owns no data: the [Model] is handed a
// [songs.DataSource] and pulls section count, row count and row titles from it on every layout pass.
//
// On activation, [Model.Init] emits a screen-loaded message. Handling it runs the activation hook once (the runner passes
// [songs.Provider.Initialize]) and then lays out the rows. A failing Title query is rendered as an error screen, never as
// blank rows.
//
// Keyboard navigation uses vim-style bindings (j/k, g/G) with contextual help displayed via charmbracelet/bubbles/help.
package ui

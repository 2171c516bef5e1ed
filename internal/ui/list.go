package ui

import (
	"github.com/charmbracelet/bubbles/list"
)

var (
	_ list.Item = menuItem{}
)

// action enumerates the operations reachable from the menu.
type action int

const (
	actionViewPlaylists action = iota
	actionCreateMood
	actionRenameMood
	actionClearMoods
	actionAddSong
	actionDeleteSong
	actionRenameSong
	actionSearch
	actionSurprise
	actionFavoriteShow
	actionFavoriteSet
	actionFavoriteClear
	actionStats
	actionExport
	actionPasswd
)

// menuItem wraps one operation to implement [list.Item]. An entry with
// prompts routes through [PromptView] before running.
type menuItem struct {
	label   string
	desc    string
	act     action
	prompts []string
}

func (i menuItem) FilterValue() string { return i.label }
func (i menuItem) Title() string       { return i.label }
func (i menuItem) Description() string { return i.desc }

func menuItems() []list.Item {
	return []list.Item{
		menuItem{label: "View playlists", desc: "Every mood with its songs", act: actionViewPlaylists},
		menuItem{label: "Create mood", desc: "Add an empty playlist", act: actionCreateMood, prompts: []string{"Mood name"}},
		menuItem{label: "Rename mood", desc: "Change a mood's name", act: actionRenameMood, prompts: []string{"Current name", "New name"}},
		menuItem{label: "Add song", desc: "Append a song to a mood", act: actionAddSong, prompts: []string{"Mood", "Song title"}},
		menuItem{label: "Delete song", desc: "Remove a song by position", act: actionDeleteSong, prompts: []string{"Mood", "Position (1 is the first song, -1 the last)"}},
		menuItem{label: "Rename song", desc: "Retitle a song by position", act: actionRenameSong, prompts: []string{"Mood", "Position (counted from 1)", "New title"}},
		menuItem{label: "Search songs", desc: "Substring match across all moods", act: actionSearch, prompts: []string{"Keyword (blank matches everything)"}},
		menuItem{label: "Surprise me", desc: "One random pick", act: actionSurprise, prompts: []string{"Mood (blank for any)"}},
		menuItem{label: "Show favorite", desc: "Songs of the favorite mood", act: actionFavoriteShow},
		menuItem{label: "Set favorite", desc: "Point the favorite at a mood", act: actionFavoriteSet, prompts: []string{"Mood"}},
		menuItem{label: "Clear favorite", desc: "Drop the favorite reference", act: actionFavoriteClear},
		menuItem{label: "Statistics", desc: "Totals, longest and shortest", act: actionStats},
		menuItem{label: "Export", desc: "Write the playlists to a file", act: actionExport, prompts: []string{"Format (txt, csv, json; blank for txt)", "Path (blank for default)"}},
		menuItem{label: "Change password", desc: "Verify and replace the password", act: actionPasswd, prompts: []string{"Current password", "New password", "Confirm new password"}},
		menuItem{label: "Clear all moods", desc: "Empty every playlist", act: actionClearMoods},
	}
}

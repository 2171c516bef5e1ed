// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a multi-view workflow for managing mood playlists:
//  1. [LoginView] : Sign in, creating or repairing the account when needed
//  2. [MenuView] : Browse the operation menu
//  3. [PromptView] : Collect the selected operation's arguments
//  4. [ConfirmView] : Guard destructive operations
//  5. [ResultView] : Display rendered output or an in-band error
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern.
// Mutating operations persist through the session immediately after they apply.
// A mood rename also re-points a favorite that referenced the old name.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, y/n, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui

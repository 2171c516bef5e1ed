package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/moodlist/moodlist/internal/export"
	"github.com/moodlist/moodlist/internal/library"
	"github.com/moodlist/moodlist/internal/session"
	"github.com/moodlist/moodlist/internal/shared"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	LoginView ViewState = iota
	MenuView
	PromptView
	ConfirmView
	ResultView
)

// Model represents the TUI application state.
type Model struct {
	view      ViewState
	session   *session.Session
	profile   *library.Profile
	exportDir string

	width  int
	height int

	inputs  []textinput.Model
	focused int
	menu    list.Model
	current menuItem

	status    string
	result    string
	resultErr error

	help help.Model
	keys keyMap
}

// NewModel creates a new TUI model on top of an opened session.
//
// exportDir is where the export operation places files when the user leaves
// the path blank.
func NewModel(sess *session.Session, exportDir string) *Model {
	username := textinput.New()
	username.Placeholder = "Username"
	username.Width = 48
	username.Focus()

	password := textinput.New()
	password.Placeholder = "Password"
	password.Width = 48
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	menu := list.New(menuItems(), list.NewDefaultDelegate(), 0, 0)
	menu.Title = "Mood playlists"

	return &Model{
		view:      LoginView,
		session:   sess,
		exportDir: exportDir,
		inputs:    []textinput.Model{username, password},
		menu:      menu,
		help:      help.New(),
		keys:      newKeyMap(),
	}
}

// Init starts the cursor blink for the login inputs.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.menu.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case LoginView:
			return m.handleLoginKeys(msg)
		case MenuView:
			return m.handleMenuKeys(msg)
		case PromptView:
			return m.handlePromptKeys(msg)
		case ConfirmView:
			return m.handleConfirmKeys(msg)
		case ResultView:
			return m.handleResultKeys(msg)
		}
	}

	return m.updateChildren(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	switch m.view {
	case LoginView:
		return m.renderLogin()
	case MenuView:
		return m.renderMenu()
	case PromptView:
		return m.renderPrompt()
	case ConfirmView:
		return m.renderConfirm()
	case ResultView:
		return m.renderResult()
	default:
		return ""
	}
}

func (m *Model) handleLoginKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "enter":
		if m.focused < len(m.inputs)-1 {
			return m, m.focusInput(m.focused + 1)
		}
		m.submitLogin()
		return m, nil
	case "tab", "down":
		return m, m.focusInput((m.focused + 1) % len(m.inputs))
	case "shift+tab", "up":
		return m, m.focusInput((m.focused + len(m.inputs) - 1) % len(m.inputs))
	}

	return m, m.updateInputs(msg)
}

func (m *Model) handleMenuKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "enter":
		selected := m.menu.SelectedItem()
		if selected == nil {
			return m, nil
		}
		item, ok := selected.(menuItem)
		if !ok {
			return m, nil
		}

		switch {
		case item.act == actionClearMoods:
			m.current = item
			m.view = ConfirmView
			return m, nil
		case len(item.prompts) == 0:
			m.finish(m.runAction(item.act, nil))
			return m, nil
		default:
			m.buildPrompts(item)
			m.view = PromptView
			return m, textinput.Blink
		}
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m *Model) handlePromptKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = MenuView
		return m, nil
	case "enter":
		if m.focused < len(m.inputs)-1 {
			return m, m.focusInput(m.focused + 1)
		}
		args := make([]string, len(m.inputs))
		for i := range m.inputs {
			args[i] = m.inputs[i].Value()
		}
		m.finish(m.runAction(m.current.act, args))
		return m, nil
	case "tab", "down":
		return m, m.focusInput((m.focused + 1) % len(m.inputs))
	case "shift+tab", "up":
		return m, m.focusInput((m.focused + len(m.inputs) - 1) % len(m.inputs))
	}

	return m, m.updateInputs(msg)
}

func (m *Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "y":
		m.finish(m.runAction(m.current.act, nil))
		return m, nil
	case "n", "esc", "q":
		m.view = MenuView
		return m, nil
	}
	return m, nil
}

func (m *Model) handleResultKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc", "enter":
		m.view = MenuView
		return m, nil
	}
	return m, nil
}

func (m *Model) updateChildren(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.view {
	case LoginView, PromptView:
		return m, m.updateInputs(msg)
	case MenuView:
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) updateInputs(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}
	return tea.Batch(cmds...)
}

func (m *Model) focusInput(i int) tea.Cmd {
	m.focused = i
	var focusCmd tea.Cmd
	for idx := range m.inputs {
		if idx == i {
			focusCmd = m.inputs[idx].Focus()
		} else {
			m.inputs[idx].Blur()
		}
	}
	return focusCmd
}

// buildPrompts swaps the input set to the selected operation's argument fields.
func (m *Model) buildPrompts(item menuItem) {
	m.current = item
	m.inputs = make([]textinput.Model, len(item.prompts))
	for i, label := range item.prompts {
		ti := textinput.New()
		ti.Placeholder = label
		ti.Width = 48
		if item.act == actionPasswd {
			ti.EchoMode = textinput.EchoPassword
			ti.EchoCharacter = '•'
		}
		m.inputs[i] = ti
	}
	m.focused = 0
	m.inputs[0].Focus()
}

func (m *Model) submitLogin() {
	username := m.inputs[0].Value()
	password := m.inputs[1].Value()

	profile, outcome, err := m.session.Login(username, password)
	if err != nil {
		m.status = err.Error()
		return
	}

	m.profile = profile
	m.status = fmt.Sprintf("Signed in as %s (%s)", profile.Username(), outcome)
	m.view = MenuView
}

// finish stores an operation's outcome and switches to the result view.
func (m *Model) finish(output string, err error) {
	m.result = output
	m.resultErr = err
	m.view = ResultView
}

// runAction executes one menu operation against the signed-in profile.
// Mutations persist through the session before returning.
func (m *Model) runAction(act action, args []string) (string, error) {
	p := m.profile

	switch act {
	case actionViewPlaylists:
		return renderPlaylists(p), nil

	case actionCreateMood:
		if err := p.CreateMood(args[0]); err != nil {
			return "", err
		}
		m.session.Save()
		return fmt.Sprintf("Created mood %q.", library.Normalize(args[0])), nil

	case actionRenameMood:
		oldName, newName := args[0], args[1]
		if err := p.RenameMood(oldName, newName); err != nil {
			return "", err
		}
		if p.FavoriteMood() == library.Normalize(oldName) {
			if err := p.SetFavoriteMood(newName); err != nil {
				return "", err
			}
		}
		m.session.Save()
		return fmt.Sprintf("Renamed %q to %q.", library.Normalize(oldName), library.Normalize(newName)), nil

	case actionClearMoods:
		p.ClearAllMoods()
		m.session.Save()
		return "All playlists cleared.", nil

	case actionAddSong:
		if err := p.AddSong(args[0], args[1]); err != nil {
			return "", err
		}
		m.session.Save()
		return fmt.Sprintf("Added %q to %q.", strings.TrimSpace(args[1]), library.Normalize(args[0])), nil

	case actionDeleteSong:
		index, err := parseIndex(args[1])
		if err != nil {
			return "", err
		}
		removed, err := p.DeleteSong(args[0], index)
		if err != nil {
			return "", err
		}
		m.session.Save()
		return fmt.Sprintf("Removed %q.", removed), nil

	case actionRenameSong:
		index, err := parseIndex(args[1])
		if err != nil {
			return "", err
		}
		old, err := p.RenameSong(args[0], index, args[2])
		if err != nil {
			return "", err
		}
		m.session.Save()
		return fmt.Sprintf("Renamed %q to %q.", old, strings.TrimSpace(args[2])), nil

	case actionSearch:
		hits := p.SearchSong(args[0])
		if len(hits) == 0 {
			return "No matches.", nil
		}
		var b strings.Builder
		for _, hit := range hits {
			fmt.Fprintf(&b, "%s / %s\n", hit.Mood, hit.Song)
		}
		return strings.TrimRight(b.String(), "\n"), nil

	case actionSurprise:
		pick, err := p.SurpriseMe(strings.TrimSpace(args[0]))
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("♪ %s (%s)", pick.Song, pick.Mood), nil

	case actionFavoriteShow:
		songs, ok := p.FavoriteSongs()
		if !ok {
			return "No favorite mood set.", nil
		}
		var b strings.Builder
		fmt.Fprintf(&b, "%s\n", p.FavoriteMood())
		if len(songs) == 0 {
			b.WriteString("(empty)")
			return b.String(), nil
		}
		for _, song := range songs {
			fmt.Fprintf(&b, "%s\n", song)
		}
		return strings.TrimRight(b.String(), "\n"), nil

	case actionFavoriteSet:
		if err := p.SetFavoriteMood(args[0]); err != nil {
			return "", err
		}
		m.session.Save()
		return fmt.Sprintf("Favorite set to %q.", library.Normalize(args[0])), nil

	case actionFavoriteClear:
		p.ClearFavoriteMood()
		m.session.Save()
		return "Favorite cleared.", nil

	case actionStats:
		return renderStats(p.Statistics()), nil

	case actionExport:
		format := strings.ToLower(strings.TrimSpace(args[0]))
		if format == "" {
			format = export.FormatText
		}
		path, err := export.Write(p, format, strings.TrimSpace(args[1]), m.exportDir)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Exported to %s.", path), nil

	case actionPasswd:
		if err := p.UpdatePassword(args[0], args[1], args[2]); err != nil {
			return "", err
		}
		m.session.Save()
		return "Password updated.", nil
	}

	return "", fmt.Errorf("%w: unknown menu action", shared.ErrInvalidArgument)
}

// parseIndex converts a 1-based display position to a playlist index.
// Negative positions count from the end, so -1 is the last song.
func parseIndex(raw string) (int, error) {
	position, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || position == 0 {
		return 0, fmt.Errorf("%w: position must be a non-zero number", shared.ErrInvalidArgument)
	}
	if position > 0 {
		return position - 1, nil
	}
	return position, nil
}

// renderPlaylists lists every mood with its songs, marking the favorite.
func renderPlaylists(p *library.Profile) string {
	moods := p.MoodNames()
	if len(moods) == 0 {
		return "No moods yet."
	}

	playlists := p.Playlists()
	favorite := p.FavoriteMood()

	var b strings.Builder
	for _, mood := range moods {
		marker := ""
		if mood == favorite {
			marker = " ★"
		}
		fmt.Fprintf(&b, "%s%s\n", styles.ok.Render(mood), marker)
		songs := playlists[mood]
		if len(songs) == 0 {
			b.WriteString("  (empty)\n")
		}
		for i, song := range songs {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, song)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderStats(s library.Stats) string {
	if s.Moods == 0 {
		return "No moods yet."
	}
	return fmt.Sprintf(
		"Total songs: %d\nMoods: %d\nLongest: %s (%d)\nShortest: %s (%d)",
		s.TotalSongs, s.Moods,
		s.Longest.Mood, s.Longest.Count,
		s.Shortest.Mood, s.Shortest.Count,
	)
}

func (m *Model) renderLogin() string {
	var b strings.Builder
	b.WriteString(styles.title.Render("Sign in") + "\n")
	for i := range m.inputs {
		b.WriteString(m.inputs[i].View() + "\n")
	}
	if m.status != "" {
		b.WriteString("\n" + styles.err.Render(m.status) + "\n")
	}

	quitKey := key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "quit"))
	helpView := m.help.ShortHelpView([]key.Binding{m.keys.enter, quitKey})
	return fmt.Sprintf("%s\n%s", b.String(), helpView)
}

func (m *Model) renderMenu() string {
	var status string
	if m.status != "" {
		status = styles.help.Render(m.status) + "\n\n"
	}
	helpView := m.help.ShortHelpView([]key.Binding{m.keys.enter, m.keys.quit})
	return fmt.Sprintf("%s\n%s%s", m.menu.View(), status, helpView)
}

func (m *Model) renderPrompt() string {
	var b strings.Builder
	b.WriteString(styles.title.Render(m.current.label) + "\n")
	for i := range m.inputs {
		b.WriteString(m.inputs[i].View() + "\n")
	}

	quitKey := key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit"))
	helpView := m.help.ShortHelpView([]key.Binding{m.keys.enter, m.keys.back, quitKey})
	return fmt.Sprintf("%s\n%s", b.String(), helpView)
}

func (m *Model) renderConfirm() string {
	title := styles.title.Render("Clear all moods?")
	warning := styles.warn.Render("Every playlist loses its songs. The mood names stay.")

	helpView := m.help.ShortHelpView([]key.Binding{m.keys.yes, m.keys.no, m.keys.quit})
	return fmt.Sprintf("%s\n%s\n\n%s", title, warning, helpView)
}

func (m *Model) renderResult() string {
	backKey := key.NewBinding(key.WithKeys("esc", "enter"), key.WithHelp("esc/enter", "menu"))
	helpView := m.help.ShortHelpView([]key.Binding{backKey, m.keys.quit})

	if m.resultErr != nil {
		return fmt.Sprintf("%s\n\n%s", styles.err.Render(fmt.Sprintf("✗ %v", m.resultErr)), helpView)
	}
	return fmt.Sprintf("%s\n\n%s", m.result, helpView)
}

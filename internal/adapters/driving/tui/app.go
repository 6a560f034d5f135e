package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/namereg/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/namereg/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/namereg/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/namereg/internal/core/domain"
)

// App is the registry browser following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keys   *keymap.KeyMap

	input  textinput.Model
	names  []domain.StoredName
	cursor int

	// status is the last success line, err the last failure.
	status string
	err    error

	width  int
	height int
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	input := textinput.New()
	input.Placeholder = "Name to register"
	input.CharLimit = 256
	input.Focus()

	return &App{
		ports:  ports,
		ctx:    context.Background(),
		styles: styles.DefaultStyles(),
		keys:   keymap.DefaultKeyMap(),
		input:  input,
	}, nil
}

// WithContext sets the context used for service calls.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("namereg"),
		textinput.Blink,
		a.loadNames(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.input.Width = max(msg.Width-6, 10)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case messages.NamesLoaded:
		if msg.Err != nil {
			a.err = msg.Err
			return a, nil
		}
		a.err = nil
		a.names = msg.Names
		if a.cursor >= len(a.names) {
			a.cursor = max(len(a.names)-1, 0)
		}
		return a, nil

	case messages.NameAdded:
		if msg.Err != nil {
			a.err = msg.Err
			a.status = ""
			return a, nil
		}
		a.err = nil
		a.status = fmt.Sprintf("%s added. %s", msg.Name.Name(), msg.Greeting)
		return a, a.loadNames()
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch {
	case keymap.Matches(key, a.keys.Quit):
		return a, tea.Quit

	case keymap.Matches(key, a.keys.Add):
		name := a.input.Value()
		if err := domain.ValidateName(name, true); err != nil {
			a.err = err
			a.status = ""
			return a, nil
		}
		a.input.Reset()
		return a, a.addName(name)

	case keymap.Matches(key, a.keys.Refresh):
		return a, a.loadNames()

	case keymap.Matches(key, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil

	case keymap.Matches(key, a.keys.Down):
		if a.cursor < len(a.names)-1 {
			a.cursor++
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *App) loadNames() tea.Cmd {
	ctx := a.ctx
	names := a.ports.Names
	return func() tea.Msg {
		list, err := names.List(ctx)
		return messages.NamesLoaded{Names: list, Err: err}
	}
}

func (a *App) addName(name string) tea.Cmd {
	ctx := a.ctx
	ports := a.ports
	return func() tea.Msg {
		stored, err := ports.Names.Add(ctx, name)
		if err != nil {
			return messages.NameAdded{Err: err}
		}
		return messages.NameAdded{Name: stored, Greeting: ports.Greeter.Greet(name)}
	}
}

// View implements tea.Model.
func (a *App) View() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render("namereg"))
	b.WriteString("\n\n")
	b.WriteString(a.styles.InputField.Render(a.input.View()))
	b.WriteString("\n\n")

	if len(a.names) == 0 {
		b.WriteString(a.styles.Muted.Render("No names registered yet."))
		b.WriteString("\n")
	}
	for i := range a.names {
		line := fmt.Sprintf("%4d  %s", a.names[i].ID(), a.names[i].Name())
		if i == a.cursor {
			b.WriteString(a.styles.Selected.Render(line))
		} else {
			b.WriteString(a.styles.Normal.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case a.err != nil:
		b.WriteString(a.styles.Error.Render("Error: " + a.err.Error()))
		b.WriteString("\n")
	case a.status != "":
		b.WriteString(a.styles.Success.Render(a.status))
		b.WriteString("\n")
	}

	help := make([]string, 0, len(a.keys.ShortHelp()))
	for _, binding := range a.keys.ShortHelp() {
		h := binding.Help()
		help = append(help, h.Key+" "+h.Desc)
	}
	b.WriteString(a.styles.Help.Render(strings.Join(help, " • ")))

	return b.String()
}

// Names returns the registry contents last loaded.
func (a *App) Names() []domain.StoredName {
	return a.names
}

// Cursor returns the selected row.
func (a *App) Cursor() int {
	return a.cursor
}

// Err returns the last error shown.
func (a *App) Err() error {
	return a.err
}

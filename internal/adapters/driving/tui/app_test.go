package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/namereg/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/namereg/internal/core/domain"
)

func newTestApp(t *testing.T) (*App, *mockNames) {
	t.Helper()
	names := &mockNames{}
	app, err := NewApp(&Ports{Greeter: mockGreeter{}, Names: names})
	require.NoError(t, err)
	return app, names
}

// send feeds msg to the app and runs the resulting command chain for
// the registry messages, returning the last command that was not run.
func send(t *testing.T, app *App, msg tea.Msg) tea.Cmd {
	t.Helper()
	for {
		_, cmd := app.Update(msg)
		if cmd == nil {
			return nil
		}
		next := cmd()
		switch next.(type) {
		case messages.NamesLoaded, messages.NameAdded:
			msg = next
		default:
			return cmd
		}
	}
}

func typeText(t *testing.T, app *App, s string) {
	t.Helper()
	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func TestNewApp_ValidatesPorts(t *testing.T) {
	_, err := NewApp(&Ports{})
	assert.ErrorIs(t, err, ErrMissingGreetingService)

	_, err = NewApp(&Ports{Greeter: mockGreeter{}})
	assert.ErrorIs(t, err, ErrMissingNameService)
}

func TestApp_Init(t *testing.T) {
	app, _ := newTestApp(t)
	assert.NotNil(t, app.Init())
}

func TestApp_AddName(t *testing.T) {
	app, names := newTestApp(t)

	typeText(t, app, "Ada")
	send(t, app, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, 1, names.addCalls)
	require.Len(t, app.Names(), 1)
	assert.Equal(t, "Ada", app.Names()[0].Name())
	assert.NoError(t, app.Err())
	assert.Contains(t, app.View(), "Ada added. Hello Ada")
	assert.Empty(t, app.input.Value())
}

func TestApp_EmptyNameNeverReachesStore(t *testing.T) {
	app, names := newTestApp(t)

	send(t, app, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Zero(t, names.addCalls)
	assert.ErrorIs(t, app.Err(), domain.ErrInvalidInput)
	assert.Contains(t, app.View(), "name must not be empty")
}

func TestApp_AddFailure(t *testing.T) {
	app, names := newTestApp(t)
	names.addErr = domain.ErrStorageUnavailable

	typeText(t, app, "Ada")
	send(t, app, tea.KeyMsg{Type: tea.KeyEnter})

	assert.ErrorIs(t, app.Err(), domain.ErrStorageUnavailable)
	assert.Empty(t, app.Names())
}

func TestApp_LoadFailure(t *testing.T) {
	app, names := newTestApp(t)
	names.listErr = errors.New("db down")

	send(t, app, app.loadNames()())

	assert.EqualError(t, app.Err(), "db down")
}

func TestApp_ReloadClearsError(t *testing.T) {
	app, names := newTestApp(t)
	names.listErr = errors.New("db down")
	send(t, app, app.loadNames()())
	require.Error(t, app.Err())

	names.listErr = nil
	names.names = []domain.StoredName{domain.RestoreStoredName(1, "Ada")}
	send(t, app, tea.KeyMsg{Type: tea.KeyCtrlR})

	assert.NoError(t, app.Err())
	assert.Len(t, app.Names(), 1)
	assert.NotContains(t, app.View(), "db down")
}

func TestApp_CursorMovement(t *testing.T) {
	app, names := newTestApp(t)
	names.names = []domain.StoredName{
		domain.RestoreStoredName(1, "Ada"),
		domain.RestoreStoredName(2, "Grace"),
	}
	send(t, app, tea.KeyMsg{Type: tea.KeyCtrlR})
	require.Len(t, app.Names(), 2)

	send(t, app, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, app.Cursor())

	send(t, app, tea.KeyMsg{Type: tea.KeyDown})
	send(t, app, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, app.Cursor())

	send(t, app, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, app.Cursor())
}

func TestApp_Quit(t *testing.T) {
	app, _ := newTestApp(t)

	for _, msg := range []tea.KeyMsg{{Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		_, cmd := app.Update(msg)
		require.NotNil(t, cmd)
		_, ok := cmd().(tea.QuitMsg)
		assert.True(t, ok, msg.String())
	}
}

func TestApp_WindowSize(t *testing.T) {
	app, _ := newTestApp(t)

	app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.Equal(t, 80, app.width)
	assert.Equal(t, 74, app.input.Width)
}

func TestApp_ViewEmptyRegistry(t *testing.T) {
	app, _ := newTestApp(t)

	view := app.View()

	assert.Contains(t, view, "namereg")
	assert.Contains(t, view, "No names registered yet.")
	assert.Contains(t, view, "enter add")
}

// Package tui provides a Bubble Tea terminal user interface for youtube-converter.
package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/handiism/youtube-converter/internal/config"
	"github.com/handiism/youtube-converter/internal/download"
	"github.com/handiism/youtube-converter/internal/model"
)

// logLimit is the number of progress lines kept on screen.
const logLimit = 10

// formats is the cycle order of the target media type option.
var formats = []model.MediaType{model.MP3, model.MP4, model.WAV}

var errCancelled = errors.New("cancelled by user")

// State is the screen the UI is on.
type State int

const (
	StateInput State = iota
	StateConverting
	StateComplete
	StateError
)

// LogEntry is one progress line.
type LogEntry struct {
	Message string
	Level   download.ProgressLevel
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state    State
	url      textinput.Model
	spinner  spinner.Model
	bar      progress.Model
	settings *config.Settings

	logs   []LogEntry
	result model.Result
	err    error

	ctx    context.Context
	cancel context.CancelFunc
	events chan download.ProgressEvent

	// Item progress of the running conversion.
	current      string
	index, total int

	// Options
	playlist bool
	format   int
	verbose  bool
}

// NewModel creates a TUI model using settings for every conversion.
func NewModel(settings *config.Settings) Model {
	url := textinput.New()
	url.Placeholder = "https://www.youtube.com/watch?v=..."
	url.CharLimit = 500
	url.Width = 60
	url.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.MiniDot
	spin.Style = nowStyle

	bar := progress.New(progress.WithSolidFill(string(colorRed)))
	bar.Width = 50

	m := Model{
		state:    StateInput,
		url:      url,
		spinner:  spin,
		bar:      bar,
		settings: settings,
	}
	for i, f := range formats {
		if f == settings.MediaType() {
			m.format = i
		}
	}
	m.ctx, m.cancel = context.WithCancel(context.Background())
	return m
}

// Format returns the selected target media type.
func (m Model) Format() model.MediaType {
	return formats[m.format]
}

// Init starts the cursor blink and the spinner.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

type (
	// ProgressMsg carries one progress event of the running conversion.
	ProgressMsg struct {
		Event download.ProgressEvent
	}

	// ConvertDoneMsg is sent when the conversion returns.
	ConvertDoneMsg struct {
		Result model.Result
		Err    error
	}
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.bar.Width = min(max(msg.Width-20, 20), 80)
		return m, nil

	case tea.KeyMsg:
		if next, cmd, handled := m.handleKey(msg); handled {
			return next, cmd
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ProgressMsg:
		cmds = append(cmds, m.waitForEvent())
		if e := msg.Event; e.Total > 0 {
			m.current, m.index, m.total = e.Message, e.Index, e.Total
			cmds = append(cmds, m.bar.SetPercent(float64(e.Index)/float64(e.Total)))
		}
		if msg.Event.Level != download.LevelVerbose || m.verbose {
			m.appendLog(msg.Event)
		}

	case ConvertDoneMsg:
		m.result = msg.Result
		switch {
		case m.ctx.Err() != nil:
			m.state, m.err = StateError, errCancelled
		case msg.Err != nil:
			m.state, m.err = StateError, msg.Err
		default:
			m.state = StateComplete
		}

	case progress.FrameMsg:
		next, cmd := m.bar.Update(msg)
		m.bar = next.(progress.Model)
		cmds = append(cmds, cmd)
	}

	if m.state == StateInput && m.url.Focused() {
		var cmd tea.Cmd
		m.url, cmd = m.url.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// handleKey applies key bindings. Keys that are not bindings in the
// current state are left to the URL field.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	options := m.state == StateInput && !m.url.Focused()
	finished := m.state == StateComplete || m.state == StateError

	switch msg.String() {
	case "ctrl+c":
		m.cancel()
		return m, tea.Quit, true
	case "esc":
		switch m.state {
		case StateInput:
			return m, tea.Quit, true
		case StateConverting:
			m.cancel()
		}
		return m, nil, true
	case "enter":
		if m.state == StateInput && strings.TrimSpace(m.url.Value()) != "" {
			m.state = StateConverting
			m.events = make(chan download.ProgressEvent, 64)
			return m, tea.Batch(m.startConvert(), m.waitForEvent(), m.spinner.Tick), true
		}
	case "tab":
		if m.state == StateInput {
			if m.url.Focused() {
				m.url.Blur()
				return m, nil, true
			}
			return m, m.url.Focus(), true
		}
	case "p":
		if options {
			m.playlist = !m.playlist
			return m, nil, true
		}
	case "f":
		if options {
			m.format = (m.format + 1) % len(formats)
			return m, nil, true
		}
	case "v":
		if options {
			m.verbose = !m.verbose
			return m, nil, true
		}
	case "q":
		if finished {
			return m, tea.Quit, true
		}
	case "r":
		if finished {
			m.reset()
			return m, m.url.Focus(), true
		}
	}
	return m, nil, false
}

func (m *Model) appendLog(e download.ProgressEvent) {
	m.logs = append(m.logs, LogEntry{Message: e.Message, Level: e.Level})
	if len(m.logs) > logLimit {
		m.logs = m.logs[len(m.logs)-logLimit:]
	}
}

// reset prepares the model for a new conversion, keeping the options.
func (m *Model) reset() {
	m.state = StateInput
	m.logs = nil
	m.result = model.Result{}
	m.err = nil
	m.events = nil
	m.current, m.index, m.total = "", 0, 0
	m.ctx, m.cancel = context.WithCancel(context.Background())
	m.url.SetValue("")
}

// startConvert runs the conversion in the background. Progress events are
// forwarded to m.events, which is closed when the conversion returns.
func (m Model) startConvert() tea.Cmd {
	req := model.Request{
		URI:             strings.TrimSpace(m.url.Value()),
		IsPlaylist:      m.playlist,
		TargetMediaType: m.Format(),
	}
	ctx, events, settings := m.ctx, m.events, m.settings

	return func() tea.Msg {
		defer close(events)

		manager := download.NewManager(settings, func(event download.ProgressEvent) {
			select {
			case events <- event:
			case <-ctx.Done():
			}
		})
		result, err := manager.Convert(ctx, req)
		return ConvertDoneMsg{Result: result, Err: err}
	}
}

// waitForEvent delivers the next progress event as a ProgressMsg.
func (m Model) waitForEvent() tea.Cmd {
	events := m.events
	return func() tea.Msg {
		if event, ok := <-events; ok {
			return ProgressMsg{Event: event}
		}
		return nil
	}
}

// Run loads settings from the environment and starts the TUI.
func Run() error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	settings := config.DefaultSettings()
	settings.ApplyEnv()
	if err := settings.Validate(); err != nil {
		return err
	}

	_, err := tea.NewProgram(NewModel(settings), tea.WithAltScreen()).Run()
	return err
}

// Package tui is a two-screen terminal client: a name form and a result view.
package tui

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/randomtoy/namefortune-go/internal/adapters/fortuneapi"
)

const (
	minNameLength = 2
	msgNameShort  = "İsim en az 2 karakter olmalı"
)

// FortuneGetter fetches a fortune for a name.
type FortuneGetter interface {
	GetFortune(ctx context.Context, name string) (fortuneapi.Fortune, error)
}

type screen int

const (
	formScreen screen = iota
	resultScreen
)

// fortuneMsg carries the outcome of one request back into Update.
type fortuneMsg struct {
	seq  int
	text string
	err  error
}

type Model struct {
	api     FortuneGetter
	timeout time.Duration

	screen  screen
	input   textinput.Model
	formErr string

	name    string
	seq     int
	loading bool
	result  string
	errMsg  string
}

func New(api FortuneGetter, timeout time.Duration) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "İsmini yaz"
	ti.CharLimit = 64
	ti.Focus()

	return Model{
		api:     api,
		timeout: timeout,
		screen:  formScreen,
		input:   ti,
	}
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.screen == resultScreen {
			return m.updateResult(msg)
		}
		return m.updateForm(msg)

	case fortuneMsg:
		// Stale answers for a screen the user already left are dropped.
		if m.screen != resultScreen || !m.loading || msg.seq != m.seq {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.errMsg = errorText(msg.err)
			return m, nil
		}
		m.result = msg.text
		return m, nil
	}

	if m.screen == formScreen {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		name := strings.TrimSpace(m.input.Value())
		if utf8.RuneCountInString(name) < minNameLength {
			m.formErr = msgNameShort
			return m, nil
		}
		m.formErr = ""
		m.name = name
		m.seq++
		m.screen = resultScreen
		m.loading = true
		m.result = ""
		m.errMsg = ""
		m.input.Blur()
		return m, m.fetch(name, m.seq)
	case "esc":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "b":
		m.screen = formScreen
		m.loading = false
		return m, m.input.Focus()
	}
	return m, nil
}

func (m Model) fetch(name string, seq int) tea.Cmd {
	api, timeout := m.api, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		f, err := api.GetFortune(ctx, name)
		if err != nil {
			return fortuneMsg{seq: seq, err: err}
		}
		return fortuneMsg{seq: seq, text: f.FortuneText}
	}
}

func errorText(err error) string {
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fortuneapi.FallbackMessage
}

func (m Model) View() string {
	var b strings.Builder
	if m.screen == formScreen {
		b.WriteString(titleStyle.Render("İsim Falı"))
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		if m.formErr != "" {
			b.WriteString(errorStyle.Render(m.formErr))
			b.WriteString("\n")
		}
		b.WriteString(helpStyle.Render("enter: falını al • esc: çık"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(titleStyle.Render("Fal Sonucu"))
	b.WriteString("\n")
	switch {
	case m.loading:
		b.WriteString(mutedStyle.Render("Yükleniyor..."))
	case m.errMsg != "":
		b.WriteString(errorStyle.Render("Hata: " + m.errMsg))
	default:
		b.WriteString(resultBox.Render(m.result))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("esc: geri git • q: çık"))
	b.WriteString("\n")
	return b.String()
}

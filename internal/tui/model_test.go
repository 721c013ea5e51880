package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/randomtoy/namefortune-go/internal/adapters/fortuneapi"
)

type fakeAPI struct {
	text  string
	err   error
	calls []string
}

func (f *fakeAPI) GetFortune(_ context.Context, name string) (fortuneapi.Fortune, error) {
	f.calls = append(f.calls, name)
	if f.err != nil {
		return fortuneapi.Fortune{}, f.err
	}
	return fortuneapi.Fortune{FortuneText: f.text}, nil
}

var enter = tea.KeyMsg{Type: tea.KeyEnter}
var esc = tea.KeyMsg{Type: tea.KeyEsc}

func submit(t *testing.T, m Model, name string) (Model, tea.Cmd) {
	t.Helper()
	m.input.SetValue(name)
	next, cmd := m.Update(enter)
	return next.(Model), cmd
}

func TestForm_RejectsShortName(t *testing.T) {
	api := &fakeAPI{}
	m, cmd := submit(t, New(api, time.Second), "  a ")

	if cmd != nil {
		t.Error("expected no command for a short name")
	}
	if m.screen != formScreen {
		t.Error("expected to stay on the form")
	}
	if m.formErr != msgNameShort {
		t.Errorf("unexpected form error: %q", m.formErr)
	}
	if !strings.Contains(m.View(), msgNameShort) {
		t.Error("form error not rendered")
	}
	if len(api.calls) != 0 {
		t.Errorf("expected no API calls, got %v", api.calls)
	}
}

func TestForm_SubmitShowsResult(t *testing.T) {
	api := &fakeAPI{text: "Parlak bir gün."}
	m, cmd := submit(t, New(api, time.Second), "  Ayşe ")

	if m.screen != resultScreen || !m.loading {
		t.Fatalf("expected loading result screen, got screen=%d loading=%v", m.screen, m.loading)
	}
	if !strings.Contains(m.View(), "Yükleniyor...") {
		t.Error("loading state not rendered")
	}
	if cmd == nil {
		t.Fatal("expected fetch command")
	}

	next, _ := m.Update(cmd())
	m = next.(Model)

	if len(api.calls) != 1 || api.calls[0] != "Ayşe" {
		t.Errorf("unexpected API calls: %v", api.calls)
	}
	if m.loading {
		t.Error("expected loading to finish")
	}
	if !strings.Contains(m.View(), "Parlak bir gün.") {
		t.Errorf("result not rendered:\n%s", m.View())
	}
}

func TestForm_SubmitShowsError(t *testing.T) {
	api := &fakeAPI{err: &fortuneapi.APIError{StatusCode: 502, Message: "Servis yok"}}
	m, cmd := submit(t, New(api, time.Second), "Ayşe")

	next, _ := m.Update(cmd())
	m = next.(Model)

	if !strings.Contains(m.View(), "Hata: Servis yok") {
		t.Errorf("error not rendered:\n%s", m.View())
	}
}

func TestErrorText_Fallback(t *testing.T) {
	if got := errorText(errors.New("")); got != fortuneapi.FallbackMessage {
		t.Errorf("unexpected fallback: %q", got)
	}
	if got := errorText(&fortuneapi.APIError{}); got != fortuneapi.FallbackMessage {
		t.Errorf("unexpected fallback: %q", got)
	}
}

func TestResult_BackDropsStaleAnswer(t *testing.T) {
	api := &fakeAPI{text: "Geç kalan fal."}
	m, cmd := submit(t, New(api, time.Second), "Ayşe")

	next, _ := m.Update(esc)
	m = next.(Model)
	if m.screen != formScreen {
		t.Fatal("expected esc to return to the form")
	}

	next, _ = m.Update(cmd())
	m = next.(Model)
	if m.result != "" {
		t.Errorf("stale answer was applied: %q", m.result)
	}
	if m.input.Value() != "Ayşe" {
		t.Errorf("expected the form to keep the name, got %q", m.input.Value())
	}
}

func TestResult_ResubmitSameNameIgnoresEarlierAnswer(t *testing.T) {
	first := &fakeAPI{text: "İlk fal."}
	m, firstCmd := submit(t, New(first, time.Second), "Ali")

	next, _ := m.Update(esc)
	m = next.(Model)

	second := &fakeAPI{text: "İkinci fal."}
	m.api = second
	m, secondCmd := submit(t, m, "Ali")

	next, _ = m.Update(firstCmd())
	m = next.(Model)
	if !m.loading || m.result != "" {
		t.Fatalf("earlier answer was applied: loading=%v result=%q", m.loading, m.result)
	}

	next, _ = m.Update(secondCmd())
	m = next.(Model)
	if m.result != "İkinci fal." {
		t.Errorf("expected the latest answer, got %q", m.result)
	}
}

package tui

import (
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
)

const panicToast = "Unexpected error (see logs)"

// safeModel keeps a panic in Update or View from tearing down the terminal.
type safeModel struct {
	m   model
	log *slog.Logger
}

func wrapSafe(m model, log *slog.Logger) safeModel {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return safeModel{m: m, log: log}
}

func (s safeModel) Init() tea.Cmd {
	return s.m.Init()
}

func (s safeModel) Update(msg tea.Msg) (tm tea.Model, cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			s.logPanic("tui.update", r, fmt.Sprintf("%T", msg))
			s.m = s.m.afterPanic()
			tm = s
			cmd = nil
		}
	}()

	inner, c := s.m.Update(msg)

	if mm, ok := inner.(model); ok {
		s.m = mm
	} else if sm, ok := inner.(safeModel); ok {
		s = sm
	}

	return s, c
}

func (s safeModel) View() (out string) {
	defer func() {
		if r := recover(); r != nil {
			s.logPanic("tui.view", r, "")
			out = s.m.theme.Toast.Render(panicToast)
		}
	}()
	return s.m.View()
}

func (s safeModel) logPanic(where string, r any, msgType string) {
	attrs := []any{
		"where", where,
		"screen", int(s.m.scr),
		"designing", s.m.designing,
		"batch_running", s.m.running,
		"panic", fmt.Sprint(r),
		"stack", string(debug.Stack()),
	}
	if msgType != "" {
		attrs = append(attrs, "msg", msgType)
	}
	if s.m.result != nil {
		attrs = append(attrs, "design", s.m.result.Design.Name())
	}
	s.log.Error("panic.recovered", attrs...)
}

// afterPanic drops in-flight design and batch state. The design screen is kept
// when its inputs survived so the user can retry; anything else returns home.
func (m model) afterPanic() model {
	m.designing = false
	m.result = nil
	m.running = false
	m.batchOut = ""
	m.preview = ""
	m.status = ""

	if m.scr == screenDesign && len(m.inputs) == focusResult {
		m.setFocus(focusTarget)
	} else {
		m.scr = screenHome
		m.focus = focusResult
	}
	m.toast = panicToast
	return m
}

var _ tea.Model = (*safeModel)(nil)

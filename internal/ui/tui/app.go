package tui

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ArcInstitute/bridge-rna-designer/internal/app/format"
	"github.com/ArcInstitute/bridge-rna-designer/internal/domain"
	"github.com/ArcInstitute/bridge-rna-designer/internal/usecase"
)

const (
	defaultTarget = "ATCGGGCCTACGCA"
	defaultDonor  = "ACAGTATCTTGTAT"
)

type screen int

const (
	screenHome screen = iota
	screenDesign
	screenDesigns
	screenBatches
)

type outputTab int

const (
	tabStockholm outputTab = iota
	tabFASTA
)

const (
	focusTarget = iota
	focusDonor
	focusResult
)

type menuItem struct {
	title string
	desc  string
	key   string
}

func (m menuItem) Title() string       { return m.title }
func (m menuItem) Description() string { return m.desc }
func (m menuItem) FilterValue() string { return m.title }

type model struct {
	theme Theme
	deps  Deps
	log   *slog.Logger

	scr  screen
	menu list.Model

	workspaceFound bool
	workspaceRoot  string
	cfg            domain.Config

	toast  string
	status string

	inputs    []textinput.Model
	focus     int
	designing bool
	result    *usecase.DesignResult
	tab       outputTab

	designs list.Model
	preview string

	batches  list.Model
	running  bool
	batchOut string
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, m.log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	deps = deps.withDefaults()
	t := DefaultTheme()

	log := deps.Logger
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	items := []list.Item{
		menuItem{title: "Design", desc: "Program a bridge RNA from a target and donor site"},
		menuItem{title: "Batches", desc: "Design every pair in a batch file"},
		menuItem{title: "Designs", desc: "Browse saved designs"},
		menuItem{title: "Init Workspace", desc: "Create bridgerna.yaml, designs/ and batches/ here"},
		menuItem{title: "Quit", desc: "Exit bridgerna"},
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "bridgerna"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	m := model{
		theme:   t,
		deps:    deps,
		log:     log,
		scr:     screenHome,
		menu:    l,
		cfg:     domain.DefaultConfig(),
		inputs:  newSiteInputs(),
		designs: newSubList("Saved designs"),
		batches: newSubList("Batches"),
	}

	return m
}

func newSiteInputs() []textinput.Model {
	target := textinput.New()
	target.Prompt = "Target > "
	target.Placeholder = defaultTarget
	target.CharLimit = 32
	target.SetValue(defaultTarget)

	donor := textinput.New()
	donor.Prompt = "Donor  > "
	donor.Placeholder = defaultDonor
	donor.CharLimit = 32
	donor.SetValue(defaultDonor)

	return []textinput.Model{target, donor}
}

func newSubList(title string) list.Model {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	return l
}

func (m model) Init() tea.Cmd {
	return tea.Batch(cmdRefreshWorkspace(m.deps), textinput.Blink)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w, h := msg.Width, msg.Height
		m.menu.SetSize(w-4, h-10)
		m.designs.SetSize(w-4, h-12)
		m.batches.SetSize(w-4, h-12)
		return m, nil

	case workspaceRefreshedMsg:
		m.workspaceFound = msg.found
		m.workspaceRoot = msg.root
		m.cfg = msg.cfg
		if msg.found && msg.err != nil {
			m.toast = userMessage(msg.err)
		}
		return m, nil

	case initWorkspaceDoneMsg:
		if msg.err != nil {
			m.log.Error("workspace.init.failed", "root", msg.root, "err", msg.err)
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.log.Info("workspace.init.ok", "root", msg.root)
		m.toast = ""
		m.status = "Workspace initialized at " + msg.root
		return m, cmdRefreshWorkspace(m.deps)

	case designDoneMsg:
		m.designing = false
		if msg.err != nil {
			m.result = nil
			m.toast = userMessage(msg.err)
			return m, nil
		}
		res := msg.res
		m.result = &res
		m.toast = ""
		m.status = ""
		m.setFocus(focusResult)
		return m, nil

	case designSavedMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.toast = ""
		m.status = "Saved " + msg.id
		return m, nil

	case designsLoadedMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			if len(msg.refs) == 0 {
				return m, nil
			}
		}
		items := make([]list.Item, 0, len(msg.refs))
		for _, r := range msg.refs {
			desc := r.Name
			if r.Label != "" {
				desc = r.Label + " · " + r.Name
			}
			items = append(items, menuItem{title: r.ID, desc: clampString(desc, 72), key: r.ID})
		}
		m.designs.SetItems(items)
		return m, nil

	case designPreviewMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.preview = msg.preview
		return m, nil

	case batchesLoadedMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		items := make([]list.Item, 0, len(msg.refs))
		for _, r := range msg.refs {
			items = append(items, menuItem{title: r.Name, desc: r.Path, key: r.Path})
		}
		m.batches.SetItems(items)
		return m, nil

	case batchDoneMsg:
		m.running = false
		m.batchOut = renderBatchResult(msg)
		if msg.err != nil {
			m.toast = userMessage(msg.err)
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.scr {
		case screenHome:
			return m.updateHome(msg)
		case screenDesign:
			return m.updateDesign(msg)
		case screenDesigns:
			return m.updateDesigns(msg)
		case screenBatches:
			return m.updateBatches(msg)
		}
	}

	if m.scr == screenDesign && m.focus != focusResult {
		return m.updateInputs(msg)
	}
	return m, nil
}

func (m model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		if m.menu.FilterState() != list.Filtering {
			return m, tea.Quit
		}

	case "enter":
		if m.menu.FilterState() == list.Filtering {
			break
		}
		it, ok := m.menu.SelectedItem().(menuItem)
		if !ok {
			return m, nil
		}
		m.toast = ""
		m.status = ""
		switch it.title {
		case "Quit":
			return m, tea.Quit
		case "Design":
			m.scr = screenDesign
			m.setFocus(focusTarget)
			return m, textinput.Blink
		case "Designs":
			if !m.workspaceFound {
				m.toast = "Workspace not found"
				return m, nil
			}
			m.scr = screenDesigns
			m.preview = ""
			return m, cmdLoadDesigns(m.deps, m.workspaceRoot)
		case "Batches":
			if !m.workspaceFound {
				m.toast = "Workspace not found"
				return m, nil
			}
			m.scr = screenBatches
			m.batchOut = ""
			return m, cmdLoadBatches(m.deps, m.workspaceRoot)
		case "Init Workspace":
			wd, err := os.Getwd()
			if err != nil {
				m.toast = userMessage(err)
				return m, nil
			}
			return m, cmdInitWorkspaceHere(m.deps, wd)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m model) updateDesign(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.goHome()
		return m, nil
	}

	if m.focus == focusResult {
		switch msg.String() {
		case "tab", "shift+tab", "left", "right":
			if m.tab == tabStockholm {
				m.tab = tabFASTA
			} else {
				m.tab = tabStockholm
			}
		case "s":
			if m.result != nil {
				m.status = "Saving…"
				return m, cmdSaveDesign(m.deps, m.workspaceRoot, m.result.Design, m.log)
			}
		case "e", "up":
			m.setFocus(focusTarget)
			return m, textinput.Blink
		case "q":
			m.goHome()
		}
		return m, nil
	}

	switch msg.String() {
	case "enter":
		if m.designing {
			return m, nil
		}
		m.designing = true
		m.toast = ""
		return m, cmdDesign(m.inputs[focusTarget].Value(), m.inputs[focusDonor].Value(), m.log)
	case "tab", "down":
		m.setFocus((m.focus + 1) % len(m.inputs))
		return m, nil
	case "shift+tab", "up":
		m.setFocus((m.focus + len(m.inputs) - 1) % len(m.inputs))
		return m, nil
	}

	return m.updateInputs(msg)
}

func (m model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}
	return m, tea.Batch(cmds...)
}

func (m model) updateDesigns(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		if m.preview != "" {
			m.preview = ""
			return m, nil
		}
		m.goHome()
		return m, nil
	case "enter":
		it, ok := m.designs.SelectedItem().(menuItem)
		if !ok {
			return m, nil
		}
		return m, cmdPreviewDesign(m.deps, m.workspaceRoot, it.key)
	}

	var cmd tea.Cmd
	m.designs, cmd = m.designs.Update(msg)
	return m, cmd
}

func (m model) updateBatches(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		if m.running {
			return m, nil
		}
		if m.batchOut != "" {
			m.batchOut = ""
			return m, nil
		}
		m.goHome()
		return m, nil
	case "enter":
		if m.running {
			return m, nil
		}
		it, ok := m.batches.SelectedItem().(menuItem)
		if !ok {
			return m, nil
		}
		m.running = true
		m.toast = ""
		return m, cmdRunBatch(m.deps, m.workspaceRoot, it.key, m.log)
	}

	var cmd tea.Cmd
	m.batches, cmd = m.batches.Update(msg)
	return m, cmd
}

func (m *model) setFocus(f int) {
	m.focus = f
	for i := range m.inputs {
		if i == f {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

func (m *model) goHome() {
	m.scr = screenHome
	m.setFocus(focusResult)
	m.toast = ""
	m.status = ""
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("bridgerna") + "\n" +
		m.theme.Subtitle.Render("Bridge RNA designer: program a 177-nt bridge RNA from target and donor sites") + "\n"

	var workspaceBanner string
	if m.workspaceFound {
		workspaceBanner = m.theme.Help.Render(fmt.Sprintf("Workspace: %s", m.workspaceRoot))
	} else {
		workspaceBanner = m.theme.Help.Render("No workspace found (Init Workspace enables saving and batches).")
	}

	var footer string
	if m.toast != "" {
		footer += "\n" + m.theme.Toast.Render("✗ "+m.toast)
	}
	if m.status != "" {
		footer += "\n" + m.theme.Help.Render(m.status)
	}

	var body string
	switch m.scr {
	case screenHome:
		help := m.theme.Help.Render("↑/↓ navigate • enter open • / search • q quit")
		body = m.theme.Card.Render(m.menu.View()) + "\n" + help

	case screenDesign:
		body = m.viewDesign()

	case screenDesigns:
		if m.preview != "" {
			body = m.theme.Card.Render(m.preview) + "\n" + m.theme.Help.Render("esc back")
		} else {
			body = m.theme.Card.Render(m.designs.View()) + "\n" + m.theme.Help.Render("enter preview • esc back")
		}

	case screenBatches:
		switch {
		case m.running:
			body = m.theme.Card.Render("Designing batch…")
		case m.batchOut != "":
			body = m.theme.Card.Render(m.batchOut) + "\n" + m.theme.Help.Render("esc back")
		default:
			body = m.theme.Card.Render(m.batches.View()) + "\n" + m.theme.Help.Render("enter design & save • esc back")
		}

	default:
		body = "unknown state"
	}

	return wrap.Render(header + "\n" + workspaceBanner + "\n\n" + body + footer)
}

func (m model) viewDesign() string {
	var b strings.Builder

	for _, in := range m.inputs {
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(renderLiveComponents(m.inputs[focusTarget].Value(), m.inputs[focusDonor].Value()))

	card := m.theme.Card.Render(strings.TrimSuffix(b.String(), "\n"))

	if m.designing {
		return card + "\n" + m.theme.Help.Render("Designing…")
	}
	if m.result == nil || m.focus != focusResult {
		return card + "\n" + m.theme.Help.Render("enter design • ↑/↓ switch field • esc back")
	}

	fa, sto := renderOptions(m.cfg)
	var out string
	if m.tab == tabStockholm {
		out = format.Stockholm(m.result.Design, sto...)
	} else {
		out = strings.TrimSuffix(format.FASTA(m.result.Design, fa...), "\n")
	}

	tabs := m.renderTab("Stockholm", m.tab == tabStockholm) + m.renderTab("FASTA", m.tab == tabFASTA)
	warn := m.theme.Warning.Render(renderWarnings(m.result.Warnings))

	help := "tab switch format • s save • e edit • esc back"
	if !m.workspaceFound {
		help = "tab switch format • e edit • esc back"
	}

	return card + "\n\n" + tabs + "\n" + m.theme.Card.Render(m.theme.Sequence.Render(out)) + "\n" + warn + "\n" + m.theme.Help.Render(help)
}

func (m model) renderTab(label string, active bool) string {
	if active {
		return m.theme.TabActive.Render(label)
	}
	return m.theme.Tab.Render(label)
}

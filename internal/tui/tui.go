package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/Adamkadaban/Whatsapp-Analyzer/internal/render"
	"github.com/Adamkadaban/Whatsapp-Analyzer/internal/stats"
)

// model

type model struct {
	title    string // chat name shown above the panels
	summary  *stats.Summary
	sections []string
	cursor   int
	content  viewport.Model
	rendered string // section currently in the viewport
	width    int
	height   int
	ready    bool
	quitting bool
}

func initialModel(title string, s *stats.Summary) model {
	return model{
		title:    title,
		summary:  s,
		sections: render.SectionNames(),
		content:  viewport.New(0, 0),
	}
}

// Run starts the summary browser and blocks until it exits.
func Run(title string, s *stats.Summary) error {
	m := initialModel(title, s)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func (m model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.content = viewport.New(m.contentWidth(), m.panelHeight())
		m.rendered = ""
		m.showSection()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
				m.showSection()
			}
			return m, nil

		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.sections)-1 {
				m.cursor++
				m.showSection()
			}
			return m, nil

		case key.Matches(msg, keys.ContentUp):
			m.content.LineUp(m.panelHeight() / 2)
			return m, nil

		case key.Matches(msg, keys.ContentDn):
			m.content.LineDown(m.panelHeight() / 2)
			return m, nil

		case key.Matches(msg, keys.PageUp):
			m.content.LineUp(m.panelHeight())
			return m, nil

		case key.Matches(msg, keys.PageDown):
			m.content.LineDown(m.panelHeight())
			return m, nil

		case key.Matches(msg, keys.Top):
			m.content.GotoTop()
			return m, nil

		case key.Matches(msg, keys.Bottom):
			m.content.GotoBottom()
			return m, nil
		}
		return m, nil

	case tea.MouseMsg:
		if !m.ready {
			return m, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
			var cmd tea.Cmd
			m.content, cmd = m.content.Update(msg)
			return m, cmd
		case tea.MouseButtonLeft:
			if msg.Action == tea.MouseActionPress {
				if idx := m.hitTest(msg.X, msg.Y); idx >= 0 && idx != m.cursor {
					m.cursor = idx
					m.showSection()
				}
			}
			return m, nil
		}
		return m, nil
	}

	return m, nil
}

// showSection re-renders the current section into the viewport unless it
// is already showing.
func (m *model) showSection() {
	name := m.sections[m.cursor]
	if name == m.rendered {
		return
	}
	opts := render.Options{Width: m.contentWidth(), Color: true}
	m.content.SetContent(render.Section(m.summary, name, opts))
	m.content.GotoTop()
	m.rendered = name
}

// View renders the full TUI.
func (m model) View() string {
	if m.quitting || !m.ready {
		return ""
	}

	listW := m.listWidth()
	contentW := m.contentWidth()
	panelH := m.panelHeight()

	header := styleTitle.Render(fmt.Sprintf("%s  (%s messages)",
		m.title, humanize.Comma(int64(m.summary.TotalMessages))))

	listPanel := stylePanelBorder.
		Width(listW).
		Height(panelH).
		Render(m.renderSectionList(listW, panelH))

	m.content.Width = contentW
	m.content.Height = panelH
	contentPanel := styleActiveBorder.
		Width(contentW).
		Height(panelH).
		Render(m.content.View())

	panels := lipgloss.JoinHorizontal(lipgloss.Top, listPanel, contentPanel)

	return lipgloss.JoinVertical(lipgloss.Left, header, panels, m.statusBar())
}

// renderSectionList renders the left panel of section names.
func (m model) renderSectionList(width, height int) string {
	var lines []string
	for i, name := range m.sections {
		if len(lines) >= height {
			break
		}
		if i == m.cursor {
			lines = append(lines, styleListSelected.Render("> "+name))
		} else {
			lines = append(lines, styleListNormal.Render("  "+name))
		}
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}

// helper methods

func (m model) listWidth() int {
	if m.width <= 0 {
		return 24
	}
	w := m.width*25/100 - 4
	if w < 16 {
		w = 16
	}
	return w
}

func (m model) contentWidth() int {
	if m.width <= 0 {
		return 60
	}
	w := m.width*75/100 - 4
	if w < 20 {
		w = 20
	}
	return w
}

func (m model) panelHeight() int {
	if m.height <= 0 {
		return 20
	}
	// Subtract title row (1) + status bar (1) + borders (4)
	h := m.height - 6
	if h < 5 {
		h = 5
	}
	return h
}

// hitTest maps terminal coordinates to a section index, or -1.
func (m model) hitTest(x, y int) int {
	contentYStart := 2 // title row (1) + top border (1)
	idx := y - contentYStart
	if x < 1 || x > m.listWidth() {
		return -1
	}
	if idx < 0 || idx >= len(m.sections) {
		return -1
	}
	return idx
}

func (m model) statusBar() string {
	parts := []string{
		fmt.Sprintf("%d/%d", m.cursor+1, len(m.sections)),
		"up/dn sections",
		"scroll/C-u/C-d content",
		"q quit",
	}
	return styleStatusBar.Render(strings.Join(parts, " | "))
}

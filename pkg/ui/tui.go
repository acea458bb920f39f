package ui

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"toolbelt-go/pkg/registrar"
	"toolbelt-go/pkg/tools"
)

// rosterWidth is the fixed width of the tool list pane.
const rosterWidth = 30

// Options configures the tool browser
type Options struct {
	ShowTimestamps bool
	SyntaxTheme    string
}

// toolItem is one entry in the roster pane
type toolItem struct {
	Name        string
	Category    string
	Enabled     bool
	Description string
	Schema      map[string]interface{}
	Definition  *registrar.Definition
}

// Model represents the TUI state
type Model struct {
	manager         *tools.ToolManager
	items           []toolItem
	cursor          int
	viewport        viewport.Model
	viewportFocused bool
	showTimestamps  bool
	theme           string
	status          string
	err             error
	showHelp        bool
	windowWidth     int
	windowHeight    int
	ready           bool
}

// Style definitions
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4")).
			PaddingLeft(1)

	categoryHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#43BF6D"))

	itemStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	selectedItemStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#F25D94"))

	disabledItemStyle = lipgloss.NewStyle().
				PaddingLeft(2).
				Foreground(lipgloss.Color("#626262"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A550DF")).
			PaddingLeft(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			PaddingLeft(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F87")).
			Bold(true)
)

// NewModel creates a new TUI model browsing the manager's tool roster
func NewModel(manager *tools.ToolManager, opts Options) Model {
	return Model{
		manager:        manager,
		items:          buildItems(manager),
		showTimestamps: opts.ShowTimestamps,
		theme:          opts.SyntaxTheme,
		showHelp:       true,
	}
}

// buildItems flattens the registry into roster entries, category by category.
// Disabled categories are included so the browser shows the full inventory.
func buildItems(manager *tools.ToolManager) []toolItem {
	var items []toolItem
	for _, cat := range manager.Registry().CategoryList() {
		for _, tool := range cat.Tools {
			item := toolItem{
				Name:        tool.Name(),
				Category:    cat.ID,
				Enabled:     cat.Enabled,
				Description: tool.Description(),
				Schema:      tool.InputSchema(),
			}
			if dt, ok := tool.(interface{ Definition() registrar.Definition }); ok {
				def := dt.Definition()
				item.Definition = &def
			}
			items = append(items, item)
		}
	}
	return items
}

// selectedItem returns the roster entry under the cursor, or nil when empty
func (m Model) selectedItem() *toolItem {
	if len(m.items) == 0 || m.cursor < 0 || m.cursor >= len(m.items) {
		return nil
	}
	return &m.items[m.cursor]
}

// Refresh rebuilds the roster from the registry, keeping the cursor in range
func (m *Model) Refresh() {
	m.items = buildItems(m.manager)
	if m.cursor >= len(m.items) {
		m.cursor = len(m.items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.updateViewportContent()
}

// detailMarkdown renders the selected tool as a markdown document
func (m Model) detailMarkdown(item toolItem) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", item.Name)
	fmt.Fprintf(&sb, "**Category:** %s", item.Category)
	if !item.Enabled {
		sb.WriteString(" (disabled)")
	}
	sb.WriteString("\n\n")
	sb.WriteString(item.Description)
	sb.WriteString("\n")

	if len(item.Schema) > 0 {
		if schema, err := json.MarshalIndent(item.Schema, "", "  "); err == nil {
			sb.WriteString("\n## Input Schema\n\n```json\n")
			sb.Write(schema)
			sb.WriteString("\n```\n")
		}
	}

	if def := item.Definition; def != nil {
		sb.WriteString("\n## Definition\n\n")
		fmt.Fprintf(&sb, "- **API URL:** %s\n", def.APIURL)
		fmt.Fprintf(&sb, "- **API Host:** %s\n", def.APIHost)
		fmt.Fprintf(&sb, "- **API Key Env:** %s\n", def.APIKeyEnv)
		if m.showTimestamps && !def.CreatedAt.IsZero() {
			fmt.Fprintf(&sb, "- **Registered:** %s\n", def.CreatedAt.Format(time.RFC3339))
		}
	}

	return sb.String()
}

// updateViewportContent refreshes the detail pane for the selected tool
func (m *Model) updateViewportContent() {
	if !m.ready {
		return
	}

	content := "No tools registered."
	if item := m.selectedItem(); item != nil {
		content = m.detailMarkdown(*item)
	}

	wrap := m.viewport.Width - 2
	if wrap < 20 {
		wrap = 20
	}

	opts := []glamour.TermRendererOption{glamour.WithWordWrap(wrap)}
	if m.theme != "" && m.theme != "auto" {
		opts = append(opts, glamour.WithStylePath(m.theme))
	} else {
		opts = append(opts, glamour.WithAutoStyle())
	}

	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		m.viewport.SetContent(content)
		m.viewport.GotoTop()
		return
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		// Fall back to the raw markdown if rendering fails
		m.viewport.SetContent(content)
	} else {
		m.viewport.SetContent(rendered)
	}
	m.viewport.GotoTop()
}

// yankSelected copies the selected tool's definition to the clipboard as JSON
func (m *Model) yankSelected() {
	item := m.selectedItem()
	if item == nil {
		return
	}

	var payload interface{}
	if item.Definition != nil {
		payload = item.Definition
	} else {
		payload = map[string]interface{}{
			"name":         item.Name,
			"description":  item.Description,
			"input_schema": item.Schema,
		}
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		m.status = "yank failed"
		return
	}
	if err := clipboard.WriteAll(string(data)); err != nil {
		m.status = "clipboard unavailable"
		return
	}
	m.status = fmt.Sprintf("yanked %s", item.Name)
}

// renderHelp returns the help text for the current focus
func (m Model) renderHelp() string {
	if !m.showHelp {
		return helpStyle.Render("Ctrl+h: show help")
	}

	commonHelp := "Tab: switch focus | r: refresh | Ctrl+h: hide help | q: quit"
	if m.viewportFocused {
		return helpStyle.Render("j/k: scroll | u/d: half page | g/G: top/bottom | " + commonHelp)
	}
	return helpStyle.Render("j/k: select tool | g/G: first/last | y: yank JSON | " + commonHelp)
}

// Init initializes the TUI
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles events and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var vpCmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// One-shot status messages clear on the next keypress
		m.status = ""

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "ctrl+h":
			m.showHelp = !m.showHelp
			return m, nil

		case "tab":
			m.viewportFocused = !m.viewportFocused
			return m, nil

		case "r":
			m.Refresh()
			return m, nil
		}

		if m.viewportFocused {
			switch msg.String() {
			case "g":
				m.viewport.GotoTop()
				return m, nil
			case "G":
				m.viewport.GotoBottom()
				return m, nil
			case "u":
				m.viewport.HalfPageUp()
				return m, nil
			case "d":
				m.viewport.HalfPageDown()
				return m, nil
			}
			m.viewport, vpCmd = m.viewport.Update(msg)
			return m, vpCmd
		}

		switch msg.String() {
		case "j", "down":
			if m.cursor < len(m.items)-1 {
				m.cursor++
				m.updateViewportContent()
			}
			return m, nil
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
				m.updateViewportContent()
			}
			return m, nil
		case "g":
			m.cursor = 0
			m.updateViewportContent()
			return m, nil
		case "G":
			if len(m.items) > 0 {
				m.cursor = len(m.items) - 1
				m.updateViewportContent()
			}
			return m, nil
		case "y":
			m.yankSelected()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height

		headerHeight := 2
		footerHeight := 2
		verticalMargins := headerHeight + footerHeight

		detailWidth := msg.Width - rosterWidth - 4
		if detailWidth < 20 {
			detailWidth = 20
		}

		if !m.ready {
			m.viewport = viewport.New(detailWidth, msg.Height-verticalMargins)
			m.ready = true
		} else {
			m.viewport.Width = detailWidth
			m.viewport.Height = msg.Height - verticalMargins
		}
		m.updateViewportContent()
		return m, nil
	}

	m.viewport, vpCmd = m.viewport.Update(msg)
	return m, vpCmd
}

// renderRoster draws the tool list pane with the cursor highlighted
func (m Model) renderRoster() string {
	if len(m.items) == 0 {
		return itemStyle.Render("(no tools)")
	}

	var sb strings.Builder
	currentCat := ""
	for i, item := range m.items {
		if item.Category != currentCat {
			if currentCat != "" {
				sb.WriteString("\n")
			}
			currentCat = item.Category
			sb.WriteString(categoryHeaderStyle.Render(currentCat) + "\n")
		}

		switch {
		case i == m.cursor:
			sb.WriteString(selectedItemStyle.Render("> "+item.Name) + "\n")
		case !item.Enabled:
			sb.WriteString(disabledItemStyle.Render(item.Name) + "\n")
		default:
			sb.WriteString(itemStyle.Render(item.Name) + "\n")
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

// View renders the current UI state
func (m Model) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", m.err))
	}
	if !m.ready {
		return "Initializing..."
	}

	title := titleStyle.Render(fmt.Sprintf("Toolbelt (%d tools)", len(m.items)))
	if m.status != "" {
		title += statusStyle.Render(" " + m.status)
	}

	roster := lipgloss.NewStyle().
		Width(rosterWidth).
		Height(m.viewport.Height).
		Render(m.renderRoster())

	detailStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#626262"))
	if m.viewportFocused {
		detailStyle = detailStyle.BorderForeground(lipgloss.Color("#7D56F4"))
	}
	detail := detailStyle.Render(m.viewport.View())

	body := lipgloss.JoinHorizontal(lipgloss.Top, roster, detail)

	return fmt.Sprintf("%s\n%s\n%s", title, body, m.renderHelp())
}

package cli

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/anpham6/squared-sub012/pkg/anchor"
	"github.com/anpham6/squared-sub012/pkg/document"
	"github.com/anpham6/squared-sub012/pkg/geom"
	"github.com/anpham6/squared-sub012/pkg/gravity"
	"github.com/anpham6/squared-sub012/pkg/tree"
)

// List styles
var (
	listDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
	listHeaderStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

// =============================================================================
// Directive rows
// =============================================================================

// directiveFilter narrows the rows shown by the browser.
type directiveFilter int

const (
	filterAll directiveFilter = iota
	filterAnchors
	filterGravity
)

var filterNames = [...]string{"all", "anchors", "gravity"}

func (f directiveFilter) String() string { return filterNames[f] }

// directiveRow is one line of the browser: an anchor or a gravity directive.
type directiveRow struct {
	Element string
	Family  string // "anchor" or "gravity"
	Kind    string
	Target  string
	Detail  string
	Pivot   bool
	Ann     tree.Annotation
}

var directiveHeaders = []string{"", "Element", "Family", "Kind", "Target", "Detail"}

// headerRow is the row index lipgloss passes to style functions for headers.
const headerRow = -1

// directiveRows flattens a result into browser rows, anchors first, in
// emission order.
func directiveRows(res *document.Result) []directiveRow {
	pivots := make(map[string]bool, len(res.Pivots))
	for _, p := range res.Pivots {
		pivots[p] = true
	}
	rows := make([]directiveRow, 0, res.Directives())
	for _, d := range res.Anchors {
		rows = append(rows, directiveRow{
			Element: d.ID,
			Family:  "anchor",
			Kind:    anchorKind(d),
			Target:  d.Target,
			Detail:  anchorDetail(d),
			Pivot:   pivots[d.ID],
			Ann:     res.Annotations.Get(d.ID),
		})
	}
	for _, g := range res.Gravity {
		rows = append(rows, directiveRow{
			Element: g.ID,
			Family:  "gravity",
			Kind:    g.Gravity.String(),
			Target:  g.OffsetParent,
			Detail:  marginDetail(g.Margins),
			Ann:     res.Annotations.Get(g.ID),
		})
	}
	return rows
}

func anchorKind(d anchor.Directive) string {
	if d.IsCircular() {
		return d.Kind.String()
	}
	return d.Axis.String() + " " + d.Kind.String()
}

func anchorDetail(d anchor.Directive) string {
	switch d.Kind {
	case anchor.KindCircular:
		return fmt.Sprintf("r=%s a=%s°", formatNumber(d.Radius), formatNumber(d.Angle))
	case anchor.KindOffset:
		return fmt.Sprintf("%s %+g", d.Edge, d.Offset)
	}
	return d.Edge
}

func marginDetail(m gravity.Margins) string {
	if len(m) == 0 {
		return "—"
	}
	edges := make([]geom.Edge, 0, len(m))
	for e := range m {
		edges = append(edges, e)
	}
	slices.Sort(edges)
	parts := make([]string, len(edges))
	for i, e := range edges {
		parts[i] = e.String() + "=" + formatNumber(m[e])
	}
	return strings.Join(parts, " ")
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (r directiveRow) matches(f directiveFilter) bool {
	switch f {
	case filterAnchors:
		return r.Family == "anchor"
	case filterGravity:
		return r.Family == "gravity"
	}
	return true
}

func (r directiveRow) cells(cursor string) []string {
	elem := r.Element
	if r.Pivot {
		elem += " *"
	}
	return []string{cursor, elem, r.Family, r.Kind, r.Target, r.Detail}
}

// directiveTable renders rows as a bordered lipgloss table. styleFn may be
// nil for plain output.
func directiveTable(rows [][]string, styleFn func(row, col int) lipgloss.Style) *table.Table {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(directiveHeaders...).
		Rows(rows...)
	if styleFn == nil {
		styleFn = func(row, col int) lipgloss.Style {
			if row == headerRow {
				return listHeaderStyle
			}
			return lipgloss.NewStyle()
		}
	}
	return t.StyleFunc(styleFn)
}

// =============================================================================
// DirectiveListModel - Interactive directive browser
// =============================================================================

// DirectiveListModel is the bubbletea model for browsing a result.
type DirectiveListModel struct {
	Title  string
	Rows   []directiveRow
	Filter directiveFilter
	Cursor int
	Height int
	Offset int

	visible []int
}

// NewDirectiveListModel creates a browser over res.
func NewDirectiveListModel(res *document.Result) DirectiveListModel {
	title := res.Document
	if title == "" {
		title = res.ID
	}
	m := DirectiveListModel{
		Title:  title,
		Rows:   directiveRows(res),
		Height: 15,
	}
	m.refilter()
	return m
}

func (m *DirectiveListModel) refilter() {
	m.visible = make([]int, 0, len(m.Rows))
	for i, r := range m.Rows {
		if r.matches(m.Filter) {
			m.visible = append(m.visible, i)
		}
	}
	m.Cursor, m.Offset = 0, 0
}

// Selected returns the row under the cursor.
func (m DirectiveListModel) Selected() (directiveRow, bool) {
	if m.Cursor >= len(m.visible) {
		return directiveRow{}, false
	}
	return m.Rows[m.visible[m.Cursor]], true
}

func (m DirectiveListModel) Init() tea.Cmd {
	return nil
}

func (m DirectiveListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.visible)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "tab":
			m.Filter = (m.Filter + 1) % directiveFilter(len(filterNames))
			m.refilter()
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 9
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m DirectiveListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Title))
	b.WriteString("  ")
	b.WriteString(listDimStyle.Render("[" + m.Filter.String() + "]"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  tab filter  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.visible))
	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, m.Rows[m.visible[i]].cells(cursor))
	}

	t := directiveTable(rows, func(row, col int) lipgloss.Style {
		if row == headerRow {
			return listHeaderStyle
		}
		idx := m.Offset + row
		if idx >= len(m.visible) {
			return lipgloss.NewStyle()
		}
		r := m.Rows[m.visible[idx]]
		base := lipgloss.NewStyle()
		if col == 5 {
			base = base.Foreground(colorGray)
		}
		if idx == m.Cursor {
			base = base.Bold(true)
			if col != 5 {
				base = base.Foreground(colorCyan)
			}
			return base
		}
		if r.Family == "gravity" && col != 5 {
			return base.Foreground(colorGreen)
		}
		return base
	})

	b.WriteString(t.Render())
	b.WriteString("\n")
	if r, ok := m.Selected(); ok {
		b.WriteString(listDimStyle.Render("  " + annotationSummary(r.Ann)))
		b.WriteString("\n")
	}
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", min(m.Cursor+1, len(m.visible)), len(m.visible))))

	return b.String()
}

// =============================================================================
// Helpers
// =============================================================================

func annotationSummary(a tree.Annotation) string {
	var flags []string
	if a.Anchored {
		flags = append(flags, "anchored")
	}
	if a.Constraint.Horizontal {
		flags = append(flags, "horizontal")
	}
	if a.Constraint.Vertical {
		flags = append(flags, "vertical")
	}
	if a.Positioned {
		flags = append(flags, "positioned")
	}
	if len(flags) == 0 {
		return "unresolved"
	}
	return strings.Join(flags, " · ")
}

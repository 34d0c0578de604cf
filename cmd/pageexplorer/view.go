package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model.
func (m *Model) View() string {
	if !m.ready {
		return "loading..."
	}

	var b strings.Builder

	s := m.pool.Stats()
	b.WriteString(headerStyle.Render(fmt.Sprintf(
		"pageexplorer — %d pages, %d used, %d free — next alloc: %d pages",
		m.pages, s.PagesUsed, s.PagesFree, m.size)))
	b.WriteString("\n")

	// Per-level free-list gauge, root at the bottom.
	var levels strings.Builder
	for i := len(s.Levels) - 1; i >= 0; i-- {
		l := s.Levels[i]
		bar := strings.Repeat("█", min(l.Blocks, 40))
		line := fmt.Sprintf("L%-2d %6d-page blocks: %4d %s",
			l.Level, 1<<l.Level, l.Blocks, freeStyle.Render(bar))
		levels.WriteString(line)
		levels.WriteString("\n")
	}
	b.WriteString(paneStyle.Width(m.width - 2).Render(strings.TrimRight(levels.String(), "\n")))
	b.WriteString("\n")

	// Outstanding blocks, selection highlighted.
	var blocks strings.Builder
	if len(m.blocks) == 0 {
		blocks.WriteString(statusStyle.Render("no outstanding allocations — press 'a'"))
	}
	for i, blk := range m.blocks {
		line := fmt.Sprintf("%#012x  %5d pages  %s",
			blk.Addr, blk.Pages, usedStyle.Render(strings.Repeat("▪", min(blk.Pages, 32))))
		if i == m.sel {
			line = selectedStyle.Render(line)
		}
		blocks.WriteString(line)
		blocks.WriteString("\n")
	}
	m.vp.SetContent(strings.TrimRight(blocks.String(), "\n"))
	b.WriteString(paneStyle.Width(m.width - 2).Render(m.vp.View()))
	b.WriteString("\n")

	help := "a alloc · f free · +/- size · ↑/↓ select · c copy · r reset · q quit"
	b.WriteString(statusStyle.Render(m.status + "  |  " + help))

	return lipgloss.NewStyle().Render(b.String())
}

package main

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/pagekit/cmd/pageexplorer/logger"
	"github.com/joshuapare/pagekit/pkg/phys"
)

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.vp = viewport.New(msg.Width, msg.Height/2)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = msg.Height / 2
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.pool.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.sel > 0 {
			m.sel--
		}

	case key.Matches(msg, m.keys.Down):
		if m.sel < len(m.blocks)-1 {
			m.sel++
		}

	case key.Matches(msg, m.keys.Bigger):
		if m.size*2 <= m.pool.Config().MaxBlockPages {
			m.size *= 2
		}

	case key.Matches(msg, m.keys.Smaller):
		if m.size > 1 {
			m.size /= 2
		}

	case key.Matches(msg, m.keys.Alloc):
		blk, err := m.pool.Alloc(m.size)
		if err != nil {
			m.status = errStyle.Render(err.Error())
			logger.Debug("alloc failed", "pages", m.size, "error", err)
			break
		}
		m.blocks = append(m.blocks, blk)
		m.sel = len(m.blocks) - 1
		m.status = fmt.Sprintf("allocated %d pages at %#x", blk.Pages, blk.Addr)
		logger.Debug("alloc", "pages", blk.Pages, "addr", blk.Addr)

	case key.Matches(msg, m.keys.Free):
		blk := m.selected()
		if blk == nil {
			m.status = "nothing to free"
			break
		}
		m.pool.Free(*blk)
		m.status = fmt.Sprintf("freed %d pages at %#x", blk.Pages, blk.Addr)
		logger.Debug("free", "pages", blk.Pages, "addr", blk.Addr)
		m.blocks = append(m.blocks[:m.sel], m.blocks[m.sel+1:]...)
		m.clampSel()

	case key.Matches(msg, m.keys.Copy):
		blk := m.selected()
		if blk == nil {
			m.status = "no block selected"
			break
		}
		addr := fmt.Sprintf("%#x", blk.Addr)
		if err := clipboard.WriteAll(addr); err != nil {
			m.status = errStyle.Render("clipboard: " + err.Error())
			break
		}
		m.status = "copied " + addr

	case key.Matches(msg, m.keys.Reset):
		m.pool.Close()
		pool, err := phys.Open(phys.Options{Pages: m.pages})
		if err != nil {
			m.status = errStyle.Render(err.Error())
			break
		}
		m.pool = pool
		m.blocks = nil
		m.sel = 0
		m.size = 1
		m.status = "pool reset"
	}
	return m, nil
}

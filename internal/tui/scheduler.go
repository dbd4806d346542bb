package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/selectbox/internal/listbox"
)

// taskMsg delivers a deferred controller task back to Update.
type taskMsg struct {
	task listbox.Task
}

// cmdScheduler turns controller timers into bubbletea commands. Commands
// queued while handling a message are returned from that Update call.
type cmdScheduler struct {
	pending []tea.Cmd
}

func (s *cmdScheduler) Schedule(delay time.Duration, task listbox.Task) {
	msg := taskMsg{task: task}
	if delay <= 0 {
		s.pending = append(s.pending, func() tea.Msg { return msg })
		return
	}
	s.pending = append(s.pending, tea.Tick(delay, func(time.Time) tea.Msg { return msg }))
}

func (s *cmdScheduler) drain() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	if len(cmds) == 1 {
		return cmds[0]
	}
	return tea.Batch(cmds...)
}

// Package tui renders a live view of the auto-raid loop: every target
// in the active list with a countdown to its next raid.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gabe/raider/internal/models"
)

// Snapshot supplies a consistent copy of the active list for rendering.
type Snapshot func() (listName string, farms []models.FarmTarget)

// DispatchMsg reports a dispatch attempt into the view. The scheduler's
// OnDispatch callback sends these through Program.Send.
type DispatchMsg struct {
	Farm string
	OK   bool
}

type tickMsg time.Time

type reloadMsg struct{}

// Model is the bubbletea model for the auto-raid view.
type Model struct {
	snapshot Snapshot
	cancel   context.CancelFunc
	reload   <-chan struct{}

	spinner  spinner.Model
	now      time.Time
	listName string
	farms    []models.FarmTarget
	lastSent string
	sent     int
	failed   int
	quitting bool
}

// New creates the auto-raid view. cancel stops the scheduler when the
// operator quits; reload (optional) triggers a refresh when the store
// file changes on disk.
func New(snapshot Snapshot, cancel context.CancelFunc, reload <-chan struct{}) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = titleStyle

	listName, farms := snapshot()
	return Model{
		snapshot: snapshot,
		cancel:   cancel,
		reload:   reload,
		spinner:  sp,
		now:      time.Now(),
		listName: listName,
		farms:    farms,
	}
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick, tick()}
	if m.reload != nil {
		cmds = append(cmds, waitForReload(m.reload))
	}
	return tea.Batch(cmds...)
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func waitForReload(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return reloadMsg{}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			if m.cancel != nil {
				m.cancel()
			}
			m.quitting = true
			return m, tea.Quit
		}

	case tickMsg:
		m.now = time.Time(msg)
		m.listName, m.farms = m.snapshot()
		return m, tick()

	case reloadMsg:
		m.listName, m.farms = m.snapshot()
		return m, waitForReload(m.reload)

	case DispatchMsg:
		if msg.OK {
			m.sent++
		} else {
			m.failed++
		}
		m.lastSent = msg.Farm
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(titleStyle.Render(fmt.Sprintf(" auto raid (list %q)", m.listName)))
	b.WriteString("\n\n")

	if len(m.farms) == 0 {
		b.WriteString(disabledRowStyle.Render("  no farms in the active list"))
		b.WriteString("\n")
	}

	now := m.now.Unix()
	for _, f := range m.farms {
		b.WriteString(m.renderRow(f, now))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	counters := fmt.Sprintf("%s  %s",
		sentStyle.Render(fmt.Sprintf("sent %d", m.sent)),
		failedStyle.Render(fmt.Sprintf("failed %d", m.failed)))
	if m.lastSent != "" {
		counters += footerStyle.Render("  last: " + m.lastSent)
	}
	b.WriteString(counters)
	b.WriteString("\n")
	b.WriteString(footerStyle.Render("q to stop"))
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderRow(f models.FarmTarget, now int64) string {
	label := fmt.Sprintf("  #%-3d %-20s (%d|%d)  raids %-4d", f.ID, f.Name, f.X, f.Y, f.RaidsSent)

	switch {
	case !f.Enabled:
		return disabledRowStyle.Render(label + "  disabled")
	case !hasTroops(f):
		return disabledRowStyle.Render(label + "  no troops")
	case f.NextRaidAt <= now:
		return rowStyle.Render(label) + dueStyle.Render("  due")
	default:
		return rowStyle.Render(label) + footerStyle.Render("  returns in "+countdown(f.NextRaidAt-now))
	}
}

func hasTroops(f models.FarmTarget) bool {
	for _, count := range f.Troops {
		if count > 0 {
			return true
		}
	}
	return false
}

func countdown(secs int64) string {
	d := time.Duration(secs) * time.Second
	h := int(d.Hours())
	mn := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	if h > 0 {
		return fmt.Sprintf("%dh%02dm%02ds", h, mn, s)
	}
	return fmt.Sprintf("%dm%02ds", mn, s)
}

// NewProgram wraps the model in a bubbletea program. The caller runs
// it and pushes DispatchMsg events through Program.Send.
func NewProgram(model Model) *tea.Program {
	return tea.NewProgram(model)
}

package cli

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// DashboardFlags holds command-line flags for the dashboard command
type DashboardFlags struct {
	RefreshRate time.Duration
}

// NewDashboardCommand creates the dashboard command
func NewDashboardCommand(container *CLIContainer) *cobra.Command {
	flags := &DashboardFlags{}

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Live terminal view of installed server versions",
		Long: `Launch an interactive terminal view of the install root.

The view refreshes continuously, so an install running in another terminal
shows up as soon as its entry point lands on disk.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(container, flags)
		},
	}

	cmd.Flags().DurationVar(&flags.RefreshRate, "refresh", time.Second, "Refresh rate for live updates")

	return cmd
}

// runDashboard starts the terminal dashboard
func runDashboard(container *CLIContainer, flags *DashboardFlags) error {
	model := newDashboardModel(container, flags)

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("dashboard failed: %w", err)
	}

	return nil
}

// dashboardModel holds the state for the Bubble Tea dashboard
type dashboardModel struct {
	container    *CLIContainer
	flags        *DashboardFlags
	states       []installState
	launch       string
	upstream     string
	selectedRow  int
	paused       bool
	lastUpdate   time.Time
	windowWidth  int
	windowHeight int
	err          error
}

// newDashboardModel creates a new dashboard model
func newDashboardModel(container *CLIContainer, flags *DashboardFlags) dashboardModel {
	return dashboardModel{
		container:  container,
		flags:      flags,
		lastUpdate: time.Now(),
	}
}

// Init implements the Bubble Tea init method
func (m dashboardModel) Init() tea.Cmd {
	return tea.Batch(
		m.tickCmd(),
		m.loadStatesCmd(),
		m.loadUpstreamCmd(),
	)
}

// Update implements the Bubble Tea update method
func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case " ":
			m.paused = !m.paused
			return m, nil

		case "up", "k":
			if m.selectedRow > 0 {
				m.selectedRow--
			}
			return m, nil

		case "down", "j":
			if m.selectedRow < len(m.states)-1 {
				m.selectedRow++
			}
			return m, nil

		case "r":
			// Force refresh
			return m, tea.Batch(
				m.loadStatesCmd(),
				m.loadUpstreamCmd(),
			)
		}

	case tickMsg:
		if !m.paused {
			return m, tea.Batch(
				m.tickCmd(),
				m.loadStatesCmd(),
			)
		}
		return m, m.tickCmd()

	case statesLoadedMsg:
		m.states = msg.states
		m.launch = msg.launch
		m.lastUpdate = time.Now()
		if m.selectedRow >= len(m.states) {
			m.selectedRow = 0
		}
		return m, nil

	case upstreamLoadedMsg:
		m.upstream = msg.version
		return m, nil

	case errMsg:
		m.err = msg.err
		return m, nil
	}

	return m, nil
}

// View implements the Bubble Tea view method
func (m dashboardModel) View() string {
	if m.err != nil {
		return fmt.Sprintf("Error: %v\n\nPress 'q' to quit", m.err)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderVersionTable(),
		m.renderFooter(),
	)
}

// renderHeader renders the dashboard header
func (m dashboardModel) renderHeader() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("86")).
		Render("📦 " + m.container.Adapter.Name())

	status := "LIVE"
	statusStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46"))
	if m.paused {
		status = "PAUSED"
		statusStyle = statusStyle.Foreground(lipgloss.Color("196"))
	}

	upstream := "Upstream: checking..."
	if m.upstream != "" {
		upstream = fmt.Sprintf("Upstream: %s", m.upstream)
	}

	line1 := lipgloss.JoinHorizontal(lipgloss.Left,
		title,
		"  ",
		fmt.Sprintf("Versions: %d", len(m.states)),
		"  ",
		upstream,
		"  ",
		statusStyle.Render(status),
	)

	line2 := fmt.Sprintf("Install root: %s", m.container.Config.Install.ContainerDir)
	line3 := fmt.Sprintf("Last update: %s | Refresh rate: %v",
		m.lastUpdate.Format("15:04:05"),
		m.flags.RefreshRate,
	)

	return lipgloss.JoinVertical(lipgloss.Left, line1, line2, line3)
}

// renderVersionTable renders the version table
func (m dashboardModel) renderVersionTable() string {
	if len(m.states) == 0 {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Render("\n  No versions installed. Run 'jsonls install' in another terminal...\n")
	}

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("86")).
		Render(fmt.Sprintf("%-16s │ %-13s │ %s", "VERSION", "STATE", "MODIFIED"))

	rows := []string{header}
	for i, state := range m.states {
		label := "✅ ready"
		if !state.Ready {
			label = "❌ incomplete"
		}
		modified := "-"
		if !state.Modified.IsZero() {
			modified = state.Modified.Format("2006-01-02 15:04:05")
		}

		rowStyle := lipgloss.NewStyle()
		if i == m.selectedRow {
			rowStyle = rowStyle.Background(lipgloss.Color("240"))
		}

		row := fmt.Sprintf("%-16s │ %-13s │ %s", truncateString(state.Version, 16), label, modified)
		rows = append(rows, rowStyle.Render(row))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderFooter renders the launch line and control instructions
func (m dashboardModel) renderFooter() string {
	launch := "Launch command: (none)"
	if m.launch != "" {
		width := m.windowWidth
		if width <= 0 {
			width = 120
		}
		launch = truncateString("Launch command: "+m.launch, width)
	}

	controls := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		Render("Controls: [Space] Pause/Resume | [↑↓] Navigate | [r] Refresh | [q] Quit")

	return lipgloss.JoinVertical(lipgloss.Left, "", launch, controls)
}

// tickMsg is sent every refresh interval
type tickMsg time.Time

// tickCmd creates a tick command
func (m dashboardModel) tickCmd() tea.Cmd {
	return tea.Tick(m.flags.RefreshRate, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// statesLoadedMsg is sent when the install root has been rescanned
type statesLoadedMsg struct {
	states []installState
	launch string
}

// upstreamLoadedMsg is sent when the registry reports the latest version
type upstreamLoadedMsg struct {
	version string
}

// errMsg is sent when an error occurs
type errMsg struct {
	err error
}

// loadStatesCmd rescans the install root and cached launch descriptor
func (m dashboardModel) loadStatesCmd() tea.Cmd {
	return func() tea.Msg {
		root := m.container.Config.Install.ContainerDir

		states, err := scanInstallRoot(root)
		if err != nil {
			return errMsg{err: fmt.Errorf("scanning install root: %w", err)}
		}

		launch := ""
		if descriptor, ok := m.container.Adapter.CachedServerBinary(context.Background(), root); ok {
			launch = descriptor.String()
		}

		return statesLoadedMsg{states: states, launch: launch}
	}
}

// loadUpstreamCmd asks the registry for the latest published version. A
// registry failure only degrades the header; the dashboard keeps working from
// local state.
func (m dashboardModel) loadUpstreamCmd() tea.Cmd {
	return func() tea.Msg {
		version, err := m.container.Adapter.FetchLatestVersion(context.Background())
		if err != nil {
			return upstreamLoadedMsg{version: "unavailable"}
		}
		return upstreamLoadedMsg{version: version.Value()}
	}
}

// truncateString truncates a string to the specified length
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

package styles

import "github.com/charmbracelet/lipgloss"

// Color palette - dark theme
var (
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#3B82F6") // Blue
	Accent    = lipgloss.Color("#F59E0B") // Amber

	Success = lipgloss.Color("#10B981") // Green
	Error   = lipgloss.Color("#EF4444") // Red

	TextPrimary   = lipgloss.Color("#F9FAFB")
	TextSecondary = lipgloss.Color("#9CA3AF")
	TextMuted     = lipgloss.Color("#6B7280")

	BgSecondary = lipgloss.Color("#1F2937")

	BorderNormal = lipgloss.Color("#374151")
	BorderActive = lipgloss.Color("#7C3AED")
)

// Panel styles
var (
	PanelActive = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderActive).
			Padding(0, 1)

	PanelInactive = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderNormal).
			Padding(0, 1)

	PanelHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextPrimary)
)

// Header / footer
var (
	HeaderTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary)

	HeaderStats = lipgloss.NewStyle().
			Foreground(TextSecondary)

	FooterHelp = lipgloss.NewStyle().
			Foreground(TextMuted)

	FooterKey = lipgloss.NewStyle().
			Foreground(TextSecondary).
			Bold(true)
)

// Tree pane
var (
	TreeFolder = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	TreeFile = lipgloss.NewStyle().
			Foreground(TextPrimary)

	TreeIcon = lipgloss.NewStyle().
			Foreground(TextMuted)

	TreeSelected = lipgloss.NewStyle().
			Foreground(TextPrimary).
			Background(BgSecondary).
			Bold(true)
)

// Results pane
var (
	ResultName = lipgloss.NewStyle().
			Foreground(TextPrimary).
			Bold(true)

	ResultScore = lipgloss.NewStyle().
			Foreground(Accent)

	ResultSnippet = lipgloss.NewStyle().
			Foreground(TextSecondary)

	ResultPath = lipgloss.NewStyle().
			Foreground(TextMuted)

	ResultSelected = lipgloss.NewStyle().
			Background(BgSecondary)
)

// Preview pane
var (
	PreviewTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextPrimary)

	PreviewMeta = lipgloss.NewStyle().
			Foreground(TextMuted)

	PreviewBody = lipgloss.NewStyle().
			Foreground(TextPrimary)
)

// Status styles
var (
	Muted = lipgloss.NewStyle().
		Foreground(TextMuted)

	ErrorText = lipgloss.NewStyle().
			Foreground(Error)

	ToastSuccess = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(Success).
			Padding(0, 1)

	ToastError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(Error).
			Padding(0, 1)

	WelcomeTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(Primary)
)

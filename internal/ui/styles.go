package ui

import "github.com/charmbracelet/lipgloss"

// Clinical monitor palette
var (
	ColorTrace     = lipgloss.Color("#00E5FF")
	ColorCyan      = lipgloss.Color("#00B8CC")
	ColorMidCyan   = lipgloss.Color("#00788A")
	ColorDimCyan   = lipgloss.Color("#00404A")
	ColorTheta     = lipgloss.Color("#BD93F9")
	ColorAlpha     = lipgloss.Color("#50FA7B")
	ColorBeta      = lipgloss.Color("#FFB86C")
	ColorGamma     = lipgloss.Color("#FF79C6")
	ColorNormal    = lipgloss.Color("#50FA7B")
	ColorBorderlin = lipgloss.Color("#F1FA8C")
	ColorImpaired  = lipgloss.Color("#FF5555")
	ColorWarning   = lipgloss.Color("#FFAA00")
	ColorBorder    = lipgloss.Color("#00788A")
	ColorBorderHot = lipgloss.Color("#00E5FF")
)

// Pre-built styles
var (
	StyleMenuBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#002229")).
			Foreground(ColorTrace).
			Bold(true).
			Padding(0, 1)

	StyleMenuKey = lipgloss.NewStyle().
			Foreground(ColorTrace).
			Bold(true)

	StyleMenuLabel = lipgloss.NewStyle().
			Foreground(ColorCyan)

	StyleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#002229")).
			Foreground(ColorCyan).
			Padding(0, 1)

	StyleStatusLive = lipgloss.NewStyle().
			Foreground(ColorTrace).
			Bold(true)

	StyleStatusPaused = lipgloss.NewStyle().
				Foreground(ColorWarning).
				Bold(true)

	StyleRecording = lipgloss.NewStyle().
			Foreground(ColorImpaired).
			Bold(true)

	StylePanelBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorder)

	StylePanelActive = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderHot)

	StylePanelTitle = lipgloss.NewStyle().
			Foreground(ColorTrace).
			Bold(true).
			Padding(0, 1)

	StyleTrace = lipgloss.NewStyle().
			Foreground(ColorTrace)

	StyleTraceDim = lipgloss.NewStyle().
			Foreground(ColorMidCyan)

	StyleAxis = lipgloss.NewStyle().
			Foreground(ColorDimCyan)

	StyleLevelNormal = lipgloss.NewStyle().
				Foreground(ColorNormal).
				Bold(true)

	StyleLevelBorderline = lipgloss.NewStyle().
				Foreground(ColorBorderlin).
				Bold(true)

	StyleLevelImpaired = lipgloss.NewStyle().
				Foreground(ColorImpaired).
				Bold(true)

	StyleCommand = lipgloss.NewStyle().
			Foreground(ColorAlpha).
			Bold(true)

	StyleCommandBlink = lipgloss.NewStyle().
				Foreground(ColorWarning).
				Bold(true)

	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorDimCyan)

	StyleBandTheta = lipgloss.NewStyle().Foreground(ColorTheta)
	StyleBandAlpha = lipgloss.NewStyle().Foreground(ColorAlpha)
	StyleBandBeta  = lipgloss.NewStyle().Foreground(ColorBeta)
	StyleBandGamma = lipgloss.NewStyle().Foreground(ColorGamma)
)

package tui

const (
	// ChartWidthPadding is the horizontal padding subtracted from terminal width for chart rendering.
	ChartWidthPadding = 6
)

package charts

const (
	// ChartHeightRatio determines chart height as width/ChartHeightRatio.
	ChartHeightRatio = 8

	// MinChartHeight is the floor for line chart panel height.
	MinChartHeight = 8

	// DefaultImageWidth and DefaultImageHeight size rendered PNG/SVG charts.
	DefaultImageWidth  = 1024
	DefaultImageHeight = 600
)

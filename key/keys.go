// Package key defines the configuration identifiers shared by the config registry and its consumers.
package key

// Highlighting - these keys drive the level color policy and the painter.
const (
	HighlightEnableColors = "highlight.enable_colors"
	HighlightColors       = "highlight.colors"
	HighlightPriority     = "highlight.priority"
)

// Color Generation - these keys shape procedurally generated level colors.
const (
	GenerationLightnessStep = "highlight.generation.lightness_step"
	GenerationMinLightness  = "highlight.generation.min_lightness"
	GenerationMaxLightness  = "highlight.generation.max_lightness"
	GenerationSaturation    = "highlight.generation.saturation"
)

// Region Detection - these keys configure the delimiter scanner used by the previewer.
const (
	RegionOpen  = "region.open"
	RegionClose = "region.close"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern non-interactive output.
const (
	CliColored   = "cli.colored"
	IconsVariant = "icons.variant"
)

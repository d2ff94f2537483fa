// Package constant defines immutable application-level identifiers.
package constant

const (
	// Nestshade is the canonical application identifier used for filesystem paths, env vars and CLI branding.
	Nestshade = "nestshade"

	// Version is the current application semantic version string.
	Version = "0.3.0"

	// Namespace tags every line mark placed by the painter.
	Namespace = "nestshade"

	// StylePrefix prefixes the per-level style names, e.g. NestshadeLevel3.
	StylePrefix = "NestshadeLevel"
)

// Build metadata, set through -ldflags.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)

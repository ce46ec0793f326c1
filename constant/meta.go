// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Zaisan is the canonical application identifier used for filesystem paths and CLI branding.
	Zaisan = "zaisan"

	// Version is the current application semantic version string.
	Version = "0.1.0"

	// UserAgent is the browser identity presented to the Zaimanhua API.
	// The service rejects clients that do not look like a mobile browser.
	UserAgent = "Mozilla/5.0 (Linux; Android 10) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Mobile Safari/537.36"
)

// Build metadata, stamped via ldflags by the release workflow.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)

// AsciiArtLogo is the stylized banner displayed on the root help screen.
const AsciiArtLogo = `
     _______  _______ ___ _______ _______ ____
    |__   / ||  ____ |   |  _____|  ____ |    \
      /  /__||  __  ||   |_____  |  __  || |\  \
     /  /_   | |  | || |  _____| | |  | || | \  |
    |______| |_|  |_||_| |_______|_|  |_||_|  \_|
`

package tui

// Color constants for the therapy-log TUI theme
const (
	// Base Colors
	ColorAppBackground  = ""        // Use terminal default background
	ColorCardBackground = "#10231F" // Dark green
	ColorBorder         = "#3A5550" // Grey-green

	// Text Colors
	ColorPrimaryText   = "#E8F2EE" // Primary text (field labels, titles)
	ColorSecondaryText = "#AFC7BF" // Secondary text - subtle green-tinted grey
	ColorDisabledText  = "#6D837C" // Disabled/muted text
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors (Teal theme)
	ColorAccentMain   = "#14B8A6" // Accent elements, active borders
	ColorAccentBright = "#5EEAD4" // Highlights, selected rows

	// State Colors
	ColorError   = "#EF4444" // Errors
	ColorSuccess = "#22C55E" // Attended sessions, open cases
	ColorWarning = "#F59E0B" // Missed sessions
)

package theme

// NewLedger creates the default theme: slate surfaces with amber accents.
func NewLedger() *Theme {
	return &Theme{
		Name:   "ledger",
		IsDark: true,

		Primary:   "#f59e0b", // amber 500
		Secondary: "#fbbf24", // amber 400
		Accent:    "#d97706", // amber 600

		BgBase:    "#0f172a", // slate 900
		BgSurface: "#1e293b", // slate 800
		BgRaised:  "#334155", // slate 700

		FgMuted:  "#64748b", // slate 500
		FgSubtle: "#94a3b8", // slate 400
		FgBase:   "#cbd5e1", // slate 300
		FgBright: "#f1f5f9", // slate 100

		BorderDefault: "#475569", // slate 600
		BorderFocused: "#f59e0b",

		Success: "#34d399",
		Warning: "#fbbf24",
		Error:   "#f87171",
	}
}

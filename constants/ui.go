package constants

// Layout Constants
const (
	// MinScreenWidth is the smallest terminal width the layout is designed for
	MinScreenWidth = 40

	// MinScreenHeight is the smallest terminal height the layout is designed for
	MinScreenHeight = 20

	// NumberCellWidth is the width of one number hunt cell including gap
	NumberCellWidth = 5

	// NumberCellHeight is the height of one number hunt cell including gap
	NumberCellHeight = 2

	// CardWidth is the width of one memory card including gap
	CardWidth = 7

	// CardHeight is the height of one memory card including gap
	CardHeight = 3

	// OptionWidth is the width of one color option button
	OptionWidth = 16

	// MenuItemWidth is the width of one menu button
	MenuItemWidth = 28
)

// Palette hex values used by the renderer
const (
	BackgroundHex = "#0f172a" // slate-900
	PanelHex      = "#1e293b" // slate-800
	MutedHex      = "#334155" // slate-700
	TextHex       = "#cbd5e1" // slate-300
	AccentHex     = "#22d3ee" // cyan-400
	MemoryHex     = "#c084fc" // purple-400
	TileHex       = "#4f46e5" // indigo-600
	MatchedHex    = "#115e59" // teal-800
	MatchedIcon   = "#2dd4bf" // teal-400
	WarningHex    = "#ef4444" // red-500
	TrophyHex     = "#facc15" // yellow-400
)

// FoundDimFactor is the blend factor towards the background for found tiles
const FoundDimFactor = 0.6

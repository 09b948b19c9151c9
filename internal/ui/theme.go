package ui

import "strings"

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Title, Muted, Accent, Success, Error, Pending string
	Positive, Negative, Neutral, Unknown          string
	CornerTL, CornerTR, CornerBL, CornerBR        string
	H, V                                          string
	SymPending, SymBullet                         string
}

var current = classic()

func classic() Theme {
	return Theme{
		Title: bold, Muted: fgGray, Accent: fgBlue,
		Success: fgGreen, Error: fgRed, Pending: fgYellow,
		Positive: fgGreen, Negative: fgRed, Neutral: fgCyan, Unknown: fgGray,
		CornerTL: "┌", CornerTR: "┐", CornerBL: "└", CornerBR: "┘",
		H: "─", V: "│",
		SymPending: "…", SymBullet: "•",
	}
}

func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		current = Theme{
			Title: "\033[95m", // bright magenta
			Muted: fgGray, Accent: "\033[96m",
			Success: "\033[92m", Error: "\033[91m", Pending: "\033[93m",
			Positive: "\033[92m", Negative: "\033[91m", Neutral: "\033[96m", Unknown: dim,
			CornerTL: "╭", CornerTR: "╮", CornerBL: "╰", CornerBR: "╯",
			H: "─", V: "│",
			SymPending: "◌", SymBullet: "◆",
		}
	case "mono":
		disableColor = true
		current = Theme{
			CornerTL: "+", CornerTR: "+", CornerBL: "+", CornerBR: "+",
			H: "-", V: "|",
			SymPending: "...", SymBullet: "-",
		}
	default:
		current = classic()
	}
}

// Current exposes what renderers need.
func Current() Theme { return current }

// SentimentColor picks the palette entry for a sentiment label.
func SentimentColor(sentiment string) string {
	t := current
	switch sentiment {
	case "positive":
		return t.Positive
	case "negative":
		return t.Negative
	case "neutral":
		return t.Neutral
	case "pending":
		return t.Pending
	default:
		return t.Unknown
	}
}

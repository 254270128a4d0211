package mapgen

import (
	"strings"

	"github.com/mitchelldurbincs/GeneralsMapGen/internal/game/core"
)

// ANSI color codes for terminal rendering
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorPurple = "\033[35m"
	ColorCyan   = "\033[36m"
	ColorWhite  = "\033[37m"
	ColorGray   = "\033[90m"
)

const (
	landSymbol     = "·"
	waterSymbol    = "~"
	mountainSymbol = "▲"
	lavaSymbol     = "≈"
	playerSymbols  = "ABCDEFGH"
)

var playerColors = []string{ColorRed, ColorBlue, ColorGreen, ColorYellow, ColorPurple, ColorCyan}

// Render draws the board with headquarters marked by player letter. With color
// disabled the output contains no escape codes.
func Render(b *core.Board, hqs []core.Coordinate, color bool) string {
	owner := make(map[int]int, len(hqs))
	for player, c := range hqs {
		if c.Valid() && b.InBounds(c.X, c.Y) {
			owner[b.Idx(c.X, c.Y)] = player
		}
	}

	var sb strings.Builder
	sb.Grow((b.W*12+4)*(b.H+3) + 64)

	sb.WriteString("   ")
	for x := 0; x < b.W; x++ {
		sb.WriteString(core.IntToStringFixedWidth(x%100, 2))
	}
	sb.WriteString("\n")

	for y := 0; y < b.H; y++ {
		sb.WriteString(core.IntToStringFixedWidth(y%100, 2))
		sb.WriteString(" ")
		for x := 0; x < b.W; x++ {
			idx := b.Idx(x, y)
			if player, ok := owner[idx]; ok {
				writeColored(&sb, color, playerColors[player%len(playerColors)], " "+string(playerSymbols[player%len(playerSymbols)]))
				continue
			}
			switch b.T[idx].Type {
			case core.TileWater:
				writeColored(&sb, color, ColorBlue, " "+waterSymbol)
			case core.TileMountain:
				writeColored(&sb, color, ColorGray, " "+mountainSymbol)
			case core.TileLava:
				writeColored(&sb, color, ColorRed, " "+lavaSymbol)
			default:
				writeColored(&sb, color, ColorGreen, " "+landSymbol)
			}
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(landSymbol + "=land " + waterSymbol + "=water " + mountainSymbol + "=mountain " +
		lavaSymbol + "=lava A-H=headquarters\n")
	return sb.String()
}

func writeColored(sb *strings.Builder, color bool, code, s string) {
	if color {
		sb.WriteString(code)
		sb.WriteString(s)
		sb.WriteString(ColorReset)
		return
	}
	sb.WriteString(s)
}

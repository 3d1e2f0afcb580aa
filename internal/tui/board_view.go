package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mway1/chesscore"
)

var (
	lightSquare = lipgloss.NewStyle().Background(lipgloss.Color("180")).Foreground(lipgloss.Color("0"))
	darkSquare  = lipgloss.NewStyle().Background(lipgloss.Color("137")).Foreground(lipgloss.Color("0"))
	lastSquare  = lipgloss.NewStyle().Background(lipgloss.Color("108")).Foreground(lipgloss.Color("0"))
	labelStyle  = lipgloss.NewStyle().Faint(true)
)

// RenderBoard renders b far rank first with file and rank labels.
// Squares touched by last are highlighted.
func RenderBoard(b chess.Board, last *chess.Move) string {
	var sb strings.Builder
	for r := chess.Rank8; r >= chess.Rank1; r-- {
		sb.WriteString(labelStyle.Render(r.String()) + " ")
		for f := chess.FileA; f <= chess.FileH; f++ {
			sq := chess.NewSquare(f, r)
			sb.WriteString(cell(b.Piece(sq), sq, last))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("  ")
	for f := chess.FileA; f <= chess.FileH; f++ {
		sb.WriteString(labelStyle.Render(" " + f.String() + " "))
	}
	sb.WriteString("\n")
	return sb.String()
}

// cell returns a fixed-width 3-char cell.
func cell(p chess.Piece, sq chess.Square, last *chess.Move) string {
	style := lightSquare
	if (int(sq.File())+int(sq.Rank()))%2 == 0 {
		style = darkSquare
	}
	if last != nil && (sq == last.S1() || sq == last.S2()) {
		style = lastSquare
	}
	return style.Render(" " + p.String() + " ")
}

package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mway1/chesscore"
)

const maxLogLines = 8

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
)

// Model steps through a game between two random players.
type Model struct {
	seed  uint64
	game  *chess.Game
	white chess.Player
	black chess.Player
	last  *chess.Move

	logLines []string
}

// NewModel returns a model at the starting position.
func NewModel(seed uint64) Model {
	m := Model{seed: seed}
	m.reset()
	return m
}

func (m *Model) reset() {
	m.game = chess.NewGame()
	m.white = chess.NewRandomPlayer(m.seed)
	m.black = chess.NewRandomPlayer(m.seed + 1)
	m.last = nil
	m.logLines = []string{fmt.Sprintf("new game (seed %d)", m.seed)}
}

func (m *Model) appendLog(s string) {
	m.logLines = append(m.logLines, s)
	if len(m.logLines) > maxLogLines {
		m.logLines = m.logLines[len(m.logLines)-maxLogLines:]
	}
}

// step commits one move chosen by the player to move.
func (m *Model) step() {
	if m.game.Outcome() != chess.NoOutcome {
		return
	}
	pos := m.game.Position()
	turn, moveCount := pos.Turn(), pos.MoveCount()
	player := m.white
	if turn == chess.Black {
		player = m.black
	}
	mv := player.ChooseMove(pos, m.game.ValidMoves())
	if err := m.game.Move(mv); err != nil {
		m.appendLog("error: " + err.Error())
		return
	}
	m.last = &mv
	m.appendLog(fmt.Sprintf("%d. %s %s", moveCount, turn.Name(), mv))
	if m.game.Outcome() != chess.NoOutcome {
		m.appendLog(fmt.Sprintf("game over: %s by %s", m.game.Outcome(), m.game.Method()))
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "n", " ", "right":
			m.step()
		case "e":
			for m.game.Outcome() == chess.NoOutcome {
				m.step()
			}
		case "r":
			m.seed++
			m.reset()
		}
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("chesscore random game") + "\n\n")
	b.WriteString(RenderBoard(m.game.Position().Board(), m.last))
	b.WriteString("\n")

	pos := m.game.Position()
	status := fmt.Sprintf("%s to move, half move clock %d", pos.Turn().Name(), pos.HalfMoveClock())
	if pos.InCheck() {
		status += ", check"
	}
	if m.game.Outcome() != chess.NoOutcome {
		status = fmt.Sprintf("%s by %s", m.game.Outcome(), m.game.Method())
	}
	b.WriteString(statusStyle.Render(status) + "\n\n")

	for _, l := range m.logLines {
		b.WriteString(l + "\n")
	}
	b.WriteString("\nn/space: next  e: to end  r: new game  q: quit\n")
	return b.String()
}

// Package scoreboard renders bowling score sheets for the terminal.
package scoreboard

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/scorecounter/internal/bowling"
)

// Title is printed above the score sheet
const Title = "Bowling ScoreCounter"

const (
	frameCellWidth = 7  // " a | b "
	lastCellWidth  = 11 // " a | b | c "
	winnerText     = "!!!WINNER!!!"
)

// Game is the read-only view of an engine the scoreboard needs
type Game interface {
	Sessions() []*bowling.Session
	CurrentFrame() int
	GetCurrentPlayer() (bowling.Player, error)
	IsOver() bool
	Winner() bowling.Standing
}

// Width returns the rendered width of a score sheet for the given sessions
func Width(sessions []*bowling.Session) int {
	return nameWidth(sessions) + 4 + (frameCellWidth+1)*(bowling.NumFrames-1) + lastCellWidth + 1
}

// Render draws the score sheet: a title, a header row and two lines per
// player (shot marks and cumulative scores). The active frame of the current
// player is highlighted and the winner is framed once the game is over.
func Render(g Game) string {
	sessions := g.Sessions()
	width := Width(sessions)
	names := nameWidth(sessions)
	separator := BorderStyle.Render(strings.Repeat("-", width))

	var current string
	if p, err := g.GetCurrentPlayer(); err == nil {
		current = p.Name
	}
	var winner string
	if g.IsOver() {
		winner = g.Winner().Player.Name
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Width(width).Align(lipgloss.Center).Render(Title))
	b.WriteString("\n\n")
	b.WriteString(HeaderStyle.Render(header(names)))
	b.WriteString("\n")
	b.WriteString(separator)
	b.WriteString("\n")

	for _, s := range sessions {
		isWinner := s.Player().Name == winner
		if isWinner {
			b.WriteString(banner(width))
			b.WriteString("\n")
		}

		activeFrame := 0
		if s.Player().Name == current {
			activeFrame = g.CurrentFrame()
		}
		b.WriteString(marksRow(s, names, activeFrame))
		b.WriteString("\n")
		b.WriteString(scoreRow(s, names))
		b.WriteString("\n")

		if isWinner {
			b.WriteString(banner(width))
			b.WriteString("\n")
		}
		b.WriteString(separator)
		b.WriteString("\n")
	}
	return b.String()
}

// Standings lists players by score, one per line
func Standings(g interface{ Standings() []bowling.Standing }) string {
	var b strings.Builder
	for i, st := range g.Standings() {
		line := fmt.Sprintf("%d. %-*s %3d", i+1, 12, st.Player.Name, st.Score)
		b.WriteString(PlayerStyle(st.Player.Color).Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

func header(names int) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", names+4))
	for n := 1; n <= bowling.NumFrames; n++ {
		w := frameCellWidth
		if n == bowling.NumFrames {
			w = lastCellWidth
		}
		b.WriteString(center(strconv.Itoa(n), w))
		b.WriteString("|")
	}
	return b.String()
}

func marksRow(s *bowling.Session, names, activeFrame int) string {
	style := PlayerStyle(s.Player().Color)

	var b strings.Builder
	b.WriteString("| ")
	name := s.Player().Name
	b.WriteString(style.Render(strings.Repeat(" ", names-lipgloss.Width(name)) + name))
	b.WriteString(" |")

	for n, f := range s.Frames() {
		frame := n + 1
		cell := " " + strings.Join(padMarks(Marks(frame, f)), " | ") + " "
		cellStyle := style
		if frame == activeFrame {
			cellStyle = cellStyle.Inherit(ActiveCellStyle)
		}
		b.WriteString(cellStyle.Render(cell))
		b.WriteString("|")
	}
	return b.String()
}

func scoreRow(s *bowling.Session, names int) string {
	style := PlayerStyle(s.Player().Color)

	var b strings.Builder
	b.WriteString("|")
	b.WriteString(strings.Repeat(" ", names+1))
	b.WriteString(" |")

	for n := 1; n <= bowling.NumFrames; n++ {
		score := ""
		if n <= s.ScoredFrames() {
			score = strconv.Itoa(s.CumulativeScore(n))
		}
		if n == bowling.NumFrames {
			b.WriteString("    ")
			b.WriteString(style.Render(fmt.Sprintf("%-7s", score)))
		} else {
			b.WriteString("  ")
			b.WriteString(style.Render(fmt.Sprintf("%-5s", score)))
		}
		b.WriteString("|")
	}
	return b.String()
}

func banner(width int) string {
	return WinnerStyle.Width(width).Align(lipgloss.Center).Render(winnerText)
}

func padMarks(marks []string) []string {
	out := make([]string, len(marks))
	for i, m := range marks {
		if m == "" {
			m = " "
		}
		out[i] = m
	}
	return out
}

func nameWidth(sessions []*bowling.Session) int {
	w := 0
	for _, s := range sessions {
		w = max(w, lipgloss.Width(s.Player().Name))
	}
	return w
}

func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

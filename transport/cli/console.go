package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	colorGreen  = "2"
	colorRed    = "1"
	colorYellow = "3"
	colorBlue   = "4"
)

type readResult struct {
	line string
	err  error
}

// Console reads moves from a line based input and draws the game on an output.
type Console struct {
	output      *termenv.Output
	scanner     *bufio.Scanner
	clearScreen bool

	startOnce sync.Once
	lines     chan readResult
}

func NewConsole(input io.Reader, output *termenv.Output, clearScreen bool) *Console {
	return &Console{
		output:      output,
		scanner:     bufio.NewScanner(input),
		clearScreen: clearScreen,
		lines:       make(chan readResult),
	}
}

// ShowWelcome greets the player before the first round.
func (that *Console) ShowWelcome(match *entity.Match) {
	if that.clearScreen {
		that.output.ClearScreen()
	}

	title := that.output.String("Welcome to the TIC-TAC-TOE Game!").Foreground(that.output.Color(colorBlue)).Bold()
	that.printf("%s\n", title)
	that.printf("%s plays %s, %s plays %s. First to %d points wins the match.\n",
		match.Human.Name, match.Human.Mark, match.Computer.Name, match.Computer.Mark, match.PointsToWin)

	if match.Rounds > 0 {
		that.printf("Resuming after %d rounds. Score: %s %d - %d %s\n",
			match.Rounds, match.Human.Name, match.Human.Points, match.Computer.Points, match.Computer.Name)
	}
}

func (that *Console) ShowGoodbye() {
	message := that.output.String("Thanks for playing! See you next time!").Foreground(that.output.Color(colorBlue))
	that.printf("\n%s\n", message)
}

// ReadCell prompts for a cell and returns the raw answer.
func (that *Console) ReadCell(ctx context.Context, _ entity.Board, valid []entity.Cell, retry bool) (string, error) {
	if retry {
		that.printf("\n=> Please, choose one of the following options:\n%s\n", joinCells(valid))
	} else {
		that.printf("\n=> Where do you want to move?\n   (type row letter followed by the column number, like 'B2')\n")
	}

	line, err := that.readLine(ctx)
	if err != nil {
		return "", err
	}

	return line, nil
}

func (that *Console) ShowBoard(board entity.Board) {
	if that.clearScreen {
		that.output.ClearScreen()
	}

	that.printf("%s", RenderBoard(board))
}

func (that *Console) ShowRound(outcome entity.Outcome, match *entity.Match) {
	var banner termenv.Style

	switch outcome {
	case entity.OutcomeHumanWins:
		banner = that.output.String("*** YOU WON ***").Foreground(that.output.Color(colorGreen))
	case entity.OutcomeComputerWins:
		banner = that.output.String("*** YOU LOST ***").Foreground(that.output.Color(colorRed))
	default:
		banner = that.output.String("*** IT'S A TIE ***").Foreground(that.output.Color(colorYellow))
	}

	that.printf("\n%s\n", banner.Bold())
	that.printf("Score: %s %d - %d %s\n", match.Human.Name, match.Human.Points, match.Computer.Points, match.Computer.Name)
}

func (that *Console) ShowMatch(match *entity.Match) {
	winner := match.Winner()
	if winner == nil {
		return
	}

	message := that.output.String(fmt.Sprintf("%s wins the match after %d rounds!", winner.Name, match.Rounds))
	that.printf("\n%s\n", message.Foreground(that.output.Color(colorBlue)).Bold())
}

// RenderBoard draws the grid with rows A-C and columns 1-3.
func RenderBoard(board entity.Board) string {
	squares := board.Squares()

	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString("    | 1 | 2 | 3 |\n")
	sb.WriteString(" ---+---+---+---+\n")

	for row, label := range []string{"A", "B", "C"} {
		sb.WriteString("  " + label + " |")

		for col := range 3 {
			marker := squares[row*3+col]
			if marker.IsEmpty() {
				marker = " "
			}

			sb.WriteString(" " + marker.String() + " |")
		}

		sb.WriteString("\n ---+---+---+---+\n")
	}

	return sb.String()
}

func (that *Console) readLine(ctx context.Context) (string, error) {
	that.startOnce.Do(func() {
		go that.scan()
	})

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("input cancelled: %w", ctx.Err())
	case result, ok := <-that.lines:
		if !ok {
			return "", io.EOF
		}

		return result.line, result.err
	}
}

// scan pumps input lines so a pending read can be abandoned on cancellation.
func (that *Console) scan() {
	defer close(that.lines)

	for that.scanner.Scan() {
		that.lines <- readResult{line: that.scanner.Text()}
	}

	if err := that.scanner.Err(); err != nil {
		that.lines <- readResult{err: fmt.Errorf("failed to read input: %w", err)}
	}
}

func (that *Console) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(that.output, format, args...)
}

func joinCells(cells []entity.Cell) string {
	names := make([]string, len(cells))
	for i, cell := range cells {
		names[i] = cell.String()
	}

	return strings.Join(names, ", ")
}

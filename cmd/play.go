package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/they4kman/minesweepah/game"
)

var errQuit = errors.New("quit")

// play runs the game off commands read line by line from in, printing the
// board after each one, until the game ends, the input runs out, or "q".
func play(g *game.Game, in io.Reader, out io.Writer) error {
	printBoard(g, out)

	scanner := bufio.NewScanner(in)
	for g.State() == game.Ongoing && scanner.Scan() {
		err := runCommand(g, scanner.Text())
		if err == errQuit {
			return nil
		}
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		printBoard(g, out)
	}

	return errors.Wrap(scanner.Err(), "reading commands")
}

// watch prints the final board once a director has finished the game
func watch(g *game.Game, out io.Writer) error {
	<-g.Done()
	printBoard(g, out)
	return nil
}

func runCommand(g *game.Game, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	switch fields[0] {
	case "q", "quit":
		return errQuit
	case "s", "sweep", "f", "flag":
	default:
		return errors.Errorf("unknown command %q", fields[0])
	}

	if len(fields) != 3 {
		return errors.Errorf("usage: %s ROW COL", fields[0])
	}
	row, err := strconv.Atoi(fields[1])
	if err != nil {
		return errors.Wrap(err, "parsing row")
	}
	col, err := strconv.Atoi(fields[2])
	if err != nil {
		return errors.Wrap(err, "parsing col")
	}

	if fields[0][0] == 's' {
		g.Sweep(row, col)
	} else {
		g.Flag(row, col)
	}
	return nil
}

func printBoard(g *game.Game, out io.Writer) {
	var status string
	switch g.State() {
	case game.Won:
		status = "You WIN!"
	case game.Lost:
		status = "You Lose."
	default:
		status = "Minesweepah"
	}

	elapsed := g.ElapsedSeconds()
	fmt.Fprintf(out, "%s  %03d  %d:%02d\n", status, g.NumMines()-g.NumFlags(), elapsed/60, elapsed%60)
	fmt.Fprint(out, g.Render())
}

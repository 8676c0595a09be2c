package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/arcanaland/gofish/internal/card"
	"github.com/arcanaland/gofish/internal/game"
)

// Prompt is shown before each human turn
const Prompt = "Enter rank (A, 2-9, 10, 11 for J, 12 for Q, 13 for K): "

const defaultWidth = 80

// Console reads rank tokens from a reader and renders game events to a writer.
// It implements game.Input and game.Presenter.
type Console struct {
	in    *bufio.Reader
	out   io.Writer
	width int

	red     *color.Color
	black   *color.Color
	heading *color.Color
	good    *color.Color
	bad     *color.Color
	muted   *color.Color
}

// New creates a console. Colors are only emitted when useColor is true.
func New(r io.Reader, w io.Writer, useColor bool) *Console {
	c := &Console{
		in:      bufio.NewReader(r),
		out:     w,
		width:   terminalWidth(w),
		red:     color.New(color.FgHiRed, color.Bold),
		black:   color.New(color.FgHiWhite, color.Bold),
		heading: color.New(color.FgCyan, color.Bold),
		good:    color.New(color.FgGreen),
		bad:     color.New(color.FgYellow),
		muted:   color.New(color.FgHiBlack),
	}
	for _, col := range []*color.Color{c.red, c.black, c.heading, c.good, c.bad, c.muted} {
		if useColor {
			col.EnableColor()
		} else {
			col.DisableColor()
		}
	}
	return c
}

// IsTerminal reports whether w is an interactive terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// terminalWidth returns the width of w if it is a terminal
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return defaultWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}

// ReadToken prompts for and reads one line. End of input with nothing
// typed returns io.EOF.
func (c *Console) ReadToken() (string, error) {
	fmt.Fprint(c.out, Prompt)
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Notify renders a single game event
func (c *Console) Notify(e game.Event) {
	human := e.Player == game.Human
	switch e.Kind {
	case game.EventTurnStarted:
		if human {
			fmt.Fprintln(c.out)
			c.heading.Fprintf(c.out, "Your turn")
			c.muted.Fprintf(c.out, "  (deck: %d, you %d - cpu %d)\n", e.DeckLeft, e.Score.Human, e.Score.Computer)
			fmt.Fprintln(c.out, "Your hand:")
			c.printCards(e.Cards)
		} else {
			fmt.Fprintln(c.out)
			c.heading.Fprintln(c.out, "CPU turn")
		}
	case game.EventInvalidInput:
		c.bad.Fprintln(c.out, "Invalid input. Please try again.")
	case game.EventAsked:
		if !human {
			fmt.Fprintf(c.out, "CPU asks for %s.\n", e.Rank.Plural())
		}
	case game.EventCaptured:
		if human {
			c.good.Fprintf(c.out, "Cards found! You take %d:\n", len(e.Cards))
			c.printCards(e.Cards)
		} else {
			c.bad.Fprintf(c.out, "CPU took your cards: %s\n", c.cardList(e.Cards))
		}
	case game.EventGoFish:
		if human {
			fmt.Fprintln(c.out, "Go fish!")
		} else {
			fmt.Fprintln(c.out, "CPU went fish.")
		}
	case game.EventDrew:
		if human {
			fmt.Fprintf(c.out, "You drew %s.\n", c.cardString(e.Card))
		}
	case game.EventDeckEmpty:
		c.muted.Fprintln(c.out, "No more cards in deck.")
	case game.EventSetCompleted:
		if human {
			c.good.Fprintf(c.out, "Set has been found: four %s!\n", e.Rank.Plural())
		} else {
			c.bad.Fprintf(c.out, "CPU found a set: four %s.\n", e.Rank.Plural())
		}
	case game.EventRankSettled:
		fmt.Fprintf(c.out, "%s awarded to %s by majority.\n", e.Rank.Plural(), playerLabel(e.Player))
	}
}

// PrintResult shows final scores and the winner
func (c *Console) PrintResult(res game.Result) {
	fmt.Fprintln(c.out)
	if res.Truncated {
		c.muted.Fprintf(c.out, "Round limit reached after %d rounds; remaining ranks settled by majority.\n", res.Rounds)
	}
	fmt.Fprintf(c.out, "human score %d, cpu score %d\n", res.Human, res.Computer)
	if res.Winner == game.Human {
		c.good.Fprintln(c.out, "The winner is: Human!")
	} else {
		c.bad.Fprintln(c.out, "The winner is: CPU!")
	}
}

func playerLabel(p game.Player) string {
	if p == game.Human {
		return "you"
	}
	return "CPU"
}

func (c *Console) cardString(cd card.Card) string {
	if cd.Red() {
		return c.red.Sprint(cd.String())
	}
	return c.black.Sprint(cd.String())
}

func (c *Console) cardList(cards []card.Card) string {
	parts := make([]string, 0, len(cards))
	for _, cd := range cards {
		parts = append(parts, c.cardString(cd))
	}
	return strings.Join(parts, " ")
}

// printCards prints cards wrapped to the terminal width
func (c *Console) printCards(cards []card.Card) {
	if len(cards) == 0 {
		c.muted.Fprintln(c.out, "  (empty)")
		return
	}
	tokens := make([]string, 0, len(cards))
	for _, cd := range cards {
		tokens = append(tokens, cd.String())
	}

	// Wrap on the plain labels, then colorize each card
	i := 0
	for _, line := range wrapTokens(tokens, c.width-2) {
		fmt.Fprint(c.out, "  ")
		for j := range line {
			if j > 0 {
				fmt.Fprint(c.out, " ")
			}
			fmt.Fprint(c.out, c.cardString(cards[i]))
			i++
		}
		fmt.Fprintln(c.out)
	}
}

// wrapTokens groups tokens into lines no wider than width
func wrapTokens(tokens []string, width int) [][]string {
	// Ensure width is reasonable
	if width < 10 {
		width = 40
	}

	var result [][]string
	var current []string
	currentLen := 0

	for _, tok := range tokens {
		n := utf8.RuneCountInString(tok)
		if len(current) == 0 {
			current = []string{tok}
			currentLen = n
		} else if currentLen+1+n <= width {
			current = append(current, tok)
			currentLen += 1 + n
		} else {
			result = append(result, current)
			current = []string{tok}
			currentLen = n
		}
	}

	if len(current) > 0 {
		result = append(result, current)
	}
	return result
}

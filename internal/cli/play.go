// Package cli runs a Teamdle game on a terminal.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/EmersonKing1/Teamdle-Project/internal/catalog"
	"github.com/EmersonKing1/Teamdle-Project/internal/daily"
	"github.com/EmersonKing1/Teamdle-Project/internal/domain/feedback"
	"github.com/EmersonKing1/Teamdle-Project/internal/domain/session"
	"github.com/EmersonKing1/Teamdle-Project/internal/domain/teams"
	"github.com/EmersonKing1/Teamdle-Project/internal/timeutil"
)

const searchPrefix = "?"

// Options configures a terminal game.
type Options struct {
	Catalog *catalog.Catalog
	Date    timeutil.Date
	Limit   int
	Color   bool
}

var ansi = map[string]string{
	"GREEN":  "\x1b[30;42m",
	"YELLOW": "\x1b[30;43m",
	"GRAY":   "\x1b[37;100m",
}

const ansiReset = "\x1b[0m"

// Play reads guesses from in, one per line, and writes feedback to out until the
// game ends or in is exhausted. Lines starting with "?" list matching team names.
func Play(ctx context.Context, in io.Reader, out io.Writer, opts Options) (session.Status, error) {
	target, err := daily.SelectTarget(opts.Catalog.Teams(), opts.Date)
	if err != nil {
		return "", err
	}
	sess, err := session.New(target, opts.Limit, opts.Catalog)
	if err != nil {
		return "", err
	}

	fmt.Fprintf(out, "Teamdle %s: guess the team in %d tries. Type %sname to search.\n", opts.Date, opts.Limit, searchPrefix)

	scanner := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return sess.Status(), err
		}
		fmt.Fprintf(out, "[%d left] > ", sess.Remaining())
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return sess.Status(), scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, searchPrefix):
			printSuggestions(out, opts.Catalog, strings.TrimPrefix(line, searchPrefix))
			continue
		}

		entry, err := sess.SubmitGuess(line)
		if errors.Is(err, session.ErrUnknownTeam) {
			fmt.Fprintf(out, "Unknown team %q.\n", line)
			printSuggestions(out, opts.Catalog, line)
			continue
		}
		if err != nil {
			return sess.Status(), err
		}
		fmt.Fprintln(out, FormatEntry(entry, opts.Color))

		switch sess.Status() {
		case session.StatusWon:
			n := len(sess.History())
			fmt.Fprintf(out, "Congratulations! You guessed the team in %d %s.\n", n, plural(n, "guess", "guesses"))
			return session.StatusWon, nil
		case session.StatusLost:
			fmt.Fprintf(out, "Out of guesses. The team was %s.\n", target.Name)
			return session.StatusLost, nil
		}
	}
}

// FormatEntry renders one guess as a row of labelled cells.
func FormatEntry(entry session.Entry, color bool) string {
	values := map[feedback.Dimension]string{
		feedback.League:        entry.Team.League,
		feedback.Conference:    entry.Team.Conference,
		feedback.Division:      entry.Team.Division,
		feedback.Championships: strconv.Itoa(entry.Team.Championships),
		feedback.Identity:      entry.Team.Name,
	}
	cells := make([]string, 0, len(feedback.Dimensions))
	for _, d := range feedback.Dimensions {
		cells = append(cells, cell(d.String()+": "+values[d], entry.Feedback.Tag(d), color))
	}
	return strings.Join(cells, " ")
}

func cell(text string, tag feedback.Tag, color bool) string {
	if color {
		return ansi[tag.Color()] + " " + text + " " + ansiReset
	}
	return "[" + text + " " + tag.Color() + "]"
}

func printSuggestions(out io.Writer, c *catalog.Catalog, query string) {
	matches := c.Search(query, catalog.DefaultSearchLimit)
	if len(matches) == 0 {
		fmt.Fprintln(out, "No matching teams.")
		return
	}
	names := make([]string, len(matches))
	for i, t := range matches {
		names[i] = t.Name
	}
	fmt.Fprintln(out, "Did you mean: "+strings.Join(names, ", "))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// Describe returns a one-line summary of a team, used by the target command.
func Describe(t teams.Team) string {
	return fmt.Sprintf("%s (%s, %s, %s, %d championships)", t.Name, t.League, t.Conference, t.Division, t.Championships)
}

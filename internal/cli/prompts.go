package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"montyhall/internal/door"
	"montyhall/internal/game"
	"montyhall/internal/statistics"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// C holds pre-configured color objects for printing to the console.
var C = struct {
	Yes, No, Info, Warn, Header, Prompt, Debug *color.Color
}{
	Yes:    color.New(color.FgGreen),
	No:     color.New(color.FgRed),
	Info:   color.New(color.FgCyan),
	Warn:   color.New(color.FgHiYellow),
	Header: color.New(color.FgWhite, color.Bold),
	Prompt: color.New(color.FgHiWhite),
	Debug:  color.New(color.FgMagenta),
}

// batchReport pairs a result with the summary computed for it.
type batchReport struct {
	result     game.Result
	summary    statistics.Summary
	prizeP     float64
	initialP   float64
	spread     float64
	hasSpread  bool
	confidence float64
}

// renderResults displays the finished batches in a formatted table.
func (c *CLI) renderResults(reports []batchReport) {
	if len(reports) == 0 {
		return
	}
	t := table.NewWriter()
	t.SetOutputMirror(c.out)
	t.SetTitle("Monty Hall Results")
	t.AppendHeader(table.Row{
		"Strategy", "Trials", "Wins", "Win fraction",
		fmt.Sprintf("%.0f%% interval", reports[0].confidence*100),
		"Theory", "Prize draws p", "Pick draws p", "Worker spread",
	})
	for _, r := range reports {
		theory := C.Yes.Sprintf("%.4f", r.summary.Theoretical)
		if !r.summary.Covers() {
			theory = C.No.Sprintf("%.4f", r.summary.Theoretical)
		}
		spread := "-"
		if r.hasSpread {
			spread = fmt.Sprintf("%.4f", r.spread)
		}
		t.AppendRow(table.Row{
			r.result.Strategy.String(),
			r.result.Trials,
			r.result.Wins,
			fmt.Sprintf("%.4f", r.summary.Fraction),
			fmt.Sprintf("[%.4f, %.4f]", r.summary.Lower, r.summary.Upper),
			theory,
			fmt.Sprintf("%.3f", r.prizeP),
			fmt.Sprintf("%.3f", r.initialP),
			spread,
		})
	}
	t.SetStyle(table.StyleRounded)
	t.Style().Title.Align = text.AlignCenter
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})
	t.Render()
}

// --- Prompting and Usage ---

func (c *CLI) printUsage() {
	C.Header.Fprintln(c.out, "\n--- Monty Hall Toolbox ---")
	fmt.Fprintln(c.out, "Usage:")
	fmt.Fprintln(c.out, "  go run ./cmd/montyhall [run]")
	fmt.Fprintln(c.out, "    Simulate always switching, then always staying.")
	fmt.Fprintln(c.out, "  go run ./cmd/montyhall play")
	fmt.Fprintln(c.out, "    Play rounds yourself against the host.")
	fmt.Fprintln(c.out, "\nFlags:")
	fmt.Fprintln(c.out, "  -N 100000          Number of trials per strategy.")
	fmt.Fprintln(c.out, "  -v                 Narrate every trial.")
	fmt.Fprintln(c.out, "  -workers 4         Spread trials over several workers.")
	fmt.Fprintln(c.out, "  -seed 42           Reproduce a previous run.")
	fmt.Fprintln(c.out, "  -loglevel debug    Enable detailed tracing.")
}

func (c *CLI) promptForString(prompt string) string {
	for {
		C.Prompt.Fprint(c.out, prompt)
		input, err := c.line.Prompt("")
		if err != nil {
			C.Info.Fprintln(c.out, "\nGoodbye!")
			os.Exit(0)
		}
		trimmed := strings.TrimSpace(input)
		if trimmed != "" {
			c.line.AppendHistory(trimmed)
			return trimmed
		}
	}
}

// PromptDoor asks the player for one of options by number.
func (c *CLI) PromptDoor(prompt string, options []door.Door) door.Door {
	for {
		C.Header.Fprintln(c.out, "\n"+prompt)
		for _, d := range options {
			fmt.Fprintf(c.out, " [%d] %s\n", int(d), d)
		}
		input := c.promptForString("Enter door number: ")
		if num, err := strconv.Atoi(input); err == nil {
			for _, d := range options {
				if int(d) == num {
					return d
				}
			}
		}
		C.Warn.Fprintln(c.out, "Invalid selection.")
	}
}

// Confirm asks a yes/no question. An empty answer counts as yes.
func (c *CLI) Confirm(prompt string) bool {
	for {
		C.Prompt.Fprint(c.out, prompt+" [Y/n]: ")
		input, err := c.line.Prompt("")
		if err != nil {
			return false
		}
		switch strings.ToLower(strings.TrimSpace(input)) {
		case "", "y", "yes":
			return true
		case "n", "no":
			return false
		}
		C.Warn.Fprintln(c.out, "Please answer y or n.")
	}
}

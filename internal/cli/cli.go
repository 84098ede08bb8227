// Package cli is the terminal front end: calc, history and trend subcommands.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/yusufkecer/bmi-tracker/internal/domain"
	"github.com/yusufkecer/bmi-tracker/internal/render"
)

type Service interface {
	Calculate(username, weightText, heightText string) (*domain.BMIRecord, error)
	History(username string) ([]domain.BMIRecord, error)
	Trend(username string) ([]domain.TrendPoint, error)
}

// Opener connects the service. It is called only after the subcommand and
// its flags are valid, so usage errors never touch the database.
type Opener func() (Service, error)

const usage = `usage:
  bmi calc    -user NAME -weight KG -height CM
  bmi history -user NAME
  bmi trend   -user NAME [-out FILE.png]
`

var actions = map[string]string{
	"calc":    "calculate BMI",
	"history": "view history",
	"trend":   "plot trend",
}

// Run executes one subcommand and returns the process exit status.
func Run(args []string, open Opener, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	var err error
	switch args[0] {
	case "calc":
		err = runCalc(args[1:], open, stdout, stderr)
	case "history":
		err = runHistory(args[1:], open, stdout, stderr)
	case "trend":
		err = runTrend(args[1:], open, stdout, stderr)
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command %q\n%s", args[0], usage)
		return 2
	}

	if err == nil {
		return 0
	}
	if errors.Is(err, flag.ErrHelp) {
		return 2
	}
	fmt.Fprintf(stderr, "%s: %s\n", label(err), message(err, actions[args[0]]))
	return 1
}

func runCalc(args []string, open Opener, stdout, stderr io.Writer) error {
	fs := newFlagSet("calc", stderr)
	user := fs.String("user", "", "username")
	weight := fs.String("weight", "", "weight in kg")
	height := fs.String("height", "", "height in cm")
	if err := fs.Parse(args); err != nil {
		return err
	}

	svc, err := open()
	if err != nil {
		return err
	}
	rec, err := svc.Calculate(*user, *weight, *height)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, render.Result(rec))
	fmt.Fprintln(stdout, "BMI data saved successfully!")
	return nil
}

func runHistory(args []string, open Opener, stdout, stderr io.Writer) error {
	fs := newFlagSet("history", stderr)
	user := fs.String("user", "", "username")
	if err := fs.Parse(args); err != nil {
		return err
	}

	svc, err := open()
	if err != nil {
		return err
	}
	records, err := svc.History(*user)
	if err != nil {
		return err
	}
	return render.HistoryTable(stdout, records)
}

func runTrend(args []string, open Opener, stdout, stderr io.Writer) error {
	fs := newFlagSet("trend", stderr)
	user := fs.String("user", "", "username")
	out := fs.String("out", "bmi_trend.png", "output PNG path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	svc, err := open()
	if err != nil {
		return err
	}
	points, err := svc.Trend(*user)
	if err != nil {
		return err
	}

	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", *out, err)
	}
	if err := render.TrendChart(f, *user, points); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", *out, err)
	}

	fmt.Fprintf(stdout, "trend of %d points written to %s\n", len(points), *out)
	return nil
}

func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}

func label(err error) string {
	if errors.Is(err, domain.ErrNoData) {
		return "info"
	}
	return "error"
}

func message(err error, action string) string {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return "Please enter valid weight and height."
	case errors.Is(err, domain.ErrEmptyUsername):
		return "Enter a username to " + action + "."
	case errors.Is(err, domain.ErrNoData):
		return "No data available to plot."
	default:
		return err.Error()
	}
}

package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathgame/internal/problemgen"
	"github.com/abhisek/mathgame/internal/session"
)

var drillCmd = &cobra.Command{
	Use:   "drill",
	Short: "Play one session line by line (no full-screen UI)",
	Long: `Play a single session on plain stdin/stdout.

Type an answer and press Enter. Type "quit" or send EOF (Ctrl+D) to stop
early; the summary is printed either way.`,
	RunE: runDrillCmd,
}

func init() {
	drillCmd.Flags().String("mode", "standard", "Game mode: standard, timeattack or survival")
	drillCmd.Flags().String("op", "random", "Operator for standard mode: add, sub, mul, div or random")
	drillCmd.Flags().Uint64("seed", 0, "Seed for reproducible questions (0 = time-seeded)")
}

func runDrillCmd(cmd *cobra.Command, args []string) error {
	mode, _ := cmd.Flags().GetString("mode")
	op, _ := cmd.Flags().GetString("op")
	seed, _ := cmd.Flags().GetUint64("seed")

	choice, err := session.ParseChoice(mode, op)
	if err != nil {
		return err
	}

	cfg, logger, closeLog, err := setup(cmd)
	if err != nil {
		return err
	}
	defer closeLog()

	var src problemgen.OperandSource
	if seed != 0 {
		src = problemgen.NewRandSource(seed)
	} else {
		src = problemgen.NewTimeSeededSource()
	}

	return runDrill(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), choice, session.Options{
		Config: cfg.Session,
		Source: src,
		Logger: logger,
	})
}

// runDrill plays one session, reading answers from in and writing
// everything the session shows to out. It returns once the session has
// ended and its summary was written.
//
// A session can end by timer, mistake or cancellation while a read from in
// is still pending. That read cannot be interrupted, so in stays held by a
// reader goroutine until it reaches EOF or fails; close in to release it.
func runDrill(ctx context.Context, in io.Reader, out io.Writer, choice session.Choice, opts session.Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	opts.Display = &consoleDisplay{w: out}
	s, err := session.Start(choice, opts)
	if err != nil {
		return err
	}

	timerDone := make(chan error, 1)
	go func() {
		timerDone <- session.RunTimer(ctx, s, 0)
	}()
	defer func() {
		cancel()
		<-timerDone
	}()

	lines := scanLines(ctx, in)
	for {
		select {
		case <-s.Done():
			return nil
		case <-ctx.Done():
			s.End()
			return nil
		case line, ok := <-lines:
			if !ok {
				s.End()
				return nil
			}
			line = strings.TrimSpace(line)
			switch strings.ToLower(line) {
			case "":
				continue
			case "quit", "exit":
				s.End()
				return nil
			}
			s.Submit(line)
		}
	}
}

// scanLines delivers the lines of r until EOF or ctx is cancelled. The
// channel is closed only once the goroutine stops reading, which after a
// cancellation still waits for the pending read of r to return.
func scanLines(ctx context.Context, r io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return lines
}

// consoleDisplay prints session output as plain lines.
type consoleDisplay struct {
	w io.Writer
}

var _ session.Display = (*consoleDisplay)(nil)

func (d *consoleDisplay) ShowQuestion(text string) { fmt.Fprintln(d.w, text) }
func (d *consoleDisplay) ShowResult(text string)   { fmt.Fprintln(d.w, text) }
func (d *consoleDisplay) ShowTime(text string)     { fmt.Fprintln(d.w, text) }
func (d *consoleDisplay) ShowInfo(text string)     { fmt.Fprintln(d.w, text) }

func (d *consoleDisplay) ShowSummary(text string) {
	fmt.Fprintln(d.w)
	fmt.Fprintln(d.w, text)
}

package ledsim

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/refugeesus/libtock-go/src/lib/trust"
)

// ExitHalted is ledsim's own status when the program ended in a halt
// handler.  On the board there is no status at all in that case.
const ExitHalted = 3

// Global flag variables shared by the subcommands.
var (
	boardPath string
	verbose   bool
)

// exitStatus is what Execute hands back to main.
var exitStatus int

func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ledsim",
		Short: "Run the bare-metal entry and halt handlers against simulated lamps",
		Long: `ledsim runs a small program through the same entry trampoline and halt
handlers the board uses, with the lamps drawn in the terminal.

A panic blinks every lamp together; running out of memory chases a single
lamp around the board.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				trust.UpTo(trust.DebugMask)
			}
		},
	}
	rootCmd.PersistentFlags().StringVarP(&boardPath, "board", "b", "", "board description (YAML); defaults to a pi3B")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newRunCommand())
	rootCmd.AddCommand(newTraceCommand())
	return rootCmd
}

func loadBoard() (*Board, error) {
	if boardPath == "" {
		return DefaultBoard(), nil
	}
	return LoadBoard(boardPath)
}

func addProgramFlags(cmd *cobra.Command, opts *Options, mode *string, defaultMode Mode) {
	cmd.Flags().StringVarP(mode, "mode", "m", string(defaultMode), fmt.Sprintf("how the program ends %v", Modes))
	cmd.Flags().StringVar(&opts.Message, "message", "stack overflow", "panic or failure message")
	cmd.Flags().Int32Var(&opts.Code, "code", 1, "exit code for exit mode")
}

func newRunCommand() *cobra.Command {
	var (
		opts  Options
		mode  string
		steps int
		speed float64
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the program and draw the lamps until it exits or you press q",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := ParseMode(mode)
			if err != nil {
				return err
			}
			opts.Mode = m
			board, err := loadBoard()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("speed") {
				board.Speed = speed
				if err := board.Validate(); err != nil {
					return err
				}
			}

			term := OpenTerminal()
			defer term.Close()
			defer trust.SetOutput(trust.SetOutput(term.Output()))

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer cancel()
			term.WatchQuit(ctx, cancel)

			panel := NewPanel(board, term.Output(), nil)
			clock := NewClock(board.Speed, steps, nil)
			trust.Infof("%s: %d lamps, mode %s (q to quit)", board.Name, len(board.Lamps), opts.Mode)

			out, err := Simulate(ctx, opts, panel, clock)
			// a halted program's handler keeps running; stop it drawing
			// before the terminal goes away
			panel.Quiesce()
			fmt.Fprintln(term.Output())
			if err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			if out.Halted || out.State.Terminal() {
				trust.Infof("halted in %s after %d holds", out.State, clock.Sleeps())
				exitStatus = ExitHalted
				return nil
			}
			if err != nil {
				trust.Infof("interrupted")
				exitStatus = ExitHalted
				return nil
			}
			trust.Infof("program exited with status %d", out.Status)
			exitStatus = int(out.Status)
			return nil
		},
	}
	addProgramFlags(cmd, &opts, &mode, ModePanic)
	cmd.Flags().IntVarP(&steps, "steps", "n", 0, "stop after this many holds (0 runs until q)")
	cmd.Flags().Float64Var(&speed, "speed", 1, "time scale, 2 runs twice as fast")
	return cmd
}

func newTraceCommand() *cobra.Command {
	var (
		opts  Options
		mode  string
		steps int
	)
	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Print the first capability calls a halt handler makes",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := ParseMode(mode)
			if err != nil {
				return err
			}
			opts.Mode = m
			if steps <= 0 {
				return fmt.Errorf("steps must be positive, got %d", steps)
			}
			board, err := loadBoard()
			if err != nil {
				return err
			}

			trace := &Trace{}
			panel := NewPanel(board, nil, trace)
			clock := NewClock(0, steps, trace)
			out, err := Simulate(cmd.Context(), opts, panel, clock)
			if err != nil {
				return err
			}
			trace.WriteTable(cmd.OutOrStdout())
			if !out.Halted {
				fmt.Fprintf(cmd.OutOrStdout(), "program exited with status %d\n", out.Status)
				exitStatus = int(out.Status)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s after %d holds\n", out.State, clock.Sleeps())
			return nil
		},
	}
	addProgramFlags(cmd, &opts, &mode, ModeOOM)
	cmd.Flags().IntVarP(&steps, "steps", "n", 8, "number of holds to record")
	return cmd
}

// Execute runs the command line and returns the process exit status.
func Execute() int {
	if err := NewRootCommand().Execute(); err != nil {
		trust.Errorf("%v", err)
		return 1
	}
	return exitStatus
}

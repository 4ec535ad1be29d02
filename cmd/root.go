package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"slices"
	"sync/atomic"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Norgate-AV/batchprint/internal/batch"
	"github.com/Norgate-AV/batchprint/internal/config"
	"github.com/Norgate-AV/batchprint/internal/files"
	"github.com/Norgate-AV/batchprint/internal/interfaces"
	"github.com/Norgate-AV/batchprint/internal/logger"
	"github.com/Norgate-AV/batchprint/internal/spooler"
	"github.com/Norgate-AV/batchprint/internal/timeouts"
	"github.com/Norgate-AV/batchprint/internal/ui"
	"github.com/Norgate-AV/batchprint/internal/version"
)

// InterruptExitCode is the conventional status for a Ctrl+C exit
const InterruptExitCode = 130

var (
	cfgFile      string
	showLogs     bool
	listPrinters bool

	// Replaced in tests
	osExit        = os.Exit
	notifySignals = signal.Notify
	newSpooler = func(log logger.LoggerInterface, opts spooler.Options) interfaces.Spooler {
		return spooler.New(log, opts)
	}
	isInteractive = func() bool {
		fd := os.Stdin.Fd()
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
	pickPrinter = func(printers []string, out io.Writer) (string, error) {
		return ui.PickPrinter(printers, os.Stdin, out)
	}
)

var RootCmd = &cobra.Command{
	Use:   "batchprint [folder]",
	Short: "batchprint - Send every PDF in a folder to a printer",
	Long: `batchprint submits every .pdf file found directly inside a folder to one
printer, one file at a time, pausing between jobs so the spooler keeps up.

Without --printer, an interactive picker lists the installed printers.`,
	Version:      version.GetVersion(),
	Args:         validateArgs,
	RunE:         Execute,
	SilenceUsage: true,
}

func init() {
	RootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	flags := RootCmd.PersistentFlags()
	flags.StringP("printer", "p", "", "printer to send the files to (skips the picker)")
	flags.DurationP("delay", "d", timeouts.InterJobDelay, "pause after each submitted file")
	flags.BoolP("verbose", "V", false, "enable verbose output")
	flags.BoolVarP(&listPrinters, "list-printers", "L", false, "list installed printers and exit")
	flags.BoolVarP(&showLogs, "logs", "l", false, "print the log file and exit")
	flags.StringVar(&cfgFile, "config", "", "config file (default is <user config dir>/batchprint/config.yaml)")
}

// validateArgs accepts an optional folder. A missing folder is reported by
// Execute, so --logs and --list-printers work without one.
func validateArgs(cmd *cobra.Command, args []string) error {
	return cobra.MaximumNArgs(1)(cmd, args)
}

// appState holds the selections for one invocation
type appState struct {
	cfg      *config.Config
	folder   string
	printer  string
	printers []string
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for key, name := range map[string]string{
		config.KeyPrinter: "printer",
		config.KeyDelay:   "delay",
		config.KeyVerbose: "verbose",
	} {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return fmt.Errorf("error binding flag %s: %w", name, err)
		}
	}

	return nil
}

func Execute(cmd *cobra.Command, args []string) error {
	v := config.New()
	if err := bindFlags(v, cmd.PersistentFlags()); err != nil {
		return err
	}

	cfg, err := config.Load(v, cfgFile)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if showLogs {
		if err := logger.PrintLogFile(out, cfg.Log); err != nil {
			return err
		}

		osExit(0)
		return nil
	}

	cfg.Log.Console = out

	log, err := logger.NewLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("error initializing logger: %w", err)
	}
	defer log.Close()

	log.Debug("Execute() called", "args", args)
	log.Debug("Config resolved", "printer", cfg.Printer, "delay", cfg.Delay, "verbose", cfg.Verbose)
	log.Debug("Logging to", "path", log.GetLogPath())

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	sp := newSpooler(log, spooler.Options{LPPath: cfg.LPPath, LPStatPath: cfg.LPStatPath})

	state := &appState{cfg: cfg}
	if len(args) == 1 {
		state.folder = args[0]
	}

	state.printers, err = sp.ListPrinters(ctx)
	if err != nil {
		log.Error("Could not list printers", "error", err)
	}

	if listPrinters {
		if len(state.printers) == 0 {
			log.Warn("No printers found")
			return nil
		}

		for _, name := range state.printers {
			_, _ = fmt.Fprintln(out, name)
		}

		return nil
	}

	var completed atomic.Int64

	sigChan := make(chan os.Signal, 1)
	notifySignals(sigChan, os.Interrupt, syscall.SIGTERM)
	defer func() {
		signal.Stop(sigChan)
		close(sigChan)
	}()

	go func() {
		sig, ok := <-sigChan
		if !ok {
			return
		}

		log.Debug("Received signal", "signal", sig)
		log.Warn(fmt.Sprintf("Interrupted after %d file(s); the rest of the folder was not printed", completed.Load()))
		osExit(InterruptExitCode)
	}()

	if err := state.run(ctx, log, sp, out, &completed); err != nil {
		reportFailure(log, err)
		log.Close()
		osExit(1)
	}

	return nil
}

// run resolves the printer, lists the folder and dispatches the batch
func (s *appState) run(ctx context.Context, log logger.LoggerInterface, sp interfaces.Spooler, out io.Writer, completed *atomic.Int64) error {
	if s.folder == "" {
		return batch.ErrNoFolder
	}

	printer, err := s.resolvePrinter(log, out)
	if err != nil {
		return err
	}

	s.printer = printer

	if err := batch.CheckSelection(s.folder, s.printer); err != nil {
		return err
	}

	log.Info(fmt.Sprintf("Printer selected: %s", s.printer))

	list, err := files.List(s.folder)
	if err != nil {
		return fmt.Errorf("error reading folder: %w", err)
	}

	log.Debug("Files found", "folder", s.folder, "count", len(list))

	opts := batch.DefaultOptions()
	opts.Delay = s.cfg.Delay
	opts.Observer = newProgressReporter(log, out, completed)

	dispatcher := batch.NewDispatcher(log, sp, opts)

	result, err := dispatcher.Dispatch(ctx, batch.Request{
		Dir:     s.folder,
		Printer: s.printer,
		Files:   list,
	})
	if err != nil {
		return err
	}

	log.Info("All files have been sent to the printer", "files", result.Submitted)
	log.Debug("Run finished", "run", result.RunID, "elapsed", result.Elapsed)

	return nil
}

// resolvePrinter picks the printer from config, or from the interactive
// picker when none is configured. An empty name means no selection was made.
func (s *appState) resolvePrinter(log logger.LoggerInterface, out io.Writer) (string, error) {
	if name := s.cfg.Printer; name != "" {
		// An unknown name is only rejected when the installed list is known
		if len(s.printers) > 0 && !slices.Contains(s.printers, name) {
			return "", fmt.Errorf("printer %q is not installed", name)
		}

		return name, nil
	}

	if len(s.printers) == 0 || !isInteractive() {
		return "", nil
	}

	name, err := pickPrinter(s.printers, out)
	if errors.Is(err, ui.ErrPickerAborted) {
		log.Debug("Printer picker cancelled")
		return "", nil
	}

	return name, err
}

func reportFailure(log logger.LoggerInterface, err error) {
	if batch.IsPrecondition(err) {
		log.Warn(err.Error())
		return
	}

	var submitErr *batch.SubmitError
	if errors.As(err, &submitErr) {
		log.Error(submitErr.Error())
		log.Debug("Batch aborted", "index", submitErr.Index, "file", submitErr.File)
		return
	}

	log.Error(err.Error())
}

// progressReporter prints a bar line after each file
type progressReporter struct {
	log       logger.LoggerInterface
	out       io.Writer
	bar       *ui.ProgressBar
	completed *atomic.Int64
}

func newProgressReporter(log logger.LoggerInterface, out io.Writer, completed *atomic.Int64) *progressReporter {
	return &progressReporter{
		log:       log,
		out:       out,
		bar:       ui.NewProgressBar(lipgloss.NewRenderer(out), 0),
		completed: completed,
	}
}

func (p *progressReporter) OnStart(run batch.Run) {
	p.log.Info(fmt.Sprintf("Printing %d file(s)", len(run.Files)))
	p.log.Debug("Run started", "run", run.ID)
	_, _ = fmt.Fprintln(p.out, p.bar.Render(0, len(run.Files), ""))
}

func (p *progressReporter) OnProgress(done, total int, file string) {
	p.completed.Store(int64(done))
	p.log.Debug("Progress", "done", done, "total", total, "file", file)
	_, _ = fmt.Fprintln(p.out, p.bar.Render(done, total, file))
}

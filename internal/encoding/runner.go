package encoding

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"proteus/internal/logging"
	"proteus/internal/services"
	"proteus/internal/transcode"
)

const (
	defaultGrace    = 5 * time.Second
	defaultRefresh  = 100 * time.Millisecond
	stderrTailLines = 20
	// progress samples are logged at debug level once per bucket.
	progressLogBucket = 10
)

var commandContext = exec.CommandContext

// State is the lifecycle position of a run.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Outcome summarizes a finished run.
type Outcome struct {
	State    State
	Percent  float64
	ExitCode int
	Elapsed  time.Duration
	// Ended is set when ffmpeg sent its final progress record.
	Ended bool
}

// Options configures a Runner.
type Options struct {
	// Verbose attaches the child to Stdin, Stdout and Stderr and disables
	// progress monitoring.
	Verbose bool
	// Indicator receives progress in monitored mode. Nil disables display.
	Indicator Indicator
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	// Grace is how long a cancelled child gets between SIGTERM and SIGKILL.
	Grace time.Duration
	// Refresh is the minimum interval between indicator updates.
	Refresh time.Duration
	Logger  *slog.Logger
}

// Runner executes ffmpeg commands.
type Runner struct {
	opts   Options
	logger *slog.Logger
}

// NewRunner constructs a runner, filling unset options with defaults.
func NewRunner(opts Options) *Runner {
	if opts.Indicator == nil {
		opts.Indicator = nopIndicator{}
	}
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.Grace <= 0 {
		opts.Grace = defaultGrace
	}
	if opts.Refresh <= 0 {
		opts.Refresh = defaultRefresh
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Runner{opts: opts, logger: logging.NewComponentLogger(logger, "runner")}
}

// Run executes command and blocks until the child exits. durationSeconds is
// the probed length of the input; <= 0 means unknown.
//
// The run succeeds only when ffmpeg exits with status 0. A non-zero exit
// yields an *ExitError; a cancelled context yields an error marked
// services.ErrInterrupted once the child has been torn down.
func (r *Runner) Run(ctx context.Context, command transcode.Command, durationSeconds float64) (Outcome, error) {
	if strings.TrimSpace(command.Binary) == "" {
		return Outcome{State: StateFailed}, services.Wrap(services.ErrToolNotFound, "transcode", "ffmpeg binary not configured", nil)
	}
	if err := ctx.Err(); err != nil {
		return Outcome{State: StateIdle}, services.Wrap(services.ErrInterrupted, "transcode", "cancelled before start", err)
	}

	start := time.Now()
	var (
		outcome Outcome
		err     error
	)
	if r.opts.Verbose {
		outcome, err = r.runAttached(ctx, command)
	} else {
		outcome, err = r.runMonitored(ctx, command, durationSeconds)
	}
	outcome.Elapsed = time.Since(start)

	r.logger.Debug("ffmpeg finished",
		logging.String("state", outcome.State.String()),
		logging.Int("exit_code", outcome.ExitCode),
		logging.Duration("elapsed", outcome.Elapsed),
	)
	return outcome, err
}

func (r *Runner) runAttached(ctx context.Context, command transcode.Command) (Outcome, error) {
	cmd := commandContext(ctx, command.Binary, command.Args...) //nolint:gosec
	cmd.Stdin = r.opts.Stdin
	cmd.Stdout = r.opts.Stdout
	cmd.Stderr = r.opts.Stderr
	release := configureAttached(cmd, r.opts.Grace)
	defer release()

	r.logger.Debug("starting ffmpeg", logging.String("command", command.String()), logging.Bool("verbose", true))
	if err := cmd.Start(); err != nil {
		return Outcome{State: StateFailed, ExitCode: -1}, startError(command.Binary, err)
	}
	return r.finish(ctx, cmd.Wait(), "")
}

func (r *Runner) runMonitored(ctx context.Context, command transcode.Command, durationSeconds float64) (Outcome, error) {
	command = command.WithProgress()
	cmd := commandContext(ctx, command.Binary, command.Args...) //nolint:gosec
	release := configureProcessGroup(cmd, r.opts.Grace)
	defer release()

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return Outcome{State: StateFailed, ExitCode: -1}, fmt.Errorf("stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return Outcome{State: StateFailed, ExitCode: -1}, fmt.Errorf("stderr pipe: %w", err)
	}

	r.logger.Debug("starting ffmpeg",
		logging.String("command", command.String()),
		logging.Float64("duration_seconds", durationSeconds),
	)
	if err := cmd.Start(); err != nil {
		return Outcome{State: StateFailed, ExitCode: -1}, startError(command.Binary, err)
	}

	box := newMailbox()
	done := make(chan struct{})
	rendered := make(chan struct{})
	go func() {
		defer close(rendered)
		render(r.opts.Indicator, box, done, r.opts.Refresh)
	}()

	tracker := NewTracker(durationSeconds)
	sampler := logging.NewProgressSampler(progressLogBucket)
	stderrTail := newTail(stderrTailLines)

	var g errgroup.Group
	g.Go(func() error {
		return scanLines(stdout, func(line string) {
			if !tracker.Feed(line) {
				return
			}
			percent := tracker.Percent()
			box.post(percent)
			if sampler.ShouldLog(percent) {
				r.logger.Debug("encode progress", logging.Float64("progress_percent", percent))
			}
		})
	})
	g.Go(func() error {
		return scanLines(stderr, func(line string) {
			if line = strings.TrimSpace(line); line != "" {
				stderrTail.add(line)
			}
		})
	})
	readErr := g.Wait()
	waitErr := cmd.Wait()

	close(done)
	<-rendered

	outcome, err := r.finish(ctx, waitErr, stderrTail.String())
	outcome.Percent = tracker.Percent()
	outcome.Ended = tracker.Ended()
	r.opts.Indicator.Finish(outcome.State == StateSucceeded)
	r.logger.Debug("progress stream closed",
		logging.Bool("end_record", outcome.Ended),
		logging.Float64("progress_percent", outcome.Percent),
	)
	if readErr != nil {
		r.logger.Warn("ffmpeg output could not be fully parsed", logging.Error(readErr))
	}
	if outcome.State == StateFailed && stderrTail.String() != "" {
		r.logger.Debug("ffmpeg stderr", logging.String("tail", stderrTail.String()))
	}
	return outcome, err
}

// finish classifies the child's exit. Exit status 0 is success regardless of
// what the progress stream said.
func (r *Runner) finish(ctx context.Context, waitErr error, stderrTail string) (Outcome, error) {
	if waitErr == nil {
		return Outcome{State: StateSucceeded}, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return Outcome{State: StateFailed, ExitCode: -1}, services.Wrap(services.ErrInterrupted, "transcode", "encode cancelled", ctxErr)
	}
	code := -1
	var exitErr *exec.ExitError
	if errors.As(waitErr, &exitErr) {
		code = exitErr.ExitCode()
	}
	return Outcome{State: StateFailed, ExitCode: code}, &ExitError{Code: code, Stderr: stderrTail, Err: waitErr}
}

// scanLines calls fn for every line of r. After a scan error the rest of the
// stream is discarded so the child never blocks on a full pipe.
func scanLines(r io.Reader, fn func(string)) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		fn(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		_, _ = io.Copy(io.Discard, r)
		return err
	}
	return nil
}

func startError(binary string, err error) error {
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
		return services.Wrap(services.ErrToolNotFound, "transcode", binary+" not found", err)
	}
	return services.Wrap(services.ErrSubprocess, "transcode", "start "+binary, err)
}

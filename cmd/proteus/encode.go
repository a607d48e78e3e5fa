package main

import (
	"errors"

	"github.com/spf13/cobra"

	"proteus/internal/config"
	"proteus/internal/deps"
	"proteus/internal/encoding"
	"proteus/internal/estimate"
	"proteus/internal/fileutil"
	"proteus/internal/logging"
	"proteus/internal/media/ffprobe"
	"proteus/internal/presenter"
	"proteus/internal/services"
	"proteus/internal/transcode"
)

// encodeJob is one convert or compress invocation.
type encodeJob struct {
	mode    presenter.Mode
	request transcode.Request
	// level is the compression level name, compress only.
	level string
	// pickLevel, when set, chooses the level once the input size and
	// resolution scale are known.
	pickLevel func(inputMiB, scale float64) transcode.Level
	verbose   bool
}

func encodersFor(cfg *config.Config) transcode.Encoders {
	return transcode.Encoders{
		FFmpeg:     cfg.Tools.FFmpeg,
		HWAccel:    cfg.Encoding.HWAccel,
		HWEncoder:  cfg.Encoding.HWEncoder,
		SWEncoder:  cfg.Encoding.SWEncoder,
		AudioCodec: cfg.Encoding.AudioCodec,
		Extension:  cfg.Encoding.Extension,
	}
}

func (c *commandContext) runEncode(cmd *cobra.Command, job encodeJob) error {
	cfg, ctx, logger, err := c.scope(cmd)
	if err != nil {
		return err
	}
	logger = logging.NewComponentLogger(logger, "transcode")
	userForce := job.request.Force

	if _, err := deps.Require("ffmpeg", cfg.Tools.FFmpeg); err != nil {
		return err
	}

	builder := transcode.NewBuilder(encodersFor(cfg))
	plan, err := builder.Build(job.request)
	if err != nil {
		return err
	}

	lock, err := fileutil.LockOutput(plan.Output)
	if err != nil {
		if errors.Is(err, fileutil.ErrLocked) {
			return services.Wrap(services.ErrOutputExists, "", "another proteus run is writing "+plan.Output, nil)
		}
		return err
	}
	defer func() {
		if err := lock.Release(); err != nil {
			logger.Warn("failed to release output lock", logging.Error(err))
		}
	}()

	prober := ffprobe.NewProber(cfg.Tools.FFprobe, logger)
	duration := prober.Duration(ctx, job.request.Input)
	info := prober.Probe(ctx, job.request.Input)
	width, height := info.Resolution()

	inputMiB, err := fileutil.SizeMiB(job.request.Input)
	if err != nil {
		return services.Wrap(services.ErrInputNotFound, "", job.request.Input, err)
	}
	scale := plan.ResolutionScale(height)

	if job.pickLevel != nil {
		level := job.pickLevel(inputMiB, scale)
		job.level = level.Name
		job.request.Quality = level.Quality
		job.request.Preset = level.Preset
		job.request.AudioBitrate = level.AudioBitrate
		// The destination was checked by the first build and is now locked.
		job.request.Output = plan.Output
		job.request.Force = true
		if plan, err = builder.Build(job.request); err != nil {
			return err
		}
		logger.Debug("selected level for target size", logging.String("level", level.Name))
	}
	logger.Debug("built ffmpeg command",
		logging.String("command", plan.Command.String()),
		logging.Float64("duration_seconds", duration),
		logging.Int("source_height", height),
	)

	out := presenter.New(cmd.OutOrStdout())
	inv := presenter.Invocation{
		Mode:           job.mode,
		Input:          job.request.Input,
		Quality:        job.request.Quality,
		DefaultQuality: cfg.Encoding.Quality,
		Level:          job.level,
		Resolution:     job.request.Resolution,
		Slow:           job.request.Slow,
		Force:          userForce,
	}
	out.Plan(presenter.PlanView{
		Input:        plan.Input,
		Output:       plan.Output,
		InputMiB:     inputMiB,
		EstimateMiB:  estimate.Size(inputMiB, job.request.Quality, scale),
		Hardware:     plan.Hardware,
		Quality:      job.request.Quality,
		SourceWidth:  width,
		SourceHeight: height,
		Invocation:   inv,
	})

	opts := encoding.Options{
		Verbose: job.verbose,
		Stdin:   cmd.InOrStdin(),
		Stdout:  cmd.OutOrStdout(),
		Stderr:  cmd.ErrOrStderr(),
		Grace:   cfg.CancelGrace(),
		Refresh: cfg.RefreshInterval(),
		Logger:  logger,
	}
	if !job.verbose {
		out.Tip()
		description := "Converting"
		if job.mode == presenter.ModeCompress {
			description = "Compressing"
		}
		opts.Indicator = out.ProgressBar(description)
	}

	if _, err := encoding.NewRunner(opts).Run(ctx, plan.Command, duration); err != nil {
		var exitErr *encoding.ExitError
		if errors.As(err, &exitErr) {
			out.Failed()
			return &reportedError{err: err}
		}
		return err
	}

	outputMiB, err := fileutil.SizeMiB(plan.Output)
	if err != nil {
		logger.Warn("output missing after successful encode", logging.String("output", plan.Output), logging.Error(err))
	}
	out.Done(inputMiB, outputMiB)
	out.CompressFurther(inv, height)
	return nil
}

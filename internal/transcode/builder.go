package transcode

import (
	"strconv"

	"github.com/go-playground/validator/v10"

	"proteus/internal/estimate"
	"proteus/internal/services"
)

// Encoders names the tools and codecs a command is built from.
type Encoders struct {
	FFmpeg     string
	HWAccel    string
	HWEncoder  string
	SWEncoder  string
	AudioCodec string
	// Extension is the container extension for default output paths, with dot.
	Extension string
}

// Plan is a built command plus the facts the presentation layer reports.
type Plan struct {
	Command Command
	Input   string
	Output  string
	// Encoder is the video codec selected for the run.
	Encoder  string
	Hardware bool
	Scale    *Scale
}

// ResolutionScale is the size factor the target resolution implies for a
// source of the given height.
func (p Plan) ResolutionScale(sourceHeight int) float64 {
	if p.Scale == nil {
		return 1
	}
	return estimate.ResolutionScale(p.Scale.Height, sourceHeight)
}

// Builder validates requests and produces ffmpeg commands.
type Builder struct {
	enc      Encoders
	validate *validator.Validate
}

// NewBuilder constructs a builder for the given encoder set.
func NewBuilder(enc Encoders) *Builder {
	return &Builder{enc: enc, validate: newValidator()}
}

// Build validates req, resolves the output path and assembles the argument
// list:
//
//	[-hwaccel H] -i IN -c:v CODEC QUALITY [-c:a AAC -b:a B | -an] [-vf scale=S] -y OUT
//
// It fails with ErrInputNotFound when the input is missing and with an
// *OutputExistsError when the destination exists and Force is unset.
func (b *Builder) Build(req Request) (Plan, error) {
	if err := b.validate.Struct(req); err != nil {
		return Plan{}, describeValidation(err)
	}
	if err := checkInput(req.Input); err != nil {
		return Plan{}, err
	}

	output := req.Output
	if output == "" {
		output = ConvertedOutputPath(req.Input, b.enc.Extension)
	}
	if samePath(req.Input, output) {
		return Plan{}, services.Wrap(services.ErrValidation, "", "output path must differ from input: "+output, nil)
	}
	if err := checkOutput(output, req.Force); err != nil {
		return Plan{}, err
	}

	plan := Plan{Input: req.Input, Output: output, Hardware: !req.Slow}
	args := make([]string, 0, 20)
	if plan.Hardware {
		plan.Encoder = b.enc.HWEncoder
		args = append(args, "-hwaccel", b.enc.HWAccel, "-i", req.Input,
			"-c:v", b.enc.HWEncoder, "-q:v", strconv.Itoa(HardwareQuality(req.Quality)))
	} else {
		plan.Encoder = b.enc.SWEncoder
		args = append(args, "-i", req.Input,
			"-c:v", b.enc.SWEncoder, "-crf", strconv.Itoa(req.Quality), "-preset", req.Preset)
	}

	if req.NoAudio {
		args = append(args, "-an")
	} else {
		args = append(args, "-c:a", b.enc.AudioCodec, "-b:a", req.AudioBitrate)
	}

	if req.Resolution != "" {
		scale, err := ParseResolution(req.Resolution)
		if err != nil {
			return Plan{}, describeValidation(err)
		}
		plan.Scale = &scale
		args = append(args, "-vf", scale.Filter())
	}

	args = append(args, "-y", output)
	plan.Command = Command{Binary: b.enc.FFmpeg, Args: args}
	return plan, nil
}

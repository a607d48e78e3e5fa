package transcode

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"proteus/internal/services"
)

var bitratePattern = regexp.MustCompile(`^\d+(\.\d+)?[kKmM]?$`)

// Request carries the caller's intent for one conversion.
type Request struct {
	Input        string `validate:"required"`
	Output       string
	Quality      int    `validate:"gte=0,lte=51"`
	Preset       string `validate:"preset"`
	AudioBitrate string `validate:"omitempty,bitrate"`
	NoAudio      bool
	Resolution   string `validate:"omitempty,resolution"`
	// Slow selects the software encoder instead of the hardware one.
	Slow  bool
	Force bool
}

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("preset", func(fl validator.FieldLevel) bool {
		return IsPreset(fl.Field().String())
	})
	_ = v.RegisterValidation("bitrate", func(fl validator.FieldLevel) bool {
		return bitratePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("resolution", func(fl validator.FieldLevel) bool {
		return isResolution(fl.Field().String())
	})
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		req := sl.Current().Interface().(Request)
		if !req.NoAudio && strings.TrimSpace(req.AudioBitrate) == "" {
			sl.ReportError(req.AudioBitrate, "AudioBitrate", "AudioBitrate", "required", "")
		}
	}, Request{})
	return v
}

// describeValidation converts validator output into a single user-facing error.
func describeValidation(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return services.Wrap(services.ErrValidation, "request", "", err)
	}
	fe := fieldErrs[0]
	var msg string
	switch fe.Field() {
	case "Input":
		msg = "input path is required"
	case "Quality":
		msg = fmt.Sprintf("quality must be between %d and %d, got %v", MinQuality, MaxQuality, fe.Value())
	case "Preset":
		msg = fmt.Sprintf("unknown preset %q; use: %s", fe.Value(), strings.Join(presets, ", "))
	case "AudioBitrate":
		if fe.Tag() == "required" {
			msg = "audio bitrate is required unless audio is removed"
		} else {
			msg = fmt.Sprintf("invalid audio bitrate %q: use a value such as 128k", fe.Value())
		}
	case "Resolution":
		msg = fmt.Sprintf("invalid resolution %q: use WIDTHxHEIGHT or a height such as 720", fe.Value())
	default:
		msg = fe.Error()
	}
	return services.Wrap(services.ErrValidation, "", msg, nil)
}

package verify

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/LerianStudio/lib-legacy/legacy/log"
)

// ErrInvalidOptions is returned by Run when Options fail validation.
var ErrInvalidOptions = errors.New("invalid verify options")

const (
	defaultSeed         = 1
	defaultSamples      = 2048
	defaultMaxSourceLen = 64
)

// Options configures a verification run.
type Options struct {
	// Seed makes the generated sweeps reproducible.
	Seed uint64
	// Samples is the number of generated inputs per sweep. Zero runs the
	// fixed scenarios only.
	Samples int `validate:"gte=0,lte=10000000"`
	// MaxSourceLen bounds the length of generated copy sources.
	MaxSourceLen int `validate:"gte=0,lte=1048576"`
	// Logger receives progress and failures. Nil discards them.
	Logger log.Logger `validate:"-"`
}

// DefaultOptions returns the options used when nothing else is specified.
func DefaultOptions() Options {
	return Options{
		Seed:         defaultSeed,
		Samples:      defaultSamples,
		MaxSourceLen: defaultMaxSourceLen,
	}
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})

	return validate
}

// Validate reports whether the options can drive a run. The returned error
// names the first offending field and wraps ErrInvalidOptions.
func (o Options) Validate() error {
	err := getValidator().Struct(o)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		fe := validationErrors[0]

		return fmt.Errorf("%w: %s failed %s=%s, got %v", ErrInvalidOptions, fe.Field(), fe.Tag(), fe.Param(), fe.Value())
	}

	return fmt.Errorf("%w: %w", ErrInvalidOptions, err)
}

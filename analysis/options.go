package analysis

import (
	"fmt"
	"log/slog"

	"github.com/arloliu/wehnelt/errs"
	"github.com/arloliu/wehnelt/internal/options"
	"github.com/arloliu/wehnelt/regression"
)

// DefaultRelativeError is the relative uncertainty of 1/r² used when no
// ErrorModel is configured.
const DefaultRelativeError = 0.05

// Recorder observes every processed group.
type Recorder interface {
	ObserveGroup(res *GroupResult)
}

// Config holds the pipeline settings.
type Config struct {
	// ErrorModel provides the uncertainties of the weighted fit.
	ErrorModel regression.ErrorModel
	// WeightedOptions are passed to regression.FitWeighted.
	WeightedOptions []regression.WeightedOption
	// Logger receives per-group progress and failures.
	Logger *slog.Logger
	// Recorder, when set, observes every group result.
	Recorder Recorder
}

func defaultConfig() Config {
	return Config{
		ErrorModel: regression.RelativeError{Fraction: DefaultRelativeError},
		Logger:     slog.New(slog.DiscardHandler),
	}
}

// Option is a functional option for Config.
type Option = options.Option[*Config]

// WithErrorModel sets the uncertainty model of the weighted fit.
func WithErrorModel(model regression.ErrorModel) Option {
	return options.New(func(cfg *Config) error {
		if model == nil {
			return fmt.Errorf("%w: nil error model", errs.ErrInvalidOption)
		}
		cfg.ErrorModel = model

		return nil
	})
}

// WithWeightedOptions appends options for the weighted fit.
func WithWeightedOptions(opts ...regression.WeightedOption) Option {
	return options.NoError(func(cfg *Config) {
		cfg.WeightedOptions = append(cfg.WeightedOptions, opts...)
	})
}

// WithLogger sets the logger. A nil logger discards.
func WithLogger(logger *slog.Logger) Option {
	return options.NoError(func(cfg *Config) {
		if logger == nil {
			logger = slog.New(slog.DiscardHandler)
		}
		cfg.Logger = logger
	})
}

// WithRecorder sets a recorder notified after every group.
func WithRecorder(r Recorder) Option {
	return options.NoError(func(cfg *Config) {
		cfg.Recorder = r
	})
}

func newConfig(opts []Option) (Config, error) {
	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return Config{}, err
	}
	if _, err := regression.NewWeightedConfig(cfg.WeightedOptions...); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

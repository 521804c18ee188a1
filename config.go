package pathkit

import (
	"flag"
	"io"
	"os"

	"github.com/go-kit/log"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config configures the decoding and interpolation policies,
// and the routes of a Router.
type Config struct {
	// Encoding names the text encoding of percent-escaped query bytes.
	Encoding string `yaml:"encoding"`

	StrictQuery         bool `yaml:"strict_query"`
	StrictInterpolation bool `yaml:"strict_interpolation"`
	EscapeValues        bool `yaml:"escape_values"`

	Routes []RouteConfig `yaml:"routes,omitempty"`
}

// RouteConfig is a single route of a Router.
type RouteConfig struct {
	Type   string `yaml:"type"`
	Method string `yaml:"method"`
	Path   string `yaml:"path"`
}

// RegisterFlagsAndApplyDefaults registers the flags.
func (cfg *Config) RegisterFlagsAndApplyDefaults(prefix string, f *flag.FlagSet) {
	f.StringVar(&cfg.Encoding, prefix+"encoding", "utf-8", "Text encoding of percent-escaped query bytes.")
	f.BoolVar(&cfg.StrictQuery, prefix+"strict-query", false, "Fail on malformed query pairs instead of skipping them.")
	f.BoolVar(&cfg.StrictInterpolation, prefix+"strict-interpolation", false, "Fail on missing properties instead of substituting empty strings.")
	f.BoolVar(&cfg.EscapeValues, prefix+"escape-values", false, "Percent-escape interpolated values.")
}

// Validate checks the config.
func (cfg *Config) Validate() error {
	if _, err := LookupEncoding(cfg.Encoding); err != nil {
		return err
	}
	for i, rc := range cfg.Routes {
		if rc.Type == "" {
			return errors.Errorf("pathkit: route %d: type is required", i)
		}
		if _, err := CompilePattern(rc.Path); err != nil {
			return errors.Wrapf(err, "route %d", i)
		}
	}
	return nil
}

// LoadConfig reads a YAML config from r, on top of the values already
// in cfg. Unknown fields are rejected.
func (cfg *Config) LoadConfig(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return errors.Wrap(err, "pathkit: cannot parse config")
	}
	return cfg.Validate()
}

// LoadConfigFile is like LoadConfig, reading the file at path.
func (cfg *Config) LoadConfigFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "pathkit: cannot open config")
	}
	defer f.Close()
	return cfg.LoadConfig(f)
}

// QueryDecoder creates a QueryDecoder from the config.
func (cfg *Config) QueryDecoder(logger log.Logger) (*QueryDecoder, error) {
	enc, err := LookupEncoding(cfg.Encoding)
	if err != nil {
		return nil, err
	}
	return &QueryDecoder{
		Encoding: enc,
		Strict:   cfg.StrictQuery,
		Logger:   logger,
	}, nil
}

// Interpolator creates an Interpolator from the config.
func (cfg *Config) Interpolator(logger log.Logger) *Interpolator {
	return &Interpolator{
		Strict: cfg.StrictInterpolation,
		Escape: cfg.EscapeValues,
		Logger: logger,
	}
}

// NewRouter creates a Router holding the configured routes.
func (cfg *Config) NewRouter(logger log.Logger) (*Router, error) {
	r := NewRouter()
	r.Interpolator = *cfg.Interpolator(logger)
	r.Logger = logger
	for _, rc := range cfg.Routes {
		if err := r.Add(rc.Type, rc.Method, rc.Path); err != nil {
			return nil, err
		}
	}
	return r, nil
}

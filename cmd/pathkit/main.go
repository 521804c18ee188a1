package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/jxskiss/pathkit"
)

type globalOptions struct {
	LogLevel string `name:"log.level" default:"info" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)."`
	Config   string `type:"existingfile" help:"YAML config file with policies and routes."`

	Encoding            string `default:"utf-8" help:"Text encoding of percent-escaped query bytes."`
	StrictQuery         bool   `help:"Fail on malformed query pairs instead of skipping them."`
	StrictInterpolation bool   `help:"Fail on missing properties instead of substituting empty strings."`
	EscapeValues        bool   `help:"Percent-escape interpolated values."`

	logger log.Logger `kong:"-"`
	out    io.Writer  `kong:"-"`
}

var cli struct {
	globalOptions

	Append      appendCmd      `cmd:"" help:"Append key=value query parameters to a resource path."`
	Parse       parseCmd       `cmd:"" help:"Print the query parameters of a URL-like string."`
	Interpolate interpolateCmd `cmd:"" help:"Interpolate (name) tokens of a template with key=value properties."`
	Match       matchCmd       `cmd:"" help:"Match a path against a template and print the token values."`
	Route       routeCmd       `cmd:"" help:"Find the configured route matching a path."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("pathkit"),
		kong.Description("Build and parse REST resource paths."),
		kong.UsageOnError(),
	)

	g := &cli.globalOptions
	g.logger = newLogger(g.LogLevel)
	g.out = os.Stdout
	pathkit.SetLogger(g.logger)

	err := ctx.Run(g)
	if err != nil {
		level.Error(g.logger).Log("msg", "command failed", "cmd", ctx.Command(), "err", err)
		os.Exit(1)
	}
}

func newLogger(lvl string) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)

	var option level.Option
	switch lvl {
	case "debug":
		option = level.AllowDebug()
	case "warn":
		option = level.AllowWarn()
	case "error":
		option = level.AllowError()
	default:
		option = level.AllowInfo()
	}
	return level.NewFilter(logger, option)
}

// config merges the config file, if any, over the command line flags.
func (g *globalOptions) config() (*pathkit.Config, error) {
	cfg := &pathkit.Config{
		Encoding:            g.Encoding,
		StrictQuery:         g.StrictQuery,
		StrictInterpolation: g.StrictInterpolation,
		EscapeValues:        g.EscapeValues,
	}
	if g.Config == "" {
		return cfg, cfg.Validate()
	}
	if err := cfg.LoadConfigFile(g.Config); err != nil {
		return nil, err
	}
	level.Debug(g.logger).Log("msg", "config loaded", "file", g.Config, "routes", len(cfg.Routes))
	return cfg, nil
}

// parsePairs parses "key=value" arguments, keeping their order.
func parsePairs(args []string) (pathkit.Params, error) {
	ps := pathkit.Params{}
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return ps, errors.Errorf("argument %q is not key=value", arg)
		}
		ps.Append(key, value)
	}
	return ps, nil
}

func printParams(w io.Writer, ps pathkit.Params) {
	for i, k := range ps.Keys {
		fmt.Fprintf(w, "%s=%s\n", k, ps.Values[i])
	}
}

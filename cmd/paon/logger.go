package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/gilcrest/diygoapi/logger"
	"github.com/peterbourgon/ff/v3"
	"github.com/rs/zerolog"
)

const (
	loglevelEnv      string = configPrefix + "_LOG_LEVEL"
	logLevelMinEnv   string = configPrefix + "_LOG_LEVEL_MIN"
	logErrorStackEnv string = configPrefix + "_LOG_ERROR_STACK"
)

type flags struct {
	// level the relay logs at, e.g. ./paon -log-level=debug to see every
	// subscribe and unsubscribe
	loglvl string

	// floor under loglvl; a global level below it is ignored
	logLvlMin string

	// log full error stacks instead of just the message
	logErrorStack bool
}

// newFlags parses args with ff, falling back to PAON_ prefixed env vars.
func newFlags(args []string) (flags, error) {
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	var (
		logLvlMin     = fs.String("log-level-min", "trace", fmt.Sprintf("sets minimum log level (trace, debug, info, warn, error, fatal, panic, disabled), (also via %s)", logLevelMinEnv))
		loglvl        = fs.String("log-level", "info", fmt.Sprintf("sets log level (trace, debug, info, warn, error, fatal, panic, disabled), (also via %s)", loglevelEnv))
		logErrorStack = fs.Bool("log-error-stack", false, fmt.Sprintf("if true, log full error stacktrace, else just log error, (also via %s)", logErrorStackEnv))
	)

	err := ff.Parse(fs, args[1:], ff.WithEnvVarPrefix(configPrefix))
	if err != nil {
		return flags{}, err
	}

	return flags{
		loglvl:        *loglvl,
		logLvlMin:     *logLvlMin,
		logErrorStack: *logErrorStack,
	}, nil
}

func NewLogger(w io.Writer, args []string) (zerolog.Logger, error) {
	flgs, err := newFlags(args)
	if err != nil {
		return zerolog.Logger{}, err
	}

	minlvl, err := zerolog.ParseLevel(flgs.logLvlMin)
	if err != nil {
		return zerolog.Logger{}, err
	}

	lvl, err := zerolog.ParseLevel(flgs.loglvl)
	if err != nil {
		return zerolog.Logger{}, err
	}

	lgr := logger.NewWithGCPHook(w, minlvl, true)

	// the global level only narrows what the minimum already allows
	if minlvl != lvl {
		zerolog.SetGlobalLevel(lvl)
	}

	logger.LogErrorStackViaPkgErrors(flgs.logErrorStack)

	lgr.Debug().
		Stringer("minLevel", minlvl).
		Stringer("level", lvl).
		Bool("errorStack", flgs.logErrorStack).
		Msg("Logger configured")

	return lgr, nil
}

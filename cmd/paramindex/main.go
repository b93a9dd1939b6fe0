package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/aleister1102/paramindex/internal/common/errorwrapper"
	"github.com/aleister1102/paramindex/internal/config"
	"github.com/aleister1102/paramindex/internal/logger"
	"github.com/aleister1102/paramindex/internal/reporter"
	"github.com/aleister1102/paramindex/internal/session"
	"github.com/aleister1102/paramindex/internal/tagger"
	"github.com/rs/zerolog"
)

var errMissingFile = errors.New("-file argument is required")

func main() {
	flags, err := ParseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("[FATAL] Main: %v", err)
	}

	gCfg, err := loadConfig(flags)
	if err != nil {
		log.Fatalf("[FATAL] Main: %v", err)
	}

	zLogger, err := logger.New(gCfg.LogConfig)
	if err != nil {
		log.Fatalf("[FATAL] Main: Could not initialize logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, flags, gCfg, zLogger, os.Stdin, os.Stdout); err != nil {
		zLogger.Error().Err(err).Msg("paramindex failed")
		stop()
		os.Exit(1)
	}
}

// loadConfig loads, overrides and validates the global configuration.
func loadConfig(flags AppFlags) (*config.GlobalConfig, error) {
	gCfg, err := config.LoadGlobalConfig(flags.GlobalConfigFile, zerolog.Nop())
	if err != nil {
		return nil, fmt.Errorf("could not load global config using path '%s': %w", flags.GlobalConfigFile, err)
	}

	if flags.Format != "" {
		gCfg.OutputConfig.Format = flags.Format
	}

	if err := config.ValidateConfig(gCfg); err != nil {
		return nil, errorwrapper.WrapError(err, "configuration validation failed")
	}
	return gCfg, nil
}

// run loads the document and writes every requested query to out.
func run(ctx context.Context, flags AppFlags, gCfg *config.GlobalConfig, zLogger zerolog.Logger, in io.Reader, out io.Writer) error {
	rep, err := reporter.NewReporter(gCfg.OutputConfig, zLogger)
	if err != nil {
		return err
	}

	sess := session.NewSession(gCfg, zLogger)
	if flags.DocumentFile == "-" {
		_, err = sess.LoadReader(ctx, "stdin", in)
	} else {
		_, err = sess.LoadFile(ctx, flags.DocumentFile)
	}
	if err != nil {
		return err
	}

	if !flags.HasQuery() {
		index, err := sess.Index()
		if err != nil {
			return err
		}
		return rep.WriteIndex(out, index)
	}

	if flags.Stats {
		stats, err := sess.Stats()
		if err != nil {
			return err
		}
		labels := tagger.NewClassifierFromConfig(gCfg.TaggerConfig).Labels()
		if err := rep.WriteStats(out, stats, labels); err != nil {
			return err
		}
	}

	if flags.Param != "" {
		entry, err := sess.GetParameter(flags.Param)
		if err != nil {
			return err
		}
		if err := rep.WriteEntry(out, entry); err != nil {
			return err
		}
	}

	if flags.Relations != "" {
		rels, err := sess.GetRelationships(flags.Relations)
		if err != nil {
			return err
		}
		if err := rep.WriteRelationships(out, flags.Relations, rels); err != nil {
			return err
		}
	}

	if flags.Search != "" {
		names, err := sess.SearchParameters(flags.Search)
		if err != nil {
			return err
		}
		if err := rep.WriteNames(out, "search:"+flags.Search, names); err != nil {
			return err
		}
	}

	if flags.Tag != "" {
		names, err := sess.FilterByTag(flags.Tag)
		if err != nil {
			return err
		}
		if err := rep.WriteNames(out, "tag:"+flags.Tag, names); err != nil {
			return err
		}
	}

	return nil
}

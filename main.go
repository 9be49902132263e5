// Package main implements the main entry point for a CHIP-8 assembler and disassembler
package main

import (
	"context"
	"errors"
	"os"

	"github.com/retroenv/chip8asm/internal/cli"
	"github.com/retroenv/chip8asm/internal/config"
	"github.com/retroenv/chip8asm/internal/pipeline"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts.Debug, opts.Quiet)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			pipeline.PrintBanner(logger, opts, version, commit, date)
			usageErr.ShowUsage()
		} else {
			logger.Fatal(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	pipeline.PrintBanner(logger, opts, version, commit, date)

	files, err := pipeline.GetFilesToProcess(opts)
	if err != nil {
		logger.Fatal(err.Error())
	}

	pipe := pipeline.New(logger)
	for _, file := range files {
		opts.Input = file

		if err := pipe.ProcessFile(ctx, opts); err != nil {
			// Handle context cancellation (Ctrl+C) gracefully
			if errors.Is(err, context.Canceled) {
				logger.Info("Operation cancelled")
				return
			}
			logger.Error("Translation failed", log.Err(err))
		}
	}
}

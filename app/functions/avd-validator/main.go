// SPDX-FileCopyrightText: Copyright (c) 2024-2026, the avd-unit-test authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/build"
	"github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/functions/avd-validator/diagnose"
	logging "github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/logging/validator"
)

const FlagLogLevel = "log-level"

func main() {
	ctx := ctrlCHandler()

	app := &cli.App{
		Name:     "avd-validator",
		Version:  fmt.Sprintf("%s/%s-%s", build.GetVersion(), runtime.GOOS, runtime.GOARCH),
		Compiled: time.Now(),
		Authors: []*cli.Author{
			{Name: build.AuthorName, Email: build.AuthorEmail},
		},
		Copyright:            build.Copyright,
		Usage:                "post-deployment health validation for Azure Virtual Desktop estates",
		EnableBashCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: FlagLogLevel, Usage: "the log level", Required: false, Value: "info"},
		},
		Before: func(c *cli.Context) error {
			logging.SetUpLogging(c.String(FlagLogLevel), logging.LogFormatText)
			return nil
		},
	}

	app.Commands = append(
		app.Commands,
		diagnose.NewCommand(),
	)

	if err := app.RunContext(ctx, os.Args); err != nil {
		if exit, ok := err.(cli.ExitCoder); ok {
			logrus.Error(exit.Error())
			os.Exit(exit.ExitCode())
		}
		logrus.WithError(err).Error("validation run failed")
		os.Exit(1)
	}
}

func ctrlCHandler() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt)
	go func() {
		<-stopCh
		cancel()
	}()
	return ctx
}

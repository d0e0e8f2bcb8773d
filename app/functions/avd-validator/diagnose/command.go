// SPDX-FileCopyrightText: Copyright (c) 2024-2026, the avd-unit-test authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package diagnose contains the CLI commands for running estate health
// checks against an Azure Virtual Desktop deployment.
package diagnose

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/itchyny/gojq"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	config "github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/config/validator"
	"github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/domain/diagnostic/catalog"
	"github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/domain/diagnostic/runner"
	"github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/domain/inventory/azure"
	"github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/domain/report"
	logging "github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/logging/validator"
	"github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/storage/history"
	"github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/storage/sqlite"
	"github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/types/status"
	"github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/utils/telemetry"
)

const (
	flagCheck = "check"
	flagQuery = "query"
	flagPost  = "post"

	configFileDesc = "location of a YAML configuration file; repeatable"
)

var configAlias = []string{"f"}

func NewCommand() *cli.Command {
	cmd := &cli.Command{
		Name:    "diagnose",
		Usage:   "estate health validation commands",
		Aliases: []string{"diag", "d"},
		Subcommands: []*cli.Command{
			{
				Name:  "get-available",
				Usage: "lists the available health checks",
				Flags: []cli.Flag{},
				Action: func(c *cli.Context) error {
					registry := catalog.NewCatalog(c.Context, defaultSettings())
					for _, check := range registry.List() {
						fmt.Println("- " + check)
					}
					return nil
				},
			},
			{
				Name:  "run",
				Usage: "run the configured checks (or a subset) against the estate",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{Name: config.FlagConfigFile, Aliases: configAlias, Usage: configFileDesc, Required: true},
					&cli.StringSliceFlag{Name: flagCheck, Usage: "run only the named check(s) instead of the configured set", Required: false},
					&cli.StringFlag{Name: flagQuery, Usage: "jq expression applied to the report JSON before printing", Required: false},
					&cli.BoolFlag{Name: flagPost, Usage: "push the report to the telemetry endpoint even if disabled in config", Required: false},
				},
				Action: runChecks,
			},
		},
	}
	return cmd
}

func runChecks(c *cli.Context) error {
	ctx := c.Context

	configs := c.StringSlice(config.FlagConfigFile)
	if len(configs) == 0 {
		return errors.New("no configuration files specified")
	}

	cfg, err := config.NewSettings(configs...)
	if err != nil {
		return errors.Wrap(err, "loading configuration")
	}
	if requested := c.StringSlice(flagCheck); len(requested) > 0 {
		cfg.Diagnostics.Checks = requested
	}
	if err = cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	logging.SetUpLogging(cfg.Logging.Level, cfg.Logging.Format)
	if cfg.Logging.Location != "" {
		if err = logging.LogToFile(cfg.Logging.Location); err != nil {
			return errors.Wrap(err, "opening log file")
		}
	}

	cred, err := azure.NewCredential(cfg)
	if err != nil {
		return errors.Wrap(err, "building azure credential")
	}
	inv, err := azure.NewClient(cfg, cred)
	if err != nil {
		return errors.Wrap(err, "building inventory client")
	}

	engine := runner.NewRunner(cfg, catalog.NewCatalog(ctx, cfg), inv)
	rep, err := engine.Run(ctx)
	if err != nil {
		return errors.Wrap(err, "running health checks")
	}

	logger := logging.NewLogger().WithContext(ctx)
	report.NewReporter(logger).Render(rep)

	if err = printReport(rep, c.String(flagQuery)); err != nil {
		return err
	}

	if cfg.History.Enabled {
		if err = saveHistory(ctx, cfg, rep); err != nil {
			logger.WithError(err).Warn("failed to record run history")
		}
	}

	if cfg.Telemetry.Enabled || c.Bool(flagPost) {
		post := *cfg
		post.Telemetry.Enabled = true
		if err = telemetry.Post(ctx, http.DefaultClient, &post, rep); err != nil {
			logger.WithError(err).Warn("failed to post report")
		}
	}

	if !healthy(cfg, rep) {
		return cli.Exit("estate validation failed", 1)
	}
	return nil
}

// healthy reports whether the run should exit zero. Advisory checks inform
// but never gate.
func healthy(cfg *config.Settings, rep *status.RunReport) bool {
	for _, check := range rep.Checks {
		if cfg.Diagnostics.IsAdvisory(check.Name) {
			continue
		}
		if check.Outcome != status.OutcomePass {
			return false
		}
	}
	return true
}

// printReport writes the report JSON to stdout, optionally filtered through
// a jq expression.
func printReport(rep *status.RunReport, query string) error {
	raw, err := json.Marshal(rep)
	if err != nil {
		return errors.Wrap(err, "encoding report")
	}

	if query == "" {
		fmt.Println(string(raw))
		return nil
	}

	parsed, err := gojq.Parse(query)
	if err != nil {
		return errors.Wrapf(err, "parsing query %q", query)
	}

	var doc interface{}
	if err = json.Unmarshal(raw, &doc); err != nil {
		return errors.Wrap(err, "decoding report")
	}

	iter := parsed.Run(doc)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, isErr := v.(error); isErr {
			return errors.Wrap(err, "evaluating query")
		}
		out, err := gojq.Marshal(v)
		if err != nil {
			return errors.Wrap(err, "encoding query result")
		}
		fmt.Println(string(out))
	}
	return nil
}

func saveHistory(ctx context.Context, cfg *config.Settings, rep *status.RunReport) error {
	db, err := sqlite.NewSQLiteDriver(cfg.History.Location)
	if err != nil {
		return errors.Wrap(err, "opening history database")
	}
	store, err := history.NewStore(db)
	if err != nil {
		return err
	}
	return store.Save(ctx, rep)
}

// defaultSettings produces a settings object good enough for catalog
// listing, where no Azure access happens.
func defaultSettings() *config.Settings {
	cfg := &config.Settings{}
	if err := cfg.Diagnostics.Validate(); err != nil {
		logrus.WithError(err).Fatal("building default settings")
	}
	return cfg
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/MKhiriev/go-story-drafts/internal/client"
	"github.com/MKhiriev/go-story-drafts/internal/config"
	"github.com/MKhiriev/go-story-drafts/internal/logger"
	"github.com/MKhiriev/go-story-drafts/models"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type cli struct {
	flags *config.StructuredConfig
	info  models.AppBuildInfo
}

func newRootCmd(info models.AppBuildInfo) *cobra.Command {
	c := &cli{info: info}

	root := &cobra.Command{
		Use:   "drafts",
		Short: "Manage story drafts of an account",
		Long: `drafts inspects and edits the story drafts kept for an account.

Examples:
  drafts list
  drafts add ./photo.jpg --account work
  drafts delete 123456789
  drafts export backup.sdar && drafts import backup.sdar -a other`,
		SilenceUsage: true,
	}
	c.flags = config.BindFlags(root.PersistentFlags())

	root.AddCommand(
		c.versionCmd(),
		c.listCmd(),
		c.showCmd(),
		c.addCmd(),
		c.deleteCmd(),
		c.purgeCmd(),
		c.exportCmd(),
		c.importCmd(),
	)

	return root
}

// open builds the client of the configured account and starts it.
func (c *cli) open(cmd *cobra.Command) (*client.App, error) {
	cfg, err := config.GetDraftsConfig(c.flags)
	if err != nil {
		return nil, err
	}

	log := logger.NewClientLogger("drafts-cli", cfg.Logs.Dir)
	if level, err := zerolog.ParseLevel(cfg.Logs.Level); err == nil {
		zerolog.SetGlobalLevel(level)
	}
	log = &logger.Logger{Logger: log.With().Str("account", cfg.Account).Logger()}

	app, err := client.NewApp(cmd.Context(), cfg, log)
	if err != nil {
		return nil, fmt.Errorf("open drafts of %q: %w", cfg.Account, err)
	}
	app.Run()

	return app, nil
}

func (c *cli) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Build version: %s\n", c.info.BuildVersion())
			fmt.Fprintf(out, "Build date: %s\n", c.info.BuildDate())
			fmt.Fprintf(out, "Build commit: %s\n", c.info.BuildCommit())
		},
	}
}

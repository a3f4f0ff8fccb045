// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/MKhiriev/go-story-drafts/internal/archive"
	"github.com/MKhiriev/go-story-drafts/internal/client"
	"github.com/MKhiriev/go-story-drafts/internal/media"
	"github.com/MKhiriev/go-story-drafts/internal/service"
	"github.com/MKhiriev/go-story-drafts/models"
	"github.com/spf13/cobra"
)

// withApp opens the client, runs fn and closes the client, waiting for every
// storage write fn caused.
func (c *cli) withApp(cmd *cobra.Command, fn func(app *client.App) error) (err error) {
	app, err := c.open(cmd)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	return fn(app)
}

func (c *cli) listCmd() *cobra.Command {
	var failed bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List drafts, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withApp(cmd, func(app *client.App) error {
				var entries []models.StoryEntry
				if failed {
					app.Flush()
					entries = app.Failed()
				} else {
					app.Load()
					entries = app.Drafts().Drafts()
				}

				printEntries(cmd.OutOrStdout(), entries)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&failed, "failed", false, "List drafts whose upload failed instead")

	return cmd
}

func (c *cli) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print a draft as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			return c.withApp(cmd, func(app *client.App) error {
				app.Load()
				entry, err := app.Drafts().Find(id)
				if err != nil {
					return fmt.Errorf("draft %d: %w", id, err)
				}

				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(service.ToRecord(entry))
			})
		},
	}
}

func (c *cli) addCmd() *cobra.Command {
	var caption string

	cmd := &cobra.Command{
		Use:   "add <file>",
		Short: "Create a draft from a photo or video",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(args[0]); err != nil {
				return err
			}

			return c.withApp(cmd, func(app *client.App) error {
				entry := media.NewStoryEntry(args[0])
				entry.Caption = caption

				stored := app.Drafts().Append(entry)
				fmt.Fprintln(cmd.OutOrStdout(), stored.DraftID)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&caption, "caption", "", "Draft caption")

	return cmd
}

func (c *cli) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>...",
		Short: "Delete drafts and the files they own",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]int64, 0, len(args))
			for _, arg := range args {
				id, err := parseID(arg)
				if err != nil {
					return err
				}
				ids = append(ids, id)
			}

			return c.withApp(cmd, func(app *client.App) error {
				app.Load()

				entries := make([]models.StoryEntry, 0, len(ids))
				for _, id := range ids {
					entry, err := app.Drafts().Find(id)
					if err != nil {
						return fmt.Errorf("draft %d: %w", id, err)
					}
					entries = append(entries, entry)
				}

				app.Drafts().Delete(entries...)
				fmt.Fprintf(cmd.OutOrStdout(), "deleted %d draft(s)\n", len(entries))
				return nil
			})
		},
	}
}

func (c *cli) purgeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "purge",
		Short: "Delete expired drafts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withApp(cmd, func(app *client.App) error {
				app.Load()
				removed := app.Drafts().DeleteExpired()
				fmt.Fprintf(cmd.OutOrStdout(), "purged %d draft(s)\n", len(removed))
				return nil
			})
		},
	}
}

func (c *cli) exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Write every draft, failed ones included, to an archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withApp(cmd, func(app *client.App) error {
				app.Load()

				entries := append(app.Drafts().Drafts(), app.Failed()...)
				records := make([]models.DraftRecord, len(entries))
				for i, entry := range entries {
					records[i] = service.ToRecord(entry)
				}

				f, err := os.Create(args[0])
				if err != nil {
					return err
				}
				n, err := archive.Export(f, records)
				if closeErr := f.Close(); err == nil {
					err = closeErr
				}
				if err != nil {
					return fmt.Errorf("export drafts: %w", err)
				}

				fmt.Fprintf(cmd.OutOrStdout(), "exported %d draft(s)\n", n)
				return nil
			})
		},
	}
}

func (c *cli) importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Add the drafts of an archive as new drafts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			records, err := archive.Import(f)
			f.Close()
			if err != nil {
				return fmt.Errorf("import drafts: %w", err)
			}

			return c.withApp(cmd, func(app *client.App) error {
				for _, record := range records {
					entry := service.ToStoryEntry(record)
					entry.IsError = false
					entry.Error = nil
					// archived media is shared with the source account
					entry.FileDeletable = false
					app.Drafts().Append(entry)
				}

				fmt.Fprintf(cmd.OutOrStdout(), "imported %d draft(s)\n", len(records))
				return nil
			})
		},
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid draft id %q: %w", s, err)
	}
	return id, nil
}

func printEntries(w io.Writer, entries []models.StoryEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "no drafts")
		return
	}

	for _, entry := range entries {
		kind := "photo"
		if entry.IsVideo {
			kind = "video"
		}
		if entry.IsEdit {
			kind += fmt.Sprintf(" edit:%d", entry.EditStoryID)
		}

		fmt.Fprintf(w, "%d\t%s\t%s\t%q\n",
			entry.DraftID,
			entry.DraftDate.Format(time.DateTime),
			kind,
			entry.Caption,
		)
	}
}

package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/tally/internal/ports/primary"
	"github.com/example/tally/internal/wire"
)

// EntryCmd returns the entry command group for the owner-side workflow.
func EntryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entry",
		Short: "Manage your time entries",
		Long:  "Save drafts, edit them, and move them through the review workflow",
	}
	addIdentityFlag(cmd)

	cmd.AddCommand(entrySaveCmd())
	cmd.AddCommand(entryUpdateCmd())
	cmd.AddCommand(entryDeleteCmd())
	cmd.AddCommand(entryListCmd())
	cmd.AddCommand(entrySubmitCmd())
	cmd.AddCommand(entryResubmitCmd())
	return cmd
}

func entrySaveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Create or overwrite a draft entry",
		Long: `Save a draft for one date/task slot. Saving the same slot again
replaces the earlier draft instead of stacking hours on top of it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			owner, err := callerID(cmd)
			if err != nil {
				return err
			}
			period, _ := cmd.Flags().GetString("period")
			task, _ := cmd.Flags().GetString("task")
			project, _ := cmd.Flags().GetString("project")
			date, _ := cmd.Flags().GetString("date")
			hours, _ := cmd.Flags().GetFloat64("hours")
			description, _ := cmd.Flags().GetString("description")

			return wire.EntryAdapter().Save(ctx, primary.SaveDraftRequest{
				OwnerID:     owner,
				PeriodID:    period,
				Task:        task,
				ProjectID:   project,
				Date:        date,
				Quantity:    hours,
				Description: description,
			})
		},
	}
	cmd.Flags().String("period", "", "Period ID (e.g. PER-2024-06)")
	cmd.Flags().String("task", "", "Task description")
	cmd.Flags().String("project", "", "Project ID (optional)")
	cmd.Flags().String("date", "", "Entry date (YYYY-MM-DD)")
	cmd.Flags().Float64("hours", 0, "Hours worked")
	cmd.Flags().String("description", "", "Free-form note")
	cmd.MarkFlagRequired("period")
	cmd.MarkFlagRequired("task")
	cmd.MarkFlagRequired("date")
	cmd.MarkFlagRequired("hours")
	return cmd
}

func entryUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [entry-id]",
		Short: "Edit a draft or rejected entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			owner, err := callerID(cmd)
			if err != nil {
				return err
			}
			hours, _ := cmd.Flags().GetFloat64("hours")
			description, _ := cmd.Flags().GetString("description")

			return wire.EntryAdapter().Update(ctx, primary.UpdateEntryRequest{
				OwnerID:     owner,
				EntryID:     args[0],
				Quantity:    hours,
				Description: description,
			})
		},
	}
	cmd.Flags().Float64("hours", 0, "Hours worked")
	cmd.Flags().String("description", "", "Free-form note")
	cmd.MarkFlagRequired("hours")
	return cmd
}

func entryDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [entry-id]",
		Short: "Delete a draft entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			owner, err := callerID(cmd)
			if err != nil {
				return err
			}
			return wire.EntryAdapter().Delete(ctx, owner, args[0])
		},
	}
}

func entryListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your entries in a period",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			owner, err := callerID(cmd)
			if err != nil {
				return err
			}
			period, _ := cmd.Flags().GetString("period")
			status, _ := cmd.Flags().GetString("status")

			return wire.EntryAdapter().List(ctx, primary.EntryFilters{
				OwnerID:  owner,
				PeriodID: period,
				Statuses: splitStatuses(status),
			})
		},
	}
	cmd.Flags().String("period", "", "Period ID (e.g. PER-2024-06)")
	cmd.Flags().String("status", "", "Comma-separated status filter (draft,submitted,approved,rejected)")
	cmd.MarkFlagRequired("period")
	return cmd
}

func entrySubmitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit [entry-id...]",
		Short: "Submit drafts for review",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			owner, err := callerID(cmd)
			if err != nil {
				return err
			}
			period, _ := cmd.Flags().GetString("period")
			return wire.EntryAdapter().Submit(ctx, primary.BatchRequest{
				OwnerID:  owner,
				PeriodID: period,
				EntryIDs: args,
			})
		},
	}
	cmd.Flags().String("period", "", "Period ID (e.g. PER-2024-06)")
	return cmd
}

func entryResubmitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resubmit [entry-id...]",
		Short: "Send rejected entries back for review",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			owner, err := callerID(cmd)
			if err != nil {
				return err
			}
			period, _ := cmd.Flags().GetString("period")
			return wire.EntryAdapter().Resubmit(ctx, primary.BatchRequest{
				OwnerID:  owner,
				PeriodID: period,
				EntryIDs: args,
			})
		},
	}
	cmd.Flags().String("period", "", "Period ID (e.g. PER-2024-06)")
	return cmd
}

func splitStatuses(s string) []string {
	if s == "" {
		return nil
	}
	var statuses []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			statuses = append(statuses, part)
		}
	}
	return statuses
}

package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/tally/internal/ports/primary"
	"github.com/example/tally/internal/wire"
)

// ReviewCmd returns the review command group for managers and admins.
func ReviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "review",
		Short: "Review submitted entries",
		Long:  "List the review queue and approve or reject submitted entries",
	}
	addIdentityFlag(cmd)

	cmd.AddCommand(reviewQueueCmd())
	cmd.AddCommand(reviewApproveCmd())
	cmd.AddCommand(reviewRejectCmd())
	return cmd
}

func reviewQueueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "queue",
		Short: "List entries waiting for your review",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			reviewer, err := callerID(cmd)
			if err != nil {
				return err
			}
			period, _ := cmd.Flags().GetString("period")
			status, _ := cmd.Flags().GetString("status")

			return wire.ReviewAdapter().Queue(ctx, primary.ReviewFilters{
				ReviewerID: reviewer,
				PeriodID:   period,
				Statuses:   splitStatuses(status),
			})
		},
	}
	cmd.Flags().String("period", "", "Period ID (e.g. PER-2024-06)")
	cmd.Flags().String("status", "", "Comma-separated status filter (defaults to submitted)")
	cmd.MarkFlagRequired("period")
	return cmd
}

func reviewApproveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "approve [entry-id...]",
		Short: "Approve submitted entries",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			reviewer, err := callerID(cmd)
			if err != nil {
				return err
			}
			return wire.ReviewAdapter().Approve(ctx, reviewer, args)
		},
	}
}

func reviewRejectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reject [entry-id...]",
		Short: "Reject submitted entries with a reason",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			reviewer, err := callerID(cmd)
			if err != nil {
				return err
			}
			reason, _ := cmd.Flags().GetString("reason")
			return wire.ReviewAdapter().Reject(ctx, reviewer, args, reason)
		},
	}
	cmd.Flags().String("reason", "", "Why the entries are rejected (required)")
	cmd.MarkFlagRequired("reason")
	return cmd
}

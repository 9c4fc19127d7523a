package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/readtrack-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/readtrack-backend/internal/config"
	"github.com/heartmarshall/readtrack-backend/internal/domain"
)

// promoteCommand sets a user's role to admin by email address. It is used
// to bootstrap the first moderator.
func promoteCommand(opts *rootOptions) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "promote",
		Short: "Grant the admin role to a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withPool(cmd.Context(), func(ctx context.Context, _ *config.Config, pool *pgxpool.Pool) error {
				users := user.New(pool)

				u, err := users.GetByEmail(ctx, email)
				if err != nil {
					return fmt.Errorf("find user %q: %w", email, err)
				}
				if u.Role.IsAdmin() {
					fmt.Fprintf(cmd.OutOrStdout(), "User %q is already admin.\n", email)
					return nil
				}

				if err := users.SetRole(ctx, u.ID, domain.UserRoleAdmin); err != nil {
					return fmt.Errorf("update role: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "User %q promoted to admin.\n", email)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email of user to promote to admin")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/readtrack-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/readtrack-backend/internal/auth"
	"github.com/heartmarshall/readtrack-backend/internal/config"
)

// tokenCommand mints an access token for an existing user, carrying the role
// stored in the database. Useful for local testing without the identity
// service.
func tokenCommand(opts *rootOptions) *cobra.Command {
	var rawID string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an access token for a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := uuid.Parse(rawID)
			if err != nil {
				return fmt.Errorf("invalid --user-id: %w", err)
			}

			return opts.withPool(cmd.Context(), func(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool) error {
				u, err := user.New(pool).GetByID(ctx, id)
				if err != nil {
					return fmt.Errorf("find user %s: %w", id, err)
				}

				tok, err := auth.NewJWTManagerFromConfig(cfg.Auth).GenerateAccessToken(u.ID, u.Role.String())
				if err != nil {
					return fmt.Errorf("sign token: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), tok)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&rawID, "user-id", "", "id of the user the token is issued for")
	_ = cmd.MarkFlagRequired("user-id")
	return cmd
}

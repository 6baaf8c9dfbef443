package main

import (
	"fmt"
	"os"

	"rentflow/config"
	"rentflow/internal/errors"
	"rentflow/internal/infra/auth"
	"rentflow/internal/infra/persistence/model"
	"rentflow/internal/infra/qrcode"

	"github.com/google/uuid"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the contract tables",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.New()
			if err != nil {
				return err
			}
			if cfg.Postgres == nil {
				return errors.New("postgres configuration is missing")
			}

			db, err := pgLib.New(cfg.Postgres)
			if err != nil {
				return errors.Wrap(err, "failed to connect to PostgreSQL")
			}

			if err := db.WithContext(cmd.Context()).AutoMigrate(model.AllModels()...); err != nil {
				return errors.Wrap(err, "failed to migrate")
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migration complete")

			return nil
		},
	}
}

func tokenCmd() *cobra.Command {
	var (
		userID    string
		roles     []string
		buildings []string
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an access token for local testing",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.New()
			if err != nil {
				return err
			}

			subject, err := uuid.Parse(userID)
			if err != nil {
				return errors.Wrap(err, "invalid --user")
			}
			buildingIDs, err := parseUUIDs(buildings)
			if err != nil {
				return errors.Wrap(err, "invalid --building")
			}

			tokens, err := auth.NewJWTService(cfg)
			if err != nil {
				return err
			}
			token, err := tokens.GenerateAccessToken(subject, roles, buildingIDs)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)

			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "subject user id")
	cmd.Flags().StringSliceVar(&roles, "role", []string{"landlord"}, "granted roles")
	cmd.Flags().StringSliceVar(&buildings, "building", nil, "assigned building ids for staff")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func qrCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "qr <contract-id>",
		Short: "Render the share QR code of a contract as PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New()
			if err != nil {
				return err
			}

			contractID, err := uuid.Parse(args[0])
			if err != nil {
				return errors.Wrap(err, "invalid contract id")
			}

			png, err := qrcode.New(cfg).GenerateContractQR(contractID)
			if err != nil {
				return err
			}

			if output == "" {
				output = contractID.String() + ".png"
			}
			if err := os.WriteFile(output, png, 0o600); err != nil {
				return errors.Wrap(err, "failed to write QR code")
			}
			fmt.Fprintln(cmd.OutOrStdout(), output)

			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, defaults to <contract-id>.png")

	return cmd
}

func parseUUIDs(values []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(values))
	for _, v := range values {
		id, err := uuid.Parse(v)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}

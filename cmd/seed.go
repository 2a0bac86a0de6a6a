package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Harish050696/cardvault/internal/config"
	"github.com/Harish050696/cardvault/internal/logger"
	"github.com/Harish050696/cardvault/internal/repository/postgres"
	"github.com/Harish050696/cardvault/internal/service"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Provision the configured bootstrap users and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.NewConfig()
		if err != nil {
			return err
		}
		logger := logger.New(cfg.LogLevel)

		seedUsers, err := cfg.Seed.ParseUsers()
		if err != nil {
			return err
		}

		db, err := postgres.NewConnection(cmd.Context(), cfg.Database.DSN)
		if err != nil {
			return err
		}
		defer db.Close()

		authService := service.NewAuth(postgres.NewUserRepository(db), logger)
		return authService.Seed(cmd.Context(), seedUsers)
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

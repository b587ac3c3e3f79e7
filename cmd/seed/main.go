package main

import (
	"fmt"
	"os"

	"foodgram/database"
	"foodgram/internal/config"
	"foodgram/internal/logging"
	"foodgram/internal/repository"
	"foodgram/internal/utils"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "seed",
	Short:         "Database utility tool for Foodgram",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// connect loads the configuration, opens the database and runs migrations
// so the tool works against an empty database.
func connect() (*config.AppConfig, *gorm.DB, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	logging.Init(logging.Config{Level: cfg.Log.Level, Format: "console"})

	db, err := database.ConnectDatabase(cfg.DB)
	if err != nil {
		return nil, nil, err
	}
	if err := database.MigrateDatabase(db); err != nil {
		return nil, nil, err
	}
	return cfg, db, nil
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

var loadIngredientsCmd = &cobra.Command{
	Use:   "load-ingredients",
	Short: "Load ingredients from a JSON fixture",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("file")
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer f.Close()

		_, db, err := connect()
		if err != nil {
			return err
		}
		defer closeDB(db)

		repo := repository.NewIngredientRepository(db, nil, 0)
		added, err := utils.LoadIngredients(cmd.Context(), repo, f)
		if err != nil {
			return err
		}
		logging.Info().Int64("added", added).Str("file", path).Msg("Ingredients loaded")
		return nil
	},
}

var loadTagsCmd = &cobra.Command{
	Use:   "load-tags",
	Short: "Load tags from a JSON fixture",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("file")
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer f.Close()

		_, db, err := connect()
		if err != nil {
			return err
		}
		defer closeDB(db)

		repo := repository.NewTagRepository(db, nil, 0)
		created, err := utils.LoadTags(cmd.Context(), repo, f)
		if err != nil {
			return err
		}
		logging.Info().Int("created", created).Str("file", path).Msg("Tags loaded")
		return nil
	},
}

var adminParams utils.AdminParams

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create a user with the admin role",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, err := connect()
		if err != nil {
			return err
		}
		defer closeDB(db)

		admin, err := utils.CreateAdmin(cmd.Context(), repository.NewUserRepository(db), adminParams)
		if err != nil {
			return err
		}
		logging.Info().Uint("user_id", admin.ID).Str("username", admin.Username).Msg("Admin created")
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config.yaml")

	loadIngredientsCmd.Flags().String("file", "data/ingredients.json", "JSON array of {name, measurement_unit}")
	loadTagsCmd.Flags().String("file", "data/tags.json", "JSON array of {name, color, slug}")

	createAdminCmd.Flags().StringVar(&adminParams.Email, "email", "", "Admin email")
	createAdminCmd.Flags().StringVar(&adminParams.Username, "username", "", "Admin username")
	createAdminCmd.Flags().StringVar(&adminParams.Password, "password", "", "Admin password")
	createAdminCmd.Flags().StringVar(&adminParams.FirstName, "first-name", "", "Admin first name")
	createAdminCmd.Flags().StringVar(&adminParams.LastName, "last-name", "", "Admin last name")
	_ = createAdminCmd.MarkFlagRequired("email")
	_ = createAdminCmd.MarkFlagRequired("username")
	_ = createAdminCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(loadIngredientsCmd, loadTagsCmd, createAdminCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logging.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}

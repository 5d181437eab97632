/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/ssargent/hoteldb/pkg/config"
	"github.com/ssargent/hoteldb/pkg/hotel"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hoteldb",
	Short: "HotelDB - Hotel Key Card Management",
	Long: `HotelDB manages rooms, guests, stays and key cards, persisted in
fixed-length binary record files with soft deletes and linear scans.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		dataDir, _ := cmd.Flags().GetString("data-dir")
		reportDir, _ := cmd.Flags().GetString("report-dir")

		// A config file, when present, provides the defaults; explicit
		// flags win.
		configPath, _ := cmd.Flags().GetString("config")
		if configPath == "" {
			configPath = config.GetDefaultConfigPath()
		}
		if config.ConfigExists(configPath) {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if !cmd.Flags().Changed("data-dir") {
				dataDir = cfg.DataDir
			}
			if !cmd.Flags().Changed("report-dir") {
				reportDir = cfg.ReportDir
			}
		}

		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return fmt.Errorf("failed to create data dir: %w", err)
		}
		svc, err := hotel.NewService(hotel.Config{DataDir: dataDir, ReportDir: reportDir})
		if err != nil {
			return fmt.Errorf("failed to open record stores: %w", err)
		}
		// Store in command context
		cmd.SetContext(context.WithValue(cmd.Context(), "service", svc))
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("data-dir", "d", "./data", "Data directory for the record files")
	rootCmd.PersistentFlags().String("report-dir", "./reports", "Directory for generated reports")
	rootCmd.PersistentFlags().String("config", "", "Config file path (default ~/.config/hoteldb/config.yaml)")
}

// serviceFromContext pulls the opened domain service out of the command
// context.
func serviceFromContext(cmd *cobra.Command) (*hotel.Service, bool) {
	svc, ok := cmd.Context().Value("service").(*hotel.Service)
	return svc, ok
}

// parseRecordID parses a record id argument.
func parseRecordID(arg string) (uint32, error) {
	id, err := strconv.ParseUint(arg, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return uint32(id), nil
}

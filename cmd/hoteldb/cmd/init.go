/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ssargent/hoteldb/pkg/config"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize HotelDB for local use",
	Long: `Initialize HotelDB configuration for local use.

This command will:
- Create the data and report directories
- Write a config file with a freshly generated API key

Examples:
  hoteldb init
  hoteldb init --data-dir=./data --report-dir=./reports --config=./hoteldb.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		dataDir, _ := cmd.Flags().GetString("data-dir")
		reportDir, _ := cmd.Flags().GetString("report-dir")
		force, _ := cmd.Flags().GetBool("force")

		configPath, _ := cmd.Flags().GetString("config")
		if configPath == "" {
			configPath = config.GetDefaultConfigPath()
		}

		if config.ConfigExists(configPath) && !force {
			cmd.Printf("Config already exists at %s. Use --force to overwrite.\n", configPath)
			return
		}

		cmd.Printf("Initializing HotelDB...\n")
		cmd.Printf("Data directory  : %s\n", dataDir)
		cmd.Printf("Report directory: %s\n", reportDir)

		cfg, err := config.BootstrapConfig(configPath, dataDir, reportDir)
		if err != nil {
			cmd.Printf("Error writing config: %v\n", err)
			os.Exit(1)
		}

		cmd.Printf("Config written to %s\n", configPath)
		cmd.Printf("API key: %s\n", cfg.Security.APIKey)
		cmd.Printf("\nYou can now start the server with:\n")
		cmd.Printf("  hoteldb serve --config=%s\n", configPath)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "Overwrite an existing config file")
}

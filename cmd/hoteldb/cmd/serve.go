/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ssargent/hoteldb/pkg/api"
	"github.com/ssargent/hoteldb/pkg/config"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start the HotelDB REST API server.

All /api/v1 routes require the X-API-Key header; /metrics is left open
for Prometheus scraping.

Examples:
  hoteldb serve --api-key=mysecretkey --port=8080
  hoteldb serve --api-key=mysecretkey --data-dir=./data --seed`,
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetInt("port")
		bind, _ := cmd.Flags().GetString("bind")
		apiKey, _ := cmd.Flags().GetString("api-key")
		seed, _ := cmd.Flags().GetBool("seed")

		// Fall back to the config file's key when the flag is absent.
		if apiKey == "" {
			configPath, _ := cmd.Flags().GetString("config")
			if configPath == "" {
				configPath = config.GetDefaultConfigPath()
			}
			if config.ConfigExists(configPath) {
				cfg, err := config.LoadConfig(configPath)
				if err == nil && cfg.Security.APIKey != "auto" {
					apiKey = cfg.Security.APIKey
				}
			}
		}
		if apiKey == "" {
			cmd.Println("Error: --api-key is required (or run 'hoteldb init' first)")
			return
		}

		svc, ok := serviceFromContext(cmd)
		if !ok {
			cmd.Println("Error: service not found in context")
			return
		}

		if seed {
			if err := svc.SeedDemo(); err != nil {
				cmd.Printf("Error seeding demo data: %v\n", err)
				return
			}
			cmd.Println("Seeded demo rooms, guests and stays")
		}

		serverConfig := api.ServerConfig{
			Port:   port,
			Bind:   bind,
			APIKey: apiKey,
		}

		if err := api.StartServer(svc, serverConfig); err != nil {
			cmd.Printf("Error starting server: %v\n", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on")
	serveCmd.Flags().String("bind", "127.0.0.1", "Bind address")
	serveCmd.Flags().String("api-key", "", "API key for authentication")
	serveCmd.Flags().Bool("seed", false, "Seed demo data before serving")
}

package cmd

import (
	"github.com/spf13/cobra"
)

// seedCmd represents the seed command
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed demo data",
	Long: `Seed a small demo data set: three rooms, two guests and one open
stay with issued key cards. Stores that already hold records are left
alone.`,
	Run: func(cmd *cobra.Command, args []string) {
		svc, ok := serviceFromContext(cmd)
		if !ok {
			cmd.Println("Error: service not found in context")
			return
		}

		if err := svc.SeedDemo(); err != nil {
			cmd.Printf("Error seeding demo data: %v\n", err)
			return
		}
		cmd.Println("Seeded demo rooms, guests and stays")
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

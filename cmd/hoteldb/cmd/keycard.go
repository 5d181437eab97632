package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ssargent/hoteldb/pkg/codec"
)

// keycardCmd groups the key card subcommands
var keycardCmd = &cobra.Command{
	Use:   "keycard",
	Short: "Manage key cards",
}

var keycardListCmd = &cobra.Command{
	Use:   "list",
	Short: "List key cards",
	Run: func(cmd *cobra.Command, args []string) {
		includeDeleted, _ := cmd.Flags().GetBool("include-deleted")
		roomID, _ := cmd.Flags().GetUint32("room")

		svc, ok := serviceFromContext(cmd)
		if !ok {
			cmd.Println("Error: service not found in context")
			return
		}

		var cards []codec.Keycard
		var err error
		if cmd.Flags().Changed("room") {
			cards, err = svc.KeycardsByRoom(roomID)
		} else {
			cards, err = svc.Keycards(includeDeleted)
		}
		if err != nil {
			cmd.Printf("Error listing key cards: %v\n", err)
			return
		}
		for _, card := range cards {
			cmd.Printf("keycard %d: room=%d serial=%s status=%d\n",
				card.ID, card.RoomID, card.Serial, card.Status)
		}
		cmd.Printf("%d key card(s)\n", len(cards))
	},
}

var keycardDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Revoke a key card",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := parseRecordID(args[0])
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}

		svc, ok := serviceFromContext(cmd)
		if !ok {
			cmd.Println("Error: service not found in context")
			return
		}

		if err := svc.DeleteKeycard(id); err != nil {
			cmd.Printf("Error deleting key card: %v\n", err)
			return
		}
		cmd.Printf("Deleted key card %d\n", id)
	},
}

func init() {
	rootCmd.AddCommand(keycardCmd)
	keycardCmd.AddCommand(keycardListCmd, keycardDeleteCmd)

	keycardListCmd.Flags().Bool("include-deleted", false, "Include revoked key cards")
	keycardListCmd.Flags().Uint32("room", 0, "List active cards for one room")
}

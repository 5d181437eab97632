package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/ssargent/hoteldb/pkg/codec"
)

// stayCmd groups the stay subcommands
var stayCmd = &cobra.Command{
	Use:   "stay",
	Short: "Manage stays",
}

var checkinCmd = &cobra.Command{
	Use:   "checkin",
	Short: "Check a guest into a room",
	Long: `Check a guest into a vacant room, open a stay and issue key cards.

The check-in is refused when the room is occupied, when either party is
missing, or when more cards are requested than the room allows.

Example:
  hoteldb stay checkin --guest=1 --room=2 --cards=2`,
	Run: func(cmd *cobra.Command, args []string) {
		guestID, _ := cmd.Flags().GetUint32("guest")
		roomID, _ := cmd.Flags().GetUint32("room")
		cards, _ := cmd.Flags().GetUint32("cards")
		date, _ := cmd.Flags().GetString("date")
		if date == "" {
			date = time.Now().Format("2006-01-02")
		}

		svc, ok := serviceFromContext(cmd)
		if !ok {
			cmd.Println("Error: service not found in context")
			return
		}

		stay, err := svc.Checkin(guestID, roomID, date, cards)
		if err != nil {
			cmd.Printf("Error checking in: %v\n", err)
			return
		}
		cmd.Printf("Opened stay %d: guest %d in room %d, %d card(s) issued\n",
			stay.ID, stay.GuestID, stay.RoomID, stay.CardsIssued)
	},
}

var checkoutCmd = &cobra.Command{
	Use:   "checkout <stay-id>",
	Short: "Check a guest out",
	Long: `Close an open stay: record the checkout date, revoke the room's
key cards and mark the room vacant.

Example:
  hoteldb stay checkout 1`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := parseRecordID(args[0])
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}
		date, _ := cmd.Flags().GetString("date")
		if date == "" {
			date = time.Now().Format("2006-01-02")
		}

		svc, ok := serviceFromContext(cmd)
		if !ok {
			cmd.Println("Error: service not found in context")
			return
		}

		if err := svc.Checkout(id, date); err != nil {
			cmd.Printf("Error checking out: %v\n", err)
			return
		}
		cmd.Printf("Closed stay %d on %s\n", id, date)
	},
}

var stayListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stays",
	Run: func(cmd *cobra.Command, args []string) {
		includeDeleted, _ := cmd.Flags().GetBool("include-deleted")

		svc, ok := serviceFromContext(cmd)
		if !ok {
			cmd.Println("Error: service not found in context")
			return
		}

		stays, err := svc.Stays(includeDeleted)
		if err != nil {
			cmd.Printf("Error listing stays: %v\n", err)
			return
		}
		for _, stay := range stays {
			printStay(cmd, stay)
		}
		cmd.Printf("%d stay(s)\n", len(stays))
	},
}

var stayDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Soft-delete a stay record",
	Long: `Soft-delete a stay record. The room and its key cards are left
untouched; use checkout to close an open stay properly.`,
	Args: cobra.ExactArgs(1),
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

		if err := svc.DeleteStay(id); err != nil {
			cmd.Printf("Error deleting stay: %v\n", err)
			return
		}
		cmd.Printf("Deleted stay %d\n", id)
	},
}

func printStay(cmd *cobra.Command, stay codec.Stay) {
	state := "closed"
	switch stay.Status {
	case codec.StayOpen:
		state = "open"
	case codec.StayDeleted:
		state = "deleted"
	}
	cmd.Printf("stay %d: guest=%d room=%d checkin=%s checkout=%s cards=%d/%d state=%s\n",
		stay.ID, stay.GuestID, stay.RoomID, stay.CheckinDate, stay.CheckoutDate,
		stay.CardsReturned, stay.CardsIssued, state)
}

func init() {
	rootCmd.AddCommand(stayCmd)
	stayCmd.AddCommand(checkinCmd, checkoutCmd, stayListCmd, stayDeleteCmd)

	checkinCmd.Flags().Uint32("guest", 0, "Guest id")
	checkinCmd.Flags().Uint32("room", 0, "Room id")
	checkinCmd.Flags().Uint32("cards", 1, "Number of key cards to issue")
	checkinCmd.Flags().String("date", "", "Check-in date (YYYY-MM-DD, default today)")
	if err := checkinCmd.MarkFlagRequired("guest"); err != nil {
		panic(err)
	}
	if err := checkinCmd.MarkFlagRequired("room"); err != nil {
		panic(err)
	}

	checkoutCmd.Flags().String("date", "", "Checkout date (YYYY-MM-DD, default today)")

	stayListCmd.Flags().Bool("include-deleted", false, "Include soft-deleted stays")
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ssargent/hoteldb/pkg/codec"
	"github.com/ssargent/hoteldb/pkg/hotel"
)

// guestCmd groups the guest subcommands
var guestCmd = &cobra.Command{
	Use:   "guest",
	Short: "Manage guests",
}

var guestAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a guest",
	Long: `Add a guest record.

Example:
  hoteldb guest add --name="John Smith" --phone=555-0100 --id-no=AB123456`,
	Run: func(cmd *cobra.Command, args []string) {
		name, _ := cmd.Flags().GetString("name")
		phone, _ := cmd.Flags().GetString("phone")
		idNo, _ := cmd.Flags().GetString("id-no")

		svc, ok := serviceFromContext(cmd)
		if !ok {
			cmd.Println("Error: service not found in context")
			return
		}

		guest, err := svc.AddGuest(name, phone, idNo)
		if err != nil {
			cmd.Printf("Error adding guest: %v\n", err)
			return
		}
		cmd.Printf("Added guest %d (%s)\n", guest.ID, guest.FullName)
	},
}

var guestListCmd = &cobra.Command{
	Use:   "list",
	Short: "List guests",
	Run: func(cmd *cobra.Command, args []string) {
		includeDeleted, _ := cmd.Flags().GetBool("include-deleted")

		svc, ok := serviceFromContext(cmd)
		if !ok {
			cmd.Println("Error: service not found in context")
			return
		}

		guests, err := svc.Guests(includeDeleted)
		if err != nil {
			cmd.Printf("Error listing guests: %v\n", err)
			return
		}
		for _, guest := range guests {
			printGuest(cmd, guest)
		}
		cmd.Printf("%d guest(s)\n", len(guests))
	},
}

var guestGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one guest",
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

		guest, err := svc.Guest(id)
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}
		printGuest(cmd, guest)
	},
}

var guestUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a guest",
	Long: `Update a guest record. Only the provided flags change.

Example:
  hoteldb guest update 2 --phone=555-0199`,
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

		var upd hotel.GuestUpdate
		if cmd.Flags().Changed("name") {
			v, _ := cmd.Flags().GetString("name")
			upd.FullName = &v
		}
		if cmd.Flags().Changed("phone") {
			v, _ := cmd.Flags().GetString("phone")
			upd.Phone = &v
		}
		if cmd.Flags().Changed("id-no") {
			v, _ := cmd.Flags().GetString("id-no")
			upd.IDNo = &v
		}

		guest, err := svc.UpdateGuest(id, upd)
		if err != nil {
			cmd.Printf("Error updating guest: %v\n", err)
			return
		}
		printGuest(cmd, guest)
	},
}

var guestDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Soft-delete a guest",
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

		if err := svc.DeleteGuest(id); err != nil {
			cmd.Printf("Error deleting guest: %v\n", err)
			return
		}
		cmd.Printf("Deleted guest %d\n", id)
	},
}

func printGuest(cmd *cobra.Command, guest codec.Guest) {
	cmd.Printf("guest %d: name=%q phone=%s id_no=%s status=%d\n",
		guest.ID, guest.FullName, guest.Phone, guest.IDNo, guest.Status)
}

func init() {
	rootCmd.AddCommand(guestCmd)
	guestCmd.AddCommand(guestAddCmd, guestListCmd, guestGetCmd, guestUpdateCmd, guestDeleteCmd)

	guestAddCmd.Flags().String("name", "", "Guest full name")
	guestAddCmd.Flags().String("phone", "", "Phone number")
	guestAddCmd.Flags().String("id-no", "", "Identity document number")

	guestListCmd.Flags().Bool("include-deleted", false, "Include soft-deleted guests")

	guestUpdateCmd.Flags().String("name", "", "Guest full name")
	guestUpdateCmd.Flags().String("phone", "", "Phone number")
	guestUpdateCmd.Flags().String("id-no", "", "Identity document number")
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ssargent/hoteldb/pkg/codec"
	"github.com/ssargent/hoteldb/pkg/hotel"
)

// roomCmd groups the room subcommands
var roomCmd = &cobra.Command{
	Use:   "room",
	Short: "Manage rooms",
}

var roomAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a room",
	Long: `Add a room record.

Example:
  hoteldb room add --type=DELUXE --floor=5 --capacity=3 --max-cards=3`,
	Run: func(cmd *cobra.Command, args []string) {
		roomType, _ := cmd.Flags().GetString("type")
		floor, _ := cmd.Flags().GetUint32("floor")
		capacity, _ := cmd.Flags().GetUint32("capacity")
		maxCards, _ := cmd.Flags().GetUint32("max-cards")

		svc, ok := serviceFromContext(cmd)
		if !ok {
			cmd.Println("Error: service not found in context")
			return
		}

		room, err := svc.AddRoom(roomType, floor, capacity, maxCards)
		if err != nil {
			cmd.Printf("Error adding room: %v\n", err)
			return
		}
		cmd.Printf("Added room %d (%s, floor %d)\n", room.ID, room.Type, room.Floor)
	},
}

var roomListCmd = &cobra.Command{
	Use:   "list",
	Short: "List rooms",
	Run: func(cmd *cobra.Command, args []string) {
		includeDeleted, _ := cmd.Flags().GetBool("include-deleted")

		svc, ok := serviceFromContext(cmd)
		if !ok {
			cmd.Println("Error: service not found in context")
			return
		}

		rooms, err := svc.Rooms(includeDeleted)
		if err != nil {
			cmd.Printf("Error listing rooms: %v\n", err)
			return
		}
		for _, room := range rooms {
			printRoom(cmd, room)
		}
		cmd.Printf("%d room(s)\n", len(rooms))
	},
}

var roomGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one room",
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

		room, err := svc.Room(id)
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}
		printRoom(cmd, room)
	},
}

var roomUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a room",
	Long: `Update a room record. Only the provided flags change; the rest of
the record is left as stored.

Example:
  hoteldb room update 3 --floor=7`,
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

		var upd hotel.RoomUpdate
		if cmd.Flags().Changed("type") {
			v, _ := cmd.Flags().GetString("type")
			upd.Type = &v
		}
		if cmd.Flags().Changed("floor") {
			v, _ := cmd.Flags().GetUint32("floor")
			upd.Floor = &v
		}
		if cmd.Flags().Changed("capacity") {
			v, _ := cmd.Flags().GetUint32("capacity")
			upd.Capacity = &v
		}
		if cmd.Flags().Changed("max-cards") {
			v, _ := cmd.Flags().GetUint32("max-cards")
			upd.MaxCards = &v
		}

		room, err := svc.UpdateRoom(id, upd)
		if err != nil {
			cmd.Printf("Error updating room: %v\n", err)
			return
		}
		printRoom(cmd, room)
	},
}

var roomDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Soft-delete a room",
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

		if err := svc.DeleteRoom(id); err != nil {
			cmd.Printf("Error deleting room: %v\n", err)
			return
		}
		cmd.Printf("Deleted room %d\n", id)
	},
}

func printRoom(cmd *cobra.Command, room codec.Room) {
	cmd.Printf("room %d: type=%s floor=%d capacity=%d max_cards=%d status=%s\n",
		room.ID, room.Type, room.Floor, room.Capacity, room.MaxCards, room.StatusText())
}

func init() {
	rootCmd.AddCommand(roomCmd)
	roomCmd.AddCommand(roomAddCmd, roomListCmd, roomGetCmd, roomUpdateCmd, roomDeleteCmd)

	roomAddCmd.Flags().String("type", "STD", "Room type code")
	roomAddCmd.Flags().Uint32("floor", 1, "Floor number")
	roomAddCmd.Flags().Uint32("capacity", 2, "Guest capacity")
	roomAddCmd.Flags().Uint32("max-cards", 2, "Maximum key cards issued at once")

	roomListCmd.Flags().Bool("include-deleted", false, "Include soft-deleted rooms")

	roomUpdateCmd.Flags().String("type", "", "Room type code")
	roomUpdateCmd.Flags().Uint32("floor", 0, "Floor number")
	roomUpdateCmd.Flags().Uint32("capacity", 0, "Guest capacity")
	roomUpdateCmd.Flags().Uint32("max-cards", 0, "Maximum key cards issued at once")
}

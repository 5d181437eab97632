// Package report renders the hotel summary report: a derived, regenerable
// text artifact projected from the domain service's query methods. It holds
// no state of its own.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/segmentio/ksuid"

	"github.com/ssargent/hoteldb/pkg/codec"
	"github.com/ssargent/hoteldb/pkg/hotel"
)

const (
	appVersion = "1.0"
	endianness = "Little-Endian"
	encoding   = "UTF-8 (fixed-length)"

	// FileName is the report file written into the configured report
	// directory.
	FileName = "hotel_report.txt"
)

// Report builds the summary report from a domain service.
type Report struct {
	svc *hotel.Service
}

// New creates a report builder over svc.
func New(svc *hotel.Service) *Report {
	return &Report{svc: svc}
}

// RoomRow is one annotated line of the rooms table.
type RoomRow struct {
	Room        codec.Room
	GuestName   string // guest of the open stay, if any
	ActiveCards int
}

// roomRows joins rooms with their open stay's guest and active keycard
// count. Linear scans throughout, like every query in the system.
func (r *Report) roomRows(rooms []codec.Room) ([]RoomRow, error) {
	stays, err := r.svc.Stays(false)
	if err != nil {
		return nil, err
	}
	guests, err := r.svc.Guests(true)
	if err != nil {
		return nil, err
	}
	cards, err := r.svc.Keycards(false)
	if err != nil {
		return nil, err
	}

	guestNames := make(map[uint32]string, len(guests))
	for _, g := range guests {
		guestNames[g.ID] = g.FullName
	}
	openGuest := make(map[uint32]uint32)
	for _, st := range stays {
		if st.Status == codec.StayOpen {
			openGuest[st.RoomID] = st.GuestID
		}
	}
	activeCards := make(map[uint32]int)
	for _, k := range cards {
		activeCards[k.RoomID]++
	}

	rows := make([]RoomRow, 0, len(rooms))
	for _, room := range rooms {
		row := RoomRow{Room: room, ActiveCards: activeCards[room.ID]}
		if gid, ok := openGuest[room.ID]; ok {
			row.GuestName = guestNames[gid]
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// RoomsTable renders the fixed-width rooms table for the given rooms.
func (r *Report) RoomsTable(rooms []codec.Room) (string, error) {
	rows, err := r.roomRows(rooms)
	if err != nil {
		return "", err
	}

	cols := []string{"RoomID", "Type", "Floor", "Capacity", "MaxCards", "Status", "Guest", "Cards"}
	widths := []int{8, 10, 7, 9, 9, 10, 20, 5}

	row := func(vals []string) string {
		parts := make([]string, len(vals))
		for i, v := range vals {
			parts[i] = pad(v, widths[i])
		}
		return strings.Join(parts, " | ")
	}

	total := 0
	for _, w := range widths {
		total += w
	}
	line := strings.Repeat("-", total+3*(len(widths)-1))

	out := []string{row(cols), line}
	for _, rr := range rows {
		out = append(out, row([]string{
			fmt.Sprintf("%d", rr.Room.ID),
			rr.Room.Type,
			fmt.Sprintf("%d", rr.Room.Floor),
			fmt.Sprintf("%d", rr.Room.Capacity),
			fmt.Sprintf("%d", rr.Room.MaxCards),
			rr.Room.StatusText(),
			rr.GuestName,
			fmt.Sprintf("%d", rr.ActiveCards),
		}))
	}
	return strings.Join(out, "\n"), nil
}

// summary renders the aggregate room and stay counts.
func summary(rooms []codec.Room, stays []codec.Stay) string {
	var active, deleted, occupied, vacant, open int
	for _, r := range rooms {
		switch r.Status {
		case codec.RoomDeleted:
			deleted++
		case codec.RoomOccupied:
			active++
			occupied++
		case codec.RoomVacant:
			active++
			vacant++
		}
	}
	for _, st := range stays {
		if st.Status == codec.StayOpen {
			open++
		}
	}

	lines := []string{
		"Summary",
		fmt.Sprintf("- Total Rooms (records) : %d", len(rooms)),
		fmt.Sprintf("- Active Rooms          : %d", active),
		fmt.Sprintf("- Deleted Rooms         : %d", deleted),
		fmt.Sprintf("- Currently Occupied    : %d", occupied),
		fmt.Sprintf("- Available Now         : %d", vacant),
		fmt.Sprintf("- Open Stays            : %d", open),
	}
	return strings.Join(lines, "\n")
}

// statsByType renders active room counts grouped by room type.
func statsByType(rooms []codec.Room) string {
	counts := map[string]int{}
	for _, r := range rooms {
		if r.Status != codec.RoomDeleted {
			counts[r.Type]++
		}
	}
	types := make([]string, 0, len(counts))
	for t := range counts {
		types = append(types, t)
	}
	sort.Strings(types)

	lines := []string{"Rooms by Type (Active only)"}
	for _, t := range types {
		lines = append(lines, fmt.Sprintf("- %s: %d", t, counts[t]))
	}
	return strings.Join(lines, "\n")
}

// BuildText assembles the full report.
func (r *Report) BuildText() (string, error) {
	rooms, err := r.svc.Rooms(true)
	if err != nil {
		return "", err
	}
	stays, err := r.svc.Stays(true)
	if err != nil {
		return "", err
	}

	header := strings.Join([]string{
		"Hotel Key Card System — Summary Report",
		fmt.Sprintf("Report ID    : %s", ksuid.New().String()),
		fmt.Sprintf("Generated At : %s", time.Now().Format("2006-01-02 15:04")),
		fmt.Sprintf("App Version  : %s", appVersion),
		fmt.Sprintf("Endianness   : %s", endianness),
		fmt.Sprintf("Encoding     : %s", encoding),
	}, "\n")

	table, err := r.RoomsTable(rooms)
	if err != nil {
		return "", err
	}

	line := strings.Repeat("-", 95)
	parts := []string{header, "", line, table, line, "", summary(rooms, stays), "", statsByType(rooms)}
	return strings.TrimRight(strings.Join(parts, "\n"), "\n"), nil
}

// Save writes the report into dir and returns the file path.
func (r *Report) Save(dir string) (string, error) {
	text, err := r.BuildText()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", err
	}
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(text+"\n"), 0600); err != nil {
		return "", err
	}
	return path, nil
}

// pad left-justifies v into a w-wide cell, truncating overlong values.
func pad(v string, w int) string {
	if len(v) > w {
		return v[:w]
	}
	return v + strings.Repeat(" ", w-len(v))
}

package report

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/hoteldb/pkg/hotel"
)

func newTestService(t *testing.T) *hotel.Service {
	t.Helper()
	tmpDir, err := os.MkdirTemp("", "hoteldb_report_test")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	svc, err := hotel.NewService(hotel.Config{DataDir: tmpDir, ReportDir: tmpDir})
	require.NoError(t, err)
	return svc
}

func TestBuildText(t *testing.T) {
	svc := newTestService(t)

	room, err := svc.AddRoom("STD", 2, 2, 2)
	require.NoError(t, err)
	_, err = svc.AddRoom("SUITE", 10, 4, 4)
	require.NoError(t, err)
	deluxe, err := svc.AddRoom("DELUXE", 5, 3, 3)
	require.NoError(t, err)
	require.NoError(t, svc.DeleteRoom(deluxe.ID))

	guest, err := svc.AddGuest("John Smith", "0812345678", "A1234567890")
	require.NoError(t, err)
	_, err = svc.Checkin(guest.ID, room.ID, "2024-01-15", 2)
	require.NoError(t, err)

	text, err := New(svc).BuildText()
	require.NoError(t, err)

	assert.Contains(t, text, "Hotel Key Card System — Summary Report")
	assert.Contains(t, text, "Little-Endian")
	assert.Contains(t, text, "- Total Rooms (records) : 3")
	assert.Contains(t, text, "- Active Rooms          : 2")
	assert.Contains(t, text, "- Deleted Rooms         : 1")
	assert.Contains(t, text, "- Currently Occupied    : 1")
	assert.Contains(t, text, "- Available Now         : 1")
	assert.Contains(t, text, "- Open Stays            : 1")
	assert.Contains(t, text, "- STD: 1")
	assert.Contains(t, text, "- SUITE: 1")
	assert.NotContains(t, text, "- DELUXE", "deleted rooms excluded from by-type stats")
	assert.Contains(t, text, "John Smith", "occupied room annotated with its guest")
}

func TestRoomsTable_StatusAndCards(t *testing.T) {
	svc := newTestService(t)

	room, err := svc.AddRoom("STD", 2, 2, 2)
	require.NoError(t, err)
	guest, err := svc.AddGuest("John Smith", "0812345678", "A1234567890")
	require.NoError(t, err)
	_, err = svc.Checkin(guest.ID, room.ID, "2024-01-15", 2)
	require.NoError(t, err)

	rooms, err := svc.Rooms(true)
	require.NoError(t, err)

	table, err := New(svc).RoomsTable(rooms)
	require.NoError(t, err)

	lines := strings.Split(table, "\n")
	require.GreaterOrEqual(t, len(lines), 3, "header, rule, one row")
	assert.Contains(t, lines[2], "Occupied")
	assert.Contains(t, lines[2], "John Smith")
}

func TestSave(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.AddRoom("STD", 2, 2, 2)
	require.NoError(t, err)

	path, err := New(svc).Save(svc.Config().ReportDir)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Hotel Key Card System"))
	assert.True(t, strings.HasSuffix(string(data), "\n"))
}

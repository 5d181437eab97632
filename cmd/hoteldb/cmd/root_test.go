package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCommand executes the root command against a scratch data directory and
// returns the captured output.
func runCommand(t *testing.T, dataDir string, args ...string) string {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(append(args, "--data-dir="+dataDir, "--report-dir="+dataDir))
	err := rootCmd.Execute()
	require.NoError(t, err)
	return buf.String()
}

func TestParseRecordID(t *testing.T) {
	id, err := parseRecordID("42")
	require.NoError(t, err)
	assert.Equal(t, uint32(42), id)

	_, err = parseRecordID("abc")
	assert.Error(t, err)

	_, err = parseRecordID("-1")
	assert.Error(t, err)
}

func TestRoomCommands(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "hoteldb_cmd_test")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	out := runCommand(t, tmpDir, "room", "add", "--type=DELUXE", "--floor=5", "--capacity=3", "--max-cards=3")
	assert.Contains(t, out, "Added room 1")

	out = runCommand(t, tmpDir, "room", "list")
	assert.Contains(t, out, "type=DELUXE")
	assert.Contains(t, out, "1 room(s)")

	out = runCommand(t, tmpDir, "room", "delete", "1")
	assert.Contains(t, out, "Deleted room 1")

	out = runCommand(t, tmpDir, "room", "list")
	assert.Contains(t, out, "0 room(s)")

	// The record file still holds the soft-deleted slot
	assert.FileExists(t, filepath.Join(tmpDir, "rooms.dat"))
	out = runCommand(t, tmpDir, "room", "list", "--include-deleted")
	assert.Contains(t, out, "1 room(s)")
}

func TestStayCommands(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "hoteldb_cmd_test")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	runCommand(t, tmpDir, "room", "add", "--type=STD", "--floor=2", "--capacity=2", "--max-cards=2")
	runCommand(t, tmpDir, "guest", "add", "--name=John Smith", "--phone=555-0100", "--id-no=AB123456")

	out := runCommand(t, tmpDir, "stay", "checkin", "--guest=1", "--room=1", "--cards=2", "--date=2026-08-31")
	assert.Contains(t, out, "Opened stay 1")
	assert.Contains(t, out, "2 card(s) issued")

	out = runCommand(t, tmpDir, "keycard", "list", "--room=1")
	assert.Contains(t, out, "2 key card(s)")

	out = runCommand(t, tmpDir, "stay", "checkout", "1", "--date=2026-09-02")
	assert.Contains(t, out, "Closed stay 1 on 2026-09-02")

	out = runCommand(t, tmpDir, "keycard", "list", "--room=1")
	assert.Contains(t, out, "0 key card(s)")
}

func TestSeedAndReportCommands(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "hoteldb_cmd_test")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	out := runCommand(t, tmpDir, "seed")
	assert.Contains(t, out, "Seeded demo")

	out = runCommand(t, tmpDir, "report", "--save")
	assert.Contains(t, out, "Hotel Key Card System")
	assert.Contains(t, out, "Report saved to")
	assert.FileExists(t, filepath.Join(tmpDir, "hotel_report.txt"))
}

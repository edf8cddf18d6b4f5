package console

import (
	"bytes"
	"context"
	"io"
	"log"
	"path/filepath"
	"strings"
	"testing"

	"hospital-registry-service/internal/adapters"
	"hospital-registry-service/internal/codec"
	"hospital-registry-service/internal/config"
	"hospital-registry-service/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T) *services.SessionService {
	t.Helper()
	logger := log.New(io.Discard, "", 0)
	dir := t.TempDir()

	store := adapters.NewFileStore(filepath.Join(dir, "data.csv"), codec.NewCodec(logger), logger)
	archive, err := adapters.NewBoltArchive(filepath.Join(dir, "archive.db"), logger)
	require.NoError(t, err)
	t.Cleanup(func() { archive.Close() })

	cfg := config.Config{AutosaveEnabled: false}
	return services.NewSessionService(store, archive, cfg, logger)
}

func runScript(t *testing.T, script string) string {
	t.Helper()
	svc := newTestSession(t)
	var out bytes.Buffer
	menu := NewMenu(strings.NewReader(script), &out, svc, log.New(io.Discard, "", 0))

	require.NoError(t, menu.Run(context.Background()))
	return out.String()
}

func TestMenu_RegisterAndReport(t *testing.T) {
	out := runScript(t, strings.Join([]string{
		"2", "Alice", "30", "Flu",
		"2", "Alice", "99", "Cold",
		"1", "Smith", "Cardiology",
		"3", "Alice", "Smith", "10:30 AM",
		"4",
		"8",
	}, "\n")+"\n")

	assert.Contains(t, out, "Patient Alice registered successfully.")
	assert.Contains(t, out, "Patient with name Alice already exists.")
	assert.Contains(t, out, "Doctor Smith added to the system.")
	assert.Contains(t, out, "Appointment booked successfully for Alice with Dr. Smith at 10:30 AM")
	assert.Contains(t, out, "Patient: Alice, Time: 10:30 AM")
	assert.Contains(t, out, "Goodbye!")
}

func TestMenu_BookingNotFoundOutcomesAreDistinct(t *testing.T) {
	out := runScript(t, strings.Join([]string{
		"1", "Smith", "Cardiology",
		"3", "Ghost", "Smith", "9:00 AM",
		"2", "Alice", "30", "Flu",
		"3", "Alice", "Nobody", "9:00 AM",
		"8",
	}, "\n")+"\n")

	assert.Contains(t, out, "Patient with name Ghost not found.")
	assert.Contains(t, out, "Doctor with name Nobody not found.")
}

func TestMenu_InvalidChoiceAndNonIntegerInput(t *testing.T) {
	out := runScript(t, "banana\n42\n8\n")

	assert.Contains(t, out, "Invalid input. Please enter a valid integer.")
	assert.Contains(t, out, "Invalid choice. Please try again.")
}

func TestMenu_SaveLoadAndHistory(t *testing.T) {
	out := runScript(t, strings.Join([]string{
		"7", // nothing archived yet
		"2", "Alice", "30", "Flu",
		"5", // save (also archives)
		"6", // load back
		"7", // one snapshot now
		"8",
	}, "\n")+"\n")

	assert.Contains(t, out, "No snapshots archived yet.")
	assert.Contains(t, out, "Data saved successfully.")
	assert.Contains(t, out, "Data loaded successfully.")
	assert.Contains(t, out, "=== Snapshot History ===")
	assert.Contains(t, out, "(1 patients, 0 doctors)")
}

func TestMenu_EndOfInputEndsSession(t *testing.T) {
	svc := newTestSession(t)
	var out bytes.Buffer
	menu := NewMenu(strings.NewReader("2\nAlice\n30\nFlu\n"), &out, svc, log.New(io.Discard, "", 0))

	assert.NoError(t, menu.Run(context.Background()))
	assert.Contains(t, out.String(), "Patient Alice registered successfully.")
}

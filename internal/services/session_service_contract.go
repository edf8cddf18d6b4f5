package services

import (
	"context"

	"hospital-registry-service/internal/adapters"
	"hospital-registry-service/internal/domain/registry"
)

// SessionServiceContract is the surface the console shell consumes. All
// outcomes are reportable: collisions and not-found conditions never
// terminate the session.
type SessionServiceContract interface {
	// Start restores previously saved data when present and schedules
	// the autosave job.
	Start(ctx context.Context) error
	// Stop halts the autosave job and performs a final save.
	Stop(ctx context.Context) error

	RegisterPatient(ctx context.Context, name string, age int, ailment string) registry.RegistrationStatus
	AddDoctor(ctx context.Context, name, specialization string) registry.RegistrationStatus
	BookAppointment(ctx context.Context, patientName, doctorName, time string) error
	Report(ctx context.Context) string

	// Save persists the whole directory and archives the snapshot.
	Save(ctx context.Context) error
	// Load replaces the whole directory with the persisted state. On
	// failure the session continues with an empty directory.
	Load(ctx context.Context) error
	// History lists archived snapshots, oldest first.
	History(ctx context.Context, limit int) ([]adapters.SnapshotRecord, error)
}

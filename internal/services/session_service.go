package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"hospital-registry-service/internal/adapters"
	"hospital-registry-service/internal/codec"
	"hospital-registry-service/internal/config"
	"hospital-registry-service/internal/domain/entities"
	"hospital-registry-service/internal/domain/registry"
	"hospital-registry-service/internal/report"

	"github.com/robfig/cron/v3"
)

// SessionService owns the live directory for one process lifetime and
// coordinates it with the snapshot store and the archive. Mutations are
// serialized by the directory itself; the service mutex serializes the
// whole-directory operations (save, load, pointer swap) against each
// other so a save never reads a directory mid-replacement.
type SessionService struct {
	mu        sync.Mutex
	directory *registry.Directory

	store   adapters.SnapshotStore
	archive adapters.Archiver
	codec   *codec.Codec
	cfg     config.Config
	cron    *cron.Cron
	logger  *log.Logger
}

var _ SessionServiceContract = (*SessionService)(nil)

// NewSessionService creates a session over an empty directory. The
// archive may be nil, in which case history is disabled.
func NewSessionService(
	store adapters.SnapshotStore,
	archive adapters.Archiver,
	cfg config.Config,
	logger *log.Logger,
) *SessionService {
	return &SessionService{
		directory: registry.NewDirectory(),
		store:     store,
		archive:   archive,
		codec:     codec.NewCodec(logger),
		cfg:       cfg,
		logger:    logger,
	}
}

// Start loads saved data when the store has any, then schedules the
// autosave job when enabled.
func (s *SessionService) Start(ctx context.Context) error {
	if s.store.Exists() {
		if err := s.Load(ctx); err != nil {
			// Recoverable: the session continues on an empty directory.
			s.logger.Printf("session: could not restore saved data: %v", err)
		}
	} else {
		s.logger.Println("session: no existing data found, starting with an empty registry")
	}

	if s.cfg.AutosaveEnabled {
		c := cron.New()
		if _, err := c.AddFunc(s.cfg.AutosaveSpec, s.autosave); err != nil {
			return fmt.Errorf("scheduling autosave %q: %w", s.cfg.AutosaveSpec, err)
		}
		c.Start()
		s.cron = c
		s.logger.Printf("session: autosave scheduled (%s)", s.cfg.AutosaveSpec)
	}
	return nil
}

// Stop halts the autosave job and saves one final time.
func (s *SessionService) Stop(ctx context.Context) error {
	if s.cron != nil {
		<-s.cron.Stop().Done()
		s.cron = nil
	}
	return s.Save(ctx)
}

func (s *SessionService) autosave() {
	if err := s.Save(context.Background()); err != nil {
		s.logger.Printf("session: autosave failed: %v", err)
	}
}

// RegisterPatient registers a patient, reporting a duplicate as an
// outcome rather than an error.
func (s *SessionService) RegisterPatient(ctx context.Context, name string, age int, ailment string) registry.RegistrationStatus {
	status := s.currentDirectory().RegisterPatient(entities.NewPatient(name, age, ailment))
	switch status {
	case registry.StatusRegistered:
		s.logger.Printf("session: patient %q registered", name)
	case registry.StatusDuplicate:
		s.logger.Printf("session: patient %q already exists, skipped", name)
	}
	return status
}

// AddDoctor adds a doctor, with the same collision semantics as
// RegisterPatient.
func (s *SessionService) AddDoctor(ctx context.Context, name, specialization string) registry.RegistrationStatus {
	status := s.currentDirectory().AddDoctor(entities.NewDoctor(name, specialization))
	switch status {
	case registry.StatusRegistered:
		s.logger.Printf("session: doctor %q added", name)
	case registry.StatusDuplicate:
		s.logger.Printf("session: doctor %q already exists, skipped", name)
	}
	return status
}

// BookAppointment books the patient with the doctor at the given time.
// The not-found kinds stay distinguishable via errors.Is.
func (s *SessionService) BookAppointment(ctx context.Context, patientName, doctorName, time string) error {
	err := s.currentDirectory().BookAppointment(patientName, doctorName, time)
	if err != nil {
		s.logger.Printf("session: booking %q with %q failed: %v", patientName, doctorName, err)
		return err
	}
	s.logger.Printf("session: appointment booked for %q with Dr. %q at %s", patientName, doctorName, time)
	return nil
}

// Report renders the current directory contents.
func (s *SessionService) Report(ctx context.Context) string {
	return report.Render(s.currentDirectory().Snapshot())
}

// Save writes the whole directory to the store and archives the
// snapshot. Archive failures are logged, not surfaced: history is
// best-effort.
func (s *SessionService) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := s.directory
	if err := s.store.Save(ctx, dir); err != nil {
		return err
	}
	if s.archive != nil {
		snap := dir.Snapshot()
		if _, err := s.archive.Archive(ctx, snap, s.codec.Encode(snap)); err != nil {
			s.logger.Printf("session: snapshot archive failed: %v", err)
		}
	}
	return nil
}

// Load replaces the directory with the persisted state. On failure the
// session falls back to an empty directory and keeps running; the error
// is returned for the shell to display.
func (s *SessionService) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir, err := s.store.Load(ctx)
	if err != nil {
		s.directory = registry.NewDirectory()
		return err
	}
	s.directory = dir
	return nil
}

// History lists archived snapshots, oldest first.
func (s *SessionService) History(ctx context.Context, limit int) ([]adapters.SnapshotRecord, error) {
	if s.archive == nil {
		return nil, errors.New("snapshot history is disabled")
	}
	return s.archive.History(ctx, limit)
}

func (s *SessionService) currentDirectory() *registry.Directory {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.directory
}

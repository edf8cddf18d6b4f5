package registry

import (
	"fmt"
	"sync"

	"hospital-registry-service/internal/domain/entities"
)

// Directory is the aggregate root owning all patients and doctors. It
// enforces name uniqueness and referential integrity for bookings. All
// mutating operations take a single coarse lock over the aggregate, so
// it is safe to call from multiple goroutines.
type Directory struct {
	mu sync.Mutex

	patients     map[string]*entities.Patient
	patientOrder []string

	doctors     map[string]*entities.Doctor
	doctorOrder []string
}

// NewDirectory creates an empty directory.
func NewDirectory() *Directory {
	return &Directory{
		patients: make(map[string]*entities.Patient),
		doctors:  make(map[string]*entities.Doctor),
	}
}

// RegisterPatient inserts the patient unless the name is already taken.
// A collision leaves the existing record untouched.
func (d *Directory) RegisterPatient(p *entities.Patient) RegistrationStatus {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.patients[p.Name]; ok {
		return StatusDuplicate
	}
	d.patients[p.Name] = p
	d.patientOrder = append(d.patientOrder, p.Name)
	return StatusRegistered
}

// AddDoctor inserts the doctor unless the name is already taken.
func (d *Directory) AddDoctor(doc *entities.Doctor) RegistrationStatus {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.doctors[doc.Name]; ok {
		return StatusDuplicate
	}
	d.doctors[doc.Name] = doc
	d.doctorOrder = append(d.doctorOrder, doc.Name)
	return StatusRegistered
}

// BookAppointment records an appointment time for a patient with a
// doctor. The patient is looked up first, then the doctor; a missing
// name yields ErrPatientNotFound or ErrDoctorNotFound respectively.
// Booking the same patient with the same doctor again overwrites the
// previous time. The time string is stored as-is, never validated.
func (d *Directory) BookAppointment(patientName, doctorName, time string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.patients[patientName]; !ok {
		return fmt.Errorf("%w: %s", ErrPatientNotFound, patientName)
	}
	doc, ok := d.doctors[doctorName]
	if !ok {
		return fmt.Errorf("%w: %s", ErrDoctorNotFound, doctorName)
	}
	doc.AddSchedule(patientName, time)
	return nil
}

// Patient looks up a patient by name.
func (d *Directory) Patient(name string) (*entities.Patient, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	p, ok := d.patients[name]
	return p, ok
}

// Doctor looks up a doctor by name. The returned value is a copy so the
// caller cannot race against later bookings.
func (d *Directory) Doctor(name string) (*entities.Doctor, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	doc, ok := d.doctors[name]
	if !ok {
		return nil, false
	}
	return doc.Clone(), true
}

// PatientCount reports the number of registered patients.
func (d *Directory) PatientCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.patients)
}

// DoctorCount reports the number of registered doctors.
func (d *Directory) DoctorCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.doctors)
}

// Snapshot copies the whole aggregate under one lock acquisition, in
// registration order. Serialization and reporting run off the snapshot
// so they never observe a half-applied mutation.
func (d *Directory) Snapshot() Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()

	snap := Snapshot{
		Patients: make([]entities.Patient, 0, len(d.patientOrder)),
		Doctors:  make([]*entities.Doctor, 0, len(d.doctorOrder)),
	}
	for _, name := range d.patientOrder {
		snap.Patients = append(snap.Patients, *d.patients[name])
	}
	for _, name := range d.doctorOrder {
		snap.Doctors = append(snap.Doctors, d.doctors[name].Clone())
	}
	return snap
}

// Snapshot is a point-in-time, detached copy of a Directory's state.
type Snapshot struct {
	Patients []entities.Patient
	Doctors  []*entities.Doctor
}

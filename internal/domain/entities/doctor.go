package entities

// ScheduleEntry is one appointment in a doctor's schedule.
// Time is an opaque display string (e.g. "10:30 AM"), never parsed.
type ScheduleEntry struct {
	PatientName string `json:"patientName"`
	Time        string `json:"time"`
}

// Doctor represents a doctor and their appointment schedule.
// Name is the identity key. The schedule is keyed by patient name and
// preserves booking order; re-booking a patient overwrites the time but
// keeps the entry's original position.
type Doctor struct {
	Name           string
	Specialization string

	schedule map[string]string
	order    []string
}

// NewDoctor creates a doctor with an empty schedule.
func NewDoctor(name, specialization string) *Doctor {
	return &Doctor{
		Name:           name,
		Specialization: specialization,
		schedule:       make(map[string]string),
	}
}

// AddSchedule records an appointment time for a patient. An existing
// entry for the same patient is overwritten in place.
func (d *Doctor) AddSchedule(patientName, time string) {
	if _, ok := d.schedule[patientName]; !ok {
		d.order = append(d.order, patientName)
	}
	d.schedule[patientName] = time
}

// Schedule returns the appointments in booking order.
func (d *Doctor) Schedule() []ScheduleEntry {
	entries := make([]ScheduleEntry, 0, len(d.order))
	for _, name := range d.order {
		entries = append(entries, ScheduleEntry{PatientName: name, Time: d.schedule[name]})
	}
	return entries
}

// ScheduleLen reports the number of appointments.
func (d *Doctor) ScheduleLen() int {
	return len(d.order)
}

// AppointmentTime looks up the booked time for a patient.
func (d *Doctor) AppointmentTime(patientName string) (string, bool) {
	t, ok := d.schedule[patientName]
	return t, ok
}

// Clone returns a deep copy, safe to read after the original mutates.
func (d *Doctor) Clone() *Doctor {
	c := NewDoctor(d.Name, d.Specialization)
	for _, name := range d.order {
		c.AddSchedule(name, d.schedule[name])
	}
	return c
}

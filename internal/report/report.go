// Package report renders directory contents as human-readable text.
// The output is displayed, never persisted or parsed.
package report

import (
	"strconv"
	"strings"

	"hospital-registry-service/internal/domain/registry"
)

const divider = "-----------------------"

// Render walks the snapshot and produces the hospital report: all
// patients in registration order, then all doctors with their schedules
// in booking order.
func Render(snap registry.Snapshot) string {
	var b strings.Builder

	b.WriteString("\n=== Hospital Report ===\n")

	b.WriteString("\nList of Patients:\n")
	if len(snap.Patients) == 0 {
		b.WriteString("No patients registered.\n")
	}
	for _, p := range snap.Patients {
		b.WriteString("Patient Name: " + p.Name + "\n")
		b.WriteString("Age: " + strconv.Itoa(p.Age) + "\n")
		b.WriteString("Ailment: " + p.Ailment + "\n")
		b.WriteString(divider + "\n")
	}

	b.WriteString("\nList of Doctors and their schedules:\n")
	if len(snap.Doctors) == 0 {
		b.WriteString("No doctors added.\n")
	}
	for _, doc := range snap.Doctors {
		b.WriteString("Doctor Name: " + doc.Name + "\n")
		b.WriteString("Specialization: " + doc.Specialization + "\n")
		if doc.ScheduleLen() == 0 {
			b.WriteString("Schedule: No appointments.\n")
		} else {
			b.WriteString("Schedule:\n")
			for _, e := range doc.Schedule() {
				b.WriteString("Patient: " + e.PatientName + ", Time: " + e.Time + "\n")
			}
		}
		b.WriteString(divider + "\n")
	}

	return b.String()
}

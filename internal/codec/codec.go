// Package codec serializes a registry snapshot to the flat delimited
// text format and parses it back.
//
// The format has two sections. A PATIENTS header followed by
// "name,age,ailment" lines, then a DOCTORS header followed by
// "name,specialization,entries" lines where entries is a ";"-joined
// list of "patient:time" pairs in booking order. Fields are not
// escaped: a name containing "," ";" or ":" does not survive a round
// trip. That is a known limitation of the format, kept as-is.
package codec

import (
	"log"
	"strconv"
	"strings"

	"hospital-registry-service/internal/domain/entities"
	"hospital-registry-service/internal/domain/registry"
)

const (
	patientsHeader = "PATIENTS"
	doctorsHeader  = "DOCTORS"

	fieldSep   = ","
	entrySep   = ";"
	entryKVSep = ":"
)

// Codec encodes and decodes directory state. Decoding is lossy-tolerant:
// malformed lines are skipped, never fatal.
type Codec struct {
	logger *log.Logger
}

// NewCodec creates a codec logging skipped and duplicate lines.
func NewCodec(logger *log.Logger) *Codec {
	return &Codec{logger: logger}
}

// Encode renders the snapshot in the persisted text format. Patients and
// doctors appear in registration order, schedule entries in booking order.
func (c *Codec) Encode(snap registry.Snapshot) string {
	var b strings.Builder

	b.WriteString(patientsHeader + "\n")
	for _, p := range snap.Patients {
		b.WriteString(p.Name + fieldSep + strconv.Itoa(p.Age) + fieldSep + p.Ailment + "\n")
	}

	b.WriteString(doctorsHeader + "\n")
	for _, doc := range snap.Doctors {
		pairs := make([]string, 0, doc.ScheduleLen())
		for _, e := range doc.Schedule() {
			pairs = append(pairs, e.PatientName+entryKVSep+e.Time)
		}
		b.WriteString(doc.Name + fieldSep + doc.Specialization + fieldSep + strings.Join(pairs, entrySep) + "\n")
	}

	return b.String()
}

// Decode parses persisted text into a fresh directory. A single forward
// scan tracks the active section; lines before any header, lines with too
// few fields, non-integer ages and malformed schedule sub-entries are all
// skipped. Inserts go through the directory's normal registration path,
// so duplicate lines get the same collision handling as manual entry.
// Schedule entries are loaded without checking that the referenced
// patient exists; the format never recorded that link.
func (c *Codec) Decode(text string) *registry.Directory {
	dir := registry.NewDirectory()
	section := ""

	for _, line := range strings.Split(text, "\n") {
		switch {
		case line == patientsHeader:
			section = patientsHeader
		case line == doctorsHeader:
			section = doctorsHeader
		case line == "":
			// blank lines carry nothing
		case section == patientsHeader:
			c.decodePatientLine(dir, line)
		case section == doctorsHeader:
			c.decodeDoctorLine(dir, line)
		default:
			c.logger.Printf("codec: skipping line before any section header: %q", line)
		}
	}

	return dir
}

func (c *Codec) decodePatientLine(dir *registry.Directory, line string) {
	fields := strings.Split(line, fieldSep)
	if len(fields) < 3 {
		c.logger.Printf("codec: skipping malformed patient line: %q", line)
		return
	}
	age, err := strconv.Atoi(fields[1])
	if err != nil {
		c.logger.Printf("codec: skipping patient line with bad age: %q", line)
		return
	}
	if dir.RegisterPatient(entities.NewPatient(fields[0], age, fields[2])) == registry.StatusDuplicate {
		c.logger.Printf("codec: duplicate patient %q in file, keeping first", fields[0])
	}
}

func (c *Codec) decodeDoctorLine(dir *registry.Directory, line string) {
	fields := strings.Split(line, fieldSep)
	if len(fields) < 2 {
		c.logger.Printf("codec: skipping malformed doctor line: %q", line)
		return
	}
	doc := entities.NewDoctor(fields[0], fields[1])
	if len(fields) > 2 && fields[2] != "" {
		for _, pair := range strings.Split(fields[2], entrySep) {
			// Split on the first colon only: patient names must not
			// contain ":" but appointment times like "10:30 AM" do.
			kv := strings.SplitN(pair, entryKVSep, 2)
			if len(kv) != 2 {
				c.logger.Printf("codec: skipping malformed schedule entry %q for doctor %q", pair, doc.Name)
				continue
			}
			doc.AddSchedule(kv[0], kv[1])
		}
	}
	if dir.AddDoctor(doc) == registry.StatusDuplicate {
		c.logger.Printf("codec: duplicate doctor %q in file, keeping first", doc.Name)
	}
}

// RoundTripSafe reports whether a name or specialization field survives
// Encode/Decode unchanged, i.e. contains none of the reserved
// delimiters. Appointment times are laxer: they may contain ":".
func RoundTripSafe(field string) bool {
	return !strings.ContainsAny(field, fieldSep+entrySep+entryKVSep)
}

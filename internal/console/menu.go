// Package console implements the interactive menu shell. It owns all
// raw input handling; the core only ever sees trimmed strings and
// validated integers.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"hospital-registry-service/internal/domain/registry"
	"hospital-registry-service/internal/services"
)

const historyPageSize = 20

// Menu drives one interactive session over a SessionService.
type Menu struct {
	in     *bufio.Reader
	out    io.Writer
	svc    services.SessionServiceContract
	logger *log.Logger
}

// NewMenu creates a menu reading choices from in and rendering to out.
func NewMenu(in io.Reader, out io.Writer, svc services.SessionServiceContract, logger *log.Logger) *Menu {
	return &Menu{
		in:     bufio.NewReader(in),
		out:    out,
		svc:    svc,
		logger: logger,
	}
}

// Run loops until the user exits or input ends. No service outcome is
// fatal: collisions, not-found bookings and I/O failures are rendered
// and the loop continues.
func (m *Menu) Run(ctx context.Context) error {
	for {
		m.printMenu()
		choice, err := m.promptInt("Enter your choice: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				m.logger.Println("console: input closed, ending session")
				return nil
			}
			return err
		}

		switch choice {
		case 1:
			if err := m.addDoctor(ctx); err != nil {
				return err
			}
		case 2:
			if err := m.registerPatient(ctx); err != nil {
				return err
			}
		case 3:
			if err := m.bookAppointment(ctx); err != nil {
				return err
			}
		case 4:
			fmt.Fprint(m.out, m.svc.Report(ctx))
		case 5:
			if err := m.svc.Save(ctx); err != nil {
				fmt.Fprintf(m.out, "Error saving data: %v\n", err)
			} else {
				fmt.Fprintln(m.out, "Data saved successfully.")
			}
		case 6:
			if err := m.svc.Load(ctx); err != nil {
				fmt.Fprintf(m.out, "Error loading data: %v\n", err)
			} else {
				fmt.Fprintln(m.out, "Data loaded successfully.")
			}
		case 7:
			m.showHistory(ctx)
		case 8:
			if err := m.svc.Save(ctx); err != nil {
				fmt.Fprintf(m.out, "Error saving data: %v\n", err)
			}
			fmt.Fprintln(m.out, "Thank you for using the Hospital Registry. Goodbye!")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice. Please try again.")
		}
	}
}

func (m *Menu) printMenu() {
	fmt.Fprintln(m.out, "\n=== Hospital Registry Menu ===")
	fmt.Fprintln(m.out, "1. Add Doctor")
	fmt.Fprintln(m.out, "2. Register Patient")
	fmt.Fprintln(m.out, "3. Book Appointment")
	fmt.Fprintln(m.out, "4. Generate Report")
	fmt.Fprintln(m.out, "5. Save Data")
	fmt.Fprintln(m.out, "6. Load Data")
	fmt.Fprintln(m.out, "7. Snapshot History")
	fmt.Fprintln(m.out, "8. Exit")
}

func (m *Menu) addDoctor(ctx context.Context) error {
	name, err := m.promptLine("Enter doctor's name: ")
	if err != nil {
		return err
	}
	specialization, err := m.promptLine("Enter doctor's specialization: ")
	if err != nil {
		return err
	}

	if m.svc.AddDoctor(ctx, name, specialization) == registry.StatusDuplicate {
		fmt.Fprintf(m.out, "Doctor with name %s already exists.\n", name)
		return nil
	}
	fmt.Fprintf(m.out, "Doctor %s added to the system.\n", name)
	return nil
}

func (m *Menu) registerPatient(ctx context.Context) error {
	name, err := m.promptLine("Enter patient's name: ")
	if err != nil {
		return err
	}
	age, err := m.promptInt("Enter patient's age: ")
	if err != nil {
		return err
	}
	ailment, err := m.promptLine("Enter patient's ailment: ")
	if err != nil {
		return err
	}

	if m.svc.RegisterPatient(ctx, name, age, ailment) == registry.StatusDuplicate {
		fmt.Fprintf(m.out, "Patient with name %s already exists.\n", name)
		return nil
	}
	fmt.Fprintf(m.out, "Patient %s registered successfully.\n", name)
	return nil
}

func (m *Menu) bookAppointment(ctx context.Context) error {
	patientName, err := m.promptLine("Enter patient's name: ")
	if err != nil {
		return err
	}
	doctorName, err := m.promptLine("Enter doctor's name: ")
	if err != nil {
		return err
	}
	time, err := m.promptLine("Enter appointment time (e.g., 10:30 AM): ")
	if err != nil {
		return err
	}

	switch bookErr := m.svc.BookAppointment(ctx, patientName, doctorName, time); {
	case errors.Is(bookErr, registry.ErrPatientNotFound):
		fmt.Fprintf(m.out, "Patient with name %s not found.\n", patientName)
	case errors.Is(bookErr, registry.ErrDoctorNotFound):
		fmt.Fprintf(m.out, "Doctor with name %s not found.\n", doctorName)
	case bookErr != nil:
		fmt.Fprintf(m.out, "An error occurred while booking the appointment: %v\n", bookErr)
	default:
		fmt.Fprintf(m.out, "Appointment booked successfully for %s with Dr. %s at %s\n",
			patientName, doctorName, time)
	}
	return nil
}

func (m *Menu) showHistory(ctx context.Context) {
	records, err := m.svc.History(ctx, historyPageSize)
	if err != nil {
		fmt.Fprintf(m.out, "Error reading snapshot history: %v\n", err)
		return
	}
	if len(records) == 0 {
		fmt.Fprintln(m.out, "No snapshots archived yet.")
		return
	}
	fmt.Fprintln(m.out, "\n=== Snapshot History ===")
	for _, rec := range records {
		fmt.Fprintf(m.out, "%s  %s  (%d patients, %d doctors)\n",
			rec.SavedAt.Format("2006-01-02 15:04:05"), rec.ID, rec.Patients, rec.Doctors)
	}
}

// promptLine reads one line and returns it trimmed.
func (m *Menu) promptLine(prompt string) (string, error) {
	fmt.Fprint(m.out, prompt)
	line, err := m.in.ReadString('\n')
	if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptInt re-prompts until the user supplies a valid integer.
func (m *Menu) promptInt(prompt string) (int, error) {
	for {
		line, err := m.promptLine(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(m.out, "Invalid input. Please enter a valid integer.")
			continue
		}
		return n, nil
	}
}

package entities

// Patient represents a registered patient.
// Patients are immutable after registration; Name is the identity key.
type Patient struct {
	Name    string `json:"name"`
	Age     int    `json:"age"`
	Ailment string `json:"ailment"`
}

// NewPatient creates a patient record.
func NewPatient(name string, age int, ailment string) *Patient {
	return &Patient{
		Name:    name,
		Age:     age,
		Ailment: ailment,
	}
}

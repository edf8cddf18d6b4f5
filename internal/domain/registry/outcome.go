package registry

// RegistrationStatus is the reported outcome of a registration attempt.
// A duplicate name is not an error: the operation is skipped and the
// caller renders the outcome.
type RegistrationStatus int

const (
	StatusRegistered RegistrationStatus = iota
	StatusDuplicate
)

func (s RegistrationStatus) String() string {
	switch s {
	case StatusRegistered:
		return "registered"
	case StatusDuplicate:
		return "duplicate"
	default:
		return "unknown"
	}
}

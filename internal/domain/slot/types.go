package slot

type Status string

const (
	StatusBooked  Status = "Booked"
	StatusSettled Status = "Settled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusBooked, StatusSettled:
		return true
	default:
		return false
	}
}

// ID is assigned sequentially at booking time, starting at 1.
type ID uint64

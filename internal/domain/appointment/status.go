package appointment

// ===============================
// Appointment Status
// ===============================

// Status values are the literal strings the clinic staff see; the API
// stores and returns them as-is.
type Status string

const (
	StatusScheduled Status = "İleri Tarihli"
	StatusAttended  Status = "Geldi"
	StatusMissed    Status = "Gelmedi"
)

func InitialStatus() Status {
	return StatusScheduled
}

func IsValid(s Status) bool {
	switch s {
	case StatusScheduled, StatusAttended, StatusMissed:
		return true
	}
	return false
}

// ===============================
// Legacy Event Status
// ===============================

// The old calendar screen wrote English status strings. Kept as a
// separate vocabulary; the two are never mixed in one record.
type EventStatus string

const (
	EventScheduled EventStatus = "scheduled"
	EventAttended  EventStatus = "attended"
	EventMissed    EventStatus = "missed"
)

func IsValidEventStatus(s EventStatus) bool {
	switch s {
	case EventScheduled, EventAttended, EventMissed:
		return true
	}
	return false
}

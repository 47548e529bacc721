// Package membership holds the derived-status math shared by the
// dashboard and detail aggregates: subscription windows, session
// progress and customer age. Everything here is a pure function of
// "now" and stored fields; nothing mutates records.
package membership

import (
	"math"
	"time"

	domain "github.com/zaferdrn0/Fzy-sub000/internal/domain/appointment"
	"github.com/zaferdrn0/Fzy-sub000/internal/models"
)

const day = 24 * time.Hour

// Window is a subscription's active interval.
type Window struct {
	Start        time.Time
	DurationDays int
}

func (w Window) End() time.Time {
	return w.Start.Add(time.Duration(w.DurationDays) * day)
}

func (w Window) Active(now time.Time) bool {
	return !now.After(w.End())
}

// DaysLeft rounds up: any started day still counts.
func (w Window) DaysLeft(now time.Time) int {
	if !w.Active(now) {
		return 0
	}
	return int(math.Ceil(float64(w.End().Sub(now)) / float64(day)))
}

// Progress is attended sessions over the nominal limit, as a
// percentage. Deliberately uncapped: makeup sessions can push a
// subscription past 100.
func Progress(attended, sessionLimit int) float64 {
	if sessionLimit <= 0 {
		return 0
	}
	return float64(attended) / float64(sessionLimit) * 100
}

// AttendanceCounts classifies a subscription's appointments by status.
type AttendanceCounts struct {
	Attended int `json:"attended"`
	Missed   int `json:"missed"`
	Upcoming int `json:"upcoming"`
}

func ClassifyAppointments(appointments []models.Appointment) AttendanceCounts {
	var counts AttendanceCounts
	for _, ap := range appointments {
		switch domain.Status(ap.Status) {
		case domain.StatusAttended:
			counts.Attended++
		case domain.StatusMissed:
			counts.Missed++
		default:
			counts.Upcoming++
		}
	}
	return counts
}

// Age in whole years, one less if the birthday has not come around yet
// this year.
func Age(birth, now time.Time) int {
	years := now.Year() - birth.Year()
	if now.Month() < birth.Month() ||
		(now.Month() == birth.Month() && now.Day() < birth.Day()) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

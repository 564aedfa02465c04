// internal/domain/models/attendance.go
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DateFormat is the calendar-day format used for attendance facts.
// Facts carry a day string, never a timestamp, so equality and range
// scans on date work lexicographically.
const DateFormat = "2006-01-02"

// AttendanceFact is one immutable meeting-day outcome for one leader:
// either a single did_not_meet marker for the day, or one present marker
// per member. Facts are append-only; no fact means "no record yet", not
// "absent".
//
// MemberID is stored as the opaque string the client submitted. It is
// deliberately NOT validated against the member directory; see the
// trust-boundary note in DESIGN.md before changing that.
type AttendanceFact struct {
	ID         primitive.ObjectID `bson:"_id" json:"id"`
	LeaderID   primitive.ObjectID `bson:"leader_id" json:"leaderId"`
	Date       string             `bson:"date" json:"date"`
	MemberID   string             `bson:"member_id,omitempty" json:"memberId,omitempty"`
	Present    bool               `bson:"present,omitempty" json:"present,omitempty"`
	DidNotMeet bool               `bson:"did_not_meet,omitempty" json:"didNotMeet,omitempty"`
}

// MeetingStatus is the tri-state outcome for one member on one day,
// derived from that day's fact log.
type MeetingStatus string

const (
	StatusPresent    MeetingStatus = "present"
	StatusDidNotMeet MeetingStatus = "did_not_meet"
	StatusNoRecord   MeetingStatus = "no_record"
)

// StatusFor derives the meeting status for memberID from the facts of a
// single leader and day. A did_not_meet fact for the day outweighs the
// absence of a member fact; with no facts at all the status is NoRecord,
// never "absent".
func StatusFor(facts []AttendanceFact, memberID string) MeetingStatus {
	dnm := false
	for _, f := range facts {
		if f.Present && f.MemberID == memberID {
			return StatusPresent
		}
		if f.DidNotMeet {
			dnm = true
		}
	}
	if dnm {
		return StatusDidNotMeet
	}
	return StatusNoRecord
}

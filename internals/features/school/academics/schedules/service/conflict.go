package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrInvalidScheduleInput marks strict-path validation failures: these must
// reach the caller as a 400, never be silently defaulted away.
var ErrInvalidScheduleInput = errors.New("invalid schedule input")

func invalidInput(field, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidScheduleInput, field, reason)
}

// ConflictClass names the shared resource two sessions collide over.
type ConflictClass string

const (
	ConflictClassroom ConflictClass = "classroom"
	ConflictTeacher   ConflictClass = "teacher"
)

// ConflictVerdict is the outcome of a collision check. A conflict is a
// normal result, not an error; callers turn it into a rejection or a marker.
type ConflictVerdict struct {
	HasConflict bool            `json:"has_conflict"`
	Classes     []ConflictClass `json:"conflict_classes,omitempty"`
}

// Tag joins the conflict classes for display, classroom always first.
func (v ConflictVerdict) Tag() string {
	out := ""
	for _, cl := range v.Classes {
		if out != "" {
			out += ","
		}
		out += string(cl)
	}
	return out
}

func (v *ConflictVerdict) addClass(cl ConflictClass) {
	v.HasConflict = true
	for _, have := range v.Classes {
		if have == cl {
			return
		}
	}
	v.Classes = append(v.Classes, cl)
}

// SessionRecord is the engine's view of one scheduled session. Records are
// borrowed from the persistence layer for the duration of a call and never
// mutated. TeacherID is resolved from the course offering by the caller;
// it is zero on paths that don't need it.
type SessionRecord struct {
	SessionID   uuid.UUID
	OfferingID  uuid.UUID
	ClassroomID uuid.UUID
	TeacherID   uuid.UUID
	Weekday     int
	StartTime   string // "HH:MM"
	EndTime     string // "HH:MM"
	Weeks       string // week range text, e.g. "1-16" or "1,3,5-7"
}

// SessionSource is the read-only persistence collaborator. Implementations
// must exclude excludeID (a session's own id, so updates don't collide with
// themselves) when it is non-nil.
type SessionSource interface {
	FindSessions(ctx context.Context, classroomID uuid.UUID, weekday int, excludeID *uuid.UUID) ([]SessionRecord, error)
	FindSessionsByTeacher(ctx context.Context, teacherID uuid.UUID, weekday int, excludeID *uuid.UUID) ([]SessionRecord, error)
	FindSessionsForGrid(ctx context.Context, semester string, teacherID, classroomID *uuid.UUID) ([]SessionRecord, error)
}

// intervalsOverlap is the half-open overlap test: touching boundaries
// (one session ends 10:00, the next starts 10:00) do not collide.
func intervalsOverlap(s1, e1, s2, e2 int) bool {
	return e1 > s2 && s1 < e2
}

// scanGroup reports whether the candidate interval+weeks collide with any
// session in the group. The group must already be filtered to the same
// resource (classroom or teacher) and weekday. A session whose stored time
// does not parse counts as a collision: better to falsely flag than to let
// bad data hide a real double-booking.
func scanGroup(start, end int, weeks WeekSet, group []SessionRecord) bool {
	if len(weeks) == 0 {
		return false
	}
	for _, s := range group {
		other := parseWeekTokens(s.Weeks)
		if len(other) == 0 {
			continue
		}
		if !weeks.Intersects(other) {
			continue
		}
		s2, err1 := ParseClock(s.StartTime)
		e2, err2 := ParseClock(s.EndTime)
		if err1 != nil || err2 != nil {
			return true
		}
		if intervalsOverlap(start, end, s2, e2) {
			return true
		}
	}
	return false
}

// Validator is the per-insert/update gate run before a session is committed.
// Purely advisory: it never writes anything.
type Validator struct {
	Source SessionSource
}

func NewValidator(src SessionSource) *Validator {
	return &Validator{Source: src}
}

// ValidateSession checks the candidate against both conflict classes:
// classroom (same room, same weekday) and teacher (same teacher, same
// weekday). Malformed candidate fields fail strictly with
// ErrInvalidScheduleInput; this is the one place failing loudly keeps bad
// data out of storage.
func (v *Validator) ValidateSession(ctx context.Context, candidate SessionRecord, teacherID uuid.UUID, excludeID *uuid.UUID) (ConflictVerdict, error) {
	var verdict ConflictVerdict

	if candidate.Weekday < 1 || candidate.Weekday > 7 {
		return verdict, invalidInput("day_of_week", fmt.Sprintf("%d is outside 1..7", candidate.Weekday))
	}
	start, err := ParseClock(candidate.StartTime)
	if err != nil {
		return verdict, err
	}
	end, err := ParseClock(candidate.EndTime)
	if err != nil {
		return verdict, err
	}
	if start >= end {
		return verdict, invalidInput("time", fmt.Sprintf("start %s must be before end %s", candidate.StartTime, candidate.EndTime))
	}
	weeks, err := ParseWeeks(candidate.Weeks)
	if err != nil {
		return verdict, err
	}

	roomGroup, err := v.Source.FindSessions(ctx, candidate.ClassroomID, candidate.Weekday, excludeID)
	if err != nil {
		return verdict, err
	}
	if scanGroup(start, end, weeks, roomGroup) {
		verdict.addClass(ConflictClassroom)
	}

	teacherGroup, err := v.Source.FindSessionsByTeacher(ctx, teacherID, candidate.Weekday, excludeID)
	if err != nil {
		return verdict, err
	}
	if scanGroup(start, end, weeks, teacherGroup) {
		verdict.addClass(ConflictTeacher)
	}

	return verdict, nil
}

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

// fakeSource filters an in-memory session list the way the repository's SQL
// does, so the validator can be exercised without a database.
type fakeSource struct {
	sessions []SessionRecord
}

func (f *fakeSource) FindSessions(_ context.Context, classroomID uuid.UUID, weekday int, excludeID *uuid.UUID) ([]SessionRecord, error) {
	var out []SessionRecord
	for _, s := range f.sessions {
		if s.ClassroomID != classroomID || s.Weekday != weekday {
			continue
		}
		if excludeID != nil && s.SessionID == *excludeID {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeSource) FindSessionsByTeacher(_ context.Context, teacherID uuid.UUID, weekday int, excludeID *uuid.UUID) ([]SessionRecord, error) {
	var out []SessionRecord
	for _, s := range f.sessions {
		if s.TeacherID != teacherID || s.Weekday != weekday {
			continue
		}
		if excludeID != nil && s.SessionID == *excludeID {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeSource) FindSessionsForGrid(_ context.Context, semester string, teacherID, classroomID *uuid.UUID) ([]SessionRecord, error) {
	return f.sessions, nil
}

func newSession(room, teacher uuid.UUID, weekday int, start, end, weeks string) SessionRecord {
	return SessionRecord{
		SessionID:   uuid.New(),
		OfferingID:  uuid.New(),
		ClassroomID: room,
		TeacherID:   teacher,
		Weekday:     weekday,
		StartTime:   start,
		EndTime:     end,
		Weeks:       weeks,
	}
}

func TestValidateSessionHalfOpenBoundaryIsNotAConflict(t *testing.T) {
	room := uuid.New()
	teacherA := uuid.New()
	teacherB := uuid.New()
	src := &fakeSource{sessions: []SessionRecord{
		newSession(room, teacherA, 1, "09:00", "10:00", "1-16"),
	}}
	v := NewValidator(src)

	candidate := newSession(room, teacherB, 1, "10:00", "11:00", "1-16")
	verdict, err := v.ValidateSession(context.Background(), candidate, teacherB, nil)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if verdict.HasConflict {
		t.Fatalf("back-to-back sessions must not conflict, got classes %v", verdict.Classes)
	}
}

func TestValidateSessionDetectsTrueOverlap(t *testing.T) {
	room := uuid.New()
	teacherA := uuid.New()
	teacherB := uuid.New()
	src := &fakeSource{sessions: []SessionRecord{
		newSession(room, teacherA, 1, "09:00", "10:30", "1-16"),
	}}
	v := NewValidator(src)

	candidate := newSession(room, teacherB, 1, "10:00", "11:00", "1-16")
	verdict, err := v.ValidateSession(context.Background(), candidate, teacherB, nil)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !verdict.HasConflict {
		t.Fatalf("overlapping sessions in the same room must conflict")
	}
	if len(verdict.Classes) != 1 || verdict.Classes[0] != ConflictClassroom {
		t.Fatalf("expected [classroom], got %v", verdict.Classes)
	}
}

func TestValidateSessionWeekDisjointnessSuppressesConflict(t *testing.T) {
	room := uuid.New()
	teacher := uuid.New()
	src := &fakeSource{sessions: []SessionRecord{
		newSession(room, uuid.New(), 1, "09:00", "10:00", "1-8"),
	}}
	v := NewValidator(src)

	candidate := newSession(room, teacher, 1, "09:00", "10:00", "9-16")
	verdict, err := v.ValidateSession(context.Background(), candidate, teacher, nil)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if verdict.HasConflict {
		t.Fatalf("week-disjoint sessions must not conflict")
	}
}

func TestValidateSessionSelfExclusionOnUpdate(t *testing.T) {
	room := uuid.New()
	teacher := uuid.New()
	existing := newSession(room, teacher, 1, "09:00", "10:00", "1-16")
	src := &fakeSource{sessions: []SessionRecord{existing}}
	v := NewValidator(src)

	// updating the session against itself must not report a self-conflict
	verdict, err := v.ValidateSession(context.Background(), existing, teacher, &existing.SessionID)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if verdict.HasConflict {
		t.Fatalf("a session must never conflict with itself on update, got %v", verdict.Classes)
	}
}

func TestValidateSessionEndToEnd(t *testing.T) {
	room101 := uuid.New()
	teacherA := uuid.New()
	teacherB := uuid.New()
	src := &fakeSource{sessions: []SessionRecord{
		newSession(room101, teacherA, 1, "08:00", "09:40", "1-16"),
	}}
	v := NewValidator(src)

	candidate := newSession(room101, teacherB, 1, "09:00", "10:00", "1-8")
	verdict, err := v.ValidateSession(context.Background(), candidate, teacherB, nil)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !verdict.HasConflict {
		t.Fatalf("expected a classroom conflict")
	}
	if len(verdict.Classes) != 1 || verdict.Classes[0] != ConflictClassroom {
		t.Fatalf("expected exactly [classroom], got %v", verdict.Classes)
	}
}

func TestValidateSessionReportsBothClasses(t *testing.T) {
	room := uuid.New()
	teacher := uuid.New()
	src := &fakeSource{sessions: []SessionRecord{
		newSession(room, teacher, 2, "10:00", "12:00", "1-16"),
	}}
	v := NewValidator(src)

	candidate := newSession(room, teacher, 2, "11:00", "13:00", "1-16")
	verdict, err := v.ValidateSession(context.Background(), candidate, teacher, nil)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if len(verdict.Classes) != 2 || verdict.Classes[0] != ConflictClassroom || verdict.Classes[1] != ConflictTeacher {
		t.Fatalf("expected [classroom teacher], got %v", verdict.Classes)
	}
	if verdict.Tag() != "classroom,teacher" {
		t.Fatalf("expected tag classroom,teacher, got %q", verdict.Tag())
	}
}

func TestValidateSessionStrictInputErrors(t *testing.T) {
	v := NewValidator(&fakeSource{})
	room := uuid.New()
	teacher := uuid.New()

	tests := []struct {
		name      string
		candidate SessionRecord
	}{
		{name: "weekday too low", candidate: newSession(room, teacher, 0, "08:00", "09:00", "1-16")},
		{name: "weekday too high", candidate: newSession(room, teacher, 8, "08:00", "09:00", "1-16")},
		{name: "inverted interval", candidate: newSession(room, teacher, 1, "10:00", "09:00", "1-16")},
		{name: "zero-length interval", candidate: newSession(room, teacher, 1, "09:00", "09:00", "1-16")},
		{name: "bad start time", candidate: newSession(room, teacher, 1, "morning", "09:00", "1-16")},
		{name: "empty weeks", candidate: newSession(room, teacher, 1, "08:00", "09:00", "")},
		{name: "garbage weeks", candidate: newSession(room, teacher, 1, "08:00", "09:00", "xyz")},
	}
	for _, tc := range tests {
		if _, err := v.ValidateSession(context.Background(), tc.candidate, teacher, nil); !errors.Is(err, ErrInvalidScheduleInput) {
			t.Fatalf("%s: expected ErrInvalidScheduleInput, got %v", tc.name, err)
		}
	}
}

func TestScanTreatsCorruptStoredTimeAsConflict(t *testing.T) {
	room := uuid.New()
	teacher := uuid.New()
	corrupt := newSession(room, uuid.New(), 1, "not-a-time", "10:00", "1-16")
	src := &fakeSource{sessions: []SessionRecord{corrupt}}
	v := NewValidator(src)

	// fail-safe: a row whose stored time can't be parsed may hide a real
	// double-booking, so it must flag rather than pass
	candidate := newSession(room, teacher, 1, "14:00", "15:00", "1-16")
	verdict, err := v.ValidateSession(context.Background(), candidate, teacher, nil)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !verdict.HasConflict {
		t.Fatalf("corrupt stored time must force a conflict")
	}
}

func TestScanSkipsExistingSessionsWithEmptyWeeks(t *testing.T) {
	room := uuid.New()
	teacher := uuid.New()
	src := &fakeSource{sessions: []SessionRecord{
		newSession(room, uuid.New(), 1, "09:00", "10:00", ""),
	}}
	v := NewValidator(src)

	candidate := newSession(room, teacher, 1, "09:00", "10:00", "1-16")
	verdict, err := v.ValidateSession(context.Background(), candidate, teacher, nil)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if verdict.HasConflict {
		t.Fatalf("an existing session with no parseable weeks has nothing to collide with")
	}
}

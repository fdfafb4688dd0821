package service

import (
	"testing"

	"github.com/google/uuid"
)

func TestAnnotateGridMarksBothPeers(t *testing.T) {
	room := uuid.New()
	a := newSession(room, uuid.New(), 1, "09:00", "10:30", "1-16")
	b := newSession(room, uuid.New(), 1, "10:00", "11:00", "1-16")
	c := newSession(room, uuid.New(), 1, "14:00", "15:00", "1-16")

	out := AnnotateGrid([]SessionRecord{a, b, c})
	if len(out) != 3 {
		t.Fatalf("expected 3 annotated sessions, got %d", len(out))
	}
	if !out[0].Verdict.HasConflict || !out[1].Verdict.HasConflict {
		t.Fatalf("both colliding sessions must be flagged, got %v / %v", out[0].Verdict, out[1].Verdict)
	}
	if out[2].Verdict.HasConflict {
		t.Fatalf("the afternoon session does not collide with anything")
	}
	for _, i := range []int{0, 1} {
		if len(out[i].Verdict.Classes) != 1 || out[i].Verdict.Classes[0] != ConflictClassroom {
			t.Fatalf("session %d: expected [classroom], got %v", i, out[i].Verdict.Classes)
		}
	}
}

func TestAnnotateGridPreservesInputOrder(t *testing.T) {
	room := uuid.New()
	sessions := []SessionRecord{
		newSession(room, uuid.New(), 3, "08:00", "09:00", "1-16"),
		newSession(room, uuid.New(), 1, "10:00", "11:00", "1-16"),
		newSession(uuid.New(), uuid.New(), 2, "09:00", "10:00", "1-16"),
	}
	out := AnnotateGrid(sessions)
	for i := range sessions {
		if out[i].SessionID != sessions[i].SessionID {
			t.Fatalf("order not preserved at index %d", i)
		}
	}
}

func TestAnnotateGridTeacherConflictAcrossRooms(t *testing.T) {
	teacher := uuid.New()
	a := newSession(uuid.New(), teacher, 1, "09:00", "10:30", "1-16")
	b := newSession(uuid.New(), teacher, 1, "10:00", "11:00", "1-16")

	out := AnnotateGrid([]SessionRecord{a, b})
	for i := range out {
		if len(out[i].Verdict.Classes) != 1 || out[i].Verdict.Classes[0] != ConflictTeacher {
			t.Fatalf("session %d: expected [teacher], got %v", i, out[i].Verdict.Classes)
		}
	}
}

func TestAnnotateGridAccumulatesBothClassesRoomFirst(t *testing.T) {
	room := uuid.New()
	teacher := uuid.New()
	a := newSession(room, teacher, 1, "09:00", "10:30", "1-16")
	b := newSession(room, teacher, 1, "10:00", "11:00", "1-16")

	out := AnnotateGrid([]SessionRecord{a, b})
	for i := range out {
		if out[i].Verdict.Tag() != "classroom,teacher" {
			t.Fatalf("session %d: expected tag classroom,teacher, got %q", i, out[i].Verdict.Tag())
		}
	}
}

func TestAnnotateGridWeekDisjointGroups(t *testing.T) {
	room := uuid.New()
	a := newSession(room, uuid.New(), 1, "09:00", "10:00", "1-8")
	b := newSession(room, uuid.New(), 1, "09:00", "10:00", "9-16")

	out := AnnotateGrid([]SessionRecord{a, b})
	for i := range out {
		if out[i].Verdict.HasConflict {
			t.Fatalf("session %d: week-disjoint sessions must not conflict", i)
		}
	}
}

func TestAnnotateGridSurvivesCorruptRows(t *testing.T) {
	room := uuid.New()
	good1 := newSession(room, uuid.New(), 1, "09:00", "10:30", "1-16")
	good2 := newSession(room, uuid.New(), 1, "10:00", "11:00", "1-16")
	corrupt := newSession(room, uuid.New(), 1, "banana", "??", "not-weeks")

	out := AnnotateGrid([]SessionRecord{good1, corrupt, good2})
	if len(out) != 3 {
		t.Fatalf("a corrupt row must not abort the render, got %d rows", len(out))
	}
	if !out[0].Verdict.HasConflict || !out[2].Verdict.HasConflict {
		t.Fatalf("good rows must still be scanned around a corrupt one")
	}
}

func TestAnnotateGridDeduplicatesClassTags(t *testing.T) {
	// one session colliding with two peers in the same room still carries
	// the classroom class once
	room := uuid.New()
	wide := newSession(room, uuid.New(), 1, "08:00", "12:00", "1-16")
	p1 := newSession(room, uuid.New(), 1, "08:30", "09:30", "1-16")
	p2 := newSession(room, uuid.New(), 1, "10:00", "11:00", "1-16")

	out := AnnotateGrid([]SessionRecord{wide, p1, p2})
	if len(out[0].Verdict.Classes) != 1 {
		t.Fatalf("expected a single classroom tag, got %v", out[0].Verdict.Classes)
	}
}

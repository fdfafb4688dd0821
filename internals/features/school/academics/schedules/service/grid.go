package service

import (
	"github.com/google/uuid"
)

// AnnotatedSession is a session plus its conflict verdict; computed per
// request for the grid view, never persisted.
type AnnotatedSession struct {
	SessionRecord
	Verdict ConflictVerdict
}

// gridBooking is one normalized entry in a per-resource, per-weekday group.
// idx points back into the result slice so both peers of a collision can be
// flagged.
type gridBooking struct {
	idx   int
	start int
	end   int
	weeks WeekSet
}

type groupKey struct {
	resource uuid.UUID
	weekday  int
}

// AnnotateGrid runs the pairwise conflict scan over a whole grid's worth of
// sessions, already filtered by the caller (semester, optional teacher or
// classroom). Every session involved in at least one collision is flagged
// with its conflict classes, classroom before teacher. Input ordering is
// preserved. Normalization is lenient: a corrupt row gets the fallback
// weeks/time and scanning continues, so one bad record never aborts the
// whole render.
func AnnotateGrid(sessions []SessionRecord) []AnnotatedSession {
	out := make([]AnnotatedSession, len(sessions))
	classroomBookings := make(map[groupKey][]gridBooking)
	teacherBookings := make(map[groupKey][]gridBooking)

	for i, s := range sessions {
		out[i] = AnnotatedSession{SessionRecord: s}

		start, err := ParseClock(NormalizeClock(s.StartTime))
		if err != nil {
			continue
		}
		end, err := ParseClock(NormalizeClock(s.EndTime))
		if err != nil {
			continue
		}
		b := gridBooking{idx: i, start: start, end: end, weeks: ParseWeeksLenient(s.Weeks)}

		if s.ClassroomID != uuid.Nil {
			k := groupKey{resource: s.ClassroomID, weekday: s.Weekday}
			classroomBookings[k] = append(classroomBookings[k], b)
		}
		if s.TeacherID != uuid.Nil {
			k := groupKey{resource: s.TeacherID, weekday: s.Weekday}
			teacherBookings[k] = append(teacherBookings[k], b)
		}
	}

	// classroom first so accumulated class tags come out room-class first
	markGroupConflicts(out, classroomBookings, ConflictClassroom)
	markGroupConflicts(out, teacherBookings, ConflictTeacher)

	return out
}

// markGroupConflicts does the all-pairs scan within each group. Groups are
// small (sessions per room per day), so O(n²) per group is fine; it must be
// all pairs because one session may conflict with more than one peer.
func markGroupConflicts(out []AnnotatedSession, groups map[groupKey][]gridBooking, class ConflictClass) {
	for _, bookings := range groups {
		if len(bookings) < 2 {
			continue
		}
		for i := 0; i < len(bookings); i++ {
			for j := i + 1; j < len(bookings); j++ {
				bi, bj := bookings[i], bookings[j]
				if !intervalsOverlap(bi.start, bi.end, bj.start, bj.end) {
					continue
				}
				if !bi.weeks.Intersects(bj.weeks) {
					continue
				}
				out[bi.idx].Verdict.addClass(class)
				out[bj.idx].Verdict.addClass(class)
			}
		}
	}
}

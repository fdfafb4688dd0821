package dto

import (
	"time"

	"github.com/google/uuid"

	"schooladmin_backend/internals/features/school/academics/schedules/model"
	"schooladmin_backend/internals/features/school/academics/schedules/service"
)

type CreateScheduleRequest struct {
	ScheduleOfferingID  uuid.UUID `json:"schedule_offering_id" validate:"required"`
	ScheduleClassroomID uuid.UUID `json:"schedule_classroom_id" validate:"required"`
	ScheduleDayOfWeek   int       `json:"schedule_day_of_week" validate:"required,gte=1,lte=7"`
	ScheduleStartTime   string    `json:"schedule_start_time" validate:"required"`
	ScheduleEndTime     string    `json:"schedule_end_time" validate:"required"`
	ScheduleWeeks       string    `json:"schedule_weeks" validate:"required,max=120"`
}

type UpdateScheduleRequest struct {
	ScheduleOfferingID  *uuid.UUID `json:"schedule_offering_id"`
	ScheduleClassroomID *uuid.UUID `json:"schedule_classroom_id"`
	ScheduleDayOfWeek   *int       `json:"schedule_day_of_week" validate:"omitempty,gte=1,lte=7"`
	ScheduleStartTime   *string    `json:"schedule_start_time"`
	ScheduleEndTime     *string    `json:"schedule_end_time"`
	ScheduleWeeks       *string    `json:"schedule_weeks" validate:"omitempty,max=120"`
}

var dayNames = map[int]string{
	1: "Monday",
	2: "Tuesday",
	3: "Wednesday",
	4: "Thursday",
	5: "Friday",
	6: "Saturday",
	7: "Sunday",
}

func DayName(d int) string { return dayNames[d] }

type ScheduleResponse struct {
	ScheduleID          uuid.UUID `json:"schedule_id"`
	ScheduleOfferingID  uuid.UUID `json:"schedule_offering_id"`
	ScheduleClassroomID uuid.UUID `json:"schedule_classroom_id"`
	ScheduleDayOfWeek   int       `json:"schedule_day_of_week"`
	ScheduleDayName     string    `json:"schedule_day_name"`
	ScheduleStartTime   string    `json:"schedule_start_time"`
	ScheduleEndTime     string    `json:"schedule_end_time"`
	ScheduleWeeks       string    `json:"schedule_weeks"`
	ScheduleWeeksList   []int64   `json:"schedule_weeks_list"`
	ScheduleCreatedAt   time.Time `json:"schedule_created_at"`
	ScheduleUpdatedAt   time.Time `json:"schedule_updated_at"`
}

func ToScheduleResponse(m *model.ScheduleModel) ScheduleResponse {
	weeks := []int64(m.ScheduleWeeksExpanded)
	if weeks == nil {
		weeks = []int64{}
	}
	return ScheduleResponse{
		ScheduleID:          m.ScheduleID,
		ScheduleOfferingID:  m.ScheduleOfferingID,
		ScheduleClassroomID: m.ScheduleClassroomID,
		ScheduleDayOfWeek:   m.ScheduleDayOfWeek,
		ScheduleDayName:     DayName(m.ScheduleDayOfWeek),
		ScheduleStartTime:   m.ScheduleStartTime,
		ScheduleEndTime:     m.ScheduleEndTime,
		ScheduleWeeks:       m.ScheduleWeeks,
		ScheduleWeeksList:   weeks,
		ScheduleCreatedAt:   m.ScheduleCreatedAt,
		ScheduleUpdatedAt:   m.ScheduleUpdatedAt,
	}
}

// GridItemResponse is one cell of the timetable grid: a session with its
// display fields and conflict markers.
type GridItemResponse struct {
	ScheduleID          uuid.UUID `json:"schedule_id"`
	ScheduleOfferingID  uuid.UUID `json:"schedule_offering_id"`
	ScheduleClassroomID uuid.UUID `json:"schedule_classroom_id"`
	TeacherID           uuid.UUID `json:"teacher_id"`
	ScheduleDayOfWeek   int       `json:"schedule_day_of_week"`
	ScheduleDayName     string    `json:"schedule_day_name"`
	ScheduleStartTime   string    `json:"schedule_start_time"`
	ScheduleEndTime     string    `json:"schedule_end_time"`
	ScheduleWeeks       string    `json:"schedule_weeks"`

	CourseCode  string `json:"course_code,omitempty"`
	CourseName  string `json:"course_name,omitempty"`
	TeacherName string `json:"teacher_name,omitempty"`
	RoomNo      string `json:"room_no,omitempty"`
	Semester    string `json:"semester,omitempty"`

	HasConflict  bool   `json:"has_conflict"`
	ConflictType string `json:"conflict_type,omitempty"`
}

func ToGridItemResponse(a *service.AnnotatedSession) GridItemResponse {
	return GridItemResponse{
		ScheduleID:          a.SessionID,
		ScheduleOfferingID:  a.OfferingID,
		ScheduleClassroomID: a.ClassroomID,
		TeacherID:           a.TeacherID,
		ScheduleDayOfWeek:   a.Weekday,
		ScheduleDayName:     DayName(a.Weekday),
		ScheduleStartTime:   a.StartTime,
		ScheduleEndTime:     a.EndTime,
		ScheduleWeeks:       a.Weeks,
		HasConflict:         a.Verdict.HasConflict,
		ConflictType:        a.Verdict.Tag(),
	}
}

package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schooladmin_backend/internals/features/school/academics/schedules/service"
)

// ScheduleRepository is the GORM-backed session source the conflict engine
// reads from. Teacher identity lives on the course offering, so every query
// joins through course_offerings.
type ScheduleRepository struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *ScheduleRepository {
	return &ScheduleRepository{DB: db}
}

var _ service.SessionSource = (*ScheduleRepository)(nil)

// sessionRow is the scan target; service.SessionRecord carries no gorm tags.
type sessionRow struct {
	SessionID   uuid.UUID `gorm:"column:schedule_id"`
	OfferingID  uuid.UUID `gorm:"column:schedule_offering_id"`
	ClassroomID uuid.UUID `gorm:"column:schedule_classroom_id"`
	TeacherID   uuid.UUID `gorm:"column:teacher_id"`
	Weekday     int       `gorm:"column:schedule_day_of_week"`
	StartTime   string    `gorm:"column:schedule_start_time"`
	EndTime     string    `gorm:"column:schedule_end_time"`
	Weeks       string    `gorm:"column:schedule_weeks"`
}

func (r sessionRow) toRecord() service.SessionRecord {
	return service.SessionRecord{
		SessionID:   r.SessionID,
		OfferingID:  r.OfferingID,
		ClassroomID: r.ClassroomID,
		TeacherID:   r.TeacherID,
		Weekday:     r.Weekday,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Weeks:       r.Weeks,
	}
}

const sessionSelect = `
	schedules.schedule_id,
	schedules.schedule_offering_id,
	schedules.schedule_classroom_id,
	course_offerings.course_offering_teacher_id AS teacher_id,
	schedules.schedule_day_of_week,
	schedules.schedule_start_time,
	schedules.schedule_end_time,
	schedules.schedule_weeks`

func (r *ScheduleRepository) base(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx).
		Table("schedules").
		Select(sessionSelect).
		Joins(`JOIN course_offerings ON course_offerings.course_offering_id = schedules.schedule_offering_id
			AND course_offerings.course_offering_deleted_at IS NULL`).
		Where("schedules.schedule_deleted_at IS NULL")
}

func (r *ScheduleRepository) FindSessions(ctx context.Context, classroomID uuid.UUID, weekday int, excludeID *uuid.UUID) ([]service.SessionRecord, error) {
	q := r.base(ctx).
		Where("schedules.schedule_classroom_id = ?", classroomID).
		Where("schedules.schedule_day_of_week = ?", weekday)
	if excludeID != nil {
		q = q.Where("schedules.schedule_id <> ?", *excludeID)
	}

	var rows []sessionRow
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return toRecords(rows), nil
}

func (r *ScheduleRepository) FindSessionsByTeacher(ctx context.Context, teacherID uuid.UUID, weekday int, excludeID *uuid.UUID) ([]service.SessionRecord, error) {
	q := r.base(ctx).
		Where("course_offerings.course_offering_teacher_id = ?", teacherID).
		Where("schedules.schedule_day_of_week = ?", weekday)
	if excludeID != nil {
		q = q.Where("schedules.schedule_id <> ?", *excludeID)
	}

	var rows []sessionRow
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return toRecords(rows), nil
}

func (r *ScheduleRepository) FindSessionsForGrid(ctx context.Context, semester string, teacherID, classroomID *uuid.UUID) ([]service.SessionRecord, error) {
	rows, err := r.findGridRows(ctx, semester, teacherID, classroomID)
	if err != nil {
		return nil, err
	}
	out := make([]service.SessionRecord, len(rows))
	for i := range rows {
		out[i] = rows[i].Record()
	}
	return out, nil
}

// GridRow is a session plus the display fields the timetable grid renders.
type GridRow struct {
	SessionID   uuid.UUID `gorm:"column:schedule_id"`
	OfferingID  uuid.UUID `gorm:"column:schedule_offering_id"`
	ClassroomID uuid.UUID `gorm:"column:schedule_classroom_id"`
	TeacherID   uuid.UUID `gorm:"column:teacher_id"`
	Weekday     int       `gorm:"column:schedule_day_of_week"`
	StartTime   string    `gorm:"column:schedule_start_time"`
	EndTime     string    `gorm:"column:schedule_end_time"`
	Weeks       string    `gorm:"column:schedule_weeks"`

	CourseCode  string `gorm:"column:course_code"`
	CourseName  string `gorm:"column:course_name"`
	TeacherName string `gorm:"column:teacher_name"`
	RoomNo      string `gorm:"column:room_no"`
	Semester    string `gorm:"column:semester"`
}

func (g GridRow) Record() service.SessionRecord {
	return service.SessionRecord{
		SessionID:   g.SessionID,
		OfferingID:  g.OfferingID,
		ClassroomID: g.ClassroomID,
		TeacherID:   g.TeacherID,
		Weekday:     g.Weekday,
		StartTime:   g.StartTime,
		EndTime:     g.EndTime,
		Weeks:       g.Weeks,
	}
}

// FindGridRows returns the grid's sessions with their display joins, ordered
// weekday then start time for a stable render.
func (r *ScheduleRepository) FindGridRows(ctx context.Context, semester string, teacherID, classroomID *uuid.UUID) ([]GridRow, error) {
	return r.findGridRows(ctx, semester, teacherID, classroomID)
}

func (r *ScheduleRepository) findGridRows(ctx context.Context, semester string, teacherID, classroomID *uuid.UUID) ([]GridRow, error) {
	q := r.DB.WithContext(ctx).
		Table("schedules").
		Select(sessionSelect + `,
			courses.course_code,
			courses.course_name,
			users.user_full_name AS teacher_name,
			classrooms.classroom_room_no AS room_no,
			course_offerings.course_offering_semester AS semester`).
		Joins(`JOIN course_offerings ON course_offerings.course_offering_id = schedules.schedule_offering_id
			AND course_offerings.course_offering_deleted_at IS NULL`).
		Joins(`JOIN courses ON courses.course_id = course_offerings.course_offering_course_id
			AND courses.course_deleted_at IS NULL`).
		Joins(`JOIN users ON users.user_id = course_offerings.course_offering_teacher_id`).
		Joins(`JOIN classrooms ON classrooms.classroom_id = schedules.schedule_classroom_id
			AND classrooms.classroom_deleted_at IS NULL`).
		Where("schedules.schedule_deleted_at IS NULL")

	if semester != "" {
		q = q.Where("course_offerings.course_offering_semester = ?", semester)
	}
	if teacherID != nil {
		q = q.Where("course_offerings.course_offering_teacher_id = ?", *teacherID)
	}
	if classroomID != nil {
		q = q.Where("schedules.schedule_classroom_id = ?", *classroomID)
	}

	var rows []GridRow
	if err := q.
		Order("schedules.schedule_day_of_week ASC, schedules.schedule_start_time ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func toRecords(rows []sessionRow) []service.SessionRecord {
	out := make([]service.SessionRecord, len(rows))
	for i := range rows {
		out[i] = rows[i].toRecord()
	}
	return out
}

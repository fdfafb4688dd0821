package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ScheduleModel is one scheduled meeting of a course offering in a room:
// weekday 1..7 (Monday=1), times stored as "HH:MM" text, weeks as canonical
// range text ("1-16", "1,3,5-7"). WeeksExpanded mirrors the parsed week set
// so SQL can filter by week number without reparsing the text.
type ScheduleModel struct {
	ScheduleID uuid.UUID `gorm:"column:schedule_id;type:uuid;default:gen_random_uuid();primaryKey" json:"schedule_id"`

	ScheduleOfferingID  uuid.UUID `gorm:"column:schedule_offering_id;type:uuid;not null;index" json:"schedule_offering_id"`
	ScheduleClassroomID uuid.UUID `gorm:"column:schedule_classroom_id;type:uuid;not null;index" json:"schedule_classroom_id"`

	ScheduleDayOfWeek int    `gorm:"column:schedule_day_of_week;not null" json:"schedule_day_of_week"`
	ScheduleStartTime string `gorm:"column:schedule_start_time;type:varchar(5);not null" json:"schedule_start_time"`
	ScheduleEndTime   string `gorm:"column:schedule_end_time;type:varchar(5);not null" json:"schedule_end_time"`

	ScheduleWeeks         string        `gorm:"column:schedule_weeks;type:varchar(120);not null" json:"schedule_weeks"`
	ScheduleWeeksExpanded pq.Int64Array `gorm:"column:schedule_weeks_expanded;type:int[]" json:"schedule_weeks_expanded,omitempty"`

	ScheduleCreatedAt time.Time      `gorm:"column:schedule_created_at;type:timestamptz;not null;autoCreateTime" json:"schedule_created_at"`
	ScheduleUpdatedAt time.Time      `gorm:"column:schedule_updated_at;type:timestamptz;not null;autoUpdateTime" json:"schedule_updated_at"`
	ScheduleDeletedAt gorm.DeletedAt `gorm:"column:schedule_deleted_at;index" json:"schedule_deleted_at,omitempty"`
}

func (ScheduleModel) TableName() string { return "schedules" }

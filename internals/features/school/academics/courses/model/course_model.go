package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CourseModel struct {
	CourseID uuid.UUID `gorm:"column:course_id;type:uuid;default:gen_random_uuid();primaryKey" json:"course_id"`

	CourseCode    string `gorm:"column:course_code;type:varchar(20);not null;uniqueIndex" json:"course_code"`
	CourseName    string `gorm:"column:course_name;type:varchar(120);not null" json:"course_name"`
	CourseCredits int    `gorm:"column:course_credits;not null;default:0" json:"course_credits"`
	CourseHours   int    `gorm:"column:course_hours;not null;default:0" json:"course_hours"`

	CourseSyllabus datatypes.JSONMap `gorm:"column:course_syllabus;type:jsonb" json:"course_syllabus,omitempty"`

	CourseCreatedAt time.Time      `gorm:"column:course_created_at;type:timestamptz;not null;autoCreateTime" json:"course_created_at"`
	CourseUpdatedAt time.Time      `gorm:"column:course_updated_at;type:timestamptz;not null;autoUpdateTime" json:"course_updated_at"`
	CourseDeletedAt gorm.DeletedAt `gorm:"column:course_deleted_at;index" json:"course_deleted_at,omitempty"`
}

func (CourseModel) TableName() string { return "courses" }

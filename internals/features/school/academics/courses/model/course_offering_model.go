package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CourseOfferingModel binds a course to a teacher for one semester.
// Schedule sessions resolve their teacher through this row.
type CourseOfferingModel struct {
	CourseOfferingID uuid.UUID `gorm:"column:course_offering_id;type:uuid;default:gen_random_uuid();primaryKey" json:"course_offering_id"`

	CourseOfferingCourseID  uuid.UUID `gorm:"column:course_offering_course_id;type:uuid;not null;index" json:"course_offering_course_id"`
	CourseOfferingTeacherID uuid.UUID `gorm:"column:course_offering_teacher_id;type:uuid;not null;index" json:"course_offering_teacher_id"`

	CourseOfferingSemester string `gorm:"column:course_offering_semester;type:varchar(20);not null;index" json:"course_offering_semester"`

	CourseOfferingCapacity int `gorm:"column:course_offering_capacity;not null;default:0" json:"course_offering_capacity"`
	CourseOfferingEnrolled int `gorm:"column:course_offering_enrolled;not null;default:0" json:"course_offering_enrolled"`

	CourseOfferingCreatedAt time.Time      `gorm:"column:course_offering_created_at;type:timestamptz;not null;autoCreateTime" json:"course_offering_created_at"`
	CourseOfferingUpdatedAt time.Time      `gorm:"column:course_offering_updated_at;type:timestamptz;not null;autoUpdateTime" json:"course_offering_updated_at"`
	CourseOfferingDeletedAt gorm.DeletedAt `gorm:"column:course_offering_deleted_at;index" json:"course_offering_deleted_at,omitempty"`
}

func (CourseOfferingModel) TableName() string { return "course_offerings" }

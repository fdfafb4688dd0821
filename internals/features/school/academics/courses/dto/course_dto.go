package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"schooladmin_backend/internals/features/school/academics/courses/model"
)

type CreateCourseRequest struct {
	CourseCode     string         `json:"course_code" validate:"required,min=2,max=20"`
	CourseName     string         `json:"course_name" validate:"required,min=2,max=120"`
	CourseCredits  int            `json:"course_credits" validate:"gte=0,lte=20"`
	CourseHours    int            `json:"course_hours" validate:"gte=0,lte=200"`
	CourseSyllabus map[string]any `json:"course_syllabus"`
}

type UpdateCourseRequest struct {
	CourseCode     *string         `json:"course_code" validate:"omitempty,min=2,max=20"`
	CourseName     *string         `json:"course_name" validate:"omitempty,min=2,max=120"`
	CourseCredits  *int            `json:"course_credits" validate:"omitempty,gte=0,lte=20"`
	CourseHours    *int            `json:"course_hours" validate:"omitempty,gte=0,lte=200"`
	CourseSyllabus *map[string]any `json:"course_syllabus"`
}

type CourseResponse struct {
	CourseID       uuid.UUID      `json:"course_id"`
	CourseCode     string         `json:"course_code"`
	CourseName     string         `json:"course_name"`
	CourseCredits  int            `json:"course_credits"`
	CourseHours    int            `json:"course_hours"`
	CourseSyllabus map[string]any `json:"course_syllabus,omitempty"`
	CourseCreatedAt time.Time     `json:"course_created_at"`
	CourseUpdatedAt time.Time     `json:"course_updated_at"`
}

func ToCourseResponse(m *model.CourseModel) CourseResponse {
	return CourseResponse{
		CourseID:        m.CourseID,
		CourseCode:      m.CourseCode,
		CourseName:      m.CourseName,
		CourseCredits:   m.CourseCredits,
		CourseHours:     m.CourseHours,
		CourseSyllabus:  map[string]any(m.CourseSyllabus),
		CourseCreatedAt: m.CourseCreatedAt,
		CourseUpdatedAt: m.CourseUpdatedAt,
	}
}

func SyllabusFromMap(m map[string]any) datatypes.JSONMap {
	if m == nil {
		return nil
	}
	return datatypes.JSONMap(m)
}

package dto

import (
	"time"

	"github.com/google/uuid"

	"schooladmin_backend/internals/features/school/academics/courses/model"
)

type CreateCourseOfferingRequest struct {
	CourseOfferingCourseID  uuid.UUID `json:"course_offering_course_id" validate:"required"`
	CourseOfferingTeacherID uuid.UUID `json:"course_offering_teacher_id" validate:"required"`
	CourseOfferingSemester  string    `json:"course_offering_semester" validate:"required,min=4,max=20"`
	CourseOfferingCapacity  int       `json:"course_offering_capacity" validate:"gte=0,lte=1000"`
}

type UpdateCourseOfferingRequest struct {
	CourseOfferingTeacherID *uuid.UUID `json:"course_offering_teacher_id"`
	CourseOfferingSemester  *string    `json:"course_offering_semester" validate:"omitempty,min=4,max=20"`
	CourseOfferingCapacity  *int       `json:"course_offering_capacity" validate:"omitempty,gte=0,lte=1000"`
}

type CourseOfferingResponse struct {
	CourseOfferingID        uuid.UUID `json:"course_offering_id"`
	CourseOfferingCourseID  uuid.UUID `json:"course_offering_course_id"`
	CourseOfferingTeacherID uuid.UUID `json:"course_offering_teacher_id"`
	CourseOfferingSemester  string    `json:"course_offering_semester"`
	CourseOfferingCapacity  int       `json:"course_offering_capacity"`
	CourseOfferingEnrolled  int       `json:"course_offering_enrolled"`
	CourseOfferingCreatedAt time.Time `json:"course_offering_created_at"`
	CourseOfferingUpdatedAt time.Time `json:"course_offering_updated_at"`

	// Filled from joins on list/detail endpoints.
	CourseCode  string `json:"course_code,omitempty"`
	CourseName  string `json:"course_name,omitempty"`
	TeacherName string `json:"teacher_name,omitempty"`
}

func ToCourseOfferingResponse(m *model.CourseOfferingModel) CourseOfferingResponse {
	return CourseOfferingResponse{
		CourseOfferingID:        m.CourseOfferingID,
		CourseOfferingCourseID:  m.CourseOfferingCourseID,
		CourseOfferingTeacherID: m.CourseOfferingTeacherID,
		CourseOfferingSemester:  m.CourseOfferingSemester,
		CourseOfferingCapacity:  m.CourseOfferingCapacity,
		CourseOfferingEnrolled:  m.CourseOfferingEnrolled,
		CourseOfferingCreatedAt: m.CourseOfferingCreatedAt,
		CourseOfferingUpdatedAt: m.CourseOfferingUpdatedAt,
	}
}

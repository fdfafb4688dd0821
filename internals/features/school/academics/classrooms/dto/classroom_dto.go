package dto

import (
	"time"

	"github.com/google/uuid"

	"schooladmin_backend/internals/features/school/academics/classrooms/model"
)

type CreateClassroomRequest struct {
	ClassroomRoomNo    string   `json:"classroom_room_no" validate:"required,min=1,max=30"`
	ClassroomBuilding  string   `json:"classroom_building" validate:"required,min=1,max=60"`
	ClassroomCapacity  int      `json:"classroom_capacity" validate:"gte=0,lte=1000"`
	ClassroomRoomType  string   `json:"classroom_room_type" validate:"omitempty,oneof=lecture lab seminar auditorium"`
	ClassroomEquipment []string `json:"classroom_equipment" validate:"omitempty,dive,min=1,max=60"`
}

type UpdateClassroomRequest struct {
	ClassroomRoomNo    *string   `json:"classroom_room_no" validate:"omitempty,min=1,max=30"`
	ClassroomBuilding  *string   `json:"classroom_building" validate:"omitempty,min=1,max=60"`
	ClassroomCapacity  *int      `json:"classroom_capacity" validate:"omitempty,gte=0,lte=1000"`
	ClassroomRoomType  *string   `json:"classroom_room_type" validate:"omitempty,oneof=lecture lab seminar auditorium"`
	ClassroomEquipment *[]string `json:"classroom_equipment" validate:"omitempty,dive,min=1,max=60"`
	ClassroomIsActive  *bool     `json:"classroom_is_active"`
}

type ClassroomResponse struct {
	ClassroomID        uuid.UUID `json:"classroom_id"`
	ClassroomRoomNo    string    `json:"classroom_room_no"`
	ClassroomBuilding  string    `json:"classroom_building"`
	ClassroomCapacity  int       `json:"classroom_capacity"`
	ClassroomRoomType  string    `json:"classroom_room_type"`
	ClassroomEquipment []string  `json:"classroom_equipment"`
	ClassroomIsActive  bool      `json:"classroom_is_active"`
	ClassroomCreatedAt time.Time `json:"classroom_created_at"`
	ClassroomUpdatedAt time.Time `json:"classroom_updated_at"`
}

func ToClassroomResponse(m *model.ClassroomModel) ClassroomResponse {
	equipment := []string(m.ClassroomEquipment)
	if equipment == nil {
		equipment = []string{}
	}
	return ClassroomResponse{
		ClassroomID:        m.ClassroomID,
		ClassroomRoomNo:    m.ClassroomRoomNo,
		ClassroomBuilding:  m.ClassroomBuilding,
		ClassroomCapacity:  m.ClassroomCapacity,
		ClassroomRoomType:  m.ClassroomRoomType,
		ClassroomEquipment: equipment,
		ClassroomIsActive:  m.ClassroomIsActive,
		ClassroomCreatedAt: m.ClassroomCreatedAt,
		ClassroomUpdatedAt: m.ClassroomUpdatedAt,
	}
}

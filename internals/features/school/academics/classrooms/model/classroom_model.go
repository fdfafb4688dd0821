package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type ClassroomModel struct {
	ClassroomID uuid.UUID `gorm:"column:classroom_id;type:uuid;default:gen_random_uuid();primaryKey" json:"classroom_id"`

	ClassroomRoomNo   string `gorm:"column:classroom_room_no;type:varchar(30);not null;uniqueIndex" json:"classroom_room_no"`
	ClassroomBuilding string `gorm:"column:classroom_building;type:varchar(60);not null" json:"classroom_building"`
	ClassroomCapacity int    `gorm:"column:classroom_capacity;not null;default:0" json:"classroom_capacity"`
	ClassroomRoomType string `gorm:"column:classroom_room_type;type:varchar(30);not null;default:'lecture'" json:"classroom_room_type"`

	ClassroomEquipment pq.StringArray `gorm:"column:classroom_equipment;type:text[]" json:"classroom_equipment,omitempty"`

	ClassroomIsActive bool `gorm:"column:classroom_is_active;not null;default:true" json:"classroom_is_active"`

	ClassroomCreatedAt time.Time      `gorm:"column:classroom_created_at;type:timestamptz;not null;autoCreateTime" json:"classroom_created_at"`
	ClassroomUpdatedAt time.Time      `gorm:"column:classroom_updated_at;type:timestamptz;not null;autoUpdateTime" json:"classroom_updated_at"`
	ClassroomDeletedAt gorm.DeletedAt `gorm:"column:classroom_deleted_at;index" json:"classroom_deleted_at,omitempty"`
}

func (ClassroomModel) TableName() string { return "classrooms" }

package seeds

import (
	"github.com/lib/pq"
	"gorm.io/gorm"

	"schooladmin_backend/internals/features/school/academics/classrooms/model"
)

func SeedClassrooms(db *gorm.DB) error {
	fixtures := []model.ClassroomModel{
		{
			ClassroomRoomNo:    "101",
			ClassroomBuilding:  "A",
			ClassroomCapacity:  40,
			ClassroomRoomType:  "lecture",
			ClassroomEquipment: pq.StringArray{"projector", "whiteboard"},
			ClassroomIsActive:  true,
		},
		{
			ClassroomRoomNo:    "102",
			ClassroomBuilding:  "A",
			ClassroomCapacity:  40,
			ClassroomRoomType:  "lecture",
			ClassroomEquipment: pq.StringArray{"projector"},
			ClassroomIsActive:  true,
		},
		{
			ClassroomRoomNo:    "Lab-1",
			ClassroomBuilding:  "B",
			ClassroomCapacity:  24,
			ClassroomRoomType:  "lab",
			ClassroomEquipment: pq.StringArray{"computers", "projector", "ac"},
			ClassroomIsActive:  true,
		},
	}

	for i := range fixtures {
		if err := db.
			Where("classroom_room_no = ?", fixtures[i].ClassroomRoomNo).
			FirstOrCreate(&fixtures[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

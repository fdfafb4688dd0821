package database

import (
	"log"
	"os"

	classroomModel "schooladmin_backend/internals/features/school/academics/classrooms/model"
	courseModel "schooladmin_backend/internals/features/school/academics/courses/model"
	scheduleModel "schooladmin_backend/internals/features/school/academics/schedules/model"
	userModel "schooladmin_backend/internals/features/users/model"
)

// AutoMigrate runs the schema migration. Gated on DB_AUTOMIGRATE=true;
// production schemas are managed out of band.
func AutoMigrate() {
	if os.Getenv("DB_AUTOMIGRATE") != "true" {
		return
	}

	log.Println("🛠️  Running schema migration")
	if err := DB.AutoMigrate(
		&userModel.UserModel{},
		&classroomModel.ClassroomModel{},
		&courseModel.CourseModel{},
		&courseModel.CourseOfferingModel{},
		&scheduleModel.ScheduleModel{},
	); err != nil {
		log.Fatalf("❌ migration failed: %v", err)
	}
	log.Println("✅ Migration done")
}

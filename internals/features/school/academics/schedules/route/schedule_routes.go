package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schooladmin_backend/internals/features/school/academics/schedules/controller"
)

// ScheduleAdminRoutes mounts schedule CRUD under the admin group. Writes run
// the conflict gate; a collision comes back as 409 with the conflict classes.
func ScheduleAdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.New(db, v)

	grp := admin.Group("/schedules")
	grp.Post("/", ctl.Create)
	grp.Get("/", ctl.List)
	grp.Get("/grid-view", ctl.GridView)
	grp.Get("/by-offering/:id", ctl.ByOffering)
	grp.Get("/:id", ctl.GetByID)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}

// ScheduleUserRoutes exposes the read-only timetable to signed-in users.
func ScheduleUserRoutes(user fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.New(db, v)

	grp := user.Group("/schedules")
	grp.Get("/", ctl.List)
	grp.Get("/grid-view", ctl.GridView)
	grp.Get("/by-offering/:id", ctl.ByOffering)
	grp.Get("/:id", ctl.GetByID)
}

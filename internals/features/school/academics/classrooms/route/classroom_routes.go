package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schooladmin_backend/internals/features/school/academics/classrooms/controller"
)

// ClassroomAdminRoutes mounts classroom CRUD under the admin group.
func ClassroomAdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.New(db, v)

	grp := admin.Group("/classrooms")
	grp.Post("/", ctl.Create)
	grp.Get("/", ctl.List)
	grp.Get("/:id", ctl.GetByID)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}

// ClassroomUserRoutes exposes read-only classroom endpoints to signed-in users.
func ClassroomUserRoutes(user fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.New(db, v)

	grp := user.Group("/classrooms")
	grp.Get("/", ctl.List)
	grp.Get("/:id", ctl.GetByID)
}

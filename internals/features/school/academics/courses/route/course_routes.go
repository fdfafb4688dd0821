package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schooladmin_backend/internals/features/school/academics/courses/controller"
)

// CourseAdminRoutes mounts course and course-offering CRUD under the admin group.
func CourseAdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate) {
	courseCtl := controller.New(db, v)
	offeringCtl := controller.NewOffering(db, v)

	courses := admin.Group("/courses")
	courses.Post("/", courseCtl.Create)
	courses.Get("/", courseCtl.List)
	courses.Get("/:id", courseCtl.GetByID)
	courses.Put("/:id", courseCtl.Update)
	courses.Delete("/:id", courseCtl.Delete)

	offerings := admin.Group("/course-offerings")
	offerings.Post("/", offeringCtl.Create)
	offerings.Get("/", offeringCtl.List)
	offerings.Get("/:id", offeringCtl.GetByID)
	offerings.Put("/:id", offeringCtl.Update)
	offerings.Delete("/:id", offeringCtl.Delete)
}

// CourseUserRoutes exposes read-only course endpoints to signed-in users.
func CourseUserRoutes(user fiber.Router, db *gorm.DB, v *validator.Validate) {
	courseCtl := controller.New(db, v)
	offeringCtl := controller.NewOffering(db, v)

	courses := user.Group("/courses")
	courses.Get("/", courseCtl.List)
	courses.Get("/:id", courseCtl.GetByID)

	offerings := user.Group("/course-offerings")
	offerings.Get("/", offeringCtl.List)
	offerings.Get("/:id", offeringCtl.GetByID)
}

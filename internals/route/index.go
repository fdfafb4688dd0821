package routes

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schooladmin_backend/internals/configs"
	classroomRoute "schooladmin_backend/internals/features/school/academics/classrooms/route"
	courseRoute "schooladmin_backend/internals/features/school/academics/courses/route"
	scheduleRoute "schooladmin_backend/internals/features/school/academics/schedules/route"
	userRoute "schooladmin_backend/internals/features/users/route"
	"schooladmin_backend/internals/middlewares/auth"
)

// SetupRoutes mounts the whole API surface:
//
//	/api/auth  public auth endpoints
//	/api/a     admin-only management (JWT + admin role)
//	/api/u     read endpoints for any signed-in user
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	v := validator.New()

	api := app.Group("/api")

	userRoute.AuthRoutes(api, db, v)

	guard := auth.AuthJWT(auth.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	})

	admin := api.Group("/a", guard, auth.RequireRoles("admin"))
	userRoute.UserAdminRoutes(admin, db, v)
	classroomRoute.ClassroomAdminRoutes(admin, db, v)
	courseRoute.CourseAdminRoutes(admin, db, v)
	scheduleRoute.ScheduleAdminRoutes(admin, db, v)

	user := api.Group("/u", guard)
	userRoute.UserSelfRoutes(user, db, v)
	classroomRoute.ClassroomUserRoutes(user, db, v)
	courseRoute.CourseUserRoutes(user, db, v)
	scheduleRoute.ScheduleUserRoutes(user, db, v)

	BaseRoutes(app, db)
}

package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schooladmin_backend/internals/features/users/controller"
	"schooladmin_backend/internals/middlewares"
)

// AuthRoutes mounts the public auth endpoints under /api/auth.
func AuthRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewAuth(db, v)

	auth := api.Group("/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	auth.Post("/refresh", ctl.Refresh)
	auth.Post("/logout", ctl.Logout)
}

// UserAdminRoutes mounts user management under the admin group.
func UserAdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate) {
	authCtl := controller.NewAuth(db, v)
	userCtl := controller.NewUser(db, v)

	users := admin.Group("/users")
	users.Post("/", authCtl.Register)
	users.Get("/", userCtl.List)
	users.Get("/:id", userCtl.GetByID)
	users.Put("/:id", userCtl.Update)
	users.Delete("/:id", userCtl.Delete)
}

// UserSelfRoutes mounts profile endpoints for any signed-in user.
func UserSelfRoutes(user fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewAuth(db, v)
	user.Get("/me", ctl.Me)
}

package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schooladmin_backend/internals/features/users/dto"
	"schooladmin_backend/internals/features/users/model"
	helper "schooladmin_backend/internals/helpers"
)

type UserController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewUser(db *gorm.DB, v *validator.Validate) *UserController {
	return &UserController{DB: db, Validate: v}
}

// GET /api/a/users?role=&keyword=&page=&per_page=
func (ctl *UserController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 200)

	tx := ctl.DB.WithContext(c.UserContext()).Model(&model.UserModel{})

	if role := strings.TrimSpace(c.Query("role")); role != "" {
		tx = tx.Where("user_role = ?", role)
	}
	if kw := strings.TrimSpace(c.Query("keyword")); kw != "" {
		like := "%" + strings.ToLower(kw) + "%"
		tx = tx.Where("(LOWER(user_full_name) LIKE ? OR LOWER(user_email) LIKE ?)", like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		log.Printf("[User.List] count failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count users")
	}

	var rows []model.UserModel
	if err := tx.
		Order("user_full_name ASC").
		Limit(paging.PerPage).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		log.Printf("[User.List] query failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch users")
	}

	out := make([]dto.UserResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.ToUserResponse(&rows[i]))
	}

	return helper.JsonList(c, "Users fetched", out, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/a/users/:id
func (ctl *UserController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var m model.UserModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&m, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		log.Printf("[User.GetByID] query failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}

	return helper.JsonOK(c, "User found", dto.ToUserResponse(&m))
}

// PUT /api/a/users/:id
func (ctl *UserController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var m model.UserModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&m, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		log.Printf("[User.Update] fetch failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}

	if req.UserFullName != nil {
		m.UserFullName = strings.TrimSpace(*req.UserFullName)
	}
	if req.UserRole != nil {
		m.UserRole = *req.UserRole
	}
	if req.UserIsActive != nil {
		m.UserIsActive = *req.UserIsActive
	}

	if err := ctl.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		log.Printf("[User.Update] save failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update user")
	}

	return helper.JsonUpdated(c, "User updated", dto.ToUserResponse(&m))
}

// DELETE /api/a/users/:id (soft delete)
func (ctl *UserController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Delete(&model.UserModel{}, "user_id = ?", id)
	if res.Error != nil {
		log.Printf("[User.Delete] delete failed: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete user")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	return helper.JsonDeleted(c, "User deleted", fiber.Map{"user_id": id})
}

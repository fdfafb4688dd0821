package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schooladmin_backend/internals/features/school/academics/courses/dto"
	"schooladmin_backend/internals/features/school/academics/courses/model"
	helper "schooladmin_backend/internals/helpers"
)

type CourseController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *CourseController {
	return &CourseController{DB: db, Validate: v}
}

// POST /api/a/courses
func (ctl *CourseController) Create(c *fiber.Ctx) error {
	var req dto.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}

	req.CourseCode = strings.ToUpper(strings.TrimSpace(req.CourseCode))
	req.CourseName = strings.TrimSpace(req.CourseName)

	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	m := model.CourseModel{
		CourseCode:     req.CourseCode,
		CourseName:     req.CourseName,
		CourseCredits:  req.CourseCredits,
		CourseHours:    req.CourseHours,
		CourseSyllabus: dto.SyllabusFromMap(req.CourseSyllabus),
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Course code already exists")
		}
		log.Printf("[Course.Create] insert failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create course")
	}

	return helper.JsonCreated(c, "Course created", dto.ToCourseResponse(&m))
}

// GET /api/a/courses?keyword=&page=&per_page=
func (ctl *CourseController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 200)

	tx := ctl.DB.WithContext(c.UserContext()).Model(&model.CourseModel{})

	if kw := strings.TrimSpace(c.Query("keyword")); kw != "" {
		like := "%" + strings.ToLower(kw) + "%"
		tx = tx.Where("(LOWER(course_code) LIKE ? OR LOWER(course_name) LIKE ?)", like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		log.Printf("[Course.List] count failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count courses")
	}

	var rows []model.CourseModel
	if err := tx.
		Order("course_code ASC").
		Limit(paging.PerPage).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		log.Printf("[Course.List] query failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch courses")
	}

	out := make([]dto.CourseResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.ToCourseResponse(&rows[i]))
	}

	return helper.JsonList(c, "Courses fetched", out, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/a/courses/:id
func (ctl *CourseController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
	}

	var m model.CourseModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&m, "course_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		log.Printf("[Course.GetByID] query failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch course")
	}

	return helper.JsonOK(c, "Course found", dto.ToCourseResponse(&m))
}

// PUT /api/a/courses/:id
func (ctl *CourseController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
	}

	var req dto.UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var m model.CourseModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&m, "course_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		log.Printf("[Course.Update] fetch failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch course")
	}

	if req.CourseCode != nil {
		m.CourseCode = strings.ToUpper(strings.TrimSpace(*req.CourseCode))
	}
	if req.CourseName != nil {
		m.CourseName = strings.TrimSpace(*req.CourseName)
	}
	if req.CourseCredits != nil {
		m.CourseCredits = *req.CourseCredits
	}
	if req.CourseHours != nil {
		m.CourseHours = *req.CourseHours
	}
	if req.CourseSyllabus != nil {
		m.CourseSyllabus = dto.SyllabusFromMap(*req.CourseSyllabus)
	}

	if err := ctl.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Course code already exists")
		}
		log.Printf("[Course.Update] save failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update course")
	}

	return helper.JsonUpdated(c, "Course updated", dto.ToCourseResponse(&m))
}

// DELETE /api/a/courses/:id (soft delete)
func (ctl *CourseController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
	}

	if err := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&model.CourseOfferingModel{}).
			Where("course_offering_course_id = ?", id).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to check offerings")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "Course still has offerings")
		}

		res := tx.Delete(&model.CourseModel{}, "course_id = ?", id)
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete course")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Course not found")
		}
		return nil
	}); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		log.Printf("[Course.Delete] tx failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete course")
	}

	return helper.JsonDeleted(c, "Course deleted", fiber.Map{"course_id": id})
}

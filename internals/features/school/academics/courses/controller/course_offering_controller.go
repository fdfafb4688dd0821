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
	userModel "schooladmin_backend/internals/features/users/model"
	helper "schooladmin_backend/internals/helpers"
)

type CourseOfferingController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewOffering(db *gorm.DB, v *validator.Validate) *CourseOfferingController {
	return &CourseOfferingController{DB: db, Validate: v}
}

// POST /api/a/course-offerings
func (ctl *CourseOfferingController) Create(c *fiber.Ctx) error {
	var req dto.CreateCourseOfferingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	req.CourseOfferingSemester = strings.TrimSpace(req.CourseOfferingSemester)

	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	db := ctl.DB.WithContext(c.UserContext())

	// Both sides of the binding must exist.
	var course model.CourseModel
	if err := db.First(&course, "course_id = ?", req.CourseOfferingCourseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		log.Printf("[CourseOffering.Create] course lookup failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch course")
	}

	var teacher userModel.UserModel
	if err := db.First(&teacher, "user_id = ? AND user_role = ?", req.CourseOfferingTeacherID, "teacher").Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
		}
		log.Printf("[CourseOffering.Create] teacher lookup failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch teacher")
	}

	m := model.CourseOfferingModel{
		CourseOfferingCourseID:  req.CourseOfferingCourseID,
		CourseOfferingTeacherID: req.CourseOfferingTeacherID,
		CourseOfferingSemester:  req.CourseOfferingSemester,
		CourseOfferingCapacity:  req.CourseOfferingCapacity,
	}

	if err := db.Create(&m).Error; err != nil {
		log.Printf("[CourseOffering.Create] insert failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create course offering")
	}

	resp := dto.ToCourseOfferingResponse(&m)
	resp.CourseCode = course.CourseCode
	resp.CourseName = course.CourseName
	resp.TeacherName = teacher.UserFullName

	return helper.JsonCreated(c, "Course offering created", resp)
}

// GET /api/a/course-offerings?semester=&course_id=&teacher_id=&page=&per_page=
func (ctl *CourseOfferingController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 200)

	type offeringRow struct {
		model.CourseOfferingModel
		CourseCode  string `gorm:"column:course_code"`
		CourseName  string `gorm:"column:course_name"`
		TeacherName string `gorm:"column:teacher_name"`
	}

	tx := ctl.DB.WithContext(c.UserContext()).
		Model(&model.CourseOfferingModel{}).
		Select(`course_offerings.*, courses.course_code, courses.course_name, users.user_full_name AS teacher_name`).
		Joins(`JOIN courses ON courses.course_id = course_offerings.course_offering_course_id AND courses.course_deleted_at IS NULL`).
		Joins(`JOIN users ON users.user_id = course_offerings.course_offering_teacher_id`)

	if sem := strings.TrimSpace(c.Query("semester")); sem != "" {
		tx = tx.Where("course_offering_semester = ?", sem)
	}
	if cid := strings.TrimSpace(c.Query("course_id")); cid != "" {
		id, err := uuid.Parse(cid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course_id filter")
		}
		tx = tx.Where("course_offering_course_id = ?", id)
	}
	if tid := strings.TrimSpace(c.Query("teacher_id")); tid != "" {
		id, err := uuid.Parse(tid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid teacher_id filter")
		}
		tx = tx.Where("course_offering_teacher_id = ?", id)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		log.Printf("[CourseOffering.List] count failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count course offerings")
	}

	var rows []offeringRow
	if err := tx.
		Order("course_offering_semester DESC, courses.course_code ASC").
		Limit(paging.PerPage).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		log.Printf("[CourseOffering.List] query failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch course offerings")
	}

	out := make([]dto.CourseOfferingResponse, 0, len(rows))
	for i := range rows {
		resp := dto.ToCourseOfferingResponse(&rows[i].CourseOfferingModel)
		resp.CourseCode = rows[i].CourseCode
		resp.CourseName = rows[i].CourseName
		resp.TeacherName = rows[i].TeacherName
		out = append(out, resp)
	}

	return helper.JsonList(c, "Course offerings fetched", out, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/a/course-offerings/:id
func (ctl *CourseOfferingController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid offering id")
	}

	var m model.CourseOfferingModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&m, "course_offering_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course offering not found")
		}
		log.Printf("[CourseOffering.GetByID] query failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch course offering")
	}

	return helper.JsonOK(c, "Course offering found", dto.ToCourseOfferingResponse(&m))
}

// PUT /api/a/course-offerings/:id
func (ctl *CourseOfferingController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid offering id")
	}

	var req dto.UpdateCourseOfferingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	db := ctl.DB.WithContext(c.UserContext())

	var m model.CourseOfferingModel
	if err := db.First(&m, "course_offering_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course offering not found")
		}
		log.Printf("[CourseOffering.Update] fetch failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch course offering")
	}

	if req.CourseOfferingTeacherID != nil {
		var teacher userModel.UserModel
		if err := db.First(&teacher, "user_id = ? AND user_role = ?", *req.CourseOfferingTeacherID, "teacher").Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
			}
			log.Printf("[CourseOffering.Update] teacher lookup failed: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch teacher")
		}
		m.CourseOfferingTeacherID = *req.CourseOfferingTeacherID
	}
	if req.CourseOfferingSemester != nil {
		m.CourseOfferingSemester = strings.TrimSpace(*req.CourseOfferingSemester)
	}
	if req.CourseOfferingCapacity != nil {
		m.CourseOfferingCapacity = *req.CourseOfferingCapacity
	}

	if err := db.Save(&m).Error; err != nil {
		log.Printf("[CourseOffering.Update] save failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update course offering")
	}

	return helper.JsonUpdated(c, "Course offering updated", dto.ToCourseOfferingResponse(&m))
}

// DELETE /api/a/course-offerings/:id (soft delete)
func (ctl *CourseOfferingController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid offering id")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Delete(&model.CourseOfferingModel{}, "course_offering_id = ?", id)
	if res.Error != nil {
		log.Printf("[CourseOffering.Delete] delete failed: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete course offering")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Course offering not found")
	}

	return helper.JsonDeleted(c, "Course offering deleted", fiber.Map{"course_offering_id": id})
}

package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"schooladmin_backend/internals/features/school/academics/classrooms/dto"
	"schooladmin_backend/internals/features/school/academics/classrooms/model"
	helper "schooladmin_backend/internals/helpers"
)

type ClassroomController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *ClassroomController {
	return &ClassroomController{DB: db, Validate: v}
}

// POST /api/a/classrooms
func (ctl *ClassroomController) Create(c *fiber.Ctx) error {
	var req dto.CreateClassroomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}

	req.ClassroomRoomNo = strings.TrimSpace(req.ClassroomRoomNo)
	req.ClassroomBuilding = strings.TrimSpace(req.ClassroomBuilding)
	if req.ClassroomRoomType == "" {
		req.ClassroomRoomType = "lecture"
	}

	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	m := model.ClassroomModel{
		ClassroomRoomNo:    req.ClassroomRoomNo,
		ClassroomBuilding:  req.ClassroomBuilding,
		ClassroomCapacity:  req.ClassroomCapacity,
		ClassroomRoomType:  req.ClassroomRoomType,
		ClassroomEquipment: pq.StringArray(req.ClassroomEquipment),
		ClassroomIsActive:  true,
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Room number already exists")
		}
		log.Printf("[Classroom.Create] insert failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create classroom")
	}

	return helper.JsonCreated(c, "Classroom created", dto.ToClassroomResponse(&m))
}

// GET /api/a/classrooms?keyword=&building=&room_type=&is_active=&page=&per_page=
func (ctl *ClassroomController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 200)

	tx := ctl.DB.WithContext(c.UserContext()).Model(&model.ClassroomModel{})

	if kw := strings.TrimSpace(c.Query("keyword")); kw != "" {
		like := "%" + strings.ToLower(kw) + "%"
		tx = tx.Where("(LOWER(classroom_room_no) LIKE ? OR LOWER(classroom_building) LIKE ?)", like, like)
	}
	if b := strings.TrimSpace(c.Query("building")); b != "" {
		tx = tx.Where("LOWER(classroom_building) = LOWER(?)", b)
	}
	if rt := strings.TrimSpace(c.Query("room_type")); rt != "" {
		tx = tx.Where("classroom_room_type = ?", rt)
	}
	if ia := c.Query("is_active"); ia != "" {
		tx = tx.Where("classroom_is_active = ?", strings.EqualFold(ia, "true"))
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		log.Printf("[Classroom.List] count failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count classrooms")
	}

	var rows []model.ClassroomModel
	if err := tx.
		Order("classroom_building ASC, classroom_room_no ASC").
		Limit(paging.PerPage).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		log.Printf("[Classroom.List] query failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch classrooms")
	}

	out := make([]dto.ClassroomResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.ToClassroomResponse(&rows[i]))
	}

	return helper.JsonList(c, "Classrooms fetched", out, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/a/classrooms/:id
func (ctl *ClassroomController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid classroom id")
	}

	var m model.ClassroomModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&m, "classroom_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Classroom not found")
		}
		log.Printf("[Classroom.GetByID] query failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch classroom")
	}

	return helper.JsonOK(c, "Classroom found", dto.ToClassroomResponse(&m))
}

// PUT /api/a/classrooms/:id
func (ctl *ClassroomController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid classroom id")
	}

	var req dto.UpdateClassroomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var m model.ClassroomModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&m, "classroom_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Classroom not found")
		}
		log.Printf("[Classroom.Update] fetch failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch classroom")
	}

	if req.ClassroomRoomNo != nil {
		m.ClassroomRoomNo = strings.TrimSpace(*req.ClassroomRoomNo)
	}
	if req.ClassroomBuilding != nil {
		m.ClassroomBuilding = strings.TrimSpace(*req.ClassroomBuilding)
	}
	if req.ClassroomCapacity != nil {
		m.ClassroomCapacity = *req.ClassroomCapacity
	}
	if req.ClassroomRoomType != nil {
		m.ClassroomRoomType = *req.ClassroomRoomType
	}
	if req.ClassroomEquipment != nil {
		m.ClassroomEquipment = pq.StringArray(*req.ClassroomEquipment)
	}
	if req.ClassroomIsActive != nil {
		m.ClassroomIsActive = *req.ClassroomIsActive
	}

	if err := ctl.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Room number already exists")
		}
		log.Printf("[Classroom.Update] save failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update classroom")
	}

	return helper.JsonUpdated(c, "Classroom updated", dto.ToClassroomResponse(&m))
}

// DELETE /api/a/classrooms/:id (soft delete)
func (ctl *ClassroomController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid classroom id")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Delete(&model.ClassroomModel{}, "classroom_id = ?", id)
	if res.Error != nil {
		log.Printf("[Classroom.Delete] delete failed: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete classroom")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Classroom not found")
	}

	return helper.JsonDeleted(c, "Classroom deleted", fiber.Map{"classroom_id": id})
}

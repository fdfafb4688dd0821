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

	classroomModel "schooladmin_backend/internals/features/school/academics/classrooms/model"
	offeringModel "schooladmin_backend/internals/features/school/academics/courses/model"
	"schooladmin_backend/internals/features/school/academics/schedules/dto"
	"schooladmin_backend/internals/features/school/academics/schedules/model"
	"schooladmin_backend/internals/features/school/academics/schedules/repository"
	"schooladmin_backend/internals/features/school/academics/schedules/service"
	helper "schooladmin_backend/internals/helpers"
)

type ScheduleController struct {
	DB        *gorm.DB
	Validate  *validator.Validate
	Repo      *repository.ScheduleRepository
	Validator *service.Validator
}

func New(db *gorm.DB, v *validator.Validate) *ScheduleController {
	repo := repository.New(db)
	return &ScheduleController{
		DB:        db,
		Validate:  v,
		Repo:      repo,
		Validator: service.NewValidator(repo),
	}
}

// POST /api/a/schedules
func (ctl *ScheduleController) Create(c *fiber.Ctx) error {
	var req dto.CreateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}

	req.ScheduleStartTime = strings.TrimSpace(req.ScheduleStartTime)
	req.ScheduleEndTime = strings.TrimSpace(req.ScheduleEndTime)
	req.ScheduleWeeks = strings.TrimSpace(req.ScheduleWeeks)

	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	db := ctl.DB.WithContext(c.UserContext())

	var offering offeringModel.CourseOfferingModel
	if err := db.First(&offering, "course_offering_id = ?", req.ScheduleOfferingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course offering not found")
		}
		log.Printf("[Schedule.Create] offering lookup failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch course offering")
	}

	var room classroomModel.ClassroomModel
	if err := db.First(&room, "classroom_id = ?", req.ScheduleClassroomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Classroom not found")
		}
		log.Printf("[Schedule.Create] classroom lookup failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch classroom")
	}

	candidate := service.SessionRecord{
		OfferingID:  req.ScheduleOfferingID,
		ClassroomID: req.ScheduleClassroomID,
		Weekday:     req.ScheduleDayOfWeek,
		StartTime:   req.ScheduleStartTime,
		EndTime:     req.ScheduleEndTime,
		Weeks:       req.ScheduleWeeks,
	}

	verdict, err := ctl.Validator.ValidateSession(c.UserContext(), candidate, offering.CourseOfferingTeacherID, nil)
	if err != nil {
		if errors.Is(err, service.ErrInvalidScheduleInput) {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		log.Printf("[Schedule.Create] conflict scan failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check conflicts")
	}
	if verdict.HasConflict {
		return helper.JsonWithDetails(c, fiber.StatusConflict, "Schedule conflicts with an existing session", fiber.Map{
			"conflict_type":    verdict.Tag(),
			"conflict_classes": verdict.Classes,
		})
	}

	// Store the canonical week text plus the expanded list for cheap querying.
	weekSet, err := service.ParseWeeks(req.ScheduleWeeks)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	m := model.ScheduleModel{
		ScheduleOfferingID:    req.ScheduleOfferingID,
		ScheduleClassroomID:   req.ScheduleClassroomID,
		ScheduleDayOfWeek:     req.ScheduleDayOfWeek,
		ScheduleStartTime:     req.ScheduleStartTime,
		ScheduleEndTime:       req.ScheduleEndTime,
		ScheduleWeeks:         service.FormatWeeks(weekSet),
		ScheduleWeeksExpanded: weeksToInt64(weekSet),
	}

	if err := db.Create(&m).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "foreign") || strings.Contains(msg, "violat") {
			return helper.JsonError(c, fiber.StatusConflict, "Referenced offering or classroom no longer exists")
		}
		log.Printf("[Schedule.Create] insert failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create schedule")
	}

	return helper.JsonCreated(c, "Schedule created", dto.ToScheduleResponse(&m))
}

// GET /api/a/schedules?semester=&offering_id=&classroom_id=&teacher_id=&day_of_week=&keyword=&page=&per_page=
func (ctl *ScheduleController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 200)

	tx := ctl.DB.WithContext(c.UserContext()).
		Model(&model.ScheduleModel{}).
		Joins(`JOIN course_offerings ON course_offerings.course_offering_id = schedules.schedule_offering_id
			AND course_offerings.course_offering_deleted_at IS NULL`)

	if sem := strings.TrimSpace(c.Query("semester")); sem != "" {
		tx = tx.Where("course_offerings.course_offering_semester = ?", sem)
	}
	if oid := strings.TrimSpace(c.Query("offering_id")); oid != "" {
		id, err := uuid.Parse(oid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid offering_id filter")
		}
		tx = tx.Where("schedules.schedule_offering_id = ?", id)
	}
	if cid := strings.TrimSpace(c.Query("classroom_id")); cid != "" {
		id, err := uuid.Parse(cid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid classroom_id filter")
		}
		tx = tx.Where("schedules.schedule_classroom_id = ?", id)
	}
	if tid := strings.TrimSpace(c.Query("teacher_id")); tid != "" {
		id, err := uuid.Parse(tid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid teacher_id filter")
		}
		tx = tx.Where("course_offerings.course_offering_teacher_id = ?", id)
	}
	if dow := strings.TrimSpace(c.Query("day_of_week")); dow != "" {
		tx = tx.Where("schedules.schedule_day_of_week = ?", dow)
	}
	if kw := strings.TrimSpace(c.Query("keyword")); kw != "" {
		like := "%" + strings.ToLower(kw) + "%"
		tx = tx.
			Joins(`JOIN courses ON courses.course_id = course_offerings.course_offering_course_id
				AND courses.course_deleted_at IS NULL`).
			Where("(LOWER(courses.course_code) LIKE ? OR LOWER(courses.course_name) LIKE ?)", like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		log.Printf("[Schedule.List] count failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count schedules")
	}

	var rows []model.ScheduleModel
	if err := tx.
		Select("schedules.*").
		Order("schedules.schedule_day_of_week ASC, schedules.schedule_start_time ASC").
		Limit(paging.PerPage).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		log.Printf("[Schedule.List] query failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch schedules")
	}

	out := make([]dto.ScheduleResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.ToScheduleResponse(&rows[i]))
	}

	return helper.JsonList(c, "Schedules fetched", out, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/u/schedules/grid-view?semester=&teacher_id=&classroom_id=
//
// Returns every matching session annotated with conflict markers. Conflicts
// are rendered, not rejected: the grid shows double-bookings so staff can fix
// them.
func (ctl *ScheduleController) GridView(c *fiber.Ctx) error {
	semester := strings.TrimSpace(c.Query("semester"))

	var teacherID, classroomID *uuid.UUID
	if tid := strings.TrimSpace(c.Query("teacher_id")); tid != "" {
		id, err := uuid.Parse(tid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid teacher_id filter")
		}
		teacherID = &id
	}
	if cid := strings.TrimSpace(c.Query("classroom_id")); cid != "" {
		id, err := uuid.Parse(cid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid classroom_id filter")
		}
		classroomID = &id
	}

	rows, err := ctl.Repo.FindGridRows(c.UserContext(), semester, teacherID, classroomID)
	if err != nil {
		log.Printf("[Schedule.GridView] query failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch schedule grid")
	}

	records := make([]service.SessionRecord, len(rows))
	for i := range rows {
		records[i] = rows[i].Record()
	}
	annotated := service.AnnotateGrid(records)

	out := make([]dto.GridItemResponse, 0, len(annotated))
	for i := range annotated {
		item := dto.ToGridItemResponse(&annotated[i])
		item.CourseCode = rows[i].CourseCode
		item.CourseName = rows[i].CourseName
		item.TeacherName = rows[i].TeacherName
		item.RoomNo = rows[i].RoomNo
		item.Semester = rows[i].Semester
		out = append(out, item)
	}

	return helper.JsonOK(c, "Schedule grid fetched", out)
}

// GET /api/a/schedules/:id
func (ctl *ScheduleController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid schedule id")
	}

	var m model.ScheduleModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&m, "schedule_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Schedule not found")
		}
		log.Printf("[Schedule.GetByID] query failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch schedule")
	}

	return helper.JsonOK(c, "Schedule found", dto.ToScheduleResponse(&m))
}

// GET /api/a/schedules/by-offering/:id
func (ctl *ScheduleController) ByOffering(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid offering id")
	}

	var rows []model.ScheduleModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("schedule_offering_id = ?", id).
		Order("schedule_day_of_week ASC, schedule_start_time ASC").
		Find(&rows).Error; err != nil {
		log.Printf("[Schedule.ByOffering] query failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch schedules")
	}

	out := make([]dto.ScheduleResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.ToScheduleResponse(&rows[i]))
	}

	return helper.JsonOK(c, "Schedules fetched", out)
}

// PUT /api/a/schedules/:id
func (ctl *ScheduleController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid schedule id")
	}

	var req dto.UpdateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	db := ctl.DB.WithContext(c.UserContext())

	var m model.ScheduleModel
	if err := db.First(&m, "schedule_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Schedule not found")
		}
		log.Printf("[Schedule.Update] fetch failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch schedule")
	}

	if req.ScheduleOfferingID != nil {
		m.ScheduleOfferingID = *req.ScheduleOfferingID
	}
	if req.ScheduleClassroomID != nil {
		var room classroomModel.ClassroomModel
		if err := db.First(&room, "classroom_id = ?", *req.ScheduleClassroomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "Classroom not found")
			}
			log.Printf("[Schedule.Update] classroom lookup failed: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch classroom")
		}
		m.ScheduleClassroomID = *req.ScheduleClassroomID
	}
	if req.ScheduleDayOfWeek != nil {
		m.ScheduleDayOfWeek = *req.ScheduleDayOfWeek
	}
	if req.ScheduleStartTime != nil {
		m.ScheduleStartTime = strings.TrimSpace(*req.ScheduleStartTime)
	}
	if req.ScheduleEndTime != nil {
		m.ScheduleEndTime = strings.TrimSpace(*req.ScheduleEndTime)
	}
	if req.ScheduleWeeks != nil {
		m.ScheduleWeeks = strings.TrimSpace(*req.ScheduleWeeks)
	}

	var offering offeringModel.CourseOfferingModel
	if err := db.First(&offering, "course_offering_id = ?", m.ScheduleOfferingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course offering not found")
		}
		log.Printf("[Schedule.Update] offering lookup failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch course offering")
	}

	candidate := service.SessionRecord{
		SessionID:   m.ScheduleID,
		OfferingID:  m.ScheduleOfferingID,
		ClassroomID: m.ScheduleClassroomID,
		Weekday:     m.ScheduleDayOfWeek,
		StartTime:   m.ScheduleStartTime,
		EndTime:     m.ScheduleEndTime,
		Weeks:       m.ScheduleWeeks,
	}

	// Exclude the row being updated so it doesn't collide with itself.
	verdict, err := ctl.Validator.ValidateSession(c.UserContext(), candidate, offering.CourseOfferingTeacherID, &m.ScheduleID)
	if err != nil {
		if errors.Is(err, service.ErrInvalidScheduleInput) {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		log.Printf("[Schedule.Update] conflict scan failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check conflicts")
	}
	if verdict.HasConflict {
		return helper.JsonWithDetails(c, fiber.StatusConflict, "Schedule conflicts with an existing session", fiber.Map{
			"conflict_type":    verdict.Tag(),
			"conflict_classes": verdict.Classes,
		})
	}

	weekSet, err := service.ParseWeeks(m.ScheduleWeeks)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	m.ScheduleWeeks = service.FormatWeeks(weekSet)
	m.ScheduleWeeksExpanded = weeksToInt64(weekSet)

	if err := db.Save(&m).Error; err != nil {
		log.Printf("[Schedule.Update] save failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update schedule")
	}

	return helper.JsonUpdated(c, "Schedule updated", dto.ToScheduleResponse(&m))
}

// DELETE /api/a/schedules/:id (soft delete)
func (ctl *ScheduleController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid schedule id")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Delete(&model.ScheduleModel{}, "schedule_id = ?", id)
	if res.Error != nil {
		log.Printf("[Schedule.Delete] delete failed: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete schedule")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Schedule not found")
	}

	return helper.JsonDeleted(c, "Schedule deleted", fiber.Map{"schedule_id": id})
}

func weeksToInt64(ws service.WeekSet) pq.Int64Array {
	weeks := ws.Weeks()
	out := make(pq.Int64Array, 0, len(weeks))
	for _, w := range weeks {
		out = append(out, int64(w))
	}
	return out
}

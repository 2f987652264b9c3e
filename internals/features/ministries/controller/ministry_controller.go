package controller

import (
	"log"

	database "bethesda_backend/internals/databases"
	"bethesda_backend/internals/features/ministries/dto"
	"bethesda_backend/internals/features/ministries/model"
	helper "bethesda_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const defaultMinistryLimit = 50

type MinistryController struct {
	DB *gorm.DB
}

func NewMinistryController(db *gorm.DB) *MinistryController {
	return &MinistryController{DB: db}
}

// GET /api/ministries?status=active&page=&limit=
func (ctrl *MinistryController) GetMinistries(c *fiber.Ctx) error {
	var q dto.MinistryListQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid query parameters")
	}
	q.Normalize()
	if q.Status != model.MinistryStatusActive {
		return helper.JsonError(c, fiber.StatusBadRequest, "Only active ministries are available")
	}
	paging := helper.ResolvePaging(c, defaultMinistryLimit, helper.MaxPerPage)

	base := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.MinistryModel{}).
		Where("status = ?", q.Status)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		log.Printf("[ERROR] count ministries: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching ministries")
	}

	var ministries []model.MinistryModel
	if err := base.Session(&gorm.Session{}).
		Order("name ASC").Order("id ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&ministries).Error; err != nil {
		log.Printf("[ERROR] list ministries: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching ministries")
	}

	return helper.JsonList(c, dto.ToMinistryResponseList(ministries), helper.BuildPagination(total, paging))
}

// GET /api/ministries/:id
func (ctrl *MinistryController) GetMinistryByID(c *fiber.Ctx) error {
	id, ok := helper.ParseID(c, "id")
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Ministry not found")
	}

	var ministry model.MinistryModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("id = ? AND status = ?", id, model.MinistryStatusActive).
		First(&ministry).Error; err != nil {
		if database.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Ministry not found")
		}
		log.Printf("[ERROR] load ministry %d: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching ministry")
	}
	return helper.JsonOK(c, dto.ToMinistryResponse(&ministry))
}

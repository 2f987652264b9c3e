package controller

import (
	"log"

	database "bethesda_backend/internals/databases"
	"bethesda_backend/internals/features/sermons/dto"
	"bethesda_backend/internals/features/sermons/model"
	helper "bethesda_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const defaultSermonLimit = 10

type SermonController struct {
	DB *gorm.DB
	db *database.Adapter
}

func NewSermonController(db *gorm.DB) *SermonController {
	return &SermonController{DB: db, db: database.NewAdapter(db)}
}

func publishedSermons(q dto.SermonListQuery) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		tx = tx.Where("status = ?", model.SermonStatusPublished)
		if q.Series != "" {
			tx = tx.Where("series = ?", q.Series)
		}
		if q.Speaker != "" {
			tx = tx.Where("speaker = ?", q.Speaker)
		}
		return tx
	}
}

// GET /api/sermons?series=&speaker=&page=&limit=
func (ctrl *SermonController) GetSermons(c *fiber.Ctx) error {
	var q dto.SermonListQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid query parameters")
	}
	q.Normalize()
	paging := helper.ResolvePaging(c, defaultSermonLimit, helper.MaxPerPage)
	ctx := c.UserContext()

	var total int64
	if err := ctrl.DB.WithContext(ctx).
		Model(&model.SermonModel{}).
		Scopes(publishedSermons(q)).
		Count(&total).Error; err != nil {
		log.Printf("[ERROR] count sermons: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching sermons")
	}

	var sermons []model.SermonModel
	if err := ctrl.DB.WithContext(ctx).
		Scopes(publishedSermons(q)).
		Order("date DESC").Order("id DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&sermons).Error; err != nil {
		log.Printf("[ERROR] list sermons: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching sermons")
	}

	return helper.JsonList(c, dto.ToSermonResponseList(sermons), helper.BuildPagination(total, paging))
}

// GET /api/sermons/:id (counts one view per request)
func (ctrl *SermonController) GetSermonByID(c *fiber.Ctx) error {
	id, ok := helper.ParseID(c, "id")
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Sermon not found")
	}
	ctx := c.UserContext()

	n, err := ctrl.db.Update(ctx,
		"UPDATE sermons SET views = views + 1 WHERE id = ? AND status = ?",
		id, model.SermonStatusPublished)
	if err != nil {
		log.Printf("[ERROR] increment sermon %d views: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching sermon")
	}
	if n == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Sermon not found")
	}

	var sermon model.SermonModel
	if err := ctrl.DB.WithContext(ctx).
		Where("id = ? AND status = ?", id, model.SermonStatusPublished).
		First(&sermon).Error; err != nil {
		if database.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sermon not found")
		}
		log.Printf("[ERROR] load sermon %d: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching sermon")
	}

	return helper.JsonOK(c, dto.ToSermonResponse(&sermon))
}

// GET /api/sermons/featured/latest
func (ctrl *SermonController) GetLatestSermon(c *fiber.Ctx) error {
	var sermon model.SermonModel
	err := ctrl.DB.WithContext(c.UserContext()).
		Where("status = ?", model.SermonStatusPublished).
		Order("date DESC").Order("id DESC").
		First(&sermon).Error
	if err != nil {
		if database.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "No sermons found")
		}
		log.Printf("[ERROR] latest sermon: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching latest sermon")
	}
	return helper.JsonOK(c, dto.ToSermonResponse(&sermon))
}

// GET /api/sermons/series/list
func (ctrl *SermonController) GetSeriesList(c *fiber.Ctx) error {
	series := []dto.SeriesCount{}
	if err := ctrl.db.Query(c.UserContext(), &series, `
		SELECT series, COUNT(*) AS count
		FROM sermons
		WHERE status = ? AND series IS NOT NULL AND series <> ''
		GROUP BY series
		ORDER BY series`, model.SermonStatusPublished); err != nil {
		log.Printf("[ERROR] sermon series: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching series")
	}
	return helper.JsonOK(c, series)
}

// GET /api/sermons/speakers/list
func (ctrl *SermonController) GetSpeakersList(c *fiber.Ctx) error {
	speakers := []dto.SpeakerCount{}
	if err := ctrl.db.Query(c.UserContext(), &speakers, `
		SELECT speaker, COUNT(*) AS count
		FROM sermons
		WHERE status = ?
		GROUP BY speaker
		ORDER BY speaker`, model.SermonStatusPublished); err != nil {
		log.Printf("[ERROR] sermon speakers: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching speakers")
	}
	return helper.JsonOK(c, speakers)
}

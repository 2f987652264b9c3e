package controller

import (
	"log"
	"time"

	database "bethesda_backend/internals/databases"
	"bethesda_backend/internals/features/events/dto"
	"bethesda_backend/internals/features/events/model"
	helper "bethesda_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	defaultEventLimit = 20
	featuredLimit     = 3
)

type EventController struct {
	DB  *gorm.DB
	db  *database.Adapter
	Now func() time.Time
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db, db: database.NewAdapter(db), Now: time.Now}
}

// today is midnight UTC of the controller clock; dates are stored as UTC midnights.
func (ctrl *EventController) today() datatypes.Date {
	y, m, d := ctrl.Now().UTC().Date()
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

func publishedEvents(q dto.EventListQuery, today datatypes.Date) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		tx = tx.Where("status = ?", model.EventStatusPublished)
		switch q.Type {
		case dto.TypeUpcoming:
			tx = tx.Where("date >= ?", today)
		case dto.TypePast:
			tx = tx.Where("date < ?", today)
		}
		if q.Category != "" {
			tx = tx.Where("category = ?", q.Category)
		}
		return tx
	}
}

// GET /api/events?type=upcoming|past|all&category=&page=&limit=
func (ctrl *EventController) GetEvents(c *fiber.Ctx) error {
	var q dto.EventListQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid query parameters")
	}
	q.Normalize()
	if !q.ValidType() {
		return helper.JsonError(c, fiber.StatusBadRequest, "type must be one of upcoming, past, all")
	}
	paging := helper.ResolvePaging(c, defaultEventLimit, helper.MaxPerPage)
	ctx := c.UserContext()
	today := ctrl.today()

	var total int64
	if err := ctrl.DB.WithContext(ctx).
		Model(&model.EventModel{}).
		Scopes(publishedEvents(q, today)).
		Count(&total).Error; err != nil {
		log.Printf("[ERROR] count events: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching events")
	}

	var events []model.EventModel
	if err := ctrl.DB.WithContext(ctx).
		Scopes(publishedEvents(q, today)).
		Order("date ASC").Order("start_time ASC").Order("id ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&events).Error; err != nil {
		log.Printf("[ERROR] list events: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching events")
	}

	return helper.JsonList(c, dto.ToEventResponseList(events), helper.BuildPagination(total, paging))
}

// GET /api/events/upcoming/featured
func (ctrl *EventController) GetFeaturedEvents(c *fiber.Ctx) error {
	q := dto.EventListQuery{Type: dto.TypeUpcoming}

	var events []model.EventModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Scopes(publishedEvents(q, ctrl.today())).
		Order("date ASC").Order("start_time ASC").Order("id ASC").
		Limit(featuredLimit).
		Find(&events).Error; err != nil {
		log.Printf("[ERROR] featured events: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching featured events")
	}
	return helper.JsonOK(c, dto.ToEventResponseList(events))
}

// GET /api/events/categories/list
func (ctrl *EventController) GetCategoriesList(c *fiber.Ctx) error {
	categories := []dto.CategoryCount{}
	if err := ctrl.db.Query(c.UserContext(), &categories, `
		SELECT category, COUNT(*) AS count
		FROM events
		WHERE status = ? AND category IS NOT NULL AND category <> ''
		GROUP BY category
		ORDER BY category`, model.EventStatusPublished); err != nil {
		log.Printf("[ERROR] event categories: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching categories")
	}
	return helper.JsonOK(c, categories)
}

// GET /api/events/:id
func (ctrl *EventController) GetEventByID(c *fiber.Ctx) error {
	id, ok := helper.ParseID(c, "id")
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
	}

	var event model.EventModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("id = ? AND status = ?", id, model.EventStatusPublished).
		First(&event).Error; err != nil {
		if database.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		log.Printf("[ERROR] load event %d: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching event")
	}
	return helper.JsonOK(c, dto.ToEventResponse(&event))
}

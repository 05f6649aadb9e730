package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/CornerstoneChurch/initializers"
	"github.com/CornerstoneChurch/models"
	"github.com/doug-martin/goqu/v9"
)

var validEventStatuses = map[string]bool{
	"active":    true,
	"cancelled": true,
	"postponed": true,
}

func GetEvents(c *gin.Context) {
	query := initializers.DB.From("event")

	if status := c.Query("status"); status != "" {
		query = query.Where(goqu.C("status").Eq(status))
	}

	if c.Query("featured") == "true" {
		query = query.Where(goqu.C("is_featured").IsTrue())
	}

	if c.Query("upcoming") == "true" {
		query = query.
			Where(goqu.C("event_date").Gte(goqu.L("CURRENT_DATE"))).
			Order(goqu.I("event_date").Asc())
	} else {
		query = query.Order(goqu.I("event_date").Desc())
	}

	events := []models.Event{}
	if err := query.ScanStructs(&events); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch events", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, events)
}

func GetEvent(c *gin.Context) {
	eventID, err := strconv.Atoi(c.Param("event_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	var event models.Event
	found, err := initializers.DB.From("event").
		Where(goqu.C("event_id").Eq(eventID)).
		ScanStruct(&event)

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch event", "details": err.Error()})
		return
	}

	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	c.JSON(http.StatusOK, event)
}

func validateEvent(event *models.EventCreate) (int, string) {
	missing := missingFields([]requiredField{
		{"title", event.Title},
		{"eventDate", event.Event_Date},
		{"eventTime", event.Event_Time},
		{"location", event.Location},
	})
	if len(missing) > 0 {
		return http.StatusBadRequest, fmt.Sprintf("Missing required fields: %s", strings.Join(missing, ", "))
	}

	if !datePattern.MatchString(event.Event_Date) {
		return http.StatusBadRequest, "Event date must be in YYYY-MM-DD format"
	}

	if event.Status == "" {
		event.Status = "active"
	}
	if !validEventStatuses[event.Status] {
		return http.StatusBadRequest, "Status must be one of: active, cancelled, postponed"
	}

	return 0, ""
}

func CreateEvent(c *gin.Context) {
	var event models.EventCreate
	if err := c.BindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if code, msg := validateEvent(&event); code != 0 {
		c.JSON(code, gin.H{"error": msg})
		return
	}

	insert := initializers.DB.Insert("event").Rows(event).Executor()
	if _, err := insert.Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create event", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event created successfully."})
}

func UpdateEvent(c *gin.Context) {
	eventID, err := strconv.Atoi(c.Param("event_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	var event models.EventCreate
	if err := c.BindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if code, msg := validateEvent(&event); code != 0 {
		c.JSON(code, gin.H{"error": msg})
		return
	}

	var existing models.Event
	found, err := initializers.DB.From("event").
		Where(goqu.C("event_id").Eq(eventID)).
		ScanStruct(&existing)

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch event", "details": err.Error()})
		return
	}

	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	update := initializers.DB.Update("event").
		Set(goqu.Record{
			"title":           event.Title,
			"description":     event.Description,
			"event_date":      event.Event_Date,
			"event_time":      event.Event_Time,
			"location":        event.Location,
			"is_featured":     event.Is_Featured,
			"status":          event.Status,
			"datetime_update": goqu.L("NOW()"),
		}).
		Where(goqu.C("event_id").Eq(eventID)).
		Executor()

	if _, err := update.Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update event", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event updated successfully."})
}

func DeleteEvent(c *gin.Context) {
	eventID, err := strconv.Atoi(c.Param("event_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	var existing models.Event
	found, err := initializers.DB.From("event").
		Where(goqu.C("event_id").Eq(eventID)).
		ScanStruct(&existing)

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch event", "details": err.Error()})
		return
	}

	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	del := initializers.DB.Delete("event").
		Where(goqu.C("event_id").Eq(eventID)).
		Executor()

	if _, err := del.Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete event", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully."})
}

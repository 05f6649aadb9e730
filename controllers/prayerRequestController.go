package controllers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/CornerstoneChurch/initializers"
	"github.com/CornerstoneChurch/models"
	"github.com/CornerstoneChurch/services"
	"github.com/doug-martin/goqu/v9"
)

var validPrayerRequestStatuses = map[string]bool{
	"pending":     true,
	"in_progress": true,
	"completed":   true,
	"replied":     true,
}

// SubmitPrayerRequest handles the public prayer request form. New rows always
// start out pending.
func SubmitPrayerRequest(c *gin.Context) {
	var request models.PrayerRequestCreate
	if err := c.BindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	missing := missingFields([]requiredField{
		{"fullName", request.Full_Name},
		{"email", request.Email},
		{"prayerRequest", request.Prayer_Request},
	})
	if len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Missing required fields: %s", strings.Join(missing, ", "))})
		return
	}

	if !emailPattern.MatchString(request.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email address"})
		return
	}

	request.Status = "pending"

	insert := initializers.DB.Insert("prayer_request").Rows(request).Executor()
	if _, err := insert.Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit prayer request", "details": err.Error()})
		return
	}

	// best-effort admin ping, never blocks the submission
	go func(fullName string) {
		if err := services.GetPushNotificationService().NotifyAdminsNewPrayerRequest(fullName); err != nil {
			log.Printf("Admin push notification skipped: %v", err)
		}
	}(request.Full_Name)

	c.JSON(http.StatusOK, gin.H{"message": "Prayer request submitted successfully."})
}

func GetPrayerRequests(c *gin.Context) {
	query := initializers.DB.From("prayer_request")

	if status := c.Query("status"); status != "" {
		query = query.Where(goqu.C("status").Eq(status))
	}

	var requests []models.PrayerRequest
	err := query.Order(goqu.I("datetime_create").Desc()).ScanStructs(&requests)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch prayer requests", "details": err.Error()})
		return
	}

	if len(requests) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "No prayer requests found."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Prayer requests retrieved successfully.",
		"prayerRequests": requests,
	})
}

func GetPrayerRequest(c *gin.Context) {
	requestID, err := strconv.Atoi(c.Param("prayer_request_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid prayer request ID"})
		return
	}

	var request models.PrayerRequest
	found, err := initializers.DB.From("prayer_request").
		Where(goqu.C("prayer_request_id").Eq(requestID)).
		ScanStruct(&request)

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch prayer request", "details": err.Error()})
		return
	}

	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Prayer request not found"})
		return
	}

	c.JSON(http.StatusOK, request)
}

func UpdatePrayerRequestStatus(c *gin.Context) {
	requestID, err := strconv.Atoi(c.Param("prayer_request_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid prayer request ID"})
		return
	}

	var update models.PrayerRequestStatusUpdate
	if err := c.BindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if !validPrayerRequestStatuses[update.Status] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be one of: pending, in_progress, completed, replied"})
		return
	}

	var existing models.PrayerRequest
	found, err := initializers.DB.From("prayer_request").
		Where(goqu.C("prayer_request_id").Eq(requestID)).
		ScanStruct(&existing)

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch prayer request", "details": err.Error()})
		return
	}

	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Prayer request not found"})
		return
	}

	record := goqu.Record{
		"status":          update.Status,
		"datetime_update": goqu.L("NOW()"),
	}
	if update.Admin_Notes != nil {
		record["admin_notes"] = update.Admin_Notes
	}

	upd := initializers.DB.Update("prayer_request").
		Set(record).
		Where(goqu.C("prayer_request_id").Eq(requestID)).
		Executor()

	if _, err := upd.Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update prayer request", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Prayer request updated successfully."})
}

func DeletePrayerRequest(c *gin.Context) {
	requestID, err := strconv.Atoi(c.Param("prayer_request_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid prayer request ID"})
		return
	}

	var existing models.PrayerRequest
	found, err := initializers.DB.From("prayer_request").
		Where(goqu.C("prayer_request_id").Eq(requestID)).
		ScanStruct(&existing)

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch prayer request", "details": err.Error()})
		return
	}

	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Prayer request not found"})
		return
	}

	del := initializers.DB.Delete("prayer_request").
		Where(goqu.C("prayer_request_id").Eq(requestID)).
		Executor()

	if _, err := del.Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete prayer request", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Prayer request deleted successfully."})
}

package controllers

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/CornerstoneChurch/initializers"
	"github.com/CornerstoneChurch/models"
	"github.com/CornerstoneChurch/services"
	"github.com/doug-martin/goqu/v9"
)

type ConfirmationEmailRequest struct {
	Email     string `json:"email"`
	Full_Name string `json:"fullName"`
}

type AdminNotificationRequest struct {
	Full_Name      string `json:"fullName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Prayer_Request string `json:"prayerRequest"`
}

type ReplyEmailRequest struct {
	Prayer_Request_ID int    `json:"prayerRequestId"`
	Message           string `json:"message"`
}

// SendConfirmationEmail sends the submitter a receipt for their prayer request.
// One attempt, no retry; a failure is this endpoint's failure alone.
func SendConfirmationEmail(c *gin.Context) {
	var req ConfirmationEmailRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	missing := missingFields([]requiredField{
		{"email", req.Email},
		{"fullName", req.Full_Name},
	})
	if len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Missing required fields: %s", strings.Join(missing, ", "))})
		return
	}

	if !emailPattern.MatchString(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email address"})
		return
	}

	emailService := services.GetEmailService()
	if emailService == nil {
		log.Println("Email service not initialized")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Email service unavailable"})
		return
	}

	if err := emailService.SendConfirmationEmail(req.Email, req.Full_Name); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send confirmation email", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Confirmation email sent."})
}

// SendAdminNotificationEmail notifies the configured admin address about a new
// prayer request.
func SendAdminNotificationEmail(c *gin.Context) {
	var req AdminNotificationRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	missing := missingFields([]requiredField{
		{"fullName", req.Full_Name},
		{"email", req.Email},
		{"prayerRequest", req.Prayer_Request},
	})
	if len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Missing required fields: %s", strings.Join(missing, ", "))})
		return
	}

	emailService := services.GetEmailService()
	if emailService == nil {
		log.Println("Email service not initialized")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Email service unavailable"})
		return
	}

	if err := emailService.SendAdminNotificationEmail(req.Full_Name, req.Email, req.Phone, req.Prayer_Request); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send notification email", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Notification email sent."})
}

// SendReplyEmail sends an admin's reply to the submitter and then records the
// reply on the row. The email is the priority: a failure updating the row is
// logged but does not fail the request.
func SendReplyEmail(c *gin.Context) {
	admin := c.MustGet("currentAdmin").(models.AdminUser)

	var req ReplyEmailRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if req.Prayer_Request_ID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valid prayer request ID is required"})
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: message"})
		return
	}

	var request models.PrayerRequest
	found, err := initializers.DB.From("prayer_request").
		Where(goqu.C("prayer_request_id").Eq(req.Prayer_Request_ID)).
		ScanStruct(&request)

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch prayer request", "details": err.Error()})
		return
	}

	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Prayer request not found"})
		return
	}

	emailService := services.GetEmailService()
	if emailService == nil {
		log.Println("Email service not initialized")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Email service unavailable"})
		return
	}

	if err := emailService.SendReplyEmail(request.Email, request.Full_Name, req.Message); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send reply email", "details": err.Error()})
		return
	}

	update := initializers.DB.Update("prayer_request").
		Set(goqu.Record{
			"admin_notes":      req.Message,
			"status":           "replied",
			"replied_by":       admin.Admin_User_ID,
			"datetime_replied": time.Now(),
			"datetime_update":  goqu.L("NOW()"),
		}).
		Where(goqu.C("prayer_request_id").Eq(req.Prayer_Request_ID)).
		Executor()

	if _, err := update.Exec(); err != nil {
		log.Printf("Reply email sent but failed to update prayer request %d: %v", req.Prayer_Request_ID, err)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Reply email sent."})
}

package controllers

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"

	"github.com/CornerstoneChurch/initializers"
	"github.com/CornerstoneChurch/models"
	"github.com/doug-martin/goqu/v9"
	"golang.org/x/crypto/bcrypt"
)

func AdminLogin(c *gin.Context) {
	var login models.Login

	if err := c.ShouldBindJSON(&login); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var admin models.AdminUser
	found, err := initializers.DB.From("admin_user").Select("*").Where(goqu.C("username").Eq(login.Username)).ScanStruct(&admin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if !found {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	err = bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(login.Password))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	generateToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":   admin.Admin_User_ID,
		"exp":  time.Now().Add(time.Hour * 24).Unix(),
		"role": "admin",
	})

	token, err := generateToken.SignedString([]byte(os.Getenv("SECRET")))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged in successfully.",
		"token":   token,
		"user":    admin,
	})
}

func GetAdminProfile(c *gin.Context) {
	admin, _ := c.Get("currentAdmin")

	c.JSON(http.StatusOK, gin.H{
		"user":  admin,
		"admin": c.MustGet("admin"),
	})
}

// RegisterAdminDevice stores an FCM push token so new prayer requests can ping
// the admin's phone.
func RegisterAdminDevice(c *gin.Context) {
	admin := c.MustGet("currentAdmin").(models.AdminUser)

	var device models.AdminDeviceCreate
	if err := c.BindJSON(&device); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if strings.TrimSpace(device.Push_Token) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: pushToken"})
		return
	}

	if device.Platform != "" && device.Platform != "ios" && device.Platform != "android" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Platform must be 'ios' or 'android'"})
		return
	}

	existing, err := initializers.DB.From("admin_device").
		Select("push_token").
		Where(goqu.C("push_token").Eq(device.Push_Token)).
		Count()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check device registration", "details": err.Error()})
		return
	}

	if existing > 0 {
		c.JSON(http.StatusOK, gin.H{"message": "Device already registered."})
		return
	}

	newDevice := models.AdminDevice{
		Admin_User_ID: admin.Admin_User_ID,
		Push_Token:    device.Push_Token,
		Platform:      device.Platform,
	}

	insert := initializers.DB.Insert("admin_device").Rows(newDevice).Executor()
	if _, err := insert.Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register device", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Device registered successfully."})
}

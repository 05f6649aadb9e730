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

// filterServices keeps only entries carrying their required sub-fields.
// Malformed entries are dropped rather than failing the whole request.
func filterServices(services models.ServiceList) models.ServiceList {
	filtered := models.ServiceList{}
	for _, s := range services {
		if strings.TrimSpace(s.Day) == "" || strings.TrimSpace(s.Time) == "" || strings.TrimSpace(s.Type) == "" {
			continue
		}
		filtered = append(filtered, s)
	}
	return filtered
}

func filterContacts(contacts models.ContactList) models.ContactList {
	filtered := models.ContactList{}
	for _, ct := range contacts {
		if strings.TrimSpace(ct.Name) == "" || strings.TrimSpace(ct.Phone) == "" {
			continue
		}
		filtered = append(filtered, ct)
	}
	return filtered
}

func GetLocations(c *gin.Context) {
	query := initializers.DB.From("location")

	if c.Query("active") == "true" {
		query = query.Where(goqu.C("is_active").IsTrue())
	}

	locations := []models.Location{}
	err := query.Order(goqu.I("sort_order").Asc(), goqu.I("location_id").Asc()).ScanStructs(&locations)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch locations", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, locations)
}

func GetLocation(c *gin.Context) {
	locationID, err := strconv.Atoi(c.Param("location_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid location ID"})
		return
	}

	var location models.Location
	found, err := initializers.DB.From("location").
		Where(goqu.C("location_id").Eq(locationID)).
		ScanStruct(&location)

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch location", "details": err.Error()})
		return
	}

	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Location not found"})
		return
	}

	c.JSON(http.StatusOK, location)
}

func validateLocation(location *models.LocationCreate) (int, string) {
	missing := missingFields([]requiredField{
		{"name", location.Name},
		{"address", location.Address},
	})
	if len(missing) > 0 {
		return http.StatusBadRequest, fmt.Sprintf("Missing required fields: %s", strings.Join(missing, ", "))
	}

	if location.Email != "" && !emailPattern.MatchString(location.Email) {
		return http.StatusBadRequest, "Invalid email address"
	}

	if location.Map_URL != "" && !urlPattern.MatchString(location.Map_URL) {
		return http.StatusBadRequest, "Map URL must start with http:// or https://"
	}

	location.Services = filterServices(location.Services)
	location.Contacts = filterContacts(location.Contacts)

	return 0, ""
}

func CreateLocation(c *gin.Context) {
	var location models.LocationCreate
	if err := c.BindJSON(&location); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if code, msg := validateLocation(&location); code != 0 {
		c.JSON(code, gin.H{"error": msg})
		return
	}

	insert := initializers.DB.Insert("location").Rows(location).Executor()
	if _, err := insert.Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create location", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Location created successfully."})
}

func UpdateLocation(c *gin.Context) {
	locationID, err := strconv.Atoi(c.Param("location_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid location ID"})
		return
	}

	var location models.LocationCreate
	if err := c.BindJSON(&location); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if code, msg := validateLocation(&location); code != 0 {
		c.JSON(code, gin.H{"error": msg})
		return
	}

	var existing models.Location
	found, err := initializers.DB.From("location").
		Where(goqu.C("location_id").Eq(locationID)).
		ScanStruct(&existing)

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch location", "details": err.Error()})
		return
	}

	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Location not found"})
		return
	}

	update := initializers.DB.Update("location").
		Set(goqu.Record{
			"name":            location.Name,
			"address":         location.Address,
			"city":            location.City,
			"phone":           location.Phone,
			"email":           location.Email,
			"map_url":         location.Map_URL,
			"services":        location.Services,
			"contacts":        location.Contacts,
			"is_active":       location.Is_Active,
			"sort_order":      location.Sort_Order,
			"datetime_update": goqu.L("NOW()"),
		}).
		Where(goqu.C("location_id").Eq(locationID)).
		Executor()

	if _, err := update.Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update location", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Location updated successfully."})
}

func DeleteLocation(c *gin.Context) {
	locationID, err := strconv.Atoi(c.Param("location_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid location ID"})
		return
	}

	var existing models.Location
	found, err := initializers.DB.From("location").
		Where(goqu.C("location_id").Eq(locationID)).
		ScanStruct(&existing)

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch location", "details": err.Error()})
		return
	}

	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Location not found"})
		return
	}

	del := initializers.DB.Delete("location").
		Where(goqu.C("location_id").Eq(locationID)).
		Executor()

	if _, err := del.Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete location", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Location deleted successfully."})
}

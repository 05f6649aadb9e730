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

func GetPastors(c *gin.Context) {
	query := initializers.DB.From("pastor")

	if c.Query("active") == "true" {
		query = query.Where(goqu.C("is_active").IsTrue())
	}

	pastors := []models.Pastor{}
	err := query.Order(goqu.I("sort_order").Asc(), goqu.I("pastor_id").Asc()).ScanStructs(&pastors)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch pastors", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, pastors)
}

func GetPastor(c *gin.Context) {
	pastorID, err := strconv.Atoi(c.Param("pastor_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pastor ID"})
		return
	}

	var pastor models.Pastor
	found, err := initializers.DB.From("pastor").
		Where(goqu.C("pastor_id").Eq(pastorID)).
		ScanStruct(&pastor)

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch pastor", "details": err.Error()})
		return
	}

	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pastor not found"})
		return
	}

	c.JSON(http.StatusOK, pastor)
}

func CreatePastor(c *gin.Context) {
	var pastor models.PastorCreate
	if err := c.BindJSON(&pastor); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	missing := missingFields([]requiredField{
		{"name", pastor.Name},
		{"role", pastor.Role},
	})
	if len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Missing required fields: %s", strings.Join(missing, ", "))})
		return
	}

	insert := initializers.DB.Insert("pastor").Rows(pastor).Executor()
	if _, err := insert.Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create pastor", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Pastor created successfully."})
}

func UpdatePastor(c *gin.Context) {
	pastorID, err := strconv.Atoi(c.Param("pastor_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pastor ID"})
		return
	}

	var pastor models.PastorCreate
	if err := c.BindJSON(&pastor); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	missing := missingFields([]requiredField{
		{"name", pastor.Name},
		{"role", pastor.Role},
	})
	if len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Missing required fields: %s", strings.Join(missing, ", "))})
		return
	}

	var existing models.Pastor
	found, err := initializers.DB.From("pastor").
		Where(goqu.C("pastor_id").Eq(pastorID)).
		ScanStruct(&existing)

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch pastor", "details": err.Error()})
		return
	}

	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pastor not found"})
		return
	}

	update := initializers.DB.Update("pastor").
		Set(goqu.Record{
			"name":            pastor.Name,
			"role":            pastor.Role,
			"phone":           pastor.Phone,
			"sort_order":      pastor.Sort_Order,
			"is_active":       pastor.Is_Active,
			"datetime_update": goqu.L("NOW()"),
		}).
		Where(goqu.C("pastor_id").Eq(pastorID)).
		Executor()

	if _, err := update.Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update pastor", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Pastor updated successfully."})
}

func DeletePastor(c *gin.Context) {
	pastorID, err := strconv.Atoi(c.Param("pastor_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pastor ID"})
		return
	}

	var existing models.Pastor
	found, err := initializers.DB.From("pastor").
		Where(goqu.C("pastor_id").Eq(pastorID)).
		ScanStruct(&existing)

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch pastor", "details": err.Error()})
		return
	}

	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pastor not found"})
		return
	}

	del := initializers.DB.Delete("pastor").
		Where(goqu.C("pastor_id").Eq(pastorID)).
		Executor()

	if _, err := del.Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete pastor", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Pastor deleted successfully."})
}

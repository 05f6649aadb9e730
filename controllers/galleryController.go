package controllers

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/CornerstoneChurch/initializers"
	"github.com/CornerstoneChurch/models"
	"github.com/CornerstoneChurch/services"
	"github.com/doug-martin/goqu/v9"
)

const maxUploadSize = 5 << 20 // 5 MB

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

func GetGalleryImages(c *gin.Context) {
	query := initializers.DB.From("gallery_image")

	if c.Query("active") == "true" {
		query = query.Where(goqu.C("is_active").IsTrue())
	}

	if c.Query("featured") == "true" {
		query = query.Where(goqu.C("is_featured").IsTrue())
	}

	if category := c.Query("category"); category != "" {
		query = query.Where(goqu.C("category").Eq(category))
	}

	images := []models.GalleryImage{}
	err := query.Order(goqu.I("sort_order").Asc(), goqu.I("gallery_image_id").Asc()).ScanStructs(&images)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch gallery images", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, images)
}

func GetGalleryImage(c *gin.Context) {
	imageID, err := strconv.Atoi(c.Param("gallery_image_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid gallery image ID"})
		return
	}

	var image models.GalleryImage
	found, err := initializers.DB.From("gallery_image").
		Where(goqu.C("gallery_image_id").Eq(imageID)).
		ScanStruct(&image)

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch gallery image", "details": err.Error()})
		return
	}

	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Gallery image not found"})
		return
	}

	c.JSON(http.StatusOK, image)
}

// UploadGalleryImage stores the image in object storage first, then inserts the
// row pointing at its public URL.
func UploadGalleryImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required"})
		return
	}

	if file.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image must be 5MB or smaller"})
		return
	}

	contentType := file.Header.Get("Content-Type")
	ext, ok := allowedImageTypes[contentType]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported image type. Allowed: JPEG, PNG, WebP, GIF"})
		return
	}

	title := c.PostForm("title")
	if strings.TrimSpace(title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: title"})
		return
	}

	storage := services.GetStorageService()
	if storage == nil {
		log.Println("Storage service not initialized")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Storage service unavailable"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file", "details": err.Error()})
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file", "details": err.Error()})
		return
	}

	path := fmt.Sprintf("gallery/%d%s", time.Now().UnixNano(), ext)
	publicURL, err := storage.Upload(c.Request.Context(), path, data, contentType)
	if err != nil {
		log.Printf("Failed to upload gallery image: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image", "details": err.Error()})
		return
	}

	image := models.GalleryImageCreate{
		Title:        title,
		Description:  c.PostForm("description"),
		Image_URL:    publicURL,
		Category:     c.PostForm("category"),
		Storage_Path: path,
	}

	// new uploads are live unless the form says otherwise
	active := c.PostForm("isActive") != "false"
	image.Is_Active = &active

	if c.PostForm("isFeatured") == "true" {
		featured := true
		image.Is_Featured = &featured
	}

	if sortOrder, err := strconv.Atoi(c.PostForm("sortOrder")); err == nil {
		image.Sort_Order = &sortOrder
	}

	insert := initializers.DB.Insert("gallery_image").Rows(image).Executor()
	if _, err := insert.Exec(); err != nil {
		// the object is already in storage; it stays orphaned rather than
		// risking a delete of something another row references
		log.Printf("Failed to insert gallery image row for %s: %v", path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save gallery image", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Gallery image uploaded successfully.",
		"imageUrl": publicURL,
	})
}

func UpdateGalleryImage(c *gin.Context) {
	imageID, err := strconv.Atoi(c.Param("gallery_image_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid gallery image ID"})
		return
	}

	var image models.GalleryImageCreate
	if err := c.BindJSON(&image); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	missing := missingFields([]requiredField{
		{"title", image.Title},
		{"imageUrl", image.Image_URL},
	})
	if len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Missing required fields: %s", strings.Join(missing, ", "))})
		return
	}

	if !urlPattern.MatchString(image.Image_URL) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image URL must start with http:// or https://"})
		return
	}

	var existing models.GalleryImage
	found, err := initializers.DB.From("gallery_image").
		Where(goqu.C("gallery_image_id").Eq(imageID)).
		ScanStruct(&existing)

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch gallery image", "details": err.Error()})
		return
	}

	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Gallery image not found"})
		return
	}

	update := initializers.DB.Update("gallery_image").
		Set(goqu.Record{
			"title":           image.Title,
			"description":     image.Description,
			"image_url":       image.Image_URL,
			"category":        image.Category,
			"is_active":       image.Is_Active,
			"is_featured":     image.Is_Featured,
			"sort_order":      image.Sort_Order,
			"datetime_update": goqu.L("NOW()"),
		}).
		Where(goqu.C("gallery_image_id").Eq(imageID)).
		Executor()

	if _, err := update.Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update gallery image", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Gallery image updated successfully."})
}

// DeleteGalleryImage removes the row first; the stored object is only removed
// after the row delete succeeds, and a storage failure leaves an orphaned
// object rather than a half-deleted record.
func DeleteGalleryImage(c *gin.Context) {
	imageID, err := strconv.Atoi(c.Param("gallery_image_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid gallery image ID"})
		return
	}

	var image models.GalleryImage
	found, err := initializers.DB.From("gallery_image").
		Where(goqu.C("gallery_image_id").Eq(imageID)).
		ScanStruct(&image)

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch gallery image", "details": err.Error()})
		return
	}

	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Gallery image not found"})
		return
	}

	del := initializers.DB.Delete("gallery_image").
		Where(goqu.C("gallery_image_id").Eq(imageID)).
		Executor()

	if _, err := del.Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete gallery image", "details": err.Error()})
		return
	}

	if image.Storage_Path != "" {
		if storage := services.GetStorageService(); storage != nil {
			if err := storage.Remove(c.Request.Context(), image.Storage_Path); err != nil {
				log.Printf("Failed to remove storage object %s: %v", image.Storage_Path, err)
			}
		} else {
			log.Printf("Storage service unavailable, object %s not removed", image.Storage_Path)
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Gallery image deleted successfully."})
}

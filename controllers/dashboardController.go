package controllers

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/CornerstoneChurch/initializers"
	"github.com/CornerstoneChurch/models"
	"github.com/doug-martin/goqu/v9"
)

// GetDashboard assembles the admin dashboard counts. The reads are independent,
// so they run in parallel and join before the response is built. Nothing is
// cached; every call re-issues the full set of queries.
func GetDashboard(c *gin.Context) {
	var (
		totalEvents     int64
		upcomingEvents  int64
		totalImages     int64
		activeImages    int64
		totalLocations  int64
		totalPastors    int64
		totalRequests   int64
		pendingRequests int64
		recentRequests  []models.PrayerRequest
	)

	var wg sync.WaitGroup
	errCh := make(chan error, 9)

	runCount := func(dst *int64, ds *goqu.SelectDataset) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n, err := ds.Count()
			if err != nil {
				errCh <- err
				return
			}
			*dst = n
		}()
	}

	runCount(&totalEvents, initializers.DB.From("event"))
	runCount(&upcomingEvents, initializers.DB.From("event").
		Where(goqu.C("event_date").Gte(goqu.L("CURRENT_DATE"))))
	runCount(&totalImages, initializers.DB.From("gallery_image"))
	runCount(&activeImages, initializers.DB.From("gallery_image").
		Where(goqu.C("is_active").IsTrue()))
	runCount(&totalLocations, initializers.DB.From("location"))
	runCount(&totalPastors, initializers.DB.From("pastor"))
	runCount(&totalRequests, initializers.DB.From("prayer_request"))
	runCount(&pendingRequests, initializers.DB.From("prayer_request").
		Where(goqu.C("status").Eq("pending")))

	wg.Add(1)
	go func() {
		defer wg.Done()
		err := initializers.DB.From("prayer_request").
			Order(goqu.I("datetime_create").Desc()).
			Limit(5).
			ScanStructs(&recentRequests)
		if err != nil {
			errCh <- err
		}
	}()

	wg.Wait()
	close(errCh)

	if err := <-errCh; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"events": gin.H{
			"total":    totalEvents,
			"upcoming": upcomingEvents,
		},
		"gallery": gin.H{
			"total":  totalImages,
			"active": activeImages,
		},
		"locations": gin.H{
			"total": totalLocations,
		},
		"pastors": gin.H{
			"total": totalPastors,
		},
		"prayerRequests": gin.H{
			"total":   totalRequests,
			"pending": pendingRequests,
			"recent":  recentRequests,
		},
	})
}

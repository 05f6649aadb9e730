package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/CornerstoneChurch/models"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func prayerRequestRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"prayer_request_id", "full_name", "email", "phone", "prayer_request", "status",
		"admin_notes", "replied_by", "datetime_replied", "datetime_create", "datetime_update",
	})
}

func addPrayerRequestRow(rows *sqlmock.Rows, id int, name, email, text, status string) *sqlmock.Rows {
	now := time.Now()
	return rows.AddRow(id, name, email, nil, text, status, nil, nil, nil, now, now)
}

func TestSubmitPrayerRequest(t *testing.T) {
	tests := []struct {
		name           string
		payload        models.PrayerRequestCreate
		expectInsert   bool
		expectedStatus int
	}{
		{
			name: "valid submission stored as pending",
			payload: models.PrayerRequestCreate{
				Full_Name:      "Jane Doe",
				Email:          "jane@example.com",
				Prayer_Request: "Please pray for my family",
			},
			expectInsert:   true,
			expectedStatus: http.StatusOK,
		},
		{
			name: "submitted status is ignored, row is still pending",
			payload: models.PrayerRequestCreate{
				Full_Name:      "Jane Doe",
				Email:          "jane@example.com",
				Prayer_Request: "Please pray for my family",
				Status:         "completed",
			},
			expectInsert:   true,
			expectedStatus: http.StatusOK,
		},
		{
			name: "malformed email",
			payload: models.PrayerRequestCreate{
				Full_Name:      "Jane Doe",
				Email:          "not-an-email",
				Prayer_Request: "Please pray for my family",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "missing name",
			payload: models.PrayerRequestCreate{
				Email:          "jane@example.com",
				Prayer_Request: "Please pray for my family",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "prayer text empty after trimming",
			payload: models.PrayerRequestCreate{
				Full_Name:      "Jane Doe",
				Email:          "jane@example.com",
				Prayer_Request: "   ",
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mock, cleanup := SetupTestDB(t)
			defer cleanup()

			if tt.expectInsert {
				// the interpolated insert must carry the pending status
				mock.ExpectExec(`INSERT INTO "prayer_request".*pending`).WillReturnResult(sqlmock.NewResult(1, 1))
			}

			c, w := SetupTestContext()
			jsonRequest(c, http.MethodPost, "/api/prayer-requests", tt.payload)

			SubmitPrayerRequest(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetPrayerRequests(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		hasRequests    bool
		expectedStatus int
	}{
		{
			name:           "requests found",
			query:          "",
			hasRequests:    true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "filtered by status",
			query:          "?status=pending",
			hasRequests:    true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "no requests",
			query:          "",
			hasRequests:    false,
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mock, cleanup := SetupTestDB(t)
			defer cleanup()

			rows := prayerRequestRows()
			if tt.hasRequests {
				addPrayerRequestRow(rows, 1, "Jane Doe", "jane@example.com", "Please pray for my family", "pending")
			}
			mock.ExpectQuery("SELECT").WillReturnRows(rows)

			c, w := SetupTestContext()
			SetAuthenticatedAdmin(c, MockAdmin())
			c.Request = httptest.NewRequest(http.MethodGet, "/api/prayer-requests"+tt.query, nil)

			GetPrayerRequests(c)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			if tt.hasRequests {
				assert.Contains(t, response, "prayerRequests")
			} else {
				assert.Equal(t, "No prayer requests found.", response["message"])
			}
		})
	}
}

func TestUpdatePrayerRequestStatus(t *testing.T) {
	notes := "Followed up by phone"

	tests := []struct {
		name           string
		requestID      string
		payload        models.PrayerRequestStatusUpdate
		exists         bool
		expectUpdate   bool
		expectedStatus int
	}{
		{
			name:           "valid transition",
			requestID:      "1",
			payload:        models.PrayerRequestStatusUpdate{Status: "in_progress", Admin_Notes: &notes},
			exists:         true,
			expectUpdate:   true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid status",
			requestID:      "1",
			payload:        models.PrayerRequestStatusUpdate{Status: "archived"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown request",
			requestID:      "42",
			payload:        models.PrayerRequestStatusUpdate{Status: "completed"},
			exists:         false,
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mock, cleanup := SetupTestDB(t)
			defer cleanup()

			if tt.expectedStatus != http.StatusBadRequest {
				rows := prayerRequestRows()
				if tt.exists {
					addPrayerRequestRow(rows, 1, "Jane Doe", "jane@example.com", "Please pray for my family", "pending")
				}
				mock.ExpectQuery("SELECT").WillReturnRows(rows)
			}
			if tt.expectUpdate {
				mock.ExpectExec(`UPDATE "prayer_request"`).WillReturnResult(sqlmock.NewResult(0, 1))
			}

			c, w := SetupTestContext()
			SetAuthenticatedAdmin(c, MockAdmin())
			c.Params = append(c.Params, gin.Param{Key: "prayer_request_id", Value: tt.requestID})
			jsonRequest(c, http.MethodPatch, "/api/prayer-requests/"+tt.requestID+"/status", tt.payload)

			UpdatePrayerRequestStatus(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDeletePrayerRequest(t *testing.T) {
	tests := []struct {
		name           string
		requestID      string
		exists         bool
		expectDelete   bool
		expectedStatus int
	}{
		{
			name:           "existing request",
			requestID:      "1",
			exists:         true,
			expectDelete:   true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown request - nothing deleted",
			requestID:      "42",
			exists:         false,
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mock, cleanup := SetupTestDB(t)
			defer cleanup()

			rows := prayerRequestRows()
			if tt.exists {
				addPrayerRequestRow(rows, 1, "Jane Doe", "jane@example.com", "Please pray for my family", "pending")
			}
			mock.ExpectQuery("SELECT").WillReturnRows(rows)

			if tt.expectDelete {
				mock.ExpectExec(`DELETE FROM "prayer_request"`).WillReturnResult(sqlmock.NewResult(0, 1))
			}

			c, w := SetupTestContext()
			SetAuthenticatedAdmin(c, MockAdmin())
			c.Params = append(c.Params, gin.Param{Key: "prayer_request_id", Value: tt.requestID})

			DeletePrayerRequest(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

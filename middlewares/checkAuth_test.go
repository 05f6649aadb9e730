package middlewares

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/CornerstoneChurch/initializers"
	"github.com/CornerstoneChurch/models"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/doug-martin/goqu/v9"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
)

// Helper function to generate a valid JWT token
func generateValidToken(adminID int, role string, expiresIn time.Duration) string {
	secret := os.Getenv("SECRET")
	if secret == "" {
		secret = "test-secret-key"
		os.Setenv("SECRET", secret)
	}

	claims := jwt.MapClaims{
		"id":   float64(adminID),
		"exp":  float64(time.Now().Add(expiresIn).Unix()),
		"role": role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, _ := token.SignedString([]byte(secret))
	return tokenString
}

// Helper function to generate an expired token
func generateExpiredToken(adminID int) string {
	return generateValidToken(adminID, "admin", -1*time.Hour)
}

// Helper function to generate a token with invalid signature
func generateInvalidSignatureToken(adminID int) string {
	claims := jwt.MapClaims{
		"id":   float64(adminID),
		"exp":  float64(time.Now().Add(24 * time.Hour).Unix()),
		"role": "admin",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, _ := token.SignedString([]byte("wrong-secret-key"))
	return tokenString
}

// Setup test database
func setupTestDB(t *testing.T) (sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to create mock database: %v", err)
	}

	goquDB := goqu.New("postgres", db)

	// Replace the global DB connection with our mock
	oldDB := initializers.DB
	initializers.DB = goquDB

	cleanup := func() {
		db.Close()
		initializers.DB = oldDB
	}

	return mock, cleanup
}

// Setup test Gin context
func setupTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/test", nil)
	return c, w
}

func adminRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"admin_user_id", "username", "password", "email", "first_name", "last_name",
		"datetime_create", "datetime_update",
	})
}

// Test CheckAuth middleware
func TestCheckAuth(t *testing.T) {
	tests := []struct {
		name            string
		authHeader      string
		mockAdminLookup bool
		adminExists     bool
		expectedStatus  int
		expectAbort     bool
		expectAdminUser bool
	}{
		{
			name:           "missing authorization header",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
			expectAbort:    true,
		},
		{
			name:           "invalid token format - no Bearer prefix",
			authHeader:     "InvalidToken123",
			expectedStatus: http.StatusUnauthorized,
			expectAbort:    true,
		},
		{
			name:           "invalid token format - wrong prefix",
			authHeader:     "Basic " + generateValidToken(1, "admin", 24*time.Hour),
			expectedStatus: http.StatusUnauthorized,
			expectAbort:    true,
		},
		{
			name:           "invalid JWT signature",
			authHeader:     "Bearer " + generateInvalidSignatureToken(1),
			expectedStatus: http.StatusUnauthorized,
			expectAbort:    true,
		},
		{
			name:           "expired token",
			authHeader:     "Bearer " + generateExpiredToken(1),
			expectedStatus: http.StatusUnauthorized,
			expectAbort:    true,
		},
		{
			name:            "valid token - admin not found in database",
			authHeader:      "Bearer " + generateValidToken(999, "admin", 24*time.Hour),
			mockAdminLookup: true,
			adminExists:     false,
			expectedStatus:  http.StatusUnauthorized,
			expectAbort:     true,
		},
		{
			name:            "valid token - admin user",
			authHeader:      "Bearer " + generateValidToken(1, "admin", 24*time.Hour),
			mockAdminLookup: true,
			adminExists:     true,
			expectedStatus:  http.StatusOK,
			expectAbort:     false,
			expectAdminUser: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, cleanup := setupTestDB(t)
			defer cleanup()

			if tt.mockAdminLookup {
				rows := adminRows()
				if tt.adminExists {
					now := time.Now()
					rows.AddRow(1, "admin", "hashedpassword", "admin@example.com", "Church", "Admin", now, now)
				}
				mock.ExpectQuery("SELECT").WillReturnRows(rows)
			}

			c, w := setupTestContext()

			if tt.authHeader != "" {
				c.Request.Header.Set("Authorization", tt.authHeader)
			}

			CheckAuth(c)

			if tt.expectAbort {
				assert.True(t, c.IsAborted(), "Expected request to be aborted")
				assert.Equal(t, tt.expectedStatus, w.Code)
			} else {
				assert.False(t, c.IsAborted(), "Expected request not to be aborted")
			}

			if tt.expectAdminUser {
				admin, exists := c.Get("currentAdmin")
				assert.True(t, exists, "Expected currentAdmin to be set")
				assert.NotNil(t, admin)

				adminUser := admin.(models.AdminUser)
				assert.Equal(t, 1, adminUser.Admin_User_ID)
				assert.Equal(t, "admin@example.com", adminUser.Email)

				flag, exists := c.Get("admin")
				assert.True(t, exists, "Expected admin flag to be set")
				assert.True(t, flag.(bool))
			} else {
				_, exists := c.Get("currentAdmin")
				assert.False(t, exists, "Expected currentAdmin not to be set")
			}
		})
	}
}

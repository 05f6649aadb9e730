package controllers

import (
	"encoding/json"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/CornerstoneChurch/models"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
)

func adminUserRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"admin_user_id", "username", "password", "email", "first_name", "last_name",
		"datetime_create", "datetime_update",
	})
}

func TestAdminLogin(t *testing.T) {
	os.Setenv("SECRET", "test-secret-key")

	admin := MockAdminWithPassword()

	tests := []struct {
		name           string
		payload        models.Login
		userFound      bool
		expectedStatus int
	}{
		{
			name:           "valid credentials",
			payload:        models.Login{Username: "admin", Password: "admin123"},
			userFound:      true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown username",
			payload:        models.Login{Username: "nobody", Password: "admin123"},
			userFound:      false,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong password",
			payload:        models.Login{Username: "admin", Password: "letmein"},
			userFound:      true,
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mock, cleanup := SetupTestDB(t)
			defer cleanup()

			rows := adminUserRows()
			if tt.userFound {
				rows.AddRow(admin.Admin_User_ID, admin.Username, admin.Password, admin.Email,
					admin.First_Name, admin.Last_Name, admin.Datetime_Create, admin.Datetime_Update)
			}
			mock.ExpectQuery(`SELECT \* FROM "admin_user"`).WillReturnRows(rows)

			c, w := SetupTestContext()
			jsonRequest(c, http.MethodPost, "/api/auth/login", tt.payload)

			AdminLogin(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.NoError(t, mock.ExpectationsWereMet())

			if tt.expectedStatus != http.StatusOK {
				assert.Contains(t, w.Body.String(), "Invalid username or password")
				return
			}

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Equal(t, "Logged in successfully.", response["message"])

			tokenString, ok := response["token"].(string)
			assert.True(t, ok)

			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				return []byte(os.Getenv("SECRET")), nil
			})
			assert.NoError(t, err)
			claims, ok := token.Claims.(jwt.MapClaims)
			assert.True(t, ok)
			assert.Equal(t, float64(admin.Admin_User_ID), claims["id"])
			assert.Equal(t, "admin", claims["role"])
			assert.Greater(t, claims["exp"].(float64), float64(time.Now().Unix()))

			// password hash must never be serialized
			assert.NotContains(t, w.Body.String(), admin.Password)
		})
	}
}

func TestAdminLoginInvalidBody(t *testing.T) {
	_, mock, cleanup := SetupTestDB(t)
	defer cleanup()

	c, w := SetupTestContext()
	jsonRequest(c, http.MethodPost, "/api/auth/login", "not an object")

	AdminLogin(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAdminProfile(t *testing.T) {
	c, w := SetupTestContext()
	SetAuthenticatedAdmin(c, MockAdmin())

	GetAdminProfile(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, true, response["admin"])

	user, ok := response["user"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "admin", user["username"])
}

func TestRegisterAdminDevice(t *testing.T) {
	tests := []struct {
		name            string
		payload         models.AdminDeviceCreate
		existingDevices int
		expectCount     bool
		expectInsert    bool
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "new device registered",
			payload:         models.AdminDeviceCreate{Push_Token: "fcm-token-1", Platform: "ios"},
			expectCount:     true,
			expectInsert:    true,
			expectedStatus:  http.StatusOK,
			expectedMessage: "Device registered successfully.",
		},
		{
			name:            "already registered token",
			payload:         models.AdminDeviceCreate{Push_Token: "fcm-token-1", Platform: "android"},
			existingDevices: 1,
			expectCount:     true,
			expectedStatus:  http.StatusOK,
			expectedMessage: "Device already registered.",
		},
		{
			name:            "missing push token",
			payload:         models.AdminDeviceCreate{Platform: "ios"},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Missing required fields: pushToken",
		},
		{
			name:            "unknown platform",
			payload:         models.AdminDeviceCreate{Push_Token: "fcm-token-1", Platform: "blackberry"},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Platform must be 'ios' or 'android'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mock, cleanup := SetupTestDB(t)
			defer cleanup()

			if tt.expectCount {
				mock.ExpectQuery(`SELECT COUNT`).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(tt.existingDevices))
			}
			if tt.expectInsert {
				mock.ExpectExec(`INSERT INTO "admin_device"`).WillReturnResult(sqlmock.NewResult(1, 1))
			}

			c, w := SetupTestContext()
			SetAuthenticatedAdmin(c, MockAdmin())
			jsonRequest(c, http.MethodPost, "/api/auth/device", tt.payload)

			RegisterAdminDevice(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedMessage)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

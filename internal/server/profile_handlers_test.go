package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"devconnector/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProfileTestApp(userID uint, s *Server) *fiber.App {
	app := fiber.New()
	profile := app.Group("/api/profile", authAs(userID))
	profile.Post("/", s.UpsertMyProfile)
	profile.Get("/me", s.GetMyProfile)
	return app
}

func TestUpsertMyProfile(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]string
		mockSetup      func(profiles *MockProfileRepository)
		expectedStatus int
	}{
		{
			name: "Success",
			body: map[string]string{
				"status":   "Developer",
				"skills":   "Go,SQL",
				"company":  "Acme",
				"location": "Berlin",
			},
			mockSetup: func(profiles *MockProfileRepository) {
				profiles.On("Upsert", mock.Anything, mock.Anything).
					Run(func(args mock.Arguments) {
						args.Get(1).(*models.Profile).ID = 1
					}).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Missing Status",
			body:           map[string]string{"skills": "Go"},
			mockSetup:      func(profiles *MockProfileRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Missing Skills",
			body:           map[string]string{"status": "Developer"},
			mockSetup:      func(profiles *MockProfileRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profiles := new(MockProfileRepository)
			tt.mockSetup(profiles)
			s := &Server{profileRepo: profiles}
			app := newProfileTestApp(5, s)

			resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/profile", tt.body))
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			profiles.AssertExpectations(t)
		})
	}
}

// The profile is always written against the token's user, not any ID in the body.
func TestUpsertMyProfileBindsToAuthenticatedUser(t *testing.T) {
	profiles := new(MockProfileRepository)
	var saved *models.Profile
	profiles.On("Upsert", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*models.Profile)
		}).Return(nil)

	s := &Server{profileRepo: profiles}
	app := newProfileTestApp(5, s)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/profile", map[string]interface{}{
		"status":  "Developer",
		"skills":  "Go",
		"user_id": 99,
	}))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.NotNil(t, saved)
	assert.Equal(t, uint(5), saved.UserID)
}

func TestGetMyProfile(t *testing.T) {
	tests := []struct {
		name           string
		mockSetup      func(profiles *MockProfileRepository)
		expectedStatus int
	}{
		{
			name: "Success",
			mockSetup: func(profiles *MockProfileRepository) {
				profiles.On("GetByUserID", mock.Anything, uint(5)).
					Return(&models.Profile{ID: 1, UserID: 5, Status: "Developer"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "No Profile Yet",
			mockSetup: func(profiles *MockProfileRepository) {
				profiles.On("GetByUserID", mock.Anything, uint(5)).
					Return(nil, models.NewNotFoundError("Profile"))
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profiles := new(MockProfileRepository)
			tt.mockSetup(profiles)
			s := &Server{profileRepo: profiles}
			app := newProfileTestApp(5, s)

			req := httptest.NewRequest(http.MethodGet, "/api/profile/me", nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.expectedStatus == http.StatusOK {
				var out models.Profile
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
				assert.Equal(t, "Developer", out.Status)
			}
		})
	}
}

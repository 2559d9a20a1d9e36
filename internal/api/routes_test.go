package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"coachdata/internal/api"
	"coachdata/internal/domain"
	"coachdata/internal/service"
	"coachdata/internal/storage"
	"coachdata/internal/store"
	"coachdata/internal/syncer"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "routes-test-secret"

type fakeFileStorage struct{}

func (fakeFileStorage) GeneratePresignedUploadURL(_ context.Context, objectKey, _ string, _ time.Duration) (string, error) {
	return "https://storage.test/upload/" + objectKey, nil
}

func (fakeFileStorage) GeneratePresignedDownloadURL(_ context.Context, objectKey string, _ time.Duration) (string, error) {
	return "https://storage.test/download/" + objectKey, nil
}

func (fakeFileStorage) DeleteObject(context.Context, string) error { return nil }

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	kv := storage.NewMemoryKV()
	dispatcher := syncer.NewDispatcher(syncer.NoopSink{})
	userStore := store.NewUserStore(kv)
	dataStore := store.New(kv, dispatcher)
	dataStore.Load(context.Background(), "")

	authService := service.NewAuthService(userStore, testJWTSecret, time.Hour)
	recordService := service.NewRecordService(dataStore)
	sessionService := service.NewSessionService(dataStore)
	workoutService := service.NewWorkoutService(dataStore, recordService, sessionService)
	videoService := service.NewVideoService(dataStore, fakeFileStorage{})

	router := gin.New()
	api.SetupRoutes(router, testJWTSecret, dataStore, authService, workoutService, videoService)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func registerAndLogin(t *testing.T, router *gin.Engine) string {
	t.Helper()
	return registerAndLoginAs(t, router, "Coach", "coach@example.com")
}

func registerAndLoginAs(t *testing.T, router *gin.Engine, name, email string) string {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"name":     name,
		"email":    email,
		"password": "sup3rsecret",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    email,
		"password": "sup3rsecret",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/clients", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTokenFromPreviousSessionRejected(t *testing.T) {
	router := newTestRouter(t)

	aliceToken := registerAndLoginAs(t, router, "Alice", "alice@example.com")
	bobToken := registerAndLoginAs(t, router, "Bob", "bob@example.com")

	// Bob's login switched the active session; Alice's still-valid token
	// must not reach Bob's collections.
	w := doJSON(t, router, http.MethodPost, "/api/v1/clients", aliceToken, gin.H{"name": "Planted By Alice"})
	assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodGet, "/api/v1/clients", aliceToken, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/clients", bobToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var clients []domain.Client
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &clients))
	assert.Empty(t, clients, "nothing crossed into the active session")
}

func TestClientLifecycle(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router)

	w := doJSON(t, router, http.MethodPost, "/api/v1/clients", token, gin.H{"name": "Ana"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created domain.Client
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Ana", created.Name)

	w = doJSON(t, router, http.MethodGet, "/api/v1/clients", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var clients []domain.Client
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &clients))
	require.Len(t, clients, 1)

	w = doJSON(t, router, http.MethodDelete, "/api/v1/clients/"+created.ID, token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/clients/"+created.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLogWorkoutReportsRecord(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router)

	w := doJSON(t, router, http.MethodPost, "/api/v1/clients", token, gin.H{"name": "Bruno"})
	require.Equal(t, http.StatusCreated, w.Code)
	var client domain.Client
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &client))

	w = doJSON(t, router, http.MethodPost, "/api/v1/workouts", token, gin.H{
		"clientId": client.ID,
		"name":     "Lower Body",
		"exercises": []gin.H{{
			"exerciseId":   "bench-press",
			"exerciseName": "Bench Press",
			"sets":         []gin.H{{"weight": 80.0, "reps": 5}},
		}},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Workout   domain.Workout `json:"workout"`
		RecordSet bool           `json:"recordSet"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.RecordSet, "first logged set should set both records")
	assert.Equal(t, "Bruno", resp.Workout.ClientName)

	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/records?clientId=%s", client.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var records []domain.PersonalRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
	assert.Len(t, records, 2)
}

func TestLogSessionSplitsPerParticipant(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router)

	var ids []string
	for _, name := range []string{"Ana", "Bruno"} {
		w := doJSON(t, router, http.MethodPost, "/api/v1/clients", token, gin.H{"name": name})
		require.Equal(t, http.StatusCreated, w.Code)
		var client domain.Client
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &client))
		ids = append(ids, client.ID)
	}

	w := doJSON(t, router, http.MethodPost, "/api/v1/workouts/sessions", token, gin.H{
		"name":           "Saturday Squad",
		"participantIds": ids,
		"exercises": []gin.H{{
			"exerciseId":   "back-squat",
			"exerciseName": "Back Squat",
			"sets":         []gin.H{},
			"setsByClient": gin.H{
				ids[0]: []gin.H{{"weight": 60.0, "reps": 5}},
				ids[1]: []gin.H{{"weight": 100.0, "reps": 3}},
			},
		}},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Workouts []domain.Workout `json:"workouts"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Workouts, 2)
	assert.Equal(t, "Ana - Saturday Squad", resp.Workouts[0].Name)
	assert.Equal(t, "Bruno - Saturday Squad", resp.Workouts[1].Name)
	for _, derived := range resp.Workouts {
		assert.False(t, derived.MultiClient)
	}
}

func TestUpdateWorkoutClearsDuration(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router)

	w := doJSON(t, router, http.MethodPost, "/api/v1/workouts", token, gin.H{
		"clientId":        "c1",
		"name":            "Push Day",
		"durationMinutes": 45,
		"exercises": []gin.H{{
			"exerciseId": "bench-press",
			"sets":       []gin.H{{"weight": 80.0, "reps": 5}},
		}},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created struct {
		Workout domain.Workout `json:"workout"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotNil(t, created.Workout.DurationMinutes)

	// An update that never mentions the field leaves it alone.
	w = doJSON(t, router, http.MethodPut, "/api/v1/workouts/"+created.Workout.ID, token, gin.H{
		"name": "Push Day II",
	})
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/workouts/"+created.Workout.ID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var fetched domain.Workout
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	require.NotNil(t, fetched.DurationMinutes)
	assert.Equal(t, 45, *fetched.DurationMinutes)

	// An explicit null clears it.
	req := httptest.NewRequest(http.MethodPut, "/api/v1/workouts/"+created.Workout.ID,
		bytes.NewReader([]byte(`{"durationMinutes":null}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/workouts/"+created.Workout.ID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Nil(t, fetched.DurationMinutes)
}

func TestMeasurementSettingsRoundTrip(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router)

	w := doJSON(t, router, http.MethodGet, "/api/v1/settings/measurements", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var settings domain.MeasurementSettings
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &settings))
	assert.Equal(t, domain.UnitMetric, settings.WeightUnit)

	w = doJSON(t, router, http.MethodPut, "/api/v1/settings/measurements", token, gin.H{
		"weightUnit":   "imperial",
		"distanceUnit": "metric",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &settings))
	assert.Equal(t, domain.UnitImperial, settings.WeightUnit)
	assert.Equal(t, domain.UnitMetric, settings.DistanceUnit)
}

func TestVideoUploadURLFlow(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router)

	w := doJSON(t, router, http.MethodPost, "/api/v1/videos/upload-url", token, gin.H{
		"clientId":    "c1",
		"contentType": "video/mp4",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		UploadURL string `json:"uploadUrl"`
		ObjectKey string `json:"objectKey"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.UploadURL, resp.ObjectKey)
	assert.Contains(t, resp.ObjectKey, "videos/c1/")

	w = doJSON(t, router, http.MethodPost, "/api/v1/videos/upload-url", token, gin.H{
		"clientId":    "c1",
		"contentType": "image/png",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

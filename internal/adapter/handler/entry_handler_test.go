package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/leondli/diary/internal/adapter/repository"
	"github.com/leondli/diary/internal/domain/entity"
	"github.com/leondli/diary/internal/usecase/entry"
	"github.com/leondli/diary/internal/usecase/tag"
)

// newTestRouter wires the full stack against a private in-memory
// database
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, repository.Migrate(db))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	handlers := &Handlers{
		Entry: NewEntryHandler(entry.NewUseCase(repository.NewEntryRepository(db))),
		Tag:   NewTagHandler(tag.NewUseCase(repository.NewTagRepository(db))),
	}

	router := gin.New()
	RegisterRoutes(router, handlers)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
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
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeEntry(t *testing.T, raw []byte) entity.EntryResponse {
	t.Helper()
	var e entity.EntryResponse
	require.NoError(t, json.Unmarshal(raw, &e))
	return e
}

func entryBody(title, mood string, tags []string) map[string]interface{} {
	if tags == nil {
		tags = []string{}
	}
	return map[string]interface{}{
		"title":   title,
		"content": "content of " + title,
		"mood":    mood,
		"tags":    tags,
	}
}

func sortedTags(aggregate string) []string {
	if aggregate == "" {
		return nil
	}
	parts := strings.Split(aggregate, ",")
	sort.Strings(parts)
	return parts
}

func TestEntryLifecycleScenario(t *testing.T) {
	router := newTestRouter(t)

	// Create
	w := doJSON(t, router, http.MethodPost, "/entries", entryBody("Day One", "Positive", []string{"Work", "Travel"}))
	require.Equal(t, http.StatusCreated, w.Code)

	created := decodeEntry(t, w.Body.Bytes())
	require.NotZero(t, created.ID)
	assert.Equal(t, "Day One", created.Title)
	assert.Equal(t, entity.MoodPositive, created.Mood)
	assert.Equal(t, []string{"Travel", "Work"}, sortedTags(created.Tags))
	assert.False(t, created.CreatedAt.IsZero())

	// Update with a replacement tag set
	w = doJSON(t, router, http.MethodPut, fmt.Sprintf("/entries/%d", created.ID), entryBody("Day One", "Positive", []string{"Family"}))
	require.Equal(t, http.StatusOK, w.Code)

	var updateRes struct {
		Message string               `json:"message"`
		Entry   entity.EntryResponse `json:"entry"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updateRes))
	assert.Equal(t, "Entry Updated", updateRes.Message)
	assert.Equal(t, "Family", updateRes.Entry.Tags)

	// Delete
	w = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/entries/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Entry Deleted")

	// Gone
	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/entries/%d", created.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateValidation(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{
			name: "missing title",
			body: map[string]interface{}{"content": "c", "mood": "Positive", "tags": []string{}},
		},
		{
			name: "missing content",
			body: map[string]interface{}{"title": "t", "mood": "Positive", "tags": []string{}},
		},
		{
			name: "missing mood",
			body: map[string]interface{}{"title": "t", "content": "c", "tags": []string{}},
		},
		{
			name: "mood outside vocabulary",
			body: map[string]interface{}{"title": "t", "content": "c", "mood": "happy", "tags": []string{}},
		},
		{
			name: "missing tags field",
			body: map[string]interface{}{"title": "t", "content": "c", "mood": "Positive"},
		},
		{
			name: "tags not a sequence",
			body: map[string]interface{}{"title": "t", "content": "c", "mood": "Positive", "tags": "Work"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, router, http.MethodPost, "/entries", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}

	// An empty tag array is valid
	w := doJSON(t, router, http.MethodPost, "/entries", entryBody("Plain", "Neutral", []string{}))
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestListAndFilter(t *testing.T) {
	router := newTestRouter(t)

	for _, seed := range []struct {
		title string
		tags  []string
	}{
		{"work only", []string{"Work"}},
		{"work and goals", []string{"Work", "Goals"}},
		{"untagged", nil},
	} {
		w := doJSON(t, router, http.MethodPost, "/entries", entryBody(seed.title, "Neutral", seed.tags))
		require.Equal(t, http.StatusCreated, w.Code)
		time.Sleep(5 * time.Millisecond)
	}

	// Unfiltered listing includes untagged entries, newest first
	w := doJSON(t, router, http.MethodGet, "/entries", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var all []entity.EntryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	require.Len(t, all, 3)
	assert.Equal(t, "untagged", all[0].Title)
	assert.Empty(t, all[0].Tags)
	assert.Equal(t, "work only", all[2].Title)

	// Filtered listing dedups entries matching several names
	w = doJSON(t, router, http.MethodGet, "/entries?tags=Work,Goals", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var filtered []entity.EntryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &filtered))
	require.Len(t, filtered, 2)
	assert.Equal(t, "work and goals", filtered[0].Title)
	assert.Equal(t, "work only", filtered[1].Title)
}

func TestUpdateAndDeleteMissingEntry(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPut, "/entries/9999", entryBody("Ghost", "Negative", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/entries/9999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodGet, "/entries/not-a-number", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTagVocabulary(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/tags", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var tags []entity.Tag
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tags))
	require.Len(t, tags, len(entity.TagNames))

	names := make([]string, len(tags))
	for i, tg := range tags {
		names[i] = tg.Name
	}
	assert.Equal(t, entity.TagNames, names)
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

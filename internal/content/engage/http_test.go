package engage_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knowledgehunting/api/internal/content/engage"
)

func newTestRouter(articles *fakeArticles) http.Handler {
	service := engage.NewService(articles, discardLogger())
	handler := engage.NewHandler(service)

	router := chi.NewRouter()
	handler.RegisterRoutes(router)
	return router
}

/*
TestHTTP_ToggleLike verifies the like route end to end: the first call
reports liked, the second reports disliked.
*/
func TestHTTP_ToggleLike(t *testing.T) {
	articles := newFakeArticles(1)
	router := newTestRouter(articles)

	toggle := func() engage.ToggleResult {
		body := strings.NewReader(`{"email":"reader@example.com"}`)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPatch, "/like/1", body))
		require.Equal(t, http.StatusOK, recorder.Code)

		var envelope struct {
			Data engage.ToggleResult `json:"data"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
		return envelope.Data
	}

	first := toggle()
	assert.True(t, first.Liked)
	assert.Equal(t, "Like successful", first.Message)

	second := toggle()
	assert.False(t, second.Liked)
	assert.Equal(t, "Dislike successful", second.Message)
}

/*
TestHTTP_ToggleLike_BadRequests verifies id parsing and the unknown-article
path.
*/
func TestHTTP_ToggleLike_BadRequests(t *testing.T) {
	router := newTestRouter(newFakeArticles(1))

	// 1. Malformed article id
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPatch, "/like/abc", strings.NewReader(`{"email":"reader@example.com"}`))
	router.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	// 2. Unknown article
	recorder = httptest.NewRecorder()
	request = httptest.NewRequest(http.MethodPatch, "/like/42", strings.NewReader(`{"email":"reader@example.com"}`))
	router.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	// 3. Missing email
	recorder = httptest.NewRecorder()
	request = httptest.NewRequest(http.MethodPatch, "/like/1", strings.NewReader(`{}`))
	router.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

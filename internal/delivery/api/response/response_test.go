package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"petplace/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	return c, rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestSuccess_DefaultMessage(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Success(c, http.StatusCreated, map[string]string{"slug": "bark-park"}, ""))

	body := decode(t, rec)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Success", body["message"])
	assert.Equal(t, "bark-park", body["data"].(map[string]any)["slug"])
	assert.NotContains(t, body, "error")
}

func TestPaged(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Paged(c, []string{"a", "b"}, entity.NewPagination(entity.Page{Page: 1, PerPage: 2}, 12)))

	data := decode(t, rec)["data"].(map[string]any)
	assert.Len(t, data["items"], 2)
	pagination := data["pagination"].(map[string]any)
	assert.EqualValues(t, 6, pagination["pages"])
	assert.Equal(t, true, pagination["has_next"])
}

func TestError_DetailsVisibility(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		wantDetails bool
	}{
		{name: "bad request keeps details", status: http.StatusBadRequest, wantDetails: true},
		{name: "conflict keeps details", status: http.StatusConflict, wantDetails: true},
		{name: "unauthorized hides details", status: http.StatusUnauthorized},
		{name: "forbidden hides details", status: http.StatusForbidden},
		{name: "server error hides details", status: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()

			require.NoError(t, Error(c, tt.status, "SOME_CODE", "", "pq: relation does not exist"))

			body := decode(t, rec)
			errInfo := body["error"].(map[string]any)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, http.StatusText(tt.status), body["message"])
			assert.Equal(t, "SOME_CODE", errInfo["code"])
			if tt.wantDetails {
				assert.Equal(t, "pq: relation does not exist", errInfo["details"])
			} else {
				assert.NotContains(t, errInfo, "details")
			}
		})
	}
}

package site

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gigspace/core/internal/domain"
	"github.com/gigspace/core/internal/middleware"
	"github.com/gigspace/core/internal/pkg/mail"
	"github.com/gigspace/core/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	backend, err := store.NewFileStore(t.TempDir(), zap.NewNop())
	require.NoError(t, err)
	d := domain.New(backend, mail.New(mail.Config{}), zap.NewNop(), domain.Options{})
	d.LoadPublic(context.Background())

	r := gin.New()
	api := r.Group("/api/v1")
	NewHandler(d).RegisterRoutes(api, middleware.Auth())
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", path, nil))
	return w
}

func TestSiteContent(t *testing.T) {
	w := get(newTestRouter(t), "/api/v1/site/content")
	require.Equal(t, http.StatusOK, w.Code)

	var content struct {
		Home struct {
			HeroTitle string `json:"hero_title"`
		} `json:"home"`
		EmailTemplates struct {
			ApplicationApproved string `json:"application_approved"`
		} `json:"email_templates"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &content))
	assert.Equal(t, "Building digital masterpieces for the modern web.", content.Home.HeroTitle)
	assert.NotEmpty(t, content.EmailTemplates.ApplicationApproved)
}

func TestSiteHome(t *testing.T) {
	w := get(newTestRouter(t), "/api/v1/site/home")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Owner struct {
			Name string `json:"name"`
		} `json:"owner"`
		Projects []struct {
			Status string `json:"status"`
		} `json:"projects"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "GigSpace Team", body.Owner.Name)
	require.Len(t, body.Projects, 3)
	for _, p := range body.Projects {
		assert.Equal(t, "published", p.Status)
	}
}

func TestSiteStatus(t *testing.T) {
	w := get(newTestRouter(t), "/api/v1/site/status")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"maintenance":false`)
	assert.Contains(t, w.Body.String(), `"applications_enabled":true`)
}

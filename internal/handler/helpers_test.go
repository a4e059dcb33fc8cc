package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/hrms-saas-api/internal/middleware"
	"github.com/noah-isme/hrms-saas-api/internal/models"
)

const (
	testTenant = "7c9e6679-7425-40de-944b-e07fc1f90ae7"
	testUser   = "2f1b5a3c-8e4d-4f6a-9b7c-1d2e3f4a5b6c"
)

type testEnvelope struct {
	Status     string                 `json:"status"`
	Message    string                 `json:"message"`
	Data       json.RawMessage        `json:"data"`
	Pagination map[string]interface{} `json:"pagination"`
	Meta       map[string]interface{} `json:"meta"`
	Error      struct {
		Code    string                 `json:"code"`
		Details map[string]interface{} `json:"details"`
	} `json:"error"`
}

func tenantAdmin() *models.Actor {
	tid := testTenant
	return &models.Actor{UserID: testUser, TenantID: &tid, Role: models.RoleAdmin}
}

func superAdmin() *models.Actor {
	return &models.Actor{UserID: testUser, Role: models.RoleSuperAdmin}
}

// newTestContext builds a gin context for a direct handler call. params are
// key/value pairs for path parameters.
func newTestContext(method, target string, body interface{}, actor *models.Actor, params ...string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	var payload []byte
	switch v := body.(type) {
	case nil:
	case string:
		payload = []byte(v)
	default:
		payload, _ = json.Marshal(v)
	}
	c.Request = httptest.NewRequest(method, target, bytes.NewReader(payload))
	c.Request.Header.Set("Content-Type", "application/json")
	if actor != nil {
		c.Set(middleware.ContextActorKey, actor)
	}
	for i := 0; i+1 < len(params); i += 2 {
		c.Params = append(c.Params, gin.Param{Key: params[i], Value: params[i+1]})
	}
	return c, rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) testEnvelope {
	t.Helper()
	var env testEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

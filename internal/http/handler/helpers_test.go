package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/gomega"

	"bugtrail.app/server/internal/http/handler"
	"bugtrail.app/server/internal/http/middleware"
	"bugtrail.app/server/internal/http/router"
	"bugtrail.app/server/internal/model"
	"bugtrail.app/server/internal/service"
)

const testToken = "test-token"

var testUser = &model.User{ID: 42, Username: "alice", Email: "a@x.com"}

// buildRouter wires the full API route table against mock services, with the
// auth middleware resolving testToken to testUser.
func buildRouter(authSvc *mockAuthService, wsSvc *mockWorkspaceService, bugSvc *mockBugService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	if authSvc.validateTokenFn == nil {
		authSvc.validateTokenFn = func(_ context.Context, token string) (*model.User, error) {
			if token == testToken {
				return testUser, nil
			}
			return nil, service.ErrInvalidToken
		}
	}

	engine := gin.New()
	requireAuth := middleware.RequireAuth(authSvc)

	api := engine.Group("/api")
	authHandler := handler.NewAuthHandler(authSvc, wsSvc, 3600, false)
	router.AuthRouter(api.Group("/auth"), authHandler, requireAuth)

	wsHandler := handler.NewWorkspaceHandler(wsSvc)
	router.WorkspaceRouter(api.Group("/workspaces", requireAuth), wsHandler)

	bugHandler := handler.NewBugHandler(bugSvc)
	router.BugRouter(api.Group("/bugs", requireAuth), bugHandler)

	return engine
}

func doRequest(engine *gin.Engine, method, path string, payload any, authenticated bool) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		Expect(err).NotTo(HaveOccurred())
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authenticated {
		req.Header.Set("Authorization", "Bearer "+testToken)
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func parseEnvelope(w *httptest.ResponseRecorder) map[string]any {
	var resp map[string]any
	Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
	return resp
}

package handler_test

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"bugtrail.app/server/internal/model"
	"bugtrail.app/server/internal/service"
)

var _ = Describe("AuthHandler", func() {
	var (
		engine  *gin.Engine
		authSvc *mockAuthService
		wsSvc   *mockWorkspaceService
	)

	BeforeEach(func() {
		authSvc = &mockAuthService{}
		wsSvc = &mockWorkspaceService{}
		engine = buildRouter(authSvc, wsSvc, &mockBugService{})
	})

	Describe("POST /api/auth/register", func() {
		It("returns 201 with the created workspace and a session cookie", func() {
			authSvc.registerFn = func(_ context.Context, input service.RegisterInput) (*service.AuthResult, error) {
				Expect(input.Username).To(Equal("alice"))
				Expect(input.WorkspaceName).To(Equal("W1"))
				return &service.AuthResult{
					Token: "signed-token",
					User:  &model.User{ID: 42, Username: "alice", Email: "a@x.com"},
					Memberships: []model.Membership{
						{Workspace: model.Workspace{ID: 9, Name: "W1", Code: "AB12CD"}, Role: model.RoleAdmin},
					},
					Workspace:        &model.Workspace{ID: 9, Name: "W1", Code: "AB12CD"},
					WorkspaceCreated: true,
				}, nil
			}

			w := doRequest(engine, http.MethodPost, "/api/auth/register", map[string]string{
				"username":      "alice",
				"email":         "a@x.com",
				"password":      "p",
				"workspaceName": "W1",
			}, false)

			Expect(w.Code).To(Equal(http.StatusCreated))

			resp := parseEnvelope(w)
			Expect(resp["success"]).To(BeTrue())

			data := resp["data"].(map[string]any)
			Expect(data["token"]).To(Equal("signed-token"))
			Expect(data["workspaceCreated"]).To(BeTrue())

			workspace := data["workspace"].(map[string]any)
			Expect(workspace["code"]).To(MatchRegexp(`^[A-Z0-9]{6}$`))

			cookies := w.Result().Cookies()
			Expect(cookies).NotTo(BeEmpty())
			Expect(cookies[0].Name).To(Equal("token"))
			Expect(cookies[0].Value).To(Equal("signed-token"))
			Expect(cookies[0].HttpOnly).To(BeTrue())
		})

		It("returns 409 for a duplicate user", func() {
			authSvc.registerFn = func(_ context.Context, _ service.RegisterInput) (*service.AuthResult, error) {
				return nil, service.ErrUserExists
			}

			w := doRequest(engine, http.MethodPost, "/api/auth/register", map[string]string{
				"username": "alice",
				"email":    "a@x.com",
				"password": "p",
			}, false)

			Expect(w.Code).To(Equal(http.StatusConflict))
			Expect(parseEnvelope(w)["error"]).To(Equal("User with this email or username already exists"))
		})
	})

	Describe("POST /api/auth/login", func() {
		It("returns 200 with user and memberships", func() {
			authSvc.loginFn = func(_ context.Context, input service.LoginInput) (*service.AuthResult, error) {
				Expect(input.Email).To(Equal("a@x.com"))
				return &service.AuthResult{
					Token: "signed-token",
					User:  &model.User{ID: 42, Username: "alice", Email: "a@x.com"},
				}, nil
			}

			w := doRequest(engine, http.MethodPost, "/api/auth/login", map[string]string{
				"email":    "a@x.com",
				"password": "p",
			}, false)

			Expect(w.Code).To(Equal(http.StatusOK))

			data := parseEnvelope(w)["data"].(map[string]any)
			user := data["user"].(map[string]any)
			Expect(user["username"]).To(Equal("alice"))
		})

		It("returns 401 with Invalid credentials for a wrong password", func() {
			authSvc.loginFn = func(_ context.Context, _ service.LoginInput) (*service.AuthResult, error) {
				return nil, service.ErrInvalidCredentials
			}

			w := doRequest(engine, http.MethodPost, "/api/auth/login", map[string]string{
				"email":    "a@x.com",
				"password": "wrong",
			}, false)

			Expect(w.Code).To(Equal(http.StatusUnauthorized))

			resp := parseEnvelope(w)
			Expect(resp["success"]).To(BeFalse())
			Expect(resp["error"]).To(ContainSubstring("Invalid credentials"))
		})

		It("returns 400 when credentials are missing", func() {
			authSvc.loginFn = func(_ context.Context, _ service.LoginInput) (*service.AuthResult, error) {
				return nil, service.ErrMissingCredentials
			}

			w := doRequest(engine, http.MethodPost, "/api/auth/login", map[string]string{}, false)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(parseEnvelope(w)["error"]).To(Equal("Please provide an email and password"))
		})

		It("returns 403 when the user is not a member of the requested workspace", func() {
			authSvc.loginFn = func(_ context.Context, _ service.LoginInput) (*service.AuthResult, error) {
				return nil, service.ErrNotMember
			}

			w := doRequest(engine, http.MethodPost, "/api/auth/login", map[string]string{
				"email":         "a@x.com",
				"password":      "p",
				"workspaceCode": "AB12CD",
			}, false)

			Expect(w.Code).To(Equal(http.StatusForbidden))
			Expect(parseEnvelope(w)["error"]).To(Equal("You are not a member of this workspace"))
		})
	})

	Describe("POST /api/auth/logout", func() {
		It("clears the session cookie", func() {
			w := doRequest(engine, http.MethodPost, "/api/auth/logout", nil, false)

			Expect(w.Code).To(Equal(http.StatusOK))

			cookies := w.Result().Cookies()
			Expect(cookies).NotTo(BeEmpty())
			Expect(cookies[0].Name).To(Equal("token"))
			Expect(cookies[0].Value).To(BeEmpty())
			Expect(cookies[0].MaxAge).To(BeNumerically("<", 0))
		})
	})

	Describe("POST /api/auth/join-workspace", func() {
		It("requires authentication", func() {
			w := doRequest(engine, http.MethodPost, "/api/auth/join-workspace", map[string]string{
				"workspaceCode": "AB12CD",
			}, false)

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(parseEnvelope(w)["error"]).To(Equal("Not authorized to access this route"))
		})

		It("returns the joined workspace", func() {
			wsSvc.joinFn = func(_ context.Context, code string, userID int64) (*model.Workspace, error) {
				Expect(code).To(Equal("AB12CD"))
				Expect(userID).To(Equal(testUser.ID))
				return &model.Workspace{ID: 9, Name: "W1", Code: "AB12CD"}, nil
			}

			w := doRequest(engine, http.MethodPost, "/api/auth/join-workspace", map[string]string{
				"workspaceCode": "AB12CD",
			}, true)

			Expect(w.Code).To(Equal(http.StatusOK))

			data := parseEnvelope(w)["data"].(map[string]any)
			Expect(data["code"]).To(Equal("AB12CD"))
		})

		It("passes a padded lowercase code through to the service", func() {
			wsSvc.joinFn = func(_ context.Context, code string, _ int64) (*model.Workspace, error) {
				Expect(code).To(Equal(" ab12cd "))
				return &model.Workspace{ID: 9, Name: "W1", Code: "AB12CD"}, nil
			}

			w := doRequest(engine, http.MethodPost, "/api/auth/join-workspace", map[string]string{
				"workspaceCode": " ab12cd ",
			}, true)

			Expect(w.Code).To(Equal(http.StatusOK))
		})

		It("returns 409 when already a member", func() {
			wsSvc.joinFn = func(_ context.Context, _ string, _ int64) (*model.Workspace, error) {
				return nil, service.ErrAlreadyMember
			}

			w := doRequest(engine, http.MethodPost, "/api/auth/join-workspace", map[string]string{
				"workspaceCode": "AB12CD",
			}, true)

			Expect(w.Code).To(Equal(http.StatusConflict))
			Expect(parseEnvelope(w)["error"]).To(Equal("You are already a member of this workspace"))
		})

		It("returns 404 for an unknown code", func() {
			wsSvc.joinFn = func(_ context.Context, _ string, _ int64) (*model.Workspace, error) {
				return nil, service.ErrWorkspaceNotFound
			}

			w := doRequest(engine, http.MethodPost, "/api/auth/join-workspace", map[string]string{
				"workspaceCode": "ZZZZZZ",
			}, true)

			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(parseEnvelope(w)["error"]).To(Equal("Workspace not found"))
		})
	})
})

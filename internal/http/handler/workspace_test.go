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

var _ = Describe("WorkspaceHandler", func() {
	var (
		engine *gin.Engine
		wsSvc  *mockWorkspaceService
	)

	BeforeEach(func() {
		wsSvc = &mockWorkspaceService{}
		engine = buildRouter(&mockAuthService{}, wsSvc, &mockBugService{})
	})

	Describe("GET /api/workspaces", func() {
		It("requires authentication", func() {
			w := doRequest(engine, http.MethodGet, "/api/workspaces", nil, false)
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})

		It("returns the caller's workspaces with members", func() {
			wsSvc.listMineFn = func(_ context.Context, userID int64) ([]service.WorkspaceView, error) {
				Expect(userID).To(Equal(testUser.ID))
				return []service.WorkspaceView{
					{
						Workspace: model.Workspace{ID: 9, Name: "W1", Code: "AB12CD"},
						Role:      model.RoleAdmin,
						Members: []model.Member{
							{UserID: 42, Username: "alice", Role: model.RoleAdmin},
						},
					},
				}, nil
			}

			w := doRequest(engine, http.MethodGet, "/api/workspaces", nil, true)

			Expect(w.Code).To(Equal(http.StatusOK))

			data := parseEnvelope(w)["data"].([]any)
			Expect(data).To(HaveLen(1))

			view := data[0].(map[string]any)
			Expect(view["role"]).To(Equal("admin"))
			Expect(view["members"].([]any)).To(HaveLen(1))
		})
	})

	Describe("POST /api/workspaces/create", func() {
		It("returns 201 with the created workspace", func() {
			wsSvc.createFn = func(_ context.Context, input service.CreateWorkspaceInput, creatorID int64) (*model.Workspace, error) {
				Expect(input.Name).To(Equal("Apollo"))
				Expect(creatorID).To(Equal(testUser.ID))
				return &model.Workspace{ID: 9, Name: "Apollo", Code: "AB12CD"}, nil
			}

			w := doRequest(engine, http.MethodPost, "/api/workspaces/create", map[string]string{
				"name": "Apollo",
			}, true)

			Expect(w.Code).To(Equal(http.StatusCreated))

			data := parseEnvelope(w)["data"].(map[string]any)
			Expect(data["name"]).To(Equal("Apollo"))
			Expect(data["code"]).To(MatchRegexp(`^[A-Z0-9]{6}$`))
		})

		It("returns 400 for a missing name", func() {
			wsSvc.createFn = func(_ context.Context, _ service.CreateWorkspaceInput, _ int64) (*model.Workspace, error) {
				return nil, service.ErrWorkspaceNameRequired
			}

			w := doRequest(engine, http.MethodPost, "/api/workspaces/create", map[string]string{}, true)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(parseEnvelope(w)["error"]).To(Equal("Workspace name is required"))
		})
	})

	Describe("GET /api/workspaces/:workspaceId/members", func() {
		It("returns the member list", func() {
			wsSvc.membersFn = func(_ context.Context, workspaceID, callerID int64) ([]model.Member, error) {
				Expect(workspaceID).To(Equal(int64(9)))
				Expect(callerID).To(Equal(testUser.ID))
				return []model.Member{
					{UserID: 42, Username: "alice", Email: "a@x.com", Role: model.RoleAdmin},
					{UserID: 43, Username: "bob", Email: "b@x.com", Role: model.RoleMember},
				}, nil
			}

			w := doRequest(engine, http.MethodGet, "/api/workspaces/9/members", nil, true)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(parseEnvelope(w)["data"].([]any)).To(HaveLen(2))
		})

		It("returns 403 for a non-member", func() {
			wsSvc.membersFn = func(_ context.Context, _, _ int64) ([]model.Member, error) {
				return nil, service.ErrNotMember
			}

			w := doRequest(engine, http.MethodGet, "/api/workspaces/9/members", nil, true)

			Expect(w.Code).To(Equal(http.StatusForbidden))
			Expect(parseEnvelope(w)["error"]).To(Equal("Not authorized to access this workspace"))
		})

		It("returns 404 for an absent workspace", func() {
			wsSvc.membersFn = func(_ context.Context, _, _ int64) ([]model.Member, error) {
				return nil, service.ErrWorkspaceNotFound
			}

			w := doRequest(engine, http.MethodGet, "/api/workspaces/9/members", nil, true)

			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("DELETE /api/workspaces/:workspaceId/members/:memberId", func() {
		It("removes the member", func() {
			var gotWorkspace, gotTarget, gotCaller int64
			wsSvc.removeMemberFn = func(_ context.Context, workspaceID, targetUserID, callerID int64) error {
				gotWorkspace, gotTarget, gotCaller = workspaceID, targetUserID, callerID
				return nil
			}

			w := doRequest(engine, http.MethodDelete, "/api/workspaces/9/members/43", nil, true)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(gotWorkspace).To(Equal(int64(9)))
			Expect(gotTarget).To(Equal(int64(43)))
			Expect(gotCaller).To(Equal(testUser.ID))
		})

		It("returns 400 when removing the only admin", func() {
			wsSvc.removeMemberFn = func(_ context.Context, _, _, _ int64) error {
				return service.ErrLastAdmin
			}

			w := doRequest(engine, http.MethodDelete, "/api/workspaces/9/members/42", nil, true)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(parseEnvelope(w)["error"]).To(Equal("Cannot remove yourself as the only admin"))
		})

		It("returns 403 for a non-admin caller", func() {
			wsSvc.removeMemberFn = func(_ context.Context, _, _, _ int64) error {
				return service.ErrNotAdmin
			}

			w := doRequest(engine, http.MethodDelete, "/api/workspaces/9/members/43", nil, true)

			Expect(w.Code).To(Equal(http.StatusForbidden))
			Expect(parseEnvelope(w)["error"]).To(Equal("Not authorized to remove members"))
		})
	})
})

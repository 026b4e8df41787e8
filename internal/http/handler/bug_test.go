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

var _ = Describe("BugHandler", func() {
	var (
		engine *gin.Engine
		bugSvc *mockBugService
	)

	BeforeEach(func() {
		bugSvc = &mockBugService{}
		engine = buildRouter(&mockAuthService{}, &mockWorkspaceService{}, bugSvc)
	})

	Describe("GET /api/bugs", func() {
		It("returns 400 when the workspaceId query param is missing", func() {
			w := doRequest(engine, http.MethodGet, "/api/bugs", nil, true)

			Expect(w.Code).To(Equal(http.StatusBadRequest))

			resp := parseEnvelope(w)
			Expect(resp["success"]).To(BeFalse())
			Expect(resp["error"]).To(ContainSubstring("Workspace ID is required"))
		})

		It("returns the workspace's bugs with a count", func() {
			aid := int64(43)
			bugSvc.listFn = func(_ context.Context, workspaceID, callerID int64) ([]model.Bug, error) {
				Expect(workspaceID).To(Equal(int64(9)))
				Expect(callerID).To(Equal(testUser.ID))
				return []model.Bug{
					{
						ID:          100,
						WorkspaceID: 9,
						Title:       "Crash on save",
						Status:      model.StatusOpen,
						Priority:    model.PriorityHigh,
						ReporterID:  42,
						AssigneeID:  &aid,
						Reporter:    &model.UserRef{ID: 42, Username: "alice"},
						Assignee:    &model.UserRef{ID: 43, Username: "bob"},
					},
					{
						ID:          101,
						WorkspaceID: 9,
						Title:       "Typo in footer",
						Status:      model.StatusResolved,
						Priority:    model.PriorityLow,
						ReporterID:  42,
					},
				}, nil
			}

			w := doRequest(engine, http.MethodGet, "/api/bugs?workspaceId=9", nil, true)

			Expect(w.Code).To(Equal(http.StatusOK))

			resp := parseEnvelope(w)
			Expect(resp["count"]).To(BeEquivalentTo(2))

			data := resp["data"].([]any)
			first := data[0].(map[string]any)
			Expect(first["title"]).To(Equal("Crash on save"))
			Expect(first["assignee"].(map[string]any)["username"]).To(Equal("bob"))
		})

		It("returns 403 for a non-member", func() {
			bugSvc.listFn = func(_ context.Context, _, _ int64) ([]model.Bug, error) {
				return nil, service.ErrNotMember
			}

			w := doRequest(engine, http.MethodGet, "/api/bugs?workspaceId=9", nil, true)

			Expect(w.Code).To(Equal(http.StatusForbidden))
			Expect(parseEnvelope(w)["error"]).To(Equal("Not authorized to access this workspace"))
		})
	})

	Describe("POST /api/bugs", func() {
		It("returns 201 with the created bug", func() {
			bugSvc.createFn = func(_ context.Context, input service.CreateBugInput, callerID int64) (*model.Bug, error) {
				Expect(input.WorkspaceID).To(Equal(int64(9)))
				Expect(input.Title).To(Equal("Crash on save"))
				Expect(callerID).To(Equal(testUser.ID))
				return &model.Bug{
					ID:          100,
					WorkspaceID: 9,
					Title:       input.Title,
					Status:      model.StatusOpen,
					Priority:    model.PriorityMedium,
					ReporterID:  callerID,
					Reporter:    &model.UserRef{ID: callerID, Username: "alice"},
				}, nil
			}

			w := doRequest(engine, http.MethodPost, "/api/bugs", map[string]any{
				"workspaceId":  "9",
				"title":        "Crash on save",
				"description":  "saving a draft crashes the tab",
				"projectTitle": "Apollo",
			}, true)

			Expect(w.Code).To(Equal(http.StatusCreated))

			data := parseEnvelope(w)["data"].(map[string]any)
			Expect(data["status"]).To(Equal("open"))
			Expect(data["reporter"].(map[string]any)["username"]).To(Equal("alice"))
		})

		It("returns 400 when the assignee is not a workspace member", func() {
			bugSvc.createFn = func(_ context.Context, _ service.CreateBugInput, _ int64) (*model.Bug, error) {
				return nil, service.ErrAssigneeNotMember
			}

			w := doRequest(engine, http.MethodPost, "/api/bugs", map[string]any{
				"workspaceId":  "9",
				"title":        "Crash on save",
				"description":  "saving a draft crashes the tab",
				"projectTitle": "Apollo",
				"assignee":     "999",
			}, true)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(parseEnvelope(w)["error"]).To(ContainSubstring("Assignee must be a workspace member"))
		})

		It("returns 400 when the description is missing", func() {
			bugSvc.createFn = func(_ context.Context, _ service.CreateBugInput, _ int64) (*model.Bug, error) {
				return nil, service.ErrBugDescriptionRequired
			}

			w := doRequest(engine, http.MethodPost, "/api/bugs", map[string]any{
				"workspaceId":  "9",
				"title":        "Crash on save",
				"projectTitle": "Apollo",
			}, true)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(parseEnvelope(w)["error"]).To(Equal("Please add a description"))
		})
	})

	Describe("PUT /api/bugs/:id", func() {
		It("updates the bug", func() {
			bugSvc.updateFn = func(_ context.Context, bugID int64, input service.UpdateBugInput, callerID int64) (*model.Bug, error) {
				Expect(bugID).To(Equal(int64(100)))
				Expect(input.Status).NotTo(BeNil())
				Expect(*input.Status).To(Equal(model.StatusResolved))
				return &model.Bug{ID: 100, WorkspaceID: 9, Title: "Crash on save", Status: model.StatusResolved, Priority: model.PriorityMedium, ReporterID: 42}, nil
			}

			w := doRequest(engine, http.MethodPut, "/api/bugs/100", map[string]any{
				"status": "resolved",
			}, true)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(parseEnvelope(w)["data"].(map[string]any)["status"]).To(Equal("resolved"))
		})

		It("returns 403 when a non-assignee changes status", func() {
			bugSvc.updateFn = func(_ context.Context, _ int64, _ service.UpdateBugInput, _ int64) (*model.Bug, error) {
				return nil, service.ErrNotAssignee
			}

			w := doRequest(engine, http.MethodPut, "/api/bugs/100", map[string]any{
				"status": "resolved",
			}, true)

			Expect(w.Code).To(Equal(http.StatusForbidden))
			Expect(parseEnvelope(w)["error"]).To(Equal("Only the assigned user can change bug status"))
		})

		It("returns 403 with an update-specific message for non-members", func() {
			bugSvc.updateFn = func(_ context.Context, _ int64, _ service.UpdateBugInput, _ int64) (*model.Bug, error) {
				return nil, service.ErrNotMember
			}

			w := doRequest(engine, http.MethodPut, "/api/bugs/100", map[string]any{
				"title": "New title",
			}, true)

			Expect(w.Code).To(Equal(http.StatusForbidden))
			Expect(parseEnvelope(w)["error"]).To(Equal("Not authorized to update this bug"))
		})

		It("returns 404 for an absent bug", func() {
			bugSvc.updateFn = func(_ context.Context, _ int64, _ service.UpdateBugInput, _ int64) (*model.Bug, error) {
				return nil, service.ErrBugNotFound
			}

			w := doRequest(engine, http.MethodPut, "/api/bugs/404", map[string]any{
				"title": "New title",
			}, true)

			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(parseEnvelope(w)["error"]).To(Equal("Bug not found"))
		})
	})

	Describe("DELETE /api/bugs/:id", func() {
		It("deletes the bug", func() {
			var deleted int64
			bugSvc.deleteFn = func(_ context.Context, bugID, callerID int64) error {
				deleted = bugID
				Expect(callerID).To(Equal(testUser.ID))
				return nil
			}

			w := doRequest(engine, http.MethodDelete, "/api/bugs/100", nil, true)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(deleted).To(Equal(int64(100)))
			Expect(parseEnvelope(w)["success"]).To(BeTrue())
		})

		It("returns 403 when the caller is neither reporter nor assignee", func() {
			bugSvc.deleteFn = func(_ context.Context, _, _ int64) error {
				return service.ErrNotReporterOrAssignee
			}

			w := doRequest(engine, http.MethodDelete, "/api/bugs/100", nil, true)

			Expect(w.Code).To(Equal(http.StatusForbidden))
			Expect(parseEnvelope(w)["error"]).To(Equal("Only the reporter or assignee can delete this bug"))
		})
	})
})

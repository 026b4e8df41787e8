package service_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"bugtrail.app/server/common/id"
	"bugtrail.app/server/internal/model"
	"bugtrail.app/server/internal/service"
	"bugtrail.app/server/internal/store"
)

var _ = Describe("WorkspaceService", func() {
	var (
		svc      service.WorkspaceService
		stores   *mockStores
		txRunner *mockTxRunner
		ctx      context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		stores = newMockStores()
		txRunner = &mockTxRunner{stores: stores}
		svc = service.NewWorkspaceService(stores.workspaces, stores.members, txRunner)

		Expect(id.Init(1)).To(Succeed())
	})

	Describe("Create", func() {
		It("rejects an empty name", func() {
			_, err := svc.Create(ctx, service.CreateWorkspaceInput{Name: "   "}, 1)
			Expect(err).To(MatchError(service.ErrWorkspaceNameRequired))
			Expect(stores.workspaces.createCalls).To(BeZero())
		})

		It("creates the workspace and enrolls the creator as admin in one transaction", func() {
			var createdWs *model.Workspace
			var addedMember *model.Member
			stores.workspaces.createFn = func(_ context.Context, ws *model.Workspace) error {
				createdWs = ws
				return nil
			}
			stores.members.addFn = func(_ context.Context, m *model.Member) error {
				addedMember = m
				return nil
			}

			ws, err := svc.Create(ctx, service.CreateWorkspaceInput{
				Name:        "Apollo",
				Description: "rocket bugs",
			}, 7)

			Expect(err).NotTo(HaveOccurred())
			Expect(ws.Code).To(MatchRegexp(`^[A-Z0-9]{6}$`))
			Expect(ws.Category).To(Equal(model.CategoryDevelopment))
			Expect(ws.Visibility).To(Equal(model.VisibilityPrivate))
			Expect(ws.CreatedBy).To(Equal(int64(7)))

			Expect(createdWs).To(Equal(ws))
			Expect(addedMember.UserID).To(Equal(int64(7)))
			Expect(addedMember.Role).To(Equal(model.RoleAdmin))
			Expect(txRunner.txCalls).To(Equal(1))
		})

		It("retries code generation on collision", func() {
			calls := 0
			stores.workspaces.getByCodeFn = func(_ context.Context, code string) (*model.Workspace, error) {
				calls++
				if calls == 1 {
					return &model.Workspace{ID: 1, Code: code}, nil
				}
				return nil, store.ErrNotFound
			}

			ws, err := svc.Create(ctx, service.CreateWorkspaceInput{Name: "Apollo"}, 7)

			Expect(err).NotTo(HaveOccurred())
			Expect(ws.Code).To(MatchRegexp(`^[A-Z0-9]{6}$`))
			Expect(calls).To(Equal(2))
		})

		It("gives up after bounded collision retries", func() {
			calls := 0
			stores.workspaces.getByCodeFn = func(_ context.Context, code string) (*model.Workspace, error) {
				calls++
				return &model.Workspace{ID: 1, Code: code}, nil
			}

			_, err := svc.Create(ctx, service.CreateWorkspaceInput{Name: "Apollo"}, 7)

			Expect(err).To(MatchError(service.ErrCodeExhausted))
			Expect(calls).To(Equal(10))
			Expect(stores.workspaces.createCalls).To(BeZero())
		})

		It("rejects an unknown category", func() {
			_, err := svc.Create(ctx, service.CreateWorkspaceInput{
				Name:     "Apollo",
				Category: "gardening",
			}, 7)
			Expect(err).To(MatchError(service.ErrInvalidCategory))
		})
	})

	Describe("Join", func() {
		BeforeEach(func() {
			stores.workspaces.getByCodeFn = func(_ context.Context, code string) (*model.Workspace, error) {
				if code == "ABC123" {
					return &model.Workspace{ID: 9, Code: "ABC123"}, nil
				}
				return nil, store.ErrNotFound
			}
		})

		It("fails when no workspace has the code", func() {
			_, err := svc.Join(ctx, "zzzzzz", 7)
			Expect(err).To(MatchError(service.ErrWorkspaceNotFound))
		})

		It("fails when the caller is already a member", func() {
			stores.members.listFn = func(_ context.Context, _ int64) ([]model.Member, error) {
				return []model.Member{{UserID: 7, Role: model.RoleMember}}, nil
			}

			_, err := svc.Join(ctx, "ABC123", 7)
			Expect(err).To(MatchError(service.ErrAlreadyMember))
			Expect(stores.members.addCalls).To(BeZero())
		})

		It("normalizes the code and adds the caller with member role", func() {
			var added *model.Member
			stores.members.addFn = func(_ context.Context, m *model.Member) error {
				added = m
				return nil
			}

			ws, err := svc.Join(ctx, " abc123 ", 7)

			Expect(err).NotTo(HaveOccurred())
			Expect(ws.ID).To(Equal(int64(9)))
			Expect(added.UserID).To(Equal(int64(7)))
			Expect(added.WorkspaceID).To(Equal(int64(9)))
			Expect(added.Role).To(Equal(model.RoleMember))
		})
	})

	Describe("ListMine", func() {
		It("resolves members for each workspace", func() {
			stores.workspaces.listByUserFn = func(_ context.Context, userID int64) ([]model.Membership, error) {
				return []model.Membership{
					{Workspace: model.Workspace{ID: 1, Name: "One"}, Role: model.RoleAdmin},
					{Workspace: model.Workspace{ID: 2, Name: "Two"}, Role: model.RoleMember},
				}, nil
			}
			stores.members.listFn = func(_ context.Context, workspaceID int64) ([]model.Member, error) {
				return []model.Member{{WorkspaceID: workspaceID, UserID: 7}}, nil
			}

			views, err := svc.ListMine(ctx, 7)

			Expect(err).NotTo(HaveOccurred())
			Expect(views).To(HaveLen(2))
			Expect(views[0].Role).To(Equal(model.RoleAdmin))
			Expect(views[0].Members).To(HaveLen(1))
			Expect(views[1].Workspace.Name).To(Equal("Two"))
		})
	})

	Describe("Members", func() {
		BeforeEach(func() {
			stores.workspaces.getByIDFn = func(_ context.Context, workspaceID int64) (*model.Workspace, error) {
				if workspaceID == 9 {
					return &model.Workspace{ID: 9}, nil
				}
				return nil, store.ErrNotFound
			}
		})

		It("fails when the workspace does not exist", func() {
			_, err := svc.Members(ctx, 404, 7)
			Expect(err).To(MatchError(service.ErrWorkspaceNotFound))
		})

		It("fails when the caller is not a member", func() {
			stores.members.listFn = func(_ context.Context, _ int64) ([]model.Member, error) {
				return []model.Member{{UserID: 99}}, nil
			}

			_, err := svc.Members(ctx, 9, 7)
			Expect(err).To(MatchError(service.ErrNotMember))
		})

		It("returns the member list for a member", func() {
			stores.members.listFn = func(_ context.Context, _ int64) ([]model.Member, error) {
				return []model.Member{
					{UserID: 7, Username: "alice", Role: model.RoleAdmin},
					{UserID: 8, Username: "bob", Role: model.RoleMember},
				}, nil
			}

			members, err := svc.Members(ctx, 9, 7)

			Expect(err).NotTo(HaveOccurred())
			Expect(members).To(HaveLen(2))
		})
	})

	Describe("RemoveMember", func() {
		members := []model.Member{
			{WorkspaceID: 9, UserID: 1, Role: model.RoleAdmin},
			{WorkspaceID: 9, UserID: 2, Role: model.RoleMember},
		}

		BeforeEach(func() {
			stores.workspaces.getByIDFn = func(_ context.Context, workspaceID int64) (*model.Workspace, error) {
				return &model.Workspace{ID: workspaceID}, nil
			}
			stores.members.listFn = func(_ context.Context, _ int64) ([]model.Member, error) {
				return members, nil
			}
		})

		It("fails when the caller is not an admin", func() {
			err := svc.RemoveMember(ctx, 9, 1, 2)
			Expect(err).To(MatchError(service.ErrNotAdmin))
			Expect(stores.members.removeCalls).To(BeZero())
		})

		It("refuses to remove the only admin removing themself", func() {
			err := svc.RemoveMember(ctx, 9, 1, 1)
			Expect(err).To(MatchError(service.ErrLastAdmin))
			Expect(stores.members.removeCalls).To(BeZero())
		})

		It("allows an admin to remove themself when another admin remains", func() {
			stores.members.listFn = func(_ context.Context, _ int64) ([]model.Member, error) {
				return []model.Member{
					{WorkspaceID: 9, UserID: 1, Role: model.RoleAdmin},
					{WorkspaceID: 9, UserID: 3, Role: model.RoleAdmin},
				}, nil
			}

			err := svc.RemoveMember(ctx, 9, 1, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(stores.members.removeCalls).To(Equal(1))
		})

		It("removes a member inside a transaction", func() {
			var removedWorkspace, removedUser int64
			stores.members.removeFn = func(_ context.Context, workspaceID, userID int64) error {
				removedWorkspace = workspaceID
				removedUser = userID
				return nil
			}

			err := svc.RemoveMember(ctx, 9, 2, 1)

			Expect(err).NotTo(HaveOccurred())
			Expect(removedWorkspace).To(Equal(int64(9)))
			Expect(removedUser).To(Equal(int64(2)))
			Expect(txRunner.txCalls).To(Equal(1))
		})

		It("fails when the target is not a member", func() {
			err := svc.RemoveMember(ctx, 9, 42, 1)
			Expect(err).To(MatchError(service.ErrMemberNotFound))
		})
	})
})

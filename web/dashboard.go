package main

import (
	"fmt"

	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

type DashboardPage struct {
	app.Compo

	views    []WorkspaceView
	selected int
	bugs     []Bug
	loaded   bool
	errMsg   string

	showBugForm   bool
	editingBug    *Bug
	showWsCreate  bool
	wsName        string
	wsDescription string
	joinCode      string
}

func (p *DashboardPage) OnMount(ctx app.Context) {
	p.selected = -1
	p.loadWorkspaces(ctx)
}

func (p *DashboardPage) loadWorkspaces(ctx app.Context) {
	ctx.Async(func() {
		views, err := fetchWorkspaces()
		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				// An expired session lands here; send the user back to login.
				ctx.Navigate("/login")
				return
			}
			p.views = views
			p.loaded = true
			if p.selected < 0 && len(views) > 0 {
				p.selected = 0
			}
			if p.selected >= len(views) {
				p.selected = len(views) - 1
			}
			if p.selected >= 0 {
				p.loadBugs(ctx, views[p.selected].Workspace.ID)
			}
		})
	})
}

func (p *DashboardPage) loadBugs(ctx app.Context, workspaceID int64) {
	ctx.Async(func() {
		bugs, err := fetchBugs(workspaceID)
		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				p.errMsg = err.Error()
				return
			}
			p.bugs = bugs
		})
	})
}

func (p *DashboardPage) current() *WorkspaceView {
	if p.selected < 0 || p.selected >= len(p.views) {
		return nil
	}
	return &p.views[p.selected]
}

func (p *DashboardPage) selectWorkspace(ctx app.Context, idx int) {
	p.selected = idx
	p.bugs = nil
	p.errMsg = ""
	if ws := p.current(); ws != nil {
		p.loadBugs(ctx, ws.Workspace.ID)
	}
}

func (p *DashboardPage) onLogout(ctx app.Context, e app.Event) {
	ctx.Async(func() {
		_ = logout()
		ctx.Dispatch(func(ctx app.Context) {
			ctx.Navigate("/login")
		})
	})
}

func (p *DashboardPage) onCreateWorkspace(ctx app.Context, e app.Event) {
	e.PreventDefault()
	name, desc := p.wsName, p.wsDescription
	ctx.Async(func() {
		_, err := createWorkspace(name, desc)
		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				p.errMsg = err.Error()
				return
			}
			p.showWsCreate = false
			p.wsName = ""
			p.wsDescription = ""
			p.loadWorkspaces(ctx)
		})
	})
}

func (p *DashboardPage) onJoinWorkspace(ctx app.Context, e app.Event) {
	e.PreventDefault()
	code := p.joinCode
	ctx.Async(func() {
		_, err := joinWorkspace(code)
		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				p.errMsg = err.Error()
				return
			}
			p.joinCode = ""
			p.loadWorkspaces(ctx)
		})
	})
}

func (p *DashboardPage) onRemoveMember(ctx app.Context, memberID int64) {
	ws := p.current()
	if ws == nil {
		return
	}
	workspaceID := ws.Workspace.ID
	ctx.Async(func() {
		err := removeMember(workspaceID, memberID)
		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				p.errMsg = err.Error()
				return
			}
			p.loadWorkspaces(ctx)
		})
	})
}

func (p *DashboardPage) onDeleteBug(ctx app.Context, bugID int64) {
	ctx.Async(func() {
		err := deleteBug(bugID)
		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				p.errMsg = err.Error()
				return
			}
			if ws := p.current(); ws != nil {
				p.loadBugs(ctx, ws.Workspace.ID)
			}
		})
	})
}

func (p *DashboardPage) onStatusChange(ctx app.Context, bugID int64, status string) {
	ctx.Async(func() {
		_, err := updateBug(bugID, map[string]any{"status": status})
		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				p.errMsg = err.Error()
				return
			}
			if ws := p.current(); ws != nil {
				p.loadBugs(ctx, ws.Workspace.ID)
			}
		})
	})
}

func (p *DashboardPage) onBugSaved(ctx app.Context) {
	p.showBugForm = false
	p.editingBug = nil
	if ws := p.current(); ws != nil {
		p.loadBugs(ctx, ws.Workspace.ID)
	}
}

func (p *DashboardPage) Render() app.UI {
	if !p.loaded {
		return app.Div().Class("loading-overlay").Body(
			app.Div().Class("loading-spinner"),
		)
	}

	return app.Div().Class("dashboard").Body(
		app.Header().Class("dashboard-header").Body(
			app.H1().Text("BugTrail"),
			app.Button().Class("btn btn-outline").Text("Log out").OnClick(p.onLogout),
		),
		app.If(p.errMsg != "", func() app.UI {
			return app.Div().Class("alert alert-error").Text(p.errMsg)
		}),
		app.Div().Class("dashboard-body").Body(
			p.renderSidebar(),
			p.renderMain(),
		),
	)
}

func (p *DashboardPage) renderSidebar() app.UI {
	return app.Aside().Class("sidebar").Body(
		app.H3().Text("Workspaces"),
		app.Div().Class("workspace-list").Body(
			app.Range(p.views).Slice(func(i int) app.UI {
				cls := "workspace-item"
				if i == p.selected {
					cls += " active"
				}
				v := p.views[i]
				return app.Div().Class(cls).
					OnClick(func(ctx app.Context, e app.Event) {
						p.selectWorkspace(ctx, i)
					}).
					Body(
						app.Span().Class("workspace-name").Text(v.Workspace.Name),
						app.Span().Class("workspace-code").Text(v.Workspace.Code),
					)
			}),
		),
		app.If(p.showWsCreate, func() app.UI {
			return app.Form().Class("ws-create-form").OnSubmit(p.onCreateWorkspace).Body(
				app.Input().Type("text").Placeholder("Workspace name").Value(p.wsName).
					OnInput(func(ctx app.Context, e app.Event) {
						p.wsName = ctx.JSSrc().Get("value").String()
					}),
				app.Input().Type("text").Placeholder("Description").Value(p.wsDescription).
					OnInput(func(ctx app.Context, e app.Event) {
						p.wsDescription = ctx.JSSrc().Get("value").String()
					}),
				app.Button().Type("submit").Class("btn btn-primary").Text("Create"),
			)
		}).Else(func() app.UI {
			return app.Button().Class("btn btn-outline").Text("New workspace").
				OnClick(func(ctx app.Context, e app.Event) {
					p.showWsCreate = true
				})
		}),
		app.Form().Class("ws-join-form").OnSubmit(p.onJoinWorkspace).Body(
			app.Input().Type("text").Placeholder("Invite code").MaxLength(6).Value(p.joinCode).
				OnInput(func(ctx app.Context, e app.Event) {
					p.joinCode = ctx.JSSrc().Get("value").String()
				}),
			app.Button().Type("submit").Class("btn btn-outline").Text("Join"),
		),
		p.renderMembers(),
	)
}

func (p *DashboardPage) renderMembers() app.UI {
	ws := p.current()
	if ws == nil {
		return app.Div()
	}
	isAdmin := ws.Role == "admin"

	return app.Div().Class("members-panel").Body(
		app.H3().Text(fmt.Sprintf("Members (%d)", len(ws.Members))),
		app.Range(ws.Members).Slice(func(i int) app.UI {
			m := ws.Members[i]
			return app.Div().Class("member-row").Body(
				app.Span().Class("member-name").Text(m.Username),
				app.Span().Class("member-role").Text(m.Role),
				app.If(isAdmin, func() app.UI {
					return app.Button().Class("btn btn-danger btn-sm").Text("Remove").
						OnClick(func(ctx app.Context, e app.Event) {
							p.onRemoveMember(ctx, m.UserID)
						})
				}),
			)
		}),
	)
}

func (p *DashboardPage) renderMain() app.UI {
	ws := p.current()
	if ws == nil {
		return app.Main().Class("dashboard-main").Body(
			app.P().Text("Create or join a workspace to start tracking bugs."),
		)
	}

	return app.Main().Class("dashboard-main").Body(
		app.Div().Class("bugs-header").Body(
			app.H2().Text(ws.Workspace.Name),
			app.Button().Class("btn btn-primary").Text("Report bug").
				OnClick(func(ctx app.Context, e app.Event) {
					p.editingBug = nil
					p.showBugForm = true
				}),
		),
		app.If(p.showBugForm, func() app.UI {
			return &BugForm{
				WorkspaceID: ws.Workspace.ID,
				Members:     ws.Members,
				Bug:         p.editingBug,
				OnSaved:     p.onBugSaved,
				OnCancel: func(ctx app.Context) {
					p.showBugForm = false
					p.editingBug = nil
				},
			}
		}),
		app.Div().Class("bug-list").Body(
			app.If(len(p.bugs) == 0, func() app.UI {
				return app.P().Class("empty-state").Text("No bugs reported yet.")
			}),
			app.Range(p.bugs).Slice(func(i int) app.UI {
				bug := p.bugs[i]
				return &BugCard{
					Bug: bug,
					OnEdit: func(ctx app.Context) {
						b := bug
						p.editingBug = &b
						p.showBugForm = true
					},
					OnDelete: func(ctx app.Context) {
						p.onDeleteBug(ctx, bug.ID)
					},
					OnStatusChange: func(ctx app.Context, status string) {
						p.onStatusChange(ctx, bug.ID, status)
					},
				}
			}),
		),
	)
}

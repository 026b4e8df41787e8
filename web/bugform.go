package main

import (
	"strconv"

	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// BugForm creates a new bug or edits an existing one, depending on whether
// Bug is set.
type BugForm struct {
	app.Compo

	WorkspaceID int64
	Members     []Member
	Bug         *Bug
	OnSaved     func(app.Context)
	OnCancel    func(app.Context)

	title        string
	description  string
	priority     string
	projectTitle string
	githubRepo   string
	assigneeID   string
	errMsg       string
	busy         bool
}

func (f *BugForm) OnMount(ctx app.Context) {
	f.priority = "medium"
	if f.Bug != nil {
		f.title = f.Bug.Title
		f.description = f.Bug.Description
		f.priority = f.Bug.Priority
		f.projectTitle = f.Bug.ProjectTitle
		if f.Bug.GithubRepo != nil {
			f.githubRepo = *f.Bug.GithubRepo
		}
		if f.Bug.Assignee != nil {
			f.assigneeID = strconv.FormatInt(f.Bug.Assignee.ID, 10)
		}
	}
}

func (f *BugForm) onSubmit(ctx app.Context, e app.Event) {
	e.PreventDefault()
	f.busy = true
	f.errMsg = ""

	payload := map[string]any{
		"title":        f.title,
		"description":  f.description,
		"priority":     f.priority,
		"projectTitle": f.projectTitle,
	}
	if f.githubRepo != "" {
		payload["githubRepo"] = f.githubRepo
	}
	if f.assigneeID != "" {
		payload["assignee"] = f.assigneeID
	}

	editing := f.Bug
	if editing == nil {
		payload["workspaceId"] = strconv.FormatInt(f.WorkspaceID, 10)
	}

	ctx.Async(func() {
		var err error
		if editing != nil {
			_, err = updateBug(editing.ID, payload)
		} else {
			_, err = createBug(payload)
		}
		ctx.Dispatch(func(ctx app.Context) {
			f.busy = false
			if err != nil {
				f.errMsg = err.Error()
				return
			}
			if f.OnSaved != nil {
				f.OnSaved(ctx)
			}
		})
	})
}

func (f *BugForm) Render() app.UI {
	heading := "Report a bug"
	if f.Bug != nil {
		heading = "Edit bug"
	}

	return app.Div().Class("bug-form-card").Body(
		app.H3().Text(heading),
		app.If(f.errMsg != "", func() app.UI {
			return app.Div().Class("alert alert-error").Text(f.errMsg)
		}),
		app.Form().OnSubmit(f.onSubmit).Body(
			app.Label().For("bug-title").Text("Title"),
			app.Input().ID("bug-title").Type("text").Value(f.title).
				OnInput(func(ctx app.Context, e app.Event) {
					f.title = ctx.JSSrc().Get("value").String()
				}),
			app.Label().For("bug-description").Text("Description"),
			app.Textarea().ID("bug-description").Text(f.description).
				OnInput(func(ctx app.Context, e app.Event) {
					f.description = ctx.JSSrc().Get("value").String()
				}),
			app.Label().For("bug-project").Text("Project"),
			app.Input().ID("bug-project").Type("text").Value(f.projectTitle).
				OnInput(func(ctx app.Context, e app.Event) {
					f.projectTitle = ctx.JSSrc().Get("value").String()
				}),
			app.Label().For("bug-repo").Text("Repository URL (optional)"),
			app.Input().ID("bug-repo").Type("url").Value(f.githubRepo).
				OnInput(func(ctx app.Context, e app.Event) {
					f.githubRepo = ctx.JSSrc().Get("value").String()
				}),
			app.Label().For("bug-priority").Text("Priority"),
			app.Select().ID("bug-priority").
				OnChange(func(ctx app.Context, e app.Event) {
					f.priority = ctx.JSSrc().Get("value").String()
				}).
				Body(
					priorityOption("low", f.priority),
					priorityOption("medium", f.priority),
					priorityOption("high", f.priority),
				),
			app.Label().For("bug-assignee").Text("Assignee"),
			app.Select().ID("bug-assignee").
				OnChange(func(ctx app.Context, e app.Event) {
					f.assigneeID = ctx.JSSrc().Get("value").String()
				}).
				Body(
					app.Option().Value("").Text("Unassigned").Selected(f.assigneeID == ""),
					app.Range(f.Members).Slice(func(i int) app.UI {
						m := f.Members[i]
						value := strconv.FormatInt(m.UserID, 10)
						return app.Option().Value(value).Text(m.Username).
							Selected(f.assigneeID == value)
					}),
				),
			app.Div().Class("form-actions").Body(
				app.Button().Type("submit").Class("btn btn-primary").
					Disabled(f.busy).Text("Save"),
				app.Button().Type("button").Class("btn btn-outline").Text("Cancel").
					OnClick(func(ctx app.Context, e app.Event) {
						if f.OnCancel != nil {
							f.OnCancel(ctx)
						}
					}),
			),
		),
	)
}

func priorityOption(value, current string) app.UI {
	return app.Option().Value(value).Text(value).Selected(current == value)
}

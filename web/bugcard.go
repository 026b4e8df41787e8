package main

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

var bugStatuses = []string{"open", "in-progress", "resolved"}

type BugCard struct {
	app.Compo

	Bug            Bug
	OnEdit         func(app.Context)
	OnDelete       func(app.Context)
	OnStatusChange func(app.Context, string)
}

func (c *BugCard) Render() app.UI {
	b := c.Bug

	assignee := "Unassigned"
	if b.Assignee != nil {
		assignee = b.Assignee.Username
	}
	reporter := ""
	if b.Reporter != nil {
		reporter = b.Reporter.Username
	}

	return app.Div().Class("bug-card bug-"+b.Status).Body(
		app.Div().Class("bug-card-header").Body(
			app.H4().Text(b.Title),
			app.Span().Class("badge badge-"+b.Priority).Text(b.Priority),
		),
		app.P().Class("bug-description").Text(b.Description),
		app.Div().Class("bug-meta").Body(
			app.Span().Text("Project: "+b.ProjectTitle),
			app.Span().Text("Reported by "+reporter),
			app.Span().Text("Assignee: "+assignee),
			app.If(b.GithubRepo != nil, func() app.UI {
				return app.A().Href(*b.GithubRepo).Target("_blank").Text("Repository")
			}),
		),
		app.Div().Class("bug-actions").Body(
			app.Select().Class("status-select").
				OnChange(func(ctx app.Context, e app.Event) {
					if c.OnStatusChange != nil {
						c.OnStatusChange(ctx, ctx.JSSrc().Get("value").String())
					}
				}).
				Body(
					app.Range(bugStatuses).Slice(func(i int) app.UI {
						s := bugStatuses[i]
						return app.Option().Value(s).Text(s).Selected(b.Status == s)
					}),
				),
			app.Button().Class("btn btn-outline btn-sm").Text("Edit").
				OnClick(func(ctx app.Context, e app.Event) {
					if c.OnEdit != nil {
						c.OnEdit(ctx)
					}
				}),
			app.Button().Class("btn btn-danger btn-sm").Text("Delete").
				OnClick(func(ctx app.Context, e app.Event) {
					if c.OnDelete != nil {
						c.OnDelete(ctx)
					}
				}),
		),
	)
}

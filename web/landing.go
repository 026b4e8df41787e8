package main

import "github.com/maxence-charriere/go-app/v10/pkg/app"

type LandingPage struct {
	app.Compo
}

func (p *LandingPage) Render() app.UI {
	return app.Div().Class("landing").Body(
		app.Header().Class("landing-header").Body(
			app.H1().Text("BugTrail"),
			app.Nav().Body(
				app.A().Href("/login").Class("btn btn-outline").Text("Sign in"),
				app.A().Href("/signup").Class("btn btn-primary").Text("Get started"),
			),
		),
		app.Main().Class("landing-hero").Body(
			app.H2().Text("Track bugs across your team's workspaces"),
			app.P().Text("Report, assign and resolve bugs in shared workspaces. Invite teammates with a six-character code."),
			app.Div().Class("landing-actions").Body(
				app.A().Href("/signup").Class("btn btn-primary btn-lg").Text("Create your account"),
				app.A().Href("/login").Class("btn btn-outline btn-lg").Text("Sign in"),
			),
		),
		app.Section().Class("landing-features").Body(
			feature("Workspaces", "Group bugs by team or project. Every workspace has its own members and invite code."),
			feature("Assignments", "Assign bugs to workspace members. Only the assignee moves a bug through its statuses."),
			feature("Priorities", "Triage with low, medium and high priorities, newest reports first."),
		),
	)
}

func feature(title, text string) app.UI {
	return app.Div().Class("feature-card").Body(
		app.H3().Text(title),
		app.P().Text(text),
	)
}

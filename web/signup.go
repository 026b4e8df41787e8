package main

import "github.com/maxence-charriere/go-app/v10/pkg/app"

type SignupPage struct {
	app.Compo

	username      string
	email         string
	password      string
	workspaceName string
	errMsg        string
	busy          bool
}

func (p *SignupPage) onSubmit(ctx app.Context, e app.Event) {
	e.PreventDefault()
	p.busy = true
	p.errMsg = ""

	username, email, password, wsName := p.username, p.email, p.password, p.workspaceName
	ctx.Async(func() {
		_, err := register(username, email, password, wsName)
		ctx.Dispatch(func(ctx app.Context) {
			p.busy = false
			if err != nil {
				p.errMsg = err.Error()
				return
			}
			ctx.Navigate("/dashboard")
		})
	})
}

func (p *SignupPage) Render() app.UI {
	return app.Div().Class("auth-page").Body(
		app.Div().Class("auth-card").Body(
			app.H2().Text("Create your BugTracker account"),
			app.If(p.errMsg != "", func() app.UI {
				return app.Div().Class("alert alert-error").Text(p.errMsg)
			}),
			app.Form().OnSubmit(p.onSubmit).Body(
				app.Label().For("username").Text("Username"),
				app.Input().ID("username").Type("text").Placeholder("Choose a username").
					Value(p.username).
					OnInput(func(ctx app.Context, e app.Event) {
						p.username = ctx.JSSrc().Get("value").String()
					}),
				app.Label().For("email").Text("Email"),
				app.Input().ID("email").Type("email").Value(p.email).
					OnInput(func(ctx app.Context, e app.Event) {
						p.email = ctx.JSSrc().Get("value").String()
					}),
				app.Label().For("password").Text("Password"),
				app.Input().ID("password").Type("password").Value(p.password).
					OnInput(func(ctx app.Context, e app.Event) {
						p.password = ctx.JSSrc().Get("value").String()
					}),
				app.Label().For("workspace-name").Text("Workspace name (optional)"),
				app.Input().ID("workspace-name").Type("text").Placeholder("My team").
					Value(p.workspaceName).
					OnInput(func(ctx app.Context, e app.Event) {
						p.workspaceName = ctx.JSSrc().Get("value").String()
					}),
				app.Button().Type("submit").Class("btn btn-primary").
					Disabled(p.busy).Text("Sign up"),
			),
			app.P().Class("auth-switch").Body(
				app.Text("Already have an account? "),
				app.A().Href("/login").Text("Sign in"),
			),
		),
	)
}

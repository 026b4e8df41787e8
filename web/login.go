package main

import "github.com/maxence-charriere/go-app/v10/pkg/app"

type LoginPage struct {
	app.Compo

	email         string
	password      string
	workspaceCode string
	errMsg        string
	busy          bool
}

func (p *LoginPage) onSubmit(ctx app.Context, e app.Event) {
	e.PreventDefault()
	p.busy = true
	p.errMsg = ""

	email, password, code := p.email, p.password, p.workspaceCode
	ctx.Async(func() {
		_, err := login(email, password, code)
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

func (p *LoginPage) Render() app.UI {
	return app.Div().Class("auth-page").Body(
		app.Div().Class("auth-card").Body(
			app.H2().Text("Sign in to your BugTrail account"),
			app.If(p.errMsg != "", func() app.UI {
				return app.Div().Class("alert alert-error").Text(p.errMsg)
			}),
			app.Form().OnSubmit(p.onSubmit).Body(
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
				app.Label().For("workspace-code").Text("Workspace code (optional)"),
				app.Input().ID("workspace-code").Type("text").Placeholder("ABC123").
					MaxLength(6).Value(p.workspaceCode).
					OnInput(func(ctx app.Context, e app.Event) {
						p.workspaceCode = ctx.JSSrc().Get("value").String()
					}),
				app.Button().Type("submit").Class("btn btn-primary").
					Disabled(p.busy).Text("Sign in"),
			),
			app.P().Class("auth-switch").Body(
				app.Text("No account yet? "),
				app.A().Href("/signup").Text("Sign up"),
			),
		),
	)
}

package main

import "github.com/maxence-charriere/go-app/v10/pkg/app"

func main() {
	app.Route("/", func() app.Composer { return &LandingPage{} })
	app.Route("/login", func() app.Composer { return &LoginPage{} })
	app.Route("/signup", func() app.Composer { return &SignupPage{} })
	app.Route("/dashboard", func() app.Composer { return &DashboardPage{} })
	app.RunWhenOnBrowser()
}

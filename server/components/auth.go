package components

import (
	"context"

	"github.com/a-h/templ"
)

func Login(errText string) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<h1>Log in</h1>`)
		h.render(ctx, Notification(NotifyError, errText))
		h.raw(`<form method="post" action="/login">`)
		h.raw(`<label>Username <input type="text" name="username" required autofocus></label>`)
		h.raw(`<label>Password <input type="password" name="password" required></label>`)
		h.raw(`<button type="submit">Log in</button></form>`)
	})
}

func Dashboard(firstName string) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<h1>Welcome, `)
		h.text(firstName)
		h.raw(`!</h1><p><a href="/displayUsers">Find study partners</a></p>`)
	})
}

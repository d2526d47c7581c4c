package components

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// htmlWriter keeps the first write error so components can write unconditionally
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *htmlWriter) render(ctx context.Context, c templ.Component) {
	if h.err != nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}

func component(f func(ctx context.Context, h *htmlWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		f(ctx, h)
		return h.err
	})
}

func Page(title string, loggedIn bool, body templ.Component) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw(`<title>`)
		h.text(title)
		h.raw(` | Study Group</title><link rel="stylesheet" href="/static/styles.css"></head><body>`)
		if loggedIn {
			h.raw(`<nav><a href="/">Dashboard</a> <a href="/displayUsers">Students</a> `)
			h.raw(`<a href="/profile">My profile</a> <a href="/createProfile">Create profile</a> `)
			h.raw(`<a href="/logout">Log out</a></nav>`)
		}
		h.raw(`<main>`)
		h.render(ctx, body)
		h.raw(`</main></body></html>`)
	})
}

type NotificationType int

const (
	NotifyError NotificationType = iota
	NotifySuccess
)

func Notification(notificationType NotificationType, message string) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		if message == "" {
			return
		}
		class := "notification error"
		if notificationType == NotifySuccess {
			class = "notification success"
		}
		h.raw(`<p class="` + class + `" role="alert">`)
		h.text(message)
		h.raw(`</p>`)
	})
}

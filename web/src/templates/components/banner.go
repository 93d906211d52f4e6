// Package components holds the reusable gomponents building blocks of the
// dashboard: banners, tables, metric cards, charts, tabs, and form fields.
package components

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"libdash/internal/view"
)

// FlashBanners renders the transient banners collected during the previous
// request: successes, errors, and fine-notice warnings.
func FlashBanners(flash view.FlashData) cmp.Node {
	return cmp.Group{
		cmp.Map(flash.Success, func(msg string) cmp.Node {
			return SuccessPanel(msg)
		}),
		cmp.Map(flash.Warning, func(msg string) cmp.Node {
			return WarningPanel(msg)
		}),
		cmp.Map(flash.Error, func(msg string) cmp.Node {
			return ErrorPanel(msg)
		}),
	}
}

// SuccessPanel is a green confirmation banner.
func SuccessPanel(message string) cmp.Node {
	return g.Div(
		g.Class("mb-4 rounded bg-green-100 px-4 py-3 text-green-800"),
		cmp.Text(message),
	)
}

// ErrorPanel is a red failure banner.
func ErrorPanel(message string) cmp.Node {
	return g.Div(
		g.Class("mb-4 rounded bg-red-100 px-4 py-3 text-red-800"),
		cmp.Text(message),
	)
}

// WarningPanel is a yellow notice banner.
func WarningPanel(message string) cmp.Node {
	return g.Div(
		g.Class("mb-4 rounded bg-yellow-100 px-4 py-3 text-yellow-800"),
		cmp.Text(message),
	)
}

// InfoPanel is a neutral informational banner for empty states.
func InfoPanel(message string) cmp.Node {
	return g.Div(
		g.Class("mb-4 rounded bg-sky-100 px-4 py-3 text-sky-800"),
		cmp.Text(message),
	)
}

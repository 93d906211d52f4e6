package components

import (
	"strconv"

	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// SelectOption is one entry of a selection list.
type SelectOption struct {
	Value    string
	Label    string
	Selected bool
}

func fieldLabel(name, label string, required bool) cmp.Node {
	text := label
	if required {
		text += "*"
	}
	return g.LabelEl(
		g.For(name),
		g.Class("block text-sm font-medium mb-1"),
		cmp.Text(text),
	)
}

const inputClasses = "w-full rounded border border-gray-300 px-3 py-2 text-sm"

// TextField is a labeled single-line text input. Required fields are marked
// with an asterisk but validated server-side before any write call.
func TextField(name, label, value string, required bool) cmp.Node {
	return g.Div(
		g.Class("mb-4"),
		fieldLabel(name, label, required),
		g.Input(
			g.Type("text"),
			g.ID(name),
			g.Name(name),
			g.Value(value),
			g.Class(inputClasses),
		),
	)
}

// NumberField is a labeled numeric input with bounds.
func NumberField(name, label string, value, min, max int, required bool) cmp.Node {
	return g.Div(
		g.Class("mb-4"),
		fieldLabel(name, label, required),
		g.Input(
			g.Type("number"),
			g.ID(name),
			g.Name(name),
			g.Value(strconv.Itoa(value)),
			g.Min(strconv.Itoa(min)),
			g.Max(strconv.Itoa(max)),
			g.Class(inputClasses),
		),
	)
}

// TextAreaField is a labeled multi-line input.
func TextAreaField(name, label, value string) cmp.Node {
	return g.Div(
		g.Class("mb-4"),
		fieldLabel(name, label, false),
		g.Textarea(
			g.ID(name),
			g.Name(name),
			g.Rows("3"),
			g.Class(inputClasses),
			cmp.Text(value),
		),
	)
}

// SelectField is a labeled selection list.
func SelectField(name, label string, options []SelectOption, required bool) cmp.Node {
	return g.Div(
		g.Class("mb-4"),
		fieldLabel(name, label, required),
		g.Select(
			g.ID(name),
			g.Name(name),
			g.Class(inputClasses),
			cmp.Map(options, func(o SelectOption) cmp.Node {
				return g.Option(
					g.Value(o.Value),
					cmp.If(o.Selected, g.Selected()),
					cmp.Text(o.Label),
				)
			}),
		),
	)
}

// SubmitButton is the primary form action.
func SubmitButton(label string) cmp.Node {
	return g.Button(
		g.Type("submit"),
		g.Class("rounded bg-sky-700 px-4 py-2 text-sm font-semibold text-white hover:bg-sky-800"),
		cmp.Text(label),
	)
}

// DangerButton is a destructive form action (delete).
func DangerButton(label string) cmp.Node {
	return g.Button(
		g.Type("submit"),
		g.Class("rounded bg-red-700 px-4 py-2 text-sm font-semibold text-white hover:bg-red-800"),
		cmp.Text(label),
	)
}

package pages

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"libdash/internal/api"
	"libdash/internal/view"
	"libdash/web/src/templates/components"
)

// User page tab keys.
const (
	UsersTabView = "view"
	UsersTabAdd  = "add"
)

var usersTabs = []components.Tab{
	{Key: UsersTabView, Label: "View Users"},
	{Key: UsersTabAdd, Label: "Add New User"},
}

// UsersData is the view model for the users page.
type UsersData struct {
	Tab       string
	Users     []api.User
	UsersErr  string
	UserTypes []string
}

// Users renders the users management page for the active tab.
func Users(data UsersData) cmp.Node {
	var content cmp.Node
	if data.Tab == UsersTabAdd {
		content = addUserForm(data)
	} else {
		content = viewUsers(data)
	}

	return cmp.Group{
		subHeader("Users Management"),
		components.TabBar("/users", data.Tab, usersTabs),
		content,
	}
}

func viewUsers(data UsersData) cmp.Node {
	if data.UsersErr != "" {
		return components.ErrorPanel(data.UsersErr)
	}
	if len(data.Users) == 0 {
		return components.InfoPanel("No users registered yet.")
	}

	rows := make([][]string, 0, len(data.Users))
	for _, u := range data.Users {
		rows = append(rows, []string{u.Name, u.Email, view.TitleLabel(u.UserType), u.Department})
	}
	return components.Table([]string{"Name", "Email", "User Type", "Department"}, rows)
}

func addUserForm(data UsersData) cmp.Node {
	typeOptions := make([]components.SelectOption, 0, len(data.UserTypes))
	for _, t := range data.UserTypes {
		typeOptions = append(typeOptions, components.SelectOption{Value: t, Label: view.TitleLabel(t)})
	}

	return g.FormEl(
		g.Method("post"),
		g.Action("/users"),
		g.Class("max-w-3xl rounded-lg bg-white p-6 shadow"),
		g.Div(
			g.Class("grid gap-x-6 md:grid-cols-2"),
			g.Div(
				components.TextField("name", "Full Name", "", true),
				components.TextField("email", "Email", "", true),
				components.SelectField("userType", "User Type", typeOptions, true),
			),
			g.Div(
				components.TextField("department", "Department", "", false),
			),
		),
		components.SubmitButton("Add User"),
	)
}

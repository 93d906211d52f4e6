package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"libdash/internal/api"
	"libdash/internal/view"
	"libdash/web/src/templates/pages"
)

// UsersHandler renders the users page and processes the registration form.
type UsersHandler struct {
	page *Page
}

// NewUsersHandler creates a new UsersHandler.
func NewUsersHandler(page *Page) *UsersHandler {
	return &UsersHandler{page: page}
}

// UsersGet shows the users page for the requested tab.
func (h *UsersHandler) UsersGet(c echo.Context) error {
	ctx := c.Request().Context()
	health := h.page.probe(c)

	data := pages.UsersData{Tab: c.QueryParam("tab")}
	if data.Tab == "" {
		data.Tab = pages.UsersTabView
	}

	switch data.Tab {
	case pages.UsersTabAdd:
		if types, err := h.page.API.UserTypes(ctx); err == nil && len(types) > 0 {
			data.UserTypes = types
		} else {
			data.UserTypes = []string{"student", "faculty", "staff", "public"}
		}
	default:
		users, err := h.page.API.ListUsers(ctx, api.UserQuery{Limit: catalogPageLimit})
		if err != nil {
			data.UsersErr = view.UserMessage(err)
		} else {
			data.Users = users
		}
	}

	return h.page.render(c, "Users", health, pages.Users(data))
}

// UserAddPost processes the add-user form.
func (h *UsersHandler) UserAddPost(c echo.Context) error {
	var form AddUserForm
	if err := c.Bind(&form); err != nil {
		view.SetFlashError(c, "Invalid form submission.")
		return c.Redirect(http.StatusSeeOther, "/users?tab=add")
	}
	if err := c.Validate(&form); err != nil {
		view.SetFlashError(c, "Please fill in all required fields (*)")
		return c.Redirect(http.StatusSeeOther, "/users?tab=add")
	}

	user := api.NewUser{
		Name:       form.Name,
		Email:      form.Email,
		UserType:   form.UserType,
		Department: optional(form.Department),
	}
	if _, err := h.page.API.AddUser(c.Request().Context(), user); err != nil {
		view.SetFlashError(c, view.UserMessage(err))
		return c.Redirect(http.StatusSeeOther, "/users?tab=add")
	}

	view.SetFlashSuccess(c, "User added successfully!")
	return c.Redirect(http.StatusSeeOther, "/users?tab=add")
}

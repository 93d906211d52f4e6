package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"libdash/internal/api"
	"libdash/internal/view"
	"libdash/web/src/templates/pages"
)

const catalogPageLimit = 100

// BooksHandler renders the books management page and processes its forms.
type BooksHandler struct {
	page *Page
}

// NewBooksHandler creates a new BooksHandler.
func NewBooksHandler(page *Page) *BooksHandler {
	return &BooksHandler{page: page}
}

// BooksGet shows the books page for the requested tab.
func (h *BooksHandler) BooksGet(c echo.Context) error {
	ctx := c.Request().Context()
	health := h.page.probe(c)

	data := pages.BooksData{Tab: c.QueryParam("tab")}
	if data.Tab == "" {
		data.Tab = pages.BooksTabView
	}

	switch data.Tab {
	case pages.BooksTabAdd:
		// The add form needs no fetch.

	case pages.BooksTabSearch:
		data.Search = c.QueryParam("search")
		data.Category = c.QueryParam("category")
		if categories, err := h.page.API.BookCategories(ctx); err == nil {
			data.Categories = categories
		}
		if data.Search != "" || data.Category != "" {
			data.Searched = true
			books, err := h.page.API.ListBooks(ctx, api.BookQuery{
				Limit: catalogPageLimit, Search: data.Search, Category: data.Category,
			})
			if err != nil {
				data.SearchErr = view.UserMessage(err)
			} else {
				data.Books = books
			}
		}

	default:
		books, err := h.page.API.ListBooks(ctx, api.BookQuery{Limit: catalogPageLimit})
		if err != nil {
			data.BooksErr = view.UserMessage(err)
		} else {
			data.Books = books
		}
		if data.Tab == pages.BooksTabManage {
			if id := c.QueryParam("book"); id != "" {
				for i := range data.Books {
					if data.Books[i].ID == id {
						data.Selected = &data.Books[i]
						break
					}
				}
			}
		}
	}

	return h.page.render(c, "Books", health, pages.Books(data))
}

// SearchPartial serves the search result table as an HTMX fragment.
func (h *BooksHandler) SearchPartial(c echo.Context) error {
	ctx := c.Request().Context()
	data := pages.BooksData{
		Tab:      pages.BooksTabSearch,
		Search:   c.QueryParam("search"),
		Category: c.QueryParam("category"),
	}

	if data.Search != "" || data.Category != "" {
		data.Searched = true
		books, err := h.page.API.ListBooks(ctx, api.BookQuery{
			Limit: catalogPageLimit, Search: data.Search, Category: data.Category,
		})
		if err != nil {
			data.SearchErr = view.UserMessage(err)
		} else {
			data.Books = books
		}
	}

	return c.Render(http.StatusOK, "", pages.SearchResults(data))
}

// BookAddPost processes the add-book form. All required fields must validate
// before a single POST /books is issued; the submitted available count always
// equals the total count.
func (h *BooksHandler) BookAddPost(c echo.Context) error {
	var form AddBookForm
	if err := c.Bind(&form); err != nil {
		view.SetFlashError(c, "Invalid form submission.")
		return c.Redirect(http.StatusSeeOther, "/books?tab=add")
	}
	if err := c.Validate(&form); err != nil {
		view.SetFlashError(c, "Please fill in all required fields (*)")
		return c.Redirect(http.StatusSeeOther, "/books?tab=add")
	}

	book := api.NewBook{
		Title:           form.Title,
		Author:          form.Author,
		Category:        form.Category,
		ISBN:            optional(form.ISBN),
		TotalCopies:     form.TotalCopies,
		AvailableCopies: form.TotalCopies,
		Description:     optional(form.Description),
	}
	if form.PublishedYear > 0 {
		book.PublishedYear = &form.PublishedYear
	}

	if _, err := h.page.API.AddBook(c.Request().Context(), book); err != nil {
		view.SetFlashError(c, view.UserMessage(err))
		return c.Redirect(http.StatusSeeOther, "/books?tab=add")
	}

	view.SetFlashSuccess(c, "Book added successfully!")
	return c.Redirect(http.StatusSeeOther, "/books?tab=add")
}

// BookUpdatePost processes the copy-count update form.
func (h *BooksHandler) BookUpdatePost(c echo.Context) error {
	id := c.Param("id")
	target := "/books?tab=manage&book=" + id

	var form UpdateBookForm
	if err := c.Bind(&form); err != nil {
		view.SetFlashError(c, "Invalid form submission.")
		return c.Redirect(http.StatusSeeOther, target)
	}
	if err := c.Validate(&form); err != nil {
		view.SetFlashError(c, "Please fill in all required fields (*)")
		return c.Redirect(http.StatusSeeOther, target)
	}

	update := api.BookUpdate{
		TotalCopies:     form.TotalCopies,
		AvailableCopies: form.AvailableCopies,
	}
	if _, err := h.page.API.UpdateBook(c.Request().Context(), id, update); err != nil {
		view.SetFlashError(c, view.UserMessage(err))
		return c.Redirect(http.StatusSeeOther, target)
	}

	view.SetFlashSuccess(c, "Book updated successfully!")
	return c.Redirect(http.StatusSeeOther, target)
}

// BookDeletePost removes a book.
func (h *BooksHandler) BookDeletePost(c echo.Context) error {
	if err := h.page.API.DeleteBook(c.Request().Context(), c.Param("id")); err != nil {
		view.SetFlashError(c, view.UserMessage(err))
		return c.Redirect(http.StatusSeeOther, "/books?tab=manage")
	}

	view.SetFlashSuccess(c, "Book deleted successfully!")
	return c.Redirect(http.StatusSeeOther, "/books?tab=manage")
}

// optional maps an empty form field to nil so it is sent as JSON null.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"libdash/internal/api"
	"libdash/internal/view"
	"libdash/web/src/templates/pages"
)

const statusBorrowed = "borrowed"

// TransactionsHandler renders the transactions page and processes the
// borrow and return forms.
type TransactionsHandler struct {
	page *Page
}

// NewTransactionsHandler creates a new TransactionsHandler.
func NewTransactionsHandler(page *Page) *TransactionsHandler {
	return &TransactionsHandler{page: page}
}

// TransactionsGet shows the transactions page for the requested tab.
func (h *TransactionsHandler) TransactionsGet(c echo.Context) error {
	ctx := c.Request().Context()
	health := h.page.probe(c)

	data := pages.TransactionsData{Tab: c.QueryParam("tab")}
	if data.Tab == "" {
		data.Tab = pages.TransactionsTabBorrow
	}

	switch data.Tab {
	case pages.TransactionsTabReturn:
		loans, err := h.page.API.ListTransactions(ctx, api.TransactionQuery{
			Status: statusBorrowed, Limit: catalogPageLimit,
		})
		if err != nil {
			data.ReturnErr = view.UserMessage(err)
		} else {
			data.OpenLoans = loans
		}

	case pages.TransactionsTabAll:
		data.Status = c.QueryParam("status")
		transactions, err := h.page.API.ListTransactions(ctx, api.TransactionQuery{
			Status: data.Status, Limit: catalogPageLimit,
		})
		if err != nil {
			data.ListErr = view.UserMessage(err)
		} else {
			data.Transactions = transactions
		}

	case pages.TransactionsTabOverdue:
		overdue, err := h.page.API.OverdueTransactions(ctx)
		if err != nil {
			data.OverdueErr = view.UserMessage(err)
		} else {
			data.Overdue = overdue
		}

	default:
		books, err := h.page.API.ListBooks(ctx, api.BookQuery{Limit: catalogPageLimit})
		if err != nil {
			data.BorrowErr = view.UserMessage(err)
			break
		}
		data.AvailableBooks = availableOnly(books)
		users, err := h.page.API.ListUsers(ctx, api.UserQuery{Limit: catalogPageLimit})
		if err != nil {
			data.BorrowErr = view.UserMessage(err)
			break
		}
		data.Users = users
	}

	return h.page.render(c, "Transactions", health, pages.Transactions(data))
}

// ListPartial serves the filtered transaction table as an HTMX fragment.
func (h *TransactionsHandler) ListPartial(c echo.Context) error {
	data := pages.TransactionsData{
		Tab:    pages.TransactionsTabAll,
		Status: c.QueryParam("status"),
	}

	transactions, err := h.page.API.ListTransactions(c.Request().Context(), api.TransactionQuery{
		Status: data.Status, Limit: catalogPageLimit,
	})
	if err != nil {
		data.ListErr = view.UserMessage(err)
	} else {
		data.Transactions = transactions
	}

	return c.Render(http.StatusOK, "", pages.TransactionList(data))
}

// BorrowPost processes the borrow form.
func (h *TransactionsHandler) BorrowPost(c echo.Context) error {
	var form BorrowForm
	if err := c.Bind(&form); err != nil {
		view.SetFlashError(c, "Invalid form submission.")
		return c.Redirect(http.StatusSeeOther, "/transactions?tab=borrow")
	}
	if err := c.Validate(&form); err != nil {
		view.SetFlashError(c, "Please select a book and a user.")
		return c.Redirect(http.StatusSeeOther, "/transactions?tab=borrow")
	}
	if form.Days == 0 {
		form.Days = 14
	}

	if _, err := h.page.API.BorrowBook(c.Request().Context(), form.BookID, form.UserID, form.Days); err != nil {
		view.SetFlashError(c, view.UserMessage(err))
		return c.Redirect(http.StatusSeeOther, "/transactions?tab=borrow")
	}

	view.SetFlashSuccess(c, "Book borrowed successfully!")
	return c.Redirect(http.StatusSeeOther, "/transactions?tab=borrow")
}

// ReturnPost processes the return form. The selected option carries the full
// display label, so the transaction id is cut back out of it first.
func (h *TransactionsHandler) ReturnPost(c echo.Context) error {
	var form ReturnForm
	if err := c.Bind(&form); err != nil {
		view.SetFlashError(c, "Invalid form submission.")
		return c.Redirect(http.StatusSeeOther, "/transactions?tab=return")
	}
	if err := c.Validate(&form); err != nil {
		view.SetFlashError(c, "Please select a transaction.")
		return c.Redirect(http.StatusSeeOther, "/transactions?tab=return")
	}

	id := view.TransactionIDFromOption(form.Transaction)
	result, err := h.page.API.ReturnBook(c.Request().Context(), id)
	if err != nil {
		view.SetFlashError(c, view.UserMessage(err))
		return c.Redirect(http.StatusSeeOther, "/transactions?tab=return")
	}

	view.SetFlashSuccess(c, "Book returned successfully!")
	if result.Fine != "" {
		view.SetFlashWarning(c, result.Fine)
	}
	return c.Redirect(http.StatusSeeOther, "/transactions?tab=return")
}

// availableOnly keeps books with at least one available copy.
func availableOnly(books []api.Book) []api.Book {
	available := make([]api.Book, 0, len(books))
	for _, b := range books {
		if b.Available() {
			available = append(available, b)
		}
	}
	return available
}

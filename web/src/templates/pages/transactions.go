package pages

import (
	"fmt"
	"strconv"

	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"

	"libdash/internal/api"
	"libdash/internal/view"
	"libdash/web/src/templates/components"
)

// Transaction page tab keys.
const (
	TransactionsTabBorrow  = "borrow"
	TransactionsTabReturn  = "return"
	TransactionsTabAll     = "all"
	TransactionsTabOverdue = "overdue"
)

var transactionsTabs = []components.Tab{
	{Key: TransactionsTabBorrow, Label: "Borrow Book"},
	{Key: TransactionsTabReturn, Label: "Return Book"},
	{Key: TransactionsTabAll, Label: "View Transactions"},
	{Key: TransactionsTabOverdue, Label: "Overdue Books"},
}

// TransactionsData is the view model for the transactions page.
type TransactionsData struct {
	Tab string

	// Borrow tab: only books with available copies are offered.
	AvailableBooks []api.Book
	Users          []api.User
	BorrowErr      string

	// Return tab: open loans only.
	OpenLoans []api.Transaction
	ReturnErr string

	// All tab.
	Transactions []api.Transaction
	Status       string
	ListErr      string

	// Overdue tab.
	Overdue    []api.Transaction
	OverdueErr string
}

// Transactions renders the transactions management page for the active tab.
func Transactions(data TransactionsData) cmp.Node {
	var content cmp.Node
	switch data.Tab {
	case TransactionsTabReturn:
		content = returnBook(data)
	case TransactionsTabAll:
		content = allTransactions(data)
	case TransactionsTabOverdue:
		content = overdueBooks(data)
	default:
		content = borrowBook(data)
	}

	return cmp.Group{
		subHeader("Transactions Management"),
		components.TabBar("/transactions", data.Tab, transactionsTabs),
		content,
	}
}

func borrowBook(data TransactionsData) cmp.Node {
	if data.BorrowErr != "" {
		return components.ErrorPanel(data.BorrowErr)
	}
	if len(data.AvailableBooks) == 0 {
		return components.WarningPanel("No available books found. All books are currently borrowed.")
	}
	if len(data.Users) == 0 {
		return components.WarningPanel("No active users found.")
	}

	bookOptions := make([]components.SelectOption, 0, len(data.AvailableBooks))
	for _, b := range data.AvailableBooks {
		bookOptions = append(bookOptions, components.SelectOption{
			Value: b.ID,
			Label: fmt.Sprintf("%s (%d available)", view.BookOption(b), b.AvailableCopies),
		})
	}
	userOptions := make([]components.SelectOption, 0, len(data.Users))
	for _, u := range data.Users {
		userOptions = append(userOptions, components.SelectOption{Value: u.ID, Label: view.UserOption(u)})
	}

	return g.FormEl(
		g.Method("post"),
		g.Action("/transactions/borrow"),
		g.Class("max-w-3xl rounded-lg bg-white p-6 shadow"),
		g.Div(
			g.Class("grid gap-x-6 md:grid-cols-2"),
			g.Div(
				components.SelectField("bookId", "Select Book", bookOptions, true),
			),
			g.Div(
				components.SelectField("userId", "Select User", userOptions, true),
				components.NumberField("days", "Borrow Duration (days)", 14, 1, 30, false),
			),
		),
		components.SubmitButton("Borrow Book"),
	)
}

func returnBook(data TransactionsData) cmp.Node {
	if data.ReturnErr != "" {
		return components.ErrorPanel(data.ReturnErr)
	}
	if len(data.OpenLoans) == 0 {
		return components.SuccessPanel("No borrowed books found - all books are returned!")
	}

	// The option value is the full display string; the handler parses the
	// transaction id back out of it on submit.
	options := make([]components.SelectOption, 0, len(data.OpenLoans))
	for _, tx := range data.OpenLoans {
		label := view.TransactionOption(tx)
		options = append(options, components.SelectOption{Value: label, Label: label})
	}

	return g.FormEl(
		g.Method("post"),
		g.Action("/transactions/return"),
		g.Class("max-w-3xl rounded-lg bg-white p-6 shadow"),
		components.SelectField("transaction", "Select Transaction to Return", options, true),
		components.SubmitButton("Return Book"),
	)
}

func allTransactions(data TransactionsData) cmp.Node {
	statusOptions := []components.SelectOption{{Value: "", Label: "All statuses"}}
	for _, s := range []string{"borrowed", "returned", "overdue"} {
		statusOptions = append(statusOptions, components.SelectOption{
			Value: s, Label: view.TitleLabel(s), Selected: s == data.Status,
		})
	}

	filter := g.FormEl(
		g.Method("get"),
		g.Action("/transactions"),
		g.Class("mb-6 flex items-end gap-4 rounded-lg bg-white p-4 shadow"),
		g.Input(g.Type("hidden"), g.Name("tab"), g.Value(TransactionsTabAll)),
		g.Div(
			g.Class("w-64"),
			components.SelectField("status", "Filter by Status", statusOptions, false),
		),
		components.SubmitButton("Apply"),
		// Changing the select also refreshes the table in place.
		g.Div(
			g.Class("hidden"),
			hx.Get("/transactions/list"),
			hx.Trigger("change from:#status"),
			hx.Target("#transaction-results"),
			hx.Include("closest form"),
		),
	)

	return cmp.Group{
		filter,
		g.Div(g.ID("transaction-results"), TransactionList(data)),
	}
}

// TransactionList renders the all-transactions table. It is also served
// standalone as an HTMX fragment for the status filter.
func TransactionList(data TransactionsData) cmp.Node {
	if data.ListErr != "" {
		return components.ErrorPanel(data.ListErr)
	}
	if len(data.Transactions) == 0 {
		return components.InfoPanel("No transactions found.")
	}

	rows := make([][]string, 0, len(data.Transactions))
	for _, tx := range data.Transactions {
		rows = append(rows, []string{
			tx.TransactionID, tx.BookTitle(), tx.UserName(), tx.Status,
			tx.BorrowDate, tx.DueDate, tx.ReturnDate,
		})
	}
	return components.Table(
		[]string{"Transaction ID", "Book", "User", "Status", "Borrow Date", "Due Date", "Return Date"},
		rows,
	)
}

func overdueBooks(data TransactionsData) cmp.Node {
	if data.OverdueErr != "" {
		return components.ErrorPanel(data.OverdueErr)
	}
	if len(data.Overdue) == 0 {
		return components.SuccessPanel("No overdue books!")
	}

	rows := make([][]string, 0, len(data.Overdue))
	for _, tx := range data.Overdue {
		overdueDays := "N/A"
		if tx.OverdueDays != nil {
			overdueDays = strconv.Itoa(*tx.OverdueDays)
		}
		rows = append(rows, []string{
			tx.TransactionID, tx.BookTitle(), tx.UserName(), tx.DueDate, overdueDays,
		})
	}

	return cmp.Group{
		components.WarningPanel(fmt.Sprintf("There are %d overdue books!", len(data.Overdue))),
		components.Table(
			[]string{"Transaction ID", "Book", "User", "Due Date", "Overdue Days"},
			rows,
		),
	}
}

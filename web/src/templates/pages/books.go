package pages

import (
	"strconv"
	"time"

	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"

	"libdash/internal/api"
	"libdash/internal/view"
	"libdash/web/src/templates/components"
)

// Book page tab keys.
const (
	BooksTabView   = "view"
	BooksTabAdd    = "add"
	BooksTabSearch = "search"
	BooksTabManage = "manage"
)

var booksTabs = []components.Tab{
	{Key: BooksTabView, Label: "View Books"},
	{Key: BooksTabAdd, Label: "Add New Book"},
	{Key: BooksTabSearch, Label: "Search Books"},
	{Key: BooksTabManage, Label: "Update/Delete Books"},
}

// BooksData is the view model for the books page.
type BooksData struct {
	Tab        string
	Books      []api.Book
	BooksErr   string
	Categories []string

	// Search tab state.
	Search    string
	Category  string
	Searched  bool
	SearchErr string

	// Manage tab state: the book picked for editing, if any.
	Selected *api.Book
}

// Books renders the books management page for the active tab.
func Books(data BooksData) cmp.Node {
	var content cmp.Node
	switch data.Tab {
	case BooksTabAdd:
		content = addBookForm()
	case BooksTabSearch:
		content = searchBooks(data)
	case BooksTabManage:
		content = manageBooks(data)
	default:
		content = viewBooks(data)
	}

	return cmp.Group{
		subHeader("Books Management"),
		components.TabBar("/books", data.Tab, booksTabs),
		content,
	}
}

func viewBooks(data BooksData) cmp.Node {
	if data.BooksErr != "" {
		return components.ErrorPanel(data.BooksErr)
	}
	if len(data.Books) == 0 {
		return components.InfoPanel("The catalog is empty.")
	}
	return BookTable(data.Books)
}

// BookTable is the tabular catalog view, shared by the view and search tabs.
func BookTable(books []api.Book) cmp.Node {
	rows := make([][]string, 0, len(books))
	for _, b := range books {
		year := ""
		if b.PublishedYear != nil {
			year = strconv.Itoa(*b.PublishedYear)
		}
		rows = append(rows, []string{
			b.Title, b.Author, b.Category, b.ISBN,
			strconv.Itoa(b.AvailableCopies), strconv.Itoa(b.TotalCopies), year,
		})
	}
	return components.Table(
		[]string{"Title", "Author", "Category", "ISBN", "Available", "Total", "Year"},
		rows,
	)
}

func addBookForm() cmp.Node {
	currentYear := time.Now().Year()
	return g.FormEl(
		g.Method("post"),
		g.Action("/books"),
		g.Class("max-w-3xl rounded-lg bg-white p-6 shadow"),
		g.Div(
			g.Class("grid gap-x-6 md:grid-cols-2"),
			g.Div(
				components.TextField("title", "Title", "", true),
				components.TextField("author", "Author", "", true),
				components.TextField("category", "Category", "", true),
				components.TextField("isbn", "ISBN", "", false),
			),
			g.Div(
				components.NumberField("totalCopies", "Total Copies", 1, 1, 1000, true),
				components.NumberField("publishedYear", "Published Year", currentYear, 1000, currentYear, false),
				components.TextAreaField("description", "Description", ""),
			),
		),
		components.SubmitButton("Add Book"),
	)
}

func searchBooks(data BooksData) cmp.Node {
	categoryOptions := []components.SelectOption{{Value: "", Label: "All categories"}}
	for _, c := range data.Categories {
		categoryOptions = append(categoryOptions, components.SelectOption{
			Value: c, Label: c, Selected: c == data.Category,
		})
	}

	return cmp.Group{
		g.FormEl(
			g.Method("get"),
			g.Action("/books"),
			g.Class("mb-6 flex items-end gap-4 rounded-lg bg-white p-4 shadow"),
			g.Input(g.Type("hidden"), g.Name("tab"), g.Value(BooksTabSearch)),
			g.Div(
				g.Class("flex-1 mb-4"),
				g.LabelEl(
					g.For("search"),
					g.Class("block text-sm font-medium mb-1"),
					cmp.Text("Search by title, author, or category"),
				),
				// Typing re-runs the search without a full page load.
				g.Input(
					g.Type("text"),
					g.ID("search"),
					g.Name("search"),
					g.Value(data.Search),
					g.Class("w-full rounded border border-gray-300 px-3 py-2 text-sm"),
					hx.Get("/books/search"),
					hx.Trigger("keyup changed delay:500ms"),
					hx.Target("#book-results"),
					hx.Include("closest form"),
				),
			),
			g.Div(
				g.Class("w-48"),
				components.SelectField("category", "Category", categoryOptions, false),
			),
			components.SubmitButton("Search"),
		),
		g.Div(
			g.ID("book-results"),
			SearchResults(data),
		),
	}
}

// SearchResults renders the search tab's result table. It is also served
// standalone as an HTMX fragment.
func SearchResults(data BooksData) cmp.Node {
	if !data.Searched {
		return components.InfoPanel("Enter a search term or pick a category.")
	}
	if data.SearchErr != "" {
		return components.ErrorPanel(data.SearchErr)
	}
	if len(data.Books) == 0 {
		return components.InfoPanel("No books found matching your search criteria.")
	}
	return BookTable(data.Books)
}

func manageBooks(data BooksData) cmp.Node {
	if data.BooksErr != "" {
		return components.ErrorPanel(data.BooksErr)
	}
	if len(data.Books) == 0 {
		return components.InfoPanel("The catalog is empty.")
	}

	options := make([]components.SelectOption, 0, len(data.Books)+1)
	options = append(options, components.SelectOption{Value: "", Label: "Select a book"})
	for _, b := range data.Books {
		options = append(options, components.SelectOption{
			Value:    b.ID,
			Label:    view.BookOption(b),
			Selected: data.Selected != nil && data.Selected.ID == b.ID,
		})
	}

	picker := g.FormEl(
		g.Method("get"),
		g.Action("/books"),
		g.Class("mb-6 flex items-end gap-4 rounded-lg bg-white p-4 shadow"),
		g.Input(g.Type("hidden"), g.Name("tab"), g.Value(BooksTabManage)),
		g.Div(
			g.Class("flex-1"),
			components.SelectField("book", "Select Book to Edit", options, true),
		),
		components.SubmitButton("Load"),
	)

	if data.Selected == nil {
		return picker
	}
	return cmp.Group{picker, editBookPanel(*data.Selected)}
}

func editBookPanel(book api.Book) cmp.Node {
	return g.Div(
		g.Class("grid gap-6 md:grid-cols-2"),
		g.Div(
			g.Class("rounded-lg bg-white p-6 shadow"),
			g.H3(g.Class("mb-2 font-semibold"), cmp.Text("Current Details")),
			g.P(cmp.Text("Title: "+book.Title)),
			g.P(cmp.Text("Author: "+book.Author)),
			g.P(cmp.Text("Category: "+book.Category)),
			g.P(cmp.Text("Available: "+strconv.Itoa(book.AvailableCopies)+"/"+strconv.Itoa(book.TotalCopies))),
		),
		g.Div(
			g.Class("rounded-lg bg-white p-6 shadow"),
			g.H3(g.Class("mb-2 font-semibold"), cmp.Text("Update Book")),
			g.FormEl(
				g.Method("post"),
				g.Action("/books/"+book.ID+"/update"),
				components.NumberField("totalCopies", "Total Copies", book.TotalCopies, 1, 1000, true),
				components.NumberField("availableCopies", "Available Copies", book.AvailableCopies, 0, 1000, true),
				components.SubmitButton("Update Book"),
			),
			g.FormEl(
				g.Method("post"),
				g.Action("/books/"+book.ID+"/delete"),
				g.Class("mt-4 border-t pt-4"),
				components.DangerButton("Delete Book"),
			),
		),
	)
}

package view

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"libdash/internal/api"
)

// optionSeparator splits the transaction id from the descriptive rest of a
// return-flow option. Transaction ids never contain " - ", so parsing the id
// back out of a selected option is exact.
const optionSeparator = " - "

var titleCaser = cases.Title(language.English)

// TransactionOption builds the human-pickable label for an open loan:
// id, book title, borrower, and due date in one string.
func TransactionOption(t api.Transaction) string {
	return fmt.Sprintf("%s%s%s (User: %s, Due: %s)",
		t.TransactionID, optionSeparator, t.BookTitle(), t.UserName(), t.DueDate)
}

// TransactionIDFromOption recovers the transaction id from a selected option
// string. It returns the empty string for an empty selection.
func TransactionIDFromOption(option string) string {
	id, _, _ := strings.Cut(option, optionSeparator)
	return id
}

// BookOption labels a book for selection lists, matching the catalog display.
func BookOption(b api.Book) string {
	return b.Title + " by " + b.Author
}

// UserOption labels a member for selection lists.
func UserOption(u api.User) string {
	return u.Name + " (" + u.UserType + ")"
}

// TitleLabel renders a lowercase period or type token as a display label
// ("month" -> "Month").
func TitleLabel(s string) string {
	return titleCaser.String(s)
}

var shortMonths = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

var longMonths = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthName maps a 1-based month index to its short name. Out-of-range
// indexes keep their numeric form so bad data stays visible.
func MonthName(n int) string {
	if n >= 1 && n <= 12 {
		return shortMonths[n-1]
	}
	return fmt.Sprintf("Month %d", n)
}

// MonthLongName maps a 1-based month index to its full name.
func MonthLongName(n int) string {
	if n >= 1 && n <= 12 {
		return longMonths[n-1]
	}
	return fmt.Sprintf("Month %d", n)
}

package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidator_AddBookForm(t *testing.T) {
	v := NewValidator()

	t.Run("valid form passes", func(t *testing.T) {
		form := AddBookForm{
			Title:       "The Go Programming Language",
			Author:      "Donovan",
			Category:    "Programming",
			TotalCopies: 3,
		}
		assert.NoError(t, v.Validate(&form))
	})

	t.Run("missing required fields fail", func(t *testing.T) {
		form := AddBookForm{Author: "Donovan"}
		assert.Error(t, v.Validate(&form))
	})

	t.Run("zero copies fail", func(t *testing.T) {
		form := AddBookForm{Title: "T", Author: "A", Category: "C"}
		assert.Error(t, v.Validate(&form))
	})

	t.Run("implausible year fails", func(t *testing.T) {
		form := AddBookForm{
			Title: "T", Author: "A", Category: "C",
			TotalCopies: 1, PublishedYear: 999,
		}
		assert.Error(t, v.Validate(&form))
	})

	t.Run("year is optional", func(t *testing.T) {
		form := AddBookForm{
			Title: "T", Author: "A", Category: "C", TotalCopies: 1,
		}
		assert.NoError(t, v.Validate(&form))
	})
}

func TestValidator_BorrowForm(t *testing.T) {
	v := NewValidator()

	t.Run("duration capped at 30 days", func(t *testing.T) {
		form := BorrowForm{BookID: "book:1", UserID: "user:1", Days: 31}
		assert.Error(t, v.Validate(&form))
	})

	t.Run("default duration is allowed", func(t *testing.T) {
		form := BorrowForm{BookID: "book:1", UserID: "user:1", Days: 14}
		assert.NoError(t, v.Validate(&form))
	})

	t.Run("book and user are required", func(t *testing.T) {
		form := BorrowForm{Days: 14}
		assert.Error(t, v.Validate(&form))
	})
}

func TestValidator_AddUserForm(t *testing.T) {
	v := NewValidator()

	t.Run("email must parse", func(t *testing.T) {
		form := AddUserForm{Name: "Ada", Email: "not-an-email", UserType: "student"}
		assert.Error(t, v.Validate(&form))
	})

	t.Run("department is optional", func(t *testing.T) {
		form := AddUserForm{Name: "Ada", Email: "ada@example.com", UserType: "student"}
		assert.NoError(t, v.Validate(&form))
	})
}

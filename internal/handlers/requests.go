package handlers

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the go-playground/validator library to implement
// Echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// AddBookForm is the add-book submission. Required fields must be non-empty
// before any API call is attempted.
type AddBookForm struct {
	Title         string `form:"title" validate:"required"`
	Author        string `form:"author" validate:"required"`
	Category      string `form:"category" validate:"required"`
	ISBN          string `form:"isbn"`
	TotalCopies   int    `form:"totalCopies" validate:"required,min=1"`
	PublishedYear int    `form:"publishedYear" validate:"omitempty,min=1000"`
	Description   string `form:"description"`
}

// UpdateBookForm adjusts the copy counts of an existing book.
type UpdateBookForm struct {
	TotalCopies     int `form:"totalCopies" validate:"required,min=1"`
	AvailableCopies int `form:"availableCopies" validate:"min=0"`
}

// AddUserForm is the add-user submission.
type AddUserForm struct {
	Name       string `form:"name" validate:"required"`
	Email      string `form:"email" validate:"required,email"`
	UserType   string `form:"userType" validate:"required"`
	Department string `form:"department"`
}

// BorrowForm opens a loan.
type BorrowForm struct {
	BookID string `form:"bookId" validate:"required"`
	UserID string `form:"userId" validate:"required"`
	Days   int    `form:"days" validate:"omitempty,min=1,max=30"`
}

// ReturnForm closes a loan. Transaction carries the full display option; the
// id is parsed back out of it.
type ReturnForm struct {
	Transaction string `form:"transaction" validate:"required"`
}

package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// Book is the catalog record as the Library Service returns it. The service
// owns the available<=total invariant; this layer only displays it.
type Book struct {
	ID              string `json:"_id"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	Category        string `json:"category"`
	ISBN            string `json:"isbn,omitempty"`
	TotalCopies     int    `json:"totalCopies"`
	AvailableCopies int    `json:"availableCopies"`
	PublishedYear   *int   `json:"publishedYear,omitempty"`
	Description     string `json:"description,omitempty"`
}

// Available reports whether at least one copy can be borrowed.
func (b Book) Available() bool {
	return b.AvailableCopies > 0
}

// NewBook is the payload for creating a book. Optional fields are pointers so
// an empty form field is sent as null rather than an empty string.
type NewBook struct {
	Title           string  `json:"title"`
	Author          string  `json:"author"`
	Category        string  `json:"category"`
	ISBN            *string `json:"isbn"`
	TotalCopies     int     `json:"totalCopies"`
	AvailableCopies int     `json:"availableCopies"`
	PublishedYear   *int    `json:"publishedYear"`
	Description     *string `json:"description"`
}

// BookUpdate adjusts the copy counts of an existing book.
type BookUpdate struct {
	TotalCopies     int `json:"totalCopies"`
	AvailableCopies int `json:"availableCopies"`
}

// BookQuery filters and paginates the book list.
type BookQuery struct {
	Page     int
	Limit    int
	Search   string
	Category string
}

func (q BookQuery) values() url.Values {
	v := url.Values{}
	v.Set("page", strconv.Itoa(max(q.Page, 1)))
	v.Set("limit", strconv.Itoa(defaultLimit(q.Limit)))
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.Category != "" {
		v.Set("category", q.Category)
	}
	return v
}

func defaultLimit(limit int) int {
	if limit <= 0 {
		return 50
	}
	return limit
}

// ListBooks fetches a page of the catalog, optionally filtered by free-text
// search and category.
func (c *Client) ListBooks(ctx context.Context, q BookQuery) ([]Book, error) {
	env, err := c.do(ctx, http.MethodGet, "/books", q.values(), nil)
	if err != nil {
		return nil, err
	}
	var books []Book
	if err := decodeData(env, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// BookCategories returns the distinct category names known to the service.
func (c *Client) BookCategories(ctx context.Context) ([]string, error) {
	env, err := c.do(ctx, http.MethodGet, "/books/categories", nil, nil)
	if err != nil {
		return nil, err
	}
	var categories []string
	if err := decodeData(env, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// AddBook creates a new catalog record and returns it as stored.
func (c *Client) AddBook(ctx context.Context, book NewBook) (*Book, error) {
	env, err := c.do(ctx, http.MethodPost, "/books", nil, book)
	if err != nil {
		return nil, err
	}
	var created Book
	if err := decodeData(env, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateBook changes the copy counts of the book with the given id.
func (c *Client) UpdateBook(ctx context.Context, id string, update BookUpdate) (*Book, error) {
	env, err := c.do(ctx, http.MethodPut, "/books/"+url.PathEscape(id), nil, update)
	if err != nil {
		return nil, err
	}
	var updated Book
	if err := decodeData(env, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteBook removes the book with the given id.
func (c *Client) DeleteBook(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/books/"+url.PathEscape(id), nil, nil)
	return err
}

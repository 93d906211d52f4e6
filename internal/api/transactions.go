package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
)

// BookRef is the bookId field of a transaction. The service sometimes expands
// it into the full book document and sometimes leaves it as a bare id string,
// so it is decoded defensively.
type BookRef struct {
	ID       string
	Title    string
	Expanded bool
}

func (r *BookRef) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		r.ID = id
		r.Expanded = false
		return nil
	}
	var doc struct {
		ID    string `json:"_id"`
		Title string `json:"title"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	r.ID = doc.ID
	r.Title = doc.Title
	r.Expanded = true
	return nil
}

// UserRef is the userId field of a transaction, decoded with the same
// object-or-string tolerance as BookRef.
type UserRef struct {
	ID       string
	Name     string
	Expanded bool
}

func (r *UserRef) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		r.ID = id
		r.Expanded = false
		return nil
	}
	var doc struct {
		ID   string `json:"_id"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	r.ID = doc.ID
	r.Name = doc.Name
	r.Expanded = true
	return nil
}

// Transaction links one book and one member through a borrow lifecycle
// (borrowed, returned, or overdue). Dates stay as the service's strings;
// this layer never interprets them.
type Transaction struct {
	ID            string   `json:"_id"`
	TransactionID string   `json:"transactionId"`
	Book          BookRef  `json:"bookId"`
	User          UserRef  `json:"userId"`
	Status        string   `json:"status"`
	BorrowDate    string   `json:"borrowDate"`
	DueDate       string   `json:"dueDate,omitempty"`
	ReturnDate    string   `json:"returnDate,omitempty"`
	Fine          *float64 `json:"fine,omitempty"`
	OverdueDays   *int     `json:"overdueDays,omitempty"`
}

// BookTitle returns the embedded book title, or "Unknown" when the service
// did not expand the reference.
func (t Transaction) BookTitle() string {
	if !t.Book.Expanded || t.Book.Title == "" {
		return "Unknown"
	}
	return t.Book.Title
}

// UserName returns the embedded member name, or "Unknown" when the service
// did not expand the reference.
func (t Transaction) UserName() string {
	if !t.User.Expanded || t.User.Name == "" {
		return "Unknown"
	}
	return t.User.Name
}

// TransactionQuery filters and paginates the transaction list.
type TransactionQuery struct {
	Page   int
	Limit  int
	Status string
}

func (q TransactionQuery) values() url.Values {
	v := url.Values{}
	v.Set("page", strconv.Itoa(max(q.Page, 1)))
	v.Set("limit", strconv.Itoa(defaultLimit(q.Limit)))
	if q.Status != "" {
		v.Set("status", q.Status)
	}
	return v
}

// ReturnResult is the outcome of returning a book. Fine carries the service's
// fine notice when the return was late.
type ReturnResult struct {
	Transaction Transaction
	Fine        string
}

// BorrowBook opens a loan of the given book to the given member for a number
// of days and returns the created transaction.
func (c *Client) BorrowBook(ctx context.Context, bookID, userID string, days int) (*Transaction, error) {
	payload := map[string]any{
		"bookId": bookID,
		"userId": userID,
		"days":   days,
	}
	env, err := c.do(ctx, http.MethodPost, "/transactions/borrow", nil, payload)
	if err != nil {
		return nil, err
	}
	var tx Transaction
	if err := decodeData(env, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

// ReturnBook closes the loan with the given transaction id.
func (c *Client) ReturnBook(ctx context.Context, transactionID string) (*ReturnResult, error) {
	payload := map[string]any{"transactionId": transactionID}
	env, err := c.do(ctx, http.MethodPost, "/transactions/return", nil, payload)
	if err != nil {
		return nil, err
	}
	result := &ReturnResult{Fine: env.Fine}
	if err := decodeData(env, &result.Transaction); err != nil {
		return nil, err
	}
	return result, nil
}

// ListTransactions fetches a page of transactions, optionally filtered by
// lifecycle status.
func (c *Client) ListTransactions(ctx context.Context, q TransactionQuery) ([]Transaction, error) {
	env, err := c.do(ctx, http.MethodGet, "/transactions", q.values(), nil)
	if err != nil {
		return nil, err
	}
	var txs []Transaction
	if err := decodeData(env, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

// OverdueTransactions fetches every open loan past its due date.
func (c *Client) OverdueTransactions(ctx context.Context) ([]Transaction, error) {
	env, err := c.do(ctx, http.MethodGet, "/transactions/overdue", nil, nil)
	if err != nil {
		return nil, err
	}
	var txs []Transaction
	if err := decodeData(env, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

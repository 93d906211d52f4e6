package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"libdash/internal/middleware"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	writeLimiter := middleware.WriteLimiter()

	s.E.GET("/", s.dashboardHandler.DashboardGet)

	s.E.GET("/books", s.booksHandler.BooksGet)
	s.E.GET("/books/search", s.booksHandler.SearchPartial)
	s.E.POST("/books", s.booksHandler.BookAddPost, writeLimiter)
	s.E.POST("/books/:id/update", s.booksHandler.BookUpdatePost, writeLimiter)
	s.E.POST("/books/:id/delete", s.booksHandler.BookDeletePost, writeLimiter)

	s.E.GET("/users", s.usersHandler.UsersGet)
	s.E.POST("/users", s.usersHandler.UserAddPost, writeLimiter)

	s.E.GET("/transactions", s.transactionsHandler.TransactionsGet)
	s.E.GET("/transactions/list", s.transactionsHandler.ListPartial)
	s.E.POST("/transactions/borrow", s.transactionsHandler.BorrowPost, writeLimiter)
	s.E.POST("/transactions/return", s.transactionsHandler.ReturnPost, writeLimiter)

	s.E.GET("/analytics", s.analyticsHandler.AnalyticsGet)

	s.E.GET("/partials/status", s.page.StatusPartial)

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
}

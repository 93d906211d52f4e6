package view_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"libdash/internal/view"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

func setupTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	// Wrap a dummy handler with the session middleware so the session is
	// properly initialized in the context.
	store := sessions.NewCookieStore([]byte(testSessionSecret))
	sessionMiddleware := session.Middleware(store)

	var c echo.Context
	handler := func(ctx echo.Context) error { c = ctx; return nil }
	_ = sessionMiddleware(handler)(e.NewContext(req, rec))

	return c, rec
}

func TestFlashMessages(t *testing.T) {
	t.Run("set and get success flash", func(t *testing.T) {
		c, _ := setupTestContext()

		view.SetFlashSuccess(c, "Book added successfully!")

		flashes := view.GetFlashData(c)
		assert.NotEmpty(t, flashes.Success)
		assert.Equal(t, "Book added successfully!", flashes.Success[0])
		assert.Empty(t, flashes.Error)

		// Reading again must come back empty.
		flashesAfterRead := view.GetFlashData(c)
		assert.Empty(t, flashesAfterRead.Success, "flashes should be cleared after being read")
	})

	t.Run("set and get error flash", func(t *testing.T) {
		c, _ := setupTestContext()

		view.SetFlashError(c, "Please fill in all required fields (*)")

		flashes := view.GetFlashData(c)
		assert.NotEmpty(t, flashes.Error)
		assert.Equal(t, "Please fill in all required fields (*)", flashes.Error[0])
		assert.Empty(t, flashes.Success)
	})

	t.Run("warning flash carries fine notices", func(t *testing.T) {
		c, _ := setupTestContext()

		view.SetFlashWarning(c, "Fine of $2.50 applied")

		flashes := view.GetFlashData(c)
		assert.Equal(t, []string{"Fine of $2.50 applied"}, flashes.Warning)
	})

	t.Run("no flashes set yields empty data", func(t *testing.T) {
		c, _ := setupTestContext()

		flashes := view.GetFlashData(c)
		assert.Empty(t, flashes.Success)
		assert.Empty(t, flashes.Error)
		assert.Empty(t, flashes.Warning)
	})
}

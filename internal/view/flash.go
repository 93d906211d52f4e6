package view

import (
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	flashSessionName = "flash-session"
	flashKeySuccess  = "success"
	flashKeyError    = "error"
	flashKeyWarning  = "warning"
)

// FlashData carries the transient banners to render on the next page load.
// Warnings are used for fine notices on late returns.
type FlashData struct {
	Success []string
	Error   []string
	Warning []string
}

// setFlash sets a flash message in the session.
func setFlash(c echo.Context, key, message string) {
	sess, _ := session.Get(flashSessionName, c)
	sess.AddFlash(message, key)
	_ = sess.Save(c.Request(), c.Response())
}

// SetFlashSuccess sets a success flash message.
func SetFlashSuccess(c echo.Context, message string) {
	setFlash(c, flashKeySuccess, message)
}

// SetFlashError sets an error flash message.
func SetFlashError(c echo.Context, message string) {
	setFlash(c, flashKeyError, message)
}

// SetFlashWarning sets a warning flash message.
func SetFlashWarning(c echo.Context, message string) {
	setFlash(c, flashKeyWarning, message)
}

// GetFlashData retrieves and clears flash messages from the session.
func GetFlashData(c echo.Context) FlashData {
	sess, _ := session.Get(flashSessionName, c)

	// Flashes() retrieves and clears, so the session must be saved afterwards
	// to persist the clearing.
	success := sess.Flashes(flashKeySuccess)
	errs := sess.Flashes(flashKeyError)
	warnings := sess.Flashes(flashKeyWarning)

	if len(success) > 0 || len(errs) > 0 || len(warnings) > 0 {
		_ = sess.Save(c.Request(), c.Response())
	}

	return FlashData{
		Success: toStrings(success),
		Error:   toStrings(errs),
		Warning: toStrings(warnings),
	}
}

func toStrings(flashes []interface{}) []string {
	out := make([]string, 0, len(flashes))
	for _, f := range flashes {
		if s, ok := f.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

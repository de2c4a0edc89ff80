package http

import (
	"github.com/labstack/echo/v4"

	"github.com/flowdesk/flowdesk/web"
)

// RegisterStatic serves the embedded dashboard at the root path.
func RegisterStatic(e *echo.Echo) {
	e.StaticFS("/", web.Assets)
}

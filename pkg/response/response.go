package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Page is the pagination envelope returned by list endpoints: one page of
// items plus page number, page size, total match count and last page index.
type Page struct {
	CurrentPage int   `json:"current_page"`
	Data        any   `json:"data"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
	LastPage    int   `json:"last_page"`
}

// JSON writes v as the response body with the given status.
func JSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

// Message writes a {"message": ...} body with the given status.
func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}

// ValidationErrors writes a 400 with the field-keyed error map under
// "errors", one or more reasons per field.
func ValidationErrors(c *gin.Context, errs map[string][]string) {
	c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
}

// InternalError hides storage and other unexpected failures behind a
// generic 500; detail belongs in the logs only.
func InternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
}

// AbortMessage writes a message body and stops the handler chain, for use
// from middleware.
func AbortMessage(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"message": msg})
}

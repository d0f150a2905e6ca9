package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Wire formats for textual date and timestamp fields.
const (
	dateLayout      = "2006-01-02"
	timestampLayout = "2006-01-02 15:04:05"
)

// --- Response Helpers ---
//
// Every response carries a "success" flag; list responses additionally
// carry a "count" of returned items.

// respondError sends an error response with the given status code.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

// respondBadRequest sends a 400 Bad Request response.
func respondBadRequest(c *gin.Context, message string) {
	respondError(c, http.StatusBadRequest, message)
}

// respondNotFound sends a 404 Not Found response.
func respondNotFound(c *gin.Context, resource string) {
	respondError(c, http.StatusNotFound, resource+" not found")
}

// respondRepositoryError maps a repository failure onto a status code:
// missing rows become 404, uniqueness violations 409, and anything else a
// 500 carrying the raw failure description.
func respondRepositoryError(c *gin.Context, err error, resource string) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		respondNotFound(c, resource)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		respondError(c, http.StatusConflict, resource+" already exists")
	default:
		respondError(c, http.StatusInternalServerError, err.Error())
	}
}

// --- Parameter Parsing ---

// parseIDParam extracts an unsigned integer id from URL parameters.
// Responds with 400 and returns false when the value does not parse.
func parseIDParam(c *gin.Context, paramName string) (uint, bool) {
	idStr := c.Param(paramName)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		respondBadRequest(c, "invalid "+paramName)
		return 0, false
	}
	return uint(id), true
}

// parseQueryID parses an optional unsigned integer query parameter.
// An absent parameter yields (0, false, true).
func parseQueryID(c *gin.Context, paramName string) (id uint, present bool, ok bool) {
	idStr := c.Query(paramName)
	if idStr == "" {
		return 0, false, true
	}
	parsed, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		respondBadRequest(c, "invalid "+paramName)
		return 0, true, false
	}
	return uint(parsed), true, true
}

// parseDate parses a YYYY-MM-DD date string.
func parseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}

// parseTimestamp parses a "YYYY-MM-DD HH:MM:SS" timestamp string.
func parseTimestamp(value string) (time.Time, error) {
	return time.Parse(timestampLayout, value)
}

// timestampOrNow parses an optional textual timestamp, defaulting to the
// current time when absent. Responds with 400 and returns false on a
// malformed value.
func timestampOrNow(c *gin.Context, value *string, field string) (time.Time, bool) {
	if value == nil {
		return time.Now(), true
	}
	ts, err := parseTimestamp(*value)
	if err != nil {
		respondBadRequest(c, field+" must use the format "+timestampLayout)
		return time.Time{}, false
	}
	return ts, true
}

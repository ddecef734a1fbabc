package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

func parseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(dateLayout, value)

	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}

	return parsed, nil
}

func parseDatePtr(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}

	parsed, err := parseDate(*value)

	if err != nil {
		return nil, err
	}

	return &parsed, nil
}

func parseClockPtr(value *string) (*string, error) {
	if value == nil || *value == "" {
		return nil, nil
	}

	if _, err := time.Parse(clockLayout, *value); err != nil {
		return nil, fmt.Errorf("invalid time %q, expected HH:MM", *value)
	}

	return value, nil
}

// resourceID pulls the numeric :id parameter, responding 400 itself when
// the value is not a number.
func resourceID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}

	return uint(id), true
}

// Package controllers contains the HTTP handlers. Controllers bind and
// sanity-check request input, delegate to the service layer and shape the
// response envelope; they hold no business rules of their own.
package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseIDParam reads a positive numeric path parameter.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// parseOptionalIDQuery reads an optional positive numeric query parameter,
// returning nil when absent. ok is false when a value is present but not a
// positive number.
func parseOptionalIDQuery(ctx *gin.Context, name string) (value *int64, ok bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, false
	}
	return &id, true
}

package http

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// Envelope is the uniform response shape for every endpoint.
type Envelope struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
	Meta    *Meta  `json:"meta,omitempty"`
	Links   *Links `json:"links,omitempty"`
}

type Meta struct {
	CurrentPage int   `json:"current_page"`
	LastPage    int   `json:"last_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
}

type Links struct {
	First string  `json:"first"`
	Last  string  `json:"last"`
	Prev  *string `json:"prev"`
	Next  *string `json:"next"`
}

func respondOK(c echo.Context, message string, data any) error {
	return c.JSON(http.StatusOK, Envelope{Status: true, Message: message, Data: data})
}

func respondCreated(c echo.Context, message string, data any) error {
	return c.JSON(http.StatusCreated, Envelope{Status: true, Message: message, Data: data})
}

func respondError(c echo.Context, code int, message string) error {
	return c.JSON(code, Envelope{Status: false, Message: message})
}

func respondValidation(c echo.Context, errs []FieldError) error {
	return c.JSON(http.StatusUnprocessableEntity, Envelope{
		Status:  false,
		Message: "validation failed",
		Errors:  errs,
	})
}

func respondInternal(c echo.Context, err error) error {
	log.Printf("%s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	return respondError(c, http.StatusInternalServerError, "internal server error")
}

const (
	defaultPerPage = 15
	maxPerPage     = 100
)

// pageParams reads ?page= and ?per_page= with sane bounds.
func pageParams(c echo.Context) (page, perPage int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	perPage, _ = strconv.Atoi(c.QueryParam("per_page"))
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	return page, perPage
}

// respondPage wraps a listing with Laravel-style meta and links blocks.
func respondPage(c echo.Context, message string, data any, page, perPage int, total int64) error {
	lastPage := int((total + int64(perPage) - 1) / int64(perPage))
	if lastPage < 1 {
		lastPage = 1
	}
	path := c.Request().URL.Path
	pageURL := func(p int) string {
		return fmt.Sprintf("%s?page=%d&per_page=%d", path, p, perPage)
	}
	links := &Links{First: pageURL(1), Last: pageURL(lastPage)}
	if page > 1 {
		prev := pageURL(page - 1)
		links.Prev = &prev
	}
	if page < lastPage {
		next := pageURL(page + 1)
		links.Next = &next
	}
	return c.JSON(http.StatusOK, Envelope{
		Status:  true,
		Message: message,
		Data:    data,
		Meta:    &Meta{CurrentPage: page, LastPage: lastPage, PerPage: perPage, Total: total},
		Links:   links,
	})
}

// pathID parses a numeric path parameter.
func pathID(c echo.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return id, nil
}

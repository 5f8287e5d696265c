package handler

import (
	"log/slog"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// pageParams reads limit and offset for transcript listings. Unparseable or
// negative values fall back to the defaults and an oversized limit is clamped.
func pageParams(c *gin.Context) (limit, offset int) {
	limit = queryInt(c, "limit", defaultPageLimit)
	switch {
	case limit < 1:
		slog.Warn("page limit below 1, using default", "limit", limit, "default", defaultPageLimit)
		limit = defaultPageLimit
	case limit > maxPageLimit:
		slog.Warn("page limit clamped", "limit", limit, "max", maxPageLimit)
		limit = maxPageLimit
	}

	offset = queryInt(c, "offset", 0)
	if offset < 0 {
		slog.Warn("negative page offset, using 0", "offset", offset)
		offset = 0
	}
	return limit, offset
}

func queryInt(c *gin.Context, name string, def int) int {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return def
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		slog.Warn("query parameter is not a number", "param", name, "value", raw)
		return def
	}
	return n
}

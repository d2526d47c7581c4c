package serverstudents

import (
	"context"
	"net/http"
	"strconv"
)

type paginationKey int

const (
	offsetKey paginationKey = iota
	limitKey
)

const (
	defaultLimit = 200
	maxLimit     = 1000
)

func populatePagination(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		offset := 0
		limit := defaultLimit
		queryOffset := r.URL.Query().Get("offset")
		if queryOffset != "" {
			newOffset, err := strconv.Atoi(queryOffset)
			if err != nil || newOffset < 0 {
				http.Error(w, "Invalid query offset param", http.StatusBadRequest)
				return
			}
			offset = newOffset
		}
		queryLimit := r.URL.Query().Get("limit")
		if queryLimit != "" {
			setLimit, err := strconv.Atoi(queryLimit)
			if err != nil || setLimit <= 0 || setLimit > maxLimit {
				http.Error(w, "Invalid query limit param", http.StatusBadRequest)
				return
			}
			limit = setLimit
		}
		ctx = context.WithValue(ctx, offsetKey, offset)
		ctx = context.WithValue(ctx, limitKey, limit)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// pages whole students so a student's courses are never split across pages
func paginate[T any](ctx context.Context, items []T) []T {
	offset, _ := ctx.Value(offsetKey).(int)
	limit, ok := ctx.Value(limitKey).(int)
	if !ok {
		limit = defaultLimit
	}
	if offset >= len(items) {
		return items[:0]
	}
	end := min(offset+limit, len(items))
	return items[offset:end]
}

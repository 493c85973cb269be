package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PaginationParams carries skip/limit paging as supplied on the query string.
type PaginationParams struct {
	Skip  int64 `json:"skip" form:"skip"`
	Limit int64 `json:"limit" form:"limit"`
}

type PaginationMeta struct {
	Skip    int64 `json:"skip"`
	Limit   int64 `json:"limit"`
	Total   int64 `json:"total"`
	HasMore bool  `json:"has_more"`
}

// GetPaginationParams parses skip/limit query parameters, clamping them
// to sane bounds. Missing or malformed values fall back to defaults.
func GetPaginationParams(c *gin.Context) *PaginationParams {
	skip, _ := strconv.ParseInt(c.DefaultQuery("skip", "0"), 10, 64)
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", strconv.Itoa(DefaultLimit)), 10, 64)

	if skip < 0 {
		skip = 0
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return &PaginationParams{
		Skip:  skip,
		Limit: limit,
	}
}

func (p *PaginationParams) GetFindOptions(sort bson.D) *options.FindOptions {
	opts := options.Find()
	opts.SetSkip(p.Skip)
	opts.SetLimit(p.Limit)
	if len(sort) > 0 {
		opts.SetSort(sort)
	}
	return opts
}

func CreatePaginationMeta(params *PaginationParams, total int64) *PaginationMeta {
	return &PaginationMeta{
		Skip:    params.Skip,
		Limit:   params.Limit,
		Total:   total,
		HasMore: params.Skip+params.Limit < total,
	}
}

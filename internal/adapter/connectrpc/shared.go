package connectrpc

import (
	"time"

	"github.com/eslsoft/learnpath/internal/repository"
)

const _maxPageSize = 10000

// PaginationRequest is the page selector accepted by list procedures.
type PaginationRequest struct {
	PageNo   int32 `json:"page_no"`
	PageSize int32 `json:"page_size"`
}

func convertPagination(p *PaginationRequest) repository.Pagination {
	var pageNo, pageSize int32
	if p != nil {
		pageNo, pageSize = p.PageNo, p.PageSize
	}
	if pageNo <= 0 {
		pageNo = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	if pageSize > _maxPageSize {
		pageSize = _maxPageSize
	}

	return repository.Pagination{PageNo: pageNo, PageSize: pageSize}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}

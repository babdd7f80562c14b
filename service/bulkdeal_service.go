package service

import (
	"context"

	"github.com/coder-56/stock-insights/model"
)

// BulkDealService is the extension seam for a bulk/block deal vendor.
// Implementations must swallow vendor failures into an empty list: deal
// data is supplementary and never blocks a symbol's insight.
type BulkDealService interface {
	FetchBulkDeals(ctx context.Context, symbol string) []model.BulkDeal
}

type BulkDealServiceImpl struct{}

func NewBulkDealService() BulkDealService {
	return &BulkDealServiceImpl{}
}

// FetchBulkDeals returns no deals until a real vendor is wired in.
func (s *BulkDealServiceImpl) FetchBulkDeals(ctx context.Context, symbol string) []model.BulkDeal {
	return []model.BulkDeal{}
}

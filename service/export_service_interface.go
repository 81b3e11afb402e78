package service

import "context"

// ExportServiceInterface defines the contract for the portfolio press-kit
// export
type ExportServiceInterface interface {
	RenderPortfolioHTML(ctx context.Context) (string, error)
	GeneratePortfolioPDF(ctx context.Context) ([]byte, error)
}

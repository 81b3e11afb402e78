package service

import "context"

// ReencodeServiceInterface defines the contract for the bulk image
// re-encode utility
type ReencodeServiceInterface interface {
	ReencodeAll(ctx context.Context) (*ReencodeStats, error)
}

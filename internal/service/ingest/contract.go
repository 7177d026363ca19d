//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=ingest_test
package ingest

import (
	"context"

	"pincode-service/internal/entities"
)

type Repository interface {
	// ExistingPincodes возвращает подмножество pincodes, уже существующих
	// у магазина.
	ExistingPincodes(ctx context.Context, shop string, pincodes []string) (map[string]struct{}, error)
	UpsertBatch(ctx context.Context, ruleModifies []entities.RuleModify) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

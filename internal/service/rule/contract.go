//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rule_test
package rule

import (
	"context"

	"pincode-service/internal/entities"
)

type Repository interface {
	Upsert(ctx context.Context, ruleModify entities.RuleModify) error
	Delete(ctx context.Context, shop string, id int64) error
	GetAll(ctx context.Context, shop string, deliverable *bool) ([]entities.Rule, error)
	Summary(ctx context.Context, shop string) (*entities.ShopSummary, error)
	Totals(ctx context.Context) (*entities.RulesTotals, error)
}

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rules_get_test
package rules_get

import (
	"context"

	"pincode-service/internal/entities"
	"pincode-service/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetRules(ctx context.Context, shop string, deliverable *bool) ([]entities.Rule, error)
}

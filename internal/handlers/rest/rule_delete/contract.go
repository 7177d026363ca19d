//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rule_delete_test
package rule_delete

import (
	"context"

	"pincode-service/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	DeleteRule(ctx context.Context, shop string, id int64) error
}

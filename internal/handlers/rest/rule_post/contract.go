//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rule_post_test
package rule_post

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
	UpsertRule(ctx context.Context, submission entities.RuleSubmission) error
}

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=lookup_get_test
package lookup_get

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
	Check(ctx context.Context, shop, pincode string) (*entities.LookupResult, error)
}

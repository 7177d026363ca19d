//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=lookup_test
package lookup

import (
	"context"

	"pincode-service/internal/entities"
)

type Repository interface {
	GetByShopAndPincode(ctx context.Context, shop, pincode string) (*entities.Rule, error)
}

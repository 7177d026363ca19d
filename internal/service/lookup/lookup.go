package lookup

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"pincode-service/internal/entities"
	"pincode-service/internal/service/rule"
)

var pincodeRx = regexp.MustCompile(`^\d{6}$`)

const (
	msgInvalidPincode = "Please enter a valid 6-digit pincode."
	msgNotDeliverable = "Not deliverable for this pincode."
	msgAvailable      = "Delivery available for this pincode."
)

// Причины негативного результата.
const (
	ReasonInvalidPincode = "invalid_pincode"
	ReasonNoRule         = "no_rule"
	ReasonBlocked        = "blocked"
)

type Lookup struct {
	repository Repository
}

func New(repository Repository) *Lookup {
	return &Lookup{
		repository: repository,
	}
}

// Check отвечает на вопрос "доставляем ли по этому пинкоду". Кривой пинкод от
// покупателя и отсутствие правила — штатные негативные результаты, а не
// ошибки; единственная ошибка клиента — отсутствующий shop.
func (s *Lookup) Check(ctx context.Context, shop, pincode string) (*entities.LookupResult, error) {
	if strings.TrimSpace(shop) == "" {
		return nil, ErrMissingShop
	}

	pincode = strings.TrimSpace(pincode)
	if !pincodeRx.MatchString(pincode) {
		return &entities.LookupResult{
			Deliverable: false,
			Message:     msgInvalidPincode,
			Reason:      ReasonInvalidPincode,
		}, nil
	}

	ruleEntity, err := s.repository.GetByShopAndPincode(ctx, shop, pincode)
	if err != nil {
		if errors.Is(err, rule.ErrRuleNotFound) {
			return &entities.LookupResult{
				Deliverable: false,
				Message:     msgNotDeliverable,
				Reason:      ReasonNoRule,
			}, nil
		}
		return nil, fmt.Errorf("lookup rule: %w", err)
	}

	if !ruleEntity.Deliverable {
		return &entities.LookupResult{
			Deliverable: false,
			Message:     msgNotDeliverable,
			Reason:      ReasonBlocked,
		}, nil
	}

	return &entities.LookupResult{
		Deliverable:  true,
		EtaMinDays:   ruleEntity.EtaMinDays,
		EtaMaxDays:   ruleEntity.EtaMaxDays,
		CodAvailable: ruleEntity.CodAvailable,
		ShippingFee:  ruleEntity.ShippingFee,
		Message:      msgAvailable,
	}, nil
}

package rule

import "errors"

// Тексты ошибок валидации совпадают с сообщениями, которые видит
// пользователь админки, поэтому не следуют go-конвенции про нижний регистр.
var (
	ErrMissingShop        = errors.New("missing shop")
	ErrInvalidPincode     = errors.New("Invalid pincode (must be 6 digits)")
	ErrInvalidEtaMinDays  = errors.New("Invalid etaMinDays (must be a non-negative integer)")
	ErrInvalidEtaMaxDays  = errors.New("Invalid etaMaxDays (must be a non-negative integer)")
	ErrInvalidShippingFee = errors.New("Invalid shippingFee (must be a non-negative integer)")

	ErrRuleNotFound = errors.New("rule not found")
)

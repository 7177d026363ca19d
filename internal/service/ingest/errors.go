package ingest

import "errors"

var (
	ErrMissingShop = errors.New("missing shop")
	// ErrMissingPincodeColumn текст совпадает с сообщением, которое видит
	// пользователь админки.
	ErrMissingPincodeColumn = errors.New("CSV must include a pincode column")
)

package lookup

import "errors"

// ErrMissingShop единственный случай, когда публичный lookup отвечает
// ошибкой: структурно отсутствующий параметр shop.
var ErrMissingShop = errors.New("missing shop parameter")

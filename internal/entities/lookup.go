package entities

// LookupResult ответ публичной проверки доставляемости. Для витрины это
// всегда "успех": невалидный или неизвестный пинкод — обычный негативный
// результат, а не ошибка.
type LookupResult struct {
	Deliverable  bool
	EtaMinDays   *int64
	EtaMaxDays   *int64
	CodAvailable bool
	ShippingFee  *int64
	Message      string
	// Reason машиночитаемая причина негативного результата
	// (см. константы в service/lookup); пустая при Deliverable=true.
	Reason string
}

package entities

// InvalidRow одна отклонённая строка CSV. Row — номер строки в файле,
// каким его видит пользователь (заголовок = строка 1).
type InvalidRow struct {
	Row     int
	Reason  string
	Pincode string
}

// ImportReport итог bulk-импорта. Invalid обрезается до 50 записей,
// InvalidCount всегда точный.
type ImportReport struct {
	Inserted     int
	Updated      int
	InvalidCount int
	Invalid      []InvalidRow
}

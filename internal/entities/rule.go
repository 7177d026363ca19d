package entities

import "time"

// Rule правило доставки для пары (shop, pincode).
// ShippingFee хранится в минимальных единицах валюты (пайсы/центы).
type Rule struct {
	ID           int64
	Shop         string
	Pincode      string
	Deliverable  bool
	EtaMinDays   *int64
	EtaMaxDays   *int64
	CodAvailable bool
	ShippingFee  *int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RuleModify входные данные upsert-а: все изменяемые поля заменяются целиком,
// частичного patch-а нет.
type RuleModify struct {
	Shop         string
	Pincode      string
	Deliverable  bool
	EtaMinDays   *int64
	EtaMaxDays   *int64
	CodAvailable bool
	ShippingFee  *int64
}

// RuleSubmission сырые значения формы админки до валидации. Числовые и
// булевы поля приходят строками, как их прислала форма.
type RuleSubmission struct {
	Shop         string
	Pincode      string
	Deliverable  string
	EtaMinDays   string
	EtaMaxDays   string
	CodAvailable string
	ShippingFee  string
}

// ShopSummary агрегаты для дашборда одного магазина.
type ShopSummary struct {
	Total       int64
	Deliverable int64
	Blocked     int64
	// LastCreatedAt время создания самой свежей записи (не updated_at).
	LastCreatedAt *time.Time
}

// RulesTotals агрегаты по всем магазинам, для Prometheus-гейджей.
type RulesTotals struct {
	Total       int64
	Deliverable int64
}

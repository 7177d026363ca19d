package rule

import "time"

type RuleDB struct {
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

type RuleModifyDB struct {
	Shop         string
	Pincode      string
	Deliverable  bool
	EtaMinDays   *int64
	EtaMaxDays   *int64
	CodAvailable bool
	ShippingFee  *int64
}

type SummaryDB struct {
	Total         int64
	Deliverable   int64
	LastCreatedAt *time.Time
}

package rule

import (
	"pincode-service/internal/entities"
)

func ToDomain(r *RuleDB) *entities.Rule {
	if r == nil {
		return nil
	}

	return &entities.Rule{
		ID:           r.ID,
		Shop:         r.Shop,
		Pincode:      r.Pincode,
		Deliverable:  r.Deliverable,
		EtaMinDays:   r.EtaMinDays,
		EtaMaxDays:   r.EtaMaxDays,
		CodAvailable: r.CodAvailable,
		ShippingFee:  r.ShippingFee,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func ToDomainList(rulesDB []RuleDB) []entities.Rule {
	if len(rulesDB) == 0 {
		return []entities.Rule{}
	}

	result := make([]entities.Rule, len(rulesDB))
	for i, ruleDB := range rulesDB {
		result[i] = *ToDomain(&ruleDB)
	}
	return result
}

func FromDomainModify(ruleModify *entities.RuleModify) *RuleModifyDB {
	if ruleModify == nil {
		return nil
	}

	return &RuleModifyDB{
		Shop:         ruleModify.Shop,
		Pincode:      ruleModify.Pincode,
		Deliverable:  ruleModify.Deliverable,
		EtaMinDays:   ruleModify.EtaMinDays,
		EtaMaxDays:   ruleModify.EtaMaxDays,
		CodAvailable: ruleModify.CodAvailable,
		ShippingFee:  ruleModify.ShippingFee,
	}
}

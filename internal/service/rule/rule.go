package rule

import (
	"context"
	"fmt"
	"strings"

	"pincode-service/internal/entities"
)

type Rule struct {
	repository Repository
}

func New(repository Repository) *Rule {
	return &Rule{
		repository: repository,
	}
}

// UpsertRule валидирует одну запись из формы админки и заменяет все
// изменяемые поля по ключу (shop, pincode). Вставка это или обновление —
// вызывающему не сообщается.
func (s *Rule) UpsertRule(ctx context.Context, submission entities.RuleSubmission) error {
	if strings.TrimSpace(submission.Shop) == "" {
		return ErrMissingShop
	}

	pincode := strings.TrimSpace(submission.Pincode)
	if !isValidPincode(pincode) {
		return ErrInvalidPincode
	}

	etaMin, ok := parseOptionalNonNegative(submission.EtaMinDays)
	if !ok {
		return ErrInvalidEtaMinDays
	}
	etaMax, ok := parseOptionalNonNegative(submission.EtaMaxDays)
	if !ok {
		return ErrInvalidEtaMaxDays
	}
	shippingFee, ok := parseOptionalNonNegative(submission.ShippingFee)
	if !ok {
		return ErrInvalidShippingFee
	}

	// deliverable по умолчанию true при пустом поле, codAvailable — false
	deliverable := true
	if strings.TrimSpace(submission.Deliverable) != "" {
		deliverable = coerceBool(submission.Deliverable)
	}

	ruleModify := entities.RuleModify{
		Shop:         strings.TrimSpace(submission.Shop),
		Pincode:      pincode,
		Deliverable:  deliverable,
		EtaMinDays:   etaMin,
		EtaMaxDays:   etaMax,
		CodAvailable: coerceBool(submission.CodAvailable),
		ShippingFee:  shippingFee,
	}

	if err := s.repository.Upsert(ctx, ruleModify); err != nil {
		return fmt.Errorf("upsert rule: %w", err)
	}
	return nil
}

// DeleteRule удаляет запись физически. Отсутствующий id — явная ошибка
// ErrRuleNotFound, а не тихий успех.
func (s *Rule) DeleteRule(ctx context.Context, shop string, id int64) error {
	if strings.TrimSpace(shop) == "" {
		return ErrMissingShop
	}

	if err := s.repository.Delete(ctx, shop, id); err != nil {
		return fmt.Errorf("delete rule: %w", err)
	}
	return nil
}

func (s *Rule) GetRules(ctx context.Context, shop string, deliverable *bool) ([]entities.Rule, error) {
	if strings.TrimSpace(shop) == "" {
		return nil, ErrMissingShop
	}

	rules, err := s.repository.GetAll(ctx, shop, deliverable)
	if err != nil {
		return nil, fmt.Errorf("get rules: %w", err)
	}
	return rules, nil
}

// GetSummary отдаёт счётчики дашборда. Blocked считается как total-deliverable,
// LastCreatedAt — created_at самой свежей записи (намеренно не updated_at).
func (s *Rule) GetSummary(ctx context.Context, shop string) (*entities.ShopSummary, error) {
	if strings.TrimSpace(shop) == "" {
		return nil, ErrMissingShop
	}

	summary, err := s.repository.Summary(ctx, shop)
	if err != nil {
		return nil, fmt.Errorf("get summary: %w", err)
	}

	summary.Blocked = summary.Total - summary.Deliverable
	return summary, nil
}

// GetTotals агрегаты по всем магазинам для фоновой задачи метрик.
func (s *Rule) GetTotals(ctx context.Context) (*entities.RulesTotals, error) {
	totals, err := s.repository.Totals(ctx)
	if err != nil {
		return nil, fmt.Errorf("get totals: %w", err)
	}
	return totals, nil
}

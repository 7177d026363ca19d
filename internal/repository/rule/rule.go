package rule

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"pincode-service/internal/entities"
	"pincode-service/internal/repository"
	"pincode-service/internal/service/rule"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// upsertQuery заменяет все изменяемые поля целиком; created_at выставляется
// только при вставке, updated_at — всегда.
const upsertQuery = `
	INSERT INTO pincode_rules (shop, pincode, deliverable, eta_min_days, eta_max_days, cod_available, shipping_fee)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (shop, pincode) DO UPDATE SET
		deliverable   = EXCLUDED.deliverable,
		eta_min_days  = EXCLUDED.eta_min_days,
		eta_max_days  = EXCLUDED.eta_max_days,
		cod_available = EXCLUDED.cod_available,
		shipping_fee  = EXCLUDED.shipping_fee,
		updated_at    = NOW()
`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Upsert(ctx context.Context, ruleModifyEntity entities.RuleModify) error {
	m := FromDomainModify(&ruleModifyEntity)

	_, err := r.querier.Exec(
		ctx,
		upsertQuery,
		m.Shop,
		m.Pincode,
		m.Deliverable,
		m.EtaMinDays,
		m.EtaMaxDays,
		m.CodAvailable,
		m.ShippingFee,
	)
	if err != nil {
		return fmt.Errorf("unexpected rule repository upsert error: %w", err)
	}

	return nil
}

// UpsertBatch шлёт по одному upsert-у на строку одним pgx-батчем. Строки
// выполняются последовательно, поэтому дубль пинкода внутри файла просто
// перезаписывается последним вхождением; один multi-row INSERT .. ON CONFLICT
// на таких дублях падал бы ("cannot affect row a second time").
func (r *Repository) UpsertBatch(ctx context.Context, ruleModifyEntities []entities.RuleModify) error {
	if len(ruleModifyEntities) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for i := range ruleModifyEntities {
		m := FromDomainModify(&ruleModifyEntities[i])
		batch.Queue(
			upsertQuery,
			m.Shop,
			m.Pincode,
			m.Deliverable,
			m.EtaMinDays,
			m.EtaMaxDays,
			m.CodAvailable,
			m.ShippingFee,
		)
	}

	results := r.querier.SendBatch(ctx, batch)
	defer func() { _ = results.Close() }()

	for range ruleModifyEntities {
		if _, err := results.Exec(); err != nil {
			// serializable-транзакция импорта может быть оборвана конкурентной
			// записью того же (shop, pincode); клиент перезапускает импорт
			if repository.IsPgErrorWithCode(err, repository.PgErrSerializationFailure) {
				return fmt.Errorf("import aborted by concurrent write: %w", err)
			}
			return fmt.Errorf("unexpected rule repository upsert batch error: %w", err)
		}
	}

	return nil
}

func (r *Repository) GetByShopAndPincode(ctx context.Context, shop, pincode string) (*entities.Rule, error) {
	query := `
		SELECT id, shop, pincode, deliverable, eta_min_days, eta_max_days, cod_available, shipping_fee, created_at, updated_at
		FROM pincode_rules
		WHERE shop = $1 AND pincode = $2
	`

	var ruleDB RuleDB
	err := r.querier.QueryRow(ctx, query, shop, pincode).
		Scan(
			&ruleDB.ID,
			&ruleDB.Shop,
			&ruleDB.Pincode,
			&ruleDB.Deliverable,
			&ruleDB.EtaMinDays,
			&ruleDB.EtaMaxDays,
			&ruleDB.CodAvailable,
			&ruleDB.ShippingFee,
			&ruleDB.CreatedAt,
			&ruleDB.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, rule.ErrRuleNotFound
		}
		return nil, fmt.Errorf("unexpected rule repository get error: %w", err)
	}

	return ToDomain(&ruleDB), nil
}

// ExistingPincodes какие из pincodes уже есть у магазина. Используется
// импортом для классификации insert/update до записи батча.
func (r *Repository) ExistingPincodes(ctx context.Context, shop string, pincodes []string) (map[string]struct{}, error) {
	existing := make(map[string]struct{}, len(pincodes))
	if len(pincodes) == 0 {
		return existing, nil
	}

	query, args, err := qb.
		Select("pincode").
		From("pincode_rules").
		Where(sq.Eq{"shop": shop, "pincode": pincodes}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected rule repository existing pincodes error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected rule repository existing pincodes error: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var pincode string
		if err := rows.Scan(&pincode); err != nil {
			return nil, fmt.Errorf("unexpected rule repository existing pincodes error: %w", err)
		}
		existing[pincode] = struct{}{}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected rule repository existing pincodes error: %w", err)
	}

	return existing, nil
}

func (r *Repository) GetAll(ctx context.Context, shop string, deliverable *bool) ([]entities.Rule, error) {
	builder := qb.
		Select("id", "shop", "pincode", "deliverable", "eta_min_days", "eta_max_days", "cod_available", "shipping_fee", "created_at", "updated_at").
		From("pincode_rules").
		Where(sq.Eq{"shop": shop})

	// опциональный фильтр админки
	if deliverable != nil {
		builder = builder.Where(sq.Eq{"deliverable": *deliverable})
	}

	query, args, err := builder.OrderBy("pincode ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected rule repository getall error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected rule repository getall error: %w", err)
	}
	defer rows.Close()

	ruleModels := make([]RuleDB, 0, 8)
	for rows.Next() {
		var ruleDB RuleDB
		err := rows.Scan(
			&ruleDB.ID,
			&ruleDB.Shop,
			&ruleDB.Pincode,
			&ruleDB.Deliverable,
			&ruleDB.EtaMinDays,
			&ruleDB.EtaMaxDays,
			&ruleDB.CodAvailable,
			&ruleDB.ShippingFee,
			&ruleDB.CreatedAt,
			&ruleDB.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected rule repository getall error: %w", err)
		}
		ruleModels = append(ruleModels, ruleDB)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected rule repository getall error: %w", err)
	}

	return ToDomainList(ruleModels), nil
}

func (r *Repository) Delete(ctx context.Context, shop string, id int64) error {
	query := `
		DELETE FROM pincode_rules WHERE id = $1 AND shop = $2
	`

	result, err := r.querier.Exec(ctx, query, id, shop)
	if err != nil {
		return fmt.Errorf("unexpected rule repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return rule.ErrRuleNotFound
	}

	return nil
}

func (r *Repository) Summary(ctx context.Context, shop string) (*entities.ShopSummary, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE deliverable),
			MAX(created_at)
		FROM pincode_rules
		WHERE shop = $1
	`

	var summaryDB SummaryDB
	err := r.querier.QueryRow(ctx, query, shop).
		Scan(&summaryDB.Total, &summaryDB.Deliverable, &summaryDB.LastCreatedAt)
	if err != nil {
		return nil, fmt.Errorf("unexpected rule repository summary error: %w", err)
	}

	return &entities.ShopSummary{
		Total:         summaryDB.Total,
		Deliverable:   summaryDB.Deliverable,
		LastCreatedAt: summaryDB.LastCreatedAt,
	}, nil
}

func (r *Repository) Totals(ctx context.Context) (*entities.RulesTotals, error) {
	query := `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE deliverable)
		FROM pincode_rules
	`

	var totals entities.RulesTotals
	err := r.querier.QueryRow(ctx, query).Scan(&totals.Total, &totals.Deliverable)
	if err != nil {
		return nil, fmt.Errorf("unexpected rule repository totals error: %w", err)
	}

	return &totals, nil
}

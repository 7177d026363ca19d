package ingest

import (
	"context"
	"fmt"
	"strings"

	"pincode-service/internal/entities"
)

// maxInvalidDetail потолок списка ошибок в ответе; счётчик InvalidCount
// при этом остаётся точным.
const maxInvalidDetail = 50

const (
	reasonInvalidPincode     = "Invalid pincode (must be 6 digits)"
	reasonInvalidEtaMinDays  = "Invalid etaMinDays (must be a non-negative integer)"
	reasonInvalidEtaMaxDays  = "Invalid etaMaxDays (must be a non-negative integer)"
	reasonInvalidShippingFee = "Invalid shippingFee (must be a non-negative integer)"
)

type Importer struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Importer {
	return &Importer{
		repository: repository,
		txManager:  txManager,
	}
}

// Import разбирает CSV, валидирует строки и применяет все валидные строки
// одним атомарным батчем. Ошибки уровня строки не роняют запрос: они
// собираются в отчёт. Весь запрос валит только отсутствие колонки pincode.
//
// Классификация insert/update считается по предвыборке существующих пинкодов,
// а не по результату батча: при дублях пинкода внутри файла каждая строка
// классифицируется по состоянию хранилища до импорта.
func (s *Importer) Import(ctx context.Context, shop, csvText string) (*entities.ImportReport, error) {
	if strings.TrimSpace(shop) == "" {
		return nil, ErrMissingShop
	}

	lines := splitLines(csvText)
	if len(lines) == 0 {
		return nil, ErrMissingPincodeColumn
	}

	columns := headerIndex(lines[0])
	if _, ok := columns[colPincode]; !ok {
		return nil, ErrMissingPincodeColumn
	}

	var (
		validModifies []entities.RuleModify
		validPincodes []string
		invalid       []entities.InvalidRow
		invalidCount  int
	)

	recordInvalid := func(rowNum int, reason, pincode string) {
		invalidCount++
		if len(invalid) < maxInvalidDetail {
			invalid = append(invalid, entities.InvalidRow{
				Row:     rowNum,
				Reason:  reason,
				Pincode: pincode,
			})
		}
	}

	for i, line := range lines[1:] {
		// строка 1 — заголовок, данные нумеруются с 2: это номер, который
		// показывается пользователю в сообщениях об ошибках
		rowNum := i + 2
		fields := strings.Split(line, ",")

		pincode := cellAt(fields, columns, colPincode)
		if !pincodeRx.MatchString(pincode) {
			recordInvalid(rowNum, reasonInvalidPincode, pincode)
			continue
		}

		etaMin, ok := parseOptionalNonNegative(cellAt(fields, columns, colEtaMinDays))
		if !ok {
			recordInvalid(rowNum, reasonInvalidEtaMinDays, pincode)
			continue
		}
		etaMax, ok := parseOptionalNonNegative(cellAt(fields, columns, colEtaMaxDays))
		if !ok {
			recordInvalid(rowNum, reasonInvalidEtaMaxDays, pincode)
			continue
		}
		shippingFee, ok := parseOptionalNonNegative(cellAt(fields, columns, colShippingFee))
		if !ok {
			recordInvalid(rowNum, reasonInvalidShippingFee, pincode)
			continue
		}

		// deliverable: пустая ячейка или отсутствующая колонка — true
		deliverable := true
		if raw := cellAt(fields, columns, colDeliverable); raw != "" {
			deliverable = coerceBool(raw)
		}

		validModifies = append(validModifies, entities.RuleModify{
			Shop:         shop,
			Pincode:      pincode,
			Deliverable:  deliverable,
			EtaMinDays:   etaMin,
			EtaMaxDays:   etaMax,
			CodAvailable: coerceBool(cellAt(fields, columns, colCodAvailable)),
			ShippingFee:  shippingFee,
		})
		validPincodes = append(validPincodes, pincode)
	}

	existing := map[string]struct{}{}
	if len(validPincodes) > 0 {
		var err error
		existing, err = s.repository.ExistingPincodes(ctx, shop, validPincodes)
		if err != nil {
			return nil, fmt.Errorf("fetch existing pincodes: %w", err)
		}

		err = s.txManager.Do(ctx, func(ctx context.Context) error {
			return s.repository.UpsertBatch(ctx, validModifies)
		})
		if err != nil {
			return nil, fmt.Errorf("upsert batch: %w", err)
		}
	}

	report := &entities.ImportReport{
		InvalidCount: invalidCount,
		Invalid:      invalid,
	}
	for _, pincode := range validPincodes {
		if _, ok := existing[pincode]; ok {
			report.Updated++
		} else {
			report.Inserted++
		}
	}

	return report, nil
}

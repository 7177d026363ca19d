package ingest

import (
	"regexp"
	"strconv"
	"strings"
)

// Формат файла намеренно примитивный: значения делятся по запятой, кавычки и
// экранирование не поддерживаются. Это задокументированное ограничение
// контракта импорта, а не упрощение ради кода — CSV-грамматика с кавычками
// принимала бы другой набор файлов.

var pincodeRx = regexp.MustCompile(`^\d{6}$`)

const (
	colPincode      = "pincode"
	colDeliverable  = "deliverable"
	colEtaMinDays   = "etamindays"
	colEtaMaxDays   = "etamaxdays"
	colCodAvailable = "codavailable"
	colShippingFee  = "shippingfee"
)

// splitLines нормализует переводы строк, режет на строки, срезает пробелы по
// краям и выбрасывает пустые строки.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// headerIndex строит case-insensitive мапу заголовок -> номер колонки, чтобы
// etaMinDays/etamindays/ETAMINDAYS разбирались одинаково.
func headerIndex(headerLine string) map[string]int {
	headers := strings.Split(headerLine, ",")
	index := make(map[string]int, len(headers))
	for i, header := range headers {
		index[strings.ToLower(strings.TrimSpace(header))] = i
	}
	return index
}

func cellAt(fields []string, columns map[string]int, name string) string {
	col, ok := columns[name]
	if !ok || col >= len(fields) {
		return ""
	}
	return strings.TrimSpace(fields[col])
}

// coerceBool и parseOptionalNonNegative сознательно продублированы с
// service/rule: у каждого сервиса свои валидаторы, как и у остальных.
func coerceBool(value string) bool {
	switch strings.ToLower(value) {
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}

func parseOptionalNonNegative(value string) (*int64, bool) {
	if value == "" {
		return nil, true
	}

	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil || parsed < 0 {
		return nil, false
	}
	return &parsed, true
}

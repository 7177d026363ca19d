package lookup_get

import "strings"

// corsPolicy: фиксированный allow-list плюс любой поддомен платформы
// (*.<platformDomain>). Это не граница безопасности: fallback на первый
// origin из списка не блокирует запрос, он лишь решает, раскроет ли браузер
// ответ чужой странице.
type corsPolicy struct {
	allowedOrigins []string
	platformDomain string
}

func (p corsPolicy) resolveOrigin(origin string) string {
	for _, allowed := range p.allowedOrigins {
		if origin == allowed {
			return origin
		}
	}

	if p.isPlatformOrigin(origin) {
		return origin
	}

	if len(p.allowedOrigins) > 0 {
		return p.allowedOrigins[0]
	}
	return ""
}

func (p corsPolicy) isPlatformOrigin(origin string) bool {
	if p.platformDomain == "" {
		return false
	}

	host, ok := strings.CutPrefix(origin, "https://")
	if !ok {
		return false
	}
	return strings.HasSuffix(host, "."+p.platformDomain)
}

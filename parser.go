package envconf

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ParserFunc converte o valor bruto de uma variável de ambiente no valor
// tipado de um campo. Qualquer tipo cujo valor possa ser obtido a partir de
// uma string é admissível como alvo de um campo (restrição de capacidade,
// não uma lista fechada de tipos).
type ParserFunc func(raw string) (any, error)

func parseString(raw string) (any, error) {
	return raw, nil
}

func parseBool(raw string) (any, error) {
	return strconv.ParseBool(strings.ToLower(raw))
}

func parseInt(raw string) (any, error) {
	return strconv.Atoi(raw)
}

func parseInt64(raw string) (any, error) {
	return strconv.ParseInt(raw, 10, 64)
}

func parseUint64(raw string) (any, error) {
	return strconv.ParseUint(raw, 10, 64)
}

func parseFloat64(raw string) (any, error) {
	return strconv.ParseFloat(raw, 64)
}

func parseDuration(raw string) (any, error) {
	return time.ParseDuration(raw)
}

// parseTime aceita o formato RFC 3339 (ex: "2026-01-02T15:04:05Z").
func parseTime(raw string) (any, error) {
	return time.Parse(time.RFC3339, raw)
}

func parseURL(raw string) (any, error) {
	return url.Parse(raw)
}

func parseIP(raw string) (any, error) {
	ip := net.ParseIP(raw)
	if ip == nil {
		return nil, fmt.Errorf("invalid IP address %q", raw)
	}
	return ip, nil
}

func parseUUID(raw string) (any, error) {
	return uuid.Parse(raw)
}

package utils

import (
	"fmt"
	"time"
)

const (
	monthLayout        = "2006-01"
	rankingMonthLayout = "01-2006"
)

// ParseDate converte YYYY-MM-DD; texto vazio devolve nil
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// ParseMonth valida um mês no formato YYYY-MM
func ParseMonth(month string) (time.Time, error) {
	parsed, err := time.Parse(monthLayout, month)
	if err != nil {
		return time.Time{}, fmt.Errorf("mês inválido %q, use YYYY-MM", month)
	}
	return parsed, nil
}

// RankingMonth formata a data como a chave usada no ranking (mm-yyyy)
func RankingMonth(date time.Time) string {
	return date.Format(rankingMonthLayout)
}

// NormalizeRankingMonth aceita YYYY-MM ou mm-yyyy e devolve mm-yyyy
func NormalizeRankingMonth(month string) (string, error) {
	if parsed, err := time.Parse(rankingMonthLayout, month); err == nil {
		return RankingMonth(parsed), nil
	}
	parsed, err := ParseMonth(month)
	if err != nil {
		return "", err
	}
	return RankingMonth(parsed), nil
}

func FirstDayOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

func TruncateDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

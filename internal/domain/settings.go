package domain

import (
	"strconv"
	"strings"
	"time"
)

// AppVersionConfig controla a atualização obrigatória do aplicativo móvel
type AppVersionConfig struct {
	Mandatory      bool       `json:"mandatory"`
	APKURL         string     `json:"apk_url" validate:"required,url"`
	CurrentVersion string     `json:"current_version" validate:"required"`
	MinimumVersion string     `json:"minimum_version" validate:"required"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

// CompareVersions compara versões no formato 1.2.3.
// ok é falso quando alguma das versões não é numérica.
func CompareVersions(a, b string) (cmp int, ok bool) {
	pa, okA := parseVersion(a)
	pb, okB := parseVersion(b)
	if !okA || !okB {
		return 0, false
	}

	for i := 0; i < len(pa) || i < len(pb); i++ {
		var x, y int
		if i < len(pa) {
			x = pa[i]
		}
		if i < len(pb) {
			y = pb[i]
		}
		switch {
		case x < y:
			return -1, true
		case x > y:
			return 1, true
		}
	}
	return 0, true
}

func parseVersion(v string) ([]int, bool) {
	v = strings.TrimPrefix(strings.TrimSpace(v), "v")
	if v == "" {
		return nil, false
	}

	parts := strings.Split(v, ".")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return nil, false
		}
		out = append(out, n)
	}
	return out, true
}

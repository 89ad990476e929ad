package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIPRateLimiter_RecargaYLimpieza(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	l := NewIPRateLimiter(2, 1)
	l.now = func() time.Time { return now }

	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.2"), "cada IP tiene su propio cupo")

	// 2 por minuto: un token cada 30s.
	now = now.Add(31 * time.Second)
	assert.True(t, l.Allow("10.0.0.1"))

	now = now.Add(visitorTTL + time.Minute)
	l.Allow("10.0.0.3")
	assert.Len(t, l.visitors, 1, "los visitantes inactivos se descartan")
}

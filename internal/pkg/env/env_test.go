package env

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func withEnv(t *testing.T, values map[string]string) {
	t.Helper()
	prev := Env
	Env = values
	t.Cleanup(func() { Env = prev })
}

func TestGetEnvPrefersLoadedFile(t *testing.T) {
	withEnv(t, map[string]string{"SHOP_CURRENCY": "eur"})
	t.Setenv("SHOP_CURRENCY", "usd")

	assert.Equal(t, "eur", GetEnv("SHOP_CURRENCY", "gbp"))
	assert.Equal(t, "fallback", GetEnv("SHOP_MISSING_KEY", "fallback"))
}

func TestGetInt(t *testing.T) {
	withEnv(t, map[string]string{"A": "42", "B": "forty-two"})

	assert.Equal(t, 42, GetInt("A", 1))
	assert.Equal(t, 1, GetInt("B", 1))
	assert.Equal(t, 7, GetInt("C", 7))
}

func TestGetDuration(t *testing.T) {
	withEnv(t, map[string]string{"T1": "20", "T2": "750ms", "T3": "soon"})

	assert.Equal(t, 20*time.Second, GetDuration("T1", time.Second))
	assert.Equal(t, 750*time.Millisecond, GetDuration("T2", time.Second))
	assert.Equal(t, time.Second, GetDuration("T3", time.Second))
}

func TestGetList(t *testing.T) {
	withEnv(t, map[string]string{"KAFKA_BROKERS": " kafka-1:9092, ,kafka-2:9092 "})

	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, GetList("KAFKA_BROKERS"))
	assert.Nil(t, GetList("NOT_SET"))
}

package payment

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSession(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantAmount int64
		wantPaid   bool
		wantErr    bool
	}{
		{name: "paid with amount", raw: `{"id":"cs_1","payment_status":"paid","amount_total":1500}`, wantAmount: 1500, wantPaid: true},
		{name: "missing amount defaults to zero", raw: `{"id":"cs_2","payment_status":"paid"}`, wantAmount: 0, wantPaid: true},
		{name: "null amount defaults to zero", raw: `{"id":"cs_3","amount_total":null}`, wantAmount: 0},
		{name: "missing id", raw: `{"amount_total":10}`, wantErr: true},
		{name: "not an object", raw: `[1,2]`, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := ParseSession(json.RawMessage(tc.raw))
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantAmount, s.AmountTotal)
			assert.Equal(t, tc.wantPaid, s.IsPaid())
			assert.JSONEq(t, tc.raw, string(s.Raw))
		})
	}
}

func TestSessionIsPaidNil(t *testing.T) {
	var s *Session
	assert.False(t, s.IsPaid())
}

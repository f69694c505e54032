package protocol

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONSerializerMarshal(t *testing.T) {
	t.Run("IndentedEnvelope", func(t *testing.T) {
		s := NewJSONSerializer("    ", false)

		data, err := s.Marshal(&Envelope{
			Command:   CmdGetSymbol,
			Arguments: &SymbolArguments{Symbol: "EURPLN"},
			CustomTag: "tag",
		})
		require.NoError(t, err)

		expected := "{\n" +
			"    \"command\": \"getSymbol\",\n" +
			"    \"arguments\": {\n" +
			"        \"symbol\": \"EURPLN\"\n" +
			"    },\n" +
			"    \"customTag\": \"tag\"\n" +
			"}"
		assert.Equal(t, expected, string(data))
	})

	t.Run("NoArguments", func(t *testing.T) {
		s := NewJSONSerializer("", false)

		data, err := s.Marshal(&Envelope{Command: CmdGetAllSymbols})
		require.NoError(t, err)
		assert.Equal(t, `{"command":"getAllSymbols"}`, string(data))
	})

	t.Run("LoginWithoutAppName", func(t *testing.T) {
		s := NewJSONSerializer("", false)

		data, err := s.Marshal(&LoginArguments{UserID: "12345", Password: "secret"})
		require.NoError(t, err)
		assert.JSONEq(t, `{"userId":"12345","password":"secret"}`, string(data))
	})

	t.Run("ChartInfoNested", func(t *testing.T) {
		s := NewJSONSerializer("", false)

		data, err := s.Marshal(&ChartLastArguments{Info: ChartLastInfo{
			Period: PeriodH1,
			Start:  1262944112000,
			Symbol: "EURPLN",
		}})
		require.NoError(t, err)
		assert.JSONEq(t, `{"info":{"period":60,"start":1262944112000,"symbol":"EURPLN"}}`, string(data))
	})
}

func TestJSONSerializerUnmarshal(t *testing.T) {
	data := []byte(`{"commission": 0.51, "rateOfExchange": 0.1609, "extra": 1}`)

	t.Run("Strict", func(t *testing.T) {
		var c Commission
		err := NewJSONSerializer("", true).Unmarshal(data, &c)
		assert.Error(t, err)
	})

	t.Run("Lenient", func(t *testing.T) {
		var c Commission
		require.NoError(t, NewJSONSerializer("", false).Unmarshal(data, &c))
		assert.True(t, decimal.RequireFromString("0.51").Equal(c.Commission))
		assert.True(t, decimal.RequireFromString("0.1609").Equal(c.RateOfExchange))
	})

	t.Run("NullableFields", func(t *testing.T) {
		var trade Trade
		err := NewJSONSerializer("", false).Unmarshal([]byte(`{
			"close_price": 1.3256, "close_time": null, "closed": false, "cmd": 0,
			"customComment": null, "expiration": null, "open_time": 1272380927000,
			"order": 7497776, "symbol": "EURPLN", "volume": 0.10
		}`), &trade)
		require.NoError(t, err)
		assert.Nil(t, trade.CloseTime)
		assert.Nil(t, trade.CustomComment)
		require.NotNil(t, trade.Symbol)
		assert.Equal(t, "EURPLN", *trade.Symbol)
		assert.Equal(t, TradeCmdBuy, trade.Cmd)
		assert.Equal(t, int64(7497776), trade.Order)
	})
}

func TestResponse(t *testing.T) {
	s := NewJSONSerializer("", false)
	cases := []struct {
		name       string
		data       string
		ok         bool
		returnData bool
	}{
		{"StatusTrue", `{"status": true, "returnData": {"version": "2.5.0"}}`, true, true},
		{"StatusAbsent", `{"returnData": []}`, true, true},
		{"StatusFalse", `{"status": false, "errorCode": "E1", "errorDescr": "bad"}`, false, false},
		{"NullReturnData", `{"status": true, "returnData": null}`, true, false},
		{"NoReturnData", `{"status": true}`, true, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := &Response{}
			require.NoError(t, s.Unmarshal([]byte(tc.data), resp))
			assert.Equal(t, tc.ok, resp.OK())
			assert.Equal(t, tc.returnData, resp.HasReturnData())
		})
	}
}

func TestPeriodValid(t *testing.T) {
	for _, p := range []Period{PeriodM1, PeriodM5, PeriodM15, PeriodM30, PeriodH1, PeriodH4, PeriodD1, PeriodW1, PeriodMN1} {
		assert.True(t, p.Valid(), "period %d", p)
	}
	for _, p := range []Period{0, 2, 7, 120, -1} {
		assert.False(t, p.Valid(), "period %d", p)
	}
}

func TestTimestamp(t *testing.T) {
	at := time.Date(2014, time.January, 10, 14, 4, 0, 0, time.UTC)

	ts := TimestampOf(at)
	assert.Equal(t, Timestamp(1389362640000), ts)
	assert.True(t, at.Equal(ts.Time()))
	assert.Equal(t, time.UTC, ts.Time().Location())
	assert.False(t, ts.IsZero())
	assert.True(t, Timestamp(0).IsZero())
}

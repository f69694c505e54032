package protocol

import (
	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

// Response is the JSON document received for every request.
type Response struct {
	// Status is absent on some replies; absence means success.
	Status     *bool           `json:"status,omitempty"`
	ReturnData json.RawMessage `json:"returnData,omitempty"`
	ErrorCode  string          `json:"errorCode,omitempty"`
	ErrorDescr string          `json:"errorDescr,omitempty"`
	CustomTag  string          `json:"customTag,omitempty"`

	// StreamSessionID is only set on login replies.
	StreamSessionID string `json:"streamSessionId,omitempty"`
}

// OK reports whether the response signals success.
func (r *Response) OK() bool {
	return r.Status == nil || *r.Status
}

// HasReturnData reports whether the response carries a non-null returnData.
func (r *Response) HasReturnData() bool {
	return len(r.ReturnData) > 0 && string(r.ReturnData) != "null"
}

// LoginResponse is the reply to a successful login.
type LoginResponse struct {
	Status          bool   `json:"status"`
	StreamSessionID string `json:"streamSessionId"`
}

// Calendar is a single market event.
type Calendar struct {
	Country  string    `json:"country"`
	Current  string    `json:"current"`
	Forecast string    `json:"forecast"`
	Impact   string    `json:"impact"` // 1 low, 2 medium, 3 high
	Period   string    `json:"period"`
	Previous string    `json:"previous"`
	Time     Timestamp `json:"time"`
	Title    string    `json:"title"`
}

// RateInfo is one candle of a chart.
// Close, High and Low are shifts from Open, expressed in points.
type RateInfo struct {
	Close     decimal.Decimal `json:"close"`
	Ctm       Timestamp       `json:"ctm"`
	CtmString string          `json:"ctmString"`
	High      decimal.Decimal `json:"high"`
	Low       decimal.Decimal `json:"low"`
	Open      decimal.Decimal `json:"open"`
	Vol       decimal.Decimal `json:"vol"`
}

// Chart is the reply of getChartLastRequest and getChartRangeRequest.
type Chart struct {
	Digits    int        `json:"digits"`
	Exemode   int        `json:"exemode"`
	RateInfos []RateInfo `json:"rateInfos"`
}

// Commission is the reply of getCommissionDef.
type Commission struct {
	Commission     decimal.Decimal `json:"commission"`
	RateOfExchange decimal.Decimal `json:"rateOfExchange"`
}

// User is the reply of getCurrentUserData.
type User struct {
	CompanyUnit        int     `json:"companyUnit"`
	Currency           string  `json:"currency"`
	Group              string  `json:"group"`
	IBAccount          bool    `json:"ibAccount"`
	Leverage           int     `json:"leverage"` // deprecated by the vendor
	LeverageMultiplier float64 `json:"leverageMultiplier"`
	SpreadType         *string `json:"spreadType"` // FLOAT, FIXED or null
	TrailingStop       bool    `json:"trailingStop"`
}

// MarginLevel is the reply of getMarginLevel.
type MarginLevel struct {
	Balance     decimal.Decimal `json:"balance"`
	Credit      decimal.Decimal `json:"credit"`
	Currency    string          `json:"currency"`
	Equity      decimal.Decimal `json:"equity"`
	Margin      decimal.Decimal `json:"margin"`
	MarginFree  decimal.Decimal `json:"margin_free"`
	MarginLevel decimal.Decimal `json:"margin_level"`
}

// MarginTrade is the reply of getMarginTrade.
type MarginTrade struct {
	Margin decimal.Decimal `json:"margin"`
}

// News is a single news topic.
type News struct {
	Body       string    `json:"body"`
	BodyLen    int       `json:"bodylen"`
	Key        string    `json:"key"`
	Time       Timestamp `json:"time"`
	TimeString string    `json:"timeString"`
	Title      string    `json:"title"`
}

// ProfitCalculation is the reply of getProfitCalculation.
type ProfitCalculation struct {
	Profit decimal.Decimal `json:"profit"`
}

// ServerTime is the reply of getServerTime.
type ServerTime struct {
	Time       Timestamp `json:"time"`
	TimeString string    `json:"timeString"`
}

// Step is one volume-dependent step of a StepRule.
type Step struct {
	FromValue decimal.Decimal `json:"fromValue"`
	Step      decimal.Decimal `json:"step"`
}

// StepRule is a DMA step rule.
type StepRule struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Steps []Step `json:"steps"`
}

// Symbol describes an instrument available to the user.
// Exemode and QuoteIDCross are not documented by the vendor but are sent by
// live servers.
type Symbol struct {
	Ask                decimal.Decimal `json:"ask"`
	Bid                decimal.Decimal `json:"bid"`
	CategoryName       string          `json:"categoryName"`
	ContractSize       int64           `json:"contractSize"`
	Currency           string          `json:"currency"`
	CurrencyPair       bool            `json:"currencyPair"`
	CurrencyProfit     string          `json:"currencyProfit"`
	Description        string          `json:"description"`
	Exemode            int             `json:"exemode"`
	Expiration         *Timestamp      `json:"expiration"`
	GroupName          string          `json:"groupName"`
	High               decimal.Decimal `json:"high"`
	InitialMargin      int64           `json:"initialMargin"`
	InstantMaxVolume   int64           `json:"instantMaxVolume"`
	Leverage           float64         `json:"leverage"`
	LongOnly           bool            `json:"longOnly"`
	LotMax             decimal.Decimal `json:"lotMax"`
	LotMin             decimal.Decimal `json:"lotMin"`
	LotStep            decimal.Decimal `json:"lotStep"`
	Low                decimal.Decimal `json:"low"`
	MarginHedged       int64           `json:"marginHedged"`
	MarginHedgedStrong bool            `json:"marginHedgedStrong"`
	MarginMaintenance  *int64          `json:"marginMaintenance"`
	MarginMode         int             `json:"marginMode"`
	Percentage         float64         `json:"percentage"`
	PipsPrecision      int             `json:"pipsPrecision"`
	Precision          int             `json:"precision"`
	ProfitMode         int             `json:"profitMode"`
	QuoteID            int             `json:"quoteId"`
	QuoteIDCross       int             `json:"quoteIdCross"`
	ShortSelling       bool            `json:"shortSelling"`
	SpreadRaw          decimal.Decimal `json:"spreadRaw"`
	SpreadTable        decimal.Decimal `json:"spreadTable"`
	Starting           *Timestamp      `json:"starting"`
	StepRuleID         int             `json:"stepRuleId"`
	StopsLevel         int             `json:"stopsLevel"`
	SwapRollover3Days  int             `json:"swap_rollover3days"`
	SwapEnable         bool            `json:"swapEnable"`
	SwapLong           decimal.Decimal `json:"swapLong"`
	SwapShort          decimal.Decimal `json:"swapShort"`
	SwapType           int             `json:"swapType"`
	Symbol             string          `json:"symbol"`
	TickSize           decimal.Decimal `json:"tickSize"`
	TickValue          decimal.Decimal `json:"tickValue"`
	Time               Timestamp       `json:"time"`
	TimeString         string          `json:"timeString"`
	TrailingEnabled    bool            `json:"trailingEnabled"`
	Type               int             `json:"type"`
}

// Tick is a single quotation of a symbol.
type Tick struct {
	Ask         decimal.Decimal `json:"ask"`
	AskVolume   *int64          `json:"askVolume"`
	Bid         decimal.Decimal `json:"bid"`
	BidVolume   *int64          `json:"bidVolume"`
	High        decimal.Decimal `json:"high"`
	Level       int             `json:"level"`
	Low         decimal.Decimal `json:"low"`
	SpreadRaw   decimal.Decimal `json:"spreadRaw"`
	SpreadTable decimal.Decimal `json:"spreadTable"`
	Symbol      string          `json:"symbol"`
	Timestamp   Timestamp       `json:"timestamp"`
}

// TickPrices is the reply of getTickPrices.
type TickPrices struct {
	Quotations []Tick `json:"quotations"`
}

// Trade is an open or pending position of the user.
type Trade struct {
	ClosePrice       decimal.Decimal `json:"close_price"`
	CloseTime        *Timestamp      `json:"close_time"`
	CloseTimeString  *string         `json:"close_timeString"`
	Closed           bool            `json:"closed"`
	Cmd              TradeCmd        `json:"cmd"`
	Comment          string          `json:"comment"`
	Commission       decimal.Decimal `json:"commission"`
	CustomComment    *string         `json:"customComment"`
	Digits           int             `json:"digits"`
	Expiration       *Timestamp      `json:"expiration"`
	ExpirationString *string         `json:"expirationString"`
	MarginRate       decimal.Decimal `json:"margin_rate"`
	Offset           int             `json:"offset"` // trailing offset
	OpenPrice        decimal.Decimal `json:"open_price"`
	OpenTime         Timestamp       `json:"open_time"`
	OpenTimeString   string          `json:"open_timeString"`
	Order            int64           `json:"order"`
	Order2           int64           `json:"order2"`
	Position         int64           `json:"position"`
	Profit           decimal.Decimal `json:"profit"`
	SL               decimal.Decimal `json:"sl"`
	Storage          decimal.Decimal `json:"storage"`
	Symbol           *string         `json:"symbol"`
	Timestamp        Timestamp       `json:"timestamp"`
	TP               decimal.Decimal `json:"tp"`
	Volume           decimal.Decimal `json:"volume"`
}

// Hours is a trading or quoting window within one day of the week.
// FromT and ToT are milliseconds since midnight.
type Hours struct {
	Day   int   `json:"day"` // 1 Monday ... 7 Sunday
	FromT int64 `json:"fromT"`
	ToT   int64 `json:"toT"`
}

// TradingHours lists the quoting and trading windows of a symbol.
type TradingHours struct {
	Quotes  []Hours `json:"quotes"`
	Symbol  string  `json:"symbol"`
	Trading []Hours `json:"trading"`
}

// Version is the reply of getVersion.
type Version struct {
	Version string `json:"version"`
}

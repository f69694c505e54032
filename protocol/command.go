package protocol

// Command names understood by the remote service.
const (
	CmdLogin                = "login"
	CmdLogout               = "logout"
	CmdPing                 = "ping"
	CmdGetAllSymbols        = "getAllSymbols"
	CmdGetCalendar          = "getCalendar"
	CmdGetChartLastRequest  = "getChartLastRequest"
	CmdGetChartRangeRequest = "getChartRangeRequest"
	CmdGetCommissionDef     = "getCommissionDef"
	CmdGetCurrentUserData   = "getCurrentUserData"
	CmdGetMarginLevel       = "getMarginLevel"
	CmdGetMarginTrade       = "getMarginTrade"
	CmdGetNews              = "getNews"
	CmdGetProfitCalculation = "getProfitCalculation"
	CmdGetServerTime        = "getServerTime"
	CmdGetStepRules         = "getStepRules"
	CmdGetSymbol            = "getSymbol"
	CmdGetTickPrices        = "getTickPrices"
	CmdGetTrades            = "getTrades"
	CmdGetTradingHours      = "getTradingHours"
	CmdGetVersion           = "getVersion"
)

// Envelope is the JSON document sent for every request.
type Envelope struct {
	Command   string `json:"command"`
	Arguments any    `json:"arguments,omitempty"`

	// CustomTag is echoed back by the server in the matching response.
	CustomTag string `json:"customTag,omitempty"`
}

// Period is the candle interval of chart requests, in minutes.
type Period int

const (
	PeriodM1  Period = 1
	PeriodM5  Period = 5
	PeriodM15 Period = 15
	PeriodM30 Period = 30
	PeriodH1  Period = 60
	PeriodH4  Period = 240
	PeriodD1  Period = 1440
	PeriodW1  Period = 10080
	PeriodMN1 Period = 43200
)

// Valid reports whether p is one of the periods accepted by the server.
func (p Period) Valid() bool {
	switch p {
	case PeriodM1, PeriodM5, PeriodM15, PeriodM30, PeriodH1, PeriodH4, PeriodD1, PeriodW1, PeriodMN1:
		return true
	}
	return false
}

// TradeCmd is the operation code of a trade.
type TradeCmd int

const (
	TradeCmdBuy       TradeCmd = 0
	TradeCmdSell      TradeCmd = 1
	TradeCmdBuyLimit  TradeCmd = 2
	TradeCmdSellLimit TradeCmd = 3
	TradeCmdBuyStop   TradeCmd = 4
	TradeCmdSellStop  TradeCmd = 5
	TradeCmdBalance   TradeCmd = 6 // read only
	TradeCmdCredit    TradeCmd = 7 // read only
)

// LoginArguments is the payload of the login command.
type LoginArguments struct {
	UserID   string `json:"userId"`
	Password string `json:"password"`
	AppName  string `json:"appName,omitempty"`
}

// ChartLastInfo describes a chart request from Start up to now.
type ChartLastInfo struct {
	Period Period    `json:"period"`
	Start  Timestamp `json:"start"`
	Symbol string    `json:"symbol"`
}

// ChartRangeInfo describes a chart request between Start and End.
// When Ticks is non-zero the server ignores End and returns Ticks candles
// counted from Start (negative values count backwards).
type ChartRangeInfo struct {
	End    Timestamp `json:"end"`
	Period Period    `json:"period"`
	Start  Timestamp `json:"start"`
	Symbol string    `json:"symbol"`
	Ticks  int       `json:"ticks"`
}

// ChartLastArguments wraps ChartLastInfo the way the server expects it.
type ChartLastArguments struct {
	Info ChartLastInfo `json:"info"`
}

// ChartRangeArguments wraps ChartRangeInfo the way the server expects it.
type ChartRangeArguments struct {
	Info ChartRangeInfo `json:"info"`
}

// SymbolVolumeArguments is shared by getCommissionDef and getMarginTrade.
type SymbolVolumeArguments struct {
	Symbol string  `json:"symbol"`
	Volume float64 `json:"volume"`
}

// SymbolArguments is the payload of getSymbol.
type SymbolArguments struct {
	Symbol string `json:"symbol"`
}

// NewsArguments is the payload of getNews. End equal to zero means now.
type NewsArguments struct {
	End   Timestamp `json:"end"`
	Start Timestamp `json:"start"`
}

// ProfitCalculationArguments is the payload of getProfitCalculation.
type ProfitCalculationArguments struct {
	ClosePrice float64  `json:"closePrice"`
	Cmd        TradeCmd `json:"cmd"`
	OpenPrice  float64  `json:"openPrice"`
	Symbol     string   `json:"symbol"`
	Volume     float64  `json:"volume"`
}

// TickPricesArguments is the payload of getTickPrices.
type TickPricesArguments struct {
	Level     int       `json:"level"`
	Symbols   []string  `json:"symbols"`
	Timestamp Timestamp `json:"timestamp"`
}

// TradingHoursArguments is the payload of getTradingHours.
type TradingHoursArguments struct {
	Symbols []string `json:"symbols"`
}

// TradesArguments is the payload of getTrades.
type TradesArguments struct {
	OpenedOnly bool `json:"openedOnly"`
}

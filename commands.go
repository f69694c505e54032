package xapi

import (
	"context"
	"fmt"

	"github.com/0x5487/xapi/protocol"
	"github.com/0x5487/xapi/structure"
)

// GetAllSymbols returns every symbol available for the user.
func (c *Client) GetAllSymbols(ctx context.Context) ([]protocol.Symbol, error) {
	return query[[]protocol.Symbol](ctx, c, protocol.CmdGetAllSymbols, nil)
}

// SymbolIndex fetches all symbols and indexes them by name.
func (c *Client) SymbolIndex(ctx context.Context) (*structure.SymbolIndex, error) {
	symbols, err := c.GetAllSymbols(ctx)
	if err != nil {
		return nil, err
	}
	return structure.NewSymbolIndex(symbols), nil
}

// GetCalendar returns the calendar of market events.
func (c *Client) GetCalendar(ctx context.Context) ([]protocol.Calendar, error) {
	return query[[]protocol.Calendar](ctx, c, protocol.CmdGetCalendar, nil)
}

// GetChartLastRequest returns candles from start up to now.
// The streaming equivalent is preferred by the vendor.
func (c *Client) GetChartLastRequest(ctx context.Context, info protocol.ChartLastInfo) (*protocol.Chart, error) {
	if !info.Period.Valid() {
		return nil, fmt.Errorf("%w: period %d", ErrInvalidParam, info.Period)
	}
	chart, err := query[protocol.Chart](ctx, c, protocol.CmdGetChartLastRequest, &protocol.ChartLastArguments{Info: info})
	if err != nil {
		return nil, err
	}
	return &chart, nil
}

// GetChartRangeRequest returns candles between info.Start and info.End.
func (c *Client) GetChartRangeRequest(ctx context.Context, info protocol.ChartRangeInfo) (*protocol.Chart, error) {
	if !info.Period.Valid() {
		return nil, fmt.Errorf("%w: period %d", ErrInvalidParam, info.Period)
	}
	chart, err := query[protocol.Chart](ctx, c, protocol.CmdGetChartRangeRequest, &protocol.ChartRangeArguments{Info: info})
	if err != nil {
		return nil, err
	}
	return &chart, nil
}

// GetCommissionDef returns the commission and rate of exchange for a trade of volume lots.
func (c *Client) GetCommissionDef(ctx context.Context, symbol string, volume float64) (*protocol.Commission, error) {
	commission, err := query[protocol.Commission](ctx, c, protocol.CmdGetCommissionDef, &protocol.SymbolVolumeArguments{
		Symbol: symbol,
		Volume: volume,
	})
	if err != nil {
		return nil, err
	}
	return &commission, nil
}

// GetCurrentUserData returns the account currency and leverage.
func (c *Client) GetCurrentUserData(ctx context.Context) (*protocol.User, error) {
	user, err := query[protocol.User](ctx, c, protocol.CmdGetCurrentUserData, nil)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetMarginLevel returns the account indicators.
func (c *Client) GetMarginLevel(ctx context.Context) (*protocol.MarginLevel, error) {
	level, err := query[protocol.MarginLevel](ctx, c, protocol.CmdGetMarginLevel, nil)
	if err != nil {
		return nil, err
	}
	return &level, nil
}

// GetMarginTrade returns the expected margin for volume lots of symbol.
func (c *Client) GetMarginTrade(ctx context.Context, symbol string, volume float64) (*protocol.MarginTrade, error) {
	margin, err := query[protocol.MarginTrade](ctx, c, protocol.CmdGetMarginTrade, &protocol.SymbolVolumeArguments{
		Symbol: symbol,
		Volume: volume,
	})
	if err != nil {
		return nil, err
	}
	return &margin, nil
}

// GetNews returns the news published between start and end.
func (c *Client) GetNews(ctx context.Context, start, end protocol.Timestamp) ([]protocol.News, error) {
	return query[[]protocol.News](ctx, c, protocol.CmdGetNews, &protocol.NewsArguments{
		End:   end,
		Start: start,
	})
}

// GetProfitCalculation estimates the profit of the described deal.
func (c *Client) GetProfitCalculation(ctx context.Context, args protocol.ProfitCalculationArguments) (*protocol.ProfitCalculation, error) {
	profit, err := query[protocol.ProfitCalculation](ctx, c, protocol.CmdGetProfitCalculation, &args)
	if err != nil {
		return nil, err
	}
	return &profit, nil
}

// GetServerTime returns the current time on the server.
func (c *Client) GetServerTime(ctx context.Context) (*protocol.ServerTime, error) {
	serverTime, err := query[protocol.ServerTime](ctx, c, protocol.CmdGetServerTime, nil)
	if err != nil {
		return nil, err
	}
	return &serverTime, nil
}

// GetStepRules returns the step rules of DMA symbols.
func (c *Client) GetStepRules(ctx context.Context) ([]protocol.StepRule, error) {
	return query[[]protocol.StepRule](ctx, c, protocol.CmdGetStepRules, nil)
}

// GetSymbol returns one symbol.
func (c *Client) GetSymbol(ctx context.Context, symbol string) (*protocol.Symbol, error) {
	sym, err := query[protocol.Symbol](ctx, c, protocol.CmdGetSymbol, &protocol.SymbolArguments{Symbol: symbol})
	if err != nil {
		return nil, err
	}
	return &sym, nil
}

// GetTickPrices returns the quotations of symbols that changed after timestamp.
func (c *Client) GetTickPrices(ctx context.Context, level int, symbols []string, timestamp protocol.Timestamp) (*protocol.TickPrices, error) {
	prices, err := query[protocol.TickPrices](ctx, c, protocol.CmdGetTickPrices, &protocol.TickPricesArguments{
		Level:     level,
		Symbols:   symbols,
		Timestamp: timestamp,
	})
	if err != nil {
		return nil, err
	}
	return &prices, nil
}

// GetTrades returns the user's trades, only the open ones when openedOnly is set.
func (c *Client) GetTrades(ctx context.Context, openedOnly bool) ([]protocol.Trade, error) {
	return query[[]protocol.Trade](ctx, c, protocol.CmdGetTrades, &protocol.TradesArguments{OpenedOnly: openedOnly})
}

// GetTradingHours returns the quoting and trading windows of symbols.
func (c *Client) GetTradingHours(ctx context.Context, symbols []string) ([]protocol.TradingHours, error) {
	return query[[]protocol.TradingHours](ctx, c, protocol.CmdGetTradingHours, &protocol.TradingHoursArguments{Symbols: symbols})
}

// GetVersion returns the API version of the server.
func (c *Client) GetVersion(ctx context.Context) (*protocol.Version, error) {
	version, err := query[protocol.Version](ctx, c, protocol.CmdGetVersion, nil)
	if err != nil {
		return nil, err
	}
	return &version, nil
}

// Ping keeps the session alive.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.transport.HandleCommand(ctx, protocol.CmdPing, nil)
	return err
}

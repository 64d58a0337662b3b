package eventservices

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/jiaming2012/earnings-straddle/src/eventmodels"
	"github.com/jiaming2012/earnings-straddle/src/utils"
)

// FetchOratsStrikes returns the point-in-time (expiration, strike) listings
// for a symbol on a trade date.
func FetchOratsStrikes(ctx context.Context, baseURL, token string, symbol eventmodels.StockSymbol, tradeDate time.Time) ([]eventmodels.PointInTimeStrike, error) {
	client := http.Client{
		Timeout: 10 * time.Second,
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/hist/strikes", baseURL), nil)
	if err != nil {
		return nil, fmt.Errorf("FetchOratsStrikes: failed to create request: %w", err)
	}

	q := req.URL.Query()
	q.Add("token", token)
	q.Add("ticker", symbol.String())
	q.Add("tradeDate", tradeDate.Format("2006-01-02"))
	q.Add("fields", "ticker,tradeDate,expirDate,strike")

	req.URL.RawQuery = q.Encode()
	req.Header.Add("Accept", "application/json")

	res, err := utils.DoRequestWithRetry(&client, req)
	if err != nil {
		return nil, fmt.Errorf("FetchOratsStrikes: failed to fetch strikes: %w", err)
	}

	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("FetchOratsStrikes: failed to fetch strikes, http code %v", res.Status)
	}

	var dto eventmodels.OratsStrikesResponseDTO
	if err := json.NewDecoder(res.Body).Decode(&dto); err != nil {
		return nil, fmt.Errorf("FetchOratsStrikes: failed to decode json: %w", err)
	}

	if len(dto.Data) == 0 {
		return nil, eventmodels.ErrUnavailable
	}

	var strikes []eventmodels.PointInTimeStrike
	for _, entry := range dto.Data {
		strike, err := entry.ToModel()
		if err != nil {
			return nil, fmt.Errorf("FetchOratsStrikes: failed to convert entry: %w", err)
		}

		strikes = append(strikes, *strike)
	}

	return strikes, nil
}

// FetchOratsQuote returns the quote row for a single (expiration, strike) on
// a trade date. Both call and put fields are populated on the same row.
func FetchOratsQuote(ctx context.Context, baseURL, token string, symbol eventmodels.StockSymbol, tradeDate, expiration time.Time, strike float64) (*eventmodels.OratsQuoteDTO, error) {
	client := http.Client{
		Timeout: 10 * time.Second,
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/hist/strikes/options", baseURL), nil)
	if err != nil {
		return nil, fmt.Errorf("FetchOratsQuote: failed to create request: %w", err)
	}

	q := req.URL.Query()
	q.Add("token", token)
	q.Add("ticker", symbol.String())
	q.Add("tradeDate", tradeDate.Format("2006-01-02"))
	q.Add("expirDate", expiration.Format("2006-01-02"))
	q.Add("strike", fmt.Sprintf("%v", strike))

	req.URL.RawQuery = q.Encode()
	req.Header.Add("Accept", "application/json")

	res, err := utils.DoRequestWithRetry(&client, req)
	if err != nil {
		return nil, fmt.Errorf("FetchOratsQuote: failed to fetch quote: %w", err)
	}

	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("FetchOratsQuote: failed to fetch quote, http code %v", res.Status)
	}

	var dto eventmodels.OratsQuotesResponseDTO
	if err := json.NewDecoder(res.Body).Decode(&dto); err != nil {
		return nil, fmt.Errorf("FetchOratsQuote: failed to decode json: %w", err)
	}

	if len(dto.Data) == 0 {
		return nil, eventmodels.ErrUnavailable
	}

	return &dto.Data[0], nil
}

// OratsSource adapts the ORATS historical endpoints to the point-in-time
// interfaces consumed by the screener in backtest mode.
type OratsSource struct {
	BaseURL string
	Token   string
}

func (s *OratsSource) Strikes(ctx context.Context, symbol eventmodels.StockSymbol, tradeDate time.Time) ([]eventmodels.PointInTimeStrike, error) {
	return FetchOratsStrikes(ctx, s.BaseURL, s.Token, symbol, tradeDate)
}

// StraddleQuote fetches both legs of the straddle on tradeDate. The call leg
// is read from the call strike's row and the put leg from the put strike's
// row, matching the historical provider's combined schema.
func (s *OratsSource) StraddleQuote(ctx context.Context, symbol eventmodels.StockSymbol, tradeDate, expiration time.Time, callStrike, putStrike float64) (*eventmodels.StraddleQuote, error) {
	callRow, err := FetchOratsQuote(ctx, s.BaseURL, s.Token, symbol, tradeDate, expiration, callStrike)
	if err != nil {
		return nil, fmt.Errorf("OratsSource: StraddleQuote: call leg: %w", err)
	}

	putRow, err := FetchOratsQuote(ctx, s.BaseURL, s.Token, symbol, tradeDate, expiration, putStrike)
	if err != nil {
		return nil, fmt.Errorf("OratsSource: StraddleQuote: put leg: %w", err)
	}

	return &eventmodels.StraddleQuote{
		Symbol:           symbol,
		TradeDate:        tradeDate,
		Expiration:       expiration,
		CallAsk:          callRow.CallAskPrice,
		CallVolume:       callRow.CallVolume,
		CallOpenInterest: callRow.CallOpenInterest,
		PutAsk:           putRow.PutAskPrice,
		PutVolume:        putRow.PutVolume,
		PutOpenInterest:  putRow.PutOpenInterest,
	}, nil
}

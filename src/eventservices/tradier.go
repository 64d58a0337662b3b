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

func FetchTradierDailyCloses(ctx context.Context, baseURL, bearerToken string, symbol eventmodels.StockSymbol, start, end time.Time) ([]eventmodels.DailyClose, error) {
	client := http.Client{
		Timeout: 10 * time.Second,
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/markets/history", baseURL), nil)
	if err != nil {
		return nil, fmt.Errorf("FetchTradierDailyCloses: failed to create request: %w", err)
	}

	q := req.URL.Query()
	q.Add("symbol", symbol.String())
	q.Add("interval", "daily")
	q.Add("start", start.Format("2006-01-02"))
	q.Add("end", end.Format("2006-01-02"))

	req.URL.RawQuery = q.Encode()
	req.Header.Add("Accept", "application/json")
	req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", bearerToken))

	res, err := utils.DoRequestWithRetry(&client, req)
	if err != nil {
		return nil, fmt.Errorf("FetchTradierDailyCloses: failed to fetch history: %w", err)
	}

	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("FetchTradierDailyCloses: failed to fetch history, http code %v", res.Status)
	}

	var dto eventmodels.TradierHistoryDTO
	if err := json.NewDecoder(res.Body).Decode(&dto); err != nil {
		return nil, fmt.Errorf("FetchTradierDailyCloses: failed to decode json: %w", err)
	}

	closes, err := dto.ToDailyCloses()
	if err != nil {
		return nil, fmt.Errorf("FetchTradierDailyCloses: %w", err)
	}

	return closes, nil
}

func FetchTradierOptionExpirations(ctx context.Context, baseURL, bearerToken string, symbol eventmodels.StockSymbol) ([]time.Time, error) {
	client := http.Client{
		Timeout: 10 * time.Second,
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/markets/options/expirations", baseURL), nil)
	if err != nil {
		return nil, fmt.Errorf("FetchTradierOptionExpirations: failed to create request: %w", err)
	}

	q := req.URL.Query()
	q.Add("symbol", symbol.String())
	q.Add("includeAllRoots", "true")

	req.URL.RawQuery = q.Encode()
	req.Header.Add("Accept", "application/json")
	req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", bearerToken))

	res, err := utils.DoRequestWithRetry(&client, req)
	if err != nil {
		return nil, fmt.Errorf("FetchTradierOptionExpirations: failed to fetch expirations: %w", err)
	}

	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("FetchTradierOptionExpirations: failed to fetch expirations, http code %v", res.Status)
	}

	var dto eventmodels.TradierExpirationsDTO
	if err := json.NewDecoder(res.Body).Decode(&dto); err != nil {
		return nil, fmt.Errorf("FetchTradierOptionExpirations: failed to decode json: %w", err)
	}

	expirations, err := dto.ToModel()
	if err != nil {
		return nil, fmt.Errorf("FetchTradierOptionExpirations: %w", err)
	}

	return expirations, nil
}

func FetchTradierOptionChain(ctx context.Context, baseURL, bearerToken string, symbol eventmodels.StockSymbol, expiration time.Time) (*eventmodels.OptionChainSnapshot, error) {
	client := http.Client{
		Timeout: 10 * time.Second,
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/markets/options/chains", baseURL), nil)
	if err != nil {
		return nil, fmt.Errorf("FetchTradierOptionChain: failed to create request: %w", err)
	}

	q := req.URL.Query()
	q.Add("symbol", symbol.String())
	q.Add("expiration", expiration.Format("2006-01-02"))

	req.URL.RawQuery = q.Encode()
	req.Header.Add("Accept", "application/json")
	req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", bearerToken))

	res, err := utils.DoRequestWithRetry(&client, req)
	if err != nil {
		return nil, fmt.Errorf("FetchTradierOptionChain: failed to fetch chain: %w", err)
	}

	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("FetchTradierOptionChain: failed to fetch chain, http code %v", res.Status)
	}

	var dto eventmodels.TradierOptionChainDTO
	if err := json.NewDecoder(res.Body).Decode(&dto); err != nil {
		return nil, fmt.Errorf("FetchTradierOptionChain: failed to decode json: %w", err)
	}

	return dto.ToSnapshot(symbol, time.Now().UTC(), expiration), nil
}

// TradierOptionsSource adapts the Tradier options endpoints to the live-mode
// chain interfaces consumed by the screener.
type TradierOptionsSource struct {
	BaseURL     string
	BearerToken string
}

func (s *TradierOptionsSource) Expirations(ctx context.Context, symbol eventmodels.StockSymbol) ([]time.Time, error) {
	return FetchTradierOptionExpirations(ctx, s.BaseURL, s.BearerToken, symbol)
}

func (s *TradierOptionsSource) Chain(ctx context.Context, symbol eventmodels.StockSymbol, expiration time.Time) (*eventmodels.OptionChainSnapshot, error) {
	return FetchTradierOptionChain(ctx, s.BaseURL, s.BearerToken, symbol, expiration)
}

type TradierPriceHistorySource struct {
	BaseURL     string
	BearerToken string
}

func (s *TradierPriceHistorySource) Name() string {
	return "tradier"
}

func (s *TradierPriceHistorySource) DailyCloses(ctx context.Context, symbol eventmodels.StockSymbol, start, end time.Time) ([]eventmodels.DailyClose, error) {
	return FetchTradierDailyCloses(ctx, s.BaseURL, s.BearerToken, symbol, start, end)
}

package eventservices

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/jiaming2012/earnings-straddle/src/eventmodels"
	"github.com/jiaming2012/earnings-straddle/src/utils"
)

// FetchAlphaVantageMarketCap returns the market cap in millions. Alpha
// Vantage reports dollars as a string; an empty or malformed value means the
// provider has no figure for the symbol.
func FetchAlphaVantageMarketCap(ctx context.Context, baseURL, apiKey string, symbol eventmodels.StockSymbol) (float64, error) {
	client := http.Client{
		Timeout: 10 * time.Second,
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/query", baseURL), nil)
	if err != nil {
		return 0, fmt.Errorf("FetchAlphaVantageMarketCap: failed to create request: %w", err)
	}

	q := req.URL.Query()
	q.Add("function", "OVERVIEW")
	q.Add("symbol", symbol.String())
	q.Add("apikey", apiKey)

	req.URL.RawQuery = q.Encode()
	req.Header.Add("Accept", "application/json")

	res, err := utils.DoRequestWithRetry(&client, req)
	if err != nil {
		return 0, fmt.Errorf("FetchAlphaVantageMarketCap: failed to fetch overview: %w", err)
	}

	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("FetchAlphaVantageMarketCap: failed to fetch overview, http code %v", res.Status)
	}

	var dto eventmodels.AlphaVantageOverviewDTO
	if err := json.NewDecoder(res.Body).Decode(&dto); err != nil {
		return 0, fmt.Errorf("FetchAlphaVantageMarketCap: failed to decode json: %w", err)
	}

	if dto.MarketCapitalization == "" {
		return 0, eventmodels.ErrUnavailable
	}

	marketCap, err := strconv.ParseFloat(dto.MarketCapitalization, 64)
	if err != nil {
		return 0, eventmodels.ErrUnavailable
	}

	return marketCap / 1e6, nil
}

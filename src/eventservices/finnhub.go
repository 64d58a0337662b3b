package eventservices

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/jiaming2012/earnings-straddle/src/eventmodels"
	"github.com/jiaming2012/earnings-straddle/src/utils"
)

// FetchFinnhubEarningsCalendar returns all announcements in [from, to]. A
// failure here is batch-fatal: there is no candidate universe without it.
func FetchFinnhubEarningsCalendar(ctx context.Context, baseURL, token string, from, to time.Time) ([]eventmodels.EarningsEvent, error) {
	dto, err := fetchFinnhubEarningsCalendarDTO(ctx, baseURL, token, "", from, to)
	if err != nil {
		return nil, fmt.Errorf("FetchFinnhubEarningsCalendar: %w", err)
	}

	var events []eventmodels.EarningsEvent
	for _, entry := range dto.EarningsCalendar {
		event, err := entry.ToModel()
		if err != nil {
			return nil, fmt.Errorf("FetchFinnhubEarningsCalendar: failed to convert entry: %w", err)
		}

		events = append(events, *event)
	}

	return events, nil
}

// FetchFinnhubEarningsDates returns the known announcement dates for a single
// symbol within [from, to], ascending.
func FetchFinnhubEarningsDates(ctx context.Context, baseURL, token string, symbol eventmodels.StockSymbol, from, to time.Time) ([]time.Time, error) {
	dto, err := fetchFinnhubEarningsCalendarDTO(ctx, baseURL, token, symbol.String(), from, to)
	if err != nil {
		return nil, fmt.Errorf("FetchFinnhubEarningsDates: %w", err)
	}

	var dates []time.Time
	for _, entry := range dto.EarningsCalendar {
		event, err := entry.ToModel()
		if err != nil {
			return nil, fmt.Errorf("FetchFinnhubEarningsDates: failed to convert entry: %w", err)
		}

		dates = append(dates, event.AnnouncementDate)
	}

	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})

	return dates, nil
}

func fetchFinnhubEarningsCalendarDTO(ctx context.Context, baseURL, token, symbol string, from, to time.Time) (*eventmodels.FinnhubEarningsCalendarDTO, error) {
	client := http.Client{
		Timeout: 10 * time.Second,
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/calendar/earnings", baseURL), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	q := req.URL.Query()
	q.Add("from", from.Format("2006-01-02"))
	q.Add("to", to.Format("2006-01-02"))
	q.Add("token", token)
	if symbol != "" {
		q.Add("symbol", symbol)
	}

	req.URL.RawQuery = q.Encode()
	req.Header.Add("Accept", "application/json")

	res, err := utils.DoRequestWithRetry(&client, req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch earnings calendar: %w", err)
	}

	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch earnings calendar, http code %v", res.Status)
	}

	var dto eventmodels.FinnhubEarningsCalendarDTO
	if err := json.NewDecoder(res.Body).Decode(&dto); err != nil {
		return nil, fmt.Errorf("failed to decode json: %w", err)
	}

	return &dto, nil
}

// FetchFinnhubMarketCap returns the market cap in millions, or
// ErrUnavailable when the profile carries no market cap.
func FetchFinnhubMarketCap(ctx context.Context, baseURL, token string, symbol eventmodels.StockSymbol) (float64, error) {
	client := http.Client{
		Timeout: 10 * time.Second,
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/stock/profile2", baseURL), nil)
	if err != nil {
		return 0, fmt.Errorf("FetchFinnhubMarketCap: failed to create request: %w", err)
	}

	q := req.URL.Query()
	q.Add("symbol", symbol.String())
	q.Add("token", token)

	req.URL.RawQuery = q.Encode()
	req.Header.Add("Accept", "application/json")

	res, err := utils.DoRequestWithRetry(&client, req)
	if err != nil {
		return 0, fmt.Errorf("FetchFinnhubMarketCap: failed to fetch profile: %w", err)
	}

	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("FetchFinnhubMarketCap: failed to fetch profile, http code %v", res.Status)
	}

	var dto eventmodels.FinnhubProfileDTO
	if err := json.NewDecoder(res.Body).Decode(&dto); err != nil {
		return 0, fmt.Errorf("FetchFinnhubMarketCap: failed to decode json: %w", err)
	}

	if dto.MarketCapitalization == 0 {
		return 0, eventmodels.ErrUnavailable
	}

	return dto.MarketCapitalization, nil
}

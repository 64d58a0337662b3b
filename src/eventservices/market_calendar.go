package eventservices

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/earnings-straddle/src/eventmodels"
	"github.com/jiaming2012/earnings-straddle/src/utils"
)

var cachedCalendars = map[string]*eventmodels.TradierCalendarDTO{}

func FetchTradierCalendar(ctx context.Context, baseURL, bearerToken string, month time.Time) (*eventmodels.TradierCalendarDTO, error) {
	cacheKey := month.Format("2006-01")
	if cached, ok := cachedCalendars[cacheKey]; ok {
		return cached, nil
	}

	log.Debugf("Cache miss. Fetching market calendar for %v", cacheKey)

	client := http.Client{
		Timeout: 10 * time.Second,
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/markets/calendar", baseURL), nil)
	if err != nil {
		return nil, fmt.Errorf("FetchTradierCalendar: failed to create request: %w", err)
	}

	q := req.URL.Query()
	q.Add("month", fmt.Sprintf("%02d", int(month.Month())))
	q.Add("year", fmt.Sprintf("%d", month.Year()))

	req.URL.RawQuery = q.Encode()
	req.Header.Add("Accept", "application/json")
	req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", bearerToken))

	res, err := utils.DoRequestWithRetry(&client, req)
	if err != nil {
		return nil, fmt.Errorf("FetchTradierCalendar: failed to fetch market calendar: %w", err)
	}

	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("FetchTradierCalendar: failed to fetch market calendar, http code %v", res.Status)
	}

	var dto eventmodels.TradierCalendarDTO
	if err := json.NewDecoder(res.Body).Decode(&dto); err != nil {
		return nil, fmt.Errorf("FetchTradierCalendar: failed to decode json: %w", err)
	}

	cachedCalendars[cacheKey] = &dto

	return &dto, nil
}

// FetchTradingSessions assembles the open market sessions between from and to
// (inclusive) from the monthly Tradier calendars, ascending.
func FetchTradingSessions(ctx context.Context, baseURL, bearerToken string, from, to time.Time) ([]time.Time, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("FetchTradingSessions: to %v precedes from %v", to.Format("2006-01-02"), from.Format("2006-01-02"))
	}

	var sessions []time.Time

	month := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, time.UTC)
	lastMonth := time.Date(to.Year(), to.Month(), 1, 0, 0, 0, 0, time.UTC)

	for !month.After(lastMonth) {
		dto, err := FetchTradierCalendar(ctx, baseURL, bearerToken, month)
		if err != nil {
			return nil, fmt.Errorf("FetchTradingSessions: %w", err)
		}

		monthSessions, err := dto.OpenSessions()
		if err != nil {
			return nil, fmt.Errorf("FetchTradingSessions: %w", err)
		}

		for _, session := range monthSessions {
			if session.Before(from) || session.After(to) {
				continue
			}

			sessions = append(sessions, session)
		}

		month = month.AddDate(0, 1, 0)
	}

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].Before(sessions[j])
	})

	return sessions, nil
}

package run

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/earnings-straddle/src/eventmodels"
	"github.com/jiaming2012/earnings-straddle/src/eventservices"
	"github.com/jiaming2012/earnings-straddle/src/screener"
	"github.com/jiaming2012/earnings-straddle/src/utils"
)

type RunArgs struct {
	GoEnv        string
	BacktestDate string
	OutDir       string
}

type RunResult struct {
	CandidatesFile string
	RecordsFile    string
}

func requireEnv(name string) string {
	value := os.Getenv(name)
	if value == "" {
		log.Fatalf("missing %s environment variable", name)
	}

	return value
}

func Run(args RunArgs) (RunResult, error) {
	projectsDir := os.Getenv("PROJECTS_DIR")
	if projectsDir == "" {
		log.Fatalf("missing PROJECTS_DIR environment variable")
	}

	if err := utils.InitEnvironmentVariables(projectsDir, args.GoEnv); err != nil {
		log.Fatalf("error loading environment variables: %v", err)
	}

	finnhubBaseURL := requireEnv("FINNHUB_BASE_URL")
	finnhubToken := requireEnv("FINNHUB_API_KEY")
	alphaVantageBaseURL := requireEnv("ALPHA_VANTAGE_BASE_URL")
	alphaVantageKey := requireEnv("ALPHA_VANTAGE_API_KEY")
	tradierBaseURL := requireEnv("TRADIER_BASE_URL")
	tradierToken := requireEnv("TRADIER_BEARER_TOKEN")
	polygonKey := requireEnv("POLYGON_API_KEY")

	mode := eventmodels.SourceModeLive
	var backtestDate time.Time
	if args.BacktestDate != "" {
		parsed, err := time.Parse("2006-01-02", args.BacktestDate)
		if err != nil {
			return RunResult{}, fmt.Errorf("Run: failed to parse backtest date %s: %w", args.BacktestDate, err)
		}

		mode = eventmodels.SourceModePointInTime
		backtestDate = parsed
	}

	outDir := args.OutDir
	if outDir == "" {
		outDir = filepath.Join(projectsDir, "earnings-straddle", "data")
	}

	ctx := context.Background()

	earnings := &eventservices.FinnhubEarningsSource{
		BaseURL: finnhubBaseURL,
		Token:   finnhubToken,
	}

	marketCap := &eventservices.MarketCapResolver{
		Sources: []eventservices.MarketCapSource{
			&eventservices.FinnhubMarketCapSource{BaseURL: finnhubBaseURL, Token: finnhubToken},
			&eventservices.AlphaVantageMarketCapSource{BaseURL: alphaVantageBaseURL, APIKey: alphaVantageKey},
		},
	}

	prices := &eventservices.FallbackPriceHistory{
		Sources: []eventservices.PriceHistorySource{
			&eventservices.TradierPriceHistorySource{BaseURL: tradierBaseURL, BearerToken: tradierToken},
			eventservices.NewPolygonPriceHistorySource(polygonKey),
		},
	}

	config := screener.DefaultConfig(mode)
	config.BacktestDate = backtestDate

	pipeline := &screener.Pipeline{
		Config:           config,
		EarningsCalendar: earnings,
		MarketCap:        marketCap,
		Estimator: &screener.MoveEstimator{
			Earnings: earnings,
			Prices:   prices,
		},
	}

	switch mode {
	case eventmodels.SourceModePointInTime:
		oratsBaseURL := requireEnv("ORATS_BASE_URL")
		oratsToken := requireEnv("ORATS_API_KEY")

		orats := &eventservices.OratsSource{BaseURL: oratsBaseURL, Token: oratsToken}
		pipeline.Selector = &screener.ContractSelector{Historical: orats}
		pipeline.Quotes = orats
	default:
		pipeline.Selector = &screener.ContractSelector{
			Chains: &eventservices.TradierOptionsSource{BaseURL: tradierBaseURL, BearerToken: tradierToken},
		}
	}

	candidates, err := pipeline.Screen(ctx)
	if err != nil {
		return RunResult{}, fmt.Errorf("Run: screen failed: %w", err)
	}

	if len(candidates) == 0 {
		log.Warn("No candidates passed the screen")
		return RunResult{}, nil
	}

	result := RunResult{
		CandidatesFile: filepath.Join(outDir, fmt.Sprintf("stock_list_%s.csv", mode)),
	}

	if err := utils.WriteCSV(&candidates, result.CandidatesFile); err != nil {
		return RunResult{}, fmt.Errorf("Run: failed to write candidates: %w", err)
	}

	switch mode {
	case eventmodels.SourceModePointInTime:
		calendar, err := buildCalendar(ctx, tradierBaseURL, tradierToken, candidates)
		if err != nil {
			return RunResult{}, fmt.Errorf("Run: failed to build trading calendar: %w", err)
		}

		pipeline.Calendar = calendar

		records, err := pipeline.Backtest(ctx, candidates)
		if err != nil {
			return RunResult{}, fmt.Errorf("Run: backtest failed: %w", err)
		}

		var dtos []*eventmodels.StraddleRecordDTO
		for i := range records {
			dtos = append(dtos, records[i].ToDTO())
		}

		result.RecordsFile = filepath.Join(outDir, "options_data_backtest.csv")
		if err := utils.WriteCSV(&dtos, result.RecordsFile); err != nil {
			return RunResult{}, fmt.Errorf("Run: failed to write records: %w", err)
		}

		fmt.Print(utils.RenderStraddleRecords(records))
	default:
		rows, err := pipeline.Live(ctx, candidates)
		if err != nil {
			return RunResult{}, fmt.Errorf("Run: live evaluation failed: %w", err)
		}

		var dtos []*eventmodels.FeatureRowDTO
		for i := range rows {
			dtos = append(dtos, rows[i].ToDTO())
		}

		result.RecordsFile = filepath.Join(outDir, "options_data.csv")
		if err := utils.WriteCSV(&dtos, result.RecordsFile); err != nil {
			return RunResult{}, fmt.Errorf("Run: failed to write feature rows: %w", err)
		}

		fmt.Print(utils.RenderFeatureRows(rows))
	}

	return result, nil
}

// buildCalendar loads enough sessions around the candidates' earnings dates
// to resolve the entry and exit offsets.
func buildCalendar(ctx context.Context, baseURL, bearerToken string, candidates []eventmodels.ScreenCandidate) (*screener.TradingCalendar, error) {
	first := candidates[0].EarningsDate
	last := candidates[0].EarningsDate

	for _, c := range candidates[1:] {
		if c.EarningsDate.Before(first) {
			first = c.EarningsDate
		}

		if c.EarningsDate.After(last) {
			last = c.EarningsDate
		}
	}

	sessions, err := eventservices.FetchTradingSessions(ctx, baseURL, bearerToken, first.AddDate(0, 0, -45), last.AddDate(0, 0, 7))
	if err != nil {
		return nil, err
	}

	return screener.NewTradingCalendar(sessions), nil
}

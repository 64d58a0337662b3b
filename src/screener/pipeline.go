package screener

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"

	"github.com/jiaming2012/earnings-straddle/src/eventmodels"
	"github.com/jiaming2012/earnings-straddle/src/utils"
)

type EarningsCalendarFetcher interface {
	Calendar(ctx context.Context, from, to time.Time) ([]eventmodels.EarningsEvent, error)
}

type MarketCapFetcher interface {
	MarketCap(ctx context.Context, symbol eventmodels.StockSymbol) (float64, error)
}

type Config struct {
	Mode eventmodels.SourceMode

	// BacktestDate is the simulated "now". Zero in live mode.
	BacktestDate time.Time

	MinMarketCapMillions float64
	MinPriceChangeRatio  float64
	EntryOffsetSessions  int
	ExitOffsetSessions   int
}

func DefaultConfig(mode eventmodels.SourceMode) Config {
	return Config{
		Mode:                 mode,
		MinMarketCapMillions: 100,
		MinPriceChangeRatio:  0.04,
		EntryOffsetSessions:  7,
		ExitOffsetSessions:   1,
	}
}

// Pipeline sequences the screen, move estimation, contract selection and
// gain computation per symbol. Symbols are processed to completion one at a
// time; any stage returning unavailable drops the symbol and the batch
// continues. Only the initial earnings calendar fetch is batch-fatal.
type Pipeline struct {
	Config Config

	EarningsCalendar EarningsCalendarFetcher
	MarketCap        MarketCapFetcher
	Estimator        *MoveEstimator
	Selector         *ContractSelector
	Quotes           StraddleQuoteFetcher
	Calendar         *TradingCalendar

	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time
}

func (p *Pipeline) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}

	return time.Now().UTC()
}

// referenceDate is the date that plays the role of "now": the backtest cutoff
// in point-in-time mode, the wall clock otherwise.
func (p *Pipeline) referenceDate() time.Time {
	if !p.Config.BacktestDate.IsZero() {
		return p.Config.BacktestDate
	}

	return p.now()
}

// Screen builds the candidate universe: symbols reporting next week with
// market cap and expected-move ratio above the configured floors, sorted by
// ratio descending.
func (p *Pipeline) Screen(ctx context.Context) ([]eventmodels.ScreenCandidate, error) {
	tracer := otel.Tracer("screener")
	ctx, span := tracer.Start(ctx, "Pipeline.Screen")
	defer span.End()

	ref := p.referenceDate()
	from, to := utils.NextWeekRange(ref, p.Config.Mode == eventmodels.SourceModePointInTime)

	events, err := p.EarningsCalendar.Calendar(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("Pipeline: Screen: failed to fetch earnings calendar: %w", err)
	}

	log.Infof("Screening %d earnings reports between %s and %s", len(events), from.Format("2006-01-02"), to.Format("2006-01-02"))

	var candidates []eventmodels.ScreenCandidate
	for i, event := range events {
		log.Infof("Screen progress: %d/%d (%s)", i+1, len(events), event.Symbol)

		if !p.Config.BacktestDate.IsZero() && !event.AnnouncementDate.After(p.Config.BacktestDate) {
			continue
		}

		candidate, err := p.screenSymbol(ctx, event, ref)
		if err != nil {
			log.Warnf("Pipeline: Screen: dropping %s: %v", event.Symbol, err)
			continue
		}

		if candidate != nil {
			candidates = append(candidates, *candidate)
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].PriceChangeRatio > candidates[j].PriceChangeRatio
	})

	return candidates, nil
}

// screenSymbol returns nil with no error when the symbol simply fails a
// filter; an error marks missing data.
func (p *Pipeline) screenSymbol(ctx context.Context, event eventmodels.EarningsEvent, ref time.Time) (*eventmodels.ScreenCandidate, error) {
	marketCap, err := p.MarketCap.MarketCap(ctx, event.Symbol)
	if err != nil {
		return nil, fmt.Errorf("market cap: %w", err)
	}

	if marketCap < p.Config.MinMarketCapMillions {
		return nil, nil
	}

	estimate, err := p.Estimator.Estimate(ctx, event.Symbol, ref)
	if err != nil {
		return nil, fmt.Errorf("move estimate: %w", err)
	}

	currentPrice, err := p.currentPrice(ctx, event.Symbol, ref)
	if err != nil {
		return nil, fmt.Errorf("current price: %w", err)
	}

	if currentPrice == 0 {
		return nil, fmt.Errorf("current price is zero: %w", eventmodels.ErrUnavailable)
	}

	ratio := estimate.AverageAbsChange / currentPrice
	if ratio < p.Config.MinPriceChangeRatio {
		return nil, nil
	}

	return &eventmodels.ScreenCandidate{
		Symbol:           event.Symbol,
		EarningsDate:     event.AnnouncementDate,
		MarketCap:        marketCap,
		AverageAbsChange: estimate.AverageAbsChange,
		CurrentPrice:     currentPrice,
		PriceChangeRatio: ratio,
	}, nil
}

// currentPrice is the close nearest to ref: in live mode the latest available
// close, in backtest mode the last close before the cutoff (or the first one
// after, when the cutoff predates the history window).
func (p *Pipeline) currentPrice(ctx context.Context, symbol eventmodels.StockSymbol, ref time.Time) (float64, error) {
	closes, err := p.Estimator.Prices.DailyCloses(ctx, symbol, ref.AddDate(0, 0, -5), ref.AddDate(0, 0, 5))
	if err != nil {
		return 0, err
	}

	if len(closes) == 0 {
		return 0, eventmodels.ErrUnavailable
	}

	var before, after *eventmodels.DailyClose
	for i := range closes {
		if closes[i].Date.Before(ref) {
			before = &closes[i]
		} else if after == nil && closes[i].Date.After(ref) {
			after = &closes[i]
		} else if closes[i].Date.Equal(ref) {
			before = &closes[i]
		}
	}

	if before != nil {
		return before.Close, nil
	}

	if after != nil {
		return after.Close, nil
	}

	return 0, eventmodels.ErrUnavailable
}

// Backtest evaluates a straddle for each candidate and emits fully labeled
// records. Entry is EntryOffsetSessions sessions before the announcement,
// exit is ExitOffsetSessions sessions before it.
func (p *Pipeline) Backtest(ctx context.Context, candidates []eventmodels.ScreenCandidate) ([]eventmodels.StraddleRecord, error) {
	tracer := otel.Tracer("screener")
	ctx, span := tracer.Start(ctx, "Pipeline.Backtest")
	defer span.End()

	runID := uuid.New()
	log.Infof("Backtest run %s: evaluating %d candidates", runID, len(candidates))

	var records []eventmodels.StraddleRecord
	for i, candidate := range candidates {
		log.Infof("Backtest progress: %d/%d (%s)", i+1, len(candidates), candidate.Symbol)

		record, err := p.backtestCandidate(ctx, candidate)
		if err != nil {
			log.Warnf("Pipeline: Backtest: dropping %s: %v", candidate.Symbol, err)
			continue
		}

		records = append(records, *record)
	}

	return records, nil
}

func (p *Pipeline) backtestCandidate(ctx context.Context, candidate eventmodels.ScreenCandidate) (*eventmodels.StraddleRecord, error) {
	move := RoundedMove(candidate.AverageAbsChange)
	callTarget := candidate.CurrentPrice + move
	putTarget := candidate.CurrentPrice - move

	selection, err := p.Selector.SelectPointInTime(ctx, candidate.Symbol, candidate.EarningsDate, callTarget, putTarget)
	if err != nil {
		return nil, err
	}

	entryDate, err := p.Calendar.Offset(candidate.EarningsDate, p.Config.EntryOffsetSessions)
	if err != nil {
		return nil, err
	}

	exitDate, err := p.Calendar.Offset(candidate.EarningsDate, p.Config.ExitOffsetSessions)
	if err != nil {
		return nil, err
	}

	entryQuote, err := p.Quotes.StraddleQuote(ctx, candidate.Symbol, entryDate, selection.Expiration, selection.CallStrike, selection.PutStrike)
	if err != nil {
		return nil, err
	}

	exitQuote, err := p.Quotes.StraddleQuote(ctx, candidate.Symbol, exitDate, selection.Expiration, selection.CallStrike, selection.PutStrike)
	if err != nil {
		return nil, err
	}

	gain, err := ComputeStraddleGain(entryQuote, exitQuote)
	if err != nil {
		return nil, err
	}

	return &eventmodels.StraddleRecord{
		Symbol:             candidate.Symbol,
		EarningsDate:       candidate.EarningsDate,
		EntryDate:          entryDate,
		ExitDate:           exitDate,
		PriceChangeRatio:   candidate.PriceChangeRatio,
		CurrentPrice:       candidate.CurrentPrice,
		CallStrike:         selection.CallStrike,
		PutStrike:          selection.PutStrike,
		Expiration:         selection.Expiration,
		BuyCallPrice:       entryQuote.CallAsk,
		BuyPutPrice:        entryQuote.PutAsk,
		CallVolume:         entryQuote.CallVolume,
		CallOpenInterest:   entryQuote.CallOpenInterest,
		PutVolume:          entryQuote.PutVolume,
		PutOpenInterest:    entryQuote.PutOpenInterest,
		CallPriceChangePct: gain.CallPct,
		PutPriceChangePct:  gain.PutPct,
		TotalGainPct:       gain.TotalPct,
		GainLabel:          gain.Label,
	}, nil
}

// Live builds unlabeled feature rows for each candidate from the live option
// chain. The label is predicted downstream by the classifier.
func (p *Pipeline) Live(ctx context.Context, candidates []eventmodels.ScreenCandidate) ([]eventmodels.FeatureRow, error) {
	tracer := otel.Tracer("screener")
	ctx, span := tracer.Start(ctx, "Pipeline.Live")
	defer span.End()

	runID := uuid.New()
	log.Infof("Live run %s: evaluating %d candidates", runID, len(candidates))

	var rows []eventmodels.FeatureRow
	for i, candidate := range candidates {
		log.Infof("Live progress: %d/%d (%s)", i+1, len(candidates), candidate.Symbol)

		row, err := p.liveCandidate(ctx, candidate)
		if err != nil {
			log.Warnf("Pipeline: Live: dropping %s: %v", candidate.Symbol, err)
			continue
		}

		rows = append(rows, *row)
	}

	return rows, nil
}

func (p *Pipeline) liveCandidate(ctx context.Context, candidate eventmodels.ScreenCandidate) (*eventmodels.FeatureRow, error) {
	move := RoundedMove(candidate.AverageAbsChange)

	callContract, callQuote, err := p.Selector.SelectLive(ctx, candidate.Symbol, candidate.CurrentPrice+move, candidate.EarningsDate, eventmodels.OptionTypeCall)
	if err != nil {
		return nil, err
	}

	_, putQuote, err := p.Selector.SelectLive(ctx, candidate.Symbol, candidate.CurrentPrice-move, candidate.EarningsDate, eventmodels.OptionTypePut)
	if err != nil {
		return nil, err
	}

	row := &eventmodels.FeatureRow{
		Symbol:           candidate.Symbol,
		EarningsDate:     candidate.EarningsDate,
		PriceChangeRatio: candidate.PriceChangeRatio,
		CurrentPrice:     candidate.CurrentPrice,
		CallStrike:       callContract.Strike,
		PutStrike:        putQuote.Strike,
		Expiration:       callContract.Expiration,
		BuyCallPrice:     callQuote.LastPrice,
		BuyPutPrice:      putQuote.LastPrice,
		CallVolume:       callQuote.Volume,
		CallOpenInterest: callQuote.OpenInterest,
		PutVolume:        putQuote.Volume,
		PutOpenInterest:  putQuote.OpenInterest,
	}

	if ratio, err := CallPutRatio(callQuote.LastPrice, putQuote.LastPrice); err == nil {
		row.CallPutRatio = &ratio
	}

	return row, nil
}

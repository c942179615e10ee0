// Package tinvest is a thin client for the Invest API REST gateway. It
// implements the collaborator contracts of the invest package: positions,
// cash balances, operations, instrument lookup and conversion rates.
package tinvest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"

	"github.com/etnz/invest"
)

const (
	usersService       = "/tinkoff.public.invest.api.contract.v1.UsersService"
	operationsService  = "/tinkoff.public.invest.api.contract.v1.OperationsService"
	instrumentsService = "/tinkoff.public.invest.api.contract.v1.InstrumentsService"
	marketDataService  = "/tinkoff.public.invest.api.contract.v1.MarketDataService"
)

// Client talks to the Invest API. It memoizes the account id, the portfolio
// response and the instrument catalogs, so concurrent per-category fetches do
// not repeat identical calls.
type Client struct {
	rest *resty.Client

	mu        sync.Mutex
	accountID string
	positions []position
	catalogs  map[invest.Category]map[string]invest.Instrument
}

func New(cfg Config) *Client {
	rest := resty.New().
		SetDebug(cfg.Debug).
		SetTimeout(cfg.Timeout).
		SetBaseURL(cfg.BaseURL).
		SetAuthToken(cfg.Token).
		SetHeader("Accept", "application/json").
		SetTransport(&diskCache{base: http.DefaultTransport})
	return &Client{
		rest:     rest,
		catalogs: make(map[invest.Category]map[string]invest.Instrument),
	}
}

// post performs one API call; every endpoint of the gateway is a POST.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	resp, err := c.rest.R().SetContext(ctx).SetBody(body).Post(path)
	if err != nil {
		return fmt.Errorf("invest api %s: %w", path, err)
	}
	if resp.IsError() {
		return fmt.Errorf("invest api %s: %s: %s", path, resp.Status(), resp.Body())
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("invest api %s: decoding response: %w", path, err)
	}
	return nil
}

// account resolves and memoizes the brokerage account id.
func (c *Client) account(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.accountID != "" {
		return c.accountID, nil
	}

	var payload any
	if err := c.post(ctx, usersService+"/GetAccounts", struct{}{}, &payload); err != nil {
		return "", err
	}
	jval, err := jsonpath.Get("$.accounts[0].id", payload)
	if err != nil {
		return "", fmt.Errorf("no usable account in GetAccounts response: %w", err)
	}
	// because jsonpath is never clear about whether it returns a list of 1
	// answer, or a single answer:
	if list, ok := jval.([]any); ok && len(list) > 0 {
		jval = list[0]
	}
	id, ok := jval.(string)
	if !ok || id == "" {
		return "", fmt.Errorf("no usable account in GetAccounts response")
	}
	c.accountID = id
	return id, nil
}

// position is one entry of the GetPortfolio response.
type position struct {
	FIGI           string     `json:"figi"`
	InstrumentType string     `json:"instrumentType"`
	Quantity       quotation  `json:"quantity"`
	AveragePrice   moneyValue `json:"averagePositionPrice"`
	CurrentPrice   moneyValue `json:"currentPrice"`
}

func (c *Client) portfolioPositions(ctx context.Context) ([]position, error) {
	accountID, err := c.account(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.positions != nil {
		return c.positions, nil
	}

	var out struct {
		Positions []position `json:"positions"`
	}
	body := map[string]string{"accountId": accountID, "currency": "RUB"}
	if err := c.post(ctx, operationsService+"/GetPortfolio", body, &out); err != nil {
		return nil, err
	}
	c.positions = out.Positions
	return c.positions, nil
}

func catalogMethod(cat invest.Category) string {
	switch cat {
	case invest.Share:
		return "/Shares"
	case invest.Bond:
		return "/Bonds"
	case invest.Etf:
		return "/Etfs"
	case invest.Currency:
		return "/Currencies"
	case invest.Future:
		return "/Futures"
	default:
		return ""
	}
}

func instrumentType(cat invest.Category) string {
	switch cat {
	case invest.Share:
		return "share"
	case invest.Bond:
		return "bond"
	case invest.Etf:
		return "etf"
	case invest.Currency:
		return "currency"
	case invest.Future:
		return "futures"
	default:
		return ""
	}
}

// catalogInstrument is one entry of an instrument catalog response.
type catalogInstrument struct {
	FIGI        string     `json:"figi"`
	Ticker      string     `json:"ticker"`
	Name        string     `json:"name"`
	Nominal     moneyValue `json:"nominal"`
	ISOCurrency string     `json:"isoCurrencyName"`
}

// catalog fetches (at most once a day, see diskCache) the full instrument
// catalog of one category, indexed by figi.
func (c *Client) catalog(ctx context.Context, cat invest.Category) (map[string]invest.Instrument, error) {
	c.mu.Lock()
	if cached, ok := c.catalogs[cat]; ok {
		c.mu.Unlock()
		return cached, nil
	}
	c.mu.Unlock()

	instruments, err := c.rawCatalog(ctx, cat)
	if err != nil {
		return nil, err
	}
	index := make(map[string]invest.Instrument, len(instruments))
	for _, in := range instruments {
		index[in.FIGI] = invest.Instrument{FIGI: in.FIGI, Ticker: in.Ticker, Name: in.Name}
	}

	c.mu.Lock()
	c.catalogs[cat] = index
	c.mu.Unlock()
	return index, nil
}

func (c *Client) rawCatalog(ctx context.Context, cat invest.Category) ([]catalogInstrument, error) {
	var out struct {
		Instruments []catalogInstrument `json:"instruments"`
	}
	body := map[string]string{"instrumentStatus": "INSTRUMENT_STATUS_ALL"}
	if err := c.post(ctx, instrumentsService+catalogMethod(cat), body, &out); err != nil {
		return nil, err
	}
	return out.Instruments, nil
}

// Positions returns the open positions of one category. Accrued totals are
// left zero; the caller folds them in from the operation history.
func (c *Client) Positions(ctx context.Context, cat invest.Category) ([]invest.RawPosition, error) {
	positions, err := c.portfolioPositions(ctx)
	if err != nil {
		return nil, err
	}
	catalog, err := c.catalog(ctx, cat)
	if err != nil {
		return nil, err
	}

	want := instrumentType(cat)
	raw := make([]invest.RawPosition, 0, len(positions))
	for _, p := range positions {
		if p.InstrumentType != want {
			continue
		}
		currency := strings.ToUpper(p.CurrentPrice.Currency)
		if currency == "" {
			// no price currency means the position is not valuable
			continue
		}
		instrument, ok := catalog[p.FIGI]
		if !ok {
			instrument = invest.Instrument{FIGI: p.FIGI, Ticker: p.FIGI}
		}
		raw = append(raw, invest.RawPosition{
			Instrument:          instrument,
			Quantity:            invest.Q(p.Quantity.decimal()),
			AveragePrice:        p.AveragePrice.money(),
			CurrentPrice:        p.CurrentPrice.money(),
			DividendsAndCoupons: invest.Zero(currency),
			TaxesAndFees:        invest.Zero(currency),
		})
	}
	return raw, nil
}

// CashBalances returns the account's free cash, one Money per currency.
func (c *Client) CashBalances(ctx context.Context) ([]invest.Money, error) {
	accountID, err := c.account(ctx)
	if err != nil {
		return nil, err
	}
	var out struct {
		Money []moneyValue `json:"money"`
	}
	body := map[string]string{"accountId": accountID}
	if err := c.post(ctx, operationsService+"/GetPositions", body, &out); err != nil {
		return nil, err
	}
	cash := make([]invest.Money, 0, len(out.Money))
	for _, m := range out.Money {
		cash = append(cash, m.money())
	}
	return cash, nil
}

// operation is one entry of the GetOperations response.
type operation struct {
	ID            string     `json:"id"`
	Date          time.Time  `json:"date"`
	OperationType string     `json:"operationType"`
	State         string     `json:"state"`
	Type          string     `json:"type"`
	Payment       moneyValue `json:"payment"`
	Price         moneyValue `json:"price"`
	Quantity      string     `json:"quantity"`
	QuantityRest  string     `json:"quantityRest"`
}

// Operations returns the executed operations of one instrument.
func (c *Client) Operations(ctx context.Context, figi string) ([]invest.OperationRecord, error) {
	accountID, err := c.account(ctx)
	if err != nil {
		return nil, err
	}
	var out struct {
		Operations []operation `json:"operations"`
	}
	body := map[string]string{
		"accountId": accountID,
		"figi":      figi,
		"state":     "OPERATION_STATE_EXECUTED",
	}
	if err := c.post(ctx, operationsService+"/GetOperations", body, &out); err != nil {
		return nil, err
	}

	records := make([]invest.OperationRecord, 0, len(out.Operations))
	for _, op := range out.Operations {
		records = append(records, invest.OperationRecord{
			ID:           op.ID,
			Time:         op.Date,
			Kind:         classify(op.OperationType),
			Description:  op.Type,
			State:        state(op.State),
			Payment:      op.Payment.money(),
			Price:        op.Price.money(),
			Quantity:     invest.Q(parseUnits(op.Quantity)),
			QuantityRest: invest.Q(parseUnits(op.QuantityRest)),
		})
	}
	return records, nil
}

func parseUnits(s string) int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// FindInstrument resolves a ticker to an instrument, preferring an exact
// ticker match over the API's fuzzy first answer.
func (c *Client) FindInstrument(ctx context.Context, ticker string) (invest.Instrument, error) {
	var out struct {
		Instruments []struct {
			FIGI   string `json:"figi"`
			Ticker string `json:"ticker"`
			Name   string `json:"name"`
		} `json:"instruments"`
	}
	body := map[string]string{"query": ticker}
	if err := c.post(ctx, instrumentsService+"/FindInstrument", body, &out); err != nil {
		return invest.Instrument{}, err
	}
	if len(out.Instruments) == 0 {
		return invest.Instrument{}, fmt.Errorf("no instrument found for %q", ticker)
	}
	for _, in := range out.Instruments {
		if strings.EqualFold(in.Ticker, ticker) {
			return invest.Instrument{FIGI: in.FIGI, Ticker: in.Ticker, Name: in.Name}, nil
		}
	}
	in := out.Instruments[0]
	return invest.Instrument{FIGI: in.FIGI, Ticker: in.Ticker, Name: in.Name}, nil
}

// Rates prefetches the conversion rates from each given currency into the
// reporting currency, using the last prices of the exchange's currency
// instruments (quoted in RUB, crossed when reporting differs). Unquoted
// currencies are simply absent from the table; the engine degrades
// gracefully per its partial-failure policy.
func (c *Client) Rates(ctx context.Context, currencies []string, reporting string) (invest.RateTable, error) {
	needed := make([]string, 0, len(currencies))
	for _, from := range currencies {
		if from != reporting {
			needed = append(needed, from)
		}
	}
	if len(needed) == 0 {
		return invest.RateTable{}, nil
	}

	toRUB, err := c.rubRates(ctx)
	if err != nil {
		return nil, err
	}

	table := invest.RateTable{}
	repRUB := decimal.NewFromInt(1)
	if reporting != "RUB" {
		var ok bool
		if repRUB, ok = toRUB[reporting]; !ok {
			// nothing converts into an unquoted reporting currency
			return table, nil
		}
	}
	for _, from := range needed {
		fromRUB, ok := toRUB[from]
		if from == "RUB" {
			fromRUB, ok = decimal.NewFromInt(1), true
		}
		if !ok {
			continue
		}
		table[from+"/"+reporting] = fromRUB.Div(repRUB)
	}
	return table, nil
}

// rubRates returns the RUB value of one unit of every currency instrument
// quoted on the exchange.
func (c *Client) rubRates(ctx context.Context) (map[string]decimal.Decimal, error) {
	instruments, err := c.rawCatalog(ctx, invest.Currency)
	if err != nil {
		return nil, err
	}
	figis := make([]string, 0, len(instruments))
	byFIGI := make(map[string]catalogInstrument, len(instruments))
	for _, in := range instruments {
		if in.ISOCurrency == "" {
			continue
		}
		figis = append(figis, in.FIGI)
		byFIGI[in.FIGI] = in
	}

	var out struct {
		LastPrices []struct {
			FIGI  string    `json:"figi"`
			Price quotation `json:"price"`
		} `json:"lastPrices"`
	}
	body := map[string][]string{"figi": figis}
	if err := c.post(ctx, marketDataService+"/GetLastPrices", body, &out); err != nil {
		return nil, err
	}

	rates := make(map[string]decimal.Decimal)
	for _, lp := range out.LastPrices {
		in, ok := byFIGI[lp.FIGI]
		if !ok {
			continue
		}
		price := lp.Price.decimal()
		if price.IsZero() {
			continue
		}
		// prices are per nominal, usually one unit of the foreign currency
		if nominal := in.Nominal.decimal(); !nominal.IsZero() {
			price = price.Div(nominal)
		}
		rates[strings.ToUpper(in.ISOCurrency)] = price
	}
	return rates, nil
}

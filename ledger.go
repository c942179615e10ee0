package invest

import (
	"sort"
	"time"
)

// OperationKind classifies one executed operation.
type OperationKind int

const (
	Other OperationKind = iota
	Buy
	Sell
	Dividend
	Coupon
	Fee
	Tax
)

func (k OperationKind) String() string {
	switch k {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	case Dividend:
		return "dividend"
	case Coupon:
		return "coupon"
	case Fee:
		return "fee"
	case Tax:
		return "tax"
	default:
		return "other"
	}
}

// OperationRecord is one executed operation of a single instrument, exactly
// as reported by the API. Payment carries its own sign: negative for money
// leaving the account, positive for money entering it.
type OperationRecord struct {
	ID          string
	Time        time.Time
	Kind        OperationKind
	Description string
	State       string
	Payment     Money
	Price       Money
	Quantity    Quantity
	// QuantityRest is the still-unfilled part of the order at execution time.
	QuantityRest Quantity
}

// LedgerEntry is an operation annotated with the cumulative payment up to and
// including it.
type LedgerEntry struct {
	OperationRecord
	RunningTotal Money
}

// HistoryLedger is the chronological, running-total view of one instrument's
// operation history.
type HistoryLedger struct {
	Entries []LedgerEntry
	// Total is the cumulative signed payment of the whole history.
	Total Money
}

// BuildLedger folds an operation stream into a ledger: duplicates (same
// operation id) are dropped, entries are sorted by timestamp ascending with a
// stable sort so that same-instant records, like paired buy/fee events, keep
// their input order. The running total accumulates each payment's own sign;
// the engine never re-derives sign from the operation kind.
//
// An empty stream yields an empty ledger with a zero total, not an error.
func BuildLedger(ops []OperationRecord) (HistoryLedger, error) {
	deduped := make([]OperationRecord, 0, len(ops))
	seen := make(map[string]bool, len(ops))
	for _, op := range ops {
		if op.ID != "" && seen[op.ID] {
			continue
		}
		seen[op.ID] = true
		deduped = append(deduped, op)
	}
	sort.SliceStable(deduped, func(i, j int) bool {
		return deduped[i].Time.Before(deduped[j].Time)
	})

	ledger := HistoryLedger{Entries: make([]LedgerEntry, 0, len(deduped))}
	total := Money{}
	for _, op := range deduped {
		var err error
		if total, err = total.Add(op.Payment); err != nil {
			return HistoryLedger{}, err
		}
		ledger.Entries = append(ledger.Entries, LedgerEntry{OperationRecord: op, RunningTotal: total})
	}
	ledger.Total = total
	return ledger, nil
}

// BuildNonEmptyLedger is BuildLedger for callers that consider an empty
// history an error.
func BuildNonEmptyLedger(ops []OperationRecord) (HistoryLedger, error) {
	ledger, err := BuildLedger(ops)
	if err != nil {
		return HistoryLedger{}, err
	}
	if len(ledger.Entries) == 0 {
		return HistoryLedger{}, ErrEmptyHistory
	}
	return ledger, nil
}

// Accruals reduces an operation stream into the accrued income and cost
// totals carried by a Paper: dividends and coupons on one side, fees and
// taxes on the other. Payments keep their own sign, so dividend taxes
// reported as negative payments reduce the fee total, not the income.
func Accruals(ops []OperationRecord, currency string) (dividends, fees Money) {
	dividends = Zero(currency)
	fees = Zero(currency)
	for _, op := range ops {
		if op.Payment.Currency() != currency {
			continue
		}
		switch op.Kind {
		case Dividend, Coupon:
			dividends, _ = dividends.Add(op.Payment)
		case Fee, Tax:
			fees, _ = fees.Add(op.Payment)
		}
	}
	return dividends, fees
}

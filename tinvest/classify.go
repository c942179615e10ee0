package tinvest

import (
	"strings"

	"github.com/etnz/invest"
)

// classify maps the API's operation type to the engine's operation kind.
func classify(operationType string) invest.OperationKind {
	switch operationType {
	case "OPERATION_TYPE_BUY", "OPERATION_TYPE_BUY_CARD", "OPERATION_TYPE_BUY_MARGIN":
		return invest.Buy
	case "OPERATION_TYPE_SELL", "OPERATION_TYPE_SELL_MARGIN":
		return invest.Sell
	case "OPERATION_TYPE_DIVIDEND", "OPERATION_TYPE_OVERNIGHT":
		return invest.Dividend
	case "OPERATION_TYPE_COUPON":
		return invest.Coupon
	case "OPERATION_TYPE_BROKER_FEE", "OPERATION_TYPE_SERVICE_FEE",
		"OPERATION_TYPE_MARGIN_FEE", "OPERATION_TYPE_SUCCESS_FEE",
		"OPERATION_TYPE_TRACK_MFEE", "OPERATION_TYPE_TRACK_PFEE",
		"OPERATION_TYPE_CASH_FEE", "OPERATION_TYPE_OUT_FEE",
		"OPERATION_TYPE_OUT_STAMP_DUTY", "OPERATION_TYPE_ADVICE_FEE",
		"OPERATION_TYPE_OUTPUT_PENALTY":
		return invest.Fee
	case "OPERATION_TYPE_TAX", "OPERATION_TYPE_DIVIDEND_TAX",
		"OPERATION_TYPE_DIVIDEND_TAX_PROGRESSIVE", "OPERATION_TYPE_BOND_TAX",
		"OPERATION_TYPE_BOND_TAX_PROGRESSIVE", "OPERATION_TYPE_BENEFIT_TAX",
		"OPERATION_TYPE_BENEFIT_TAX_PROGRESSIVE":
		return invest.Tax
	default:
		return invest.Other
	}
}

// state maps the API's operation state to a short human label.
func state(operationState string) string {
	switch operationState {
	case "OPERATION_STATE_EXECUTED":
		return "executed"
	case "OPERATION_STATE_CANCELED":
		return "canceled"
	case "OPERATION_STATE_PROGRESS":
		return "in progress"
	default:
		return strings.ToLower(strings.TrimPrefix(operationState, "OPERATION_STATE_"))
	}
}

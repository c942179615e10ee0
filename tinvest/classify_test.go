package tinvest

import (
	"testing"

	"github.com/etnz/invest"
)

func TestClassify(t *testing.T) {
	testCases := []struct {
		operationType string
		want          invest.OperationKind
	}{
		{"OPERATION_TYPE_BUY", invest.Buy},
		{"OPERATION_TYPE_BUY_CARD", invest.Buy},
		{"OPERATION_TYPE_SELL", invest.Sell},
		{"OPERATION_TYPE_DIVIDEND", invest.Dividend},
		{"OPERATION_TYPE_COUPON", invest.Coupon},
		{"OPERATION_TYPE_BROKER_FEE", invest.Fee},
		{"OPERATION_TYPE_SERVICE_FEE", invest.Fee},
		{"OPERATION_TYPE_OUT_STAMP_DUTY", invest.Fee},
		{"OPERATION_TYPE_TAX", invest.Tax},
		{"OPERATION_TYPE_DIVIDEND_TAX", invest.Tax},
		{"OPERATION_TYPE_INPUT", invest.Other},
		{"", invest.Other},
	}

	for _, tc := range testCases {
		if got := classify(tc.operationType); got != tc.want {
			t.Errorf("classify(%q) = %v, want %v", tc.operationType, got, tc.want)
		}
	}
}

func TestState(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"OPERATION_STATE_EXECUTED", "executed"},
		{"OPERATION_STATE_CANCELED", "canceled"},
		{"OPERATION_STATE_PROGRESS", "in progress"},
		{"OPERATION_STATE_UNSPECIFIED", "unspecified"},
	}
	for _, tc := range testCases {
		if got := state(tc.in); got != tc.want {
			t.Errorf("state(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

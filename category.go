package invest

import "fmt"

// Category is the instrument classification used to group holdings.
type Category int

const (
	Share Category = iota
	Bond
	Etf
	Currency
	Future
)

// Categories lists all categories in report order.
var Categories = []Category{Share, Bond, Etf, Currency, Future}

func (c Category) String() string {
	switch c {
	case Share:
		return "Shares"
	case Bond:
		return "Bonds"
	case Etf:
		return "Etfs"
	case Currency:
		return "Currencies"
	case Future:
		return "Futures"
	default:
		return "unknown"
	}
}

// ParseCategory parses an instrument type as reported by the API.
func ParseCategory(s string) (Category, error) {
	switch s {
	case "share":
		return Share, nil
	case "bond":
		return Bond, nil
	case "etf":
		return Etf, nil
	case "currency":
		return Currency, nil
	case "futures":
		return Future, nil
	default:
		return 0, fmt.Errorf("unknown instrument type: %q", s)
	}
}

package invest

// Income is a profit or loss paired with its yield percentage. It is always
// derived from a current value and a cost basis sharing one currency, never
// constructed field by field.
type Income struct {
	absolute Money
	percent  Percent
}

// NewIncome derives the income of holding something bought for costBasis and
// now worth current. A zero cost basis yields a zero percentage rather than a
// division error.
func NewIncome(current, costBasis Money) (Income, error) {
	absolute, err := current.Sub(costBasis)
	if err != nil {
		return Income{}, err
	}
	var percent Percent
	if !costBasis.Amount().IsZero() {
		percent = Percent{value: absolute.Amount().Div(costBasis.Amount()).Mul(hundred)}
	}
	return Income{absolute: absolute, percent: percent}, nil
}

func (i Income) Absolute() Money    { return i.absolute }
func (i Income) Percent() Percent   { return i.percent }
func (i Income) IsZero() bool       { return i.absolute.IsZero() }
func (i Income) IsNegative() bool   { return i.absolute.IsNegative() }

func (i Income) String() string {
	return i.absolute.SignedString() + " (" + i.percent.SignedString() + ")"
}

package slot

import (
	"fmt"
	"math"

	"fluttering_riches/internal/model"

	"github.com/shopspring/decimal"
)

var maxCredit = decimal.NewFromInt(math.MaxInt64)

// TotalMultiplier суммирует множители выигрышных символов, по одному на линию.
// Символы, которых нет в таблице, ничего не добавляют
func TotalMultiplier(symbols []string, table model.SymbolTable) decimal.Decimal {
	total := decimal.Zero
	for _, sym := range symbols {
		if m, ok := table.Multiplier(sym); ok {
			total = total.Add(m)
		}
	}
	return total
}

// Payout - выплата за спин: ставка * суммарный множитель линий
func Payout(symbols []string, table model.SymbolTable, bet int64) decimal.Decimal {
	return decimal.NewFromInt(bet).Mul(TotalMultiplier(symbols, table))
}

// Credit усекает выплату до единицы кошелька
func Credit(payout decimal.Decimal) (int64, error) {
	credit := payout.Truncate(0)
	if credit.GreaterThan(maxCredit) {
		return 0, fmt.Errorf("%w: payout %s", model.ErrBalanceOverflow, payout)
	}
	return credit.IntPart(), nil
}

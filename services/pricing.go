package services

import (
	"github.com/shinyuna/nuber-eats-back/entity"
)

// ComputeItemPrice prices one order line: the dish base price plus
// whatever the selections add. Selections match dish options by name,
// case-sensitive; a selection naming an option or choice the dish does
// not have contributes nothing and is not an error. A flat option price
// wins over choice prices. All amounts are in the smallest currency
// unit, no floats anywhere.
func ComputeItemPrice(dish *entity.Dish, selections []entity.ItemSelection) int64 {
	price := dish.Price

	for _, sel := range selections {
		opt, ok := dish.Option(sel.Name)
		if !ok {
			continue
		}
		if opt.Price != 0 {
			price += opt.Price
			continue
		}
		for _, choice := range opt.Choices {
			if choice.Price == 0 {
				continue
			}
			for _, picked := range sel.Choices {
				if picked == choice.Name {
					price += choice.Price
					break
				}
			}
		}
	}

	return price
}

// ComputeOrderTotal sums already-priced lines. Order totals are frozen
// at creation, so this is only ever called on line prices computed in
// the same request.
func ComputeOrderTotal(linePrices []int64) int64 {
	var total int64
	for _, p := range linePrices {
		total += p
	}
	return total
}

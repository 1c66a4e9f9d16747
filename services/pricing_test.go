package services

import (
	"testing"

	"github.com/shinyuna/nuber-eats-back/entity"
)

func dishWithOptions() *entity.Dish {
	return &entity.Dish{
		Name:  "Bibimbap",
		Price: 8000,
		Options: []entity.DishOption{
			{Name: "Size", Price: 2000},
			{Name: "Toppings", Choices: []entity.DishChoice{
				{Name: "Egg", Price: 500},
				{Name: "Cheese", Price: 700},
				{Name: "Seaweed"}, // free
			}},
			{Name: "Spice Level", Choices: []entity.DishChoice{
				{Name: "Mild"}, {Name: "Hot"},
			}},
		},
	}
}

func TestComputeItemPriceNoSelections(t *testing.T) {
	d := dishWithOptions()
	if got := ComputeItemPrice(d, nil); got != 8000 {
		t.Fatalf("expected base price 8000, got %d", got)
	}
}

func TestComputeItemPriceFlatOptionDelta(t *testing.T) {
	d := &entity.Dish{
		Price:   10000,
		Options: []entity.DishOption{{Name: "Size", Price: 2000}},
	}
	sels := []entity.ItemSelection{{Name: "Size"}}
	if got := ComputeItemPrice(d, sels); got != 12000 {
		t.Fatalf("expected 12000, got %d", got)
	}
}

func TestComputeItemPriceChoiceDeltas(t *testing.T) {
	d := dishWithOptions()
	sels := []entity.ItemSelection{
		{Name: "Toppings", Choices: []string{"Egg", "Cheese"}},
	}
	if got := ComputeItemPrice(d, sels); got != 8000+500+700 {
		t.Fatalf("expected 9200, got %d", got)
	}
}

func TestComputeItemPriceFreeOptionContributesZero(t *testing.T) {
	d := dishWithOptions()
	sels := []entity.ItemSelection{
		{Name: "Spice Level", Choices: []string{"Hot"}},
	}
	if got := ComputeItemPrice(d, sels); got != 8000 {
		t.Fatalf("expected 8000, got %d", got)
	}
}

func TestComputeItemPriceFlatDeltaWinsOverChoices(t *testing.T) {
	d := &entity.Dish{
		Price: 5000,
		Options: []entity.DishOption{
			{Name: "Combo", Price: 1500, Choices: []entity.DishChoice{
				{Name: "Fries", Price: 900},
			}},
		},
	}
	sels := []entity.ItemSelection{{Name: "Combo", Choices: []string{"Fries"}}}
	if got := ComputeItemPrice(d, sels); got != 6500 {
		t.Fatalf("flat delta should shadow choice prices, got %d", got)
	}
}

func TestComputeItemPriceIgnoresUnknownOption(t *testing.T) {
	d := dishWithOptions()
	sels := []entity.ItemSelection{{Name: "Nope", Choices: []string{"Egg"}}}
	if got := ComputeItemPrice(d, sels); got != 8000 {
		t.Fatalf("unknown option must contribute nothing, got %d", got)
	}
}

func TestComputeItemPriceIgnoresUnknownChoice(t *testing.T) {
	d := dishWithOptions()
	sels := []entity.ItemSelection{{Name: "Toppings", Choices: []string{"Bacon"}}}
	if got := ComputeItemPrice(d, sels); got != 8000 {
		t.Fatalf("unknown choice must contribute nothing, got %d", got)
	}
}

func TestComputeItemPriceCaseSensitiveMatch(t *testing.T) {
	d := dishWithOptions()
	sels := []entity.ItemSelection{{Name: "toppings", Choices: []string{"Egg"}}}
	if got := ComputeItemPrice(d, sels); got != 8000 {
		t.Fatalf("matching is case-sensitive, got %d", got)
	}
}

// Each additional priced choice can only raise the price, never lower it.
func TestComputeItemPriceMonotonic(t *testing.T) {
	d := dishWithOptions()
	choices := []string{"Egg", "Cheese"}

	prev := ComputeItemPrice(d, nil)
	for i := 1; i <= len(choices); i++ {
		sels := []entity.ItemSelection{{Name: "Toppings", Choices: choices[:i]}}
		got := ComputeItemPrice(d, sels)
		if got < prev {
			t.Fatalf("price decreased from %d to %d with %d choices", prev, got, i)
		}
		prev = got
	}
	if prev < d.Price {
		t.Fatalf("total %d below base price %d", prev, d.Price)
	}
}

func TestComputeOrderTotal(t *testing.T) {
	if got := ComputeOrderTotal([]int64{12000, 9200}); got != 21200 {
		t.Fatalf("expected 21200, got %d", got)
	}
	if got := ComputeOrderTotal(nil); got != 0 {
		t.Fatalf("expected 0 for empty order, got %d", got)
	}
}

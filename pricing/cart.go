package pricing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	SizeOption   = "size"
	ExtraOption  = "extra"
	ExtrasOption = "extras"
)

var (
	ErrUnknownSize   = errors.New("unknown size")
	ErrUnknownExtra  = errors.New("unknown extra")
	ErrNotAvailable  = errors.New("food is not available")
	ErrInvalidAmount = errors.New("quantity must be at least 1 and price must not be negative")
	ErrPrecision     = errors.New("price must not have more than 2 decimal places")
)

type OptionValue struct {
	Value string           `json:"value"`
	Price *decimal.Decimal `json:"price,omitempty"`
}

type Option struct {
	Name   string        `json:"name"`
	Values []OptionValue `json:"values"`
}

// FindOption matches option names case-insensitively.
func FindOption(options []Option, name string) (Option, bool) {
	for _, opt := range options {
		if strings.EqualFold(strings.TrimSpace(opt.Name), name) {
			return opt, true
		}
	}
	return Option{}, false
}

type ExtraPrice struct {
	Name  string
	Price *decimal.Decimal
}

// Item is everything the engine needs to price one Food.
type Item struct {
	FoodID          int
	Name            string
	Price           decimal.Decimal
	Available       bool
	Options         []Option
	CategoryOptions []Option
	CategoryExtras  []ExtraPrice
}

type Selection struct {
	Size     string   `json:"size"`
	Extras   []string `json:"extras"`
	Quantity int      `json:"quantity"`
	Comment  string   `json:"comment"`
}

type CartItem struct {
	FoodID   int             `json:"foodId,omitempty"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Options  []Option        `json:"options,omitempty"`
	Comment  string          `json:"comment"`
}

// Compose prices a selection and snapshots the chosen options into a CartItem.
func Compose(item Item, sel Selection) (CartItem, error) {
	if !item.Available {
		return CartItem{}, ErrNotAvailable
	}

	unit := item.Price
	var snapshot []Option

	sizeLabel := strings.TrimSpace(sel.Size)
	if sizeLabel != "" {
		sizeOpt, ok := FindOption(item.Options, SizeOption)
		if !ok {
			return CartItem{}, fmt.Errorf("%w: %q", ErrUnknownSize, sizeLabel)
		}
		chosen, ok := findValue(sizeOpt.Values, sizeLabel)
		if !ok {
			return CartItem{}, fmt.Errorf("%w: %q", ErrUnknownSize, sizeLabel)
		}
		if chosen.Price != nil {
			unit = *chosen.Price
		}
		snapshot = append(snapshot, Option{Name: SizeOption, Values: []OptionValue{chosen}})
	}

	if len(sel.Extras) > 0 {
		tier, hasTier := resolveTier(item.CategoryOptions, sizeLabel)
		extras := Option{Name: ExtraOption}
		for _, name := range sel.Extras {
			own, ok := item.extraPrice(name)
			if !ok {
				return CartItem{}, fmt.Errorf("%w: %q", ErrUnknownExtra, name)
			}
			price := decimal.Zero
			switch {
			case hasTier:
				price = tier
			case own != nil:
				price = *own
			}
			unit = unit.Add(price)
			extras.Values = append(extras.Values, OptionValue{Value: strings.TrimSpace(name), Price: &price})
		}
		snapshot = append(snapshot, extras)
	}

	return CartItem{
		FoodID:   item.FoodID,
		Name:     item.Name,
		Quantity: clamp(sel.Quantity),
		Price:    Round2(unit),
		Options:  snapshot,
		Comment:  strings.TrimSpace(sel.Comment),
	}, nil
}

func (it Item) extraPrice(name string) (*decimal.Decimal, bool) {
	name = strings.TrimSpace(name)
	for _, e := range it.CategoryExtras {
		if strings.EqualFold(e.Name, name) {
			return e.Price, true
		}
	}
	if opt, ok := FindOption(it.Options, ExtraOption); ok {
		if v, ok := findValue(opt.Values, name); ok {
			return v.Price, true
		}
	}
	return nil, false
}

// resolveTier returns the category-wide extra price for the chosen size: the first
// "extras" value whose label occurs in the size label.
func resolveTier(categoryOptions []Option, sizeLabel string) (decimal.Decimal, bool) {
	if sizeLabel == "" {
		return decimal.Zero, false
	}
	opt, ok := FindOption(categoryOptions, ExtrasOption)
	if !ok {
		return decimal.Zero, false
	}
	for _, v := range opt.Values {
		if v.Price == nil {
			continue
		}
		if containsFold(sizeLabel, v.Value) {
			return *v.Price, true
		}
	}
	return decimal.Zero, false
}

func findValue(values []OptionValue, label string) (OptionValue, bool) {
	for _, v := range values {
		if strings.EqualFold(strings.TrimSpace(v.Value), label) {
			return v, true
		}
	}
	return OptionValue{}, false
}

func containsFold(target, search string) bool {
	search = strings.TrimSpace(search)
	if target == "" || search == "" {
		return false
	}
	return strings.Contains(strings.ToLower(target), strings.ToLower(search))
}

func clamp(q int) int {
	if q < 1 {
		return 1
	}
	return q
}

func (c CartItem) LineTotal() decimal.Decimal {
	return Round2(c.Price.Mul(decimal.NewFromInt(int64(clamp(c.Quantity)))))
}

func (c *CartItem) Increment() {
	c.Quantity = clamp(c.Quantity) + 1
}

// Decrement never goes below one.
func (c *CartItem) Decrement() {
	c.Quantity = clamp(c.Quantity - 1)
}

func (c *CartItem) SetQuantity(q int) {
	c.Quantity = clamp(q)
}

func (c CartItem) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("cart item name is required")
	}
	if c.Quantity < 1 || c.Price.IsNegative() {
		return fmt.Errorf("%w: %s", ErrInvalidAmount, c.Name)
	}
	if !c.Price.Equal(Round2(c.Price)) {
		return fmt.Errorf("%w: %s", ErrPrecision, c.Name)
	}
	return nil
}

// Selection recovers the choices recorded in the snapshot by Compose, so a
// submitted line can be priced again against the catalog.
func (c CartItem) Selection() Selection {
	sel := Selection{Quantity: c.Quantity, Comment: c.Comment}
	if size, ok := FindOption(c.Options, SizeOption); ok && len(size.Values) > 0 {
		sel.Size = size.Values[0].Value
	}
	if extras, ok := FindOption(c.Options, ExtraOption); ok {
		for _, v := range extras.Values {
			sel.Extras = append(sel.Extras, v.Value)
		}
	}
	return sel
}

// CartTotal sums line totals; an empty cart is zero.
func CartTotal(items []CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.LineTotal())
	}
	return Round2(total)
}

type Line struct {
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

type Totals struct {
	Lines []Line          `json:"lines"`
	Total decimal.Decimal `json:"total"`
}

func Summarize(items []CartItem) Totals {
	totals := Totals{Lines: make([]Line, 0, len(items))}
	for _, it := range items {
		totals.Lines = append(totals.Lines, Line{
			Name:      it.Name,
			Quantity:  clamp(it.Quantity),
			UnitPrice: it.Price,
			LineTotal: it.LineTotal(),
		})
	}
	totals.Total = CartTotal(items)
	return totals
}

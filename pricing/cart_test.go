package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func dp(s string) *decimal.Decimal {
	v := d(s)
	return &v
}

func margherita() Item {
	return Item{
		FoodID:    1,
		Name:      "Pizza Margherita",
		Price:     d("8.00"),
		Available: true,
		Options: []Option{
			{Name: "size", Values: []OptionValue{
				{Value: "30cm", Price: dp("8.00")},
				{Value: "40cm", Price: dp("12.00")},
			}},
		},
		CategoryOptions: []Option{
			{Name: "Extras", Values: []OptionValue{
				{Value: "30cm", Price: dp("1.00")},
				{Value: "40cm", Price: dp("1.50")},
			}},
		},
		CategoryExtras: []ExtraPrice{
			{Name: "Salami", Price: dp("0.80")},
			{Name: "Oliven", Price: dp("0.60")},
			{Name: "Zwiebeln"},
		},
	}
}

func TestCompose(t *testing.T) {
	tests := []struct {
		name     string
		item     Item
		sel      Selection
		wantUnit string
		wantLine string
		wantQty  int
		wantErr  error
	}{
		{
			name:     "size replaces base price",
			item:     margherita(),
			sel:      Selection{Size: "40cm", Quantity: 1},
			wantUnit: "12.00",
			wantLine: "12.00",
			wantQty:  1,
		},
		{
			name:     "tier price applies to extras",
			item:     margherita(),
			sel:      Selection{Size: "40cm", Extras: []string{"Salami"}, Quantity: 2},
			wantUnit: "13.50",
			wantLine: "27.00",
			wantQty:  2,
		},
		{
			name:     "tier price is uniform across extras",
			item:     margherita(),
			sel:      Selection{Size: "30cm", Extras: []string{"Salami", "Oliven", "Zwiebeln"}, Quantity: 1},
			wantUnit: "11.00",
			wantLine: "11.00",
			wantQty:  1,
		},
		{
			name: "extras fall back to own price without tier",
			item: func() Item {
				it := margherita()
				it.CategoryOptions = nil
				return it
			}(),
			sel:      Selection{Size: "30cm", Extras: []string{"salami", "Zwiebeln"}, Quantity: 1},
			wantUnit: "8.80",
			wantLine: "8.80",
			wantQty:  1,
		},
		{
			name:     "no size keeps base price and gets no tier",
			item:     margherita(),
			sel:      Selection{Extras: []string{"Oliven"}, Quantity: 1},
			wantUnit: "8.60",
			wantLine: "8.60",
			wantQty:  1,
		},
		{
			name:     "food without size option",
			item:     Item{Name: "Cola", Price: d("2.50"), Available: true},
			sel:      Selection{Quantity: 3},
			wantUnit: "2.50",
			wantLine: "7.50",
			wantQty:  3,
		},
		{
			name:     "quantity is clamped",
			item:     Item{Name: "Cola", Price: d("2.50"), Available: true},
			sel:      Selection{Quantity: -4},
			wantUnit: "2.50",
			wantLine: "2.50",
			wantQty:  1,
		},
		{
			name: "size value substring matches tier label",
			item: func() Item {
				it := margherita()
				it.Options[0].Values = append(it.Options[0].Values, OptionValue{Value: "Familie 40CM"})
				return it
			}(),
			sel:      Selection{Size: "Familie 40CM", Extras: []string{"Oliven"}, Quantity: 1},
			wantUnit: "9.50",
			wantLine: "9.50",
			wantQty:  1,
		},
		{
			name: "food level extra option",
			item: Item{Name: "Salat", Price: d("6.00"), Available: true, Options: []Option{
				{Name: "extra", Values: []OptionValue{{Value: "Feta", Price: dp("1.20")}}},
			}},
			sel:      Selection{Extras: []string{"Feta"}, Quantity: 1},
			wantUnit: "7.20",
			wantLine: "7.20",
			wantQty:  1,
		},
		{
			name:    "unknown size",
			item:    margherita(),
			sel:     Selection{Size: "50cm", Quantity: 1},
			wantErr: ErrUnknownSize,
		},
		{
			name:    "unknown extra",
			item:    margherita(),
			sel:     Selection{Size: "30cm", Extras: []string{"Ananas"}, Quantity: 1},
			wantErr: ErrUnknownExtra,
		},
		{
			name: "unavailable food",
			item: func() Item {
				it := margherita()
				it.Available = false
				return it
			}(),
			sel:     Selection{Quantity: 1},
			wantErr: ErrNotAvailable,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			got, err := Compose(testCase.item, testCase.sel)
			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, d(testCase.wantUnit).Equal(got.Price), "unit %s", got.Price)
			assert.True(t, d(testCase.wantLine).Equal(got.LineTotal()), "line %s", got.LineTotal())
			assert.Equal(t, testCase.wantQty, got.Quantity)
		})
	}
}

func TestCompose_SnapshotsOptions(t *testing.T) {
	got, err := Compose(margherita(), Selection{Size: "40cm", Extras: []string{"Salami"}, Quantity: 1, Comment: " ohne Zwiebeln "})
	require.NoError(t, err)

	require.Len(t, got.Options, 2)
	assert.Equal(t, "size", got.Options[0].Name)
	assert.Equal(t, "40cm", got.Options[0].Values[0].Value)
	assert.Equal(t, "extra", got.Options[1].Name)
	assert.Equal(t, "Salami", got.Options[1].Values[0].Value)
	assert.True(t, d("1.50").Equal(*got.Options[1].Values[0].Price))
	assert.Equal(t, "ohne Zwiebeln", got.Comment)
}

func TestQuantityAdjustment(t *testing.T) {
	item := CartItem{Name: "Cola", Price: d("2.50"), Quantity: 1}

	item.Decrement()
	assert.Equal(t, 1, item.Quantity)

	item.Increment()
	item.Increment()
	assert.Equal(t, 3, item.Quantity)

	item.Decrement()
	assert.Equal(t, 2, item.Quantity)

	item.SetQuantity(0)
	assert.Equal(t, 1, item.Quantity)
}

func TestCartTotal(t *testing.T) {
	assert.True(t, decimal.Zero.Equal(CartTotal(nil)))

	items := []CartItem{
		{Name: "Pizza", Price: d("13.50"), Quantity: 2},
		{Name: "Cola", Price: d("2.50"), Quantity: 3},
		{Name: "Tiramisu", Price: d("4.333"), Quantity: 1},
	}
	assert.Equal(t, "38.83", CartTotal(items).StringFixed(2))

	totals := Summarize(items)
	require.Len(t, totals.Lines, 3)
	assert.Equal(t, "27.00", totals.Lines[0].LineTotal.StringFixed(2))
	assert.True(t, totals.Total.Equal(CartTotal(items)))
}

func TestCartItem_Validate(t *testing.T) {
	assert.NoError(t, CartItem{Name: "Cola", Price: d("2.50"), Quantity: 1}.Validate())
	assert.Error(t, CartItem{Price: d("2.50"), Quantity: 1}.Validate())
	assert.ErrorIs(t, CartItem{Name: "Cola", Price: d("2.50"), Quantity: 0}.Validate(), ErrInvalidAmount)
	assert.ErrorIs(t, CartItem{Name: "Cola", Price: d("-1"), Quantity: 1}.Validate(), ErrInvalidAmount)
}

func TestCartItem_ValidateRejectsSubCentPrices(t *testing.T) {
	assert.NoError(t, CartItem{Name: "Cola", Price: d("2.500"), Quantity: 1}.Validate())
	assert.ErrorIs(t, CartItem{Name: "Tiramisu", Price: d("4.005"), Quantity: 3}.Validate(), ErrPrecision)
}

func TestCartItem_SelectionRoundTrip(t *testing.T) {
	composed, err := Compose(margherita(), Selection{Size: "40cm", Extras: []string{"Salami", "Zwiebeln"}, Quantity: 2, Comment: "gut durch"})
	require.NoError(t, err)

	sel := composed.Selection()
	assert.Equal(t, "40cm", sel.Size)
	assert.Equal(t, []string{"Salami", "Zwiebeln"}, sel.Extras)
	assert.Equal(t, 2, sel.Quantity)
	assert.Equal(t, "gut durch", sel.Comment)

	again, err := Compose(margherita(), sel)
	require.NoError(t, err)
	assert.True(t, composed.Price.Equal(again.Price))
	assert.Equal(t, composed.LineTotal().String(), again.LineTotal().String())
}

func TestCartItem_SelectionWithoutOptions(t *testing.T) {
	sel := CartItem{Name: "Cola", Price: d("2.50"), Quantity: 3}.Selection()

	assert.Empty(t, sel.Size)
	assert.Empty(t, sel.Extras)
	assert.Equal(t, 3, sel.Quantity)
}

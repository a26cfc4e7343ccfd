package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffectivePrice(t *testing.T) {
	p := Product{Price: 100}
	assert.Equal(t, 100.0, p.EffectivePrice())

	p.Discount = 25
	assert.Equal(t, 75.0, p.EffectivePrice())

	p.Discount = 100
	assert.Equal(t, 0.0, p.EffectivePrice())
}

func TestDefaultVariant(t *testing.T) {
	p := Product{Variants: []Variant{
		{Color: "red", PriceID: "price_1"},
		{Color: "blue", PriceID: "price_2"},
	}}

	v := p.DefaultVariant()
	assert.NotNil(t, v)
	assert.Equal(t, "red", v.Color)

	empty := Product{}
	assert.Nil(t, empty.DefaultVariant())
}

func TestStatusTransitions(t *testing.T) {
	assert.True(t, StatusVisible.CanTransitionTo(StatusHide))
	assert.True(t, StatusHide.CanTransitionTo(StatusVisible))
	assert.True(t, StatusVisible.CanTransitionTo(StatusDeleted))
	assert.True(t, StatusHide.CanTransitionTo(StatusDeleted))

	// DELETED is terminal
	assert.False(t, StatusDeleted.CanTransitionTo(StatusVisible))
	assert.False(t, StatusDeleted.CanTransitionTo(StatusHide))
	assert.True(t, StatusDeleted.CanTransitionTo(StatusDeleted))
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus("VISIBLE"))
	assert.True(t, ValidStatus("HIDE"))
	assert.True(t, ValidStatus("DELETED"))
	assert.False(t, ValidStatus("visible"))
	assert.False(t, ValidStatus(""))
}

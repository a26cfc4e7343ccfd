package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCartLineSubtotal(t *testing.T) {
	line := &CartLine{Price: 90, Quantity: 3}
	assert.Equal(t, 270.0, line.Subtotal())
}

func TestCartLineKey(t *testing.T) {
	line := &CartLine{ProductID: "p1", Size: "Large", VariantID: "price_1"}
	assert.Equal(t, LineKey{ProductID: "p1", Size: "Large", VariantID: "price_1"}, line.Key())
}

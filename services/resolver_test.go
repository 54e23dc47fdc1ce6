package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveSellerPrecedence(t *testing.T) {
	// Cart beats session beats profile.
	resolved, err := ResolveSeller(7, 8, 9)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), resolved.CatererID)
	assert.Equal(t, SellerFromCart, resolved.Source)

	resolved, err = ResolveSeller(0, 8, 9)
	assert.NoError(t, err)
	assert.Equal(t, uint(8), resolved.CatererID)
	assert.Equal(t, SellerFromSession, resolved.Source)

	resolved, err = ResolveSeller(0, 0, 9)
	assert.NoError(t, err)
	assert.Equal(t, uint(9), resolved.CatererID)
	assert.Equal(t, SellerFromProfile, resolved.Source)
}

func TestResolveSellerNothingResolves(t *testing.T) {
	_, err := ResolveSeller(0, 0, 0)
	assert.ErrorIs(t, err, ErrNoSeller)
}

package game

import "errors"

var (
	// ErrUnsupportedVariant is returned when a weapon kind or shop item variant is not recognized
	ErrUnsupportedVariant = errors.New("unsupported variant")

	// ErrInsufficientGold is returned when a purchase costs more than the player holds
	ErrInsufficientGold = errors.New("insufficient gold")

	// ErrInvalidPurchase is returned for a purchase without a buyer, without an item or for an empty shop slot
	ErrInvalidPurchase = errors.New("invalid purchase")
)

package services

// Seller sources, in precedence order. The basket's own caterer id
// wins because a basket can outlive the screen that set the session
// value; trusting the session there could mix caterers.
const (
	SellerFromCart    = "cart"
	SellerFromSession = "session"
	SellerFromProfile = "profile"
)

// ResolvedSeller tags a caterer id with the source that supplied it.
type ResolvedSeller struct {
	CatererID uint   `json:"caterer_id"`
	Source    string `json:"source"`
}

// ResolveSeller picks the caterer for the active basket. Zero means a
// source has no answer. If nothing resolves, checkout must not
// proceed and the caller is sent back to caterer selection.
func ResolveSeller(cartCatererID, sessionCatererID, profileCatererID uint) (ResolvedSeller, error) {
	switch {
	case cartCatererID != 0:
		return ResolvedSeller{CatererID: cartCatererID, Source: SellerFromCart}, nil
	case sessionCatererID != 0:
		return ResolvedSeller{CatererID: sessionCatererID, Source: SellerFromSession}, nil
	case profileCatererID != 0:
		return ResolvedSeller{CatererID: profileCatererID, Source: SellerFromProfile}, nil
	default:
		return ResolvedSeller{}, ErrNoSeller
	}
}

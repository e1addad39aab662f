package market

// unitCostCacheSize bounds the (outfit, wear) unit-cost cache. Wear levels
// cluster tightly in practice, so a small cache covers nearly all lookups.
const unitCostCacheSize = 4096

// ==================== Error Messages ====================

const (
	ErrMsgHolderNotFound    = "holder not found"
	ErrMsgInsufficientStock = "insufficient stock"
	ErrMsgInvalidQuantity   = "quantity must be positive"
	ErrMsgSameHolder        = "source and destination holders are the same"
)

// ==================== Log Messages ====================

const (
	LogMsgHolderCreated = "Holder created"
	LogMsgOutfitsBought = "Outfits bought"
	LogMsgOutfitsSold   = "Outfits sold"
	LogMsgPlundered     = "Outfits plundered"
	LogMsgFleetAged     = "Fleet aged"
)

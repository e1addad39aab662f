package config

// Default configuration values
const (
	DefaultPort        = "8080"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultEnvironment = "dev"
	DefaultServiceName = "outfit-ledger"
	DefaultVersion     = "dev"
	DefaultOutfitsPath = "configs/outfits.json"
)

// Default cost-curve values, mirroring internal/depreciation
const (
	DefaultDepreciationMin  = 0.40
	DefaultDepreciationMax  = 0.90
	DefaultDepreciationRate = 0.0020
)

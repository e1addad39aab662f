package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameOutfitsBought      = "outfits_bought_total"
	MetricNameOutfitsSold        = "outfits_sold_total"
	MetricNameOutfitsPlundered   = "outfits_plundered_total"
	MetricNameOutfitsTransferred = "outfits_transferred_total"
	MetricNameWearDaysApplied    = "wear_days_applied_total"
	MetricNameCreditsEarned      = "credits_earned_total"
	MetricNameCreditsSpent       = "credits_spent_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextOutfitsBought      = "Total number of outfit units bought"
	HelpTextOutfitsSold        = "Total number of outfit units sold"
	HelpTextOutfitsPlundered   = "Total number of outfit units plundered"
	HelpTextOutfitsTransferred = "Total number of outfit units transferred between holders"
	HelpTextWearDaysApplied    = "Total wear days applied by fleet aging"
	HelpTextCreditsEarned      = "Total credits earned from selling outfits"
	HelpTextCreditsSpent       = "Total credits spent buying outfits"
)

// ============================================================================
// Label Names
// ============================================================================

const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelOutfit = "outfit"
)

// HTTPLatencyBuckets are the histogram buckets for request duration
var HTTPLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1}

// Package pricing implements the deterministic cost formulas of the eGain
// product catalog and the fixed mapping from numeric-input steps to those
// formulas.
package pricing

import (
	"errors"
	"fmt"
	"strconv"
)

// Category identifies one of the four fixed pricing formulas.
type Category string

const (
	// CategoryResolution bills in blocks of 100 resolutions at $50 per block.
	CategoryResolution Category = "resolution"
	// CategorySession bills in blocks of 1000 session units at $200 per block.
	CategorySession Category = "session"
	// CategoryContactCenter bills $25 flat per named contact center user.
	CategoryContactCenter Category = "contact-center"
	// CategoryEnterprise bills $12.50 flat per named enterprise user.
	CategoryEnterprise Category = "enterprise"
)

// ErrUnknownCategory is returned for a category outside the four enumerants.
// Reaching it indicates a programming error, not bad user input.
var ErrUnknownCategory = errors.New("unknown pricing category")

// Cost computes the monthly total for a category and quantity.
// Quantity is validated upstream (positive whole number); zero still yields a
// defined result of 0 for the block-based categories.
func Cost(category Category, quantity int) (float64, error) {
	switch category {
	case CategoryResolution:
		return float64((quantity + 99) / 100 * 50), nil
	case CategorySession:
		return float64((quantity + 999) / 1000 * 200), nil
	case CategoryContactCenter:
		return float64(quantity * 25), nil
	case CategoryEnterprise:
		return float64(quantity) * 12.50, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
}

// FormatAmount renders an amount as a plain decimal number with no currency
// symbol and no thousands separators. Whole amounts drop the fraction
// (150 -> "150", 37.5 -> "37.5"); the script templates supply the "$".
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Route binds a numeric-input step to its pricing category and the step that
// presents the substituted estimate.
type Route struct {
	Category     Category
	ResultStepID string
}

// routes is the closed dispatch table of recognized numeric-input steps.
var routes = map[string]Route{
	"ai-agent-resolution-input":          {CategoryResolution, "resolution-cost-calculation"},
	"ai-agent-session-input":             {CategorySession, "session-cost-calculation"},
	"knowledge-hub-contact-center-input": {CategoryContactCenter, "contact-center-cost-calculation"},
	"knowledge-hub-enterprise-input":     {CategoryEnterprise, "enterprise-cost-calculation"},
}

// RouteForStep resolves the pricing route for a numeric-input step ID.
func RouteForStep(stepID string) (Route, bool) {
	r, ok := routes[stepID]
	return r, ok
}

// InputStepIDs returns the IDs of all recognized numeric-input steps.
// The script validator uses it to keep the dispatch table and the script in
// lockstep.
func InputStepIDs() []string {
	ids := make([]string, 0, len(routes))
	for id := range routes {
		ids = append(ids, id)
	}
	return ids
}

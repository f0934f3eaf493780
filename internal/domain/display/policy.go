// Package display holds the pure read-side policy the public site relies on:
// which rows are visible, in what order, how many, and at what price.
// Everything here is deterministic given its inputs so it can be tested
// without a database.
package display

import (
	"time"

	"github.com/lamaran-inc/lamaran/internal/domain/pricing"
	"github.com/lamaran-inc/lamaran/internal/domain/showcase"
	"github.com/lamaran-inc/lamaran/internal/domain/testimonial"
)

// PriceQuote is the price a visitor should be shown right now.
// OriginalAmount is set only while a discount is live.
type PriceQuote struct {
	Amount         int
	IsDiscounted   bool
	OriginalAmount *int
}

// ResolveCurrentPrice applies the plan's discount window at the given time.
// Outside the window (or with no discount set) the regular price is quoted
// with no original amount.
func ResolveCurrentPrice(plan *pricing.Plan, at time.Time) PriceQuote {
	if plan.DiscountActiveAt(at) {
		original := plan.Price()
		return PriceQuote{
			Amount:         *plan.DiscountPrice(),
			IsDiscounted:   true,
			OriginalAmount: &original,
		}
	}
	return PriceQuote{
		Amount:       plan.Price(),
		IsDiscounted: false,
	}
}

// Truncate caps a list at the section's max display. A non-positive max
// means no cap.
func Truncate[T any](items []T, max int) []T {
	if max <= 0 || len(items) <= max {
		return items
	}
	return items[:max]
}

// VisiblePlans keeps active plans, preserving repository order.
func VisiblePlans(plans []*pricing.Plan) []*pricing.Plan {
	out := make([]*pricing.Plan, 0, len(plans))
	for _, p := range plans {
		if p.IsActive() {
			out = append(out, p)
		}
	}
	return out
}

// VisibleServices keeps active services, preserving repository order.
func VisibleServices(services []*showcase.Service) []*showcase.Service {
	out := make([]*showcase.Service, 0, len(services))
	for _, s := range services {
		if s.IsActive() {
			out = append(out, s)
		}
	}
	return out
}

// VisibleTestimonials keeps active approved testimonials, preserving
// repository order. The require-approval setting never widens this: an
// unapproved row stays hidden regardless of how submissions are moderated.
func VisibleTestimonials(items []*testimonial.Testimonial) []*testimonial.Testimonial {
	out := make([]*testimonial.Testimonial, 0, len(items))
	for _, t := range items {
		if t.IsActive() && t.IsApproved() {
			out = append(out, t)
		}
	}
	return out
}

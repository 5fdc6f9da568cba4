package service

// AffiliateMetrics records affiliate tracking outcomes.
type AffiliateMetrics interface {
	// ClickTracked counts a redirect through a partner link.
	ClickTracked(partner string)

	// ConversionTracked counts a conversion and adds its commission to the partner's revenue.
	ConversionTracked(partner string, commission float64)
}

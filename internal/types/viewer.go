package types

// ViewerContext identifies who the exported report is rendered for. Buyers
// get a reduced device-detail sheet; partner and internal callers see the
// full column set.
type ViewerContext string

const (
	ViewerPartner ViewerContext = "partner"
	ViewerBuyer   ViewerContext = "buyer"
)

func (v ViewerContext) IsBuyer() bool {
	return v == ViewerBuyer
}

// ParseViewerContext maps a caller supplied value to a ViewerContext,
// defaulting to partner for anything unrecognized.
func ParseViewerContext(s string) ViewerContext {
	if ViewerContext(s) == ViewerBuyer {
		return ViewerBuyer
	}
	return ViewerPartner
}

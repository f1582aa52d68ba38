package goquery

import "github.com/fwojciec/pagechat"

// prioritySelectors identify likely main-content regions, tried in order.
var prioritySelectors = []string{
	"main",
	"article",
	`[role="main"]`,
	".content",
	".main-content",
	"#content",
	".article",
	".post",
	".entry",
}

// exclusionSelectors identify regions that are never part of the content.
var exclusionSelectors = []string{
	"nav", "header", "footer", "aside",
	`[role="navigation"]`, `[role="banner"]`, `[role="complementary"]`,
	".nav", ".navbar", ".menu", ".sidebar",
	".advertisement", ".ad", ".ads", ".promo",
	"script", "style", "noscript", "iframe",
	`[class*="cookie"]`, `[id*="cookie"]`,
	`[class*="popup"]`, `[class*="modal"]`,
	// The chat widget itself, so its transcript is never read back as page content.
	".chatbot", "#" + pagechat.WidgetRootID,
}

// PrioritySelectors returns the main-content selectors in the order they are tried.
func PrioritySelectors() []string {
	return append([]string(nil), prioritySelectors...)
}

// ExclusionSelectors returns the selectors removed from every candidate region.
func ExclusionSelectors() []string {
	return append([]string(nil), exclusionSelectors...)
}

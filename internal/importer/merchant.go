package importer

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Merchant is a cleaned-up statement description with its best-guess
// category.
type Merchant struct {
	Name     string
	Category string
}

const CategoryOther = "Other"

type merchantRule struct {
	key      string
	name     string
	category string
}

// knownMerchants is checked in order, so longer keys that contain a
// shorter one ("uber eats" before "uber") come first.
var knownMerchants = []merchantRule{
	{"whole foods", "Whole Foods", "Food"},
	{"trader joe", "Trader Joe's", "Food"},
	{"woolworths", "Woolworths", "Food"},
	{"costco", "Costco", "Food"},
	{"aldi", "Aldi", "Food"},
	{"tesco", "Tesco", "Food"},
	{"mcdonald", "McDonald's", "Food"},
	{"starbucks", "Starbucks", "Food"},
	{"uber eats", "Uber Eats", "Food"},
	{"doordash", "DoorDash", "Food"},
	{"deliveroo", "Deliveroo", "Food"},
	{"uber", "Uber", "Transport"},
	{"lyft", "Lyft", "Transport"},
	{"shell", "Shell", "Transport"},
	{"chevron", "Chevron", "Transport"},
	{"netflix", "Netflix", "Entertainment"},
	{"spotify", "Spotify", "Entertainment"},
	{"disney+", "Disney+", "Entertainment"},
	{"youtube premium", "YouTube Premium", "Entertainment"},
	{"amazon prime", "Amazon Prime", "Entertainment"},
	{"amazon", "Amazon", "Shopping"},
	{"ebay", "eBay", "Shopping"},
	{"walmart", "Walmart", "Shopping"},
	{"target", "Target", "Shopping"},
	{"ikea", "IKEA", "Shopping"},
	{"walgreens", "Walgreens", "Health"},
	{"cvs", "CVS Pharmacy", "Health"},
	{"verizon", "Verizon", "Utilities"},
	{"vodafone", "Vodafone", "Utilities"},
	{"comcast", "Comcast", "Utilities"},
	{"airbnb", "Airbnb", "Travel"},
	{"booking.com", "Booking.com", "Travel"},
	{"expedia", "Expedia", "Travel"},
}

// categoryKeywords is the fallback when no known merchant matches.
var categoryKeywords = []struct {
	keyword  string
	category string
}{
	{"restaurant", "Food"}, {"cafe", "Food"}, {"coffee", "Food"}, {"grocer", "Food"},
	{"market", "Food"}, {"bakery", "Food"}, {"pizza", "Food"},
	{"fuel", "Transport"}, {"petrol", "Transport"}, {"parking", "Transport"},
	{"taxi", "Transport"}, {"train", "Transport"}, {"toll", "Transport"},
	{"cinema", "Entertainment"}, {"theatre", "Entertainment"}, {"concert", "Entertainment"},
	{"pharmacy", "Health"}, {"chemist", "Health"}, {"doctor", "Health"},
	{"dental", "Health"}, {"medical", "Health"},
	{"electric", "Utilities"}, {"internet", "Utilities"}, {"mobile", "Utilities"},
	{"broadband", "Utilities"},
	{"hotel", "Travel"}, {"airline", "Travel"}, {"airport", "Travel"},
	{"rent", "Housing"}, {"mortgage", "Housing"},
	{"tuition", "Education"}, {"university", "Education"},
	{"salary", "Salary"}, {"payroll", "Salary"},
	{"shop", "Shopping"}, {"store", "Shopping"},
}

var (
	// Patterns for cleaning merchant names
	prefixPattern = regexp.MustCompile(`(?i)^(pos |eftpos |visa |mastercard |amex |paypal \*|card purchase )`)
	suffixPattern = regexp.MustCompile(`(?i)\s+(pty|ltd|inc|corp|llc|au|us|uk|nz)\.?$`)
	longNumbers   = regexp.MustCompile(`\d{6,}`)
	specialChars  = regexp.MustCompile(`[*#]+`)

	titleCaser = cases.Title(language.English)
)

func clean(raw string) string {
	cleaned := prefixPattern.ReplaceAllString(strings.TrimSpace(raw), "")
	cleaned = suffixPattern.ReplaceAllString(cleaned, "")
	cleaned = longNumbers.ReplaceAllString(cleaned, "")
	cleaned = specialChars.ReplaceAllString(cleaned, "")
	return strings.Join(strings.Fields(cleaned), " ")
}

// NormalizeMerchant cleans a raw statement description and picks a
// category for it.
func NormalizeMerchant(raw string) Merchant {
	cleaned := clean(raw)
	lower := strings.ToLower(cleaned)

	for _, rule := range knownMerchants {
		if strings.Contains(lower, rule.key) {
			return Merchant{Name: rule.name, Category: rule.category}
		}
	}

	category := CategoryOther
	for _, kw := range categoryKeywords {
		if strings.Contains(lower, kw.keyword) {
			category = kw.category
			break
		}
	}
	return Merchant{Name: formatMerchantName(cleaned), Category: category}
}

// formatMerchantName title-cases each word; words of two letters or
// fewer are treated as initials and upper-cased.
func formatMerchantName(cleaned string) string {
	words := strings.Fields(cleaned)
	for i, word := range words {
		if len(word) > 2 {
			words[i] = titleCaser.String(strings.ToLower(word))
		} else {
			words[i] = strings.ToUpper(word)
		}
	}

	result := strings.Join(words, " ")
	if len(result) > 50 {
		result = strings.TrimSpace(result[:50])
	}
	return result
}

package sources

import "strings"

// FallbackIndustry is used when no taxonomy keyword matches.
const FallbackIndustry = "Other Local Services"

// industryKeywords maps keyword substrings found in external industry tags
// to the internal fixed taxonomy. First match in table order wins, so the
// more specific keywords sit above the generic ones.
var industryKeywords = []struct {
	keyword  string
	industry string
}{
	{"plumb", "Home Services"},
	{"hvac", "Home Services"},
	{"heating", "Home Services"},
	{"electric", "Home Services"},
	{"roof", "Home Services"},
	{"landscap", "Home Services"},
	{"cleaning", "Home Services"},
	{"pest", "Home Services"},
	{"contractor", "Home Services"},
	{"construction", "Home Services"},
	{"dental", "Dental & Medical"},
	{"dentist", "Dental & Medical"},
	{"orthodont", "Dental & Medical"},
	{"medical", "Dental & Medical"},
	{"health", "Dental & Medical"},
	{"hospital", "Dental & Medical"},
	{"clinic", "Dental & Medical"},
	{"chiropract", "Dental & Medical"},
	{"veterinar", "Dental & Medical"},
	{"restaurant", "Restaurants & Food"},
	{"cafe", "Restaurants & Food"},
	{"coffee", "Restaurants & Food"},
	{"bakery", "Restaurants & Food"},
	{"catering", "Restaurants & Food"},
	{"food", "Restaurants & Food"},
	{"law", "Legal Services"},
	{"legal", "Legal Services"},
	{"attorney", "Legal Services"},
	{"real estate", "Real Estate"},
	{"realtor", "Real Estate"},
	{"property management", "Real Estate"},
	{"auto", "Auto Services"},
	{"car repair", "Auto Services"},
	{"tire", "Auto Services"},
	{"salon", "Beauty & Wellness"},
	{"spa", "Beauty & Wellness"},
	{"barber", "Beauty & Wellness"},
	{"beauty", "Beauty & Wellness"},
	{"nail", "Beauty & Wellness"},
	{"gym", "Fitness"},
	{"fitness", "Fitness"},
	{"yoga", "Fitness"},
	{"accounting", "Accounting & Finance"},
	{"bookkeep", "Accounting & Finance"},
	{"tax", "Accounting & Finance"},
	{"insurance", "Accounting & Finance"},
	{"retail", "Retail"},
	{"store", "Retail"},
	{"boutique", "Retail"},
}

// NormalizeIndustry maps an external industry tag onto the internal
// taxonomy via case-insensitive keyword-substring match.
func NormalizeIndustry(raw string) string {
	lowered := strings.ToLower(raw)
	for _, entry := range industryKeywords {
		if strings.Contains(lowered, entry.keyword) {
			return entry.industry
		}
	}
	return FallbackIndustry
}

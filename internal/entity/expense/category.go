package expense

import "strings"

const (
	Food           = "Food"
	Transportation = "Transportation"
	Entertainment  = "Entertainment"
	Utilities      = "Utilities"
	Shopping       = "Shopping"
	Healthcare     = "Healthcare"
	CollegeFees    = "College Fees"
	Gifts          = "Gifts"
	Others         = "Others"
)

var Categories = []string{
	Food,
	Transportation,
	Entertainment,
	Utilities,
	Shopping,
	Healthcare,
	CollegeFees,
	Gifts,
	Others,
}

func ValidCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}

// LookupCategory matches user input case-insensitively, accepting
// "college-fees" and "college_fees" for multi-word names.
func LookupCategory(input string) (string, bool) {
	norm := strings.NewReplacer("-", " ", "_", " ").Replace(strings.TrimSpace(input))
	for _, c := range Categories {
		if strings.EqualFold(c, norm) {
			return c, true
		}
	}
	return "", false
}

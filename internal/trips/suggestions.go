package trips

import "strings"

// maxSuggestions caps the autocomplete result size.
const maxSuggestions = 6

// fallbackLocations is the static autocomplete list used when the AI
// capability is unavailable.
var fallbackLocations = []string{
	"Mumbai, Maharashtra", "Delhi, NCR", "Bangalore, Karnataka",
	"Chennai, Tamil Nadu", "Kolkata, West Bengal", "Hyderabad, Telangana",
	"Pune, Maharashtra", "Ahmedabad, Gujarat", "Jaipur, Rajasthan",
	"Kochi, Kerala", "Goa", "Surat, Gujarat", "Lucknow, Uttar Pradesh",
	"Coimbatore, Tamil Nadu", "Mysore, Karnataka", "Agra, Uttar Pradesh",
	"Varanasi, Uttar Pradesh", "Rishikesh, Uttarakhand", "Manali, Himachal Pradesh",
	"Shimla, Himachal Pradesh", "Darjeeling, West Bengal", "Gangtok, Sikkim",
	"Leh, Ladakh", "Srinagar, J&K", "Amritsar, Punjab", "Chandigarh",
	"Udaipur, Rajasthan", "Jodhpur, Rajasthan", "Jaisalmer, Rajasthan",
	"Munnar, Kerala", "Alleppey, Kerala", "Pondicherry",
	"Ooty, Tamil Nadu", "Kodaikanal, Tamil Nadu", "Hampi, Karnataka",
}

// staticSuggestions filters the fallback list by case-insensitive substring
// match.
func staticSuggestions(query string) []string {
	q := strings.ToLower(query)
	out := make([]string, 0, maxSuggestions)
	for _, loc := range fallbackLocations {
		if strings.Contains(strings.ToLower(loc), q) {
			out = append(out, loc)
			if len(out) == maxSuggestions {
				break
			}
		}
	}
	return out
}

package forms

// GenreChoices is the closed vocabulary of genres accepted on venue and
// artist submissions.
var GenreChoices = []string{
	"Alternative",
	"Blues",
	"Classical",
	"Country",
	"Electronic",
	"Folk",
	"Funk",
	"Hip-Hop",
	"Heavy Metal",
	"Instrumental",
	"Jazz",
	"Musical Theatre",
	"Pop",
	"Punk",
	"R&B",
	"Reggae",
	"Rock n Roll",
	"Soul",
	"Swing",
	"Other",
}

// StateChoices is the closed vocabulary of U.S. state abbreviations accepted
// on venue and artist submissions.
var StateChoices = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL",
	"GA", "HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME",
	"MT", "NE", "NV", "NH", "NJ", "NM", "NY", "NC", "ND", "OH",
	"OK", "OR", "MD", "MA", "MI", "MN", "MS", "MO", "PA", "RI",
	"SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI",
	"WY",
}

var genreSet = toSet(GenreChoices)
var stateSet = toSet(StateChoices)

func toSet(choices []string) map[string]struct{} {
	set := make(map[string]struct{}, len(choices))
	for _, choice := range choices {
		set[choice] = struct{}{}
	}
	return set
}

// IsValidGenre reports whether name is in the genre vocabulary.
func IsValidGenre(name string) bool {
	_, ok := genreSet[name]
	return ok
}

// IsValidState reports whether abbr is a known state abbreviation.
func IsValidState(abbr string) bool {
	_, ok := stateSet[abbr]
	return ok
}

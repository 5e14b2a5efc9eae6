package country

import "fmt"

// Government is the form of government chosen at founding
type Government string

const (
	GovernmentDemocracy    Government = "Democracy"
	GovernmentMonarchy     Government = "Monarchy"
	GovernmentRepublic     Government = "Republic"
	GovernmentOligarchy    Government = "Oligarchy"
	GovernmentTheocracy    Government = "Theocracy"
	GovernmentSocialist    Government = "Socialist"
	GovernmentCommunist    Government = "Communist"
	GovernmentDictatorship Government = "Dictatorship"
)

// Governments lists every selectable government type
var Governments = []Government{
	GovernmentDemocracy,
	GovernmentMonarchy,
	GovernmentRepublic,
	GovernmentOligarchy,
	GovernmentTheocracy,
	GovernmentSocialist,
	GovernmentCommunist,
	GovernmentDictatorship,
}

// IsValid checks the government against the fixed enumeration
func (g Government) IsValid() bool {
	for _, known := range Governments {
		if g == known {
			return true
		}
	}
	return false
}

// Value is a national value tag
type Value string

// Values lists every selectable value tag
var Values = []Value{
	"Freedom",
	"Equality",
	"Justice",
	"Prosperity",
	"Innovation",
	"Tradition",
	"Harmony",
	"Power",
	"Knowledge",
	"Honor",
}

// MaxValues is the number of value tags a country may hold
const MaxValues = 3

// IsValid checks the value against the fixed enumeration
func (v Value) IsValid() bool {
	for _, known := range Values {
		if v == known {
			return true
		}
	}
	return false
}

// FlagPatterns lists the pattern ids the flag renderer understands
var FlagPatterns = []string{
	"solid",
	"stripe",
	"vertical-stripe",
	"cross",
	"diagonal",
	"circle",
	"star",
	"triangle",
}

// Flag is the flag descriptor. Colors are opaque to the game rules.
type Flag struct {
	BackgroundColor string `json:"backgroundColor"`
	Pattern         string `json:"pattern"`
	PatternColor    string `json:"patternColor"`
}

// Validate requires every property and a known pattern
func (f Flag) Validate() error {
	if f.BackgroundColor == "" || f.Pattern == "" || f.PatternColor == "" {
		return fmt.Errorf("all flag properties are required")
	}
	for _, known := range FlagPatterns {
		if f.Pattern == known {
			return nil
		}
	}
	return fmt.Errorf("unknown flag pattern: %s", f.Pattern)
}

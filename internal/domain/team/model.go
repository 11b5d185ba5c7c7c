package team

import (
	"fmt"
	"strings"
)

// Team is one franchise. Teams are created once by the bootstrap step and never updated.
type Team struct {
	ID        string
	Name      string
	ShortName string
	LogoURL   string
}

func (t Team) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return fmt.Errorf("team id is required")
	}
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("team name is required")
	}
	return nil
}

// DeriveShortName returns the upper-cased initials of the words in name,
// e.g. "Royal Challengers Bengaluru" -> "RCB".
func DeriveShortName(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		r := []rune(word)
		b.WriteString(strings.ToUpper(string(r[0])))
	}
	return b.String()
}

// NameIndex resolves scraped team names to stored teams by exact string match.
type NameIndex map[string]Team

func IndexByName(teams []Team) NameIndex {
	out := make(NameIndex, len(teams))
	for _, t := range teams {
		if _, exists := out[t.Name]; exists {
			continue
		}
		out[t.Name] = t
	}
	return out
}

func (idx NameIndex) Resolve(name string) (Team, bool) {
	t, ok := idx[name]
	return t, ok
}

// IndexByID keys teams by identifier for in-memory joins.
func IndexByID(teams []Team) map[string]Team {
	out := make(map[string]Team, len(teams))
	for _, t := range teams {
		out[t.ID] = t
	}
	return out
}

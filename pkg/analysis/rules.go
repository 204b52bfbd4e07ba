package analysis

import (
	"fmt"
	"os"
	"strings"

	"github.com/ryanuber/go-glob"
	"gopkg.in/yaml.v3"
)

// CategoryOther is assigned to descriptions no rule matches.
const CategoryOther = "Other"

// Rule assigns a category to descriptions containing any of its keywords.
type Rule struct {
	Category string   `yaml:"category"`
	Keywords []string `yaml:"keywords"`
}

// DefaultRules are used when no rules file is configured. Rules are
// evaluated in order, the first matching rule wins.
var DefaultRules = []Rule{
	{"Food", []string{"zomato", "swiggy", "restaurant", "cafe", "coffee", "dominos", "mcdonald"}},
	{"Grocery", []string{"bigbasket", "grocery", "grocer", "supermarket", "dmart"}},
	{"Transport", []string{"ola", "uber", "taxi", "bus", "metro", "rail", "travel"}},
	{"Rent", []string{"rent", "landlord"}},
	{"Bills", []string{"electricity", "water", "internet", "airtel", "jio", "bill"}},
	{"Subscription", []string{"netflix", "prime", "spotify", "hotstar", "zee5"}},
	{"Shopping", []string{"flipkart", "amazon", "myntra", "store", "shop"}},
	{"Health", []string{"clinic", "hospital", "pharmacy", "doctor", "medic"}},
	{"Entertainment", []string{"movie", "cinema", "concert", "event"}},
}

// LoadRules reads an ordered list of rules from a YAML file.
func LoadRules(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read category rules: %w", err)
	}

	var rules []Rule
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("could not parse category rules: %w", err)
	}

	for i, rule := range rules {
		if strings.TrimSpace(rule.Category) == "" {
			return nil, fmt.Errorf("category rule %d has no category", i+1)
		}
	}

	return rules, nil
}

// Categorizer assigns categories to transaction descriptions.
type Categorizer struct {
	rules []Rule
}

// NewCategorizer returns a categorizer for the rules. Keywords are
// matched case-insensitively as substrings.
func NewCategorizer(rules []Rule) Categorizer {
	compiled := make([]Rule, 0, len(rules))
	for _, rule := range rules {
		patterns := make([]string, 0, len(rule.Keywords))
		for _, kw := range rule.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw == "" {
				continue
			}
			patterns = append(patterns, glob.GLOB+kw+glob.GLOB)
		}
		compiled = append(compiled, Rule{Category: rule.Category, Keywords: patterns})
	}

	return Categorizer{rules: compiled}
}

// Categorize returns the category of the first rule with a keyword contained
// in the description, or CategoryOther.
func (c Categorizer) Categorize(description string) string {
	if description == "" {
		return CategoryOther
	}

	s := strings.ToLower(description)
	for _, rule := range c.rules {
		for _, pattern := range rule.Keywords {
			if glob.Glob(pattern, s) {
				return rule.Category
			}
		}
	}

	return CategoryOther
}

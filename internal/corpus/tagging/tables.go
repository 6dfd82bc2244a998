package tagging

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/myenglish-corpus/internal/domain"
)

// Topic is a named word list.
type Topic struct {
	Name  string   `yaml:"name"`
	Words []string `yaml:"words"`
}

// Tables holds the static topic and relation lookups. A Tables value is
// immutable after construction and may be shared between resolvers.
type Tables struct {
	topics   map[string][]string // key -> topic names, table order
	synonyms map[string][]string
	antonyms map[string][]string
}

type tablesFile struct {
	Topics   []Topic             `yaml:"topics"`
	Synonyms map[string][]string `yaml:"synonyms"`
	Antonyms map[string][]string `yaml:"antonyms"`
}

// NewTables indexes topics and relation maps by canonical headword.
func NewTables(topics []Topic, synonyms, antonyms map[string][]string) *Tables {
	t := &Tables{
		topics:   make(map[string][]string),
		synonyms: normalizeKeys(synonyms),
		antonyms: normalizeKeys(antonyms),
	}
	for _, topic := range topics {
		for _, w := range topic.Words {
			key := domain.NormalizeText(w)
			if key == "" || contains(t.topics[key], topic.Name) {
				continue
			}
			t.topics[key] = append(t.topics[key], topic.Name)
		}
	}
	return t
}

// LoadTables reads a YAML table file. Sections absent from the file keep the
// built-in defaults.
func LoadTables(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tables %s: %w", path, err)
	}

	var f tablesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse tables %s: %w", path, err)
	}

	if f.Topics == nil {
		f.Topics = defaultTopics()
	}
	if f.Synonyms == nil {
		f.Synonyms = defaultSynonyms()
	}
	if f.Antonyms == nil {
		f.Antonyms = defaultAntonyms()
	}
	return NewTables(f.Topics, f.Synonyms, f.Antonyms), nil
}

// DefaultTables returns the built-in tables.
func DefaultTables() *Tables {
	return NewTables(defaultTopics(), defaultSynonyms(), defaultAntonyms())
}

// Topics returns the topic names for key in table order.
func (t *Tables) Topics(key string) []string {
	return t.topics[key]
}

// Synonyms returns the synonym list for key and whether key is present.
func (t *Tables) Synonyms(key string) ([]string, bool) {
	s, ok := t.synonyms[key]
	return s, ok
}

// Antonyms returns the antonym list for key and whether key is present.
func (t *Tables) Antonyms(key string) ([]string, bool) {
	a, ok := t.antonyms[key]
	return a, ok
}

func normalizeKeys(m map[string][]string) map[string][]string {
	out := make(map[string][]string, len(m))
	for k, v := range m {
		out[domain.NormalizeText(k)] = append([]string(nil), v...)
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func defaultTopics() []Topic {
	return []Topic{
		{Name: "daily_life", Words: []string{
			"eat", "drink", "sleep", "walk", "run", "play", "work", "study",
			"home", "house", "room", "kitchen", "bedroom", "bathroom",
			"family", "father", "mother", "brother", "sister", "friend",
		}},
		{Name: "education", Words: []string{
			"school", "teacher", "student", "class", "lesson", "homework",
			"exam", "test", "grade", "university", "college", "library",
			"book", "pen", "pencil", "paper", "knowledge",
		}},
		{Name: "business", Words: []string{
			"business", "company", "office", "meeting", "manager", "employee",
			"salary", "money", "profit", "customer", "market", "sell", "buy",
			"trade", "industry", "economy", "finance", "investment",
		}},
		{Name: "technology", Words: []string{
			"computer", "internet", "software", "hardware", "program",
			"code", "data", "digital", "electronic", "machine", "robot",
			"technology", "innovation", "invention", "smartphone", "laptop",
		}},
		{Name: "travel", Words: []string{
			"travel", "trip", "journey", "vacation", "holiday", "hotel",
			"flight", "plane", "train", "car", "ticket", "passport",
			"luggage", "suitcase", "tourist", "guide", "map", "destination",
		}},
		{Name: "food", Words: []string{
			"food", "eat", "drink", "restaurant", "cafe", "menu", "order",
			"breakfast", "lunch", "dinner", "meal", "meat", "fish", "chicken",
			"vegetable", "fruit", "bread", "rice", "noodle", "soup",
		}},
		{Name: "health", Words: []string{
			"health", "body", "doctor", "hospital", "medicine", "nurse",
			"patient", "disease", "sick", "pain", "headache", "fever",
			"cold", "cure", "treat", "exercise", "sport", "fitness",
		}},
		{Name: "nature", Words: []string{
			"nature", "natural", "environment", "earth", "sky", "sun", "moon",
			"star", "cloud", "rain", "snow", "wind", "mountain", "river",
			"ocean", "sea", "forest", "tree", "flower", "animal", "bird",
		}},
	}
}

func defaultSynonyms() map[string][]string {
	return map[string][]string{
		"good":      {"excellent", "fine", "great"},
		"bad":       {"terrible", "poor", "awful"},
		"big":       {"large", "huge", "enormous"},
		"small":     {"tiny", "little", "minute"},
		"happy":     {"joyful", "glad", "cheerful"},
		"sad":       {"unhappy", "sorrowful", "depressed"},
		"fast":      {"quick", "rapid", "swift"},
		"slow":      {"sluggish", "leisurely", "unhurried"},
		"quick":     {"fast", "rapid", "swift"},
		"hot":       {"warm", "heated"},
		"cold":      {"cool", "freezing"},
		"new":       {"fresh", "recent"},
		"old":       {"ancient", "aged"},
		"rich":      {"wealthy", "prosperous"},
		"poor":      {"needy", "impoverished"},
		"easy":      {"simple", "effortless"},
		"hard":      {"difficult", "challenging"},
		"beautiful": {"pretty", "attractive"},
		"ugly":      {"unsightly", "hideous"},
		"smart":     {"intelligent", "clever"},
		"stupid":    {"foolish", "dumb"},
		"clean":     {"pure", "spotless"},
		"dirty":     {"filthy", "unclean"},
	}
}

func defaultAntonyms() map[string][]string {
	return map[string][]string{
		"good":      {"bad", "poor"},
		"bad":       {"good", "excellent"},
		"big":       {"small", "tiny"},
		"small":     {"big", "huge"},
		"happy":     {"sad", "unhappy"},
		"sad":       {"happy", "joyful"},
		"fast":      {"slow", "sluggish"},
		"slow":      {"fast", "quick"},
		"quick":     {"slow", "sluggish"},
		"hot":       {"cold", "cool"},
		"cold":      {"hot", "warm"},
		"new":       {"old", "ancient"},
		"old":       {"new", "fresh"},
		"rich":      {"poor"},
		"poor":      {"rich", "wealthy"},
		"easy":      {"hard", "difficult"},
		"hard":      {"easy", "simple"},
		"beautiful": {"ugly"},
		"ugly":      {"beautiful"},
		"smart":     {"stupid", "foolish"},
		"stupid":    {"smart", "intelligent"},
		"clean":     {"dirty"},
		"dirty":     {"clean"},
		"always":    {"never", "seldom"},
		"never":     {"always"},
		"come":      {"go", "leave"},
		"go":        {"come", "arrive"},
		"give":      {"take", "receive"},
		"take":      {"give", "offer"},
		"love":      {"hate", "dislike"},
		"hate":      {"love", "like"},
		"begin":     {"end", "finish"},
		"end":       {"begin", "start"},
		"win":       {"lose", "fail"},
		"lose":      {"win", "succeed"},
		"rise":      {"fall", "drop"},
		"fall":      {"rise", "climb"},
	}
}

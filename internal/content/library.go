package content

import (
	"sort"
	"strings"
)

// Library holds every loaded tutorial, keyed by language. It is
// read-only after construction and safe for concurrent use.
type Library struct {
	tutorials map[string]*Tutorial
	languages []string
}

func newLibrary(tutorials map[string]*Tutorial) *Library {
	languages := make([]string, 0, len(tutorials))
	for lang := range tutorials {
		languages = append(languages, lang)
	}
	sort.Strings(languages)
	return &Library{tutorials: tutorials, languages: languages}
}

// Languages returns the loaded language identifiers in sorted order.
func (l *Library) Languages() []string {
	out := make([]string, len(l.languages))
	copy(out, l.languages)
	return out
}

// Tutorial returns the tutorial for the given language, or nil.
func (l *Library) Tutorial(language string) *Tutorial {
	return l.tutorials[strings.ToLower(language)]
}

// Topic returns the topic with the given id in the given language, or
// nil if either is unknown.
func (l *Library) Topic(language, topicID string) *Topic {
	t := l.Tutorial(language)
	if t == nil {
		return nil
	}
	return t.Topic(topicID)
}

// TopicCount returns the number of topics in the given language, zero
// if the language is unknown.
func (l *Library) TopicCount(language string) int {
	t := l.Tutorial(language)
	if t == nil {
		return 0
	}
	return len(t.Topics)
}

// SearchResult is one topic matched by a library search.
type SearchResult struct {
	Language string
	TopicID  string
	Title    string
}

// Search finds topics whose title, description, or body contains the
// query, case-insensitively. Results come back grouped by language in
// the library's sorted language order, then by topic order.
func (l *Library) Search(query string) []SearchResult {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var results []SearchResult
	for _, lang := range l.languages {
		for _, topic := range l.tutorials[lang].OrderedTopics() {
			if topicMatches(&topic, query) {
				results = append(results, SearchResult{
					Language: lang,
					TopicID:  topic.ID,
					Title:    topic.Title,
				})
			}
		}
	}
	return results
}

func topicMatches(topic *Topic, query string) bool {
	if strings.Contains(strings.ToLower(topic.Title), query) ||
		strings.Contains(strings.ToLower(topic.Description), query) ||
		strings.Contains(strings.ToLower(topic.Content), query) {
		return true
	}
	for _, sub := range topic.Subtopics {
		if strings.Contains(strings.ToLower(sub.Title), query) ||
			strings.Contains(strings.ToLower(sub.Content), query) {
			return true
		}
	}
	return false
}

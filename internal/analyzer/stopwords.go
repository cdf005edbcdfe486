package analyzer

// DefaultStopWords returns the built-in stop-word set: numbers, English
// function words, generic IT filler terms, named companies, and markup
// artifacts. Config may extend or replace it.
func DefaultStopWords() []string {
	return []string{
		// numbers
		"1", "2", "3", "4", "5", "6", "7", "8", "9", "0", "00", "10", "11", "12", "13", "14", "15",
		"16", "17", "18", "19", "20", "30", "39", "50", "60", "70", "80", "90", "100", "000",

		// English function words
		"and", "the", "to", "of", "you", "in", "with", "for", "a", "an", "is", "are", "be",
		"been", "have", "has", "had", "will", "would", "could", "should", "may", "might",
		"this", "that", "these", "those", "he", "she", "it", "they", "we", "us", "our",

		// generic IT filler
		"skills", "back", "end", "experience", "work", "working", "job", "position",
		"role", "team", "project", "projects", "development", "developer", "specialist",
		"engineer", "technology", "technologies", "months", "years", "code", "review",
		"senior", "junior", "middle", "lead", "data", "science", "web", "your",
		"can", "must", "need", "good", "strong", "excellent", "high", "low",
		"design", "support", "on", "node", "js",

		// company names, not technologies
		"ozon", "yandex", "google", "microsoft", "apple", "amazon", "facebook", "meta",
		"sber", "tinkoff", "avito", "wildberries", "kaspersky", "jetbrains",

		// schedule noise
		"b2b", "b2c", "java", "schedule", "remote", "office", "salary",

		// markup artifacts
		"quot", "ru", "etc", "er", "e", "o", "nbsp", "amp", "gt", "lt", "strong", "em", "br",
		"div", "span", "p", "ul", "li", "h1", "h2", "h3", "h4", "h5", "h6",
	}
}

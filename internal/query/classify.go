package query

import (
	"regexp"
	"strings"
)

const (
	googleSearchURL = "https://www.google.com/search?q="
	chatGPTHomeURL  = "https://chatgpt.com/?model=gpt-4o"
	chatGPTQueryURL = "https://chatgpt.com/?q="
	githubURL       = "https://github.com/"
)

var (
	fullURLPattern = regexp.MustCompile(`(?i)^(https?://)(([a-zA-Z0-9_-]+\.)+[a-zA-Z]{2,})(:\d+)?(/.*)?$`)

	// Word characters include Unicode letters and digits, not just ASCII
	shortURLPattern = regexp.MustCompile(`(?i)^[\p{L}\p{N}_-]+\.[a-zA-Z]{2,}$`)
)

// rule is one row of the classification table
type rule struct {
	name  string
	match func(q string) bool
	build func(q, username string) Action
}

// rules are evaluated in order, first match wins
var rules = []rule{
	{
		name:  "empty",
		match: func(q string) bool { return q == "" },
		build: func(string, string) Action { return NoOp() },
	},
	{
		name:  "url prefix",
		match: hasPrefix("url "),
		build: func(q, _ string) Action { return OpenURL(strings.TrimSpace(q[len("url "):])) },
	},
	{
		name:  "google prefix",
		match: hasPrefix("gg "),
		build: func(q, _ string) Action { return OpenURL(googleSearchURL + Quote(q[len("gg "):])) },
	},
	{
		name:  "chatgpt home",
		match: equals("gpt"),
		build: func(string, string) Action { return OpenURL(chatGPTHomeURL) },
	},
	{
		name:  "chatgpt prefix",
		match: hasPrefix("gpt "),
		build: func(q, _ string) Action { return OpenURL(chatGPTQueryURL + Quote(q[len("gpt "):])) },
	},
	{
		name:  "github profile",
		match: equals("git", "git ."),
		build: func(_, username string) Action { return OpenURL(githubURL + username) },
	},
	{
		name:  "github repository list",
		match: equals("git?"),
		build: func(string, string) Action { return ListRepositories() },
	},
	{
		name:  "github repository",
		match: hasPrefix("git "),
		build: func(q, username string) Action {
			rest := q[len("git "):]
			if strings.Contains(q, "/") {
				return OpenURL(githubURL + rest)
			}
			return OpenURL(githubURL + username + "/" + rest)
		},
	},
	{
		name:  "full url",
		match: IsURL,
		build: func(q, _ string) Action { return OpenURL(q) },
	},
	{
		name:  "short url",
		match: IsShortURL,
		build: func(q, _ string) Action { return OpenURL("https://" + q) },
	},
	{
		name:  "search fallback",
		match: func(string) bool { return true },
		build: func(q, _ string) Action { return OpenURL(googleSearchURL + Quote(q)) },
	},
}

// Classify maps a query to exactly one Action.
//
// The query is expected to be trimmed by the caller. username is the GitHub
// login used by the git rules; it may be empty.
func Classify(q, username string) Action {
	action, _ := classify(q, username)
	return action
}

// RuleName returns the name of the rule that matches q
func RuleName(q string) string {
	_, name := classify(q, "")
	return name
}

func classify(q, username string) (Action, string) {
	for _, r := range rules {
		if r.match(q) {
			return r.build(q, username), r.name
		}
	}
	// Unreachable: the last rule always matches
	return OpenURL(googleSearchURL + Quote(q)), "search fallback"
}

// IsURL reports whether s is an absolute http(s) URL with a dotted host
func IsURL(s string) bool {
	return fullURLPattern.MatchString(s)
}

// IsShortURL reports whether s is a bare domain such as example.com.
// Strings that are already full URLs are not short URLs.
func IsShortURL(s string) bool {
	if IsURL(s) {
		return false
	}
	return shortURLPattern.MatchString(s)
}

func hasPrefix(prefix string) func(string) bool {
	return func(q string) bool { return strings.HasPrefix(q, prefix) }
}

func equals(values ...string) func(string) bool {
	return func(q string) bool {
		for _, v := range values {
			if q == v {
				return true
			}
		}
		return false
	}
}

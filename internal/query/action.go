package query

// Kind identifies what the launcher should do with a query
type Kind string

const (
	KindNoOp             Kind = "noop"              // Nothing to do (empty query)
	KindOpenURL          Kind = "open_url"          // Open Action.URL in the browser
	KindListRepositories Kind = "list_repositories" // Run the repository selection flow
)

// Action is the result of classifying a query
type Action struct {
	Kind Kind
	URL  string // Only set for KindOpenURL
}

// NoOp returns the action produced for an empty query
func NoOp() Action {
	return Action{Kind: KindNoOp}
}

// OpenURL returns an action that opens url
func OpenURL(url string) Action {
	return Action{Kind: KindOpenURL, URL: url}
}

// ListRepositories returns the action that triggers the repository list flow
func ListRepositories() Action {
	return Action{Kind: KindListRepositories}
}

// String renders the action for diagnostics and dry-run output
func (a Action) String() string {
	if a.Kind == KindOpenURL {
		return string(a.Kind) + " " + a.URL
	}
	return string(a.Kind)
}

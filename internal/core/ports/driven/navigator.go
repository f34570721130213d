package driven

// Navigator moves the user interface to a route.
// Routes are passed through verbatim, e.g. "/demo/ai-engine".
type Navigator interface {
	Navigate(route string) error
}

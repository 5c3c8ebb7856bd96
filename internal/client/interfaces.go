package client

// Client is a runnable client application.
type Client interface {
	// Run blocks until the user leaves the application.
	Run() error
}

var _ Client = (*App)(nil)

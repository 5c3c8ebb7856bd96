package server

// Server is a transport server whose lifetime is bound to the process.
type Server interface {
	// RunServer serves until SIGINT, SIGTERM or SIGQUIT and then shuts down.
	RunServer()

	Shutdown()
}

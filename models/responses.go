package models

// QuizListResponse wraps the list of all quizzes.
type QuizListResponse struct {
	Quiz []Quiz `json:"quiz"`
}

// MessageResponse carries a human-readable outcome of an operation.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every failed quiz API call.
//
// Message is a fixed description of the failed operation; Error holds the
// underlying cause and is omitted when there is none (e.g. plain not-found).
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-quiz/internal/config"
	"github.com/MKhiriev/go-quiz/internal/logger"
	"github.com/MKhiriev/go-quiz/internal/utils"
	"github.com/MKhiriev/go-quiz/models"
)

type httpQuizAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPQuizAdapter constructs an HTTP/REST implementation of [QuizAdapter].
// It normalises adapterCfg.HTTPAddress into a base URL and applies the
// configured request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPQuizAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (QuizAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpQuizAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpQuizAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpQuizAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [QuizAdapter]. POST /api/user/register.
func (h *httpQuizAdapter) Register(ctx context.Context, user models.User) error {
	return h.authenticate(ctx, "/api/user/register", user)
}

// Login implements [QuizAdapter]. POST /api/user/login.
func (h *httpQuizAdapter) Login(ctx context.Context, user models.User) error {
	return h.authenticate(ctx, "/api/user/login", user)
}

func (h *httpQuizAdapter) authenticate(ctx context.Context, path string, user models.User) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(user).
		Post(path)
	if err != nil {
		return fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return fmt.Errorf("%s parse bearer token: %w", path, err)
	}

	h.SetToken(token)
	return nil
}

// ListQuizzes implements [QuizAdapter]. GET /api/quiz/all.
func (h *httpQuizAdapter) ListQuizzes(ctx context.Context) ([]models.Quiz, error) {
	var list models.QuizListResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&list).
		Get("/api/quiz/all")
	if err != nil {
		return nil, fmt.Errorf("list quizzes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return list.Quiz, nil
}

// GetQuiz implements [QuizAdapter]. GET /api/quiz/{quizId}.
func (h *httpQuizAdapter) GetQuiz(ctx context.Context, id string) (models.Quiz, error) {
	var quiz models.Quiz

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("quizId", id).
		SetResult(&quiz).
		Get("/api/quiz/{quizId}")
	if err != nil {
		return models.Quiz{}, fmt.Errorf("get quiz request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Quiz{}, err
	}

	return quiz, nil
}

// CreateQuiz implements [QuizAdapter]. POST /api/quiz/create.
func (h *httpQuizAdapter) CreateQuiz(ctx context.Context, quiz models.Quiz) (models.Quiz, error) {
	var created models.Quiz

	resp, err := h.authedRequest(ctx).
		SetBody(quiz).
		SetResult(&created).
		Post("/api/quiz/create")
	if err != nil {
		return models.Quiz{}, fmt.Errorf("create quiz request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Quiz{}, err
	}

	return created, nil
}

// UpdateQuiz implements [QuizAdapter]. PUT /api/quiz/{quizId}.
func (h *httpQuizAdapter) UpdateQuiz(ctx context.Context, id string, update models.QuizUpdate) (models.Quiz, error) {
	var updated models.Quiz

	resp, err := h.authedRequest(ctx).
		SetPathParam("quizId", id).
		SetBody(update).
		SetResult(&updated).
		Put("/api/quiz/{quizId}")
	if err != nil {
		return models.Quiz{}, fmt.Errorf("update quiz request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Quiz{}, err
	}

	return updated, nil
}

// DeleteQuiz implements [QuizAdapter]. DELETE /api/quiz/{quizId}.
func (h *httpQuizAdapter) DeleteQuiz(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("quizId", id).
		Delete("/api/quiz/{quizId}")
	if err != nil {
		return fmt.Errorf("delete quiz request: %w", err)
	}

	return mapHTTPError(resp)
}

// PlayQuiz implements [QuizAdapter]. POST /api/quiz/play/{quizId}.
func (h *httpQuizAdapter) PlayQuiz(ctx context.Context, id string, selected int) (models.PlayResult, error) {
	var result models.PlayResult

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("quizId", id).
		SetBody(map[string]int{"selectedOptionIndex": selected}).
		SetResult(&result).
		Post("/api/quiz/play/{quizId}")
	if err != nil {
		return models.PlayResult{}, fmt.Errorf("play quiz request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PlayResult{}, err
	}

	return result, nil
}

// Version implements [QuizAdapter]. GET /api/version/ answers in plain text.
func (h *httpQuizAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpQuizAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

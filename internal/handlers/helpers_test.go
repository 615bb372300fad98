package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/nasarali03/Portfolio/internal/config"
	"github.com/nasarali03/Portfolio/internal/event"
	"github.com/nasarali03/Portfolio/internal/middleware"
	"github.com/nasarali03/Portfolio/internal/repository"
	"github.com/nasarali03/Portfolio/internal/service"
	"github.com/nasarali03/Portfolio/pkg/utils"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var pngBytes = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 13, 'I', 'H', 'D', 'R'}

const testMaxImageSize = 64

type testServer struct {
	app       *fiber.App
	store     *repository.MemoryStore
	cache     *repository.MemoryCache
	content   *service.ContentService
	auth      *service.AuthService
	publisher *event.MockPublisher
	storage   *fakeStorage
	prompts   []string
	token     string
}

type fakeStorage struct {
	objects map[string][]byte
}

func (f *fakeStorage) PutObject(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	if f.objects == nil {
		f.objects = map[string][]byte{}
	}
	f.objects[objectName] = data
	return "https://files.example.dev/resumes/" + objectName, nil
}

func newTestServer(t *testing.T, withStorage bool) *testServer {
	t.Helper()

	store := repository.NewMemoryStore()
	cache := repository.NewMemoryCache(time.Minute)
	publisher := event.NewMockPublisher()
	images := service.NewImagePolicy(service.ImagePolicyConfig{})
	schemas, err := utils.NewSchemaValidator()
	require.NoError(t, err)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	auth, err := service.NewAuthService(config.AdminConfig{
		Username:     "admin",
		PasswordHash: string(hash),
		JWTSecret:    "test-secret",
		TokenTTL:     time.Hour,
	}, cache)
	require.NoError(t, err)

	content := service.NewContentService(store, images, cache, publisher)
	contact := service.NewContactService(store, content, publisher)

	srv := &testServer{
		store:     store,
		cache:     cache,
		content:   content,
		auth:      auth,
		publisher: publisher,
	}

	llm := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req service.ChatCompletionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err == nil && len(req.Messages) > 0 {
			srv.prompts = append(srv.prompts, req.Messages[len(req.Messages)-1].Content)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"A concise generated summary."}}]}`))
	}))
	t.Cleanup(llm.Close)
	summaries := service.NewSummaryService(config.LLMConfig{BaseURL: llm.URL, Model: "test", Timeout: 5 * time.Second})

	var storage service.ObjectStorage
	if withStorage {
		srv.storage = &fakeStorage{}
		storage = srv.storage
	}

	app := fiber.New()
	NewHealthHandler(store).RegisterRoutes(app)
	NewAuthHandler(auth, false).RegisterRoutes(app)
	NewPublicHandler(service.NewPortfolioService(store, images), contact, cache, schemas).RegisterRoutes(app)
	NewAdminHandler(
		content,
		service.NewDashboardService(store, images),
		service.NewResumeService(storage, content),
		summaries,
		contact,
		schemas,
		AdminHandlerConfig{MaxImageSize: testMaxImageSize, MaxResumeSize: 1024},
	).RegisterRoutes(app, middleware.AdminRequired(auth))
	srv.app = app

	srv.token, _, err = auth.Login(context.Background(), "admin", "s3cret")
	require.NoError(t, err)
	return srv
}

type envelope struct {
	Data    json.RawMessage   `json:"data"`
	Message string            `json:"message"`
	Error   string            `json:"error"`
	Fields  map[string]string `json:"fields"`
}

func (s *testServer) do(t *testing.T, req *http.Request) (*http.Response, envelope) {
	t.Helper()
	resp, err := s.app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &body), string(raw))
	}
	return resp, body
}

func (s *testServer) admin(req *http.Request) *http.Request {
	req.Header.Set("Authorization", "Bearer "+s.token)
	return req
}

func jsonRequest(t *testing.T, method, target string, payload any) *http.Request {
	t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(method, target, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return req
}

type filePart struct {
	field       string
	filename    string
	contentType string
	data        []byte
}

func multipartRequest(t *testing.T, method, target string, fields map[string]string, file *filePart) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if file != nil {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="`+file.field+`"; filename="`+file.filename+`"`)
		header.Set("Content-Type", file.contentType)
		part, err := w.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(file.data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/cxd309/stem-train-planning/internal/domain"
	"github.com/cxd309/stem-train-planning/internal/handler"
	"github.com/cxd309/stem-train-planning/internal/service"
)

// mockRunServicer is a test double for handler.RunServicer.
// Set only the method fields your test needs.
type mockRunServicer struct {
	record  func(ctx context.Context, name string) (domain.Run, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.Run, error)
	list    func(ctx context.Context, page domain.RunPage) ([]domain.Run, error)
	delete  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockRunServicer) Record(ctx context.Context, name string) (domain.Run, error) {
	return m.record(ctx, name)
}
func (m *mockRunServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Run, error) {
	return m.getByID(ctx, id)
}
func (m *mockRunServicer) List(ctx context.Context, page domain.RunPage) ([]domain.Run, error) {
	return m.list(ctx, page)
}
func (m *mockRunServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

// compile-time checks: the fakes and the real services satisfy the interfaces.
var (
	_ handler.RunServicer      = (*mockRunServicer)(nil)
	_ handler.RunServicer      = (*service.RunService)(nil)
	_ handler.ScenarioServicer = (*service.ScenarioService)(nil)
)

// ---- helpers ---------------------------------------------------------------

const testMaxBody = 4096

// newHTTPHandler wires the real scenario service and the given run servicer
// the same way main.go does. A nil runs disables the history endpoints.
func newHTTPHandler(t *testing.T, runs handler.RunServicer) http.Handler {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	scenarios, err := service.NewScenarioService(8, log)
	require.NoError(t, err)
	return handler.NewServer(scenarios, runs, log).Routes(testMaxBody)
}

func do(t *testing.T, h http.Handler, method, target string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) handler.ErrorDetail {
	t.Helper()
	var body handler.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body.Error
}

func decodeTrajectories(t *testing.T, rec *httptest.ResponseRecorder) handler.TrajectoriesBody {
	t.Helper()
	var body handler.TrajectoriesBody
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func httptestRequest(method, target, body string) *http.Request {
	return httptest.NewRequest(method, target, strings.NewReader(body))
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

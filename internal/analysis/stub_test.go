package analysis

import (
	"context"
	"fmt"

	"github.com/jonathan/market-intel/internal/llm"
)

// stubClient is a canned-response model client for tests.
type stubClient struct {
	response string
	err      error
	calls    int
}

func (s *stubClient) GenerateContent(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	s.calls++
	return s.response, s.err
}

func (s *stubClient) GenerateJSON(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	s.calls++
	return s.response, s.err
}

func (s *stubClient) Close() error { return nil }

// failingClient always errors.
var errStub = fmt.Errorf("model unavailable")

func newFailingClient() *stubClient {
	return &stubClient{err: errStub}
}

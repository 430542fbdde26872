package assist

import "context"

// MockClient is a canned-response assistant used by tests and local
// development without a credential.
type MockClient struct {
	// Response is returned by Generate when Err is nil.
	Response string

	// Err is returned by Generate when non-nil.
	Err error

	// Prompts records every prompt passed to Generate.
	Prompts []string
}

// NewMockClient returns a MockClient that answers every prompt with response.
func NewMockClient(response string) *MockClient {
	return &MockClient{Response: response}
}

// Name returns the backend identifier.
func (m *MockClient) Name() string { return "mock" }

// Generate records the prompt and returns the canned response or error.
func (m *MockClient) Generate(_ context.Context, prompt string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

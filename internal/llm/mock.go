package llm

import (
	"context"
)

// MockClient is the explicit mock provider. Output is a fixed template so
// tests and local development get byte-identical generations.
type MockClient struct {
	// Text overrides the default template when non-empty.
	Text string
}

// NewMockClient constructs a mock client with the default template.
func NewMockClient() *MockClient {
	return &MockClient{}
}

func (c *MockClient) Provider() Provider {
	return ProviderMock
}

// Generate returns the template output. It honors context cancellation and
// reports token counts from the same chars/4 rule the cost model uses.
func (c *MockClient) Generate(ctx context.Context, req GenerateRequest) (Generation, error) {
	if err := ctx.Err(); err != nil {
		return Generation{}, err
	}
	text := c.Text
	if text == "" {
		text = defaultMockOutput
	}
	return Generation{
		Text:         text,
		Model:        "mock-template",
		InputTokens:  (len(req.Prompt) + 3) / 4,
		OutputTokens: (len(text) + 3) / 4,
	}, nil
}

// One candidate per rhetorical hook type, so the hook generator has a full
// spread to rank when running against the mock provider.
const defaultMockOutput = `What if one small change doubled your reach?
The proven playbook most creators overlook.
5 mistakes that quietly kill your videos.
My first video flopped, and that story changed everything.
Stop chasing trends. Everyone is wrong about them.`

var _ Client = (*MockClient)(nil)

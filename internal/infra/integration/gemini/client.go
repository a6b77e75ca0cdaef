package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

const saveLeadTool = "saveLead"

type Client struct {
	apiKey  string
	model   string
	baseURL string
	http    *http.Client
}

func NewClient(apiKey, model string) *Client {
	return &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Generate sends a single free-text prompt and returns the model's text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.generate(ctx, &generateRequest{
		Contents: []Content{{Role: "user", Parts: []Part{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}
	return firstText(resp)
}

// GenerateJSON constrains the response MIME type to JSON. Callers still
// strip markdown fences defensively before parsing.
func (c *Client) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	resp, err := c.generate(ctx, &generateRequest{
		Contents:         []Content{{Role: "user", Parts: []Part{{Text: prompt}}}},
		GenerationConfig: &GenerationConfig{ResponseMIMEType: "application/json"},
	})
	if err != nil {
		return "", err
	}
	return firstText(resp)
}

// NextTurn runs one chat turn with the saveLead tool declared. The model
// answers with either text or a functionCall part.
func (c *Client) NextTurn(ctx context.Context, system string, history []ChatMessage) (*TurnResult, error) {
	resp, err := c.generate(ctx, &generateRequest{
		SystemInstruction: &Content{Parts: []Part{{Text: system}}},
		Contents:          historyContents(history),
		Tools:             []Tool{{FunctionDeclarations: []FunctionDeclaration{saveLeadDeclaration()}}},
	})
	if err != nil {
		return nil, err
	}
	return parseTurn(resp)
}

// ToolResult replays the tool call with its outcome appended so the model
// produces the closing text for the turn.
func (c *Client) ToolResult(ctx context.Context, system string, history []ChatMessage, call *LeadToolCall, outcome string) (*TurnResult, error) {
	contents := historyContents(history)
	contents = append(contents,
		Content{Role: "model", Parts: []Part{{FunctionCall: &FunctionCall{
			Name: saveLeadTool,
			Args: map[string]any{
				"name":     call.Name,
				"email":    call.Email,
				"phone":    call.Phone,
				"company":  call.Company,
				"interest": call.Interest,
			},
		}}}},
		Content{Role: "user", Parts: []Part{{FunctionResponse: &FunctionResponse{
			Name:     saveLeadTool,
			Response: map[string]any{"result": outcome},
		}}}},
	)

	resp, err := c.generate(ctx, &generateRequest{
		SystemInstruction: &Content{Parts: []Part{{Text: system}}},
		Contents:          contents,
		Tools:             []Tool{{FunctionDeclarations: []FunctionDeclaration{saveLeadDeclaration()}}},
	})
	if err != nil {
		return nil, err
	}

	turn, err := parseTurn(resp)
	if err != nil {
		return nil, err
	}
	// The closing turn must be text; drop a repeated tool call.
	turn.ToolCall = nil
	return turn, nil
}

func (c *Client) generate(ctx context.Context, payload *generateRequest) (*generateResponse, error) {
	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("gemini marshal failed: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gemini API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var result generateResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("gemini decode failed: %w", err)
	}
	return &result, nil
}

func historyContents(history []ChatMessage) []Content {
	contents := make([]Content, 0, len(history))
	for _, m := range history {
		role := "user"
		if m.Role == "assistant" {
			role = "model"
		}
		contents = append(contents, Content{Role: role, Parts: []Part{{Text: m.Content}}})
	}
	return contents
}

func saveLeadDeclaration() FunctionDeclaration {
	return FunctionDeclaration{
		Name:        saveLeadTool,
		Description: "Save a lead's contact information and interest.",
		Parameters: &Schema{
			Type: "object",
			Properties: map[string]*Schema{
				"name":     {Type: "string", Description: "Name of the lead"},
				"email":    {Type: "string", Description: "Email address of the lead"},
				"phone":    {Type: "string", Description: "Phone number"},
				"company":  {Type: "string", Description: "Company name"},
				"interest": {Type: "string", Description: "What are they interested in? (Audit, PoC, etc.)"},
			},
			Required: []string{"email"},
		},
	}
}

func parseTurn(resp *generateResponse) (*TurnResult, error) {
	if len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("gemini returned no candidates")
	}

	turn := &TurnResult{}
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.FunctionCall != nil && part.FunctionCall.Name == saveLeadTool && turn.ToolCall == nil {
			turn.ToolCall = &LeadToolCall{
				Name:     strArg(part.FunctionCall.Args, "name"),
				Email:    strArg(part.FunctionCall.Args, "email"),
				Phone:    strArg(part.FunctionCall.Args, "phone"),
				Company:  strArg(part.FunctionCall.Args, "company"),
				Interest: strArg(part.FunctionCall.Args, "interest"),
			}
			continue
		}
		if part.Text != "" {
			turn.Text += part.Text
		}
	}

	if turn.Text == "" && turn.ToolCall == nil {
		return nil, fmt.Errorf("gemini returned an empty turn")
	}

	if resp.UsageMetadata != nil {
		turn.PromptTokens = resp.UsageMetadata.PromptTokenCount
		turn.OutputTokens = resp.UsageMetadata.CandidatesTokenCount
	}
	return turn, nil
}

func strArg(args map[string]any, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}

func firstText(resp *generateResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.Text != "" {
			return part.Text, nil
		}
	}
	return "", fmt.Errorf("gemini returned no text")
}

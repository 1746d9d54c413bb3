package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"sheet-agent/internal/sheet"
)

const systemPrompt = `You are a spreadsheet assistant. You help users create and manage spreadsheets through natural language commands.

IMPORTANT: You have access to spreadsheet tools that you MUST use to perform operations. Do not just describe what you would do - actually call the tools to do it.

Interpret user commands (even vague ones) and call the appropriate tools.

Examples of how to interpret commands:
- "make a new table for tracking expenses" -> create_spreadsheet with name "expenses" and columns like "description, amount, category, date"
- "add coffee 5 dollars" -> add_row with "description:coffee, amount:5"
- "change row 2 price to 10" -> edit_cell with row_id=2, column="price", value="10"
- "show me the data" -> display
- "remove the notes column" -> delete_column with column_name="notes"
- "plot the data" or "visualize this" -> plot_data (auto-selects best chart type)
- "show me a bar chart of sales by category" -> plot_data with plot_type="bar", x_column="category", y_column="sales"

When a user describes data to add, infer which columns the values belong to based on the current spreadsheet structure.

Always call the display tool after modifications so users see the result. If no spreadsheet exists yet, suggest creating one first.`

const (
	defaultBaseURL   = "https://api.anthropic.com"
	defaultModel     = "claude-sonnet-4-20250514"
	apiVersion       = "2023-06-01"
	maxToolTurns     = 12
	maxResponseToken = 2048
)

// Interpreter turns free-form user input into executed spreadsheet
// operations and returns the assistant's closing remark.
type Interpreter interface {
	Interpret(ctx context.Context, input string) (string, error)
}

// Client talks to the Anthropic Messages API, looping over tool calls
// until the model stops asking for them. Conversation history is kept so
// follow-ups like "now delete that row" resolve correctly.
type Client struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client

	// Run executes one decoded command; its result text goes back to the
	// model as the tool result.
	Run func(Command) (string, error)

	history []message
}

// NewClient reads ANTHROPIC_API_KEY from the environment. The run hook
// is usually Dispatcher.Dispatch.
func NewClient(run func(Command) (string, error)) (*Client, error) {
	key := os.Getenv("ANTHROPIC_API_KEY")
	if key == "" {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY is not set")
	}
	return &Client{
		APIKey:     key,
		Run:        run,
		HTTPClient: &http.Client{Timeout: 120 * time.Second},
	}, nil
}

type message struct {
	Role    string         `json:"role"`
	Content []contentBlock `json:"content"`
}

type contentBlock struct {
	Type string `json:"type"`

	// type "text"
	Text string `json:"text,omitempty"`

	// type "tool_use"
	ID    string          `json:"id,omitempty"`
	Name  string          `json:"name,omitempty"`
	Input json.RawMessage `json:"input,omitempty"`

	// type "tool_result"
	ToolUseID string `json:"tool_use_id,omitempty"`
	Content   string `json:"content,omitempty"`
	IsError   bool   `json:"is_error,omitempty"`
}

type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	System    string    `json:"system"`
	Tools     []toolDef `json:"tools"`
	Messages  []message `json:"messages"`
}

type messagesResponse struct {
	Content    []contentBlock `json:"content"`
	StopReason string         `json:"stop_reason"`
	Error      *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// Interpret sends the input and services tool calls until the model
// finishes its turn. Recoverable operation failures are reported back to
// the model as errored tool results so it can adjust; anything else
// aborts the turn.
func (c *Client) Interpret(ctx context.Context, input string) (string, error) {
	base := len(c.history)
	c.history = append(c.history, message{
		Role:    "user",
		Content: []contentBlock{{Type: "text", Text: input}},
	})

	var finalText []string
	for turn := 0; turn < maxToolTurns; turn++ {
		resp, err := c.send(ctx)
		if err != nil {
			// A failed call mid-loop would strand a tool_use block without
			// its tool_result, which the API rejects on every later call.
			// Drop the whole turn so the next input starts from a
			// well-formed conversation.
			c.history = c.history[:base]
			return "", err
		}

		c.history = append(c.history, message{Role: "assistant", Content: resp.Content})

		var results []contentBlock
		for _, block := range resp.Content {
			switch block.Type {
			case "text":
				if t := strings.TrimSpace(block.Text); t != "" {
					finalText = append(finalText, t)
				}
			case "tool_use":
				results = append(results, c.runTool(block))
			}
		}

		if resp.StopReason != "tool_use" || len(results) == 0 {
			return strings.Join(finalText, "\n"), nil
		}
		c.history = append(c.history, message{Role: "user", Content: results})
	}
	return strings.Join(finalText, "\n"), fmt.Errorf("tool loop exceeded %d turns", maxToolTurns)
}

func (c *Client) runTool(block contentBlock) contentBlock {
	result := contentBlock{Type: "tool_result", ToolUseID: block.ID}

	cmd, err := DecodeCommand(block.Name, block.Input)
	if err == nil {
		var text string
		text, err = c.Run(cmd)
		if err == nil {
			result.Content = text
			return result
		}
	}
	if err != nil && !sheet.IsRecoverable(err) {
		// Still surfaced to the model, but flagged so it stops retrying.
		result.Content = fmt.Sprintf("Error: %v. Do not retry this operation.", err)
		result.IsError = true
		return result
	}
	result.Content = fmt.Sprintf("Error: %v", err)
	result.IsError = true
	return result
}

func (c *Client) send(ctx context.Context) (*messagesResponse, error) {
	model := c.Model
	if model == "" {
		model = defaultModel
	}
	base := strings.TrimSuffix(c.BaseURL, "/")
	if base == "" {
		base = defaultBaseURL
	}

	body, err := json.Marshal(messagesRequest{
		Model:     model,
		MaxTokens: maxResponseToken,
		System:    systemPrompt,
		Tools:     toolDefs(),
		Messages:  c.history,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, base+"/v1/messages", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Api-Key", c.APIKey)
	req.Header.Set("Anthropic-Version", apiVersion)

	client := c.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach model API: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read model response: %w", err)
	}

	var parsed messagesResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode model response (status %s): %w", resp.Status, err)
	}
	if resp.StatusCode != http.StatusOK {
		if parsed.Error != nil {
			return nil, fmt.Errorf("model API error (%s): %s", parsed.Error.Type, parsed.Error.Message)
		}
		return nil, fmt.Errorf("model API error: status %s", resp.Status)
	}
	return &parsed, nil
}

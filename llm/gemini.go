package llm

import (
	"context"
	"fmt"
	"os"

	"github.com/aniemerg/smolcc/errors"
	"github.com/aniemerg/smolcc/session"
	"github.com/aniemerg/smolcc/tools"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiLLMClient is a client for the Google Gemini API.
type GeminiLLMClient struct {
	model *genai.GenerativeModel
}

// NewGeminiLLMClient creates a new client. It requires the GEMINI_API_KEY
// environment variable to be set.
func NewGeminiLLMClient(ctx context.Context, modelName string) (*GeminiLLMClient, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, errors.New("GEMINI_API_KEY environment variable not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create genai client")
	}

	return &GeminiLLMClient{model: client.GenerativeModel(modelName)}, nil
}

// Chat sends the conversation and returns the model's reply. Gemini executes
// requested tool calls inline and folds the results into the response text.
func (g *GeminiLLMClient) Chat(ctx context.Context, messages []session.Message, availableTools []tools.Tool) (*session.Message, error) {
	history := convertMessagesToGemini(messages)
	g.model.Tools = convertToolsToGemini(availableTools)

	if len(history) == 0 {
		return nil, errors.New("no messages to send")
	}
	lastMessage := history[len(history)-1]

	chatSession := g.model.StartChat()
	chatSession.History = history[:len(history)-1]
	resp, err := chatSession.SendMessage(ctx, lastMessage.Parts...)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to send message to Gemini")
	}

	return processGeminiResponse(ctx, resp, availableTools)
}

// convertMessagesToGemini converts the session history to Gemini content.
// Gemini has no system role; system and tool messages travel as user content.
func convertMessagesToGemini(messages []session.Message) []*genai.Content {
	var contents []*genai.Content
	for _, msg := range messages {
		role := "user"
		if msg.Role == "assistant" {
			role = "model"
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(msg.Content)},
		})
	}
	return contents
}

// convertToolsToGemini converts the Tool interface to Gemini function
// declarations. Arguments are nested under a single "args" object because the
// registry tools take a free-form argument map.
func convertToolsToGemini(ts []tools.Tool) []*genai.Tool {
	if len(ts) == 0 {
		return nil
	}
	var funcDecls []*genai.FunctionDeclaration
	for _, tool := range ts {
		funcDecls = append(funcDecls, &genai.FunctionDeclaration{
			Name:        tool.Name(),
			Description: tool.Description(),
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"args": {
						Type:        genai.TypeObject,
						Description: "Arguments for the function call, as a map.",
					},
				},
				Required: []string{"args"},
			},
		})
	}
	return []*genai.Tool{{FunctionDeclarations: funcDecls}}
}

// processGeminiResponse converts an API response into a session message,
// executing any function calls the model requested.
func processGeminiResponse(ctx context.Context, resp *genai.GenerateContentResponse, availableTools []tools.Tool) (*session.Message, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, errors.New("received an empty response from Gemini")
	}

	var responseContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		switch v := part.(type) {
		case genai.Text:
			responseContent += string(v)
		case genai.FunctionCall:
			var calledTool tools.Tool
			for _, tool := range availableTools {
				if tool.Name() == v.Name {
					calledTool = tool
					break
				}
			}
			if calledTool == nil {
				responseContent += fmt.Sprintf("Error: model requested to call unavailable tool '%s'", v.Name)
				continue
			}

			toolArgs, ok := v.Args["args"].(map[string]interface{})
			if !ok {
				responseContent += fmt.Sprintf("Error: invalid arguments for tool '%s', expected a map under 'args' key", v.Name)
				continue
			}

			result, err := calledTool.Execute(ctx, toolArgs)
			if err != nil {
				responseContent += fmt.Sprintf("Error executing tool '%s': %v", v.Name, err)
				continue
			}
			responseContent += result
		default:
			return nil, errors.New("unsupported part type in Gemini response: %T", v)
		}
	}

	return &session.Message{Role: "assistant", Content: responseContent}, nil
}

package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/aniemerg/smolcc/errors"
	"github.com/aniemerg/smolcc/session"
	"github.com/aniemerg/smolcc/tools"
	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
)

// deepSeekBaseURL is the OpenAI-compatible endpoint for DeepSeek models, the
// assistant's default provider.
const deepSeekBaseURL = "https://api.deepseek.com"

// OpenAILLMClient is a client for any OpenAI-compatible chat completion API.
type OpenAILLMClient struct {
	client *openai.Client
	model  string
}

// NewOpenAILLMClient creates a client for the OpenAI API. It requires the
// OPENAI_API_KEY environment variable; OPENAI_BASE_URL selects a custom
// endpoint.
func NewOpenAILLMClient(ctx context.Context, modelName string) (*OpenAILLMClient, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, errors.New("OPENAI_API_KEY environment variable not set")
	}

	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL := os.Getenv("OPENAI_BASE_URL"); baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	c := openai.NewClient(opts...)
	return &OpenAILLMClient{client: &c, model: modelName}, nil
}

// NewDeepSeekLLMClient creates a client for the DeepSeek chat API, which
// speaks the OpenAI wire format. It requires the DEEPSEEK_API_KEY environment
// variable.
func NewDeepSeekLLMClient(ctx context.Context, modelName string) (*OpenAILLMClient, error) {
	apiKey := os.Getenv("DEEPSEEK_API_KEY")
	if apiKey == "" {
		return nil, errors.New("DEEPSEEK_API_KEY environment variable not set")
	}

	c := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(deepSeekBaseURL),
	)
	return &OpenAILLMClient{client: &c, model: modelName}, nil
}

// Chat sends the conversation and returns the model's reply.
func (o *OpenAILLMClient) Chat(ctx context.Context, messages []session.Message, availableTools []tools.Tool) (*session.Message, error) {
	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(o.model),
		Messages: convertMessagesToOpenAI(messages),
		Tools:    convertToolsToOpenAI(availableTools),
	}

	resp, err := o.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, errors.Wrapf(err, "chat completion request failed")
	}
	return processOpenAIResponse(resp)
}

// processOpenAIResponse converts an API response into a session message.
func processOpenAIResponse(resp *openai.ChatCompletion) (*session.Message, error) {
	if len(resp.Choices) == 0 {
		return &session.Message{Role: "assistant", Content: ""}, nil
	}
	choice := resp.Choices[0].Message

	if len(choice.ToolCalls) == 0 {
		return &session.Message{Role: "assistant", Content: choice.Content}, nil
	}

	var toolCalls []session.ToolCall
	for _, tc := range choice.ToolCalls {
		var toolArgs map[string]interface{}
		if err := json.Unmarshal([]byte(tc.Function.Arguments), &toolArgs); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal tool call arguments for '%s'", tc.Function.Name)
		}
		toolCalls = append(toolCalls, session.ToolCall{
			ToolCallID: tc.ID,
			Name:       tc.Function.Name,
			Args:       toolArgs,
		})
	}
	return &session.Message{
		Role:      "assistant",
		Content:   choice.Content,
		ToolCalls: toolCalls,
	}, nil
}

// convertMessagesToOpenAI converts the session history to the wire format.
func convertMessagesToOpenAI(messages []session.Message) []openai.ChatCompletionMessageParamUnion {
	var chatMessages []openai.ChatCompletionMessageParamUnion
	for _, msg := range messages {
		switch msg.Role {
		case "system":
			chatMessages = append(chatMessages, openai.SystemMessage(msg.Content))
		case "assistant":
			assistantMessage := openai.ChatCompletionMessage{
				Role:    "assistant",
				Content: msg.Content,
			}
			if len(msg.ToolCalls) > 0 {
				var toolCalls []openai.ChatCompletionMessageToolCallUnion
				for _, tc := range msg.ToolCalls {
					argsBytes, err := json.Marshal(tc.Args)
					if err != nil {
						fmt.Printf("Warning: could not marshal tool call arguments for %s: %v. Skipping call in history.\n", tc.Name, err)
						continue
					}
					toolCalls = append(toolCalls, openai.ChatCompletionMessageToolCallUnion{
						ID:   tc.ToolCallID,
						Type: "function",
						Function: openai.ChatCompletionMessageFunctionToolCallFunction{
							Name:      tc.Name,
							Arguments: string(argsBytes),
						},
					})
				}
				assistantMessage.ToolCalls = toolCalls
			}
			chatMessages = append(chatMessages, assistantMessage.ToParam())
		case "tool":
			// The first ToolCall identifies which call this result answers.
			if len(msg.ToolCalls) != 1 {
				fmt.Printf("Warning: tool message is malformed; expected exactly one ToolCall, found %d. Skipping.\n", len(msg.ToolCalls))
				continue
			}
			chatMessages = append(chatMessages, openai.ToolMessage(msg.Content, msg.ToolCalls[0].ToolCallID))
		case "user":
			fallthrough
		default:
			chatMessages = append(chatMessages, openai.UserMessage(msg.Content))
		}
	}
	return chatMessages
}

// convertToolsToOpenAI converts the Tool interface to the function-tool
// format. Arguments are declared as a free-form object; the tool descriptions
// document the expected keys.
func convertToolsToOpenAI(ts []tools.Tool) []openai.ChatCompletionToolUnionParam {
	if len(ts) == 0 {
		return nil
	}
	var openAITools []openai.ChatCompletionToolUnionParam
	for _, t := range ts {
		params := openai.FunctionParameters{
			"type":       "object",
			"properties": map[string]any{},
		}
		openAITools = append(openAITools, openai.ChatCompletionFunctionTool(openai.FunctionDefinitionParam{
			Name:        t.Name(),
			Description: openai.String(t.Description()),
			Parameters:  params,
		}))
	}
	return openAITools
}

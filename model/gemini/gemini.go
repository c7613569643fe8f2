// Package gemini provides an implementation of model.Model using the Google
// Gemini API (google.golang.org/genai), including streaming and
// function/tool calling. It adapts the runtime's normalized Request/Response
// structures into the SDK's content format and back.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/laxmi-genai/adk-a2ui-samples/core"
	"github.com/laxmi-genai/adk-a2ui-samples/model"
)

// Options configure the Gemini model adapter. Fields mirror a subset of the
// generation parameters intentionally kept minimal; extend via functional
// options without breaking callers.
type Options struct {
	Model           string
	Temperature     float64
	MaxOutputTokens int32
	APIKey          string
}

// Model wraps the Gemini API behind the generic model.Model interface.
type Model struct {
	client *genai.Client
	opts   Options
}

// NewModel creates a new Gemini model. The API key falls back to the SDK's
// environment lookup (GOOGLE_API_KEY / GEMINI_API_KEY) when not set.
func NewModel(ctx context.Context, optFns ...func(o *Options)) (*Model, error) {
	opts := Options{
		Model:           "gemini-2.5-flash",
		Temperature:     0.7,
		MaxOutputTokens: 4096,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: opts.APIKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Model{client: client, opts: opts}, nil
}

// NewModelFromClient creates a new Gemini model from an existing client.
func NewModelFromClient(client *genai.Client, optFns ...func(o *Options)) *Model {
	opts := Options{
		Model:           "gemini-2.5-flash",
		Temperature:     0.7,
		MaxOutputTokens: 4096,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Model{client: client, opts: opts}
}

// Generate implements unified streaming / non-streaming generation. It adapts
// the Gemini GenerateContent API (with function calling) into model.Response
// events.
func (m *Model) Generate(ctx context.Context, req model.Request) (<-chan model.Response, <-chan error) {
	out := make(chan model.Response, 32)
	errCh := make(chan error, 1)

	go func() {
		defer close(out)
		defer close(errCh)

		contents := buildContents(req)
		config := m.buildConfig(req)

		if req.Stream {
			m.handleStreaming(ctx, contents, config, out, errCh)
			return
		}
		m.handleNonStreaming(ctx, contents, config, out, errCh)
	}()

	return out, errCh
}

// buildContents converts normalized contents into Gemini contents. Tool
// responses are embedded as FunctionResponse parts on the user role, matching
// the Gemini function-calling protocol.
func buildContents(req model.Request) []*genai.Content {
	var contents []*genai.Content
	for _, c := range req.Contents {
		var parts []*genai.Part
		for _, p := range c.Parts {
			switch part := p.(type) {
			case core.TextPart:
				if part.Text != "" {
					parts = append(parts, &genai.Part{Text: part.Text})
				}
			case core.FunctionCallPart:
				var args map[string]any
				if part.FunctionCall.Arguments != "" {
					_ = json.Unmarshal([]byte(part.FunctionCall.Arguments), &args)
				}
				parts = append(parts, &genai.Part{
					FunctionCall: &genai.FunctionCall{
						ID:   part.FunctionCall.ID,
						Name: part.FunctionCall.Name,
						Args: args,
					},
				})
			case core.FunctionResponsePart:
				fr := part.FunctionResponse
				response := map[string]any{}
				if fr.Error != "" {
					response["error"] = fr.Error
				} else if rm, ok := fr.Response.(map[string]any); ok {
					response = rm
				} else if fr.Response != nil {
					response["result"] = fmt.Sprintf("%v", fr.Response)
				}
				parts = append(parts, &genai.Part{
					FunctionResponse: &genai.FunctionResponse{
						ID:       fr.ID,
						Name:     fr.Name,
						Response: response,
					},
				})
			case core.FilePart:
				if part.File.URI != "" {
					mime := ""
					if part.File.MimeType != nil {
						mime = *part.File.MimeType
					}
					parts = append(parts, &genai.Part{
						FileData: &genai.FileData{MIMEType: mime, FileURI: part.File.URI},
					})
				}
			}
		}
		if len(parts) == 0 {
			continue
		}
		role := "user"
		if c.Role == "assistant" {
			role = "model"
		}
		contents = append(contents, &genai.Content{Role: role, Parts: parts})
	}
	return contents
}

// buildConfig creates the Gemini generation config including tool declarations.
func (m *Model) buildConfig(req model.Request) *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(m.opts.Temperature)),
		MaxOutputTokens: m.opts.MaxOutputTokens,
	}

	if req.Instructions != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.Instructions}},
			Role:  "user",
		}
	}

	for _, tdef := range req.Tools {
		config.Tools = append(config.Tools, &genai.Tool{
			FunctionDeclarations: []*genai.FunctionDeclaration{
				{
					Name:        tdef.Function.Name,
					Description: tdef.Function.Description,
					Parameters:  toGenaiSchema(tdef.Function.Parameters),
				},
			},
		})
	}

	return config
}

// toGenaiSchema converts a JSON schema map to a Gemini schema.
func toGenaiSchema(schema map[string]any) *genai.Schema {
	if schema == nil {
		return nil
	}

	s := &genai.Schema{}
	if t, ok := schema["type"].(string); ok {
		s.Type = genai.Type(strings.ToUpper(t))
	}
	if desc, ok := schema["description"].(string); ok {
		s.Description = desc
	}
	if props, ok := schema["properties"].(map[string]any); ok {
		s.Properties = make(map[string]*genai.Schema)
		for name, prop := range props {
			if propMap, ok := prop.(map[string]any); ok {
				s.Properties[name] = toGenaiSchema(propMap)
			}
		}
	}
	switch required := schema["required"].(type) {
	case []any:
		for _, r := range required {
			if rs, ok := r.(string); ok {
				s.Required = append(s.Required, rs)
			}
		}
	case []string:
		s.Required = append(s.Required, required...)
	}
	if items, ok := schema["items"].(map[string]any); ok {
		s.Items = toGenaiSchema(items)
	}
	if enum, ok := schema["enum"].([]any); ok {
		for _, e := range enum {
			if es, ok := e.(string); ok {
				s.Enum = append(s.Enum, es)
			}
		}
	}
	return s
}

// handleStreaming processes streaming responses and forwards partial / final events.
func (m *Model) handleStreaming(
	ctx context.Context,
	contents []*genai.Content,
	config *genai.GenerateContentConfig,
	out chan<- model.Response,
	errCh chan<- error,
) {
	var textBuilder strings.Builder
	var calls []core.FunctionCall
	finishReason := ""
	var usage *model.TokenUsage

	for genResp, err := range m.client.Models.GenerateContentStream(ctx, m.opts.Model, contents, config) {
		if err != nil {
			errCh <- fmt.Errorf("gemini streaming error: %w", err)
			return
		}
		if len(genResp.Candidates) == 0 {
			continue
		}
		candidate := genResp.Candidates[0]
		if candidate.FinishReason != "" {
			finishReason = mapFinishReason(candidate.FinishReason)
		}
		if genResp.UsageMetadata != nil {
			usage = &model.TokenUsage{
				PromptTokens:     int(genResp.UsageMetadata.PromptTokenCount),
				CompletionTokens: int(genResp.UsageMetadata.CandidatesTokenCount),
				TotalTokens:      int(genResp.UsageMetadata.TotalTokenCount),
			}
		}
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part.Text != "" && !part.Thought {
				textBuilder.WriteString(part.Text)
				select {
				case <-ctx.Done():
					errCh <- ctx.Err()
					return
				case out <- model.Response{
					Partial: true,
					Content: core.Content{
						Role:  "assistant",
						Parts: []core.Part{core.TextPart{Text: part.Text}},
					},
				}:
				}
			}
			if part.FunctionCall != nil {
				calls = append(calls, toFunctionCall(part.FunctionCall))
			}
		}
	}

	finalParts := make([]core.Part, 0, len(calls)+1)
	if textBuilder.Len() > 0 {
		finalParts = append(finalParts, core.TextPart{Text: textBuilder.String()})
	}
	for _, fc := range calls {
		finalParts = append(finalParts, core.FunctionCallPart{FunctionCall: fc})
	}
	if finishReason == "" {
		finishReason = "stop"
	}
	out <- model.Response{
		Partial:      false,
		Content:      core.Content{Role: "assistant", Parts: finalParts},
		FinishReason: finishReason,
		Usage:        usage,
	}
}

// handleNonStreaming processes a normal (non-streaming) completion.
func (m *Model) handleNonStreaming(
	ctx context.Context,
	contents []*genai.Content,
	config *genai.GenerateContentConfig,
	out chan<- model.Response,
	errCh chan<- error,
) {
	genResp, err := m.client.Models.GenerateContent(ctx, m.opts.Model, contents, config)
	if err != nil {
		errCh <- fmt.Errorf("gemini api error: %w", err)
		return
	}
	if len(genResp.Candidates) == 0 {
		errCh <- fmt.Errorf("no candidates returned")
		return
	}
	candidate := genResp.Candidates[0]

	var parts []core.Part
	if candidate.Content != nil {
		for _, part := range candidate.Content.Parts {
			if part.Text != "" && !part.Thought {
				parts = append(parts, core.TextPart{Text: part.Text})
			}
			if part.FunctionCall != nil {
				parts = append(parts, core.FunctionCallPart{FunctionCall: toFunctionCall(part.FunctionCall)})
			}
		}
	}

	var usage *model.TokenUsage
	if genResp.UsageMetadata != nil {
		usage = &model.TokenUsage{
			PromptTokens:     int(genResp.UsageMetadata.PromptTokenCount),
			CompletionTokens: int(genResp.UsageMetadata.CandidatesTokenCount),
			TotalTokens:      int(genResp.UsageMetadata.TotalTokenCount),
		}
	}

	out <- model.Response{
		Partial:      false,
		Content:      core.Content{Role: "assistant", Parts: parts},
		FinishReason: mapFinishReason(candidate.FinishReason),
		Usage:        usage,
	}
}

// toFunctionCall converts a Gemini function call part into the normalized form.
func toFunctionCall(fc *genai.FunctionCall) core.FunctionCall {
	args := ""
	if fc.Args != nil {
		if b, err := json.Marshal(fc.Args); err == nil {
			args = string(b)
		}
	}
	id := fc.ID
	if id == "" {
		id = core.NewID()
	}
	return core.FunctionCall{ID: id, Name: fc.Name, Arguments: args}
}

// mapFinishReason converts Gemini finish reasons to the normalized strings.
func mapFinishReason(reason genai.FinishReason) string {
	switch reason {
	case genai.FinishReasonStop:
		return "stop"
	case genai.FinishReasonMaxTokens:
		return "length"
	case genai.FinishReasonSafety:
		return "content_filter"
	default:
		return "stop"
	}
}

// Info returns metadata describing this Gemini model implementation.
func (m *Model) Info() model.Info {
	return model.Info{
		Name:          m.opts.Model,
		Provider:      "gemini",
		SupportsTools: true,
	}
}

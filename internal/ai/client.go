// Package ai talks to OpenAI for coaching chat, food lookups and exercise
// guidance.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/yuin/goldmark"

	"github.com/gymello/gymello/internal/errors"
	"github.com/gymello/gymello/internal/nutrition"
	"github.com/gymello/gymello/internal/profile"
	"github.com/gymello/gymello/internal/workout"
)

var (
	// ErrNoResponse is returned when the model replies with no content.
	ErrNoResponse = errors.NewSentinel("model returned no content")
	// ErrFoodNotFound is returned when the model cannot match the queried
	// food.
	ErrFoodNotFound = errors.NewSentinel("no nutrition data found for query")
)

// completionFunc abstracts the chat completion call so tests can script
// responses without network access.
type completionFunc func(ctx context.Context, params openai.ChatCompletionNewParams) (*openai.ChatCompletion, error)

// Client wraps the OpenAI API for the app's three AI features.
type Client struct {
	complete completionFunc
	markdown goldmark.Markdown
	logger   *slog.Logger
}

// NewClient creates a Client authenticated with the given API key.
func NewClient(apiKey string, logger *slog.Logger) *Client {
	api := openai.NewClient(option.WithAPIKey(apiKey))
	return &Client{
		complete: func(ctx context.Context, params openai.ChatCompletionNewParams) (*openai.ChatCompletion, error) {
			return api.Chat.Completions.New(ctx, params)
		},
		markdown: goldmark.New(),
		logger:   logger,
	}
}

const coachSystemPrompt = `You are GymEllo Coach, a specialized AI fitness and nutrition assistant.
Your responses should be encouraging, knowledgeable, and formatted with markdown for readability (e.g., using lists and bold text).`

// Chat answers a free-form coaching question. Profile and plan are optional
// context; when present the answer is tailored to them.
func (c *Client) Chat(ctx context.Context, prompt string, p *profile.Profile, plan workout.Plan) (string, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Current user prompt: %q\n", prompt)

	if p != nil {
		sb.WriteString("\nHere is the user's profile for context. Tailor your response to them:\n")
		fmt.Fprintf(&sb, "- Goal: %s\n", p.Goal)
		fmt.Fprintf(&sb, "- Weight: %v kg\n", p.WeightKg)
		fmt.Fprintf(&sb, "- Height: %v cm\n", p.HeightCm)
		fmt.Fprintf(&sb, "- Age: %d\n", p.Age)
		fmt.Fprintf(&sb, "- Gender: %s\n", p.Gender)
		fmt.Fprintf(&sb, "- Workouts per week: %d\n", p.WorkoutFrequency)
	}
	if len(plan) > 0 {
		sb.WriteString("\nCurrent workout plan:\n")
		keys := make([]string, 0, len(plan))
		for key := range plan {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			fmt.Fprintf(&sb, "- %s: %s\n", plan[key].Day, plan[key].Title)
		}
	}

	return c.text(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModelGPT4o,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(coachSystemPrompt),
			openai.UserMessage(sb.String()),
		},
	})
}

// foodSchema constrains the lookup response so every field unmarshals into
// nutrition.FoodItem.
var foodSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"name":        map[string]any{"type": "string", "description": "Full name of the food item."},
		"calories":    map[string]any{"type": "number", "description": "Calories per serving."},
		"protein":     map[string]any{"type": "number", "description": "Protein in grams per serving."},
		"carbs":       map[string]any{"type": "number", "description": "Carbohydrates in grams per serving."},
		"fat":         map[string]any{"type": "number", "description": "Fat in grams per serving."},
		"fiber":       map[string]any{"type": "number", "description": "Fiber in grams per serving."},
		"servingSize": map[string]any{"type": "number", "description": "The size of a single serving."},
		"servingUnit": map[string]any{"type": "string", "description": "The unit of the serving size, e.g. g, ml, cup."},
	},
	"required": []string{
		"name", "calories", "protein", "carbs", "fat", "fiber", "servingSize", "servingUnit",
	},
	"additionalProperties": false,
}

// LookupFood fetches nutritional data for a free-form food query. Returns
// ErrFoodNotFound when the model cannot find a match.
func (c *Client) LookupFood(ctx context.Context, query string) (nutrition.FoodItem, error) {
	prompt := fmt.Sprintf(`You are an expert food scientist using the USDA FoodData Central database as your primary source. Provide precise nutritional information for a 100g serving of %q. If a different unit is specified (e.g. "1 cup"), calculate for that unit but also return the base serving size and unit. If you cannot find the exact food, find the closest match. If no match is found, return all numeric values as 0 and the name as "Not Found".`, query)

	raw, err := c.text(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModelGPT4o,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
				JSONSchema: openai.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:        "food_item",
					Description: openai.String("Nutritional information for a single food item"),
					Schema:      foodSchema,
					Strict:      openai.Bool(true),
				},
			},
		},
	})
	if err != nil {
		return nutrition.FoodItem{}, err
	}

	var item nutrition.FoodItem
	if err = json.Unmarshal([]byte(raw), &item); err != nil {
		return nutrition.FoodItem{}, fmt.Errorf("parse food lookup response: %w", err)
	}
	if item.Name == "Not Found" {
		return nutrition.FoodItem{}, fmt.Errorf("%w: %s", ErrFoodNotFound, query)
	}

	c.logger.LogAttrs(ctx, slog.LevelDebug, "food lookup resolved",
		slog.String("query", query),
		slog.String("name", item.Name))
	return item, nil
}

// ExerciseGuidance returns execution instructions for an exercise as HTML.
// The model answers in markdown and the result is rendered server side, so
// the client never interprets raw model output as markup.
func (c *Client) ExerciseGuidance(ctx context.Context, exerciseName string) (string, error) {
	prompt := fmt.Sprintf(`You are GymEllo Coach, a professional fitness trainer.
For the exercise %q, answer in markdown with:
1. A numbered list of 3-4 short steps on how to perform the exercise correctly.
2. A bold "Pro Tip:" line at the end.
Answer with the markdown only, no preamble.`, exerciseName)

	text, err := c.text(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModelGPT4o,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err = c.markdown.Convert([]byte(text), &buf); err != nil {
		return "", fmt.Errorf("render exercise guidance: %w", err)
	}
	return buf.String(), nil
}

// text runs a completion and extracts the first choice's content.
func (c *Client) text(ctx context.Context, params openai.ChatCompletionNewParams) (string, error) {
	completion, err := c.complete(ctx, params)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return "", ErrNoResponse
	}

	c.logger.LogAttrs(ctx, slog.LevelDebug, "chat completion finished",
		slog.Int64("prompt_tokens", completion.Usage.PromptTokens),
		slog.Int64("completion_tokens", completion.Usage.CompletionTokens))
	return completion.Choices[0].Message.Content, nil
}

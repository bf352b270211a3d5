// Package assist provides an AI analyst for portfolio commentary.
package assist

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

const systemPrompt = `You are a portfolio analyst. The user shares the current
valuation report of their personal portfolio, in markdown, as context.
Answer questions about allocation, concentration and recent changes.
Be factual and concise. Figures you were not given are unknown, say so
instead of guessing. Never give personalized investment advice.`

// Analyst holds a chat session with the model, seeded with the
// current valuation report.
type Analyst struct {
	chat *genai.Chat
}

// NewAnalyst opens a chat session and primes it with the valuation report.
func NewAnalyst(ctx context.Context, client *genai.Client, report string) (*Analyst, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemPrompt}}},
	}
	chat, err := client.Chats.Create(ctx, model, config, nil)
	if err != nil {
		return nil, fmt.Errorf("create chat: %w", err)
	}

	a := &Analyst{chat: chat}
	if report != "" {
		if _, err := a.Ask(ctx, "Here is my current portfolio valuation:\n\n"+report); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Ask sends one question and returns the model's text answer.
func (a *Analyst) Ask(ctx context.Context, question string) (string, error) {
	resp, err := a.chat.Send(ctx, &genai.Part{Text: question})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from analyst")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

const prompt = "assist> "

// Run starts an interactive session. Initial prompts are consumed before
// reading from r. Typing "bye" or closing the input ends the session.
func (a *Analyst) Run(ctx context.Context, w io.Writer, r io.Reader, prompts ...string) error {
	fmt.Fprintln(w, "Portfolio analyst ready. Type 'bye' to exit.")

	reader := bufio.NewReader(r)
	for {
		fmt.Fprint(w, prompt)

		var input string
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			fmt.Fprintln(w, input)
		} else {
			var err error
			input, err = reader.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil
				}
				return err
			}
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == "bye" {
			return nil
		}

		answer, err := a.Ask(ctx, input)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, answer)
	}
}

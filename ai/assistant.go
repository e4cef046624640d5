//go:generate go run go.uber.org/mock/mockgen -source=assistant.go -destination=../mocks/mock_assistant.go -package=mocks
package ai

import (
	"context"
	"iter"
	"werkstatt/domain"

	"github.com/samber/lo"
)

// SystemInstruction keeps the model on DIY topics and in German.
const SystemInstruction = `You are a handwerker (DIY/home improvement) expert assistant.
Your primary role is to help users with questions related to DIY home improvements, repairs, construction, and other physical building or fixing tasks.

ONLY respond to questions that are related to handwerker topics such as:
- Home repairs and maintenance
- Building, construction, and renovation
- Tools and their usage
- Materials and their properties
- Furniture assembly or repair
- Plumbing, electrical work, carpentry
- Gardening and outdoor projects
- Any physical improvements or fixes to homes, buildings, or objects

For ANY questions NOT related to handwerker topics (like cooking, finance, technology support unrelated to tools, etc.):
- Politely explain that you are a specialized handwerker assistant
- Suggest they consult a general-purpose assistant for non-handwerker topics
- Do NOT provide substantive answers to off-topic questions

Always prioritize SAFETY in your advice. Warn users about potentially dangerous tasks that should be done by professionals (electrical work, structural changes, etc.).
Always respond in German.`

type Assistant interface {
	// Stream yields the answer chunk by chunk. Iteration stops at the first error.
	Stream(ctx context.Context, history []domain.ChatMessage) iter.Seq2[string, error]
	// Complete returns the whole answer at once.
	Complete(ctx context.Context, history []domain.ChatMessage) (string, error)
}

// TrimHistory keeps at most max turns. The latest message is always sent, as the
// user turn, whatever its role. Earlier system messages are dropped and the
// conversation opens with a user turn.
func TrimHistory(history []domain.ChatMessage, max int) []domain.ChatMessage {
	if len(history) == 0 {
		return nil
	}
	latest := history[len(history)-1]
	latest.Role = domain.RoleUser

	turns := lo.Filter(history[:len(history)-1], func(m domain.ChatMessage, _ int) bool {
		return m.Role == domain.RoleUser || m.Role == domain.RoleAssistant
	})
	if max > 0 && len(turns) > max-1 {
		turns = turns[len(turns)-(max-1):]
	}
	for len(turns) > 0 && turns[0].Role != domain.RoleUser {
		turns = turns[1:]
	}
	return append(turns, latest)
}

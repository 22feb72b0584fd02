//nolint:revive // types is a standard Go package name pattern
package types

// Role identifies the author of a conversation turn.
type Role string

// Conversation roles.
const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one entry in a conversation transcript.
type Turn struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// ConversationState is the profile building workflow state.
type ConversationState string

// Profile building states.
const (
	StateInitial         ConversationState = "INITIAL"
	StateAwaitingAnswers ConversationState = "AWAITING_ANSWERS"
	StateComplete        ConversationState = "COMPLETE"
)

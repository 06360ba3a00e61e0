package types

type MessageUserRole string

const (
	USER_ROLE_SYSTEM    MessageUserRole = "system"
	USER_ROLE_USER      MessageUserRole = "user"
	USER_ROLE_ASSISTANT MessageUserRole = "assistant"
)

func (r MessageUserRole) String() string {
	return string(r)
}

type MessageContext struct {
	Role    MessageUserRole `json:"role"`
	Content string          `json:"content"`
}

// SummaryResult holds the two bullet lists extracted from a model reply.
type SummaryResult struct {
	Summary   []string `json:"summary"`
	Questions []string `json:"questions"`
}

type QueryResult struct {
	Response string         `json:"response"`
	Context  *ContextBundle `json:"context"`
}

package conversation

import "github.com/ankitadas/tutorbuddy/internal/chat"

// replyMsg is sent when the orchestrator has answered a message.
type replyMsg struct {
	Reply chat.Reply
	OK    bool
}

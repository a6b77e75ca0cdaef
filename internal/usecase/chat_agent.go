package usecase

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/mstancik/leadgen-backend/internal/entity"
	"github.com/mstancik/leadgen-backend/internal/infra/integration/gemini"
)

// systemPrompt is the sales persona driving the chat agent. The saveLead
// tool contract lives here: the model is told to mine the WHOLE history
// for contact details and never to call the tool without an email.
const systemPrompt = `You are Michael, a Senior AI Business Development Manager for Marian Stancik.

YOUR GOAL:
Qualify the lead and book a 15-min call.

RULES:
- **concise**: Responses must be SHORT (max 3 sentences).
- **direct**: No "fluff" or generic greetings.
- **format**: Use bullet points for readability.
- **action**: Every response must end with a question or call to action.
- **language**: DETECT the user's language. If they speak Slovak, reply in Slovak.

STRATEGY:
1. Ask: "What is your biggest operational bottleneck right now?"
2. Value: "We automated that for a client -> saved 20k/year."
3. Close: "Let's discuss details. What is your email?"

TOOLS:
- Call saveLead IMMEDIATELY when you get contact info.
- Look at the ENTIRE conversation history to find the email. If the last message is just an email address, USE IT.
- Never call saveLead with empty arguments.
- Confirm with: "Thanks, Marian will contact you shortly."

TONE: Professional, Brief, Results-Oriented.`

// fallbackReply closes a turn when the model fails to produce text after
// a tool call. A tool call alone is never a valid terminal turn.
const fallbackReply = "Thanks, Marian will contact you shortly."

func NewChatAgentUseCase(
	model ConversationModel,
	intake *CaptureLeadUseCase,
	messages entity.MessageRepositoryInterface,
) *ChatAgentUseCase {
	return &ChatAgentUseCase{
		Model:    model,
		Intake:   intake,
		Messages: messages,
	}
}

type ChatAgentUseCase struct {
	Model    ConversationModel
	Intake   *CaptureLeadUseCase
	Messages entity.MessageRepositoryInterface
}

// HandleTurn produces one assistant response for the latest user message.
// Turn shape: awaiting-input -> (optional single saveLead invocation with
// the tool outcome fed back) -> closing text. Exactly one user and one
// assistant message are appended to the transcript per completed turn.
func (uc *ChatAgentUseCase) HandleTurn(ctx context.Context, input ChatTurnInput) (*ChatTurnOutput, error) {
	if len(input.Messages) == 0 {
		return nil, &DomainError{Code: CodeMissingInput, Message: "messages are required"}
	}
	last := input.Messages[len(input.Messages)-1]
	if last.Role != entity.RoleUser || strings.TrimSpace(last.Content) == "" {
		return nil, &DomainError{Code: CodeMissingInput, Message: "last message must be a non-empty user message"}
	}

	history := make([]gemini.ChatMessage, 0, len(input.Messages))
	for _, m := range input.Messages {
		history = append(history, gemini.ChatMessage{Role: m.Role, Content: m.Content})
	}

	turn, err := uc.Model.NextTurn(ctx, systemPrompt, history)
	if err != nil {
		return nil, &TechnicalError{Code: "CHAT_MODEL_ERROR", Message: err.Error()}
	}

	reply := turn.Text
	promptTokens := turn.PromptTokens
	outputTokens := turn.OutputTokens
	leadCaptured := false

	if turn.ToolCall != nil {
		outcome := uc.runLeadTool(ctx, turn.ToolCall, &leadCaptured)

		final, err := uc.Model.ToolResult(ctx, systemPrompt, history, turn.ToolCall, outcome)
		if err != nil {
			logrus.WithField("session_id", input.SessionID).Errorf("closing reply after tool call failed: %v", err)
			reply = fallbackReply
		} else {
			reply = final.Text
			promptTokens += final.PromptTokens
			outputTokens += final.OutputTokens
		}
	}

	if strings.TrimSpace(reply) == "" {
		reply = fallbackReply
	}

	uc.appendTranscript(ctx, input.SessionID, last.Content, reply, promptTokens, outputTokens)

	return &ChatTurnOutput{Reply: reply, LeadCaptured: leadCaptured}, nil
}

// runLeadTool executes the saveLead call and phrases its outcome for the
// model. An empty email never reaches the intake pipeline.
func (uc *ChatAgentUseCase) runLeadTool(ctx context.Context, call *gemini.LeadToolCall, leadCaptured *bool) string {
	if strings.TrimSpace(call.Email) == "" {
		return "Lead not saved: no email address was provided. Ask the user for their email."
	}

	out, err := uc.Intake.Execute(ctx, CaptureLeadInput{
		Email:    call.Email,
		Name:     call.Name,
		Phone:    call.Phone,
		Company:  call.Company,
		Interest: call.Interest,
	})
	if err != nil || out == nil || !out.Success {
		logrus.WithField("email", call.Email).Errorf("saveLead tool failed: %v", err)
		return "Failed to save lead internally, but captured in chat logs."
	}

	*leadCaptured = true
	return "Lead saved successfully. Marian has been notified."
}

func (uc *ChatAgentUseCase) appendTranscript(ctx context.Context, sessionID, userText, reply string, promptTokens, outputTokens int) {
	if uc.Messages == nil {
		return
	}
	batch := []*entity.ChatMessage{
		{SessionID: sessionID, Role: entity.RoleUser, Content: userText, Tokens: promptTokens},
		{SessionID: sessionID, Role: entity.RoleAssistant, Content: reply, Tokens: outputTokens},
	}
	if err := uc.Messages.SaveBatch(ctx, batch); err != nil {
		logrus.WithField("session_id", sessionID).Errorf("transcript save failed: %v", err)
	}
}

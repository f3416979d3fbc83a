package dialogue

import (
	"strings"
	"testing"

	"supportdesk-service/internal/domain/chat"
	"supportdesk-service/internal/knowledge"
	"supportdesk-service/internal/llm"
)

func TestBuildSystemInstruction(t *testing.T) {
	pairs := []knowledge.QA{
		{Question: "internet not working", Answer: "Please restart your router."},
		{Question: "installation help", Answer: "A technician can be scheduled."},
	}

	got := BuildSystemInstruction(chat.DomainTechnical, pairs)

	if !strings.Contains(got, "strictly limited to **technical**-related") {
		t.Errorf("missing domain scoping clause in %q", got)
	}
	if !strings.Contains(got, "You are a technical support agent.") {
		t.Errorf("missing domain persona in %q", got)
	}
	if !strings.Contains(got, "\nQ: internet not working\nA: Please restart your router.") {
		t.Errorf("missing first knowledge pair in %q", got)
	}
	if !strings.Contains(got, "\nQ: installation help\nA: A technician can be scheduled.") {
		t.Errorf("missing second knowledge pair in %q", got)
	}
	if !strings.Contains(got, "Be concise and actionable in your advice.") {
		t.Errorf("missing closing tone rule in %q", got)
	}
}

func TestBuildSystemInstructionUnknownDomain(t *testing.T) {
	got := BuildSystemInstruction("gaming", nil)

	if !strings.Contains(got, "strictly limited to **gaming**-related") {
		t.Errorf("missing domain scoping clause in %q", got)
	}
	// No persona exists for the domain, so the scoping clause is
	// followed directly by the tone rules.
	if !strings.Contains(got, "queries. \nIf a user asks something outside") {
		t.Errorf("expected empty persona slot in %q", got)
	}
}

func TestBuildMessages(t *testing.T) {
	history := []chat.ChatMessage{
		{Role: chat.RoleUser, Content: "my internet is down"},
		{Role: chat.RoleBot, Content: "Let's try restarting your router."},
		{Role: chat.RoleUser, Content: "still not working"},
	}

	msgs := BuildMessages("system text", history)

	if len(msgs) != 5 {
		t.Fatalf("len(msgs) = %d, want 5", len(msgs))
	}
	if msgs[0].Role != llm.RoleUser || msgs[0].Content != "system text" {
		t.Errorf("msgs[0] = %+v, want seeded system text as user", msgs[0])
	}
	if msgs[1].Role != llm.RoleAssistant || !strings.HasPrefix(msgs[1].Content, "Understood.") {
		t.Errorf("msgs[1] = %+v, want readiness acknowledgement", msgs[1])
	}
	if msgs[2].Role != llm.RoleUser {
		t.Errorf("msgs[2].Role = %q, want %q", msgs[2].Role, llm.RoleUser)
	}
	if msgs[3].Role != llm.RoleAssistant {
		t.Errorf("msgs[3].Role = %q, want %q", msgs[3].Role, llm.RoleAssistant)
	}
	if msgs[4].Content != "still not working" {
		t.Errorf("msgs[4].Content = %q, want latest user turn", msgs[4].Content)
	}
}

func TestFinalInstructionPriority(t *testing.T) {
	t.Run("greeting on first turn wins", func(t *testing.T) {
		got := FinalInstruction(FinalInstructionInput{
			Query:    "hi there",
			Turn:     1,
			Intent:   IntentGreeting,
			KBAnswer: "Refunds are processed within 5-7 business days.",
		})
		if !strings.Contains(got, "just started the conversation") {
			t.Errorf("want greeting directive, got %q", got)
		}
	})

	t.Run("greeting after first turn falls through", func(t *testing.T) {
		got := FinalInstruction(FinalInstructionInput{
			Query:    "hello again",
			Turn:     3,
			Intent:   IntentGreeting,
			KBAnswer: knowledge.NoArticleFound,
		})
		if !strings.Contains(got, "Customer Query: hello again") {
			t.Errorf("want fallback directive, got %q", got)
		}
	})

	t.Run("order status embeds lookup output", func(t *testing.T) {
		got := FinalInstruction(FinalInstructionInput{
			Query:        "where is order abc123",
			Turn:         2,
			Intent:       IntentOrderStatus,
			OrderDetails: "Order found:\nProduct: Laptop Stand",
			KBAnswer:     knowledge.NoArticleFound,
		})
		if !strings.Contains(got, "Order found:\nProduct: Laptop Stand") {
			t.Errorf("want lookup output embedded, got %q", got)
		}
		if !strings.Contains(got, "politely explain this and ask for a correct ID") {
			t.Errorf("want lookup framing, got %q", got)
		}
	})

	t.Run("knowledge hit quotes query and answer", func(t *testing.T) {
		got := FinalInstruction(FinalInstructionInput{
			Query:    "refund status",
			Turn:     2,
			Intent:   IntentGeneralInquiry,
			KBAnswer: "You can check your refund status in your account.",
		})
		if !strings.Contains(got, "The user asked about 'refund status'.") {
			t.Errorf("want quoted query, got %q", got)
		}
		if !strings.Contains(got, "'You can check your refund status in your account.'") {
			t.Errorf("want quoted answer, got %q", got)
		}
	})

	t.Run("fallback carries customer context", func(t *testing.T) {
		got := FinalInstruction(FinalInstructionInput{
			Query:      "something odd",
			CustomerID: "cust-1",
			Turn:       2,
			Intent:     IntentGeneralInquiry,
			Urgency:    UrgencyLow,
			Sentiment:  SentimentNeutral,
			Entities:   map[string]string{},
			KBAnswer:   knowledge.NoArticleFound,
		})
		for _, want := range []string{
			"Customer Query: something odd",
			"Customer ID: cust-1",
			"Long-term memory: N/A",
			"Customer's current sentiment: neutral",
			"Detected intent: general_inquiry. Urgency: low.",
			"Extracted entities: map[]",
		} {
			if !strings.Contains(got, want) {
				t.Errorf("fallback missing %q in %q", want, got)
			}
		}
	})

	t.Run("fallback joins past summaries", func(t *testing.T) {
		got := FinalInstruction(FinalInstructionInput{
			Query:         "another thing",
			CustomerID:    "cust-2",
			Turn:          2,
			Intent:        IntentGeneralInquiry,
			KBAnswer:      knowledge.NoArticleFound,
			PastSummaries: []string{"Router replacement request", "Billing address update"},
		})
		want := "Long-term memory: Past interactions summary:\nRouter replacement request\nBilling address update"
		if !strings.Contains(got, want) {
			t.Errorf("fallback missing %q in %q", want, got)
		}
	})
}

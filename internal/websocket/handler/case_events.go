// internal/websocket/handlers/case_events_handler.go
package handlers

import (
	"context"
	"encoding/json"
	"fmt"

	"supportdesk-service/internal/domain/chat"
	wstypes "supportdesk-service/internal/domain/websocket"
	ws "supportdesk-service/internal/websocket"
)

type CaseStreamHandler struct {
	caseRepo chat.Repository
}

func NewCaseStreamHandler(caseRepo chat.Repository) *CaseStreamHandler {
	return &CaseStreamHandler{
		caseRepo: caseRepo,
	}
}

// SupportedEvents returns events this handler supports
func (h *CaseStreamHandler) SupportedEvents() []wstypes.EventType {
	return []wstypes.EventType{
		wstypes.EventTypeCaseList,
	}
}

// HandleMessage processes case-related messages
func (h *CaseStreamHandler) HandleMessage(ctx context.Context, client *ws.Client, msg *wstypes.WSMessage) error {
	switch msg.Type {
	case wstypes.EventTypeCaseList:
		return h.handleListCases(ctx, client, msg)

	default:
		return fmt.Errorf("unsupported event type: %s", msg.Type)
	}
}

// handleListCases returns the connected customer's cases, newest first
func (h *CaseStreamHandler) handleListCases(ctx context.Context, client *ws.Client, msg *wstypes.WSMessage) error {
	var req struct {
		Status *string `json:"status"`
		Limit  int     `json:"limit"`
	}

	if err := mapToStruct(msg.Data, &req); err != nil {
		client.SendError("invalid_request", "Invalid case list request", err.Error())
		return err
	}

	if req.Limit <= 0 || req.Limit > 50 {
		req.Limit = 10
	}

	cases, err := h.caseRepo.ListByCustomer(ctx, client.GetCustomerID())
	if err != nil {
		client.SendError("list_failed", "Failed to get cases", err.Error())
		return err
	}

	items := make([]map[string]interface{}, 0, len(cases))
	for _, c := range cases {
		if req.Status != nil && c.Status != *req.Status {
			continue
		}
		items = append(items, map[string]interface{}{
			"case_id":      c.CaseID,
			"domain":       c.Domain,
			"status":       c.Status,
			"escalated":    c.Escalated,
			"summary":      c.Summary,
			"turns":        len(c.ConversationHistory) / 2,
			"last_updated": c.LastUpdated,
		})
		if len(items) >= req.Limit {
			break
		}
	}

	client.SendMessage(wstypes.NewMessage(wstypes.EventTypeCaseList, map[string]interface{}{
		"cases": items,
		"count": len(items),
	}))

	return nil
}

// Helper function to convert interface{} to struct
func mapToStruct(data interface{}, target interface{}) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return json.Unmarshal(jsonData, target)
}

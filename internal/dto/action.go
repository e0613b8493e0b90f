package dto

import "github.com/SscSPs/portfolio_tracker/internal/core/domain"

// ActionResponse describes one entry of the "new action" panel.
type ActionResponse struct {
	Type        domain.TransactionType `json:"type"`
	Implemented bool                   `json:"implemented"`
}

// ToActionResponses lists every transaction type with its availability.
func ToActionResponses() []ActionResponse {
	types := domain.TransactionTypes()
	res := make([]ActionResponse, len(types))
	for i, t := range types {
		res[i] = ActionResponse{Type: t, Implemented: t.IsImplemented()}
	}
	return res
}

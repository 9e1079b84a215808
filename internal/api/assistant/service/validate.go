package assistantService

import (
	"CatatUang/internal/api/assistant"
	"CatatUang/internal/entity"
	"CatatUang/pkg/response"
	"fmt"
	"strings"
)

// buildParsedTransactions checks the decoded model output structurally and
// converts it into typed items. The whole batch fails on the first offending
// element, with its index in the error details, so a client never receives a
// silently shortened list.
func buildParsedTransactions(value interface{}) ([]entity.ParsedTransaction, error) {
	list, ok := value.([]interface{})
	if !ok {
		return nil, response.WithDetails(assistant.ErrSchemaViolation, "model output is not a JSON array")
	}

	items := make([]entity.ParsedTransaction, 0, len(list))
	for i, elem := range list {
		obj, ok := elem.(map[string]interface{})
		if !ok {
			return nil, schemaViolation(i, "element is not an object")
		}

		description, ok := obj["description"].(string)
		if !ok || strings.TrimSpace(description) == "" {
			return nil, schemaViolation(i, "description must be a non-empty string")
		}

		amount, ok := obj["amount"].(float64)
		if !ok {
			return nil, schemaViolation(i, "amount must be a number")
		}

		item := entity.ParsedTransaction{
			Description: strings.TrimSpace(description),
			Amount:      amount,
		}

		if quantity, present := obj["quantity"]; present && quantity != nil {
			q, ok := quantity.(float64)
			if !ok {
				return nil, schemaViolation(i, "quantity must be a number")
			}
			item.Quantity = q
		}

		if createdAt, present := obj["created_at"]; present && createdAt != nil {
			v, ok := createdAt.(string)
			if !ok {
				return nil, schemaViolation(i, "created_at must be a string")
			}
			item.CreatedAt = v
		}

		if category, present := obj["category"]; present && category != nil {
			v, ok := category.(string)
			if !ok {
				return nil, schemaViolation(i, "category must be a string")
			}
			item.Category = v
		}

		if transactionType, present := obj["type"]; present && transactionType != nil {
			v, ok := transactionType.(string)
			if !ok {
				return nil, schemaViolation(i, "type must be a string")
			}
			item.Type = v
		}

		items = append(items, item)
	}

	return items, nil
}

func schemaViolation(index int, reason string) error {
	return response.WithDetails(assistant.ErrSchemaViolation, fmt.Sprintf("item %d: %s", index, reason))
}

// validateParsedTransactions is the typed checkpoint after post-processing.
func (s *assistantService) validateParsedTransactions(items []entity.ParsedTransaction) error {
	for i, item := range items {
		if err := s.validator.Struct(item); err != nil {
			return schemaViolation(i, err.Error())
		}
	}
	return nil
}

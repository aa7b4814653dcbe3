package domain

import (
	"encoding/json"
	"fmt"
)

// OperationType tags a ledger-state-changing request so its arguments can be
// decoded and replayed later (see the bump path).
type OperationType string

const (
	OperationMintToken            OperationType = "mintToken"
	OperationMintEventToManyUsers OperationType = "mintEventToManyUsers"
	OperationMintUserToManyEvents OperationType = "mintUserToManyEvents"
	OperationBurnToken            OperationType = "burnToken"
)

const (
	// ArgumentsSizeCap bounds the serialized argument payload persisted with a
	// transaction record.
	ArgumentsSizeCap = 950

	// ArgumentsPlaceholder is stored in place of the payload when
	// serialization fails. Records carrying it cannot be replayed.
	ArgumentsPlaceholder = "Error while saving transaction"
)

// Operation is a tagged request to change ledger state. Exactly the fields
// required by the variant are set.
type Operation struct {
	Type OperationType

	EventID    uint64   // mintToken, mintEventToManyUsers
	EventIDs   []uint64 // mintUserToManyEvents
	To         string   // mintToken, mintUserToManyEvents
	Recipients []string // mintEventToManyUsers
	TokenID    string   // burnToken
}

// MintToken mints one token for one event to a single recipient.
func MintToken(eventID uint64, to string) Operation {
	return Operation{Type: OperationMintToken, EventID: eventID, To: to}
}

// MintEventToManyUsers mints one event's token to a list of recipients.
func MintEventToManyUsers(eventID uint64, recipients []string) Operation {
	return Operation{Type: OperationMintEventToManyUsers, EventID: eventID, Recipients: recipients}
}

// MintUserToManyEvents mints tokens for a list of events to one recipient.
func MintUserToManyEvents(eventIDs []uint64, to string) Operation {
	return Operation{Type: OperationMintUserToManyEvents, EventIDs: eventIDs, To: to}
}

// BurnToken destroys a token.
func BurnToken(tokenID string) Operation {
	return Operation{Type: OperationBurnToken, TokenID: tokenID}
}

// RecipientCount is the number of token transfers the operation produces,
// used to size the gas limit.
func (op Operation) RecipientCount() int {
	switch op.Type {
	case OperationMintEventToManyUsers:
		return len(op.Recipients)
	case OperationMintUserToManyEvents:
		return len(op.EventIDs)
	default:
		return 1
	}
}

// mintUserToManyEventsArgs keeps the persisted wire form stable across
// releases; the other variants serialize as positional JSON arrays.
type mintUserToManyEventsArgs struct {
	EventIDs []uint64 `json:"eventIds"`
	To       string   `json:"toAddr"`
}

// EncodeArguments serializes the operation arguments to the text form
// persisted with its transaction record.
func (op Operation) EncodeArguments() (string, error) {
	var (
		raw []byte
		err error
	)
	switch op.Type {
	case OperationMintToken:
		raw, err = json.Marshal([]any{op.EventID, op.To})
	case OperationMintEventToManyUsers:
		raw, err = json.Marshal([]any{op.EventID, op.Recipients})
	case OperationMintUserToManyEvents:
		raw, err = json.Marshal(mintUserToManyEventsArgs{EventIDs: op.EventIDs, To: op.To})
	case OperationBurnToken:
		raw, err = json.Marshal([]any{op.TokenID})
	default:
		return "", fmt.Errorf("%w: %s", ErrOperationNotSupported, op.Type)
	}
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// DecodeOperation reconstructs an operation from its persisted tag and
// argument payload. It returns ErrOperationNotSupported for unknown tags and
// for payloads that cannot be decoded (truncated or placeholder payloads).
func DecodeOperation(opType OperationType, args string) (Operation, error) {
	switch opType {
	case OperationMintToken:
		var parts []json.RawMessage
		if err := json.Unmarshal([]byte(args), &parts); err != nil || len(parts) != 2 {
			return Operation{}, fmt.Errorf("%w: undecodable %s arguments", ErrOperationNotSupported, opType)
		}
		var op Operation
		op.Type = OperationMintToken
		if err := json.Unmarshal(parts[0], &op.EventID); err != nil {
			return Operation{}, fmt.Errorf("%w: undecodable %s arguments", ErrOperationNotSupported, opType)
		}
		if err := json.Unmarshal(parts[1], &op.To); err != nil {
			return Operation{}, fmt.Errorf("%w: undecodable %s arguments", ErrOperationNotSupported, opType)
		}
		return op, nil

	case OperationMintEventToManyUsers:
		var parts []json.RawMessage
		if err := json.Unmarshal([]byte(args), &parts); err != nil || len(parts) != 2 {
			return Operation{}, fmt.Errorf("%w: undecodable %s arguments", ErrOperationNotSupported, opType)
		}
		var op Operation
		op.Type = OperationMintEventToManyUsers
		if err := json.Unmarshal(parts[0], &op.EventID); err != nil {
			return Operation{}, fmt.Errorf("%w: undecodable %s arguments", ErrOperationNotSupported, opType)
		}
		if err := json.Unmarshal(parts[1], &op.Recipients); err != nil {
			return Operation{}, fmt.Errorf("%w: undecodable %s arguments", ErrOperationNotSupported, opType)
		}
		return op, nil

	case OperationMintUserToManyEvents:
		var decoded mintUserToManyEventsArgs
		if err := json.Unmarshal([]byte(args), &decoded); err != nil || decoded.To == "" {
			return Operation{}, fmt.Errorf("%w: undecodable %s arguments", ErrOperationNotSupported, opType)
		}
		return MintUserToManyEvents(decoded.EventIDs, decoded.To), nil

	case OperationBurnToken:
		var parts []string
		if err := json.Unmarshal([]byte(args), &parts); err != nil || len(parts) != 1 {
			return Operation{}, fmt.Errorf("%w: undecodable %s arguments", ErrOperationNotSupported, opType)
		}
		return BurnToken(parts[0]), nil

	default:
		return Operation{}, fmt.Errorf("%w: %s", ErrOperationNotSupported, opType)
	}
}

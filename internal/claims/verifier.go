package claims

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/attendrop/minter/internal/domain"
	"github.com/attendrop/minter/internal/store"
)

// Verifier checks the two-signature scheme of a direct claim: the attendee
// signs (claimId, eventId, claimer, proof), the event authority signs
// (claimId, eventId, claimer). Both messages are JSON arrays hashed per
// EIP-191 personal-message rules.
type Verifier struct {
	store store.Store
}

// NewVerifier creates a direct-claim verifier
func NewVerifier(s store.Store) *Verifier {
	return &Verifier{store: s}
}

// VerifyClaim validates both signatures of the claim and returns the event it
// authorizes a mint for. There is no persisted anti-replay state here: the
// ledger contract rejects a second mint of the same event to the same
// address.
func (v *Verifier) VerifyClaim(ctx context.Context, claim domain.Claim) error {
	event, err := v.store.GetEvent(ctx, claim.EventID)
	if err != nil {
		return err
	}
	if event == nil {
		return fmt.Errorf("%w: %d", domain.ErrEventNotFound, claim.EventID)
	}
	if event.Signer == nil || *event.Signer == "" {
		return fmt.Errorf("%w: event %d has no recorded authority", domain.ErrInvalidAuthoritySignature, claim.EventID)
	}

	claimerMessage, err := json.Marshal([]any{claim.ClaimID, claim.EventID, claim.Claimer, claim.Proof})
	if err != nil {
		return err
	}
	claimerAddr, err := recoverPersonalSigner(claimerMessage, claim.ClaimerSignature)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidClaimerSignature, err)
	}
	if !strings.EqualFold(claimerAddr.Hex(), claim.Claimer) {
		return domain.ErrInvalidClaimerSignature
	}

	authorityMessage, err := json.Marshal([]any{claim.ClaimID, claim.EventID, claim.Claimer})
	if err != nil {
		return err
	}
	authorityAddr, err := recoverPersonalSigner(authorityMessage, claim.Proof)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidAuthoritySignature, err)
	}
	if !strings.EqualFold(authorityAddr.Hex(), *event.Signer) {
		return domain.ErrInvalidAuthoritySignature
	}

	return nil
}

// recoverPersonalSigner recovers the address that produced an EIP-191
// personal-message signature over message.
func recoverPersonalSigner(message []byte, signature string) (common.Address, error) {
	sig, err := hexutil.Decode(signature)
	if err != nil {
		return common.Address{}, fmt.Errorf("undecodable signature: %w", err)
	}
	if len(sig) != crypto.SignatureLength {
		return common.Address{}, fmt.Errorf("signature must be %d bytes, got %d", crypto.SignatureLength, len(sig))
	}

	// Wallets emit V as 27/28; go-ethereum expects 0/1
	sigCopy := make([]byte, crypto.SignatureLength)
	copy(sigCopy, sig)
	if sigCopy[crypto.RecoveryIDOffset] >= 27 {
		sigCopy[crypto.RecoveryIDOffset] -= 27
	}

	pubKey, err := crypto.SigToPub(accounts.TextHash(message), sigCopy)
	if err != nil {
		return common.Address{}, fmt.Errorf("unrecoverable signature: %w", err)
	}
	return crypto.PubkeyToAddress(*pubKey), nil
}

package rest

import (
	"context"
	"fmt"
	"math/big"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/attendrop/minter/internal/claims"
	"github.com/attendrop/minter/internal/domain"
	"github.com/attendrop/minter/internal/logger"
	"github.com/attendrop/minter/internal/minter"
	"github.com/attendrop/minter/internal/providers/ethereum"
	"github.com/attendrop/minter/internal/store"
	"github.com/attendrop/minter/internal/store/schema"
)

const (
	defaultTransactionsLimit = 50
	maxTransactionsLimit     = 500
)

// ClaimVerifier validates direct two-signature claims
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_services.go -package=mocks
type ClaimVerifier interface {
	VerifyClaim(ctx context.Context, claim domain.Claim) error
}

// CouponRedeemer is the coupon-claim surface consumed by the handlers
type CouponRedeemer interface {
	Get(ctx context.Context, qrHash string) (*claims.Coupon, error)
	Redeem(ctx context.Context, qrHash, secret, beneficiary string) (*claims.Coupon, error)
	ProvisionCoupons(ctx context.Context, eventID uint64, count int) ([]claims.Coupon, error)
}

// Minter is the transaction-submission surface consumed by the handlers
type Minter interface {
	Submit(ctx context.Context, op domain.Operation, opts minter.SubmitOptions) (*ethereum.TxHandle, error)
	Bump(ctx context.Context, txHash string, newGasPrice *big.Int) (*ethereum.TxHandle, error)
}

// SignerDirectory is the signer-registry surface consumed by the handlers
type SignerDirectory interface {
	AllSigners(ctx context.Context) ([]store.SignerRecord, error)
	SetGasPriceOverride(ctx context.Context, address, gasPrice string) error
}

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
type Handler interface {
	// Claim validates a two-signature direct claim and mints its token
	// POST /actions/claim
	Claim(c *gin.Context)

	// GetCoupon returns the state of a claim coupon
	// GET /actions/claim-qr?qr_hash=<qrHash>
	GetCoupon(c *gin.Context)

	// RedeemCoupon spends a coupon and mints its token (requires the coupon secret)
	// POST /actions/claim-qr
	RedeemCoupon(c *gin.Context)

	// ProvisionCoupons creates a batch of unclaimed coupons (requires authentication)
	// POST /actions/claim-qr/batch
	ProvisionCoupons(c *gin.Context)

	// Bump resubmits a stuck transaction with a new gas price (requires authentication)
	// POST /actions/bump
	Bump(c *gin.Context)

	// MintEventToManyUsers mints one event's token to many recipients (requires authentication)
	// POST /actions/mintEventToManyUsers
	MintEventToManyUsers(c *gin.Context)

	// MintUserToManyEvents mints many events' tokens to one recipient (requires authentication)
	// POST /actions/mintUserToManyEvents
	MintUserToManyEvents(c *gin.Context)

	// Burn destroys a token (requires authentication)
	// POST /burn/:tokenId
	Burn(c *gin.Context)

	// Scan lists all attendance tokens held by an address or ENS name
	// GET /actions/scan/:address
	Scan(c *gin.Context)

	// GetToken returns the event and owner of a token
	// GET /token/:tokenId
	GetToken(c *gin.Context)

	// ENSResolve resolves an ENS name to an address
	// GET /actions/ens_resolve?name=<name>
	ENSResolve(c *gin.Context)

	// ENSLookup reverse-resolves an address to its ENS name
	// GET /actions/ens_lookup/:address
	ENSLookup(c *gin.Context)

	// TokenMetadata serves the metadata document of a minted token
	// GET /metadata/:eventId/:tokenId
	TokenMetadata(c *gin.Context)

	// ListEvents returns all events
	// GET /events
	ListEvents(c *gin.Context)

	// GetEvent returns an event by its slug
	// GET /events/:fancyId
	GetEvent(c *gin.Context)

	// CreateEvent registers a new event (requires authentication)
	// POST /events
	CreateEvent(c *gin.Context)

	// UpdateEvent updates the mutable fields of an event (requires authentication)
	// PUT /events/:fancyId
	UpdateEvent(c *gin.Context)

	// ListSettings returns all settings (requires authentication)
	// GET /settings
	ListSettings(c *gin.Context)

	// GetSetting returns a named setting (requires authentication)
	// GET /settings/:name
	GetSetting(c *gin.Context)

	// UpdateSetting overwrites a named setting value (requires authentication)
	// PUT /settings/:name
	UpdateSetting(c *gin.Context)

	// ListTransactions returns a page of the transaction audit trail (requires authentication)
	// GET /transactions?status=<status1>,<status2>&limit=<limit>&offset=<offset>
	ListTransactions(c *gin.Context)

	// ListSigners returns all signers with live balances and pending load
	// GET /signers
	ListSigners(c *gin.Context)

	// UpdateSigner sets a per-signer gas-price override (requires authentication)
	// PUT /signers/:address
	UpdateSigner(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	store    store.Store
	ledger   ethereum.Ledger
	verifier ClaimVerifier
	coupons  CouponRedeemer
	minter   Minter
	signers  SignerDirectory
}

// NewHandler creates a new REST API handler over the core services
func NewHandler(
	s store.Store,
	ledger ethereum.Ledger,
	verifier ClaimVerifier,
	coupons CouponRedeemer,
	m Minter,
	signers SignerDirectory,
) Handler {
	return &handler{
		store:    s,
		ledger:   ledger,
		verifier: verifier,
		coupons:  coupons,
		minter:   m,
		signers:  signers,
	}
}

// respondUnconfirmed reports a transaction that was submitted but whose
// confirmation did not arrive. The handle must not be lost: the caller needs
// the hash to bump or track the transaction.
func respondUnconfirmed(c *gin.Context, handle *ethereum.TxHandle, err error) {
	logger.WarnCtx(c.Request.Context(), "transaction submitted but not confirmed",
		zap.String("tx_hash", handle.Hash),
		zap.String("signer", handle.From),
		zap.Error(err),
	)
	c.JSON(http.StatusAccepted, gin.H{
		"transaction": newTransactionResponse(handle, domain.TransactionStatusPending),
		"message":     "transaction submitted but not yet confirmed; if it stays pending, replace it with a higher gas price via POST /actions/bump",
	})
}

// Claim validates a two-signature direct claim and mints its token. The mint
// is awaited so the caller learns whether the token landed.
func (h *handler) Claim(c *gin.Context) {
	var claim domain.Claim
	if err := c.ShouldBindJSON(&claim); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	ctx := c.Request.Context()
	if err := h.verifier.VerifyClaim(ctx, claim); err != nil {
		respondDomainError(c, err, "Claim rejected")
		return
	}

	handle, err := h.minter.Submit(ctx, domain.MintToken(claim.EventID, claim.Claimer), minter.SubmitOptions{
		Await: true,
	})
	if err != nil {
		if handle != nil {
			respondUnconfirmed(c, handle, err)
			return
		}
		respondDomainError(c, err, "Failed to mint token")
		return
	}

	c.JSON(http.StatusOK, newTransactionResponse(handle, domain.TransactionStatusPassed))
}

// GetCoupon returns the state of a claim coupon
func (h *handler) GetCoupon(c *gin.Context) {
	qrHash := c.Query("qr_hash")
	if qrHash == "" {
		respondBadRequest(c, "qr_hash is required")
		return
	}

	coupon, err := h.coupons.Get(c.Request.Context(), qrHash)
	if err != nil {
		respondDomainError(c, err, "Failed to get coupon")
		return
	}

	c.JSON(http.StatusOK, coupon)
}

// RedeemCoupon spends a coupon and mints its token to the beneficiary
func (h *handler) RedeemCoupon(c *gin.Context) {
	var req redeemCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	coupon, err := h.coupons.Redeem(c.Request.Context(), req.QRHash, req.Secret, req.Beneficiary)
	if err != nil {
		respondDomainError(c, err, "Failed to redeem coupon")
		return
	}

	c.JSON(http.StatusOK, coupon)
}

// ProvisionCoupons creates a batch of unclaimed coupons for an event
func (h *handler) ProvisionCoupons(c *gin.Context) {
	var req provisionCouponsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	coupons, err := h.coupons.ProvisionCoupons(c.Request.Context(), req.EventID, req.Count)
	if err != nil {
		respondDomainError(c, err, "Failed to provision coupons")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"coupons": coupons})
}

// Bump resubmits a stuck transaction with a new gas price
func (h *handler) Bump(c *gin.Context) {
	var req bumpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	gasPrice, ok := new(big.Int).SetString(req.GasPrice, 10)
	if !ok || gasPrice.Sign() <= 0 {
		respondValidationError(c, "gasPrice must be a positive decimal wei value")
		return
	}

	handle, err := h.minter.Bump(c.Request.Context(), req.TxHash, gasPrice)
	if err != nil {
		if handle != nil {
			respondUnconfirmed(c, handle, err)
			return
		}
		respondDomainError(c, err, "Failed to bump transaction")
		return
	}

	c.JSON(http.StatusOK, newTransactionResponse(handle, ""))
}

// MintEventToManyUsers mints one event's token to each recipient. Recipients
// may be hex addresses or ENS names; all are resolved before submission.
func (h *handler) MintEventToManyUsers(c *gin.Context) {
	var req mintEventToManyUsersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	ctx := c.Request.Context()
	recipients := make([]string, len(req.Recipients))
	for i, recipient := range req.Recipients {
		resolved, err := h.ledger.CheckAddress(ctx, recipient)
		if err != nil {
			respondDomainError(c, err, fmt.Sprintf("Invalid recipient %q", recipient))
			return
		}
		recipients[i] = resolved
	}

	handle, err := h.minter.Submit(ctx, domain.MintEventToManyUsers(req.EventID, recipients), minter.SubmitOptions{})
	if err != nil {
		respondDomainError(c, err, "Failed to submit batch mint")
		return
	}

	c.JSON(http.StatusAccepted, newTransactionResponse(handle, domain.TransactionStatusPending))
}

// MintUserToManyEvents mints one token of each event to the recipient
func (h *handler) MintUserToManyEvents(c *gin.Context) {
	var req mintUserToManyEventsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	ctx := c.Request.Context()
	to, err := h.ledger.CheckAddress(ctx, req.To)
	if err != nil {
		respondDomainError(c, err, fmt.Sprintf("Invalid recipient %q", req.To))
		return
	}

	handle, err := h.minter.Submit(ctx, domain.MintUserToManyEvents(req.EventIDs, to), minter.SubmitOptions{})
	if err != nil {
		respondDomainError(c, err, "Failed to submit batch mint")
		return
	}

	c.JSON(http.StatusAccepted, newTransactionResponse(handle, domain.TransactionStatusPending))
}

// Burn destroys a token. The burn is awaited.
func (h *handler) Burn(c *gin.Context) {
	tokenID := c.Param("tokenId")
	if tokenID == "" {
		respondBadRequest(c, "tokenId is required")
		return
	}

	handle, err := h.minter.Submit(c.Request.Context(), domain.BurnToken(tokenID), minter.SubmitOptions{
		Await: true,
	})
	if err != nil {
		if handle != nil {
			respondUnconfirmed(c, handle, err)
			return
		}
		respondDomainError(c, err, "Failed to burn token")
		return
	}

	c.JSON(http.StatusOK, newTransactionResponse(handle, domain.TransactionStatusPassed))
}

// Scan lists all attendance tokens held by an address or ENS name
func (h *handler) Scan(c *gin.Context) {
	ctx := c.Request.Context()
	address, err := h.ledger.CheckAddress(ctx, c.Param("address"))
	if err != nil {
		respondDomainError(c, err, "Invalid address")
		return
	}

	tokens, err := h.ledger.TokensOfOwner(ctx, address)
	if err != nil {
		respondDomainError(c, err, "Failed to scan address")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"address": address,
		"tokens":  tokens,
	})
}

// GetToken returns the event and owner of a token, enriched with the event
// record when one exists.
func (h *handler) GetToken(c *gin.Context) {
	tokenID := c.Param("tokenId")
	if tokenID == "" {
		respondBadRequest(c, "tokenId is required")
		return
	}

	ctx := c.Request.Context()
	token, err := h.ledger.TokenInfo(ctx, tokenID)
	if err != nil {
		respondDomainError(c, err, "Failed to get token")
		return
	}

	event, err := h.store.GetEvent(ctx, token.EventID)
	if err != nil {
		respondDomainError(c, err, "Failed to get token event")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"event": event,
	})
}

// ENSResolve resolves an ENS name to an address
func (h *handler) ENSResolve(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		respondBadRequest(c, "name is required")
		return
	}

	address, err := h.ledger.ResolveName(c.Request.Context(), name)
	if err != nil {
		respondWithError(c, http.StatusNotFound, errCodeNotFound, "Name could not be resolved", err.Error())
		return
	}

	c.JSON(http.StatusOK, ensResolveResponse{Name: name, Address: address})
}

// ENSLookup reverse-resolves an address to its ENS name
func (h *handler) ENSLookup(c *gin.Context) {
	address := c.Param("address")
	if address == "" {
		respondBadRequest(c, "address is required")
		return
	}

	name, err := h.ledger.LookupAddress(c.Request.Context(), address)
	if err != nil {
		respondWithError(c, http.StatusNotFound, errCodeNotFound, "Address has no reverse record", err.Error())
		return
	}

	c.JSON(http.StatusOK, ensResolveResponse{Name: name, Address: address})
}

// TokenMetadata serves the metadata document of a minted token
func (h *handler) TokenMetadata(c *gin.Context) {
	eventID, err := strconv.ParseUint(c.Param("eventId"), 10, 64)
	if err != nil {
		respondBadRequest(c, "eventId must be a positive integer")
		return
	}

	event, err := h.store.GetEvent(c.Request.Context(), eventID)
	if err != nil {
		respondDomainError(c, err, "Failed to get event")
		return
	}
	if event == nil {
		respondWithError(c, http.StatusNotFound, errCodeNotFound, "Event not found")
		return
	}

	metadata := tokenMetadataResponse{
		Name:        event.Name,
		Description: event.Description,
		ExternalURL: event.EventURL,
		HomeURL:     event.EventURL,
		ImageURL:    event.ImageURL,
		Year:        event.Year,
		Tags:        []string{"attendance", "event"},
		Attributes:  eventAttributes(event),
	}

	c.JSON(http.StatusOK, metadata)
}

func eventAttributes(event *schema.Event) []metadataAttribute {
	attributes := []metadataAttribute{}
	if event.StartDate != "" {
		attributes = append(attributes, metadataAttribute{TraitType: "startDate", Value: event.StartDate})
	}
	if event.EndDate != "" {
		attributes = append(attributes, metadataAttribute{TraitType: "endDate", Value: event.EndDate})
	}
	if event.City != "" {
		attributes = append(attributes, metadataAttribute{TraitType: "city", Value: event.City})
	}
	if event.Country != "" {
		attributes = append(attributes, metadataAttribute{TraitType: "country", Value: event.Country})
	}
	return attributes
}

// ListEvents returns all events
func (h *handler) ListEvents(c *gin.Context) {
	events, err := h.store.ListEvents(c.Request.Context())
	if err != nil {
		respondDomainError(c, err, "Failed to list events")
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": events})
}

// GetEvent returns an event by its slug
func (h *handler) GetEvent(c *gin.Context) {
	fancyID := c.Param("fancyId")
	if fancyID == "" {
		respondBadRequest(c, "fancyId is required")
		return
	}

	event, err := h.store.GetEventByFancyID(c.Request.Context(), fancyID)
	if err != nil {
		respondDomainError(c, err, "Failed to get event")
		return
	}
	if event == nil {
		respondWithError(c, http.StatusNotFound, errCodeNotFound, "Event not found")
		return
	}

	c.JSON(http.StatusOK, event)
}

// CreateEvent registers a new event
func (h *handler) CreateEvent(c *gin.Context) {
	var req createEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	event := schema.Event{
		FancyID:     req.FancyID,
		Name:        req.Name,
		Description: req.Description,
		City:        req.City,
		Country:     req.Country,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Year:        req.Year,
		EventURL:    req.EventURL,
		ImageURL:    req.ImageURL,
		Signer:      req.Signer,
		SignerIP:    req.SignerIP,
	}
	if err := h.store.CreateEvent(c.Request.Context(), &event); err != nil {
		respondDomainError(c, err, "Failed to create event")
		return
	}

	c.JSON(http.StatusCreated, event)
}

// UpdateEvent applies the mutable fields to an event identified by slug
func (h *handler) UpdateEvent(c *gin.Context) {
	fancyID := c.Param("fancyId")
	if fancyID == "" {
		respondBadRequest(c, "fancyId is required")
		return
	}

	var req updateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	ctx := c.Request.Context()
	changes := store.EventChanges{
		Signer:   req.Signer,
		SignerIP: req.SignerIP,
		EventURL: req.EventURL,
		ImageURL: req.ImageURL,
	}
	if err := h.store.UpdateEvent(ctx, fancyID, changes); err != nil {
		respondDomainError(c, err, "Failed to update event")
		return
	}

	event, err := h.store.GetEventByFancyID(ctx, fancyID)
	if err != nil {
		respondDomainError(c, err, "Failed to reload event")
		return
	}

	c.JSON(http.StatusOK, event)
}

// ListSettings returns all settings
func (h *handler) ListSettings(c *gin.Context) {
	settings, err := h.store.ListSettings(c.Request.Context())
	if err != nil {
		respondDomainError(c, err, "Failed to list settings")
		return
	}

	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

// GetSetting returns a named setting
func (h *handler) GetSetting(c *gin.Context) {
	name := c.Param("name")

	setting, err := h.store.GetSetting(c.Request.Context(), name)
	if err != nil {
		respondDomainError(c, err, "Failed to get setting")
		return
	}
	if setting == nil {
		respondWithError(c, http.StatusNotFound, errCodeNotFound, "Setting not found")
		return
	}

	c.JSON(http.StatusOK, setting)
}

// UpdateSetting overwrites a named setting value
func (h *handler) UpdateSetting(c *gin.Context) {
	name := c.Param("name")

	var req updateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	ctx := c.Request.Context()
	if err := h.store.UpdateSetting(ctx, name, req.Value); err != nil {
		respondDomainError(c, err, "Failed to update setting")
		return
	}

	setting, err := h.store.GetSetting(ctx, name)
	if err != nil {
		respondDomainError(c, err, "Failed to reload setting")
		return
	}

	c.JSON(http.StatusOK, setting)
}

// ListTransactions returns a page of the transaction audit trail
func (h *handler) ListTransactions(c *gin.Context) {
	limit := defaultTransactionsLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxTransactionsLimit {
			respondValidationError(c, fmt.Sprintf("limit must be between 1 and %d", maxTransactionsLimit))
			return
		}
		limit = parsed
	}

	offset := 0
	if raw := c.Query("offset"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			respondValidationError(c, "offset must be a non-negative integer")
			return
		}
		offset = parsed
	}

	var statuses []domain.TransactionStatus
	if raw := c.Query("status"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			status := domain.TransactionStatus(strings.TrimSpace(s))
			switch status {
			case domain.TransactionStatusPending, domain.TransactionStatusPassed, domain.TransactionStatusFailed:
				statuses = append(statuses, status)
			default:
				respondValidationError(c, fmt.Sprintf("unknown status %q", s))
				return
			}
		}
	}

	transactions, total, err := h.store.ListTransactions(c.Request.Context(), statuses, limit, offset)
	if err != nil {
		respondDomainError(c, err, "Failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, listTransactionsResponse{
		Transactions: transactions,
		Total:        total,
		Limit:        limit,
		Offset:       offset,
	})
}

// ListSigners returns all signers with live balances and pending load
func (h *handler) ListSigners(c *gin.Context) {
	records, err := h.signers.AllSigners(c.Request.Context())
	if err != nil {
		respondDomainError(c, err, "Failed to list signers")
		return
	}

	c.JSON(http.StatusOK, gin.H{"signers": newSignerResponses(records)})
}

// UpdateSigner sets a per-signer gas-price override
func (h *handler) UpdateSigner(c *gin.Context) {
	address := c.Param("address")

	var req updateSignerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if gasPrice, ok := new(big.Int).SetString(req.GasPrice, 10); !ok || gasPrice.Sign() <= 0 {
		respondValidationError(c, "gasPrice must be a positive decimal wei value")
		return
	}

	if err := h.signers.SetGasPriceOverride(c.Request.Context(), address, req.GasPrice); err != nil {
		respondDomainError(c, err, "Failed to update signer")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"signer":   address,
		"gasPrice": req.GasPrice,
	})
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"service": "minter-api",
	})
}

package rest_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attendrop/minter/internal/api/middleware"
	"github.com/attendrop/minter/internal/api/rest"
	"github.com/attendrop/minter/internal/claims"
	"github.com/attendrop/minter/internal/domain"
	"github.com/attendrop/minter/internal/logger"
	"github.com/attendrop/minter/internal/minter"
	"github.com/attendrop/minter/internal/mocks"
	"github.com/attendrop/minter/internal/providers/ethereum"
	"github.com/attendrop/minter/internal/store"
)

const testAPIKey = "test-api-key"

func TestMain(m *testing.M) {
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	gin.SetMode(gin.TestMode)

	code := m.Run()
	os.Exit(code)
}

type testHandlerMocks struct {
	ctrl     *gomock.Controller
	store    *mocks.MockStore
	ledger   *mocks.MockLedger
	verifier *mocks.MockClaimVerifier
	coupons  *mocks.MockCouponRedeemer
	minter   *mocks.MockMinter
	signers  *mocks.MockSignerDirectory
	router   *gin.Engine
}

func setupTestHandler(t *testing.T) *testHandlerMocks {
	ctrl := gomock.NewController(t)

	tm := &testHandlerMocks{
		ctrl:     ctrl,
		store:    mocks.NewMockStore(ctrl),
		ledger:   mocks.NewMockLedger(ctrl),
		verifier: mocks.NewMockClaimVerifier(ctrl),
		coupons:  mocks.NewMockCouponRedeemer(ctrl),
		minter:   mocks.NewMockMinter(ctrl),
		signers:  mocks.NewMockSignerDirectory(ctrl),
	}

	handler := rest.NewHandler(tm.store, tm.ledger, tm.verifier, tm.coupons, tm.minter, tm.signers)

	tm.router = gin.New()
	rest.SetupRoutes(tm.router, handler, middleware.AuthConfig{
		APIKeys: []string{testAPIKey},
	})

	return tm
}

func performRequest(router *gin.Engine, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, body []byte) string {
	var envelope struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))
	return envelope.Error.Code
}

func TestHandler_HealthCheck(t *testing.T) {
	tm := setupTestHandler(t)
	defer tm.ctrl.Finish()

	w := performRequest(tm.router, http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestHandler_GetCoupon(t *testing.T) {
	tm := setupTestHandler(t)
	defer tm.ctrl.Finish()

	tm.coupons.EXPECT().Get(gomock.Any(), "coupon-1").Return(&claims.Coupon{
		QRHash:  "coupon-1",
		EventID: 42,
		Secret:  "deadbeef",
	}, nil)

	w := performRequest(tm.router, http.MethodGet, "/actions/claim-qr?qr_hash=coupon-1", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var coupon claims.Coupon
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &coupon))
	assert.Equal(t, "coupon-1", coupon.QRHash)
	assert.Equal(t, uint64(42), coupon.EventID)
	assert.Equal(t, "deadbeef", coupon.Secret)
}

func TestHandler_GetCoupon_MissingQRHash(t *testing.T) {
	tm := setupTestHandler(t)
	defer tm.ctrl.Finish()

	w := performRequest(tm.router, http.MethodGet, "/actions/claim-qr", "", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "bad_request", errorCode(t, w.Body.Bytes()))
}

func TestHandler_GetCoupon_NotFound(t *testing.T) {
	tm := setupTestHandler(t)
	defer tm.ctrl.Finish()

	tm.coupons.EXPECT().Get(gomock.Any(), "unknown").
		Return(nil, fmt.Errorf("%w: unknown", domain.ErrCouponNotFound))

	w := performRequest(tm.router, http.MethodGet, "/actions/claim-qr?qr_hash=unknown", "", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "not_found", errorCode(t, w.Body.Bytes()))
}

func TestHandler_RedeemCoupon(t *testing.T) {
	tm := setupTestHandler(t)
	defer tm.ctrl.Finish()

	beneficiary := "0x96216849c49358B10257cb55b28eA603c874b05E"
	txHash := "0xabc123"
	tm.coupons.EXPECT().Redeem(gomock.Any(), "coupon-1", "secret-1", beneficiary).
		Return(&claims.Coupon{
			QRHash:      "coupon-1",
			EventID:     42,
			Claimed:     true,
			Beneficiary: &beneficiary,
			TxHash:      &txHash,
			TxStatus:    domain.TransactionStatusPending,
		}, nil)

	body := fmt.Sprintf(`{"qrHash":"coupon-1","secret":"secret-1","beneficiary":%q}`, beneficiary)
	w := performRequest(tm.router, http.MethodPost, "/actions/claim-qr", body, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var coupon claims.Coupon
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &coupon))
	assert.True(t, coupon.Claimed)
	require.NotNil(t, coupon.TxHash)
	assert.Equal(t, txHash, *coupon.TxHash)
	assert.Equal(t, domain.TransactionStatusPending, coupon.TxStatus)
}

func TestHandler_RedeemCoupon_InvalidSecret(t *testing.T) {
	tm := setupTestHandler(t)
	defer tm.ctrl.Finish()

	tm.coupons.EXPECT().Redeem(gomock.Any(), "coupon-1", "wrong", gomock.Any()).
		Return(nil, domain.ErrInvalidSecret)

	body := `{"qrHash":"coupon-1","secret":"wrong","beneficiary":"0x96216849c49358B10257cb55b28eA603c874b05E"}`
	w := performRequest(tm.router, http.MethodPost, "/actions/claim-qr", body, nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "unauthorized", errorCode(t, w.Body.Bytes()))
}

func TestHandler_RedeemCoupon_Conflict(t *testing.T) {
	tm := setupTestHandler(t)
	defer tm.ctrl.Finish()

	tm.coupons.EXPECT().Redeem(gomock.Any(), "coupon-1", "secret-1", gomock.Any()).
		Return(nil, domain.ErrClaimConflict)

	body := `{"qrHash":"coupon-1","secret":"secret-1","beneficiary":"0x96216849c49358B10257cb55b28eA603c874b05E"}`
	w := performRequest(tm.router, http.MethodPost, "/actions/claim-qr", body, nil)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "conflict", errorCode(t, w.Body.Bytes()))
}

func TestHandler_RedeemCoupon_MissingFields(t *testing.T) {
	tm := setupTestHandler(t)
	defer tm.ctrl.Finish()

	// No Redeem expectation: validation rejects before the service is touched
	w := performRequest(tm.router, http.MethodPost, "/actions/claim-qr", `{"qrHash":"coupon-1"}`, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "validation_failed", errorCode(t, w.Body.Bytes()))
}

func TestHandler_Claim(t *testing.T) {
	tm := setupTestHandler(t)
	defer tm.ctrl.Finish()

	claimer := "0x96216849c49358B10257cb55b28eA603c874b05E"
	claim := domain.Claim{
		ClaimID:          "claim-1",
		EventID:          42,
		Claimer:          claimer,
		Proof:            "0xproof",
		ClaimerSignature: "0xsig",
	}

	tm.verifier.EXPECT().VerifyClaim(gomock.Any(), claim).Return(nil)
	tm.minter.EXPECT().
		Submit(gomock.Any(), domain.MintToken(42, claimer), minter.SubmitOptions{Await: true}).
		Return(&ethereum.TxHandle{Hash: "0xminted", Nonce: 7, From: "0xhelper"}, nil)

	body, err := json.Marshal(claim)
	require.NoError(t, err)
	w := performRequest(tm.router, http.MethodPost, "/actions/claim", string(body), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"txHash":"0xminted"`)
	assert.Contains(t, w.Body.String(), `"status":"passed"`)
}

func TestHandler_Claim_InvalidSignature(t *testing.T) {
	tm := setupTestHandler(t)
	defer tm.ctrl.Finish()

	tm.verifier.EXPECT().VerifyClaim(gomock.Any(), gomock.Any()).
		Return(domain.ErrInvalidClaimerSignature)
	// No Submit expectation: a rejected claim must never mint

	body := `{"claimId":"claim-1","eventId":42,"claimer":"0x96216849c49358B10257cb55b28eA603c874b05E","proof":"0xproof","claimerSignature":"0xbad"}`
	w := performRequest(tm.router, http.MethodPost, "/actions/claim", body, nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "unauthorized", errorCode(t, w.Body.Bytes()))
}

func TestHandler_Claim_ConfirmationTimeout(t *testing.T) {
	tm := setupTestHandler(t)
	defer tm.ctrl.Finish()

	claimer := "0x96216849c49358B10257cb55b28eA603c874b05E"
	claim := domain.Claim{
		ClaimID:          "claim-1",
		EventID:          42,
		Claimer:          claimer,
		Proof:            "0xproof",
		ClaimerSignature: "0xsig",
	}

	handle := &ethereum.TxHandle{Hash: "0xsubmitted", Nonce: 7, From: "0xhelper"}
	tm.verifier.EXPECT().VerifyClaim(gomock.Any(), claim).Return(nil)
	tm.minter.EXPECT().
		Submit(gomock.Any(), domain.MintToken(42, claimer), minter.SubmitOptions{Await: true}).
		Return(handle, fmt.Errorf("%w: waiting for inclusion of %s: context deadline exceeded", domain.ErrLedger, handle.Hash))

	body, err := json.Marshal(claim)
	require.NoError(t, err)
	w := performRequest(tm.router, http.MethodPost, "/actions/claim", string(body), nil)

	// The transaction is on the wire even though its confirmation never
	// arrived. The hash must reach the caller so the transaction can be
	// bumped or tracked.
	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Contains(t, w.Body.String(), `"txHash":"0xsubmitted"`)
	assert.Contains(t, w.Body.String(), `"status":"pending"`)
	assert.Contains(t, w.Body.String(), "/actions/bump")
}

func TestHandler_Burn_ConfirmationTimeout(t *testing.T) {
	tm := setupTestHandler(t)
	defer tm.ctrl.Finish()

	handle := &ethereum.TxHandle{Hash: "0xburning", Nonce: 11, From: "0xadmin"}
	tm.minter.EXPECT().
		Submit(gomock.Any(), domain.BurnToken("123"), minter.SubmitOptions{Await: true}).
		Return(handle, fmt.Errorf("%w: waiting for inclusion of %s: context deadline exceeded", domain.ErrLedger, handle.Hash))

	headers := map[string]string{"Authorization": "ApiKey " + testAPIKey}
	w := performRequest(tm.router, http.MethodPost, "/burn/123", "", headers)

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Contains(t, w.Body.String(), `"txHash":"0xburning"`)
	assert.Contains(t, w.Body.String(), `"status":"pending"`)
}

func TestHandler_Bump(t *testing.T) {
	tm := setupTestHandler(t)
	defer tm.ctrl.Finish()

	tm.minter.EXPECT().Bump(gomock.Any(), "0xstuck", gomock.Any()).
		Return(&ethereum.TxHandle{Hash: "0xreplacement", Nonce: 9, From: "0xhelper"}, nil)

	body := `{"txHash":"0xstuck","gasPrice":"7500000000"}`
	headers := map[string]string{"Authorization": "ApiKey " + testAPIKey}
	w := performRequest(tm.router, http.MethodPost, "/actions/bump", body, headers)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"txHash":"0xreplacement"`)
}

func TestHandler_Bump_TransactionNotFound(t *testing.T) {
	tm := setupTestHandler(t)
	defer tm.ctrl.Finish()

	tm.minter.EXPECT().Bump(gomock.Any(), "0xmissing", gomock.Any()).
		Return(nil, fmt.Errorf("%w: 0xmissing", domain.ErrTransactionNotFound))

	body := `{"txHash":"0xmissing","gasPrice":"7500000000"}`
	headers := map[string]string{"Authorization": "ApiKey " + testAPIKey}
	w := performRequest(tm.router, http.MethodPost, "/actions/bump", body, headers)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "not_found", errorCode(t, w.Body.Bytes()))
}

func TestHandler_Bump_ConfirmationTimeout(t *testing.T) {
	tm := setupTestHandler(t)
	defer tm.ctrl.Finish()

	handle := &ethereum.TxHandle{Hash: "0xreplacement", Nonce: 9, From: "0xhelper"}
	tm.minter.EXPECT().Bump(gomock.Any(), "0xstuck", gomock.Any()).
		Return(handle, fmt.Errorf("%w: waiting for inclusion of %s: context deadline exceeded", domain.ErrLedger, handle.Hash))

	body := `{"txHash":"0xstuck","gasPrice":"7500000000"}`
	headers := map[string]string{"Authorization": "ApiKey " + testAPIKey}
	w := performRequest(tm.router, http.MethodPost, "/actions/bump", body, headers)

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Contains(t, w.Body.String(), `"txHash":"0xreplacement"`)
}

func TestHandler_Bump_InvalidGasPrice(t *testing.T) {
	tm := setupTestHandler(t)
	defer tm.ctrl.Finish()

	body := `{"txHash":"0xstuck","gasPrice":"not-a-number"}`
	headers := map[string]string{"Authorization": "ApiKey " + testAPIKey}
	w := performRequest(tm.router, http.MethodPost, "/actions/bump", body, headers)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "validation_failed", errorCode(t, w.Body.Bytes()))
}

func TestHandler_Bump_RequiresAuth(t *testing.T) {
	tm := setupTestHandler(t)
	defer tm.ctrl.Finish()

	body := `{"txHash":"0xstuck","gasPrice":"7500000000"}`
	w := performRequest(tm.router, http.MethodPost, "/actions/bump", body, nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_ProvisionCoupons(t *testing.T) {
	tm := setupTestHandler(t)
	defer tm.ctrl.Finish()

	tm.coupons.EXPECT().ProvisionCoupons(gomock.Any(), uint64(42), 3).
		Return([]claims.Coupon{
			{QRHash: "c-1", EventID: 42, Secret: "s-1"},
			{QRHash: "c-2", EventID: 42, Secret: "s-2"},
			{QRHash: "c-3", EventID: 42, Secret: "s-3"},
		}, nil)

	body := `{"eventId":42,"count":3}`
	headers := map[string]string{"Authorization": "ApiKey " + testAPIKey}
	w := performRequest(tm.router, http.MethodPost, "/actions/claim-qr/batch", body, headers)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response struct {
		Coupons []claims.Coupon `json:"coupons"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response.Coupons, 3)
}

func TestHandler_ProvisionCoupons_CountTooLarge(t *testing.T) {
	tm := setupTestHandler(t)
	defer tm.ctrl.Finish()

	// No ProvisionCoupons expectation: validation rejects oversized batches
	body := `{"eventId":42,"count":1001}`
	headers := map[string]string{"Authorization": "ApiKey " + testAPIKey}
	w := performRequest(tm.router, http.MethodPost, "/actions/claim-qr/batch", body, headers)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "validation_failed", errorCode(t, w.Body.Bytes()))
}

func TestHandler_MintEventToManyUsers(t *testing.T) {
	tm := setupTestHandler(t)
	defer tm.ctrl.Finish()

	recipients := []string{
		"0x96216849c49358B10257cb55b28eA603c874b05E",
		"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
	}
	for _, r := range recipients {
		tm.ledger.EXPECT().CheckAddress(gomock.Any(), r).Return(r, nil)
	}
	tm.minter.EXPECT().
		Submit(gomock.Any(), domain.MintEventToManyUsers(42, recipients), minter.SubmitOptions{}).
		Return(&ethereum.TxHandle{Hash: "0xbatch", Nonce: 3, From: "0xadmin"}, nil)

	body, err := json.Marshal(map[string]any{"eventId": 42, "recipients": recipients})
	require.NoError(t, err)
	headers := map[string]string{"Authorization": "ApiKey " + testAPIKey}
	w := performRequest(tm.router, http.MethodPost, "/actions/mintEventToManyUsers", string(body), headers)

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"pending"`)
}

func TestHandler_MintEventToManyUsers_InvalidRecipient(t *testing.T) {
	tm := setupTestHandler(t)
	defer tm.ctrl.Finish()

	tm.ledger.EXPECT().CheckAddress(gomock.Any(), "not-an-address").
		Return("", fmt.Errorf("%w: not-an-address", domain.ErrInvalidAddress))
	// No Submit expectation: the batch is rejected before submission

	body := `{"eventId":42,"recipients":["not-an-address"]}`
	headers := map[string]string{"Authorization": "ApiKey " + testAPIKey}
	w := performRequest(tm.router, http.MethodPost, "/actions/mintEventToManyUsers", body, headers)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "bad_request", errorCode(t, w.Body.Bytes()))
}

func TestHandler_ListSigners(t *testing.T) {
	tm := setupTestHandler(t)
	defer tm.ctrl.Finish()

	tm.signers.EXPECT().AllSigners(gomock.Any()).Return([]store.SignerRecord{
		{Signer: "0xadmin", Role: domain.SignerRoleAdministrator, Balance: "1000000000000000000"},
		{Signer: "0xhelper", Role: domain.SignerRoleHelper, PendingTxs: 2, Balance: "500000000000000000"},
	}, nil)

	w := performRequest(tm.router, http.MethodGet, "/signers", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"balance":"1000000000000000000"`)
	assert.Contains(t, w.Body.String(), `"pendingTxs":2`)
}

func TestHandler_UpdateSigner_NotFound(t *testing.T) {
	tm := setupTestHandler(t)
	defer tm.ctrl.Finish()

	tm.signers.EXPECT().SetGasPriceOverride(gomock.Any(), "0xunknown", "7500000000").
		Return(fmt.Errorf("%w: 0xunknown", domain.ErrSignerNotFound))

	body := `{"gasPrice":"7500000000"}`
	headers := map[string]string{"Authorization": "ApiKey " + testAPIKey}
	w := performRequest(tm.router, http.MethodPut, "/signers/0xunknown", body, headers)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "not_found", errorCode(t, w.Body.Bytes()))
}

package claims_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attendrop/minter/internal/claims"
	"github.com/attendrop/minter/internal/domain"
	"github.com/attendrop/minter/internal/minter"
	"github.com/attendrop/minter/internal/mocks"
	"github.com/attendrop/minter/internal/providers/ethereum"
	"github.com/attendrop/minter/internal/store/schema"
)

const (
	testSecretKey    = "test-secret-key"
	testQRHash       = "3a7d1fce9b1a4c0e"
	testBeneficiary  = "0x90F8bf6A479f320ead074411a4B0e7944Ea8c9C1"
	testNotFoundWait = time.Second
	testRejectWait   = 5 * time.Second
)

type testCouponMocks struct {
	ctrl      *gomock.Controller
	store     *mocks.MockStore
	ledger    *mocks.MockLedger
	submitter *mocks.MockSubmitter
	clock     *mocks.MockClock
	service   *claims.CouponService
}

func setupTestCoupon(t *testing.T) *testCouponMocks {
	ctrl := gomock.NewController(t)

	tm := &testCouponMocks{
		ctrl:      ctrl,
		store:     mocks.NewMockStore(ctrl),
		ledger:    mocks.NewMockLedger(ctrl),
		submitter: mocks.NewMockSubmitter(ctrl),
		clock:     mocks.NewMockClock(ctrl),
	}
	tm.service = claims.NewCouponService(
		tm.store, tm.ledger, tm.submitter, tm.clock,
		testSecretKey, testNotFoundWait, testRejectWait,
	)

	return tm
}

func tearDownTestCoupon(tm *testCouponMocks) {
	tm.ctrl.Finish()
}

func unclaimedCoupon() *schema.QRClaim {
	return &schema.QRClaim{ID: 1, QRHash: testQRHash, EventID: 42}
}

func TestCouponService_Secret(t *testing.T) {
	tm := setupTestCoupon(t)
	defer tearDownTestCoupon(tm)

	secret := tm.service.Secret(testQRHash)
	assert.Len(t, secret, 64)
	assert.Equal(t, secret, tm.service.Secret(testQRHash))
	assert.NotEqual(t, secret, tm.service.Secret("another-coupon"))

	// A different key yields a different digest
	other := claims.NewCouponService(tm.store, tm.ledger, tm.submitter, tm.clock,
		"other-key", testNotFoundWait, testRejectWait)
	assert.NotEqual(t, secret, other.Secret(testQRHash))
}

func TestCouponService_Get_UnknownCouponDelays(t *testing.T) {
	tm := setupTestCoupon(t)
	defer tearDownTestCoupon(tm)

	gomock.InOrder(
		tm.store.EXPECT().GetQRClaim(gomock.Any(), "no-such-coupon").Return(nil, nil),
		tm.clock.EXPECT().Sleep(testNotFoundWait),
	)

	_, err := tm.service.Get(context.Background(), "no-such-coupon")
	assert.ErrorIs(t, err, domain.ErrCouponNotFound)
}

func TestCouponService_Get_EnrichesCoupon(t *testing.T) {
	tm := setupTestCoupon(t)
	defer tearDownTestCoupon(tm)

	txHash := "0xminted"
	beneficiary := testBeneficiary
	record := &schema.QRClaim{
		ID: 1, QRHash: testQRHash, EventID: 42,
		Claimed: true, Beneficiary: &beneficiary, TxHash: &txHash,
	}
	event := &schema.Event{ID: 42, FancyID: "devcon-2026", Name: "Devcon"}

	tm.store.EXPECT().GetQRClaim(gomock.Any(), testQRHash).Return(record, nil)
	tm.store.EXPECT().GetEvent(gomock.Any(), uint64(42)).Return(event, nil)
	tm.store.EXPECT().GetTransactionByHash(gomock.Any(), txHash).
		Return(&schema.Transaction{TxHash: txHash, Status: domain.TransactionStatusPassed}, nil)

	coupon, err := tm.service.Get(context.Background(), testQRHash)
	require.NoError(t, err)
	assert.Equal(t, testQRHash, coupon.QRHash)
	assert.True(t, coupon.Claimed)
	assert.Equal(t, event, coupon.Event)
	assert.Equal(t, tm.service.Secret(testQRHash), coupon.Secret)
	assert.Equal(t, domain.TransactionStatusPassed, coupon.TxStatus)
}

func TestCouponService_Redeem_WrongSecretDelays(t *testing.T) {
	tm := setupTestCoupon(t)
	defer tearDownTestCoupon(tm)

	// No store expectations: a bad secret is rejected before any lookup
	tm.clock.EXPECT().Sleep(testRejectWait)

	_, err := tm.service.Redeem(context.Background(), testQRHash, "wrong-secret", testBeneficiary)
	assert.ErrorIs(t, err, domain.ErrInvalidSecret)
}

func TestCouponService_Redeem_UnknownCouponDelays(t *testing.T) {
	tm := setupTestCoupon(t)
	defer tearDownTestCoupon(tm)

	gomock.InOrder(
		tm.store.EXPECT().GetQRClaim(gomock.Any(), testQRHash).Return(nil, nil),
		tm.clock.EXPECT().Sleep(testRejectWait),
	)

	_, err := tm.service.Redeem(context.Background(), testQRHash, tm.service.Secret(testQRHash), testBeneficiary)
	assert.ErrorIs(t, err, domain.ErrCouponNotFound)
}

func TestCouponService_Redeem_AlreadyClaimed(t *testing.T) {
	tm := setupTestCoupon(t)
	defer tearDownTestCoupon(tm)

	record := unclaimedCoupon()
	record.Claimed = true
	tm.store.EXPECT().GetQRClaim(gomock.Any(), testQRHash).Return(record, nil)

	_, err := tm.service.Redeem(context.Background(), testQRHash, tm.service.Secret(testQRHash), testBeneficiary)
	assert.ErrorIs(t, err, domain.ErrAlreadyClaimed)
}

func TestCouponService_Redeem_InvalidBeneficiary(t *testing.T) {
	tm := setupTestCoupon(t)
	defer tearDownTestCoupon(tm)

	tm.store.EXPECT().GetQRClaim(gomock.Any(), testQRHash).Return(unclaimedCoupon(), nil)
	tm.ledger.EXPECT().CheckAddress(gomock.Any(), "not-an-address").
		Return("", domain.ErrInvalidAddress)

	_, err := tm.service.Redeem(context.Background(), testQRHash, tm.service.Secret(testQRHash), "not-an-address")
	assert.ErrorIs(t, err, domain.ErrInvalidAddress)
}

func TestCouponService_Redeem_DualClaimGuard(t *testing.T) {
	tm := setupTestCoupon(t)
	defer tearDownTestCoupon(tm)

	tm.store.EXPECT().GetQRClaim(gomock.Any(), testQRHash).Return(unclaimedCoupon(), nil)
	tm.ledger.EXPECT().CheckAddress(gomock.Any(), testBeneficiary).Return(testBeneficiary, nil)
	tm.store.EXPECT().HasDualQRClaim(gomock.Any(), uint64(42), testBeneficiary).Return(true, nil)

	_, err := tm.service.Redeem(context.Background(), testQRHash, tm.service.Secret(testQRHash), testBeneficiary)
	assert.ErrorIs(t, err, domain.ErrDuplicateClaim)
}

func TestCouponService_Redeem_ConcurrentLoserGetsConflict(t *testing.T) {
	tm := setupTestCoupon(t)
	defer tearDownTestCoupon(tm)

	tm.store.EXPECT().GetQRClaim(gomock.Any(), testQRHash).Return(unclaimedCoupon(), nil)
	tm.ledger.EXPECT().CheckAddress(gomock.Any(), testBeneficiary).Return(testBeneficiary, nil)
	tm.store.EXPECT().HasDualQRClaim(gomock.Any(), uint64(42), testBeneficiary).Return(false, nil)
	// Another request flipped the flag between our read and our write
	tm.store.EXPECT().ClaimQRClaim(gomock.Any(), testQRHash).Return(domain.ErrClaimConflict)

	// No Submit expectation: losing the race must never mint
	_, err := tm.service.Redeem(context.Background(), testQRHash, tm.service.Secret(testQRHash), testBeneficiary)
	assert.ErrorIs(t, err, domain.ErrClaimConflict)
}

func TestCouponService_Redeem_HappyPath(t *testing.T) {
	tm := setupTestCoupon(t)
	defer tearDownTestCoupon(tm)

	now := time.Now()
	txHash := "0xminted"
	signer := "0x1111111111111111111111111111111111111111"
	beneficiary := testBeneficiary
	claimedRecord := &schema.QRClaim{
		ID: 1, QRHash: testQRHash, EventID: 42,
		Claimed: true, ClaimedDate: &now,
		Beneficiary: &beneficiary, TxHash: &txHash, Signer: &signer,
	}
	event := &schema.Event{ID: 42, FancyID: "devcon-2026", Name: "Devcon"}

	tm.ledger.EXPECT().CheckAddress(gomock.Any(), testBeneficiary).Return(testBeneficiary, nil)
	tm.store.EXPECT().HasDualQRClaim(gomock.Any(), uint64(42), testBeneficiary).Return(false, nil)

	gomock.InOrder(
		tm.store.EXPECT().GetQRClaim(gomock.Any(), testQRHash).Return(unclaimedCoupon(), nil),
		// The claimed-flag transition happens strictly before the mint
		tm.store.EXPECT().ClaimQRClaim(gomock.Any(), testQRHash).Return(nil),
		tm.submitter.EXPECT().
			Submit(gomock.Any(), domain.MintToken(42, testBeneficiary), minter.SubmitOptions{}).
			Return(&ethereum.TxHandle{Hash: txHash, Nonce: 5, From: signer}, nil),
		tm.store.EXPECT().UpdateQRClaimMint(gomock.Any(), testQRHash, testBeneficiary, txHash, signer).Return(nil),
		tm.store.EXPECT().GetQRClaim(gomock.Any(), testQRHash).Return(claimedRecord, nil),
	)
	tm.store.EXPECT().GetEvent(gomock.Any(), uint64(42)).Return(event, nil)
	tm.store.EXPECT().GetTransactionByHash(gomock.Any(), txHash).
		Return(&schema.Transaction{TxHash: txHash, Status: domain.TransactionStatusPending}, nil)

	coupon, err := tm.service.Redeem(context.Background(), testQRHash, tm.service.Secret(testQRHash), testBeneficiary)
	require.NoError(t, err)
	assert.True(t, coupon.Claimed)
	assert.Equal(t, &txHash, coupon.TxHash)
	assert.Equal(t, &signer, coupon.Signer)
	assert.Equal(t, domain.TransactionStatusPending, coupon.TxStatus)
}

func TestCouponService_Redeem_ENSBeneficiary(t *testing.T) {
	tm := setupTestCoupon(t)
	defer tearDownTestCoupon(tm)

	resolved := testBeneficiary
	txHash := "0xminted"
	signer := "0x1111111111111111111111111111111111111111"
	claimedRecord := &schema.QRClaim{
		ID: 1, QRHash: testQRHash, EventID: 42,
		Claimed: true, Beneficiary: &resolved, TxHash: &txHash, Signer: &signer,
	}

	tm.store.EXPECT().GetQRClaim(gomock.Any(), testQRHash).Return(unclaimedCoupon(), nil)
	tm.ledger.EXPECT().CheckAddress(gomock.Any(), "attendee.eth").Return(resolved, nil)
	tm.store.EXPECT().HasDualQRClaim(gomock.Any(), uint64(42), resolved).Return(false, nil)
	tm.store.EXPECT().ClaimQRClaim(gomock.Any(), testQRHash).Return(nil)
	tm.submitter.EXPECT().
		Submit(gomock.Any(), domain.MintToken(42, resolved), minter.SubmitOptions{}).
		Return(&ethereum.TxHandle{Hash: txHash, Nonce: 5, From: signer}, nil)
	tm.store.EXPECT().UpdateQRClaimMint(gomock.Any(), testQRHash, resolved, txHash, signer).Return(nil)
	tm.store.EXPECT().GetQRClaim(gomock.Any(), testQRHash).Return(claimedRecord, nil)
	tm.store.EXPECT().GetEvent(gomock.Any(), uint64(42)).Return(&schema.Event{ID: 42}, nil)
	tm.store.EXPECT().GetTransactionByHash(gomock.Any(), txHash).Return(nil, nil)

	coupon, err := tm.service.Redeem(context.Background(), testQRHash, tm.service.Secret(testQRHash), "attendee.eth")
	require.NoError(t, err)
	assert.Equal(t, &resolved, coupon.Beneficiary)
	assert.Equal(t, domain.TransactionStatusPending, coupon.TxStatus)
}

func TestCouponService_Redeem_MintFailureSurfaces(t *testing.T) {
	tm := setupTestCoupon(t)
	defer tearDownTestCoupon(tm)

	tm.store.EXPECT().GetQRClaim(gomock.Any(), testQRHash).Return(unclaimedCoupon(), nil)
	tm.ledger.EXPECT().CheckAddress(gomock.Any(), testBeneficiary).Return(testBeneficiary, nil)
	tm.store.EXPECT().HasDualQRClaim(gomock.Any(), uint64(42), testBeneficiary).Return(false, nil)
	tm.store.EXPECT().ClaimQRClaim(gomock.Any(), testQRHash).Return(nil)
	tm.submitter.EXPECT().
		Submit(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("nonce too low"))

	_, err := tm.service.Redeem(context.Background(), testQRHash, tm.service.Secret(testQRHash), testBeneficiary)
	assert.Error(t, err)
}

func TestCouponService_ProvisionCoupons(t *testing.T) {
	tm := setupTestCoupon(t)
	defer tearDownTestCoupon(tm)

	event := &schema.Event{ID: 42, FancyID: "devcon-2026"}
	tm.store.EXPECT().GetEvent(gomock.Any(), uint64(42)).Return(event, nil)

	var inserted []schema.QRClaim
	tm.store.EXPECT().
		InsertQRClaims(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, records []schema.QRClaim) error {
			inserted = records
			return nil
		})

	coupons, err := tm.service.ProvisionCoupons(context.Background(), 42, 3)
	require.NoError(t, err)
	require.Len(t, coupons, 3)
	require.Len(t, inserted, 3)

	seen := make(map[string]bool)
	for i, coupon := range coupons {
		assert.Equal(t, inserted[i].QRHash, coupon.QRHash)
		assert.Equal(t, uint64(42), coupon.EventID)
		assert.Equal(t, tm.service.Secret(coupon.QRHash), coupon.Secret)
		assert.False(t, seen[coupon.QRHash])
		seen[coupon.QRHash] = true
	}
}

func TestCouponService_ProvisionCoupons_UnknownEvent(t *testing.T) {
	tm := setupTestCoupon(t)
	defer tearDownTestCoupon(tm)

	tm.store.EXPECT().GetEvent(gomock.Any(), uint64(42)).Return(nil, nil)

	_, err := tm.service.ProvisionCoupons(context.Background(), 42, 3)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestCouponService_ProvisionCoupons_CountOutOfRange(t *testing.T) {
	tm := setupTestCoupon(t)
	defer tearDownTestCoupon(tm)

	// No GetEvent or InsertQRClaims expectations: an out-of-range count is
	// rejected before any store access
	for _, count := range []int{0, -1, 1001} {
		_, err := tm.service.ProvisionCoupons(context.Background(), 42, count)
		assert.Error(t, err, "count %d", count)
	}
}

package minter_test

import (
	"context"
	"math/big"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attendrop/minter/internal/logger"
	"github.com/attendrop/minter/internal/minter"
	"github.com/attendrop/minter/internal/mocks"
	"github.com/attendrop/minter/internal/store/schema"
)

func TestMain(m *testing.M) {
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

func TestEstimateMintingGas(t *testing.T) {
	testCases := []struct {
		name       string
		recipients int
		expected   uint64
	}{
		{name: "single recipient", recipients: 1, expected: 2_107_167},
		{name: "ten recipients", recipients: 10, expected: 20_589_612},
		{name: "zero clamps to one", recipients: 0, expected: 2_107_167},
		{name: "negative clamps to one", recipients: -3, expected: 2_107_167},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, minter.EstimateMintingGas(tc.recipients))
		})
	}
}

func TestEstimateMintingGas_Deterministic(t *testing.T) {
	for n := 1; n <= 100; n++ {
		first := minter.EstimateMintingGas(n)
		assert.Equal(t, first, minter.EstimateMintingGas(n))
	}
}

func TestEstimateMintingGas_Monotonic(t *testing.T) {
	prev := minter.EstimateMintingGas(1)
	for n := 2; n <= 100; n++ {
		current := minter.EstimateMintingGas(n)
		assert.Greater(t, current, prev)
		prev = current
	}
}

func TestGasPolicy_ResolveGasPrice(t *testing.T) {
	const signerAddr = "0x1111111111111111111111111111111111111111"
	signerOverride := "7000000000"
	badOverride := "not-a-number"

	testCases := []struct {
		name     string
		explicit *big.Int
		setup    func(store *mocks.MockStore)
		expected *big.Int
	}{
		{
			name:     "explicit override wins",
			explicit: big.NewInt(9_000_000_000),
			setup:    func(store *mocks.MockStore) {},
			expected: big.NewInt(9_000_000_000),
		},
		{
			name: "signer override",
			setup: func(store *mocks.MockStore) {
				store.EXPECT().GetSigner(gomock.Any(), signerAddr).
					Return(&schema.Signer{Signer: signerAddr, GasPrice: &signerOverride}, nil)
			},
			expected: big.NewInt(7_000_000_000),
		},
		{
			name: "settings row",
			setup: func(store *mocks.MockStore) {
				store.EXPECT().GetSigner(gomock.Any(), signerAddr).
					Return(&schema.Signer{Signer: signerAddr}, nil)
				store.EXPECT().GetSetting(gomock.Any(), "gas-price").
					Return(&schema.Setting{Name: "gas-price", Type: "integer", Value: "6000000000"}, nil)
			},
			expected: big.NewInt(6_000_000_000),
		},
		{
			name: "hard default",
			setup: func(store *mocks.MockStore) {
				store.EXPECT().GetSigner(gomock.Any(), signerAddr).Return(nil, nil)
				store.EXPECT().GetSetting(gomock.Any(), "gas-price").Return(nil, nil)
			},
			expected: big.NewInt(5_000_000_000),
		},
		{
			name: "unparsable signer override falls through",
			setup: func(store *mocks.MockStore) {
				store.EXPECT().GetSigner(gomock.Any(), signerAddr).
					Return(&schema.Signer{Signer: signerAddr, GasPrice: &badOverride}, nil)
				store.EXPECT().GetSetting(gomock.Any(), "gas-price").
					Return(&schema.Setting{Name: "gas-price", Type: "integer", Value: "6000000000"}, nil)
			},
			expected: big.NewInt(6_000_000_000),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStore := mocks.NewMockStore(ctrl)
			tc.setup(mockStore)

			policy := minter.NewGasPolicy(mockStore)
			price, err := policy.ResolveGasPrice(context.Background(), signerAddr, tc.explicit)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, price)
		})
	}
}

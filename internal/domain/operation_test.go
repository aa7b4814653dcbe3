package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attendrop/minter/internal/domain"
)

func TestOperation_EncodeArguments(t *testing.T) {
	tests := []struct {
		name string
		op   domain.Operation
		want string
	}{
		{
			name: "mint single",
			op:   domain.MintToken(7, "0x22226263213C2b14b16Ba110cE4Bf807C2Ec9BA5"),
			want: `[7,"0x22226263213C2b14b16Ba110cE4Bf807C2Ec9BA5"]`,
		},
		{
			name: "mint event to many users",
			op:   domain.MintEventToManyUsers(7, []string{"0xaa", "0xbb"}),
			want: `[7,["0xaa","0xbb"]]`,
		},
		{
			name: "mint user to many events",
			op:   domain.MintUserToManyEvents([]uint64{1, 2, 3}, "0xaa"),
			want: `{"eventIds":[1,2,3],"toAddr":"0xaa"}`,
		},
		{
			name: "burn",
			op:   domain.BurnToken("4242"),
			want: `["4242"]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.op.EncodeArguments()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeOperation_RoundTrip(t *testing.T) {
	ops := []domain.Operation{
		domain.MintToken(7, "0xaa"),
		domain.MintEventToManyUsers(7, []string{"0xaa", "0xbb"}),
		domain.MintUserToManyEvents([]uint64{1, 2, 3}, "0xaa"),
		domain.BurnToken("4242"),
	}

	for _, op := range ops {
		encoded, err := op.EncodeArguments()
		require.NoError(t, err)

		decoded, err := domain.DecodeOperation(op.Type, encoded)
		require.NoError(t, err)
		assert.Equal(t, op, decoded)
	}
}

func TestDecodeOperation_UnknownTag(t *testing.T) {
	_, err := domain.DecodeOperation("transmogrify", `[1,"0xaa"]`)
	assert.ErrorIs(t, err, domain.ErrOperationNotSupported)
}

func TestDecodeOperation_PlaceholderPayload(t *testing.T) {
	// A record whose payload was replaced because serialization failed must
	// fail decoding gracefully, not panic.
	_, err := domain.DecodeOperation(domain.OperationMintToken, domain.ArgumentsPlaceholder)
	assert.ErrorIs(t, err, domain.ErrOperationNotSupported)
}

func TestDecodeOperation_TruncatedPayload(t *testing.T) {
	encoded, err := domain.MintEventToManyUsers(7, []string{"0xaa", "0xbb", "0xcc"}).EncodeArguments()
	require.NoError(t, err)

	_, err = domain.DecodeOperation(domain.OperationMintEventToManyUsers, encoded[:len(encoded)-4])
	assert.ErrorIs(t, err, domain.ErrOperationNotSupported)
}

func TestOperation_RecipientCount(t *testing.T) {
	assert.Equal(t, 1, domain.MintToken(1, "0xaa").RecipientCount())
	assert.Equal(t, 1, domain.BurnToken("1").RecipientCount())
	assert.Equal(t, 3, domain.MintEventToManyUsers(1, []string{"a", "b", "c"}).RecipientCount())
	assert.Equal(t, 2, domain.MintUserToManyEvents([]uint64{1, 2}, "0xaa").RecipientCount())
}

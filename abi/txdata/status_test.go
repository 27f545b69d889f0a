package txdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionStatusNames(t *testing.T) {
	assert.Equal(t, "UNINITIALIZED", StatusUninitialized.String())
	assert.Equal(t, "FINALIZED", StatusFinalized.String())
	assert.Equal(t, "LEADER_TIMEOUT", StatusLeaderTimeout.String())
	assert.Equal(t, "<unknown>", TransactionStatus(14).String())
	assert.Len(t, StatusNames(), 14)

	for i, name := range StatusNames() {
		s, err := ParseTransactionStatus(name)
		require.NoError(t, err)
		assert.Equal(t, TransactionStatus(i), s)
	}
}

func TestTransactionResultNames(t *testing.T) {
	assert.Equal(t, "IDLE", ResultIdle.String())
	assert.Equal(t, "MAJORITY_DISAGREE", ResultMajorityDisagree.String())
	assert.Equal(t, "<unknown>", TransactionResult(8).String())
	assert.Len(t, TransactionResultNames(), 8)
}

func TestVoteTypeNames(t *testing.T) {
	assert.Equal(t, "NOT_VOTED", VoteNotVoted.String())
	assert.Equal(t, "DETERMINISTIC_VIOLATION", VoteDeterministicViolation.String())
	assert.Equal(t, "<unknown>", VoteType(5).String())
	assert.Len(t, VoteNames(), 5)
}

func TestParseNames(t *testing.T) {
	s, err := ParseTransactionStatus("7")
	require.NoError(t, err)
	assert.Equal(t, StatusFinalized, s)

	s, err = ParseTransactionStatus("appeal_committing")
	require.NoError(t, err)
	assert.Equal(t, StatusAppealCommitting, s)

	r, err := ParseTransactionResult("NO_MAJORITY")
	require.NoError(t, err)
	assert.Equal(t, ResultNoMajority, r)

	v, err := ParseVoteType("2")
	require.NoError(t, err)
	assert.Equal(t, VoteDisagree, v)

	// The clone must not alias the table.
	names := VoteNames()
	names[0] = "changed"
	assert.Equal(t, "NOT_VOTED", VoteNotVoted.String())

	for _, in := range []string{"14", "99999999999999999999", "", "FINAL", "-1"} {
		_, err := ParseTransactionStatus(in)
		assert.ErrorIs(t, err, ErrUnknownName, "input %q", in)
	}
	_, err = ParseVoteType("5")
	assert.ErrorIs(t, err, ErrUnknownName)
	_, err = ParseTransactionResult("AGREED")
	assert.ErrorIs(t, err, ErrUnknownName)
}

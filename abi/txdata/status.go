package txdata

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ErrUnknownName is returned when a name or number is not in a name table.
var ErrUnknownName = errors.New("txdata: unknown name")

// TransactionStatus is the consensus stage of a transaction.
type TransactionStatus uint8

const (
	StatusUninitialized TransactionStatus = iota
	StatusPending
	StatusProposing
	StatusCommitting
	StatusRevealing
	StatusAccepted
	StatusUndetermined
	StatusFinalized
	StatusCanceled
	StatusAppealRevealing
	StatusAppealCommitting
	StatusReadyToFinalize
	StatusValidatorsTimeout
	StatusLeaderTimeout
)

var statusNames = []string{
	StatusUninitialized:     "UNINITIALIZED",
	StatusPending:           "PENDING",
	StatusProposing:         "PROPOSING",
	StatusCommitting:        "COMMITTING",
	StatusRevealing:         "REVEALING",
	StatusAccepted:          "ACCEPTED",
	StatusUndetermined:      "UNDETERMINED",
	StatusFinalized:         "FINALIZED",
	StatusCanceled:          "CANCELED",
	StatusAppealRevealing:   "APPEAL_REVEALING",
	StatusAppealCommitting:  "APPEAL_COMMITTING",
	StatusReadyToFinalize:   "READY_TO_FINALIZE",
	StatusValidatorsTimeout: "VALIDATORS_TIMEOUT",
	StatusLeaderTimeout:     "LEADER_TIMEOUT",
}

func (s TransactionStatus) String() string { return lookupName(statusNames, uint64(s)) }

// ParseTransactionStatus accepts a status name or its decimal number.
func ParseTransactionStatus(s string) (TransactionStatus, error) {
	n, err := parseName(statusNames, "transaction status", s)
	return TransactionStatus(n), err
}

// TransactionResult is the outcome of a consensus round.
type TransactionResult uint8

const (
	ResultIdle TransactionResult = iota
	ResultAgree
	ResultDisagree
	ResultTimeout
	ResultDeterministicViolation
	ResultNoMajority
	ResultMajorityAgree
	ResultMajorityDisagree
)

var transactionResultNames = []string{
	ResultIdle:                   "IDLE",
	ResultAgree:                  "AGREE",
	ResultDisagree:               "DISAGREE",
	ResultTimeout:                "TIMEOUT",
	ResultDeterministicViolation: "DETERMINISTIC_VIOLATION",
	ResultNoMajority:             "NO_MAJORITY",
	ResultMajorityAgree:          "MAJORITY_AGREE",
	ResultMajorityDisagree:       "MAJORITY_DISAGREE",
}

func (r TransactionResult) String() string {
	return lookupName(transactionResultNames, uint64(r))
}

// ParseTransactionResult accepts a result name or its decimal number.
func ParseTransactionResult(s string) (TransactionResult, error) {
	n, err := parseName(transactionResultNames, "transaction result", s)
	return TransactionResult(n), err
}

// VoteType is a validator's vote on a leader receipt.
type VoteType uint8

const (
	VoteNotVoted VoteType = iota
	VoteAgree
	VoteDisagree
	VoteTimeout
	VoteDeterministicViolation
)

var voteNames = []string{
	VoteNotVoted:               "NOT_VOTED",
	VoteAgree:                  "AGREE",
	VoteDisagree:               "DISAGREE",
	VoteTimeout:                "TIMEOUT",
	VoteDeterministicViolation: "DETERMINISTIC_VIOLATION",
}

func (v VoteType) String() string { return lookupName(voteNames, uint64(v)) }

// ParseVoteType accepts a vote name or its decimal number.
func ParseVoteType(s string) (VoteType, error) {
	n, err := parseName(voteNames, "vote type", s)
	return VoteType(n), err
}

// StatusNames returns the transaction status names indexed by number.
func StatusNames() []string { return slices.Clone(statusNames) }

// TransactionResultNames returns the consensus result names indexed by number.
func TransactionResultNames() []string { return slices.Clone(transactionResultNames) }

// VoteNames returns the vote names indexed by number.
func VoteNames() []string { return slices.Clone(voteNames) }

func lookupName(names []string, n uint64) string {
	if n < uint64(len(names)) {
		return names[n]
	}
	return "<unknown>"
}

func parseName(names []string, table, s string) (uint64, error) {
	if n, err := strconv.ParseUint(s, 10, 64); err == nil {
		if n < uint64(len(names)) {
			return n, nil
		}
		return 0, fmt.Errorf("%w: %s %d", ErrUnknownName, table, n)
	}
	upper := strings.ToUpper(s)
	for i, name := range names {
		if name == upper {
			return uint64(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %s %q", ErrUnknownName, table, s)
}

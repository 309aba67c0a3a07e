package domain

type PositionStatus string

const (
	PositionPending PositionStatus = "pending"
	PositionOpened  PositionStatus = "opened"
	PositionClosed  PositionStatus = "closed"
)

// PositionStatuses is the closed set a position status is sampled from.
func PositionStatuses() []PositionStatus {
	return []PositionStatus{PositionPending, PositionOpened, PositionClosed}
}

type TransactionStatus string

const (
	TransactionOpened       TransactionStatus = "opened"
	TransactionClosed       TransactionStatus = "closed"
	TransactionExtraDeposit TransactionStatus = "extra_deposit"
	TransactionWithdrawal   TransactionStatus = "withdrawal"
)

// TransactionStatuses returns the transaction statuses in canonical order.
// Every seeded position receives one transaction per entry, in this order.
func TransactionStatuses() []TransactionStatus {
	return []TransactionStatus{
		TransactionOpened,
		TransactionClosed,
		TransactionExtraDeposit,
		TransactionWithdrawal,
	}
}

package domain

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// User is the root entity every other seeded row hangs off.
type User struct {
	ID                 int64
	WalletID           string
	ContractAddress    string
	IsContractDeployed bool
}

type Position struct {
	ID                  int64
	UserID              int64
	TokenSymbol         string
	Amount              decimal.Decimal
	Multiplier          int
	StartPrice          decimal.Decimal
	Status              PositionStatus
	IsProtection        bool
	LiquidationBonus    decimal.Decimal
	IsLiquidated        bool
	DatetimeLiquidation sql.Null[time.Time]
}

// Vault amounts are stored as strings by the application schema.
type Vault struct {
	ID     int64
	UserID int64
	Symbol string
	Amount decimal.Decimal
}

type AirDrop struct {
	ID        int64
	UserID    int64
	Amount    decimal.Decimal
	IsClaimed bool
	ClaimedAt sql.Null[time.Time]
}

// LinkedAccount is a telegram account bound to a user's wallet. UserID is
// kept in memory only; the table references the wallet id.
type LinkedAccount struct {
	ID                    int64
	UserID                int64
	TelegramID            string
	Username              string
	FirstName             string
	LastName              string
	WalletID              string
	PhotoURL              string
	IsAllowedNotification bool
}

type Transaction struct {
	ID              int64
	PositionID      int64
	Status          TransactionStatus
	TransactionHash string
}

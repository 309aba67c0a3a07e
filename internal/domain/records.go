package domain

// Table names of the application schema.
const (
	TableUsers          = "user"
	TablePositions      = "position"
	TableVaults         = "vault"
	TableAirdrops       = "airdrop"
	TableLinkedAccounts = "telegram_user"
	TableTransactions   = "transaction"
)

func (u *User) TableName() string { return TableUsers }
func (u *User) SetID(id int64) { u.ID = id }

func (u *User) Columns() []string {
	return []string{"wallet_id", "contract_address", "is_contract_deployed"}
}

func (u *User) Values() []interface{} {
	return []interface{}{u.WalletID, u.ContractAddress, u.IsContractDeployed}
}

func (p *Position) TableName() string { return TablePositions }
func (p *Position) SetID(id int64) { p.ID = id }

func (p *Position) Columns() []string {
	return []string{
		"user_id", "token_symbol", "amount", "multiplier", "start_price", "status",
		"is_protection", "liquidation_bonus", "is_liquidated", "datetime_liquidation",
	}
}

func (p *Position) Values() []interface{} {
	return []interface{}{
		p.UserID, p.TokenSymbol, p.Amount, p.Multiplier, p.StartPrice, string(p.Status),
		p.IsProtection, p.LiquidationBonus, p.IsLiquidated, p.DatetimeLiquidation,
	}
}

func (v *Vault) TableName() string { return TableVaults }
func (v *Vault) SetID(id int64) { v.ID = id }
func (v *Vault) Columns() []string { return []string{"user_id", "symbol", "amount"} }

func (v *Vault) Values() []interface{} {
	return []interface{}{v.UserID, v.Symbol, v.Amount.String()}
}

func (a *AirDrop) TableName() string { return TableAirdrops }
func (a *AirDrop) SetID(id int64) { a.ID = id }

func (a *AirDrop) Columns() []string {
	return []string{"user_id", "amount", "is_claimed", "claimed_at"}
}

func (a *AirDrop) Values() []interface{} {
	return []interface{}{a.UserID, a.Amount, a.IsClaimed, a.ClaimedAt}
}

func (l *LinkedAccount) TableName() string { return TableLinkedAccounts }
func (l *LinkedAccount) SetID(id int64) { l.ID = id }

func (l *LinkedAccount) Columns() []string {
	return []string{
		"telegram_id", "username", "first_name", "last_name",
		"wallet_id", "photo_url", "is_allowed_notification",
	}
}

func (l *LinkedAccount) Values() []interface{} {
	return []interface{}{
		l.TelegramID, l.Username, l.FirstName, l.LastName,
		l.WalletID, l.PhotoURL, l.IsAllowedNotification,
	}
}

func (t *Transaction) TableName() string { return TableTransactions }
func (t *Transaction) SetID(id int64) { t.ID = id }

func (t *Transaction) Columns() []string {
	return []string{"position_id", "status", "transaction_hash"}
}

func (t *Transaction) Values() []interface{} {
	return []interface{}{t.PositionID, string(t.Status), t.TransactionHash}
}

package constant

// Gateway transaction_status values.
const (
	TransactionStatusCapture    = "capture"
	TransactionStatusSettlement = "settlement"
	TransactionStatusPending    = "pending"
	TransactionStatusCancel     = "cancel"
	TransactionStatusDeny       = "deny"
	TransactionStatusExpire     = "expire"
)

// Gateway fraud_status values.
const (
	FraudStatusAccept    = "accept"
	FraudStatusChallenge = "challenge"
	FraudStatusDeny      = "deny"
)

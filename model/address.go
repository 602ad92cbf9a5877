package model

type AddressEntity struct {
	ID            uint64 `db:"id" json:"id"`
	UserID        uint64 `db:"user_id" json:"user_id"`
	RecipientName string `db:"recipient_name" json:"recipient_name"`
	Phone         string `db:"phone" json:"phone"`
	FullAddress   string `db:"full_address" json:"full_address"`
	City          string `db:"city" json:"city"`
	PostalCode    string `db:"postal_code" json:"postal_code"`
}

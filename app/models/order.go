package models

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
)

// Order is a completed checkout. SessionID is the payment provider's checkout
// session id and is unique: whichever completion path stores it first wins.
type Order struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	SessionID string         `gorm:"column:session_id;type:varchar(255);not null;uniqueIndex:ux_orders_session_id" json:"session_id"`
	Amount    int64          `gorm:"not null" json:"amount"` // minor units
	Items     datatypes.JSON `gorm:"not null" json:"items"`
	CreatedAt time.Time      `gorm:"autoCreateTime;index" json:"created_at"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

func (o Order) String() string {
	return fmt.Sprintf("Order %d - %s", o.ID, o.SessionID)
}

// Package policy decides whether a caller may perform an action on a resource.
package policy

import (
	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
)

type Action int

const (
	ActionManageCart Action = iota + 1
	ActionCheckout
	ActionViewOrder
	ActionUpdateOrderStatus
	ActionConfirmReceipt
	ActionRequestWithdrawal
	ActionReviewWithdrawal
)

// Resource holds the ownership facts needed to judge an action.
type Resource struct {
	// OwnerUserID is the cart owner, the order buyer, or the store owner depending on the action.
	OwnerUserID uint64
	// OrderSeller is true when the caller owns a store with items in the order.
	OrderSeller bool
}

type rule func(caller model.Caller, res Resource) bool

var rules = map[Action]rule{
	ActionManageCart: func(c model.Caller, r Resource) bool {
		return isShopper(c) && (r.OwnerUserID == 0 || r.OwnerUserID == c.UserID)
	},
	ActionCheckout: func(c model.Caller, _ Resource) bool {
		return isShopper(c)
	},
	ActionViewOrder: func(c model.Caller, r Resource) bool {
		return c.Role == constant.RoleAdmin || r.OwnerUserID == c.UserID || r.OrderSeller
	},
	ActionUpdateOrderStatus: func(c model.Caller, r Resource) bool {
		return c.Role == constant.RoleSeller && r.OrderSeller
	},
	ActionConfirmReceipt: func(c model.Caller, r Resource) bool {
		return r.OwnerUserID == c.UserID
	},
	ActionRequestWithdrawal: func(c model.Caller, r Resource) bool {
		return c.Role == constant.RoleSeller && r.OwnerUserID == c.UserID
	},
	ActionReviewWithdrawal: func(c model.Caller, _ Resource) bool {
		return c.Role == constant.RoleAdmin
	},
}

// Authorize reports whether caller may perform action on res. Unknown actions and anonymous callers are denied.
func Authorize(caller model.Caller, action Action, res Resource) bool {
	if caller.UserID == 0 {
		return false
	}
	r, ok := rules[action]
	if !ok {
		return false
	}
	return r(caller, res)
}

// sellers can shop on other stores too
func isShopper(c model.Caller) bool {
	return c.Role == constant.RoleBuyer || c.Role == constant.RoleSeller
}

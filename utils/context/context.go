package context

import (
	"context"

	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
)

func GetUserID(ctx context.Context) (uint64, bool) {
	v := ctx.Value(constant.UserIDKey)
	if v == nil {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}

func GetUserRole(ctx context.Context) (constant.UserRole, bool) {
	v := ctx.Value(constant.UserRoleKey)
	if v == nil {
		return "", false
	}
	role, ok := v.(constant.UserRole)
	return role, ok
}

// GetCaller returns the authenticated identity placed in ctx by the auth middleware.
func GetCaller(ctx context.Context) (model.Caller, bool) {
	id, ok := GetUserID(ctx)
	if !ok || id == 0 {
		return model.Caller{}, false
	}
	role, ok := GetUserRole(ctx)
	if !ok {
		return model.Caller{}, false
	}
	return model.Caller{UserID: id, Role: role}, true
}

func WithCaller(ctx context.Context, caller model.Caller) context.Context {
	ctx = context.WithValue(ctx, constant.UserIDKey, caller.UserID)
	return context.WithValue(ctx, constant.UserRoleKey, caller.Role)
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, constant.RequestIDKey, requestID)
}

func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(constant.RequestIDKey).(string)
	return id
}

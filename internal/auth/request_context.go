package auth

import (
	"context"
)

type contextKey string

var accountClaimsKey contextKey = "account_claims"
var requestIDKey contextKey = "request_id"

func SetAccountClaims(ctx context.Context, claims AccountClaims) context.Context {
	return context.WithValue(ctx, accountClaimsKey, claims)
}

func GetAccountClaims(ctx context.Context) AccountClaims {
	val := ctx.Value(accountClaimsKey)
	if claims, ok := val.(AccountClaims); ok {
		return claims
	}
	return nil
}

func SetRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

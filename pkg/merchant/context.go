package merchant

import (
	"context"
)

type contextKey string

const (
	merchantIDKey contextKey = "merchant_id"
)

// SetMerchantIDContext define o ID do comerciante no contexto
func SetMerchantIDContext(ctx context.Context, merchantID string) context.Context {
	return context.WithValue(ctx, merchantIDKey, merchantID)
}

// GetMerchantIDFromContext obtém o ID do comerciante do contexto
func GetMerchantIDFromContext(ctx context.Context) string {
	if merchantID, ok := ctx.Value(merchantIDKey).(string); ok {
		return merchantID
	}
	return ""
}

// GetMerchantID obtém o ID do comerciante de um contexto do Gin
func GetMerchantID(c interface{}) string {
	if gc, ok := c.(interface{ GetString(string) string }); ok {
		return gc.GetString("merchant_id")
	}

	if gc, ok := c.(interface {
		Get(string) (interface{}, bool)
	}); ok {
		if val, exists := gc.Get("merchant_id"); exists {
			if merchantID, ok := val.(string); ok {
				return merchantID
			}
		}
	}

	return ""
}

package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	ProfileKeyPrefix      = "profile:%d"
	CircleListKeyPrefix   = "circles:%d"
	RefreshTokenKeyPrefix = "refresh:%s"
)

const (
	ProfileTTL      = 5 * time.Minute
	CircleListTTL   = 10 * time.Minute
	RefreshTokenTTL = 30 * 24 * time.Hour
)

func ProfileKey(userID uint) string {
	return fmt.Sprintf(ProfileKeyPrefix, userID)
}

func CircleListKey(userID uint) string {
	return fmt.Sprintf(CircleListKeyPrefix, userID)
}

func RefreshTokenKey(tokenID string) string {
	return fmt.Sprintf(RefreshTokenKeyPrefix, tokenID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateProfile(ctx context.Context, userID uint) {
	Invalidate(ctx, ProfileKey(userID))
}

func InvalidateCircleList(ctx context.Context, userID uint) {
	Invalidate(ctx, CircleListKey(userID))
}

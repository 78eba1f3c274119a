package biz

import "time"

const (
	SESSION_KEY_PREFIX = "stylist:session:"

	SessionIdleTTL = time.Minute * 30

	TaskExpireSession = "session:expire"

	ProductIndex = "products"
)

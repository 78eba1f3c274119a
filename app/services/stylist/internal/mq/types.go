package mq

import "StylistAI/app/common/consts/biz"

const TaskExpireSession = biz.TaskExpireSession

type ExpireSessionPayload struct {
	SessionId string `json:"session_id"`
	// UpdatedAt is the session activity time, in unix millis, when the task was queued.
	UpdatedAt int64 `json:"updated_at"`
}

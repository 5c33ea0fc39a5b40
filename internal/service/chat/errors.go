package chat

import "errors"

var (
	ErrEmptyInput   = errors.New("message is empty")
	ErrReplyPending = errors.New("a reply is still being composed")
)

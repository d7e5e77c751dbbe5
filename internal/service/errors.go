package service

import "errors"

// ErrNoRecipient marks an identity that cannot receive messages: unknown,
// not allowed or without a registered chat.
var ErrNoRecipient = errors.New("no resolvable recipient")

package domain

import "errors"

// Token failures all surface to the client as an authentication failure;
// they differ only by message text.
var ErrTokenMalformed = errors.New("malformed token")
var ErrTokenExpired = errors.New("token expired")

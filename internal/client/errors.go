package client

import "errors"

var ErrUINotProvided = errors.New("ui is not provided")

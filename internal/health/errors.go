package health

import "errors"

var ErrDatabaseUnavailable = errors.New("database connection failed")

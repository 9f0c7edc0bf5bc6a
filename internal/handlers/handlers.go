// Package handlers contains one Fiber handler per entity and verb. Handlers
// parse and validate the payload, call the matching service and map service
// errors to HTTP statuses; documents read from the store are already
// normalized by the services.
package handlers

import (
	"github.com/go-playground/validator/v10"
)

// validate checks creation payloads against their struct tags.
var validate = validator.New()

package handlers

import "github.com/go-playground/validator/v10"

// Validate checks DTO payloads against their struct tags.
var Validate = validator.New(validator.WithRequiredStructEnabled())

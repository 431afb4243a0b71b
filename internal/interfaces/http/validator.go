package http

import "github.com/go-playground/validator/v10"

// validate instancia compartida del validador de DTOs (es thread-safe).
var validate = validator.New()

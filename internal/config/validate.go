package config

import "laytime-calculator/internal/validator"

var validate = validator.New()

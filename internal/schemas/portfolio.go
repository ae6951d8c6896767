// Package schemas provides JSON Schema validation for portfolio repository files and validation reports.
package schemas

import (
	_ "embed"
)

//go:embed portfolio.schema.json
var portfolioSchema string

//go:embed violations.schema.json
var violationsSchema string

// PortfolioSchema returns the JSON Schema every repository file must satisfy.
func PortfolioSchema() string {
	return portfolioSchema
}

// ValidateRepositoryValue validates a decoded repository document (JSON or YAML) against the portfolio schema.
func ValidateRepositoryValue(document interface{}) error {
	return ValidateValue(portfolioSchema, document)
}

// ValidateViolationsJSON validates a written violations report.
func ValidateViolationsJSON(data []byte) error {
	return ValidateJSONString(violationsSchema, string(data))
}

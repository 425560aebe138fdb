// Package docs holds the OpenAPI document served by /swagger.
// Regenerate with: swag init -g cmd/main.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support",
            "url": "https://github.com/guttosm/ap-savings-service"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/estimate": {
            "get": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "description": "Computes the annual savings from lowering the antipsychotic (AP) rate of nursing home residents to target_ap_rate at cost_per_day dollars per resident-day. Negative amounts are a projected cost increase.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Savings"
                ],
                "summary": "Estimate annual savings",
                "parameters": [
                    {
                        "type": "number",
                        "description": "Target AP rate as a fraction",
                        "name": "target_ap_rate",
                        "in": "query",
                        "required": true,
                        "minimum": 0.01,
                        "maximum": 0.25,
                        "example": 0.03
                    },
                    {
                        "type": "integer",
                        "description": "Daily drug cost in USD",
                        "name": "cost_per_day",
                        "in": "query",
                        "required": true,
                        "minimum": 1,
                        "maximum": 50,
                        "example": 15
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Savings estimate",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/SuccessResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/SavingsEstimate"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Missing, malformed or out-of-range input",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Missing or invalid API key",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    },
                    "429": {
                        "description": "Rate limit exceeded",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "description": "Same computation as GET /api/estimate with the inputs sent as a JSON body.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Savings"
                ],
                "summary": "Estimate annual savings (JSON body)",
                "parameters": [
                    {
                        "description": "Calculator inputs",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/EstimateRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Savings estimate",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/SuccessResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/SavingsEstimate"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Missing, malformed or out-of-range input",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Missing or invalid API key",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    },
                    "429": {
                        "description": "Rate limit exceeded",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/parameters": {
            "get": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "description": "Returns the fixed constants, the slider domains, the default inputs, the cost presets and the data notes.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Savings"
                ],
                "summary": "Calculator parameters",
                "responses": {
                    "200": {
                        "description": "Calculator parameters",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/SuccessResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/ParametersResponse"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "401": {
                        "description": "Missing or invalid API key",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/compare": {
            "get": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "description": "Estimates annual savings at target_ap_rate for every configured cost preset, in preset order.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Savings"
                ],
                "summary": "Compare cost tiers",
                "parameters": [
                    {
                        "type": "number",
                        "description": "Target AP rate as a fraction",
                        "name": "target_ap_rate",
                        "in": "query",
                        "required": true,
                        "minimum": 0.01,
                        "maximum": 0.25,
                        "example": 0.03
                    }
                ],
                "responses": {
                    "200": {
                        "description": "One estimate per cost preset",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/SuccessResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/ComparisonResponse"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Missing, malformed or out-of-range input",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Missing or invalid API key",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/report.pdf": {
            "get": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "description": "Renders the estimate for the given inputs together with the cost-tier comparison as a PDF document.",
                "produces": [
                    "application/pdf"
                ],
                "tags": [
                    "Savings"
                ],
                "summary": "Download PDF report",
                "parameters": [
                    {
                        "type": "number",
                        "description": "Target AP rate as a fraction",
                        "name": "target_ap_rate",
                        "in": "query",
                        "required": true,
                        "minimum": 0.01,
                        "maximum": 0.25,
                        "example": 0.03
                    },
                    {
                        "type": "integer",
                        "description": "Daily drug cost in USD",
                        "name": "cost_per_day",
                        "in": "query",
                        "required": true,
                        "minimum": 1,
                        "maximum": 50,
                        "example": 15
                    }
                ],
                "responses": {
                    "200": {
                        "description": "PDF report",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "400": {
                        "description": "Missing, malformed or out-of-range input",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Missing or invalid API key",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Reports are disabled",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Report generation failed",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    }
                }
            }
        },
        "/healthz": {
            "get": {
                "description": "Returns OK if the process is running.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Health"
                ],
                "summary": "Liveness probe",
                "responses": {
                    "200": {
                        "description": "Service is alive",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/readyz": {
            "get": {
                "description": "Reports dependency checks and circuit breaker states. Optional dependencies (request-log sink, shared cache) only degrade the service; the calculator keeps working without them.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Health"
                ],
                "summary": "Readiness probe",
                "responses": {
                    "200": {
                        "description": "Service is ready (status ok or degraded)",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "503": {
                        "description": "A required dependency is unavailable",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "TierEstimate": {
            "type": "object",
            "properties": {
                "preset": {
                    "$ref": "#/definitions/model.CostPreset"
                },
                "estimate": {
                    "$ref": "#/definitions/SavingsEstimate"
                }
            }
        },
        "ComparisonResponse": {
            "description": "Savings estimates for each cost preset at one target rate",
            "type": "object",
            "properties": {
                "target_ap_rate": {
                    "type": "number",
                    "example": 0.03
                },
                "tiers": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/TierEstimate"
                    }
                }
            }
        },
        "ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "example": "INVALID_REQUEST"
                },
                "message": {
                    "type": "string",
                    "example": "Value out of range"
                },
                "details": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "string"
                    }
                },
                "request_id": {
                    "type": "string"
                },
                "timestamp": {
                    "type": "string"
                }
            }
        },
        "SuccessResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "object"
                },
                "request_id": {
                    "type": "string"
                },
                "timestamp": {
                    "type": "string"
                }
            }
        },
        "EstimateRequest": {
            "type": "object",
            "required": [
                "cost_per_day",
                "target_ap_rate"
            ],
            "properties": {
                "target_ap_rate": {
                    "type": "number",
                    "example": 0.03
                },
                "cost_per_day": {
                    "type": "integer",
                    "example": 15
                }
            }
        },
        "model.InputDomain": {
            "type": "object",
            "properties": {
                "min": {
                    "type": "number",
                    "example": 0.01
                },
                "max": {
                    "type": "number",
                    "example": 0.25
                },
                "step": {
                    "type": "number",
                    "example": 0.001
                }
            }
        },
        "model.CostPreset": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string",
                    "example": "Generic"
                },
                "cost_per_day": {
                    "type": "integer",
                    "example": 3
                },
                "description": {
                    "type": "string"
                }
            }
        },
        "SavingsEstimate": {
            "type": "object",
            "properties": {
                "target_ap_rate": {
                    "type": "number",
                    "example": 0.03
                },
                "cost_per_day": {
                    "type": "integer",
                    "example": 15
                },
                "current_ap_rate": {
                    "type": "number",
                    "example": 0.2262
                },
                "current_ap_residents": {
                    "type": "number",
                    "example": 273702
                },
                "target_ap_residents": {
                    "type": "number",
                    "example": 36300
                },
                "reduced_residents": {
                    "type": "number",
                    "example": 237402
                },
                "annual_savings_usd": {
                    "type": "number",
                    "example": 1299775950
                },
                "savings_billions": {
                    "type": "number",
                    "example": 1.29977595
                },
                "is_cost_increase": {
                    "type": "boolean",
                    "example": false
                },
                "label": {
                    "type": "string",
                    "example": "Potential Annual Savings"
                },
                "headline": {
                    "type": "string",
                    "example": "$1.30B"
                },
                "summary": {
                    "type": "string",
                    "example": "By reducing AP drug rate from 22.6% to 3.0% at $15/day drug cost"
                }
            }
        },
        "ParametersResponse": {
            "description": "Calculator constants, slider domains, defaults and cost presets",
            "type": "object",
            "properties": {
                "total_residents": {
                    "type": "integer",
                    "example": 1210000
                },
                "current_ap_rate": {
                    "type": "number",
                    "example": 0.2262
                },
                "days_per_year": {
                    "type": "integer",
                    "example": 365
                },
                "target_ap_rate_domain": {
                    "$ref": "#/definitions/model.InputDomain"
                },
                "cost_per_day_domain": {
                    "$ref": "#/definitions/model.InputDomain"
                },
                "default_target_ap_rate": {
                    "type": "number",
                    "example": 0.03
                },
                "default_cost_per_day": {
                    "type": "integer",
                    "example": 15
                },
                "cost_presets": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/model.CostPreset"
                    }
                },
                "about_the_data": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {
            "description": "API key for authentication. Required if authentication is enabled.",
            "type": "apiKey",
            "name": "X-API-Key",
            "in": "header"
        }
    },
    "tags": [
        {
            "description": "Savings estimate operations",
            "name": "Savings"
        },
        {
            "description": "Health check endpoints",
            "name": "Health"
        }
    ]
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "AP Savings Calculator API",
	Description:      "Estimates the annual Medicare/Medicaid savings from reducing the\nantipsychotic (AP) drug rate among U.S. nursing home residents.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

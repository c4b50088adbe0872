// Package docs registers the payment records API description with swag.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "consumes": ["application/json"],
    "produces": ["application/json"],
    "paths": {
        "/payments": {
            "get": {
                "summary": "List payments",
                "operationId": "listPayments",
                "parameters": [
                    {"type": "string", "description": "ISO 4217 currency code", "name": "currency", "in": "query"},
                    {"type": "integer", "default": 20, "minimum": 1, "maximum": 100, "name": "limit", "in": "query"},
                    {"type": "integer", "default": 0, "minimum": 0, "name": "skip", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ListPaymentsEnvelope"}},
                    "400": {"description": "Invalid query parameters", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "500": {"description": "Internal error", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            },
            "post": {
                "summary": "Create a payment",
                "operationId": "createPayment",
                "parameters": [
                    {"description": "Payment to create", "name": "payment", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreatePaymentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/CreatePaymentEnvelope"}},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "500": {"description": "Internal error", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/payments/{id}": {
            "get": {
                "summary": "Get a payment by ID",
                "operationId": "getPayment",
                "parameters": [
                    {"type": "string", "description": "Payment ID (UUID)", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/PaymentEnvelope"}},
                    "400": {"description": "Malformed payment ID", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "404": {"description": "Payment not found", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "500": {"description": "Internal error", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "summary": "Liveness probe",
                "operationId": "health",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/HealthResponse"}}
                }
            }
        }
    },
    "definitions": {
        "CreatePaymentRequest": {
            "type": "object",
            "required": ["amount", "currency"],
            "properties": {
                "amount": {"type": "number", "format": "double", "example": 100.5},
                "currency": {"type": "string", "example": "USD"}
            }
        },
        "Payment": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "amount": {"type": "number", "format": "double"},
                "currency": {"type": "string"},
                "created_at": {"type": "string", "format": "date-time"}
            }
        },
        "CreatedPayment": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}
            }
        },
        "PaymentList": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/Payment"}},
                "total": {"type": "integer"},
                "limit": {"type": "integer"},
                "skip": {"type": "integer"}
            }
        },
        "PaymentEnvelope": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {"$ref": "#/definitions/Payment"}
            }
        },
        "CreatePaymentEnvelope": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {"$ref": "#/definitions/CreatedPayment"}
            }
        },
        "ListPaymentsEnvelope": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {"$ref": "#/definitions/PaymentList"}
            }
        },
        "ValidationError": {
            "type": "object",
            "properties": {
                "field": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "details": {"type": "array", "items": {"$ref": "#/definitions/ValidationError"}}
            }
        },
        "ErrorResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "error": {"$ref": "#/definitions/APIError"}
            }
        },
        "HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Payment Records API",
	Description:      "Create, fetch and list payment records.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

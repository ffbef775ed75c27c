// Package swagger holds the OpenAPI document served at /swagger.
package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness check",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/dashboard/summary": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Dashboard"],
                "summary": "Get Dashboard Summary",
                "responses": {
                    "200": {"description": "OK"},
                    "502": {"description": "Upstream fetch failed"}
                }
            }
        },
        "/api/dashboard/shipments": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Dashboard"],
                "summary": "Get Reconciled Shipment Rows",
                "parameters": [
                    {"type": "string", "name": "search", "in": "query"},
                    {"type": "string", "name": "invoice", "in": "query"},
                    {"type": "string", "name": "from", "in": "query"},
                    {"type": "string", "name": "to", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "502": {"description": "Upstream fetch failed"}
                }
            }
        },
        "/api/dashboard/expenses": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Dashboard"],
                "summary": "Get Expense Dashboard",
                "parameters": [
                    {"type": "string", "name": "from", "in": "query"},
                    {"type": "string", "name": "to", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "502": {"description": "Upstream fetch failed"}
                }
            }
        },
        "/api/shipments": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Shipments"],
                "summary": "List shipments",
                "parameters": [
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/shipments/bulk": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Shipments"],
                "summary": "Create a shipment with its containers",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Validation failed"},
                    "409": {"description": "Another write in progress"}
                }
            }
        },
        "/api/intake/commit": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Intake"],
                "summary": "Commit the queued intake records",
                "responses": {
                    "200": {"description": "OK"},
                    "502": {"description": "Commit failed, queue kept"}
                }
            }
        },
        "/api/export/invoice/{invoiceNumber}": {
            "get": {
                "produces": ["application/pdf"],
                "tags": ["Export"],
                "summary": "Download the invoice summary sheet",
                "parameters": [
                    {"type": "string", "name": "invoiceNumber", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "PDF"},
                    "404": {"description": "No intake records for the invoice"}
                }
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Trading Back Office API",
	Description:      "Shipment, warehouse intake and expense reconciliation over the remote records service.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

// Package docs registers the OpenAPI description served under /swagger.
// Regenerate from the handler annotations with:
//
//	swag init -g cmd/portfolio_backend/main.go -o cmd/docs
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
    "paths": {
        "/actions": {"get": {"tags": ["actions"], "summary": "Available actions", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}},
        "/auth/register": {"post": {"tags": ["auth"], "summary": "Register new user", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "409": {"description": "Conflict"}}}},
        "/auth/login": {"post": {"tags": ["auth"], "summary": "User login", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}, "429": {"description": "Too Many Requests"}}}},
        "/auth/refresh": {"post": {"tags": ["auth"], "summary": "Refresh the session", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}},
        "/auth/logout": {"post": {"tags": ["auth"], "summary": "Sign out", "security": [{"BearerAuth": []}], "responses": {"204": {"description": "No Content"}}}},
        "/auth/google/exchange-code": {"post": {"tags": ["auth"], "summary": "Exchange a Google authorization code for a session", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "504": {"description": "Gateway Timeout"}}}},
        "/me": {"get": {"tags": ["users"], "summary": "Current user", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}},
        "/portfolios": {
            "get": {"tags": ["portfolios"], "summary": "List portfolios", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["portfolios"], "summary": "Create a portfolio", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "401": {"description": "Unauthorized"}}}
        },
        "/portfolios/refresh": {"post": {"tags": ["portfolios"], "summary": "Reload portfolios", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/portfolios/{portfolioID}": {
            "get": {"tags": ["portfolios"], "summary": "Get a portfolio", "security": [{"BearerAuth": []}], "parameters": [{"type": "string", "name": "portfolioID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {"tags": ["portfolios"], "summary": "Update a portfolio", "security": [{"BearerAuth": []}], "parameters": [{"type": "string", "name": "portfolioID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "delete": {"tags": ["portfolios"], "summary": "Delete a portfolio", "security": [{"BearerAuth": []}], "parameters": [{"type": "string", "name": "portfolioID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/deposits": {"post": {"tags": ["deposits"], "summary": "Record a deposit", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}, "207": {"description": "Multi-Status"}, "400": {"description": "Bad Request"}, "401": {"description": "Unauthorized"}, "500": {"description": "Internal Server Error"}}}},
        "/transactions": {"get": {"tags": ["transactions"], "summary": "Recent activity", "security": [{"BearerAuth": []}], "parameters": [{"type": "integer", "name": "limit", "in": "query"}, {"type": "string", "name": "nextToken", "in": "query"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/balances": {"get": {"tags": ["balances"], "summary": "Cash balance summary", "security": [{"BearerAuth": []}], "parameters": [{"type": "string", "name": "currency", "in": "query"}], "responses": {"200": {"description": "OK"}}}}
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Portfolio Tracker API",
	Description:      "Portfolios, deposits, recent activity and cash balances.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

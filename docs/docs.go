// Package docs registers the OpenAPI document of the hotel admin API with swag.
// It is served by echo-swagger at /swagger/*.
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
        "/health": {
            "get": {"tags": ["health"], "summary": "Liveness probe", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}
        },
        "/health/ready": {
            "get": {"tags": ["health"], "summary": "Readiness probe", "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}}
        },
        "/api/users": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "List users", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}, "403": {"description": "Forbidden"}}},
            "post": {"tags": ["users"], "summary": "Register a user", "consumes": ["application/json"], "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "403": {"description": "Forbidden"}, "409": {"description": "Conflict"}}}
        },
        "/api/users/login": {
            "post": {"tags": ["users"], "summary": "Log in", "consumes": ["application/json"], "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}, "429": {"description": "Too Many Requests"}}}
        },
        "/api/users/me": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Current user", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}
        },
        "/api/users/{key}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Get a user by id or email", "parameters": [{"type": "string", "name": "key", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Update a user", "parameters": [{"type": "string", "name": "key", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Delete a user", "parameters": [{"type": "string", "name": "key", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/api/users/{key}/toggle": {
            "patch": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Enable or disable a user", "parameters": [{"type": "string", "name": "key", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/api/users/{key}/block": {
            "patch": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Block a user", "parameters": [{"type": "string", "name": "key", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/api/users/{key}/unblock": {
            "patch": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Unblock a user", "parameters": [{"type": "string", "name": "key", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/api/booking": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["booking"], "summary": "List bookings", "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["booking"], "summary": "Create a booking", "consumes": ["application/json"], "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "401": {"description": "Unauthorized"}}}
        },
        "/api/booking/{bookingId}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["booking"], "summary": "Get a booking", "parameters": [{"type": "integer", "name": "bookingId", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["booking"], "summary": "Update a booking", "parameters": [{"type": "integer", "name": "bookingId", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["booking"], "summary": "Delete a booking", "parameters": [{"type": "integer", "name": "bookingId", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}}
        },
        "/api/rooms": {
            "get": {"tags": ["rooms"], "summary": "List rooms page by page", "parameters": [{"type": "integer", "name": "pageIndex", "in": "query"}, {"type": "integer", "name": "pageSize", "in": "query"}], "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["rooms"], "summary": "Create a room", "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}}}
        },
        "/api/rooms/category/{category}": {
            "get": {"tags": ["rooms"], "summary": "List rooms of a category", "parameters": [{"type": "string", "name": "category", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/api/rooms/{roomId}": {
            "get": {"tags": ["rooms"], "summary": "Get a room", "parameters": [{"type": "integer", "name": "roomId", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["rooms"], "summary": "Update a room", "parameters": [{"type": "integer", "name": "roomId", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["rooms"], "summary": "Delete a room", "parameters": [{"type": "integer", "name": "roomId", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/api/categories": {
            "get": {"tags": ["categories"], "summary": "List categories", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["categories"], "summary": "Create a category", "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}}}
        },
        "/api/categories/{name}": {
            "get": {"tags": ["categories"], "summary": "Get a category", "parameters": [{"type": "string", "name": "name", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["categories"], "summary": "Update a category", "parameters": [{"type": "string", "name": "name", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["categories"], "summary": "Delete a category", "parameters": [{"type": "string", "name": "name", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/api/categories/{name}/toggle": {
            "patch": {"security": [{"BearerAuth": []}], "tags": ["categories"], "summary": "Enable or disable a category", "parameters": [{"type": "string", "name": "name", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/api/gallery": {
            "get": {"tags": ["gallery"], "summary": "List gallery items", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["gallery"], "summary": "Create a gallery item", "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}}}
        },
        "/api/gallery/{name}": {
            "put": {"security": [{"BearerAuth": []}], "tags": ["gallery"], "summary": "Update a gallery item", "parameters": [{"type": "string", "name": "name", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["gallery"], "summary": "Delete a gallery item", "parameters": [{"type": "string", "name": "name", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/api/gallery/{name}/toggle": {
            "patch": {"security": [{"BearerAuth": []}], "tags": ["gallery"], "summary": "Enable or disable a gallery item", "parameters": [{"type": "string", "name": "name", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and the token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Hotel Admin API",
	Description:      "Administration backend for a hotel: accounts, bookings, rooms, categories and gallery.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

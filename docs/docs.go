// Package docs registers the OpenAPI document served under /swagger.
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
        "/auth/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a user account",
                "parameters": [
                    {"description": "credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.HandleRegisterRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.HandleAuthResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Log in",
                "parameters": [
                    {"description": "credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.HandleLoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.HandleAuthResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/admin/book": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["books"],
                "summary": "List books",
                "parameters": [
                    {"type": "integer", "description": "page size (default 10)", "name": "ps", "in": "query"},
                    {"type": "integer", "description": "page number, 1-indexed (default 1)", "name": "pn", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.BooksPage"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Create a book",
                "parameters": [
                    {"description": "book", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.HandleCreateBookRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Book"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/admin/book/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Update a book",
                "parameters": [
                    {"type": "integer", "description": "book id", "name": "id", "in": "path", "required": true},
                    {"description": "fields to change", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.HandleUpdateBookRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Book"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["admin"],
                "summary": "Delete a book",
                "parameters": [
                    {"type": "integer", "description": "book id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/user/book": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["books"],
                "summary": "List books",
                "parameters": [
                    {"type": "integer", "description": "page size (default 10)", "name": "ps", "in": "query"},
                    {"type": "integer", "description": "page number, 1-indexed (default 1)", "name": "pn", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.BooksPage"}}
                }
            }
        },
        "/user/book/top": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["reading"],
                "summary": "Top five most read books",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.TopBook"}}}
                }
            }
        },
        "/user/book/intervals/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["reading"],
                "summary": "List the caller's intervals for a book",
                "parameters": [
                    {"type": "integer", "description": "book id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.ReadingInterval"}}}
                }
            }
        },
        "/user/book/interval": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["reading"],
                "summary": "Record a reading interval",
                "parameters": [
                    {"description": "interval", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.HandleCreateIntervalRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.ReadingInterval"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/user/book/interval/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["reading"],
                "summary": "Update a reading interval",
                "parameters": [
                    {"type": "integer", "description": "interval id", "name": "id", "in": "path", "required": true},
                    {"description": "new range", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.HandleUpdateIntervalRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ReadingInterval"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "models.Book": {"type": "object", "properties": {"id": {"type": "integer"}, "name": {"type": "string"}, "num_of_pages": {"type": "integer"}}},
        "models.BooksPage": {"type": "object", "properties": {"books": {"type": "array", "items": {"$ref": "#/definitions/models.Book"}}, "currentPage": {"type": "integer"}, "totalCount": {"type": "integer"}}},
        "models.ReadingInterval": {"type": "object", "properties": {"id": {"type": "integer"}, "userId": {"type": "integer"}, "bookId": {"type": "integer"}, "startPage": {"type": "integer"}, "endPage": {"type": "integer"}}},
        "models.TopBook": {"type": "object", "properties": {"id": {"type": "integer"}, "name": {"type": "string"}, "pages": {"type": "integer"}, "readPages": {"type": "integer"}}},
        "models.ErrorResponse": {"type": "object", "properties": {"error": {"type": "string"}}},
        "models.HandleCreateBookRequest": {"type": "object", "required": ["name", "pages"], "properties": {"name": {"type": "string"}, "pages": {"type": "integer", "minimum": 1, "maximum": 2147483647}}},
        "models.HandleUpdateBookRequest": {"type": "object", "properties": {"name": {"type": "string"}, "pages": {"type": "integer", "minimum": 1, "maximum": 2147483647}}},
        "models.HandleCreateIntervalRequest": {"type": "object", "required": ["bookId", "start", "end"], "properties": {"bookId": {"type": "integer", "minimum": 1}, "start": {"type": "integer", "minimum": 1, "maximum": 2147483647}, "end": {"type": "integer", "minimum": 1, "maximum": 2147483647}}},
        "models.HandleUpdateIntervalRequest": {"type": "object", "required": ["start", "end"], "properties": {"start": {"type": "integer", "minimum": 1, "maximum": 2147483647}, "end": {"type": "integer", "minimum": 1, "maximum": 2147483647}}},
        "models.HandleRegisterRequest": {"type": "object", "required": ["username", "name", "password"], "properties": {"username": {"type": "string"}, "name": {"type": "string"}, "password": {"type": "string"}}},
        "models.HandleLoginRequest": {"type": "object", "required": ["username", "password"], "properties": {"username": {"type": "string"}, "password": {"type": "string"}}},
        "models.HandleAuthResponse": {"type": "object", "properties": {"id": {"type": "integer"}, "username": {"type": "string"}, "name": {"type": "string"}, "role": {"type": "string"}, "token": {"type": "string"}}}
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Reading List",
	Description:      "Books, reading intervals and recommendations.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

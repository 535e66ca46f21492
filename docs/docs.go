// Package docs содержит OpenAPI-описание API для Swagger UI.
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
        "/auth/twitter": {
            "get": {
                "description": "Requests a temporary token from Twitter and returns the URL the browser should open",
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Start Twitter authentication",
                "responses": {
                    "200": {"description": "Authorization URL", "schema": {"$ref": "#/definitions/models.AuthURLResponse"}},
                    "500": {"description": "Provider not configured or unavailable", "schema": {"$ref": "#/definitions/middleware.ErrorResponse"}}
                }
            }
        },
        "/auth/twitter/callback": {
            "get": {
                "description": "Completes the handshake and redirects to the frontend with twitter_id, twitter_username, twitter_display_name and twitter_avatar, or with error=<code> on failure",
                "tags": ["auth"],
                "summary": "Twitter OAuth callback",
                "parameters": [
                    {"type": "string", "description": "Request token", "name": "oauth_token", "in": "query"},
                    {"type": "string", "description": "Verifier", "name": "oauth_verifier", "in": "query"},
                    {"type": "string", "description": "Set by Twitter when the user cancels", "name": "denied", "in": "query"}
                ],
                "responses": {"302": {"description": "Redirect to frontend"}}
            }
        },
        "/register": {
            "post": {
                "description": "Links a Twitter account, a Telegram username and an EVM wallet. Each of the three identifiers may be registered only once.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["registration"],
                "summary": "Register a raider",
                "parameters": [
                    {"description": "Registration data", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.RegisterRequest"}},
                    {"type": "string", "description": "Telegram Mini App init data", "name": "init_data", "in": "header"}
                ],
                "responses": {
                    "200": {"description": "Created profile", "schema": {"$ref": "#/definitions/models.RegisterResponse"}},
                    "400": {"description": "Validation failed or identity already registered", "schema": {"$ref": "#/definitions/middleware.ErrorResponse"}},
                    "401": {"description": "Invalid Telegram init data", "schema": {"$ref": "#/definitions/middleware.ErrorResponse"}},
                    "500": {"description": "Storage unavailable", "schema": {"$ref": "#/definitions/middleware.ErrorResponse"}}
                }
            }
        },
        "/users": {
            "post": {
                "description": "Returns every registered profile, newest first. Credentials are sent in the body.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "List registrations",
                "parameters": [
                    {"description": "Admin credentials", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.ListUsersRequest"}}
                ],
                "responses": {
                    "200": {"description": "Profiles", "schema": {"$ref": "#/definitions/models.ListUsersResponse"}},
                    "400": {"description": "Missing credentials", "schema": {"$ref": "#/definitions/middleware.ErrorResponse"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/middleware.ErrorResponse"}},
                    "500": {"description": "Storage unavailable", "schema": {"$ref": "#/definitions/middleware.ErrorResponse"}}
                }
            }
        },
        "/status": {
            "get": {
                "produces": ["application/json"],
                "tags": ["status"],
                "summary": "List status checks",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.StatusCheck"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/middleware.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["status"],
                "summary": "Record a status check",
                "parameters": [
                    {"description": "Client name", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.StatusCheckCreate"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.StatusCheck"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/middleware.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/middleware.ErrorResponse"}}
                }
            }
        },
        "/top-raiders": {
            "get": {
                "produces": ["application/json"],
                "tags": ["leaderboard"],
                "summary": "Top raiders",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Entry"}}}}
            }
        },
        "/top-whales": {
            "get": {
                "produces": ["application/json"],
                "tags": ["leaderboard"],
                "summary": "Top whales",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Entry"}}}}
            }
        },
        "/loyalty-ranking": {
            "get": {
                "produces": ["application/json"],
                "tags": ["leaderboard"],
                "summary": "Loyalty ranking",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Entry"}}}}
            }
        }
    },
    "definitions": {
        "errors.AppError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "details": {"type": "object", "additionalProperties": true},
                "message": {"type": "string"},
                "request_id": {"type": "string"},
                "timestamp": {"type": "string"}
            }
        },
        "middleware.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/errors.AppError"},
                "method": {"type": "string"},
                "path": {"type": "string"},
                "request_id": {"type": "string"},
                "success": {"type": "boolean"},
                "timestamp": {"type": "string"}
            }
        },
        "models.AuthURLResponse": {
            "type": "object",
            "properties": {
                "authUrl": {"type": "string", "example": "https://api.twitter.com/oauth/authenticate?oauth_token=abc"}
            }
        },
        "models.Entry": {
            "type": "object",
            "properties": {
                "label": {"type": "string", "example": "@raid_master"},
                "rank": {"type": "integer", "example": 1},
                "score": {"type": "integer", "example": 15420}
            }
        },
        "models.ListUsersRequest": {
            "type": "object",
            "properties": {
                "password": {"type": "string", "example": "secret"},
                "username": {"type": "string", "example": "admin"}
            }
        },
        "models.ListUsersResponse": {
            "type": "object",
            "properties": {
                "count": {"type": "integer", "example": 1},
                "success": {"type": "boolean", "example": true},
                "users": {"type": "array", "items": {"$ref": "#/definitions/models.UserProfile"}}
            }
        },
        "models.RegisterRequest": {
            "type": "object",
            "properties": {
                "telegramUsername": {"type": "string", "example": "raidmaster"},
                "twitterDisplayName": {"type": "string", "example": "Raid Master"},
                "twitterId": {"type": "string", "example": "1234567890"},
                "twitterUsername": {"type": "string", "example": "raid_master"},
                "walletAddress": {"type": "string", "example": "0x52908400098527886E0F7030069857D2E4169EE7"}
            }
        },
        "models.RegisterResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "user": {"$ref": "#/definitions/models.UserProfile"}
            }
        },
        "models.StatusCheck": {
            "type": "object",
            "properties": {
                "clientName": {"type": "string", "example": "frontend"},
                "id": {"type": "string", "example": "6f1c2a4e-8e0b-4b8e-9f57-2d1b7c3e9a10"},
                "timestamp": {"type": "string", "example": "2025-03-15T14:30:00Z"}
            }
        },
        "models.StatusCheckCreate": {
            "type": "object",
            "properties": {
                "clientName": {"type": "string", "example": "frontend"}
            }
        },
        "models.UserProfile": {
            "description": "Регистрация: аккаунт Twitter, Telegram и кошелек",
            "type": "object",
            "properties": {
                "createdAt": {"type": "string", "example": "2025-03-15T14:30:00Z"},
                "id": {"type": "integer", "example": 1},
                "telegramUsername": {"type": "string", "example": "raidmaster"},
                "twitterDisplayName": {"type": "string", "example": "Raid Master"},
                "twitterId": {"type": "string", "example": "1234567890"},
                "twitterUsername": {"type": "string", "example": "raid_master"},
                "updatedAt": {"type": "string", "example": "2025-03-15T14:30:00Z"},
                "walletAddress": {"type": "string", "example": "0x52908400098527886E0F7030069857D2E4169EE7"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Raider Registry API",
	Description:      "Twitter OAuth handshake, raider registration and leaderboards.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

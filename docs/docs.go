// Package docs registers the OpenAPI document served at /docs.
// Regenerate with: swag init -g cmd/api/main.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "Scoracle"
        },
        "license": {
            "name": "MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/chat": {
            "post": {
                "description": "Answers a natural-language Premier League stats question. Send the returned context back with the next turn.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["chat"],
                "summary": "Ask a stats question",
                "parameters": [
                    {
                        "description": "Query and optional context",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/chat.Request"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/chat.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}}
                }
            }
        },
        "/leaders/{stat}": {
            "get": {
                "description": "Returns the player with the highest value for a stat, given as a canonical identifier or a vocabulary phrase.",
                "produces": ["application/json"],
                "tags": ["stats"],
                "summary": "Get stat leader",
                "parameters": [
                    {"type": "string", "description": "Canonical stat or phrase", "name": "stat", "in": "path", "required": true},
                    {"type": "string", "description": "Club name (fuzzy)", "name": "team", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.LeaderResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}}
                }
            }
        },
        "/players": {
            "get": {
                "description": "Returns every player name in the dataset, optionally filtered by club.",
                "produces": ["application/json"],
                "tags": ["players"],
                "summary": "List players",
                "parameters": [
                    {"type": "string", "description": "Club name (fuzzy)", "name": "team", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.PlayerList"}}
                }
            }
        },
        "/players/{name}": {
            "get": {
                "description": "Returns every stored field for a player, matched exactly or by token-set similarity.",
                "produces": ["application/json"],
                "tags": ["players"],
                "summary": "Get player record",
                "parameters": [
                    {"type": "string", "description": "Player name", "name": "name", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.PlayerDetail"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}}
                }
            }
        },
        "/stats/vocabulary": {
            "get": {
                "description": "Returns each canonical stat identifier with the phrases that resolve to it.",
                "produces": ["application/json"],
                "tags": ["stats"],
                "summary": "Get stat vocabulary",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.VocabularyList"}}
                }
            }
        }
    },
    "definitions": {
        "chat.Context": {
            "type": "object",
            "properties": {
                "last_player": {"type": "string"}
            }
        },
        "chat.Request": {
            "type": "object",
            "properties": {
                "context": {"$ref": "#/definitions/chat.Context"},
                "query": {"type": "string"}
            }
        },
        "chat.Response": {
            "type": "object",
            "properties": {
                "context": {"$ref": "#/definitions/chat.Context"},
                "response": {"type": "string"}
            }
        },
        "handler.LeaderResult": {
            "type": "object",
            "properties": {
                "display": {"type": "string"},
                "label": {"type": "string"},
                "player": {"type": "string"},
                "stat": {"type": "string"},
                "team": {"type": "string"},
                "team_filter": {"type": "string"},
                "value": {"type": "number"}
            }
        },
        "handler.PlayerDetail": {
            "type": "object",
            "properties": {
                "matched": {"type": "string"},
                "player": {"type": "string"},
                "query": {"type": "string"},
                "record": {"type": "object", "additionalProperties": true},
                "team": {"type": "string"}
            }
        },
        "handler.PlayerList": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "players": {"type": "array", "items": {"type": "string"}},
                "team": {"type": "string"}
            }
        },
        "handler.VocabularyList": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "stats": {"type": "array", "items": {"$ref": "#/definitions/handler.VocabularyStat"}}
            }
        },
        "handler.VocabularyStat": {
            "type": "object",
            "properties": {
                "label": {"type": "string"},
                "phrases": {"type": "array", "items": {"type": "string"}},
                "stat": {"type": "string"}
            }
        },
        "respond.ErrorBody": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "detail": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "respond.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/respond.ErrorBody"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:5000",
	BasePath:         "/api/v1",
	Schemes:          []string{"http", "https"},
	Title:            "Scoracle Chat API",
	Description:      "Conversational Premier League player stats: ask about a player's numbers, compare players, or find stat leaders.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

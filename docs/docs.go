// Package docs holds the swagger spec served at /swagger. Regenerate with
// `swag init -g cmd/api/main.go`.
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
        "/api/transcripts": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Transcripts"],
                "summary": "Extract action items from a transcript",
                "parameters": [
                    {"description": "Transcript text (1 to 50,000 characters)", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.processReq"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/http.processResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "502": {"description": "All LLM providers failed", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/transcripts/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Transcripts"],
                "summary": "Get transcript detail",
                "parameters": [{"type": "string", "description": "Transcript ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.detailResp"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/history": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Transcripts"],
                "summary": "Recent transcripts",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.historyResp"}}
                }
            }
        },
        "/api/action-items": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Action Items"],
                "summary": "Create an action item",
                "parameters": [{"description": "Action item", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.createReq"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/http.itemResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "404": {"description": "Transcript not found", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/action-items/{id}": {
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Action Items"],
                "summary": "Update an action item",
                "parameters": [
                    {"type": "string", "description": "Action item ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.updateReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.itemResp"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["Action Items"],
                "summary": "Delete an action item",
                "parameters": [{"type": "string", "description": "Action item ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.deleteResp"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/health/llm": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "LLM provider health",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.llmResp"}},
                    "503": {"description": "No provider reachable", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/health/db": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Database health",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.dbResp"}},
                    "503": {"description": "Database unreachable", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/health": {"get": {"produces": ["application/json"], "tags": ["Health"], "summary": "Health Check", "responses": {"200": {"description": "API is healthy"}}}},
        "/ready": {"get": {"produces": ["application/json"], "tags": ["Health"], "summary": "Readiness Check", "responses": {"200": {"description": "API is ready"}, "503": {"description": "Database unreachable"}}}},
        "/live": {"get": {"produces": ["application/json"], "tags": ["Health"], "summary": "Liveness Check", "responses": {"200": {"description": "API is alive"}}}}
    },
    "definitions": {
        "response.Resp": {
            "type": "object",
            "properties": {
                "error_code": {"type": "integer"},
                "message": {"type": "string"},
                "data": {}
            }
        },
        "http.processReq": {
            "type": "object",
            "required": ["text"],
            "properties": {"text": {"type": "string", "maxLength": 50000}}
        },
        "http.actionItemResp": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "transcript_id": {"type": "string"},
                "task": {"type": "string"},
                "owner": {"type": "string"},
                "due_date": {"type": "string", "example": "2026-03-01"},
                "done": {"type": "boolean"},
                "tags": {"type": "array", "items": {"type": "string"}},
                "created_at": {"type": "string"}
            }
        },
        "http.transcriptResp": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "text": {"type": "string"},
                "created_at": {"type": "string"},
                "action_items": {"type": "array", "items": {"$ref": "#/definitions/http.actionItemResp"}}
            }
        },
        "http.processResp": {
            "type": "object",
            "properties": {
                "transcript": {"$ref": "#/definitions/http.transcriptResp"},
                "provider": {"type": "string"}
            }
        },
        "http.detailResp": {
            "type": "object",
            "properties": {"transcript": {"$ref": "#/definitions/http.transcriptResp"}}
        },
        "http.summaryResp": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "snippet": {"type": "string"},
                "created_at": {"type": "string"},
                "item_count": {"type": "integer"}
            }
        },
        "http.historyResp": {
            "type": "object",
            "properties": {"transcripts": {"type": "array", "items": {"$ref": "#/definitions/http.summaryResp"}}}
        },
        "http.createReq": {
            "type": "object",
            "required": ["task"],
            "properties": {
                "transcript_id": {"type": "string"},
                "task": {"type": "string"},
                "owner": {"type": "string"},
                "due_date": {"type": "string"},
                "tags": {"type": "array", "items": {"type": "string"}}
            }
        },
        "http.updateReq": {
            "type": "object",
            "properties": {
                "task": {"type": "string"},
                "owner": {"type": "string"},
                "due_date": {"type": "string"},
                "done": {"type": "boolean"},
                "tags": {"type": "array", "items": {"type": "string"}}
            }
        },
        "http.itemResp": {"$ref": "#/definitions/http.actionItemResp"},
        "http.deleteResp": {
            "type": "object",
            "properties": {"success": {"type": "boolean"}}
        },
        "http.llmResp": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "provider": {"type": "string"},
                "latency_ms": {"type": "integer"},
                "cached": {"type": "boolean"},
                "timestamp": {"type": "string"}
            }
        },
        "http.dbResp": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "latency_ms": {"type": "integer"},
                "timestamp": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Meeting Action Item Tracker API",
	Description:      "Extracts action items from meeting transcripts with an LLM provider failover chain.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

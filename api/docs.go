// Package api holds the OpenAPI documentation served at /docs.
//
// The paths follow the swag annotations of the controllers.
package api

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
        "/api": {
            "get": {
                "description": "Entrypoint for the API, listing all endpoints",
                "tags": ["General"],
                "summary": "API root",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/root.Response"}}
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": ["General"],
                "summary": "Allowed HTTP verbs",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/api/summary": {
            "get": {
                "description": "Returns the spending summary of the latest upload. Without an upload, the response is an empty object.",
                "produces": ["application/json"],
                "tags": ["Summary"],
                "summary": "Get summary",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/analysis.Summary"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/controllers.httpError"}}
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": ["Summary"],
                "summary": "Allowed HTTP verbs",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/api/transactions": {
            "get": {
                "description": "Returns the transactions of the latest upload with their categories",
                "produces": ["application/json"],
                "tags": ["Summary"],
                "summary": "Get transactions",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.TransactionListResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/controllers.httpError"}}
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": ["Summary"],
                "summary": "Allowed HTTP verbs",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/api/check_goal": {
            "post": {
                "description": "Checks if the goal amount can be saved in the given number of months with the spending of the latest upload.\nA missing goal_amount defaults to 0, missing months to 1. Without monthly_income, the income estimated from the statement is used.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Goals"],
                "summary": "Check goal",
                "parameters": [
                    {"description": "Goal", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/goal.Request"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/goal.Result"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/controllers.httpError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/controllers.httpError"}}
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": ["Goals"],
                "summary": "Allowed HTTP verbs",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/api/check_goal/report": {
            "post": {
                "description": "Checks a goal with the fields of the dashboard goal form and returns the text for its result panel.\nFields are parsed leniently: a numeric prefix is used and anything else counts as not a number.",
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["Goals"],
                "summary": "Check goal for the form",
                "parameters": [
                    {"type": "string", "description": "Goal amount", "name": "goal_amount", "in": "formData", "required": true},
                    {"type": "string", "description": "Months", "name": "months", "in": "formData", "required": true},
                    {"type": "string", "description": "Monthly income", "name": "monthly_income", "in": "formData"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.ReportResponse"}}
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": ["Goals"],
                "summary": "Allowed HTTP verbs",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/api/charts/{name}": {
            "get": {
                "description": "Returns the Chart.js configuration of the \"monthly\" or \"categories\" chart.\nWith a \".png\" or \".svg\" suffix, the chart is rendered as an image.",
                "produces": ["application/json", "image/png", "image/svg+xml"],
                "tags": ["Charts"],
                "summary": "Get chart",
                "parameters": [
                    {"type": "string", "example": "monthly.png", "description": "Chart name, optionally with an image suffix", "name": "name", "in": "path", "required": true},
                    {"type": "integer", "description": "Image width in pixels", "name": "width", "in": "query"},
                    {"type": "integer", "description": "Image height in pixels", "name": "height", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.ChartResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/controllers.httpError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/controllers.httpError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/controllers.httpError"}}
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": ["Charts"],
                "summary": "Allowed HTTP verbs",
                "parameters": [
                    {"type": "string", "description": "Chart name, optionally with an image suffix", "name": "name", "in": "path", "required": true}
                ],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/api/effects": {
            "get": {
                "description": "Returns the scenes a page can start. A scene is skipped when the page lacks its target element or library.\nElements, libraries and players default to what the named page is rendered with.",
                "produces": ["application/json"],
                "tags": ["Effects"],
                "summary": "Get effects",
                "parameters": [
                    {"type": "string", "example": "dashboard", "description": "Page name", "name": "page", "in": "query"},
                    {"type": "array", "items": {"type": "string"}, "description": "DOM IDs present on the page", "name": "elements", "in": "query"},
                    {"type": "array", "items": {"type": "string"}, "description": "Third-party libraries loaded by the page", "name": "libraries", "in": "query"},
                    {"type": "array", "items": {"type": "string"}, "description": "Containers already holding a Lottie player", "name": "players", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.EffectListResponse"}}
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": ["Effects"],
                "summary": "Allowed HTTP verbs",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/api/effects/{name}": {
            "get": {
                "description": "Upgrades to a websocket and streams the frames of the scene as JSON messages",
                "tags": ["Effects"],
                "summary": "Stream effect",
                "parameters": [
                    {"type": "string", "example": "dashboard", "description": "Scene name", "name": "name", "in": "path", "required": true},
                    {"type": "integer", "description": "Viewport width", "name": "width", "in": "query"},
                    {"type": "integer", "description": "Viewport height", "name": "height", "in": "query"},
                    {"type": "number", "description": "Device pixel ratio", "name": "dpr", "in": "query"}
                ],
                "responses": {
                    "101": {"description": "Switching Protocols"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/controllers.httpError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/controllers.httpError"}}
                }
            }
        },
        "/upload": {
            "post": {
                "description": "Imports a bank statement CSV. The upload replaces the data shown on the dashboard.",
                "consumes": ["multipart/form-data"],
                "produces": ["text/plain"],
                "tags": ["Statements"],
                "summary": "Upload statement",
                "parameters": [
                    {"type": "file", "description": "Statement CSV", "name": "file", "in": "formData", "required": true}
                ],
                "responses": {
                    "302": {"description": "Found"},
                    "400": {"description": "Bad Request", "schema": {"type": "string"}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "string"}}
                }
            }
        },
        "/healthz": {
            "get": {
                "description": "Returns the application health and, if not healthy, an error",
                "produces": ["application/json"],
                "tags": ["General"],
                "summary": "Get health",
                "responses": {
                    "204": {"description": "No Content"},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/healthz.httpError"}}
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": ["General"],
                "summary": "Allowed HTTP verbs",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/version": {
            "get": {
                "description": "Returns the software version of the API",
                "tags": ["General"],
                "summary": "API version",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/version.Response"}}
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": ["General"],
                "summary": "Allowed HTTP verbs",
                "responses": {"204": {"description": "No Content"}}
            }
        }
    },
    "definitions": {
        "analysis.Summary": {
            "type": "object",
            "properties": {
                "monthly_spending": {"type": "object", "additionalProperties": {"type": "number"}, "example": {"2024-04": 18250.5, "2024-05": 21410}},
                "avg_monthly_spending": {"type": "number", "example": 19830.25},
                "estimated_monthly_income": {"type": "number", "example": 55000},
                "category_totals": {"type": "object", "additionalProperties": {"type": "number"}, "example": {"Rent": 24000, "Food": 6230.5}},
                "recurring": {"type": "object", "additionalProperties": {"type": "integer"}, "example": {"NETFLIX": 2}}
            }
        },
        "controllers.ChartResponse": {
            "type": "object",
            "properties": {
                "data": {"description": "Chart.js configuration, null when there is nothing to draw", "type": "object"}
            }
        },
        "controllers.EffectListResponse": {
            "type": "object",
            "properties": {
                "data": {"description": "Scenes to start on the page", "type": "array", "items": {"$ref": "#/definitions/effects.Init"}}
            }
        },
        "controllers.ReportResponse": {
            "type": "object",
            "properties": {
                "text": {"description": "Text for the result panel of the goal form", "type": "string"}
            }
        },
        "controllers.TransactionListResponse": {
            "type": "object",
            "properties": {
                "data": {"description": "Transactions of the latest upload, in statement order", "type": "array", "items": {"$ref": "#/definitions/models.Transaction"}}
            }
        },
        "controllers.httpError": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "monthly_income required."}
            }
        },
        "effects.Init": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "example": "dashboard"},
                "target": {"type": "string", "example": "dashboard-three-canvas"},
                "stream": {"description": "Frames are streamed from the effects endpoint", "type": "boolean"},
                "player": {"description": "Lottie player to mount into the target", "type": "object"}
            }
        },
        "goal.Request": {
            "type": "object",
            "properties": {
                "goal_amount": {"type": "number", "example": 100000},
                "months": {"type": "integer", "example": 12},
                "monthly_income": {"type": "number", "example": 55000}
            }
        },
        "goal.Result": {
            "type": "object",
            "properties": {
                "feasible": {"type": "boolean", "example": false},
                "current_monthly_savings": {"type": "number", "example": 4200.5},
                "needed_monthly_savings": {"type": "number", "example": 8333.33},
                "months_needed_at_current_rate": {"type": "number", "example": 23.8},
                "suggestions": {"type": "array", "items": {"type": "string"}}
            }
        },
        "healthz.httpError": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "sql: database is closed"}
            }
        },
        "models.Transaction": {
            "type": "object",
            "properties": {
                "id": {"description": "UUID for the resource", "type": "string", "example": "65392deb-5e92-4268-b114-297faad6cdce"},
                "createdAt": {"description": "Time the resource was created", "type": "string", "example": "2022-04-02T19:28:44.491514Z"},
                "updatedAt": {"description": "Last time the resource was updated", "type": "string", "example": "2022-04-17T20:14:01.048145Z"},
                "uploadId": {"type": "string"},
                "position": {"description": "Row number in the statement", "type": "integer", "example": 3},
                "date": {"description": "Date of the transaction, null if it could not be parsed", "type": "string", "example": "2024-05-03T00:00:00Z"},
                "description": {"description": "Description as given in the statement", "type": "string", "example": "SWIGGY ORDER 12931"},
                "amount": {"description": "Absolute amount", "type": "number", "example": 432.5},
                "type": {"description": "debit or credit", "type": "string", "example": "debit"},
                "category": {"description": "Category assigned on import", "type": "string", "example": "Food"},
                "month": {"description": "YYYY-MM or \"unknown\"", "type": "string", "example": "2024-05"},
                "importHash": {"description": "SHA256 of the raw statement row", "type": "string"}
            }
        },
        "root.Links": {
            "type": "object",
            "properties": {
                "docs": {"type": "string"},
                "healthz": {"type": "string"},
                "version": {"type": "string"},
                "metrics": {"type": "string"},
                "summary": {"type": "string"},
                "transactions": {"type": "string"},
                "checkGoal": {"type": "string"},
                "charts": {"type": "string"},
                "effects": {"type": "string"},
                "upload": {"type": "string"},
                "dashboard": {"type": "string"}
            }
        },
        "root.Response": {
            "type": "object",
            "properties": {
                "links": {"$ref": "#/definitions/root.Links"}
            }
        },
        "version.Object": {
            "type": "object",
            "properties": {
                "version": {"description": "the running version of the spendlens backend", "type": "string", "example": "1.1.0"}
            }
        },
        "version.Response": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/version.Object"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "",
	Description:      "",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

// Package docs registers the swagger document served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/cards": {
            "post": {
                "description": "Builds the cards of the data view without rendering them.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Cards"],
                "summary": "Build weather cards as JSON",
                "parameters": [
                    {
                        "description": "Host data view",
                        "name": "view",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/models.DataView"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Cards in host order",
                        "schema": {"$ref": "#/definitions/models.RenderResult"}
                    },
                    "400": {
                        "description": "Bad request - malformed data view",
                        "schema": {"$ref": "#/definitions/http.ErrorResponse"}
                    },
                    "422": {
                        "description": "The data view carries errors, no cards built",
                        "schema": {"$ref": "#/definitions/models.RenderResult"}
                    }
                }
            }
        },
        "/render": {
            "get": {
                "description": "Same as POST /render, with the cities given as repeated city=\u003cid\u003e:\u003chex color\u003e parameters.",
                "produces": ["text/html"],
                "tags": ["Cards"],
                "summary": "Render weather cards from query parameters",
                "parameters": [
                    {
                        "type": "array",
                        "items": {"type": "string"},
                        "collectionFormat": "multi",
                        "description": "City id and color, e.g. 2643743:#4f81bd",
                        "name": "city",
                        "in": "query",
                        "required": true
                    },
                    {
                        "enum": ["c", "f"],
                        "type": "string",
                        "description": "Initially active unit",
                        "name": "unit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "HTML container",
                        "schema": {"type": "string"}
                    },
                    "400": {
                        "description": "Bad request - invalid city parameter",
                        "schema": {"$ref": "#/definitions/http.ErrorResponse"}
                    }
                }
            },
            "post": {
                "description": "Builds one weather card per city of the data view (first 20 only) and returns the HTML container with the °C/°F toggle.",
                "consumes": ["application/json"],
                "produces": ["text/html"],
                "tags": ["Cards"],
                "summary": "Render weather cards",
                "parameters": [
                    {
                        "description": "Host data view",
                        "name": "view",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/models.DataView"}
                    },
                    {
                        "enum": ["c", "f"],
                        "type": "string",
                        "description": "Initially active unit",
                        "name": "unit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "HTML container",
                        "schema": {"type": "string"}
                    },
                    "400": {
                        "description": "Bad request - malformed data view",
                        "schema": {"$ref": "#/definitions/http.ErrorResponse"}
                    }
                }
            }
        },
        "/render.png": {
            "post": {
                "description": "Renders the container and captures it as a PNG through headless Chrome.",
                "consumes": ["application/json"],
                "produces": ["image/png"],
                "tags": ["Cards"],
                "summary": "Export weather cards as an image",
                "parameters": [
                    {
                        "description": "Host data view",
                        "name": "view",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/models.DataView"}
                    },
                    {
                        "enum": ["c", "f"],
                        "type": "string",
                        "description": "Initially active unit",
                        "name": "unit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "PNG snapshot",
                        "schema": {"type": "file"}
                    },
                    "400": {
                        "description": "Bad request - malformed data view",
                        "schema": {"$ref": "#/definitions/http.ErrorResponse"}
                    },
                    "500": {
                        "description": "Snapshot failed",
                        "schema": {"$ref": "#/definitions/http.ErrorResponse"}
                    }
                }
            }
        }
    },
    "definitions": {
        "http.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "invalid data view: unexpected end of JSON input"}
            }
        },
        "models.Card": {
            "type": "object",
            "properties": {
                "city_id": {"type": "integer", "example": 2643743},
                "color": {"type": "string", "example": "#4f81bd"},
                "forecast": {"type": "array", "items": {"$ref": "#/definitions/models.ForecastDay"}},
                "humidity": {"type": "string", "example": "Humidity: 81 %"},
                "icon_url": {"type": "string", "example": "https://openweathermap.org/img/wn/10d@4x.png"},
                "location": {"type": "string", "example": "London, GB"},
                "temp_c": {"type": "integer", "example": 18},
                "temp_f": {"type": "integer", "example": 64},
                "time": {"type": "string", "example": "Jul 25, 4:00 PM"},
                "weather": {"type": "string", "example": "light rain. Visibility 10 KM"},
                "wind": {"type": "string", "example": "Wind: ↙ SW 4.12 m/s"}
            }
        },
        "models.DataView": {
            "type": "object",
            "properties": {
                "errors": {"type": "array", "items": {"type": "string"}},
                "rows": {"type": "array", "items": {"$ref": "#/definitions/models.Row"}}
            }
        },
        "models.ForecastDay": {
            "type": "object",
            "properties": {
                "day": {"type": "string", "example": "Sat"},
                "high_c": {"type": "integer", "example": 22},
                "high_f": {"type": "integer", "example": 72},
                "icon_url": {"type": "string", "example": "https://openweathermap.org/img/wn/04d.png"},
                "low_c": {"type": "integer", "example": 14},
                "low_f": {"type": "integer", "example": 57}
            }
        },
        "models.RenderResult": {
            "type": "object",
            "properties": {
                "cards": {"type": "array", "items": {"$ref": "#/definitions/models.Card"}},
                "errors": {"type": "array", "items": {"type": "string"}},
                "notice": {"type": "string", "example": "Only the first 20 of 24 cities are shown"},
                "requested": {"type": "integer", "example": 2}
            }
        },
        "models.Row": {
            "type": "object",
            "properties": {
                "city_id": {"type": "string", "example": "2643743"},
                "color": {"type": "string", "example": "#4f81bd"}
            }
        }
    },
    "tags": [
        {
            "description": "Weather card rendering",
            "name": "Cards"
        }
    ]
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Weather Cards API",
	Description:      "Renders OpenWeatherMap current weather and daily forecast cards for the cities selected in a host visualization.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

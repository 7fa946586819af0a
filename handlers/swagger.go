package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the card service.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>cardforge - Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "cardforge", "version": "v0.1.0" },
  "paths": {
    "/api/generate": {
      "post": {
        "summary": "Generate a character sheet from a prompt",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"userInput":{"type":"string"}},"required":["userInput"]}}}},
        "responses": { "200": { "description": "{ sheet }" }, "400": { "description": "empty prompt" }, "422": { "description": "provider output failed validation" }, "502": { "description": "generation failed" } }
      }
    },
    "/api/share": {
      "post": {
        "summary": "Store a sheet and return its share id",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"sheet":{"type":"object"},"prompt":{"type":"string"}},"required":["sheet"]}}}},
        "responses": { "200": { "description": "{ id }" }, "400": { "description": "missing sheet" }, "422": { "description": "invalid sheet" }, "500": { "description": "storage failure" } }
      }
    },
    "/api/cards/{id}": {
      "get": {
        "summary": "Load a shared card",
        "parameters": [ { "name": "id", "in": "path", "required": true, "schema": { "type": "string" } } ],
        "responses": { "200": { "description": "{ sheet, prompt, createdAt }" }, "404": { "description": "Card not found" }, "500": { "description": "storage failure" } }
      }
    },
    "/api/shuffle": {
      "post": {
        "summary": "Advance a sheet to the next frame and portrait",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"sheet":{"type":"object"}},"required":["sheet"]}}}},
        "responses": { "200": { "description": "{ sheet }" }, "422": { "description": "invalid sheet" } }
      }
    },
    "/api/examples": { "get": { "summary": "Example prompts, default sheet and render size", "responses": { "200": { "description": "examples" } } } },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } },
    "/metrics": { "get": { "summary": "Prometheus metrics", "responses": { "200": { "description": "metrics" } } } }
  }
}`

// Package docs registers the swagger spec served at /swagger/*.
// Regenerate with `swag init` after changing controller annotations.
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
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Login with email and password",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "user and bearer token"},
                    "401": {"description": "invalid email or password"}
                }
            }
        },
        "/auth/me": {
            "get": {
                "tags": ["auth"],
                "summary": "Current authenticated user",
                "responses": {
                    "200": {"description": "user without password"},
                    "401": {"description": "authentication required"}
                }
            }
        },
        "/case-studies": {
            "get": {
                "tags": ["case-studies"],
                "summary": "List case studies",
                "parameters": [
                    {"name": "lang", "in": "query", "type": "string"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/case-studies/featured": {
            "get": {
                "tags": ["case-studies"],
                "summary": "List featured case studies",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/case-studies/{slug}": {
            "get": {
                "tags": ["case-studies"],
                "summary": "Get a case study by slug",
                "parameters": [
                    {"name": "slug", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "not found"}
                }
            }
        },
        "/blog-posts": {
            "get": {
                "tags": ["blog-posts"],
                "summary": "List published blog posts",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/blog-posts/{slug}": {
            "get": {
                "tags": ["blog-posts"],
                "summary": "Get a published blog post by slug",
                "parameters": [
                    {"name": "slug", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "not found"}
                }
            }
        },
        "/contact": {
            "post": {
                "tags": ["contact"],
                "summary": "Submit the contact form",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateContactRequest"}}
                ],
                "responses": {
                    "201": {"description": "created"},
                    "400": {"description": "validation failure"}
                }
            }
        },
        "/theme": {
            "get": {
                "tags": ["theme"],
                "summary": "Read the current theme tokens",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/admin/theme": {
            "put": {
                "tags": ["admin"],
                "summary": "Save new theme tokens (admin only)",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "validation failure"},
                    "403": {"description": "insufficient permissions"}
                }
            }
        },
        "/admin/stats": {
            "get": {
                "tags": ["admin"],
                "summary": "Dashboard counters",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "authentication required"}
                }
            }
        },
        "/health": {
            "get": {
                "tags": ["health"],
                "summary": "Health check",
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "definitions": {
        "dto.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "dto.CreateContactRequest": {
            "type": "object",
            "required": ["name", "email", "message"],
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "message": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:5000",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "EIBS CMS API",
	Description:      "Backend for the EIBS branding agency site and admin console.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

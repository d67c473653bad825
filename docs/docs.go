// Package docs holds the OpenAPI description served under /swagger/.
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
        "/api/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.HealthResponse"}}
                }
            }
        },
        "/api/auth/signup": {
            "post": {
                "description": "Create an account with email and password and receive a session token.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Sign up",
                "parameters": [
                    {"description": "New account", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.SignupRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.AuthResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "409": {"description": "email already registered", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Log in",
                "parameters": [
                    {"description": "Credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.AuthResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "401": {"description": "invalid credentials", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/auth/google-login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Log in with Google",
                "parameters": [
                    {"description": "Google access token", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.GoogleLoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.AuthResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "401": {"description": "token rejected by Google", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/ai/generate_question": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Topic defaults to algebra and difficulty to medium.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Questions"],
                "summary": "Generate a question",
                "parameters": [
                    {"description": "Question parameters", "name": "body", "in": "body", "schema": {"$ref": "#/definitions/handler.GenerateQuestionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.QuestionResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.MessageResponse"}},
                    "500": {"description": "model unavailable", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/progress/save": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Progress"],
                "summary": "Save progress",
                "parameters": [
                    {"description": "Answered question", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.SaveProgressRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.SaveProgressResponse"}},
                    "400": {"description": "question or topic missing", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.MessageResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/progress/dashboard": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Overall stats, per-topic and per-difficulty accuracy, and the ten most recent answers.",
                "produces": ["application/json"],
                "tags": ["Progress"],
                "summary": "Progress dashboard",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.DashboardResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.MessageResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.OverallStats": {
            "type": "object",
            "properties": {
                "total_questions": {"type": "integer"},
                "correct_answers": {"type": "integer"},
                "topics_practiced": {"type": "integer"},
                "overall_accuracy": {"type": "number"}
            }
        },
        "handler.ActivityDTO": {
            "type": "object",
            "properties": {
                "question": {"type": "string"},
                "user_answer": {"type": "string"},
                "is_correct": {"type": "boolean"},
                "topic": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "handler.AuthResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "Login successful"},
                "token": {"type": "string"},
                "user": {"$ref": "#/definitions/handler.UserDTO"}
            }
        },
        "handler.DashboardResponse": {
            "type": "object",
            "properties": {
                "overall_stats": {"$ref": "#/definitions/domain.OverallStats"},
                "topic_performance": {"type": "array", "items": {"$ref": "#/definitions/handler.TopicStatsDTO"}},
                "recent_activity": {"type": "array", "items": {"$ref": "#/definitions/handler.ActivityDTO"}},
                "difficulty_performance": {"type": "array", "items": {"$ref": "#/definitions/handler.DifficultyStatsDTO"}}
            }
        },
        "handler.DifficultyStatsDTO": {
            "type": "object",
            "properties": {
                "difficulty": {"type": "string"},
                "total_questions": {"type": "integer"},
                "correct_answers": {"type": "integer"},
                "accuracy": {"type": "number"}
            }
        },
        "handler.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        },
        "handler.GenerateQuestionRequest": {
            "type": "object",
            "properties": {
                "topic": {"type": "string", "example": "calculus"},
                "difficulty": {"type": "string", "example": "hard"},
                "request": {"type": "string", "example": "focus on integration by parts"}
            }
        },
        "handler.GoogleLoginRequest": {
            "type": "object",
            "properties": {
                "token": {"type": "string"}
            }
        },
        "handler.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "healthy"},
                "message": {"type": "string"}
            }
        },
        "handler.LoginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string", "example": "student@example.com"},
                "password": {"type": "string", "example": "password123"}
            }
        },
        "handler.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "Token is missing!"}
            }
        },
        "handler.QuestionResponse": {
            "type": "object",
            "properties": {
                "question": {"type": "string"},
                "topic": {"type": "string", "example": "calculus"},
                "difficulty": {"type": "string", "example": "hard"}
            }
        },
        "handler.SaveProgressRequest": {
            "type": "object",
            "properties": {
                "question": {"type": "string", "example": "What is 2+2?"},
                "user_answer": {"type": "string", "example": "4"},
                "correct_answer": {"type": "string", "example": "4"},
                "is_correct": {"type": "boolean", "example": true},
                "topic": {"type": "string", "example": "arithmetic"},
                "difficulty": {"type": "string", "example": "easy"}
            }
        },
        "handler.SaveProgressResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "Progress saved successfully"},
                "progress_id": {"type": "integer", "example": 42}
            }
        },
        "handler.SignupRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string", "example": "student@example.com"},
                "password": {"type": "string", "example": "password123"},
                "name": {"type": "string", "example": "Ada Student"}
            }
        },
        "handler.TopicStatsDTO": {
            "type": "object",
            "properties": {
                "topic": {"type": "string"},
                "total_questions": {"type": "integer"},
                "correct_answers": {"type": "integer"},
                "accuracy": {"type": "number"}
            }
        },
        "handler.UserDTO": {
            "type": "object",
            "properties": {
                "id": {"type": "integer", "example": 1},
                "email": {"type": "string", "example": "student@example.com"},
                "name": {"type": "string", "example": "Ada Student"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Session token as \"Bearer <token>\".",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:5000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Math Practice API",
	Description:      "Practice-question generation, progress tracking, and dashboards for math students.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "description": "TaskDesk API Documentation",
        "title": "TaskDesk API",
        "version": "1.0"
    },
    "host": "localhost:8080",
    "basePath": "/",
    "schemes": ["http"],
    "paths": {
        "/health": {
            "get": {
                "tags": ["Health"],
                "summary": "Health Check",
                "description": "Check if server and database are healthy",
                "responses": {
                    "200": {
                        "description": "Server is healthy"
                    },
                    "503": {
                        "description": "A dependency is unavailable"
                    }
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "User Login",
                "description": "Login with email and password, returns a Bearer token",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "body",
                        "name": "credentials",
                        "description": "Login credentials",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "email": {
                                    "type": "string",
                                    "example": "boss@taskdesk.dev"
                                },
                                "password": {
                                    "type": "string",
                                    "example": "changeme123"
                                }
                            }
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Login successful"
                    },
                    "401": {
                        "description": "Invalid credentials"
                    }
                }
            }
        },
        "/tasks": {
            "get": {
                "tags": ["Tasks"],
                "summary": "List tasks grouped by due date",
                "description": "Returns the tasks visible to the requester, grouped under DD/MM/YYYY labels or 'No Due Date'",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {
                        "description": "Grouped task listing"
                    },
                    "401": {
                        "description": "Unauthorized"
                    }
                }
            },
            "post": {
                "tags": ["Tasks"],
                "summary": "Create a task",
                "description": "Creates a task owned by the requester, appended to the end of their sequence",
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"in": "formData", "name": "title", "type": "string", "required": true},
                    {"in": "formData", "name": "description", "type": "string"},
                    {"in": "formData", "name": "dueDate", "type": "string", "description": "YYYY-MM-DD"}
                ],
                "responses": {
                    "200": {
                        "description": "Task created"
                    },
                    "400": {
                        "description": "Validation failed"
                    }
                }
            }
        },
        "/tasks/{id}/toggle": {
            "post": {
                "tags": ["Tasks"],
                "summary": "Set a task's completion state",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"in": "path", "name": "id", "type": "string", "required": true},
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "completed": {"type": "boolean"}
                            }
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Completion updated"
                    },
                    "400": {
                        "description": "Task cannot be updated"
                    }
                }
            }
        },
        "/tasks/{id}/reorder": {
            "post": {
                "tags": ["Tasks"],
                "summary": "Set a task's manual order",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"in": "path", "name": "id", "type": "string", "required": true},
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "order": {"type": "integer"}
                            }
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Order updated"
                    },
                    "400": {
                        "description": "Task cannot be reordered"
                    }
                }
            }
        },
        "/users": {
            "get": {
                "tags": ["Users"],
                "summary": "List accounts (boss only)",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {
                        "description": "Account listing"
                    },
                    "403": {
                        "description": "Insufficient permissions"
                    }
                }
            },
            "post": {
                "tags": ["Users"],
                "summary": "Create an account (boss only)",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {
                        "in": "body",
                        "name": "user",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "name": {"type": "string"},
                                "email": {"type": "string"},
                                "password": {"type": "string"},
                                "role": {"type": "string", "enum": ["boss", "clerk"]}
                            }
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Account created"
                    },
                    "403": {
                        "description": "Insufficient permissions"
                    }
                }
            }
        },
        "/users/{id}/role": {
            "put": {
                "tags": ["Users"],
                "summary": "Change an account's role (boss only)",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"in": "path", "name": "id", "type": "string", "required": true},
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "role": {"type": "string", "enum": ["boss", "clerk"]}
                            }
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Role updated"
                    },
                    "400": {
                        "description": "Invalid role or own-role change"
                    },
                    "403": {
                        "description": "Insufficient permissions"
                    }
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header",
            "description": "Type 'Bearer' followed by a space and JWT token"
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "TaskDesk API",
	Description:      "TaskDesk API Documentation",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

// Package docs registra a especificação OpenAPI servida em /swagger.
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
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Autentica um usuário",
                "parameters": [
                    {
                        "description": "Credenciais",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.LoginRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.LoginResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/auth/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["text/plain"],
                "tags": ["auth"],
                "summary": "Cadastra um usuário",
                "parameters": [
                    {
                        "description": "Dados do usuário",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.RegisterRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "Usuário registrado com sucesso.", "schema": {"type": "string"}},
                    "400": {"description": "Email já cadastrado.", "schema": {"type": "string"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/patient": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["patient"],
                "summary": "Lista pacientes",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.PatientResponse"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["patient"],
                "summary": "Cria um paciente",
                "parameters": [
                    {
                        "description": "Dados",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.CreatePatientRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.PatientResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/relation_mp": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["relation_mp"],
                "summary": "Lista prescrições",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.RelationMPResponse"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["relation_mp"],
                "summary": "Cria uma prescrição",
                "parameters": [
                    {
                        "description": "Dados",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.CreateRelationMPRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.RelationMPResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "type": {"type": "string"},
                "title": {"type": "string"},
                "status": {"type": "integer"},
                "detail": {"type": "string"},
                "instance": {"type": "string"},
                "errors": {"type": "array", "items": {"$ref": "#/definitions/dto.ValidationError"}}
            }
        },
        "dto.ValidationError": {
            "type": "object",
            "properties": {
                "field": {"type": "string"},
                "message": {"type": "string"},
                "tag": {"type": "string"},
                "value": {"type": "string"}
            }
        },
        "dto.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "dto.LoginResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"}
            }
        },
        "dto.RegisterRequest": {
            "type": "object",
            "required": ["email", "name", "password", "roleId"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string", "minLength": 6, "maxLength": 72},
                "name": {"type": "string", "maxLength": 100},
                "roleId": {"type": "integer"},
                "creatorUserId": {"type": "integer"}
            }
        },
        "dto.CreatePatientRequest": {
            "type": "object",
            "required": ["userId"],
            "properties": {
                "userId": {"type": "integer"},
                "birthday": {"type": "string", "example": "1990-05-04"},
                "patientCondition": {"type": "string", "maxLength": 255}
            }
        },
        "dto.PatientResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "birthday": {"type": "string"},
                "patientCondition": {"type": "string"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"},
                "createdBy": {"type": "integer"},
                "updatedBy": {"type": "integer"},
                "deleted": {"type": "boolean"}
            }
        },
        "dto.CreateRelationMPRequest": {
            "type": "object",
            "required": ["dosage", "endDate", "frequencyUnit", "frequencyValue", "medication", "patient", "startDate"],
            "properties": {
                "medication": {"type": "integer"},
                "patient": {"type": "integer"},
                "dosage": {"type": "integer"},
                "frequencyValue": {"type": "integer"},
                "frequencyUnit": {"type": "string", "enum": ["HOURS", "DAYS", "WEEKS"]},
                "startDate": {"type": "string", "example": "2024-01-01"},
                "endDate": {"type": "string", "example": "2024-01-10"},
                "userId": {"type": "integer"}
            }
        },
        "dto.RelationMPResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "medication": {"type": "integer"},
                "patient": {"type": "integer"},
                "dosage": {"type": "integer"},
                "frequencyValue": {"type": "integer"},
                "frequencyUnit": {"type": "string"},
                "startDate": {"type": "string"},
                "endDate": {"type": "string"},
                "totalDosage": {"type": "integer"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"},
                "createdBy": {"type": "integer"},
                "updatedBy": {"type": "integer"},
                "deleted": {"type": "boolean"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "pi-back API",
	Description:      "API de acompanhamento de pacientes, cuidadores e prescrições.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

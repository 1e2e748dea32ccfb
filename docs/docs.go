// Package docs registra el documento Swagger que sirve /swagger/*.
// Está escrito a mano con el formato de swag: al cambiar un handler hay que
// actualizar también su anotación godoc y este template.
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
        "/health": {
            "get": {
                "description": "Liveness. Si el backend soporta ping, también lo verifica.",
                "produces": ["text/plain"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "ok", "schema": {"type": "string"}},
                    "503": {"description": "storage unavailable", "schema": {"type": "string"}}
                }
            }
        },
        "/pets": {
            "get": {
                "description": "Devuelve todas las mascotas en orden de alta.",
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Listar mascotas",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/pets.petResponse"}}},
                    "500": {"description": "internal error", "schema": {"type": "string"}},
                    "503": {"description": "storage unavailable", "schema": {"type": "string"}}
                }
            },
            "post": {
                "description": "Registra una mascota nueva. name y type son obligatorios; age en años, no negativa.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Crear mascota",
                "parameters": [
                    {"description": "Datos de la mascota", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/pets.createPetRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/pets.petResponse"}},
                    "400": {"description": "invalid json / invalid input", "schema": {"type": "string"}},
                    "500": {"description": "internal error", "schema": {"type": "string"}},
                    "503": {"description": "storage unavailable", "schema": {"type": "string"}}
                }
            }
        },
        "/pets/types": {
            "get": {
                "description": "Opciones que ofrece el formulario. No es un conjunto cerrado.",
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Tipos de mascota",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "string"}}}
                }
            }
        },
        "/pets/{petID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Obtener mascota",
                "parameters": [
                    {"type": "string", "description": "ID de la mascota", "name": "petID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/pets.petResponse"}},
                    "404": {"description": "pet not found", "schema": {"type": "string"}}
                }
            },
            "delete": {
                "description": "Borra la mascota. Según PET_DELETE_CASCADE también borra sus tareas.",
                "tags": ["pets"],
                "summary": "Borrar mascota",
                "parameters": [
                    {"type": "string", "description": "ID de la mascota", "name": "petID", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "pet not found", "schema": {"type": "string"}},
                    "500": {"description": "internal error", "schema": {"type": "string"}}
                }
            }
        },
        "/tasks": {
            "get": {
                "description": "Devuelve todas las tareas en orden de alta, con el nombre de la mascota (\"Unknown\" si ya no existe).",
                "produces": ["application/json"],
                "tags": ["tasks"],
                "summary": "Listar tareas",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/caretasks.taskResponse"}}},
                    "500": {"description": "internal error", "schema": {"type": "string"}},
                    "503": {"description": "storage unavailable", "schema": {"type": "string"}}
                }
            },
            "post": {
                "description": "Registra una tarea (feeding, walk, medication) para una mascota existente. La fecha es la de creación.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["tasks"],
                "summary": "Registrar cuidado",
                "parameters": [
                    {"description": "Datos de la tarea", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/caretasks.createTaskRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/caretasks.taskResponse"}},
                    "400": {"description": "invalid json / invalid input", "schema": {"type": "string"}},
                    "404": {"description": "pet not found", "schema": {"type": "string"}},
                    "503": {"description": "storage unavailable", "schema": {"type": "string"}}
                }
            }
        },
        "/tasks/care-types": {
            "get": {
                "description": "Tabla estática label/icon por tipo de cuidado.",
                "produces": ["application/json"],
                "tags": ["tasks"],
                "summary": "Tipos de cuidado",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/caretasks.CareTypeInfo"}}}
                }
            }
        },
        "/tasks/today": {
            "get": {
                "description": "Tareas creadas hoy según la zona horaria local del servidor.",
                "produces": ["application/json"],
                "tags": ["tasks"],
                "summary": "Tareas de hoy",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/caretasks.taskResponse"}}},
                    "500": {"description": "internal error", "schema": {"type": "string"}},
                    "503": {"description": "storage unavailable", "schema": {"type": "string"}}
                }
            }
        },
        "/tasks/{taskID}": {
            "delete": {
                "tags": ["tasks"],
                "summary": "Borrar tarea",
                "parameters": [
                    {"type": "string", "description": "ID de la tarea", "name": "taskID", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "task not found", "schema": {"type": "string"}}
                }
            }
        },
        "/tasks/{taskID}/toggle": {
            "post": {
                "description": "Invierte isCompleted y persiste la colección completa.",
                "produces": ["application/json"],
                "tags": ["tasks"],
                "summary": "Marcar/desmarcar tarea",
                "parameters": [
                    {"type": "string", "description": "ID de la tarea", "name": "taskID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/caretasks.taskResponse"}},
                    "404": {"description": "task not found", "schema": {"type": "string"}},
                    "503": {"description": "storage unavailable", "schema": {"type": "string"}}
                }
            }
        }
    },
    "definitions": {
        "caretasks.CareType": {
            "type": "string",
            "enum": ["feeding", "walk", "medication"],
            "x-enum-varnames": ["CareTypeFeeding", "CareTypeWalk", "CareTypeMedication"]
        },
        "caretasks.CareTypeInfo": {
            "type": "object",
            "properties": {
                "icon": {"type": "string"},
                "label": {"type": "string"},
                "type": {"$ref": "#/definitions/caretasks.CareType"}
            }
        },
        "caretasks.createTaskRequest": {
            "type": "object",
            "properties": {
                "careType": {"enum": ["feeding", "walk", "medication"], "allOf": [{"$ref": "#/definitions/caretasks.CareType"}]},
                "note": {"type": "string"},
                "petId": {"type": "string"}
            }
        },
        "caretasks.taskResponse": {
            "type": "object",
            "properties": {
                "careType": {"$ref": "#/definitions/caretasks.CareType"},
                "careTypeIcon": {"type": "string"},
                "careTypeLabel": {"type": "string"},
                "date": {"type": "string"},
                "id": {"type": "string"},
                "isCompleted": {"type": "boolean"},
                "note": {"type": "string"},
                "petId": {"type": "string"},
                "petName": {"type": "string"}
            }
        },
        "pets.createPetRequest": {
            "type": "object",
            "properties": {
                "age": {"type": "integer"},
                "name": {"type": "string"},
                "type": {"type": "string", "example": "Dog"}
            }
        },
        "pets.petResponse": {
            "type": "object",
            "properties": {
                "age": {"type": "integer"},
                "id": {"type": "string"},
                "name": {"type": "string"},
                "type": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "PetPlus API",
	Description:      "Mascotas y cuidados diarios (feeding, walk, medication).",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

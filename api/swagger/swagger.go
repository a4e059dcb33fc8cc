package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {"title": "HRMS SaaS API", "description": "Multi-tenant HR backend with row level security", "version": "1.0.0"},
    "basePath": "/",
    "schemes": ["http", "https"],
    "securityDefinitions": {"BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}},
    "paths": {
        "/health": {
            "get": {"tags": ["Health"], "summary": "Liveness probe", "responses": {"200": {"description": "OK"}}}
        },
        "/ready": {
            "get": {"tags": ["Health"], "summary": "Readiness probe for Postgres and Redis", "responses": {"200": {"description": "Ready"}, "503": {"description": "A dependency is down"}}}
        },
        "/metrics": {
            "get": {"tags": ["Health"], "summary": "Prometheus metrics", "produces": ["text/plain"], "responses": {"200": {"description": "OK"}}}
        },
        "/api/auth/login": {
            "post": {"tags": ["Auth"], "summary": "Authenticate with email and password", "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "429": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/api/auth/refresh": {
            "post": {"tags": ["Auth"], "summary": "Rotate a refresh token", "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RefreshTokenRequest"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/api/auth/logout": {
            "post": {"tags": ["Auth"], "summary": "Revoke the session owning a refresh token", "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RefreshTokenRequest"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/api/auth/logout-all": {
            "post": {"tags": ["Auth"], "summary": "Revoke every session of the caller", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/api/auth/sessions": {
            "get": {"tags": ["Auth"], "summary": "List active sessions of the caller", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/api/auth/forgot-password": {
            "post": {"tags": ["Auth"], "summary": "Request a password reset email", "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ForgotPasswordRequest"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "429": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/api/auth/reset-password": {
            "post": {"tags": ["Auth"], "summary": "Complete a password reset", "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ResetPasswordRequest"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "429": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/api/auth/change-password": {
            "post": {"tags": ["Auth"], "summary": "Change the caller password", "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ChangePasswordRequest"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/api/auth/me": {
            "get": {"tags": ["Auth"], "summary": "Describe the authenticated user", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/api/tenants/register": {
            "post": {"tags": ["Tenants"], "summary": "Register a tenant with its first admin", "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RegisterTenantRequest"}}], "responses": {"201": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "409": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "429": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/api/public/plans": {
            "get": {"tags": ["Subscriptions"], "summary": "List active plans", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/api/users": {
            "get": {"tags": ["Users"], "summary": "List users of the tenant", "parameters": [{"name": "role", "in": "query", "type": "string"}, {"name": "departmentId", "in": "query", "type": "string"}, {"name": "search", "in": "query", "type": "string"}, {"name": "limit", "in": "query", "type": "integer"}, {"name": "offset", "in": "query", "type": "integer"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]},
            "post": {"tags": ["Users"], "summary": "Create a user with an employee profile", "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateUserRequest"}}], "responses": {"201": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "409": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/api/users/{id}": {
            "get": {"tags": ["Users"], "summary": "Get a user", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]},
            "put": {"tags": ["Users"], "summary": "Update account fields", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}, {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateUserRequest"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "409": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/api/users/{id}/employee": {
            "put": {"tags": ["Users"], "summary": "Update the employee profile", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}, {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateEmployeeRequest"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/api/users/{id}/role": {
            "put": {"tags": ["Users"], "summary": "Change the role", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}, {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ChangeRoleRequest"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/api/users/{id}/manager": {
            "put": {"tags": ["Users"], "summary": "Assign a reporting manager", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}, {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ChangeManagerRequest"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/api/users/{id}/department": {
            "put": {"tags": ["Users"], "summary": "Assign a department", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}, {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AssignDepartmentRequest"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/api/users/{id}/designation": {
            "put": {"tags": ["Users"], "summary": "Assign a designation", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}, {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AssignDesignationRequest"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/api/users/{id}/status": {
            "put": {"tags": ["Users"], "summary": "Activate or deactivate", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}, {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateStatusRequest"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/api/users/{id}/reset-password": {
            "post": {"tags": ["Users"], "summary": "Issue a temporary password", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/api/users/me/profile": {
            "get": {"tags": ["Users"], "summary": "Get the caller profile", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]},
            "put": {"tags": ["Users"], "summary": "Update the caller profile", "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateProfileRequest"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/api/users/me/reports": {
            "get": {"tags": ["Users"], "summary": "List direct reports", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/api/departments": {
            "get": {"tags": ["Departments"], "summary": "List departments", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]},
            "post": {"tags": ["Departments"], "summary": "Create", "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateOrgUnitRequest"}}], "responses": {"201": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "409": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/api/departments/{id}": {
            "get": {"tags": ["Departments"], "summary": "Get", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]},
            "patch": {"tags": ["Departments"], "summary": "Update", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}, {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateOrgUnitRequest"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "409": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]},
            "delete": {"tags": ["Departments"], "summary": "Delete when unreferenced", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "409": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/api/designations": {
            "get": {"tags": ["Designations"], "summary": "List designations", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]},
            "post": {"tags": ["Designations"], "summary": "Create", "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateOrgUnitRequest"}}], "responses": {"201": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "409": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/api/designations/{id}": {
            "get": {"tags": ["Designations"], "summary": "Get", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]},
            "patch": {"tags": ["Designations"], "summary": "Update", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}, {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateOrgUnitRequest"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "409": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]},
            "delete": {"tags": ["Designations"], "summary": "Delete when unreferenced", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "409": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/api/subscriptions/plans": {
            "get": {"tags": ["Subscriptions"], "summary": "List plans", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]},
            "post": {"tags": ["Subscriptions"], "summary": "Create a plan", "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PlanRequest"}}], "responses": {"201": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/api/subscriptions/plans/{planId}": {
            "put": {"tags": ["Subscriptions"], "summary": "Update a plan", "parameters": [{"name": "planId", "in": "path", "required": true, "type": "string"}, {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PlanRequest"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]},
            "delete": {"tags": ["Subscriptions"], "summary": "Delete a plan", "parameters": [{"name": "planId", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "409": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/api/subscriptions/assign/{tenantId}/{planId}": {
            "post": {"tags": ["Subscriptions"], "summary": "Assign a plan to a tenant", "parameters": [{"name": "tenantId", "in": "path", "required": true, "type": "string"}, {"name": "planId", "in": "path", "required": true, "type": "string"}], "responses": {"201": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/api/subscriptions/current": {
            "get": {"tags": ["Subscriptions"], "summary": "Current subscription of the tenant", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/api/subscriptions/status": {
            "get": {"tags": ["Subscriptions"], "summary": "Subscription status with days remaining", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/api/subscriptions/upgrade/{planId}": {
            "post": {"tags": ["Subscriptions"], "summary": "Upgrade to a more expensive plan", "parameters": [{"name": "planId", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/api/subscriptions/downgrade/{planId}": {
            "post": {"tags": ["Subscriptions"], "summary": "Downgrade to a cheaper plan", "parameters": [{"name": "planId", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/api/subscriptions/cancel": {
            "post": {"tags": ["Subscriptions"], "summary": "Cancel the current subscription", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/api/admin/summary": {
            "get": {"tags": ["Admin"], "summary": "Headcount summary", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/api/admin/last-logins": {
            "get": {"tags": ["Admin"], "summary": "Latest logins", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/api/admin/recent-employees": {
            "get": {"tags": ["Admin"], "summary": "Newest employees", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/api/admin/tenant/profile": {
            "get": {"tags": ["Admin"], "summary": "Tenant profile", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/api/admin/roles": {
            "get": {"tags": ["Admin"], "summary": "Users per role", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/api/admin/department-counts": {
            "get": {"tags": ["Admin"], "summary": "Employees per department", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/api/admin/designation-counts": {
            "get": {"tags": ["Admin"], "summary": "Employees per designation", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/api/admin/manager-reports": {
            "get": {"tags": ["Admin"], "summary": "Reports per manager", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/api/admin/employee-status": {
            "get": {"tags": ["Admin"], "summary": "Active versus inactive employees", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/api/admin/audit-logs": {
            "get": {"tags": ["Admin"], "summary": "Recent audit entries", "parameters": [{"name": "limit", "in": "query", "type": "integer"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/api/admin/employees/export": {
            "get": {"tags": ["Admin"], "summary": "Export the employee directory", "parameters": [{"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf", "xlsx"]}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}], "produces": ["text/csv", "application/pdf", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"]}
        },
        "/api/super-admin/tenants": {
            "get": {"tags": ["Super Admin"], "summary": "List tenants", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/api/super-admin/tenants/export": {
            "get": {"tags": ["Super Admin"], "summary": "Export tenants", "parameters": [{"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf", "xlsx"]}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}], "produces": ["text/csv", "application/pdf", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"]}
        },
        "/api/super-admin/tenants/{id}": {
            "get": {"tags": ["Super Admin"], "summary": "Get a tenant", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/api/super-admin/tenants/{id}/activate": {
            "patch": {"tags": ["Super Admin"], "summary": "Activate a tenant", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/api/super-admin/tenants/{id}/deactivate": {
            "patch": {"tags": ["Super Admin"], "summary": "Deactivate a tenant", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/api/super-admin/tenants/{id}/users": {
            "get": {"tags": ["Super Admin"], "summary": "List tenant users", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/api/super-admin/tenants/{id}/employees": {
            "get": {"tags": ["Super Admin"], "summary": "Count tenant employees", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/api/super-admin/stats": {
            "get": {"tags": ["Super Admin"], "summary": "Platform statistics", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        },
        "/api/super-admin/logins": {
            "get": {"tags": ["Super Admin"], "summary": "Recent logins across tenants", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "403": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}, "security": [{"BearerAuth": []}]}
        }
    },
    "definitions": {
        "LoginRequest": {"type": "object", "properties": {"email": {"type": "string"}, "password": {"type": "string"}, "remember_me": {"type": "boolean"}, "tenant_domain": {"type": "string"}}, "required": ["email", "password"]},
        "RefreshTokenRequest": {"type": "object", "properties": {"refresh_token": {"type": "string"}}, "required": ["refresh_token"]},
        "ForgotPasswordRequest": {"type": "object", "properties": {"email": {"type": "string"}}, "required": ["email"]},
        "ResetPasswordRequest": {"type": "object", "properties": {"token": {"type": "string"}, "new_password": {"type": "string"}}, "required": ["token", "new_password"]},
        "ChangePasswordRequest": {"type": "object", "properties": {"current_password": {"type": "string"}, "new_password": {"type": "string"}}, "required": ["current_password", "new_password"]},
        "RegisterTenantRequest": {"type": "object", "properties": {"name": {"type": "string"}, "email": {"type": "string"}, "domain": {"type": "string"}, "phone": {"type": "string"}, "address": {"type": "string"}, "city": {"type": "string"}, "state": {"type": "string"}, "country": {"type": "string"}, "zip_code": {"type": "string"}}, "required": ["name", "email"]},
        "CreateUserRequest": {"type": "object", "properties": {"email": {"type": "string"}, "role": {"type": "string", "enum": ["ADMIN", "HR", "MANAGER", "EMPLOYEE"]}, "first_name": {"type": "string"}, "last_name": {"type": "string"}, "phone": {"type": "string"}, "department_id": {"type": "string"}, "designation_id": {"type": "string"}, "reports_to": {"type": "string"}}, "required": ["email", "role", "first_name"]},
        "UpdateUserRequest": {"type": "object", "properties": {"email": {"type": "string"}, "is_active": {"type": "boolean"}}},
        "UpdateEmployeeRequest": {"type": "object", "properties": {"first_name": {"type": "string"}, "last_name": {"type": "string"}, "phone": {"type": "string"}, "department_id": {"type": "string"}, "designation_id": {"type": "string"}, "reports_to": {"type": "string"}}},
        "UpdateProfileRequest": {"type": "object", "properties": {"first_name": {"type": "string"}, "last_name": {"type": "string"}, "phone": {"type": "string"}}},
        "ChangeRoleRequest": {"type": "object", "properties": {"role": {"type": "string", "enum": ["ADMIN", "HR", "MANAGER", "EMPLOYEE"]}}, "required": ["role"]},
        "ChangeManagerRequest": {"type": "object", "properties": {"manager_employee_id": {"type": "string"}}, "required": ["manager_employee_id"]},
        "AssignDepartmentRequest": {"type": "object", "properties": {"department_id": {"type": "string"}}, "required": ["department_id"]},
        "AssignDesignationRequest": {"type": "object", "properties": {"designation_id": {"type": "string"}}, "required": ["designation_id"]},
        "UpdateStatusRequest": {"type": "object", "properties": {"is_active": {"type": "boolean"}}, "required": ["is_active"]},
        "CreateOrgUnitRequest": {"type": "object", "properties": {"name": {"type": "string"}, "description": {"type": "string"}}, "required": ["name"]},
        "UpdateOrgUnitRequest": {"type": "object", "properties": {"name": {"type": "string"}, "description": {"type": "string"}, "is_active": {"type": "boolean"}}},
        "PlanRequest": {"type": "object", "properties": {"name": {"type": "string"}, "description": {"type": "string"}, "price_per_month": {"type": "number"}, "price_per_employee": {"type": "number"}, "max_employees": {"type": "integer"}, "features": {"type": "object"}, "plan_type": {"type": "string"}, "billing_cycle_months": {"type": "integer"}, "currency": {"type": "string"}, "trial_duration_days": {"type": "integer"}, "is_trial": {"type": "boolean"}}, "required": ["name"]},
        "Pagination": {"type": "object", "properties": {"limit": {"type": "integer"}, "offset": {"type": "integer"}, "total_count": {"type": "integer"}}},
        "APIError": {"type": "object", "properties": {"code": {"type": "string"}, "message": {"type": "string"}, "status": {"type": "integer"}, "details": {"type": "object"}}},
        "ResponseEnvelope": {"type": "object", "properties": {"status": {"type": "string"}, "message": {"type": "string"}, "data": {"type": "object"}, "error": {"$ref": "#/definitions/APIError"}, "pagination": {"$ref": "#/definitions/Pagination"}, "meta": {"type": "object"}}}
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}

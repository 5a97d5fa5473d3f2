package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "LMS Portal API",
        "description": "Learning management portal: directory, enrolment, attendance and grades",
        "version": "1.0.0"
    },
    "basePath": "/api",
    "schemes": [
        "http"
    ],
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "tags": [
        {"name": "Auth", "description": "Login, token refresh and profile lookup"},
        {"name": "People", "description": "Person directory"},
        {"name": "Students", "description": "Student directory"},
        {"name": "Instructors", "description": "Instructor directory"},
        {"name": "Courses", "description": "Course catalogue"},
        {"name": "Terms", "description": "Academic terms"},
        {"name": "Class Offerings", "description": "Course offerings per term"},
        {"name": "Teaching Assignments", "description": "Instructor to offering roster"},
        {"name": "Class Sessions", "description": "Scheduled sessions"},
        {"name": "Enrolments", "description": "Student enrolment in offerings"},
        {"name": "Attendance", "description": "Per-session attendance records"},
        {"name": "Assessment Types", "description": "Weighted assessment components"},
        {"name": "Grades", "description": "Grade entry, summaries and exports"},
        {"name": "Legacy Records", "description": "Combined grades and attendance view"}
    ],
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Authenticate and issue token pair",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/auth/refresh": {
            "post": {
                "tags": ["Auth"],
                "summary": "Rotate a refresh token",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RefreshRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Expired or revoked token"}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "tags": ["Auth"],
                "summary": "Revoke the caller's refresh tokens",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/auth/student/{student_id}": {
            "get": {
                "tags": ["Auth"],
                "summary": "Public student profile lookup",
                "parameters": [
                    {"name": "student_id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/auth/instructor/{instructor_id}": {
            "get": {
                "tags": ["Auth"],
                "summary": "Public instructor profile lookup",
                "parameters": [
                    {"name": "instructor_id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/people": {
            "get": {
                "tags": ["People"],
                "summary": "List people",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "post": {
                "tags": ["People"],
                "summary": "Create person",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreatePersonRequest"}}
                ],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/people/{id}": {
            "get": {
                "tags": ["People"],
                "summary": "Get person",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "put": {
                "tags": ["People"],
                "summary": "Update person",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreatePersonRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "delete": {
                "tags": ["People"],
                "summary": "Delete person",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {
                    "204": {"description": "No Content"},
                    "409": {"description": "Referenced by other records"}
                }
            }
        },
        "/students": {
            "get": {
                "tags": ["Students"],
                "summary": "List students",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "post": {
                "tags": ["Students"],
                "summary": "Create student with person record",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateStudentRequest"}}
                ],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/students/{student_id}": {
            "get": {
                "tags": ["Students"],
                "summary": "Get student",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "student_id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "put": {
                "tags": ["Students"],
                "summary": "Update student",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "student_id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateStudentRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "delete": {
                "tags": ["Students"],
                "summary": "Delete student",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "student_id", "in": "path", "required": true, "type": "string"}],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/instructors": {
            "get": {
                "tags": ["Instructors"],
                "summary": "List instructors",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "post": {
                "tags": ["Instructors"],
                "summary": "Create instructor with person record",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateInstructorRequest"}}
                ],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/instructors/{instructor_id}": {
            "get": {
                "tags": ["Instructors"],
                "summary": "Get instructor",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "instructor_id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "put": {
                "tags": ["Instructors"],
                "summary": "Update instructor",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "instructor_id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateInstructorRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "delete": {
                "tags": ["Instructors"],
                "summary": "Delete instructor",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "instructor_id", "in": "path", "required": true, "type": "string"}],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/courses": {
            "get": {
                "tags": ["Courses"],
                "summary": "List courses",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "post": {
                "tags": ["Courses"],
                "summary": "Create course",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateCourseRequest"}}
                ],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/courses/{course_code}": {
            "get": {
                "tags": ["Courses"],
                "summary": "Get course",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "course_code", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "put": {
                "tags": ["Courses"],
                "summary": "Update course",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "course_code", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateCourseRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "delete": {
                "tags": ["Courses"],
                "summary": "Delete course",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "course_code", "in": "path", "required": true, "type": "string"}],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/terms": {
            "get": {
                "tags": ["Terms"],
                "summary": "List terms",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "post": {
                "tags": ["Terms"],
                "summary": "Create term",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateTermRequest"}}
                ],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/terms/{id}": {
            "get": {
                "tags": ["Terms"],
                "summary": "Get term",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "put": {
                "tags": ["Terms"],
                "summary": "Update term",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateTermRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "delete": {
                "tags": ["Terms"],
                "summary": "Delete term",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/class-offerings": {
            "get": {
                "tags": ["Class Offerings"],
                "summary": "List class offerings",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "post": {
                "tags": ["Class Offerings"],
                "summary": "Create class offering",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateOfferingRequest"}}
                ],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/class-offerings/{id}": {
            "get": {
                "tags": ["Class Offerings"],
                "summary": "Get class offering",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "put": {
                "tags": ["Class Offerings"],
                "summary": "Update class offering",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateOfferingRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "delete": {
                "tags": ["Class Offerings"],
                "summary": "Delete class offering",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/teaching-assignments": {
            "get": {
                "tags": ["Teaching Assignments"],
                "summary": "List teaching assignments",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "post": {
                "tags": ["Teaching Assignments"],
                "summary": "Create teaching assignment",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateTeachingAssignmentRequest"}}
                ],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/teaching-assignments/{id}": {
            "get": {
                "tags": ["Teaching Assignments"],
                "summary": "Get teaching assignment",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "delete": {
                "tags": ["Teaching Assignments"],
                "summary": "Delete teaching assignment",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/class-sessions": {
            "get": {
                "tags": ["Class Sessions"],
                "summary": "List class sessions",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "post": {
                "tags": ["Class Sessions"],
                "summary": "Create session and provision attendance placeholders",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateSessionRequest"}}
                ],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/class-sessions/{id}": {
            "get": {
                "tags": ["Class Sessions"],
                "summary": "Get class session",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "put": {
                "tags": ["Class Sessions"],
                "summary": "Update class session",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateSessionRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "delete": {
                "tags": ["Class Sessions"],
                "summary": "Delete class session",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/class-sessions/by-student/{student_id}/{class_offering_id}": {
            "get": {
                "tags": ["Class Sessions"],
                "summary": "Sessions for a student's offering with attendance",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "student_id", "in": "path", "required": true, "type": "string"},
                    {"name": "class_offering_id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Student not enrolled"}
                }
            }
        },
        "/enrolments": {
            "get": {
                "tags": ["Enrolments"],
                "summary": "List enrolments",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "post": {
                "tags": ["Enrolments"],
                "summary": "Enrol a student in an offering",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateEnrolmentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Already enrolled"}
                }
            }
        },
        "/enrolments/{id}": {
            "get": {
                "tags": ["Enrolments"],
                "summary": "Get enrolment",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "put": {
                "tags": ["Enrolments"],
                "summary": "Update enrolment status",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateEnrolmentStatusRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "delete": {
                "tags": ["Enrolments"],
                "summary": "Delete enrolment",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/attendance": {
            "get": {
                "tags": ["Attendance"],
                "summary": "List attendance records",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "session_id", "in": "query", "type": "integer"},
                    {"name": "enrolment_id", "in": "query", "type": "integer"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "post": {
                "tags": ["Attendance"],
                "summary": "Upsert an attendance record",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpsertAttendanceRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/attendance/by-class-offering/{id}": {
            "get": {
                "tags": ["Attendance"],
                "summary": "Attendance for an offering",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/attendance/{id}": {
            "put": {
                "tags": ["Attendance"],
                "summary": "Update attendance status",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateAttendanceStatusRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "delete": {
                "tags": ["Attendance"],
                "summary": "Delete attendance record",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/attendance/{id}/pending": {
            "patch": {
                "tags": ["Attendance"],
                "summary": "Set a single attendance record to Pending",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/attendance/student/{student_id}/session/{session_id}/pending": {
            "patch": {
                "tags": ["Attendance"],
                "summary": "Student check-in for a session",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "student_id", "in": "path", "required": true, "type": "string"},
                    {"name": "session_id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Student not enrolled in the session's offering"}
                }
            }
        },
        "/attendance/verify-all/{session_id}": {
            "patch": {
                "tags": ["Attendance"],
                "summary": "Verify all pending attendance for a session",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "session_id", "in": "path", "required": true, "type": "integer"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/attendance/instructor/{instructor_id}/session/{session_id}": {
            "get": {
                "tags": ["Attendance"],
                "summary": "Session roster for an instructor",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "instructor_id", "in": "path", "required": true, "type": "string"},
                    {"name": "session_id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Instructor does not teach the session"}
                }
            },
            "post": {
                "tags": ["Attendance"],
                "summary": "Instructor marks attendance for a session",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "instructor_id", "in": "path", "required": true, "type": "string"},
                    {"name": "session_id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/InstructorSetAttendanceRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "403": {"description": "Instructor does not teach the session"}
                }
            }
        },
        "/assessment-types": {
            "get": {
                "tags": ["Assessment Types"],
                "summary": "List assessment types",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "post": {
                "tags": ["Assessment Types"],
                "summary": "Create assessment type",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateAssessmentTypeRequest"}}
                ],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/assessment-types/{id}": {
            "get": {
                "tags": ["Assessment Types"],
                "summary": "Get assessment type",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "put": {
                "tags": ["Assessment Types"],
                "summary": "Update assessment type",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateAssessmentTypeRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "delete": {
                "tags": ["Assessment Types"],
                "summary": "Delete assessment type",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/grades": {
            "get": {
                "tags": ["Grades"],
                "summary": "List grades",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "enrolment_id", "in": "query", "type": "integer"},
                    {"name": "assessment_id", "in": "query", "type": "integer"},
                    {"name": "class_offering_id", "in": "query", "type": "integer"},
                    {"name": "course_code", "in": "query", "type": "string"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "post": {
                "tags": ["Grades"],
                "summary": "Upsert a grade",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpsertGradeRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/grades/by-class-offering/{id}": {
            "get": {
                "tags": ["Grades"],
                "summary": "Grades for an offering",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/grades/{grade_id}": {
            "put": {
                "tags": ["Grades"],
                "summary": "Update a grade's score",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "grade_id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateGradeRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "delete": {
                "tags": ["Grades"],
                "summary": "Delete a grade",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "grade_id", "in": "path", "required": true, "type": "integer"}],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/grades/gradebook": {
            "get": {
                "tags": ["Grades"],
                "summary": "Gradebook for an offering and assessment type",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "class_offering_id", "in": "query", "required": true, "type": "integer"},
                    {"name": "assessment_id", "in": "query", "required": true, "type": "integer"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/grades/gradebook/export": {
            "get": {
                "tags": ["Grades"],
                "summary": "Export gradebook as CSV",
                "security": [{"BearerAuth": []}],
                "produces": ["text/csv"],
                "parameters": [
                    {"name": "class_offering_id", "in": "query", "required": true, "type": "integer"},
                    {"name": "assessment_id", "in": "query", "required": true, "type": "integer"}
                ],
                "responses": {"200": {"description": "CSV file"}}
            }
        },
        "/grades/exports": {
            "post": {
                "tags": ["Grades"],
                "summary": "Queue a background grade export",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateExportRequest"}}
                ],
                "responses": {"202": {"description": "Accepted", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/grades/exports/{job_id}": {
            "get": {
                "tags": ["Grades"],
                "summary": "Export job status and download token",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "job_id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/grades/exports/download": {
            "get": {
                "tags": ["Grades"],
                "summary": "Download a rendered export with a signed token",
                "parameters": [{"name": "token", "in": "query", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "File"},
                    "401": {"description": "Invalid or expired token"}
                }
            }
        },
        "/grades/student/{student_id}/summary": {
            "get": {
                "tags": ["Grades"],
                "summary": "Per-offering grade totals for a student",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "student_id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/grades/student/{student_id}/class-offering/{class_offering_id}": {
            "get": {
                "tags": ["Grades"],
                "summary": "Weighted grade components for one student and offering",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "student_id", "in": "path", "required": true, "type": "string"},
                    {"name": "class_offering_id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Student not enrolled"}
                }
            }
        },
        "/grades/student/{student_id}/class-offering/{class_offering_id}/export": {
            "get": {
                "tags": ["Grades"],
                "summary": "Export a student's course grades as PDF",
                "security": [{"BearerAuth": []}],
                "produces": ["application/pdf"],
                "parameters": [
                    {"name": "student_id", "in": "path", "required": true, "type": "string"},
                    {"name": "class_offering_id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {"200": {"description": "PDF file"}}
            }
        },
        "/grades-attendance": {
            "get": {
                "tags": ["Legacy Records"],
                "summary": "Combined grades and attendance rows",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "View disabled"}
                }
            }
        },
        "/grades-attendance/by-class-offering/{id}": {
            "get": {
                "tags": ["Legacy Records"],
                "summary": "Combined rows for an offering",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "View disabled"}
                }
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            },
            "required": ["email", "password"]
        },
        "RefreshRequest": {
            "type": "object",
            "properties": {
                "refresh_token": {"type": "string"}
            },
            "required": ["refresh_token"]
        },
        "CreatePersonRequest": {
            "type": "object",
            "properties": {
                "full_name": {"type": "string"},
                "email": {"type": "string"}
            },
            "required": ["full_name", "email"]
        },
        "CreateStudentRequest": {
            "type": "object",
            "properties": {
                "student_id": {"type": "string"},
                "full_name": {"type": "string"},
                "email": {"type": "string"},
                "cohort": {"type": "string"}
            },
            "required": ["student_id", "full_name", "email"]
        },
        "CreateInstructorRequest": {
            "type": "object",
            "properties": {
                "instructor_id": {"type": "string"},
                "full_name": {"type": "string"},
                "email": {"type": "string"}
            },
            "required": ["instructor_id", "full_name", "email"]
        },
        "CreateCourseRequest": {
            "type": "object",
            "properties": {
                "course_code": {"type": "string"},
                "course_name": {"type": "string"}
            },
            "required": ["course_code", "course_name"]
        },
        "CreateTermRequest": {
            "type": "object",
            "properties": {
                "term_label": {"type": "string"},
                "start_date": {"type": "string"},
                "end_date": {"type": "string"}
            },
            "required": ["term_label", "start_date", "end_date"]
        },
        "CreateOfferingRequest": {
            "type": "object",
            "properties": {
                "course_code": {"type": "string"},
                "term_id": {"type": "integer"},
                "class_group": {"type": "string"},
                "class_type": {"type": "string"}
            },
            "required": ["course_code", "term_id", "class_group", "class_type"]
        },
        "CreateTeachingAssignmentRequest": {
            "type": "object",
            "properties": {
                "instructor_id": {"type": "string"},
                "class_offering_id": {"type": "integer"}
            },
            "required": ["instructor_id", "class_offering_id"]
        },
        "CreateSessionRequest": {
            "type": "object",
            "properties": {
                "class_offering_id": {"type": "integer"},
                "session_no": {"type": "integer"},
                "session_start_date": {"type": "string"},
                "session_end_date": {"type": "string"},
                "title": {"type": "string"},
                "room": {"type": "string"}
            },
            "required": ["class_offering_id", "session_no", "session_start_date", "session_end_date"]
        },
        "CreateEnrolmentRequest": {
            "type": "object",
            "properties": {
                "student_id": {"type": "string"},
                "class_offering_id": {"type": "integer"},
                "enrolment_status": {"type": "string"}
            },
            "required": ["student_id", "class_offering_id"]
        },
        "UpdateEnrolmentStatusRequest": {
            "type": "object",
            "properties": {
                "enrolment_status": {"type": "string"}
            },
            "required": ["enrolment_status"]
        },
        "UpsertAttendanceRequest": {
            "type": "object",
            "properties": {
                "enrolment_id": {"type": "integer"},
                "session_id": {"type": "integer"},
                "attendance_status": {"type": "string"}
            },
            "required": ["enrolment_id", "session_id", "attendance_status"]
        },
        "UpdateAttendanceStatusRequest": {
            "type": "object",
            "properties": {
                "attendance_status": {"type": "string"}
            },
            "required": ["attendance_status"]
        },
        "InstructorSetAttendanceRequest": {
            "type": "object",
            "properties": {
                "enrolment_id": {"type": "integer"},
                "attendance_status": {"type": "string"}
            },
            "required": ["enrolment_id", "attendance_status"]
        },
        "CreateAssessmentTypeRequest": {
            "type": "object",
            "properties": {
                "course_code": {"type": "string"},
                "assessment_type": {"type": "string"},
                "weight": {"type": "number"}
            },
            "required": ["course_code", "assessment_type", "weight"]
        },
        "UpdateAssessmentTypeRequest": {
            "type": "object",
            "properties": {
                "course_code": {"type": "string"},
                "assessment_type": {"type": "string"},
                "weight": {"type": "number"}
            }
        },
        "UpsertGradeRequest": {
            "type": "object",
            "properties": {
                "enrolment_id": {"type": "integer"},
                "assessment_id": {"type": "integer"},
                "score": {"type": "number"}
            },
            "required": ["enrolment_id", "assessment_id"]
        },
        "CreateExportRequest": {
            "type": "object",
            "properties": {
                "kind": {"type": "string", "enum": ["GRADEBOOK_CSV", "COURSE_GRADES_PDF"]},
                "class_offering_id": {"type": "integer"},
                "assessment_type_id": {"type": "integer"},
                "student_id": {"type": "string"}
            },
            "required": ["kind"]
        },
        "UpdateGradeRequest": {
            "type": "object",
            "properties": {
                "score": {"type": "number"}
            }
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_count": {"type": "integer"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "pagination": {"$ref": "#/definitions/Pagination"},
                "meta": {"type": "object"}
            }
        }
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

package validation

// Request body schemas. Shapes only; business rules (duplicates,
// password confirmation, ownership) live in the services.

// RegisterSchema covers company and employer registration forms.
// Password is capped at 72 characters, the bcrypt input limit.
var RegisterSchema = mustCompile(`{
	"type": "object",
	"required": ["officialName", "email", "password", "confirmPassword"],
	"properties": {
		"officialName": {"type": "string", "minLength": 1, "maxLength": 255},
		"email": {"type": "string", "format": "email", "minLength": 3, "maxLength": 255},
		"password": {"type": "string", "minLength": 8, "maxLength": 72},
		"confirmPassword": {"type": "string", "minLength": 1, "maxLength": 72}
	},
	"additionalProperties": false
}`)

// LoginSchema covers the local credential form.
var LoginSchema = mustCompile(`{
	"type": "object",
	"required": ["username", "password"],
	"properties": {
		"username": {"type": "string", "minLength": 1, "maxLength": 255},
		"password": {"type": "string", "minLength": 1, "maxLength": 72}
	},
	"additionalProperties": false
}`)

// ApprovalDecisionSchema covers the admin approval decision body.
var ApprovalDecisionSchema = mustCompile(`{
	"type": "object",
	"required": ["accountId", "status"],
	"properties": {
		"accountId": {"type": "string", "minLength": 36, "maxLength": 36},
		"status": {"type": "string", "enum": ["APPROVED", "REJECTED"]}
	},
	"additionalProperties": false
}`)

// JobPostSchema covers hiring post create/update bodies.
var JobPostSchema = mustCompile(`{
	"type": "object",
	"required": ["title"],
	"properties": {
		"title": {"type": "string", "minLength": 1, "maxLength": 255},
		"description": {"type": "string", "maxLength": 10000},
		"location": {"type": "string", "maxLength": 255},
		"jobType": {"type": "string", "enum": ["FULLTIME", "PARTTIME", "CONTRACT", "INTERNSHIP"]},
		"salaryMin": {"type": "integer", "minimum": 0},
		"salaryMax": {"type": "integer", "minimum": 0}
	},
	"additionalProperties": false
}`)

// JobFindingPostSchema covers job-seeking post create/update bodies.
var JobFindingPostSchema = mustCompile(`{
	"type": "object",
	"required": ["title"],
	"properties": {
		"title": {"type": "string", "minLength": 1, "maxLength": 255},
		"description": {"type": "string", "maxLength": 10000},
		"location": {"type": "string", "maxLength": 255},
		"expectedSalary": {"type": "integer", "minimum": 0}
	},
	"additionalProperties": false
}`)

package validation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterSchemaAccepts(t *testing.T) {
	body := `{"officialName":"Acme Co","email":"acme@example.com","password":"sup3rsecret","confirmPassword":"sup3rsecret"}`
	require.NoError(t, Validate(context.Background(), RegisterSchema, []byte(body)))
}

func TestRegisterSchemaRejects(t *testing.T) {
	cases := map[string]string{
		"not json":          `{`,
		"missing email":     `{"officialName":"Acme","password":"sup3rsecret","confirmPassword":"sup3rsecret"}`,
		"short password":    `{"officialName":"Acme","email":"a@b.co","password":"short","confirmPassword":"short"}`,
		"wrong type":        `{"officialName":42,"email":"a@b.co","password":"sup3rsecret","confirmPassword":"sup3rsecret"}`,
		"unknown field":     `{"officialName":"Acme","email":"a@b.co","password":"sup3rsecret","confirmPassword":"sup3rsecret","role":"admin"}`,
		"empty name":        `{"officialName":"","email":"a@b.co","password":"sup3rsecret","confirmPassword":"sup3rsecret"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, Validate(context.Background(), RegisterSchema, []byte(body)))
		})
	}
}

func TestLoginSchema(t *testing.T) {
	require.NoError(t, Validate(context.Background(), LoginSchema, []byte(`{"username":"acme@example.com","password":"pw"}`)))
	assert.Error(t, Validate(context.Background(), LoginSchema, []byte(`{"username":"acme@example.com"}`)))
	assert.Error(t, Validate(context.Background(), LoginSchema, []byte(`{"username":"","password":"pw"}`)))
}

func TestApprovalDecisionSchema(t *testing.T) {
	require.NoError(t, Validate(context.Background(), ApprovalDecisionSchema,
		[]byte(`{"accountId":"0b7aceb5-9e1c-4d6a-8f29-3d1c3f7a9b10","status":"APPROVED"}`)))
	assert.Error(t, Validate(context.Background(), ApprovalDecisionSchema,
		[]byte(`{"accountId":"0b7aceb5-9e1c-4d6a-8f29-3d1c3f7a9b10","status":"MAYBE"}`)))
	assert.Error(t, Validate(context.Background(), ApprovalDecisionSchema,
		[]byte(`{"accountId":"short","status":"APPROVED"}`)))
}

func TestJobPostSchema(t *testing.T) {
	require.NoError(t, Validate(context.Background(), JobPostSchema,
		[]byte(`{"title":"Backend Engineer","jobType":"FULLTIME","salaryMin":30000,"salaryMax":50000}`)))
	assert.Error(t, Validate(context.Background(), JobPostSchema, []byte(`{"description":"no title"}`)))
	assert.Error(t, Validate(context.Background(), JobPostSchema, []byte(`{"title":"x","jobType":"GIG"}`)))
	assert.Error(t, Validate(context.Background(), JobPostSchema, []byte(`{"title":"x","salaryMin":-1}`)))
}

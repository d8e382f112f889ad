package histschema_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/int08h/b2histogram/internal/histschema"
)

func TestCompile(t *testing.T) {
	schema, err := histschema.Compile()
	require.NoError(t, err)
	require.NotNil(t, schema)

	for _, doc := range []string{
		`{"buckets":[],"total":0}`,
		`{"buckets":[{"begin":8,"end":15,"count":2}],"total":2}`,
	} {
		assert.NoError(t, schema.Validate(strings.NewReader(doc)), doc)
	}
}

func TestValidateInvalid(t *testing.T) {
	schema, err := histschema.Compile()
	require.NoError(t, err)

	for _, doc := range []string{
		`{"buckets":[]}`,
		`{"buckets":[{"begin":8,"end":15}],"total":0}`,
		`{"buckets":[{"begin":8,"end":15,"count":0}],"total":0}`,
		`{"buckets":[{"begin":-1,"end":15,"count":1}],"total":1}`,
		`{"buckets":[],"total":0,"extra":true}`,
	} {
		assert.Error(t, schema.Validate(strings.NewReader(doc)), doc)
	}
}
